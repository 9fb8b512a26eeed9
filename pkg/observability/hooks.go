// Package observability provides hooks for logging, progress, and metrics.
//
// Libraries emit events through the registered hooks; the application decides
// what to do with them. Nothing here depends on a logging or metrics backend.
//
//	func main() {
//	    observability.SetReportHooks(&myReportHooks{})
//	    // ... run
//	}
//
// Libraries call:
//
//	observability.Report().OnLookupStart(ctx, dep.Name, i, len(deps))
//	// ... query the registry ...
//	observability.Report().OnLookupComplete(ctx, dep.Name, years, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Report Hooks
// =============================================================================

// ReportHooks receives one start and one completion event per dependency
// looked up while building a report. index is zero-based.
type ReportHooks interface {
	OnLookupStart(ctx context.Context, name string, index, total int)
	// OnLookupComplete reports the computed libyears, or err if the
	// dependency was skipped.
	OnLookupComplete(ctx context.Context, name string, libyears float64, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from registry HTTP requests.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, host, path string)
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)
	// OnError records a transport failure (no HTTP response was received).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopReportHooks ignores all report events.
type NoopReportHooks struct{}

func (NoopReportHooks) OnLookupStart(context.Context, string, int, int) {}
func (NoopReportHooks) OnLookupComplete(context.Context, string, float64, time.Duration, error) {
}

// NoopHTTPHooks ignores all HTTP events.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	reportHooks ReportHooks = NoopReportHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetReportHooks registers report hooks. A nil h is ignored.
func SetReportHooks(h ReportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		reportHooks = h
	}
}

// SetHTTPHooks registers HTTP hooks. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Report returns the registered report hooks.
func Report() ReportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return reportHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores the no-op defaults. Mostly useful in tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	reportHooks = NoopReportHooks{}
	httpHooks = NoopHTTPHooks{}
}
