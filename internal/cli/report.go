package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/libyear/internal/config"
	"github.com/matzehuels/libyear/pkg/deps"
	"github.com/matzehuels/libyear/pkg/deps/rust"
	"github.com/matzehuels/libyear/pkg/integrations"
	"github.com/matzehuels/libyear/pkg/integrations/crates"
	"github.com/matzehuels/libyear/pkg/libyear"
	"github.com/matzehuels/libyear/pkg/observability"
)

// runReport resolves the project's dependencies, builds the report and
// renders it to c.Out.
func (c *CLI) runReport(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	src, manifest, err := rust.NewSource(cfg.ManifestPath, cfg.ResolverKind)
	if err != nil {
		return err
	}
	if manifest != nil {
		logger.Debug("Read manifest", "package", manifest.Package.Name,
			"workspace", manifest.IsWorkspace(), "direct", manifest.DirectDependencyCount())
	}
	logger.Debug("Resolving dependencies", "manifest", cfg.ManifestPath, "source", src.Name())
	if lf, ok := src.(*rust.Lockfile); ok {
		logger.Debug("Using lock file", "path", lf.Path())
	}

	prog := newProgress(logger)
	list, err := src.Dependencies(ctx)
	if err != nil {
		return err
	}

	client := crates.NewClient(cfg.RegistryURL, cfg.UserAgent,
		integrations.WithTimeout(cfg.Timeout),
		integrations.WithMinInterval(cfg.RequestInterval),
	)
	logger.Debug("Resolved dependencies", "count", len(list), "registry", client.BaseURL())
	report, err := c.buildReport(ctx, cfg, list, rust.NewRegistry(client))
	if err != nil {
		return err
	}

	for _, e := range report.Entries {
		if e.CurrentYanked || e.LatestYanked {
			logger.Debug("Yanked release", "crate", e.Name,
				"current", e.CurrentVersion, "current_yanked", e.CurrentYanked,
				"latest", e.LatestVersion, "latest_yanked", e.LatestYanked)
		}
	}
	if n := len(report.Failures); n > 0 {
		logger.Warn("Skipped dependencies that could not be looked up", "count", n, "hint", "run with -v for details")
	}
	prog.done(fmt.Sprintf("Analyzed %d dependencies", len(list)))
	return renderReport(c.Out, report, cfg.Format)
}

// buildReport runs libyear.Build with the CLI's hooks registered and the
// spinner running when enabled.
func (c *CLI) buildReport(ctx context.Context, cfg config.Config, list []deps.Dependency, registry libyear.Registry) (libyear.Report, error) {
	logger := loggerFromContext(ctx)

	var spinner *Spinner
	if c.showSpinner(cfg) {
		spinner = newSpinnerWithContext(ctx, c.Err, "Checking dependencies")
		spinner.Start()
		defer spinner.Stop()
	}

	defer observability.Reset()
	observability.SetReportHooks(&reportHooks{logger: logger, spinner: spinner})
	observability.SetHTTPHooks(&httpHooks{logger: logger})

	return libyear.Build(ctx, list, registry, libyear.Options{Sort: cfg.SortPolicy, Top: cfg.Top})
}

// showSpinner reports whether progress should be drawn. Debug output would
// interleave with the spinner line, so verbose runs go without.
func (c *CLI) showSpinner(cfg config.Config) bool {
	return !cfg.NoProgress && !cfg.Verbose && isTerminal(c.Err)
}

// reportHooks logs lookups and drives the spinner.
type reportHooks struct {
	logger  *log.Logger
	spinner *Spinner
}

func (h *reportHooks) OnLookupStart(_ context.Context, name string, index, total int) {
	if h.spinner != nil {
		h.spinner.SetMessage(fmt.Sprintf("Checking %s (%d/%d)", name, index+1, total))
	}
}

func (h *reportHooks) OnLookupComplete(_ context.Context, name string, libyears float64, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Skipping dependency", "crate", name, "err", err)
		return
	}
	h.logger.Debug("Looked up dependency", "crate", name, "libyears", formatLibyears(libyears), "took", d.Round(time.Millisecond))
}

// httpHooks logs registry traffic at debug level.
type httpHooks struct {
	logger *log.Logger
}

func (h *httpHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("Registry request", "method", method, "url", host+path)
}

func (h *httpHooks) OnResponse(_ context.Context, _, host, path string, status int, d time.Duration) {
	h.logger.Debug("Registry response", "url", host+path, "status", status, "took", d.Round(time.Millisecond))
}

func (h *httpHooks) OnError(_ context.Context, _, host, path string, err error) {
	h.logger.Debug("Registry request failed", "url", host+path, "err", err)
}
