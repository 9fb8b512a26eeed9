package libyear

import (
	"cmp"
	"context"
	stderrors "errors"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/libyear/pkg/deps"
	"github.com/matzehuels/libyear/pkg/errors"
	"github.com/matzehuels/libyear/pkg/observability"
)

// SortPolicy selects the order of report entries.
type SortPolicy int

const (
	// SortAlphabetical orders entries by ascending name.
	SortAlphabetical SortPolicy = iota
	// SortLibyear orders the most outdated entries first.
	SortLibyear
)

func (p SortPolicy) String() string {
	switch p {
	case SortAlphabetical:
		return "alphabetical"
	case SortLibyear:
		return "libyear"
	default:
		return "unknown"
	}
}

// ParseSortPolicy accepts "alphabetical" or "libyear", ignoring case.
func ParseSortPolicy(s string) (SortPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "alphabetical":
		return SortAlphabetical, nil
	case "libyear":
		return SortLibyear, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidInput,
			"unknown sort order %q (want alphabetical or libyear)", s)
	}
}

// Options controls ordering and truncation of a report.
type Options struct {
	Sort SortPolicy
	// Top limits the number of entries; zero or less keeps all of them.
	Top int
}

// Result is the outcome of resolving one dependency.
type Result struct {
	Dependency deps.Dependency
	Freshness  Freshness
	Err        error
}

// Report is the aggregated freshness of a dependency set.
type Report struct {
	Entries []Freshness `json:"dependencies"`
	// TotalLibyears sums every resolved dependency, including entries
	// removed by truncation.
	TotalLibyears float64 `json:"total_libyears"`
	// Failures lists the dependencies that were skipped, in input order.
	Failures []*LookupError `json:"-"`
}

// ResolveAll resolves dependencies one after another in input order. A
// failed lookup is recorded in its Result and does not stop the loop; a
// cancelled context does, and its error is returned with the results
// gathered so far.
func ResolveAll(ctx context.Context, list []deps.Dependency, registry Registry) ([]Result, error) {
	hooks := observability.Report()
	results := make([]Result, 0, len(list))
	for i, dep := range list {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		hooks.OnLookupStart(ctx, dep.Name, i, len(list))
		start := time.Now()
		f, err := Resolve(ctx, dep, registry)
		hooks.OnLookupComplete(ctx, dep.Name, f.Libyears, time.Since(start), err)
		results = append(results, Result{Dependency: dep, Freshness: f, Err: err})
	}
	return results, ctx.Err()
}

// Partition splits results into resolved entries and lookup failures,
// keeping the input order of both.
func Partition(results []Result) ([]Freshness, []*LookupError) {
	ok := make([]Freshness, 0, len(results))
	var failed []*LookupError
	for _, r := range results {
		if r.Err == nil {
			ok = append(ok, r.Freshness)
			continue
		}
		var le *LookupError
		if !stderrors.As(r.Err, &le) {
			le = &LookupError{Dependency: r.Dependency, Kind: ErrRegistryUnavailable, Err: r.Err}
		}
		failed = append(failed, le)
	}
	return ok, failed
}

// Total sums the libyears of entries. Negative values count as they are.
func Total(entries []Freshness) float64 {
	var total float64
	for _, e := range entries {
		total += e.Libyears
	}
	return total
}

// Sort orders entries in place. Equal keys keep their relative order. An
// unknown policy falls back to alphabetical.
func Sort(entries []Freshness, policy SortPolicy) {
	switch policy {
	case SortLibyear:
		slices.SortStableFunc(entries, byLibyears)
	case SortAlphabetical:
		slices.SortStableFunc(entries, byName)
	default:
		slices.SortStableFunc(entries, byName)
	}
}

func byName(a, b Freshness) int { return strings.Compare(a.Name, b.Name) }

func byLibyears(a, b Freshness) int { return cmp.Compare(b.Libyears, a.Libyears) }

// Truncate returns the first top entries, or all of them when top is not
// positive.
func Truncate(entries []Freshness, top int) []Freshness {
	if top <= 0 || top >= len(entries) {
		return entries
	}
	return entries[:top]
}

// Build resolves list against registry and aggregates the report. Lookup
// failures never fail the build; only context cancellation does.
func Build(ctx context.Context, list []deps.Dependency, registry Registry, opts Options) (Report, error) {
	results, err := ResolveAll(ctx, list, registry)
	if err != nil {
		return Report{}, err
	}
	entries, failures := Partition(results)
	total := Total(entries)
	Sort(entries, opts.Sort)
	return Report{
		Entries:       Truncate(entries, opts.Top),
		TotalLibyears: total,
		Failures:      failures,
	}, nil
}
