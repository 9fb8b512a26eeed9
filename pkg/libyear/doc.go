// Package libyear measures how far a project's dependencies lag behind their
// newest releases.
//
// One libyear is the time between two releases measured in mean Gregorian
// years (365.2425 days). A dependency pinned to a version published on
// 2023-01-01 whose newest release came out on 2024-01-01 is one libyear
// behind.
//
// # Resolving
//
// [Resolve] looks up a single [deps.Dependency] against a [Registry]. The
// current version is matched verbatim against the registry's version
// numbers; the latest release is the one with the newest publication time,
// regardless of how its version number compares.
//
// # Reports
//
// [Build] resolves a dependency list one entry at a time, drops the entries
// whose lookup failed, sums the libyears of the rest and applies the
// ordering and truncation in [Options]:
//
//	report, err := libyear.Build(ctx, list, registry, libyear.Options{
//	    Sort: libyear.SortLibyear,
//	    Top:  10,
//	})
//	if err != nil {
//	    return err // only context cancellation ends a build early
//	}
//	fmt.Printf("%.2f libyears behind\n", report.TotalLibyears)
//
// The total always covers every resolved dependency, including the ones cut
// by Top.
//
// [deps.Dependency]: github.com/matzehuels/libyear/pkg/deps.Dependency
package libyear
