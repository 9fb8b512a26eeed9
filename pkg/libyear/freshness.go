package libyear

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matzehuels/libyear/pkg/deps"
)

// SecondsPerLibyear is the length of a mean Gregorian year.
const SecondsPerLibyear = 31_556_952

// Registry provides the version history of a package.
type Registry interface {
	// Releases returns every published version of the named package, in
	// no particular order.
	Releases(ctx context.Context, name string) ([]deps.Release, error)
}

// Lookup failure kinds. They are matched with errors.Is against the error
// returned by Resolve.
var (
	ErrRegistryUnavailable    = errors.New("registry unavailable")
	ErrCurrentVersionNotFound = errors.New("current version not found")
	ErrNoVersionsPublished    = errors.New("no versions published")
)

// LookupError describes why a dependency could not be resolved.
type LookupError struct {
	Dependency deps.Dependency
	Kind       error // one of the Err* lookup kinds
	Err        error // underlying cause, may be nil
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", e.Dependency, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Dependency, e.Kind)
}

// Unwrap exposes both the kind and the cause.
func (e *LookupError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Freshness is the distance between the release a dependency uses and the
// newest release of the same package.
type Freshness struct {
	Name               string    `json:"name"`
	CurrentVersion     string    `json:"current_version"`
	CurrentPublishedAt time.Time `json:"current_published_at"`
	LatestVersion      string    `json:"latest_version"`
	LatestPublishedAt  time.Time `json:"latest_published_at"`
	// Libyears is negative when the newest release predates the current
	// one, which happens with backport releases.
	Libyears float64 `json:"libyears"`
	// CurrentYanked and LatestYanked mark releases pulled from the
	// registry. They do not change the libyear value.
	CurrentYanked bool `json:"current_yanked,omitempty"`
	LatestYanked  bool `json:"latest_yanked,omitempty"`
}

// Between returns the libyears separating two publication times.
func Between(current, latest time.Time) float64 {
	return latest.Sub(current).Seconds() / SecondsPerLibyear
}

// Resolve computes the freshness of a single dependency. Every failure is a
// *LookupError.
func Resolve(ctx context.Context, dep deps.Dependency, registry Registry) (Freshness, error) {
	releases, err := registry.Releases(ctx, dep.Name)
	if err != nil {
		return Freshness{}, &LookupError{Dependency: dep, Kind: ErrRegistryUnavailable, Err: err}
	}
	if len(releases) == 0 {
		return Freshness{}, &LookupError{Dependency: dep, Kind: ErrNoVersionsPublished}
	}

	current, ok := findRelease(releases, dep.Version)
	if !ok {
		return Freshness{}, &LookupError{Dependency: dep, Kind: ErrCurrentVersionNotFound}
	}
	latest := newestRelease(releases)

	return Freshness{
		Name:               dep.Name,
		CurrentVersion:     current.Number,
		CurrentPublishedAt: current.PublishedAt,
		LatestVersion:      latest.Number,
		LatestPublishedAt:  latest.PublishedAt,
		Libyears:           Between(current.PublishedAt, latest.PublishedAt),
		CurrentYanked:      current.Yanked,
		LatestYanked:       latest.Yanked,
	}, nil
}

func findRelease(releases []deps.Release, number string) (deps.Release, bool) {
	for _, r := range releases {
		if r.Number == number {
			return r, true
		}
	}
	return deps.Release{}, false
}

// newestRelease returns the release with the latest publication time. The
// first one seen wins a tie. releases must not be empty.
func newestRelease(releases []deps.Release) deps.Release {
	newest := releases[0]
	for _, r := range releases[1:] {
		if r.PublishedAt.After(newest.PublishedAt) {
			newest = r
		}
	}
	return newest
}
