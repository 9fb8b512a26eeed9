package deps

import (
	"context"
	"time"
)

// Dependency is a package pinned to the version a project resolved.
// Version is kept exactly as the package manager reported it.
type Dependency struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (d Dependency) String() string { return d.Name + "@" + d.Version }

// Release is one published version of a package. Number is unique within a
// package's history.
type Release struct {
	Number      string    `json:"number"`
	PublishedAt time.Time `json:"published_at"`
	Yanked      bool      `json:"yanked,omitempty"`
}

// Source produces the resolved dependency set of a project.
type Source interface {
	// Name identifies the resolution mechanism (e.g. "cargo metadata").
	Name() string
	// Dependencies returns every resolved package, in the order the
	// underlying tool reports them.
	Dependencies(ctx context.Context) ([]Dependency, error)
}
