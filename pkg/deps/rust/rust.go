package rust

import (
	"context"
	"os/exec"
	"strings"

	"github.com/matzehuels/libyear/pkg/deps"
	"github.com/matzehuels/libyear/pkg/errors"
	"github.com/matzehuels/libyear/pkg/integrations/crates"
)

// DefaultManifestPath is where libyear looks when no manifest is given.
const DefaultManifestPath = "./Cargo.toml"

// Resolver selects how the dependency set is obtained.
type Resolver string

const (
	// ResolverAuto uses cargo metadata when cargo is installed and the
	// lock file otherwise.
	ResolverAuto     Resolver = "auto"
	ResolverMetadata Resolver = "metadata"
	ResolverLockfile Resolver = "lockfile"
)

// ParseResolver validates a resolver name. The empty string means auto.
func ParseResolver(s string) (Resolver, error) {
	switch r := Resolver(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return ResolverAuto, nil
	case ResolverAuto, ResolverMetadata, ResolverLockfile:
		return r, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput,
			"unknown resolver %q (want auto, metadata or lockfile)", s)
	}
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// NewSource returns the dependency source for the manifest at path along
// with the parsed manifest. path may name a Cargo.toml, or a Cargo.lock to
// read it directly, in which case the manifest is nil.
func NewSource(path string, r Resolver) (deps.Source, *Manifest, error) {
	if path == "" {
		path = DefaultManifestPath
	}
	parser, err := deps.DetectManifest(path, CargoToml{}, CargoLock{})
	if err != nil {
		return nil, nil, err
	}

	if _, ok := parser.(CargoLock); ok {
		if r == ResolverMetadata {
			return nil, nil, errors.New(errors.ErrCodeUnsupported,
				"cargo metadata needs a Cargo.toml, got %s", path)
		}
		return NewLockfile(path), nil, nil
	}

	m, err := ReadManifest(path)
	if err != nil {
		return nil, nil, err
	}

	var src deps.Source
	switch r {
	case ResolverMetadata:
		src = NewMetadata(path)
	case ResolverLockfile:
		src, err = lockfileFor(path)
	case ResolverAuto, "":
		if _, lerr := lookPath("cargo"); lerr == nil {
			src = NewMetadata(path)
		} else {
			src, err = lockfileFor(path)
		}
	default:
		err = errors.New(errors.ErrCodeUnsupported, "unknown resolver %q", r)
	}
	if err != nil {
		return nil, nil, err
	}
	return src, m, nil
}

func lockfileFor(manifestPath string) (deps.Source, error) {
	lock, err := FindLockfile(manifestPath)
	if err != nil {
		return nil, err
	}
	return NewLockfile(lock), nil
}

// Registry serves crate version histories from crates.io.
type Registry struct {
	client *crates.Client
}

// NewRegistry wraps a crates.io client.
func NewRegistry(c *crates.Client) *Registry {
	return &Registry{client: c}
}

// Releases returns every published version of the crate, yanked ones
// included and marked.
func (r *Registry) Releases(ctx context.Context, name string) ([]deps.Release, error) {
	versions, err := r.client.FetchVersions(ctx, name)
	if err != nil {
		return nil, err
	}
	releases := make([]deps.Release, len(versions))
	for i, v := range versions {
		releases[i] = deps.Release{Number: v.Num, PublishedAt: v.CreatedAt, Yanked: v.Yanked}
	}
	return releases, nil
}
