package rust

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/libyear/pkg/errors"
)

// CargoToml recognizes Cargo.toml manifests.
type CargoToml struct{}

func (CargoToml) Type() string              { return "Cargo.toml" }
func (CargoToml) Supports(name string) bool { return strings.EqualFold(name, "cargo.toml") }

// Manifest is the subset of Cargo.toml that libyear reads. A virtual
// workspace manifest has no [package] table and an empty Package.Name.
type Manifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Workspace *struct {
		Members []string `toml:"members"`
	} `toml:"workspace"`
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}

// IsWorkspace reports whether the manifest declares a [workspace] table.
func (m *Manifest) IsWorkspace() bool { return m.Workspace != nil }

// DirectDependencyCount counts the entries of all three dependency tables.
func (m *Manifest) DirectDependencyCount() int {
	return len(m.Dependencies) + len(m.DevDependencies) + len(m.BuildDependencies)
}

// ReadManifest parses the Cargo.toml at path. A missing file yields
// FILE_NOT_FOUND and anything unreadable or unparsable INVALID_MANIFEST.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fileError(path, err)
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}
	return &m, nil
}

func fileError(path string, err error) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "%s not found", path)
	}
	return errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
}
