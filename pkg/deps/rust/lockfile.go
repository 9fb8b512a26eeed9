package rust

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/libyear/pkg/deps"
	"github.com/matzehuels/libyear/pkg/errors"
)

const lockfileName = "Cargo.lock"

// CargoLock recognizes Cargo.lock files.
type CargoLock struct{}

func (CargoLock) Type() string              { return lockfileName }
func (CargoLock) Supports(name string) bool { return strings.EqualFold(name, "cargo.lock") }

// Lockfile reads the resolved dependency set from a Cargo.lock without
// invoking cargo. Every [[package]] entry is reported, including workspace
// members and git or path packages, matching what cargo metadata lists.
type Lockfile struct {
	path string
}

// NewLockfile returns a source reading the Cargo.lock at path.
func NewLockfile(path string) *Lockfile {
	return &Lockfile{path: path}
}

func (l *Lockfile) Name() string { return lockfileName }

// Path returns the lock file location.
func (l *Lockfile) Path() string { return l.path }

func (l *Lockfile) Dependencies(ctx context.Context) ([]deps.Dependency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fileError(l.path, err)
	}

	var lock lockFile
	if err := toml.Unmarshal(data, &lock); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", l.path)
	}

	out := make([]deps.Dependency, 0, len(lock.Packages))
	for _, p := range lock.Packages {
		if p.Name == "" || p.Version == "" {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "%s: package entry without name or version", l.path)
		}
		out = append(out, deps.Dependency{Name: p.Name, Version: p.Version})
	}
	return out, nil
}

// FindLockfile returns the Cargo.lock governing the manifest at
// manifestPath. Workspace members share the lock file at the workspace
// root, so parent directories are searched too.
func FindLockfile(manifestPath string) (string, error) {
	abs, err := filepath.Abs(manifestPath)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidManifest, err, "resolve %s", manifestPath)
	}
	for dir := filepath.Dir(abs); ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, lockfileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		if parent := filepath.Dir(dir); parent == dir {
			break
		}
	}
	return "", errors.New(errors.ErrCodeFileNotFound,
		"no %s found for %s (run `cargo generate-lockfile` or use --resolver metadata)", lockfileName, manifestPath)
}

type lockFile struct {
	Version  int           `toml:"version"`
	Packages []lockPackage `toml:"package"`
}

type lockPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Source  string `toml:"source"`
}
