package deps

import (
	"path/filepath"

	"github.com/matzehuels/libyear/pkg/errors"
)

// ManifestParser recognizes a manifest file by name.
type ManifestParser interface {
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Type returns the manifest type identifier (e.g. "Cargo.toml").
	Type() string
}

// DetectManifest returns the first parser that supports the base name of path.
func DetectManifest(path string, parsers ...ManifestParser) (ManifestParser, error) {
	name := filepath.Base(path)
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidManifest, "unsupported manifest: %s", name)
}
