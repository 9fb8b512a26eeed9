// Package buildinfo holds version information stamped in at build time.
//
//	go build -ldflags "-X github.com/matzehuels/libyear/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/libyear/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/libyear/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"     // release tag, e.g. "v0.3.0"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp
)

// UserAgent identifies libyear to package registries. crates.io rejects
// requests that carry no User-Agent.
func UserAgent() string {
	return fmt.Sprintf("libyear/%s (https://github.com/matzehuels/libyear)", Version)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
