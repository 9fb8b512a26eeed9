package rust

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/libyear/pkg/errors"
	"github.com/matzehuels/libyear/pkg/integrations"
	"github.com/matzehuels/libyear/pkg/integrations/crates"
)

func TestParseResolver(t *testing.T) {
	tests := []struct {
		in      string
		want    Resolver
		wantErr bool
	}{
		{"", ResolverAuto, false},
		{"auto", ResolverAuto, false},
		{"Metadata", ResolverMetadata, false},
		{" lockfile ", ResolverLockfile, false},
		{"vendor", "", true},
	}
	for _, tt := range tests {
		got, err := ParseResolver(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseResolver(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ParseResolver(%q) code = %q, want INVALID_INPUT", tt.in, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseResolver(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func stubLookPath(t *testing.T, found bool) {
	t.Helper()
	orig := lookPath
	lookPath = func(string) (string, error) {
		if found {
			return "/usr/bin/cargo", nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { lookPath = orig })
}

func TestNewSource(t *testing.T) {
	dir := t.TempDir()
	manifest := writeFile(t, dir, "Cargo.toml", "[package]\nname = \"demo\"\nversion = \"0.1.0\"\n")
	lock := writeFile(t, dir, "Cargo.lock", sampleLock)

	tests := []struct {
		name     string
		path     string
		resolver Resolver
		cargo    bool
		want     string
		pkg      string // expected manifest package; empty means no manifest
	}{
		{"auto with cargo", manifest, ResolverAuto, true, "cargo metadata", "demo"},
		{"auto without cargo", manifest, ResolverAuto, false, "Cargo.lock", "demo"},
		{"explicit metadata", manifest, ResolverMetadata, false, "cargo metadata", "demo"},
		{"explicit lockfile", manifest, ResolverLockfile, true, "Cargo.lock", "demo"},
		{"lock path", lock, ResolverAuto, true, "Cargo.lock", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubLookPath(t, tt.cargo)
			src, m, err := NewSource(tt.path, tt.resolver)
			if err != nil {
				t.Fatalf("NewSource: %v", err)
			}
			if src.Name() != tt.want {
				t.Errorf("source = %q, want %q", src.Name(), tt.want)
			}
			if tt.pkg == "" {
				if m != nil {
					t.Errorf("manifest = %+v, want nil for a lock file path", m)
				}
				return
			}
			if m == nil || m.Package.Name != tt.pkg {
				t.Errorf("manifest = %+v, want package %q", m, tt.pkg)
			}
			if lf, ok := src.(*Lockfile); ok && lf.Path() != lock {
				t.Errorf("lock path = %q, want %q", lf.Path(), lock)
			}
		})
	}
}

func TestNewSourceErrors(t *testing.T) {
	dir := t.TempDir()
	lock := writeFile(t, dir, "Cargo.lock", sampleLock)
	noLock := writeFile(t, dir, "sub/Cargo.toml", "[package]\nname = \"x\"\n")
	writeFile(t, dir, "go.mod", "module x\n")

	tests := []struct {
		name     string
		path     string
		resolver Resolver
		code     errors.Code
	}{
		{"missing manifest", filepath.Join(dir, "none", "Cargo.toml"), ResolverMetadata, errors.ErrCodeFileNotFound},
		{"not a cargo file", filepath.Join(dir, "go.mod"), ResolverAuto, errors.ErrCodeInvalidManifest},
		{"metadata on lock", lock, ResolverMetadata, errors.ErrCodeUnsupported},
		{"unknown resolver", noLock, Resolver("vendor"), errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubLookPath(t, true)
			_, _, err := NewSource(tt.path, tt.resolver)
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %q, want %q (err %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestRegistryReleases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/crates/serde" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"crate":{"name":"serde"},"versions":[
			{"num":"1.0.193","created_at":"2023-11-20T23:05:04Z","yanked":false},
			{"num":"1.0.0","created_at":"2017-04-20T00:00:00Z","yanked":true}
		]}`))
	}))
	defer server.Close()

	client := crates.NewClient(server.URL, "libyear-test",
		integrations.WithHTTPClient(server.Client()),
		integrations.WithMinInterval(0),
	)
	reg := NewRegistry(client)

	releases, err := reg.Releases(context.Background(), "serde")
	if err != nil {
		t.Fatalf("Releases: %v", err)
	}
	if len(releases) != 2 {
		t.Fatalf("got %d releases, want 2", len(releases))
	}
	if releases[0].Number != "1.0.193" {
		t.Errorf("releases[0].Number = %q", releases[0].Number)
	}
	if want := time.Date(2023, 11, 20, 23, 5, 4, 0, time.UTC); !releases[0].PublishedAt.Equal(want) {
		t.Errorf("releases[0].PublishedAt = %v, want %v", releases[0].PublishedAt, want)
	}
	if releases[0].Yanked || !releases[1].Yanked {
		t.Errorf("yanked = %v, %v, want false, true", releases[0].Yanked, releases[1].Yanked)
	}

	if _, err := reg.Releases(context.Background(), "missing"); err == nil {
		t.Error("Releases(missing) should fail")
	}
}
