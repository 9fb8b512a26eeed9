package rust

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/libyear/pkg/errors"
)

func TestCargoTomlSupports(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Cargo.toml", true},
		{"cargo.toml", true},
		{"Cargo.lock", false},
		{"package.json", false},
	}
	for _, tt := range tests {
		if got := (CargoToml{}).Supports(tt.name); got != tt.want {
			t.Errorf("Supports(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if got := (CargoToml{}).Type(); got != "Cargo.toml" {
		t.Errorf("Type() = %q", got)
	}
}

func TestReadManifest(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Cargo.toml", `
[package]
name = "demo"
version = "0.1.0"

[dependencies]
serde = { version = "1", features = ["derive"] }
anyhow = "1.0"

[dev-dependencies]
insta = "1"

[build-dependencies]
cc = "1"
`)

	m, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if m.Package.Name != "demo" || m.Package.Version != "0.1.0" {
		t.Errorf("package = %s@%s, want demo@0.1.0", m.Package.Name, m.Package.Version)
	}
	if m.IsWorkspace() {
		t.Error("IsWorkspace() = true, want false")
	}
	if got := m.DirectDependencyCount(); got != 4 {
		t.Errorf("DirectDependencyCount() = %d, want 4", got)
	}
}

func TestReadManifestWorkspace(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Cargo.toml", `
[workspace]
members = ["core", "cli"]
`)

	m, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if !m.IsWorkspace() {
		t.Fatal("IsWorkspace() = false, want true")
	}
	if len(m.Workspace.Members) != 2 {
		t.Errorf("members = %v", m.Workspace.Members)
	}
	if m.Package.Name != "" {
		t.Errorf("virtual manifest has package name %q", m.Package.Name)
	}
}

func TestReadManifestErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadManifest(filepath.Join(dir, "Cargo.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: code = %q, want FILE_NOT_FOUND", errors.GetCode(err))
	}

	bad := writeFile(t, dir, "Cargo.toml", "[package\nname = ")
	_, err = ReadManifest(bad)
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("invalid toml: code = %q, want INVALID_MANIFEST", errors.GetCode(err))
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
