package rust

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/matzehuels/libyear/pkg/deps"
	"github.com/matzehuels/libyear/pkg/errors"
)

// runFunc executes a command and returns its stdout.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Metadata resolves dependencies with `cargo metadata`, enabling all
// features so optional dependencies are counted too.
type Metadata struct {
	manifestPath string
	cargo        string
	run          runFunc
}

// NewMetadata returns a source that runs cargo against manifestPath.
func NewMetadata(manifestPath string) *Metadata {
	return &Metadata{manifestPath: manifestPath, cargo: "cargo", run: runCommand}
}

func (m *Metadata) Name() string { return "cargo metadata" }

func (m *Metadata) Dependencies(ctx context.Context) ([]deps.Dependency, error) {
	out, err := m.run(ctx, m.cargo,
		"metadata",
		"--format-version", "1",
		"--all-features",
		"--manifest-path", m.manifestPath,
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "cargo metadata for %s", m.manifestPath)
	}

	var meta metadataOutput
	if err := json.Unmarshal(out, &meta); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode cargo metadata output")
	}

	result := make([]deps.Dependency, 0, len(meta.Packages))
	for _, p := range meta.Packages {
		result = append(result, deps.Dependency{Name: p.Name, Version: p.Version})
	}
	return result, nil
}

// metadataOutput is the part of `cargo metadata --format-version 1` we use.
type metadataOutput struct {
	Packages []struct {
		Name    string `json:"name"`
		Version string `json:"version"`
		ID      string `json:"id"`
		Source  string `json:"source"`
	} `json:"packages"`
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
