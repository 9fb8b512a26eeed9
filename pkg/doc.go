// Package pkg provides the libraries behind the libyear command.
//
// # Overview
//
// libyear measures dependency freshness: for every package a project uses it
// finds how long before the newest release the release in use came out, and
// adds those gaps up. The pkg directory is organized as:
//
//  1. [deps] - the dependency model and Cargo resolution ([deps/rust])
//  2. [integrations] - registry API clients ([integrations/crates])
//  3. [libyear] - freshness computation and report aggregation
//  4. [observability] - hooks for logging and progress
//  5. [errors], [buildinfo] - shared error codes and version stamping
//
// # Architecture
//
//	Cargo.toml / Cargo.lock
//	         ↓
//	    [deps/rust] (cargo metadata or lock file)
//	         ↓
//	    [libyear] ← [integrations/crates] (version histories)
//	         ↓
//	    Report (table or JSON)
//
// # Quick Start
//
//	src, err := rust.NewSource("Cargo.toml", rust.ResolverAuto)
//	if err != nil {
//	    return err
//	}
//	list, err := src.Dependencies(ctx)
//	if err != nil {
//	    return err
//	}
//	registry := rust.NewRegistry(crates.NewClient("", buildinfo.UserAgent()))
//	report, err := libyear.Build(ctx, list, registry, libyear.Options{})
//
// [deps]: github.com/matzehuels/libyear/pkg/deps
// [deps/rust]: github.com/matzehuels/libyear/pkg/deps/rust
// [integrations]: github.com/matzehuels/libyear/pkg/integrations
// [integrations/crates]: github.com/matzehuels/libyear/pkg/integrations/crates
// [libyear]: github.com/matzehuels/libyear/pkg/libyear
// [observability]: github.com/matzehuels/libyear/pkg/observability
// [errors]: github.com/matzehuels/libyear/pkg/errors
// [buildinfo]: github.com/matzehuels/libyear/pkg/buildinfo
package pkg
