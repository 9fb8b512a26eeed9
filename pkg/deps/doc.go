// Package deps defines the resolved dependency set that a libyear report is
// computed over, and the sources that produce it.
//
// # Overview
//
// A [Source] turns a project manifest into a flat list of [Dependency]
// values: one entry per package actually in use, each pinned to the single
// version string the build resolved. How the list is obtained is up to the
// source (running the package manager, reading a lock file); the report does
// not care.
//
// A [Release] is one published version of a package as reported by a
// registry, carrying its publication time.
//
// Language-specific sources live in subpackages:
//
//   - [rust]: Cargo projects (cargo metadata or Cargo.lock)
//
// # Failure Model
//
// A source either returns the complete dependency list or an error. There is
// no partial result: a missing or malformed manifest aborts the run.
//
// [rust]: github.com/matzehuels/libyear/pkg/deps/rust
package deps
