// Package rust resolves the dependency set of Cargo projects and adapts
// crates.io to the registry interface used by libyear reports.
//
// # Sources
//
// Two mechanisms produce the resolved set:
//
//   - [Metadata] runs `cargo metadata --all-features` and lists every package
//     in the resolve graph. This needs cargo on PATH and may touch the network.
//   - [Lockfile] reads Cargo.lock directly. It works offline but requires the
//     lock file to exist.
//
// [NewSource] picks one based on a [Resolver]:
//
//	src, err := rust.NewSource("Cargo.toml", rust.ResolverAuto)
//	if err != nil {
//	    return err
//	}
//	list, err := src.Dependencies(ctx)
//
// Both mechanisms report workspace members alongside registry packages. The
// versions are passed on verbatim.
//
// # Registry
//
// [Registry] wraps a [crates] client so that version histories can be
// queried per crate.
//
// [crates]: github.com/matzehuels/libyear/pkg/integrations/crates
package rust
