// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// Each registry has its own subpackage:
//
//   - [crates]: Rust crates.io
//
// # Shared Infrastructure
//
// The [Client] type holds what all registry clients share:
//
//   - default headers (crates.io requires a User-Agent)
//   - JSON decoding of GET responses
//   - status mapping to [ErrNotFound] and [ErrNetwork]
//   - a minimum spacing between requests, so a sequential run never exceeds
//     the registry's fair-use rate
//   - [observability.HTTPHooks] events around every request
//
// Responses are never cached and failed requests are never retried; the
// caller decides what a failure means.
//
// [crates]: github.com/matzehuels/libyear/pkg/integrations/crates
// [observability.HTTPHooks]: github.com/matzehuels/libyear/pkg/observability.HTTPHooks
package integrations
