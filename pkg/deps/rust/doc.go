// Package rust provides dependency updates for Rust crates.
//
// # Overview
//
// This package implements [deps.Language] for Rust, supporting:
//
//   - crates.io lookups via the [crates] client
//   - Cargo.toml manifests, including workspace and per-target tables
//   - Tauri apps, whose crate lives in src-tauri/Cargo.toml
//
// crates.io asks clients to stay at one request per second, so the language
// sets FetchLimit to 1 and the client paces its own requests.
//
// # Manifests
//
// A bare requirement ("1.0.190") is Cargo's default caret requirement and is
// rewritten bare:
//
//	serde = "1.0.190"                               -> serde = "1.0.195"
//	tokio = { version = "~1.36", features = ["full"] } -> only "~1.36" changes
//
// Dependencies declared with path, git or workspace = true have no version
// and are ignored.
//
// [crates]: github.com/matzehuels/depup/pkg/integrations/crates
// [deps.Language]: github.com/matzehuels/depup/pkg/deps.Language
package rust
