// Package deps describes the ecosystems depup can update and the manifest
// files that declare their dependencies.
//
// # Overview
//
// Each ecosystem is a [Language] value defined in its own subpackage
// (javascript, python, rust, golang, ruby, php, java). A Language ties
// together:
//
//   - The manifest files to look for and the [ManifestParser] for each
//   - The constraint parser from [version]
//   - A registry [Fetcher] built on [integrations]
//   - Per-ecosystem policy such as [Language.ExactIsPinned] and
//     [Language.FetchLimit]
//
// The languages subpackage lists them all in a fixed order.
//
// # Manifests
//
// A [ManifestParser] works on file text, not on paths:
//
//	deps, err := p.Parse("Cargo.toml", content)
//	updated, err := p.Update("Cargo.toml", content, "serde", "1.0.195")
//
// Update changes only the bytes of the version literal. Everything else,
// comments and blank lines included, comes back untouched. A package that is
// missing, or whose constraint is not recognised, fails with
// INVALID_VERSION_SPEC (see [ErrNotUpdated]).
//
// # Detection
//
// [Detect] looks at the project root only. Languages can extend this with
// Discover, which is how pnpm workspace members and Tauri's src-tauri crate
// are found.
//
// # JSON manifests
//
// package.json and composer.json share [ScanJSONSections] and [UpdateJSON],
// which locate each dependency value by byte offset so a rewrite never
// reformats the document.
package deps
