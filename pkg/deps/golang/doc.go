// Package golang provides dependency updates for Go modules.
//
// # Overview
//
// This package implements [deps.Language] for Go, supporting:
//
//   - Version lookups via the Go module proxy ([goproxy])
//   - go.mod parsing with golang.org/x/mod/modfile
//
// # Pinning
//
// Every requirement in go.mod names an exact version, so exact versions are
// not treated as pinned. A requirement is pinned by a trailing comment:
//
//	require github.com/critical/lib v1.0.0 // pinned
//
// Requirements marked "// indirect" are reported as dev dependencies.
//
// [goproxy]: github.com/matzehuels/depup/pkg/integrations/goproxy
// [deps.Language]: github.com/matzehuels/depup/pkg/deps.Language
package golang
