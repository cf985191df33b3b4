// Package javascript provides dependency updates for Node.js projects.
//
// # Overview
//
// This package implements [deps.Language] for Node.js, supporting:
//
//   - npm registry lookups via the [npm] client
//   - package.json manifests
//   - pnpm workspaces (pnpm-workspace.yaml)
//   - pnpm's minimumReleaseAge setting
//
// # Manifests
//
// dependencies, devDependencies, peerDependencies and optionalDependencies
// are read. Only devDependencies count as dev. Values that are not semver
// constraints ("workspace:*", "file:../lib", git URLs) are skipped.
//
//	p := &javascript.PackageJSON{}
//	updated, err := p.Update("package.json", content, "express", "4.19.0")
//
// The rewrite touches only the quoted value, so "~4.18.0" becomes "~4.19.0"
// and the rest of the file keeps its formatting.
//
// # Workspaces
//
// When pnpm-workspace.yaml exists, the root package.json is marked as the
// workspace root and every member listed under "packages" is detected too.
// See [WorkspaceMembers] for the supported patterns.
//
// [npm]: github.com/matzehuels/depup/pkg/integrations/npm
// [deps.Language]: github.com/matzehuels/depup/pkg/deps.Language
package javascript
