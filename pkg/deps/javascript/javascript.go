package javascript

import (
	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/integrations/npm"
	"github.com/matzehuels/depup/pkg/version"
)

const languageName = "node"

// Language provides Node.js dependency updates via npm.
// Supports package.json manifests and pnpm workspaces.
var Language = &deps.Language{
	Name:            languageName,
	DisplayName:     "Node.js",
	ManifestFiles:   []string{"package.json"},
	LockFiles:       []string{"package-lock.json", "pnpm-lock.yaml", "yarn.lock"},
	DefaultRegistry: npm.RegistryName,
	ExactIsPinned:   true,
	ParseSpec:       version.ParseNode,
	Manifests:       []deps.ManifestParser{&PackageJSON{}},
	NewFetcher:      newFetcher,
	Discover:        discover,
}

func newFetcher(backend cache.Cache, baseURL string, opts ...integrations.Option) deps.Fetcher {
	return npm.NewClient(backend, baseURL, opts...)
}
