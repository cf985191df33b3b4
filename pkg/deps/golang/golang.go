package golang

import (
	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/integrations/goproxy"
	"github.com/matzehuels/depup/pkg/version"
)

const languageName = "go"

// Language provides Go dependency updates via the Go module proxy.
// Supports go.mod manifest files.
//
// Every go.mod requirement is an exact version, so only requirements marked
// "// pinned" are held back.
var Language = &deps.Language{
	Name:            languageName,
	DisplayName:     "Go",
	ManifestFiles:   []string{"go.mod"},
	LockFiles:       []string{"go.sum"},
	DefaultRegistry: goproxy.RegistryName,
	ParseSpec:       version.ParseGo,
	Manifests:       []deps.ManifestParser{&GoModParser{}},
	NewFetcher:      newFetcher,
}

func newFetcher(backend cache.Cache, baseURL string, opts ...integrations.Option) deps.Fetcher {
	return goproxy.NewClient(backend, baseURL, opts...)
}
