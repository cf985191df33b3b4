package ruby

import (
	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/integrations/rubygems"
	"github.com/matzehuels/depup/pkg/version"
)

const languageName = "ruby"

// Language provides Ruby dependency updates via RubyGems.org.
// Supports Gemfile manifests.
var Language = &deps.Language{
	Name:            languageName,
	DisplayName:     "Ruby",
	ManifestFiles:   []string{"Gemfile"},
	LockFiles:       []string{"Gemfile.lock"},
	DefaultRegistry: rubygems.RegistryName,
	ExactIsPinned:   true,
	ParseSpec:       version.ParseRuby,
	Manifests:       []deps.ManifestParser{&Gemfile{}},
	NewFetcher:      newFetcher,
}

func newFetcher(backend cache.Cache, baseURL string, opts ...integrations.Option) deps.Fetcher {
	return rubygems.NewClient(backend, baseURL, opts...)
}
