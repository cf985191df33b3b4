package php

import (
	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/integrations/packagist"
	"github.com/matzehuels/depup/pkg/version"
)

const languageName = "php"

// Language provides PHP dependency updates via Packagist.
// Supports composer.json manifests.
var Language = &deps.Language{
	Name:            languageName,
	DisplayName:     "PHP",
	ManifestFiles:   []string{"composer.json"},
	LockFiles:       []string{"composer.lock"},
	DefaultRegistry: packagist.RegistryName,
	ExactIsPinned:   true,
	ParseSpec:       version.ParsePHP,
	Manifests:       []deps.ManifestParser{&ComposerJSON{}},
	NewFetcher:      newFetcher,
}

func newFetcher(backend cache.Cache, baseURL string, opts ...integrations.Option) deps.Fetcher {
	return packagist.NewClient(backend, baseURL, opts...)
}
