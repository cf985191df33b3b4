package python

import (
	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/integrations/pypi"
	"github.com/matzehuels/depup/pkg/version"
)

const languageName = "python"

// Language provides Python dependency updates via PyPI.
// Supports pyproject.toml in PEP 621 and Poetry layouts.
var Language = &deps.Language{
	Name:            languageName,
	DisplayName:     "Python",
	ManifestFiles:   []string{"pyproject.toml"},
	LockFiles:       []string{"uv.lock", "rye.lock", "poetry.lock"},
	DefaultRegistry: pypi.RegistryName,
	ExactIsPinned:   true,
	ParseSpec:       version.ParsePython,
	Manifests:       []deps.ManifestParser{&Pyproject{}},
	NewFetcher:      newFetcher,
}

func newFetcher(backend cache.Cache, baseURL string, opts ...integrations.Option) deps.Fetcher {
	return pypi.NewClient(backend, baseURL, opts...)
}
