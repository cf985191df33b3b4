package rust

import (
	"path/filepath"

	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/integrations/crates"
	"github.com/matzehuels/depup/pkg/version"
)

const languageName = "rust"

// Language provides Rust dependency updates via crates.io.
// Supports Cargo.toml, including a Tauri app's src-tauri crate.
var Language = &deps.Language{
	Name:            languageName,
	DisplayName:     "Rust",
	ManifestFiles:   []string{"Cargo.toml"},
	LockFiles:       []string{"Cargo.lock"},
	DefaultRegistry: crates.RegistryName,
	ExactIsPinned:   true,
	FetchLimit:      1,
	ParseSpec:       version.ParseRust,
	Manifests:       []deps.ManifestParser{&CargoToml{}},
	NewFetcher:      newFetcher,
	Discover:        discover,
}

func newFetcher(backend cache.Cache, baseURL string, opts ...integrations.Option) deps.Fetcher {
	return crates.NewClient(backend, baseURL, opts...)
}

// discover adds src-tauri/Cargo.toml to the root manifest.
func discover(dir string, lang *deps.Language) ([]deps.Manifest, error) {
	out, err := deps.RootManifests(dir, lang)
	if err != nil {
		return nil, err
	}
	tauri := deps.Manifest{Path: filepath.Join(dir, "src-tauri", "Cargo.toml"), Language: lang, Tauri: true}
	if found, _ := deps.RootManifests(filepath.Dir(tauri.Path), lang); len(found) > 0 {
		out = append(out, tauri)
	}
	return out, nil
}
