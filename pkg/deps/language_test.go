package deps

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/version"
)

func TestLanguageIsPinned(t *testing.T) {
	exact := version.New(version.Exact, "1.0.0", "1.0.0")
	caret := version.New(version.Caret, "^1.0.0", "1.0.0").WithPrefix("^")
	goPinned := version.New(version.GoPinned, "v1.0.0", "1.0.0")

	strict := &Language{Name: "node", ExactIsPinned: true}
	loose := &Language{Name: "go"}

	tests := []struct {
		name string
		lang *Language
		dep  Dependency
		want bool
	}{
		{"exact pins node", strict, Dependency{Spec: exact}, true},
		{"caret is free", strict, Dependency{Spec: caret}, false},
		{"exact is free for go", loose, Dependency{Spec: exact}, false},
		{"pinned flag", loose, Dependency{Spec: exact, Pinned: true}, true},
		{"go pinned kind", loose, Dependency{Spec: goPinned}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lang.IsPinned(tt.dep); got != tt.want {
				t.Errorf("IsPinned() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLanguageManifest(t *testing.T) {
	p := &mockManifestParser{typeName: "go.mod", files: []string{"go.mod"}}
	lang := &Language{Name: "go", Manifests: []ManifestParser{p}}

	if !lang.HasManifests() {
		t.Error("expected HasManifests")
	}
	if got, ok := lang.Manifest("go.mod"); !ok || got != p {
		t.Errorf("Manifest(go.mod) = %v, %v", got, ok)
	}
	if _, ok := lang.Manifest("go.sum"); ok {
		t.Error("expected no parser for go.sum")
	}
}

func TestLanguageFetcher(t *testing.T) {
	lang := &Language{Name: "none"}
	if _, err := lang.Fetcher(nil, ""); err == nil {
		t.Error("expected error without NewFetcher")
	}

	var gotURL string
	lang.NewFetcher = func(backend cache.Cache, baseURL string, opts ...integrations.Option) Fetcher {
		gotURL = baseURL
		return nil
	}
	if _, err := lang.Fetcher(nil, "http://mirror"); err != nil {
		t.Fatalf("Fetcher failed: %v", err)
	}
	if gotURL != "http://mirror" {
		t.Errorf("expected base URL to be passed through, got %q", gotURL)
	}
}

func TestLanguageHasLockFile(t *testing.T) {
	dir := t.TempDir()
	lang := &Language{LockFiles: []string{"package-lock.json", "pnpm-lock.yaml"}}

	if _, ok := lang.HasLockFile(dir); ok {
		t.Error("expected no lock file")
	}
	writeFile(t, filepath.Join(dir, "pnpm-lock.yaml"), "")
	if name, ok := lang.HasLockFile(dir); !ok || name != "pnpm-lock.yaml" {
		t.Errorf("HasLockFile() = %q, %v", name, ok)
	}
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		spec version.Spec
		want string
	}{
		{version.New(version.Tilde, "~4.18.0", "4.18.0").WithPrefix("~"), "~4.19.0"},
		{version.New(version.Range, ">=4.0.0 <5.0.0", "4.0.0"), "4.19.0"},
		{version.New(version.Wildcard, "4.x", "4.x"), "4.19.0"},
		{version.New(version.Exact, "4.18.0", "4.18.0"), "4.19.0"},
	}
	for _, tt := range tests {
		if got := FormatVersion(tt.spec, "4.19.0"); got != tt.want {
			t.Errorf("FormatVersion(%s) = %s, want %s", tt.spec.Raw, got, tt.want)
		}
	}
}
