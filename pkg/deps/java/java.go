package java

import (
	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/integrations/maven"
	"github.com/matzehuels/depup/pkg/version"
)

const languageName = "java"

// Language provides Java dependency updates via Maven Central.
// Supports Gradle build scripts in both the Groovy and Kotlin DSL.
//
// Gradle versions are exact by construction, so they are not pinned.
var Language = &deps.Language{
	Name:            languageName,
	DisplayName:     "Java",
	ManifestFiles:   []string{"build.gradle", "build.gradle.kts"},
	LockFiles:       []string{"gradle.lockfile"},
	DefaultRegistry: maven.RegistryName,
	ParseSpec:       version.ParseJava,
	Manifests:       []deps.ManifestParser{&Gradle{}},
	NewFetcher:      newFetcher,
}

func newFetcher(backend cache.Cache, baseURL string, opts ...integrations.Option) deps.Fetcher {
	return maven.NewClient(backend, baseURL, opts...)
}
