// Package languages provides the complete list of supported language ecosystems.
//
// This package exists to break import cycles: the individual language packages
// (python, rust, etc.) import pkg/deps, so pkg/deps cannot import them back.
// Instead, consumers that need the full language list import this package.
//
// Usage:
//
//	import "github.com/matzehuels/depup/pkg/deps/languages"
//
//	for _, lang := range languages.All {
//	    fmt.Println(lang.Name)
//	}
package languages

import (
	"strings"

	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/deps/golang"
	"github.com/matzehuels/depup/pkg/deps/java"
	"github.com/matzehuels/depup/pkg/deps/javascript"
	"github.com/matzehuels/depup/pkg/deps/php"
	"github.com/matzehuels/depup/pkg/deps/python"
	"github.com/matzehuels/depup/pkg/deps/ruby"
	"github.com/matzehuels/depup/pkg/deps/rust"
)

// All is the canonical list of supported package ecosystems, in the order
// manifests are detected and reported.
var All = []*deps.Language{
	javascript.Language,
	python.Language,
	rust.Language,
	golang.Language,
	ruby.Language,
	php.Language,
	java.Language,
}

var aliases = map[string]string{
	"js":         "node",
	"javascript": "node",
	"npm":        "node",
	"py":         "python",
	"pypi":       "python",
	"cargo":      "rust",
	"crates":     "rust",
	"golang":     "go",
	"goproxy":    "go",
	"gem":        "ruby",
	"rubygems":   "ruby",
	"composer":   "php",
	"packagist":  "php",
	"gradle":     "java",
	"maven":      "java",
}

// Find returns the Language with the given name or alias, or nil if not
// found. Matching is case-insensitive.
func Find(name string) *deps.Language {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	for _, l := range All {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Names returns the identifiers of All.
func Names() []string {
	out := make([]string, len(All))
	for i, l := range All {
		out[i] = l.Name
	}
	return out
}
