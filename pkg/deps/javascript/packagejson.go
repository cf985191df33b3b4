package javascript

import (
	"strings"

	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/version"
)

// sections are the package.json objects that declare dependencies.
// Peer and optional dependencies count as production.
var sections = []string{"dependencies", "devDependencies", "peerDependencies", "optionalDependencies"}

// PackageJSON reads and rewrites package.json files.
type PackageJSON struct{}

func (p *PackageJSON) Type() string              { return "package.json" }
func (p *PackageJSON) Supports(name string) bool { return strings.EqualFold(name, "package.json") }

// Parse returns the dependencies of every section in file order. Non-semver
// values such as "workspace:*", "file:../x" or git URLs are skipped.
func (p *PackageJSON) Parse(path, content string) ([]deps.Dependency, error) {
	entries, err := deps.ScanJSONSections(content, sections...)
	if err != nil {
		return nil, deps.ParseError("JSON", path, err)
	}

	var out []deps.Dependency
	for _, e := range entries {
		spec, ok := version.ParseNode(e.Value)
		if !ok {
			continue
		}
		out = append(out, deps.Dependency{
			Name:     e.Name,
			Spec:     spec,
			Dev:      e.Section == "devDependencies",
			Language: languageName,
		})
	}
	return out, nil
}

// Update rewrites the first declaration of pkg with a recognised constraint.
func (p *PackageJSON) Update(path, content, pkg, newVersion string) (string, error) {
	return deps.UpdateJSON(path, content, pkg, newVersion, version.ParseNode, sections...)
}
