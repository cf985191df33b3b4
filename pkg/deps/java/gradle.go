package java

import (
	"regexp"
	"strings"

	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/errors"
	"github.com/matzehuels/depup/pkg/version"
)

// Gradle reads and rewrites build.gradle and build.gradle.kts files.
type Gradle struct{}

func (g *Gradle) Type() string { return "build.gradle" }

func (g *Gradle) Supports(name string) bool {
	return name == "build.gradle" || name == "build.gradle.kts"
}

var (
	depMap       = regexp.MustCompile(`^\s*(\w+)\s*[(\s]+group\s*[:=]\s*['"]([^'"]+)['"]\s*,\s*name\s*[:=]\s*['"]([^'"]+)['"]\s*,\s*version\s*[:=]\s*['"]?([^'",)\s]+)['"]?`)
	depStringVar = regexp.MustCompile(`^\s*(\w+)\s*[(\s]*"([^:"]+):([^:"]+):\$\{?(\w+)\}?"`)
	depString    = regexp.MustCompile(`^\s*(\w+)\s*[(\s]*['"]([^:'"]+):([^:'"]+):([^'"]+)['"]`)
)

// devConfigurations are the Gradle configurations that only feed tests or
// debug builds.
var devConfigurations = map[string]bool{
	"testImplementation":        true,
	"testCompileOnly":           true,
	"testRuntimeOnly":           true,
	"testApi":                   true,
	"androidTestImplementation": true,
	"debugImplementation":       true,
}

// Parse returns dependencies declared in map notation
//
//	implementation group: 'g', name: 'a', version: 'v'
//
// or string notation, optionally interpolating a variable
//
//	implementation 'g:a:v'
//	implementation "g:a:$gVersion"
//
// A version that names a def, val or ext variable is resolved through it and
// recorded in Dependency.Variable.
func (g *Gradle) Parse(path, content string) ([]deps.Dependency, error) {
	vars := extractVariables(content)
	var out []deps.Dependency
	forEachLine(content, func(line string, _ int) {
		if d, ok := parseLine(line, vars); ok {
			out = append(out, d)
		}
	})
	return out, nil
}

func parseLine(line string, vars map[string]variable) (deps.Dependency, bool) {
	var config, group, artifact, raw, varName string

	if m := depMap.FindStringSubmatch(line); m != nil {
		config, group, artifact = m[1], m[2], m[3]
		raw, varName = resolveVersion(m[4], vars)
	} else if m := depStringVar.FindStringSubmatch(line); m != nil {
		config, group, artifact, varName = m[1], m[2], m[3], m[4]
		if v, ok := vars[varName]; ok {
			raw = v.value
		} else {
			varName = ""
		}
	} else if m := depString.FindStringSubmatch(line); m != nil {
		config, group, artifact, raw = m[1], m[2], m[3], m[4]
	} else {
		return deps.Dependency{}, false
	}

	spec, ok := version.ParseJava(raw)
	if !ok {
		return deps.Dependency{}, false
	}
	return deps.Dependency{
		Name:     group + ":" + artifact,
		Spec:     spec,
		Dev:      devConfigurations[config],
		Language: languageName,
		Variable: varName,
	}, true
}

// resolveVersion maps the version token of a map declaration to its value.
// "${name}", "$name" and a bare identifier refer to a variable.
func resolveVersion(token string, vars map[string]variable) (string, string) {
	token = strings.TrimSpace(token)

	var name string
	switch {
	case strings.HasPrefix(token, "${") && strings.HasSuffix(token, "}"):
		name = token[2 : len(token)-1]
	case strings.HasPrefix(token, "$"):
		name = token[1:]
	case token != "" && (token[0] < '0' || token[0] > '9'):
		name = token
	}
	if v, ok := vars[name]; ok && name != "" {
		return v.value, name
	}
	return strings.Trim(token, `'"`), ""
}

// Update rewrites the version of the first declaration of pkg. When that
// declaration goes through a variable, the variable's definition is
// rewritten instead and the dependency line is left alone.
func (g *Gradle) Update(path, content, pkg, newVersion string) (string, error) {
	groupID, artifactID, ok := strings.Cut(pkg, ":")
	if !ok || groupID == "" || artifactID == "" || strings.Contains(artifactID, ":") {
		return "", errors.New(errors.ErrCodeInvalidVersionSpec,
			"invalid version specification '%s' in %s: expected 'group:artifact'", pkg, path)
	}

	vars := extractVariables(content)
	var (
		dep        deps.Dependency
		start, end int
		found      bool
	)
	forEachLine(content, func(line string, offset int) {
		if found {
			return
		}
		if d, ok := parseLine(line, vars); ok && d.Name == pkg {
			dep, start, end, found = d, offset, offset+len(line), true
		}
	})
	if !found {
		return "", deps.ErrNotUpdated(path, pkg)
	}

	if v, ok := vars[dep.Variable]; ok && dep.Variable != "" {
		return content[:v.start] + deps.FormatVersion(dep.Spec, newVersion) + content[v.end:], nil
	}

	rewrite := deps.SpecRewriter(version.ParseJava, newVersion)
	g1, a1 := regexp.QuoteMeta(groupID), regexp.QuoteMeta(artifactID)
	for _, re := range []*regexp.Regexp{
		regexp.MustCompile(`group\s*[:=]\s*['"]` + g1 + `['"]\s*,\s*name\s*[:=]\s*['"]` + a1 + `['"]\s*,\s*version\s*[:=]\s*['"]([^'"$]+)['"]`),
		regexp.MustCompile(`['"]` + g1 + `:` + a1 + `:([^'"$]+)['"]`),
	} {
		if line, ok := deps.EditFirst(content[start:end], re, 1, rewrite); ok {
			return content[:start] + line + content[end:], nil
		}
	}
	return "", deps.ErrNotUpdated(path, pkg)
}
