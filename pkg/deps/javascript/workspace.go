package javascript

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/errors"
)

const workspaceFile = "pnpm-workspace.yaml"

// workspaceConfig is the part of pnpm-workspace.yaml depup reads.
type workspaceConfig struct {
	Packages          []string  `yaml:"packages"`
	MinimumReleaseAge yaml.Node `yaml:"minimumReleaseAge"`
}

func readWorkspace(dir string) (*workspaceConfig, bool, error) {
	path := filepath.Join(dir, workspaceFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeManifestRead, err, "failed to read %s", path)
	}
	var cfg workspaceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, true, errors.New(errors.ErrCodeManifestParse, "failed to parse YAML in %s: %v", path, err)
	}
	return &cfg, true, nil
}

// discover returns the root package.json and, for a pnpm workspace, the
// package.json of each member directory.
func discover(dir string, lang *deps.Language) ([]deps.Manifest, error) {
	cfg, isWorkspace, err := readWorkspace(dir)
	if err != nil {
		return nil, err
	}

	var out []deps.Manifest
	root := filepath.Join(dir, "package.json")
	if exists(root) {
		out = append(out, deps.Manifest{Path: root, Language: lang, WorkspaceRoot: isWorkspace})
	}
	if !isWorkspace {
		return out, nil
	}

	for _, path := range WorkspaceMembers(dir, cfg.Packages) {
		out = append(out, deps.Manifest{Path: path, Language: lang})
	}
	return out, nil
}

// WorkspaceMembers expands pnpm package patterns to package.json paths.
//
// "packages/*" and "apps/**" both list the directories directly under the
// prefix. Any other pattern is taken as a relative path. Exclusions ("!x")
// are ignored, as are directories without a package.json. The root
// package.json is never returned.
func WorkspaceMembers(dir string, patterns []string) []string {
	root := filepath.Join(dir, "package.json")
	seen := map[string]bool{root: true}
	var out []string
	add := func(path string) {
		if !seen[path] && exists(path) {
			seen[path] = true
			out = append(out, path)
		}
	}

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" || strings.HasPrefix(pattern, "!") {
			continue
		}
		pattern = strings.TrimPrefix(pattern, "./")

		base, ok := strings.CutSuffix(pattern, "/**")
		if !ok {
			base, ok = strings.CutSuffix(pattern, "/*")
		}
		if !ok {
			if !strings.ContainsAny(pattern, "*?[") {
				add(filepath.Join(dir, filepath.FromSlash(pattern), "package.json"))
			}
			continue
		}

		entries, err := os.ReadDir(filepath.Join(dir, filepath.FromSlash(base)))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				add(filepath.Join(dir, filepath.FromSlash(base), e.Name(), "package.json"))
			}
		}
	}
	return out
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
