package javascript

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/depup/pkg/config"
)

// PnpmSettings holds the pnpm options that affect updates.
type PnpmSettings struct {
	MinimumReleaseAge time.Duration
	Source            string // file the age was read from
}

// UsesPnpm reports whether dir is managed by pnpm.
func UsesPnpm(dir string) bool {
	return exists(filepath.Join(dir, workspaceFile)) || exists(filepath.Join(dir, "pnpm-lock.yaml"))
}

// ReadPnpmSettings reads minimumReleaseAge for the project in dir. The first
// source that defines it wins:
//
//  1. .npmrc "minimum-release-age=10d"
//  2. pnpm-workspace.yaml "minimumReleaseAge", in minutes or as "2w"
//  3. package.json "pnpm.settings.minimumReleaseAge"
//
// Unreadable files and malformed values are treated as unset.
func ReadPnpmSettings(dir string) (PnpmSettings, bool) {
	readers := []struct {
		file string
		read func(string) (time.Duration, bool)
	}{
		{".npmrc", npmrcAge},
		{workspaceFile, workspaceAge},
		{"package.json", packageJSONAge},
	}
	for _, r := range readers {
		path := filepath.Join(dir, r.file)
		if age, ok := r.read(path); ok {
			return PnpmSettings{MinimumReleaseAge: age, Source: path}, true
		}
	}
	return PnpmSettings{}, false
}

func npmrcAge(path string) (time.Duration, bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if v, ok := strings.CutPrefix(line, "minimum-release-age="); ok {
			return parseAge(unquote(v))
		}
	}
	return 0, false
}

func workspaceAge(path string) (time.Duration, bool) {
	cfg, ok, err := readWorkspace(filepath.Dir(path))
	if err != nil || !ok || cfg.MinimumReleaseAge.Kind != yaml.ScalarNode {
		return 0, false
	}
	v := cfg.MinimumReleaseAge.Value
	if minutes, err := strconv.ParseUint(v, 10, 32); err == nil {
		return time.Duration(minutes) * time.Minute, true
	}
	return parseAge(v)
}

func packageJSONAge(path string) (time.Duration, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	var pkg struct {
		Pnpm struct {
			Settings struct {
				MinimumReleaseAge string `json:"minimumReleaseAge"`
			} `json:"settings"`
		} `json:"pnpm"`
	}
	if json.Unmarshal(data, &pkg) != nil {
		return 0, false
	}
	return parseAge(pkg.Pnpm.Settings.MinimumReleaseAge)
}

func parseAge(s string) (time.Duration, bool) {
	d, err := config.ParseAge(s)
	return d, err == nil
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'`)
}
