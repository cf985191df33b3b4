// Package config loads the optional per-project settings file.
//
// depup looks for depup.toml, then .depup.toml, in the target directory:
//
//	exclude        = ["typescript"]
//	only           = []
//	include_pinned = false
//	age            = "2w"
//	languages      = ["node", "rust"]
//
//	[registries]
//	npm = "https://npm.internal.example.com"
//
// Command-line flags take precedence over the file. See [File] for field
// semantics.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depup/pkg/errors"
)

// FileNames are the settings files looked for, in order.
var FileNames = []string{"depup.toml", ".depup.toml"}

// File is the decoded settings file.
type File struct {
	Exclude       []string          `toml:"exclude"`
	Only          []string          `toml:"only"`
	IncludePinned *bool             `toml:"include_pinned"`
	Age           string            `toml:"age"`
	Languages     []string          `toml:"languages"`
	Registries    map[string]string `toml:"registries"` // language name -> base URL

	// Path is the file the settings were read from, empty when none exists.
	Path string `toml:"-"`
}

// MinAge returns the parsed age, or zero and false when unset.
func (f *File) MinAge() (time.Duration, bool, error) {
	if f == nil || f.Age == "" {
		return 0, false, nil
	}
	d, err := ParseAge(f.Age)
	if err != nil {
		return 0, false, err
	}
	return d, true, nil
}

// Load reads the settings file of dir. A missing file yields an empty File.
func Load(dir string) (*File, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFile(path)
	}
	return &File{}, nil
}

// LoadFile decodes the settings file at path. Unknown keys are rejected so
// typos do not silently disable a filter.
func LoadFile(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		if os.IsPermission(err) {
			return nil, errors.New(errors.ErrCodePermissionDenied, "permission denied: %s", path)
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid config %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"invalid config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if _, _, err := f.MinAge(); err != nil {
		return nil, err
	}
	f.Path = path
	return &f, nil
}
