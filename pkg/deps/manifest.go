package deps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/depup/pkg/errors"
)

// DetectManifest finds a parser that supports the given file path.
// Returns an error if no parser matches.
func DetectManifest(path string, parsers ...ManifestParser) (ManifestParser, error) {
	name := filepath.Base(path)
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unsupported manifest: %s", name)
}

// Detect lists the manifests of dir for each language, in the order of langs.
// Only the root is searched unless a language brings its own Discover.
func Detect(dir string, langs []*Language) ([]Manifest, error) {
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return nil, errors.New(errors.ErrCodeDirectoryNotFound, "directory not found: %s", dir)
	case os.IsPermission(err):
		return nil, errors.New(errors.ErrCodePermissionDenied, "permission denied: %s", dir)
	case err != nil:
		return nil, errors.Wrap(errors.ErrCodeIO, err, "cannot read %s", dir)
	case !info.IsDir():
		return nil, errors.New(errors.ErrCodeDirectoryNotFound, "directory not found: %s", dir)
	}

	var out []Manifest
	for _, lang := range langs {
		discover := RootManifests
		if lang.Discover != nil {
			discover = lang.Discover
		}
		found, err := discover(dir, lang)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

// RootManifests returns each of lang's manifest files present directly in
// dir.
func RootManifests(dir string, lang *Language) ([]Manifest, error) {
	var out []Manifest
	for _, name := range lang.ManifestFiles {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			out = append(out, Manifest{Path: path, Language: lang})
		}
	}
	return out, nil
}

// ReadManifest reads a manifest file, mapping failures onto manifest error
// codes.
func ReadManifest(path string) (string, error) {
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return "", errors.New(errors.ErrCodeManifestNotFound, "manifest not found: %s", path)
	case os.IsPermission(err):
		return "", errors.New(errors.ErrCodePermissionDenied, "permission denied: %s", path)
	case err != nil:
		return "", errors.New(errors.ErrCodeManifestRead, "failed to read %s: %v", path, err)
	}
	return string(data), nil
}
