// Package pypi provides an HTTP client for the Python Package Index.
//
// # Overview
//
// Versions are read from the JSON API (https://pypi.org/pypi/<name>/json).
// Names are normalized per PEP 503 before the request, so "Django",
// "django" and "DJANGO" share one memo entry.
//
// # Usage
//
//	client := pypi.NewClient(cache.NewMemoryCache(0), "")
//	releases, err := client.FetchVersions(ctx, "requests")
//
// # Release Times
//
// PyPI records an upload time per distribution file (sdist, wheels). The
// release time of a version is the earliest non-yanked upload. A version
// without any such file has no release time and is dropped.
package pypi
