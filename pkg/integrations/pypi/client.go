package pypi

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/integrations"
)

// DefaultBaseURL is the public Python Package Index.
const DefaultBaseURL = "https://pypi.org/pypi"

// RegistryName is the display name used in messages and memo keys.
const RegistryName = "PyPI"

// Client provides access to the PyPI JSON API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PyPI client. An empty baseURL selects [DefaultBaseURL].
func NewClient(backend cache.Cache, baseURL string, opts ...integrations.Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]integrations.Option{integrations.ScopeKeys(baseURL)}, opts...)
	return &Client{
		Client:  integrations.NewClient(backend, RegistryName, nil, opts...),
		baseURL: baseURL,
	}
}

// FetchVersions lists the published versions of pkg, sorted ascending.
//
// The release time of a version is the earliest upload among its files.
// Versions whose files are all yanked, or that have no files, are dropped.
func (c *Client) FetchVersions(ctx context.Context, pkg string) ([]integrations.Release, error) {
	pkg = integrations.NormalizePkgName(pkg)
	if err := integrations.ValidateName(pkg); err != nil {
		return nil, err
	}

	var releases []integrations.Release
	err := c.Cached(ctx, c.VersionsKey(pkg), &releases, func() error {
		return c.fetch(ctx, pkg, &releases)
	})
	if err != nil {
		return nil, err
	}
	return releases, nil
}

func (c *Client) fetch(ctx context.Context, pkg string, out *[]integrations.Release) error {
	var data apiResponse
	if err := c.Get(ctx, c.baseURL+"/"+pkg+"/json", pkg, &data); err != nil {
		return err
	}

	releases := make([]integrations.Release, 0, len(data.Releases))
	for v, files := range data.Releases {
		if at, ok := earliestUpload(files); ok {
			releases = append(releases, integrations.Release{Version: v, ReleasedAt: at})
		}
	}
	integrations.SortReleases(releases)
	*out = releases
	return nil
}

func earliestUpload(files []releaseFile) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, f := range files {
		if f.Yanked {
			continue
		}
		t, ok := integrations.ParseTime(f.UploadTime)
		if !ok {
			continue
		}
		if !found || t.Before(earliest) {
			earliest, found = t, true
		}
	}
	return earliest, found
}

type apiResponse struct {
	Releases map[string][]releaseFile `json:"releases"`
}

type releaseFile struct {
	UploadTime string `json:"upload_time_iso_8601"`
	Yanked     bool   `json:"yanked"`
}
