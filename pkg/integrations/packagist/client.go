package packagist

import (
	"context"
	"strings"

	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/errors"
	"github.com/matzehuels/depup/pkg/integrations"
)

// DefaultBaseURL is the Packagist metadata mirror.
const DefaultBaseURL = "https://repo.packagist.org"

// RegistryName is the display name used in messages and memo keys.
const RegistryName = "Packagist"

// Client provides access to the Packagist composer v2 metadata API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Packagist client. An empty baseURL selects [DefaultBaseURL].
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

// FetchVersions lists the tagged versions of a vendor/package, sorted
// ascending. Development branches are dropped and a leading "v" is stripped.
func (c *Client) FetchVersions(ctx context.Context, pkg string) ([]integrations.Release, error) {
	pkg = strings.ToLower(strings.TrimSpace(pkg))
	if err := integrations.ValidateName(pkg); err != nil {
		return nil, err
	}
	if vendor, name, ok := strings.Cut(pkg, "/"); !ok || vendor == "" || name == "" || strings.Contains(name, "/") {
		return nil, errors.Wrap(errors.ErrCodeInvalidPackageName, integrations.ErrInvalidPackageName,
			"invalid package name '%s': expected 'vendor/package'", pkg)
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
	var data p2Response
	if err := c.Get(ctx, c.baseURL+"/p2/"+pkg+".json", pkg, &data); err != nil {
		return err
	}

	entries := data.Packages[pkg]
	releases := make([]integrations.Release, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Version), "dev") {
			continue
		}
		if at, ok := integrations.ParseTime(e.Time); ok {
			releases = append(releases, integrations.Release{
				Version:    strings.TrimPrefix(e.Version, "v"),
				ReleasedAt: at,
			})
		}
	}
	integrations.SortReleases(releases)
	*out = releases
	return nil
}

type p2Response struct {
	Packages map[string][]struct {
		Version string `json:"version"`
		Time    string `json:"time"`
	} `json:"packages"`
}
