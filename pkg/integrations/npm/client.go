package npm

import (
	"context"
	"net/url"
	"strings"

	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/version"
)

// DefaultBaseURL is the public npm registry.
const DefaultBaseURL = "https://registry.npmjs.org"

// RegistryName is the display name used in messages and memo keys.
const RegistryName = "npm"

// Client provides access to the npm registry API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates an npm client. An empty baseURL selects [DefaultBaseURL].
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
// Versions that order above the "latest" dist-tag are dropped, which keeps
// canary builds such as 19.3.0-canary-... out while latest is 19.2.1.
func (c *Client) FetchVersions(ctx context.Context, pkg string) ([]integrations.Release, error) {
	pkg = strings.TrimSpace(pkg)
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
	var data registryResponse
	if err := c.Get(ctx, c.baseURL+"/"+url.PathEscape(pkg), pkg, &data); err != nil {
		return err
	}

	latest := data.DistTags.Latest
	releases := make([]integrations.Release, 0, len(data.Versions))
	for v := range data.Versions {
		if latest != "" && version.Compare(v, latest) > 0 {
			continue
		}
		at, ok := integrations.ParseTime(data.Time[v])
		if !ok {
			continue
		}
		releases = append(releases, integrations.Release{Version: v, ReleasedAt: at})
	}
	integrations.SortReleases(releases)
	*out = releases
	return nil
}

type registryResponse struct {
	DistTags distTags            `json:"dist-tags"`
	Versions map[string]struct{} `json:"versions"`
	Time     map[string]string   `json:"time"`
}

type distTags struct {
	Latest string `json:"latest"`
}
