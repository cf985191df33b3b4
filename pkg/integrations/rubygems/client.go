package rubygems

import (
	"context"
	"net/url"
	"strings"

	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/integrations"
)

// DefaultBaseURL is the public RubyGems API.
const DefaultBaseURL = "https://rubygems.org/api/v1"

// RegistryName is the display name used in messages and memo keys.
const RegistryName = "RubyGems"

// Client provides access to the RubyGems.org API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a RubyGems client. An empty baseURL selects [DefaultBaseURL].
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

// FetchVersions lists the non-yanked versions of a gem, sorted ascending.
func (c *Client) FetchVersions(ctx context.Context, gem string) ([]integrations.Release, error) {
	gem = strings.TrimSpace(gem)
	if err := integrations.ValidateName(gem); err != nil {
		return nil, err
	}

	var releases []integrations.Release
	err := c.Cached(ctx, c.VersionsKey(gem), &releases, func() error {
		return c.fetch(ctx, gem, &releases)
	})
	if err != nil {
		return nil, err
	}
	return releases, nil
}

func (c *Client) fetch(ctx context.Context, gem string, out *[]integrations.Release) error {
	var data []gemVersion
	if err := c.Get(ctx, c.baseURL+"/versions/"+url.PathEscape(gem)+".json", gem, &data); err != nil {
		return err
	}

	releases := make([]integrations.Release, 0, len(data))
	for _, v := range data {
		if v.Yanked || (v.Platform != "" && v.Platform != "ruby") {
			continue
		}
		if at, ok := integrations.ParseTime(v.CreatedAt); ok {
			releases = append(releases, integrations.Release{Version: v.Number, ReleasedAt: at})
		}
	}
	integrations.SortReleases(releases)
	*out = releases
	return nil
}

type gemVersion struct {
	Number    string `json:"number"`
	Platform  string `json:"platform"`
	CreatedAt string `json:"created_at"`
	Yanked    bool   `json:"yanked"`
}
