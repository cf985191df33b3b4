package crates

import (
	"context"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/integrations"
)

// DefaultBaseURL is the crates.io API root.
const DefaultBaseURL = "https://crates.io/api/v1"

// RegistryName is the display name used in messages and memo keys.
const RegistryName = "crates.io"

// MinInterval is the crates.io crawler policy: at most one request per second.
const MinInterval = time.Second

// Client provides access to the crates.io package registry API.
//
// All methods are safe for concurrent use by multiple goroutines. Requests
// are spaced at least [MinInterval] apart across all callers.
type Client struct {
	*integrations.Client
	baseURL string
	limiter *rate.Limiter
}

// NewClient creates a crates.io client. An empty baseURL selects [DefaultBaseURL].
func NewClient(backend cache.Cache, baseURL string, opts ...integrations.Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]integrations.Option{integrations.ScopeKeys(baseURL)}, opts...)
	return &Client{
		Client:  integrations.NewClient(backend, RegistryName, nil, opts...),
		baseURL: baseURL,
		limiter: rate.NewLimiter(rate.Every(MinInterval), 1),
	}
}

// FetchVersions lists the non-yanked versions of a crate, sorted ascending.
func (c *Client) FetchVersions(ctx context.Context, crate string) ([]integrations.Release, error) {
	crate = strings.TrimSpace(crate)
	if err := integrations.ValidateName(crate); err != nil {
		return nil, err
	}

	var releases []integrations.Release
	err := c.Cached(ctx, c.VersionsKey(crate), &releases, func() error {
		return c.fetch(ctx, crate, &releases)
	})
	if err != nil {
		return nil, err
	}
	return releases, nil
}

func (c *Client) fetch(ctx context.Context, crate string, out *[]integrations.Release) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var data crateResponse
	if err := c.Get(ctx, c.baseURL+"/crates/"+crate, crate, &data); err != nil {
		return err
	}

	releases := make([]integrations.Release, 0, len(data.Versions))
	for _, v := range data.Versions {
		if v.Yanked {
			continue
		}
		if at, ok := integrations.ParseTime(v.CreatedAt); ok {
			releases = append(releases, integrations.Release{Version: v.Num, ReleasedAt: at})
		}
	}
	integrations.SortReleases(releases)
	*out = releases
	return nil
}

type crateResponse struct {
	Versions []struct {
		Num       string `json:"num"`
		CreatedAt string `json:"created_at"`
		Yanked    bool   `json:"yanked"`
	} `json:"versions"`
}
