package goproxy

import (
	"bufio"
	"context"
	"strings"
	"sync"

	"golang.org/x/mod/module"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/errors"
	"github.com/matzehuels/depup/pkg/integrations"
)

// DefaultBaseURL is the public Go module proxy.
const DefaultBaseURL = "https://proxy.golang.org"

// RegistryName is the display name used in messages and memo keys.
const RegistryName = "Go Proxy"

// infoConcurrency bounds the per-version .info requests of one module.
const infoConcurrency = 4

// Client provides access to the Go module proxy protocol.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Go module proxy client. An empty baseURL selects
// [DefaultBaseURL].
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

// FetchVersions lists the tagged versions of a module, sorted ascending.
//
// Versions are returned without the leading "v" ("1.2.3", "2.0.0+incompatible")
// so they compare and print the same way as the versions read from go.mod.
// A version whose .info request fails is skipped.
func (c *Client) FetchVersions(ctx context.Context, mod string) ([]integrations.Release, error) {
	mod = strings.TrimSpace(mod)
	if err := integrations.ValidateName(mod); err != nil {
		return nil, err
	}
	escaped, err := module.EscapePath(mod)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPackageName, integrations.ErrInvalidPackageName,
			"invalid module path '%s': %v", mod, err)
	}

	var releases []integrations.Release
	err = c.Cached(ctx, c.VersionsKey(mod), &releases, func() error {
		return c.fetch(ctx, mod, escaped, &releases)
	})
	if err != nil {
		return nil, err
	}
	return releases, nil
}

func (c *Client) fetch(ctx context.Context, mod, escaped string, out *[]integrations.Release) error {
	list, err := c.GetText(ctx, c.baseURL+"/"+escaped+"/@v/list", mod)
	if err != nil {
		return err
	}

	var (
		mu       sync.Mutex
		releases []integrations.Release
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(infoConcurrency)

	scanner := bufio.NewScanner(strings.NewReader(list))
	for scanner.Scan() {
		v := strings.TrimSpace(scanner.Text())
		if v == "" {
			continue
		}
		g.Go(func() error {
			rel, ok := c.fetchInfo(gctx, mod, escaped, v)
			if ok {
				mu.Lock()
				releases = append(releases, rel)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return err
	}

	integrations.SortReleases(releases)
	*out = releases
	return nil
}

func (c *Client) fetchInfo(ctx context.Context, mod, escaped, v string) (integrations.Release, bool) {
	ev, err := module.EscapeVersion(v)
	if err != nil {
		return integrations.Release{}, false
	}
	var info infoResponse
	if err := c.Get(ctx, c.baseURL+"/"+escaped+"/@v/"+ev+".info", mod, &info); err != nil {
		return integrations.Release{}, false
	}
	at, ok := integrations.ParseTime(info.Time)
	if !ok {
		return integrations.Release{}, false
	}
	name := info.Version
	if name == "" {
		name = v
	}
	return integrations.Release{Version: strings.TrimPrefix(name, "v"), ReleasedAt: at}, true
}

type infoResponse struct {
	Version string `json:"Version"`
	Time    string `json:"Time"`
}
