package maven

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/errors"
	"github.com/matzehuels/depup/pkg/integrations"
)

// DefaultBaseURL is the Maven Central search endpoint.
const DefaultBaseURL = "https://search.maven.org/solrsearch/select"

// RegistryName is the display name used in messages and memo keys.
const RegistryName = "Maven Central"

// maxRows is the page size requested from the search API.
const maxRows = 100

// Client provides access to the Maven Central search API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Maven Central client. An empty baseURL selects
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

// ParseCoordinate splits "groupId:artifactId".
func ParseCoordinate(coord string) (group, artifact string, err error) {
	group, artifact, ok := strings.Cut(strings.TrimSpace(coord), ":")
	if !ok || group == "" || artifact == "" || strings.Contains(artifact, ":") {
		return "", "", errors.Wrap(errors.ErrCodeInvalidPackageName, integrations.ErrInvalidPackageName,
			"invalid Maven coordinate '%s': expected 'group:artifact'", coord)
	}
	return group, artifact, nil
}

// FetchVersions lists the versions of a "groupId:artifactId" coordinate,
// sorted ascending.
func (c *Client) FetchVersions(ctx context.Context, coord string) ([]integrations.Release, error) {
	group, artifact, err := ParseCoordinate(coord)
	if err != nil {
		return nil, err
	}
	coord = group + ":" + artifact
	if err := integrations.ValidateName(coord); err != nil {
		return nil, err
	}

	var releases []integrations.Release
	err = c.Cached(ctx, c.VersionsKey(coord), &releases, func() error {
		return c.fetch(ctx, group, artifact, &releases)
	})
	if err != nil {
		return nil, err
	}
	return releases, nil
}

func (c *Client) fetch(ctx context.Context, group, artifact string, out *[]integrations.Release) error {
	q := url.Values{}
	q.Set("q", "g:"+group+" AND a:"+artifact)
	q.Set("core", "gav")
	q.Set("rows", strconv.Itoa(maxRows))
	q.Set("wt", "json")

	var data searchResponse
	if err := c.Get(ctx, c.baseURL+"?"+q.Encode(), group+":"+artifact, &data); err != nil {
		return err
	}

	releases := make([]integrations.Release, 0, len(data.Response.Docs))
	for _, doc := range data.Response.Docs {
		if doc.V == "" || doc.Timestamp <= 0 {
			continue
		}
		releases = append(releases, integrations.Release{
			Version:    doc.V,
			ReleasedAt: time.UnixMilli(doc.Timestamp).UTC(),
		})
	}
	integrations.SortReleases(releases)
	*out = releases
	return nil
}

type searchResponse struct {
	Response struct {
		Docs []struct {
			V         string `json:"v"`
			Timestamp int64  `json:"timestamp"`
		} `json:"docs"`
	} `json:"response"`
}
