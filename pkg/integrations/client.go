package integrations

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/depup/pkg/buildinfo"
	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/errors"
	"github.com/matzehuels/depup/pkg/httputil"
	"github.com/matzehuels/depup/pkg/observability"
)

// Client provides shared HTTP functionality for all registry API clients.
// It handles the per-run memo, retry logic, status classification and
// common request headers. A Client is safe for concurrent use.
type Client struct {
	http     *http.Client
	cache    cache.Cache
	keyer    cache.Keyer
	registry string
	headers  map[string]string
	attempts int
	backoff  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithBackoff sets the delay before the first retry. It doubles after every
// failed attempt.
func WithBackoff(d time.Duration) Option {
	return func(c *Client) { c.backoff = d }
}

// WithAttempts sets the total number of attempts per request.
func WithAttempts(n int) Option {
	return func(c *Client) { c.attempts = n }
}

// WithKeyer sets the keyer used for memo keys.
func WithKeyer(k cache.Keyer) Option {
	return func(c *Client) { c.keyer = k }
}

// ScopeKeys scopes memo keys to baseURL so that a mirror configured in
// depup.toml never shares entries with the public registry.
func ScopeKeys(baseURL string) Option {
	return WithKeyer(cache.NewRegistryKeyer(baseURL))
}

// NewClient creates a Client for the named registry. The name appears in
// error messages ("package 'x' not found in npm registry"). Headers are
// applied to every request after the default User-Agent.
// Pass nil for backend to disable the memo.
func NewClient(backend cache.Cache, registry string, headers map[string]string, opts ...Option) *Client {
	if backend == nil {
		backend = cache.NewNullCache()
	}
	c := &Client{
		http:     NewHTTPClient(),
		cache:    backend,
		keyer:    cache.NewDefaultKeyer(),
		registry: registry,
		headers:  headers,
		attempts: httputil.DefaultAttempts,
		backoff:  httputil.DefaultDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the registry display name.
func (c *Client) Registry() string { return c.registry }

// VersionsKey returns the memo key for the version list of pkg.
func (c *Client) VersionsKey(pkg string) string {
	return c.keyer.VersionsKey(c.registry, pkg)
}

// Cached retrieves v from the memo or runs fetch and stores the result.
// The fetch function should populate v. Memo failures are never fatal.
func (c *Client) Cached(ctx context.Context, key string, v any, fetch func() error) error {
	if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
		if json.Unmarshal(data, v) == nil {
			return nil
		}
	}
	if err := fetch(); err != nil {
		return err
	}
	if data, err := json.Marshal(v); err == nil {
		_ = c.cache.Set(ctx, key, data, 0)
	}
	return nil
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
// pkg names the package the request is about and is used in error messages.
func (c *Client) Get(ctx context.Context, rawURL, pkg string, v any) error {
	return c.GetWithHeaders(ctx, rawURL, pkg, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetWithHeaders(ctx context.Context, rawURL, pkg string, headers map[string]string, v any) error {
	return c.retry(ctx, func() error {
		body, err := c.doRequest(ctx, rawURL, pkg, headers)
		if err != nil {
			return err
		}
		defer body.Close()
		if err := json.NewDecoder(body).Decode(v); err != nil {
			return &httputil.RetryableError{Err: c.invalid(pkg, "failed to parse JSON: %v", err)}
		}
		return nil
	})
}

// GetText performs an HTTP GET request and returns the response body as a string.
// Used for plain text endpoints such as the Go proxy version list.
func (c *Client) GetText(ctx context.Context, rawURL, pkg string) (string, error) {
	var text string
	err := c.retry(ctx, func() error {
		body, err := c.doRequest(ctx, rawURL, pkg, nil)
		if err != nil {
			return err
		}
		defer body.Close()
		data, err := io.ReadAll(body)
		if err != nil {
			return &httputil.RetryableError{Err: c.invalid(pkg, "failed to read response text: %v", err)}
		}
		text = string(data)
		return nil
	})
	return text, err
}

// retry runs fn under the client's backoff policy and strips the retry marker
// from the final error so callers see the coded error directly.
func (c *Client) retry(ctx context.Context, fn func() error) error {
	err := httputil.Retry(ctx, c.attempts, c.backoff, func(int) error { return fn() })
	var re *httputil.RetryableError
	if stderrors.As(err, &re) {
		return re.Err
	}
	return err
}

func (c *Client) doRequest(ctx context.Context, rawURL, pkg string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, ErrNetwork,
			"failed to fetch package '%s' from %s: %v", pkg, c.registry, err)
	}
	req.Header.Set("User-Agent", buildinfo.UserAgent())
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	host, path := hostPath(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if isTimeout(err) {
			return nil, &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeTimeout, ErrTimeout,
				"timeout while fetching '%s' from %s", pkg, c.registry)}
		}
		return nil, &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, ErrNetwork,
			"failed to fetch package '%s' from %s: %v", pkg, c.registry, err)}
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := c.checkStatus(resp, pkg); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) checkStatus(resp *http.Response, pkg string) error {
	switch code := resp.StatusCode; {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return errors.Wrap(errors.ErrCodePackageNotFound, ErrNotFound,
			"package '%s' not found in %s registry", pkg, c.registry)
	case code == http.StatusTooManyRequests:
		return &httputil.RetryableError{
			Err: errors.Wrap(errors.ErrCodeRateLimited, ErrRateLimited,
				"rate limit exceeded for %s registry", c.registry),
			After: httputil.ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
		}
	default:
		return errors.Wrap(errors.ErrCodeNetwork, ErrNetwork,
			"failed to fetch package '%s' from %s: HTTP %d", pkg, c.registry, code)
	}
}

func (c *Client) invalid(pkg, format string, args ...any) error {
	return errors.Wrap(errors.ErrCodeInvalidResponse, ErrInvalidResponse,
		"invalid response from %s for '%s': %s", c.registry, pkg, fmt.Sprintf(format, args...))
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return stderrors.As(err, &ne) && ne.Timeout()
}

func hostPath(u *url.URL) (string, string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.Path
}
