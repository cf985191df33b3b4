package integrations

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/depup/pkg/version"
)

const httpTimeout = 30 * time.Second

var (
	// ErrNotFound is returned when a package doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures and unexpected HTTP statuses.
	ErrNetwork = errors.New("network error")

	// ErrRateLimited is returned when the registry kept answering 429.
	ErrRateLimited = errors.New("rate limited")

	// ErrInvalidResponse is returned when a response body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrTimeout is returned when a request exceeded its deadline.
	ErrTimeout = errors.New("timeout")

	// ErrInvalidPackageName is returned when a name cannot be sent to a registry.
	ErrInvalidPackageName = errors.New("invalid package name")
)

// Release is one published version of a package.
type Release struct {
	Version    string    `json:"version"`
	ReleasedAt time.Time `json:"released_at"`
}

// NewHTTPClient creates an HTTP client with the standard registry timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// SortReleases orders releases ascending by version. Releases that compare
// equal keep their relative order.
func SortReleases(rs []Release) {
	slices.SortStableFunc(rs, func(a, b Release) int {
		return version.Compare(a.Version, b.Version)
	})
}

// ParseTime parses an RFC 3339 timestamp as UTC. The boolean is false for
// empty or malformed input.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// NormalizePkgName converts a package name to its canonical form.
// Applies lowercase and replaces underscores and dots with hyphens, following
// PEP 503 normalization rules used by PyPI.
func NormalizePkgName(name string) string {
	return pkgNameReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}

var pkgNameReplacer = strings.NewReplacer("_", "-", ".", "-")
