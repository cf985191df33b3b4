package cache

import "strings"

// Keyer builds cache keys. Keys are namespaced so that different registries
// (or the same registry behind different base URLs) never collide.
type Keyer interface {
	// VersionsKey is the key for the version list of pkg on registry.
	VersionsKey(registry, pkg string) string

	// HTTPKey is the key for a raw response body.
	HTTPKey(namespace, key string) string
}

// DefaultKeyer produces plain "kind:namespace:key" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// VersionsKey implements Keyer.
func (DefaultKeyer) VersionsKey(registry, pkg string) string {
	return "versions:" + strings.ToLower(registry) + ":" + pkg
}

// HTTPKey implements Keyer.
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// keyType returns the leading kind segment of key, used to label hook events.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "unknown"
}

// registryKeyer prefixes every key with a normalized registry base URL.
type registryKeyer struct {
	inner  Keyer
	prefix string
}

// NewRegistryKeyer returns a keyer whose keys are scoped to baseURL, so a
// mirror configured in depup.toml never reads entries fetched from the
// public registry. Scheme and host are compared case-insensitively and a
// trailing slash is ignored.
func NewRegistryKeyer(baseURL string) Keyer {
	return registryKeyer{inner: DefaultKeyer{}, prefix: normalizeBaseURL(baseURL) + "|"}
}

func (k registryKeyer) VersionsKey(registry, pkg string) string {
	return k.prefix + k.inner.VersionsKey(registry, pkg)
}

func (k registryKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

func normalizeBaseURL(u string) string {
	u = strings.TrimRight(strings.TrimSpace(u), "/")
	scheme, rest, ok := strings.Cut(u, "://")
	if !ok {
		return u
	}
	host, path, _ := strings.Cut(rest, "/")
	if path != "" {
		path = "/" + path
	}
	return strings.ToLower(scheme) + "://" + strings.ToLower(host) + path
}
