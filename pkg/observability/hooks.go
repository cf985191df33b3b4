// Package observability lets callers watch an update run without depup
// depending on a metrics or tracing backend.
//
// Three hook sets exist: [UpdateHooks] for pipeline stages, [CacheHooks] for
// the in-run version cache and [HTTPHooks] for registry requests. All default
// to no-ops. The CLI installs [LogHooks] under --verbose:
//
//	restore := observability.SetHTTPHooks(observability.NewLogHooks(logger))
//	defer restore()
package observability

import (
	"context"
	"time"
)

// UpdateHooks receives pipeline events.
type UpdateHooks interface {
	// OnDetect reports how many manifests were found under dir.
	OnDetect(ctx context.Context, dir string, manifests int)

	OnFetchStart(ctx context.Context, registry, pkg string)
	OnFetchComplete(ctx context.Context, registry, pkg string, versions int, duration time.Duration, err error)

	// OnWrite reports a manifest rewrite, or its dry-run rendering.
	OnWrite(ctx context.Context, path string, updates int, err error)
}

// CacheHooks receives version cache events. keyType is the leading segment
// of the cache key ("versions", "http").
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives registry request events.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, host, path string)
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)
	// OnError reports transport failures. HTTP error statuses arrive through
	// OnResponse.
	OnError(ctx context.Context, method, host, path string, err error)
}

// NoopUpdateHooks ignores every event. Embed it to implement a subset.
type NoopUpdateHooks struct{}

func (NoopUpdateHooks) OnDetect(context.Context, string, int)                                      {}
func (NoopUpdateHooks) OnFetchStart(context.Context, string, string)                               {}
func (NoopUpdateHooks) OnFetchComplete(context.Context, string, string, int, time.Duration, error) {}
func (NoopUpdateHooks) OnWrite(context.Context, string, int, error)                                {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}
