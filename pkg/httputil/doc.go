// Package httputil provides HTTP utilities for package registry clients.
//
// # Retry
//
// [Retry] re-runs an operation while it keeps failing with a
// [RetryableError]. Registry clients mark these failures as retryable:
//
//   - Network errors and timeouts
//   - 429 rate limit responses
//   - Bodies that cannot be read or decoded
//
// Any other error (404, other non-2xx statuses) ends the loop immediately.
//
//	err := httputil.RetryWithBackoff(ctx, func(attempt int) error {
//	    resp, err := http.Get(url)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    return decode(resp.Body)
//	})
//
// # Configuration
//
// The defaults used by every registry client:
//
//   - Attempts: 4 (one request plus three retries)
//   - Base backoff: 100ms, doubling after each failure
//   - Retry-After hints on 429 responses are honored up to 5s
package httputil
