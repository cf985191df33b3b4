package httputil

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultAttempts is one request plus three retries.
	DefaultAttempts = 4

	// DefaultDelay is the first backoff; it doubles after every failure.
	DefaultDelay = 100 * time.Millisecond

	// MaxRetryAfter caps how long a registry's Retry-After hint may stall a
	// run.
	MaxRetryAfter = 5 * time.Second
)

// RetryableError marks a failure as transient. After, when set, is the
// minimum wait the server asked for before the next attempt.
type RetryableError struct {
	Err   error
	After time.Duration
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry calls fn until it succeeds, fails with an error that is not a
// [RetryableError], or has been called attempts times. fn gets the
// zero-based attempt number.
//
// Between attempts Retry sleeps for delay, doubling it each time, or for the
// error's After hint (capped at [MaxRetryAfter]) when that is longer. A
// cancelled ctx ends the loop with ctx.Err().
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func(attempt int) error) error {
	attempts = max(attempts, 1)

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(attempt); err == nil {
			return nil
		}
		var re *RetryableError
		if !errors.As(err, &re) {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		wait := max(delay, min(re.After, MaxRetryAfter))
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
	}
	return err
}

// RetryWithBackoff calls [Retry] with [DefaultAttempts] and [DefaultDelay].
func RetryWithBackoff(ctx context.Context, fn func(attempt int) error) error {
	return Retry(ctx, DefaultAttempts, DefaultDelay, fn)
}

// IsRetryable reports whether err wraps a [RetryableError].
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// ParseRetryAfter reads a Retry-After header value, either delay-seconds or
// an HTTP date. It returns zero for empty, malformed or past values.
func ParseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}
