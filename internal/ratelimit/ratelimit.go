// Package ratelimit provides a fixed-window request limiter keyed by caller
// address. The window re-arms when it elapses; it does not slide.
package ratelimit

import "context"

type Limiter interface {
	// Allow reports whether the caller identified by key may proceed,
	// counting this request against the current window.
	Allow(ctx context.Context, key string) (bool, error)
}
