package ratelimit

import (
	"context"
	"time"
)

const (
	// DefaultWindow and DefaultMaxRequests match the upstream policy the
	// external-call collaborators must respect.
	DefaultWindow      = 15 * time.Minute
	DefaultMaxRequests = 100
)

// Limiter is a per-key fixed-window request counter. Allow reports whether
// one more request is admitted for the key in the current window; a denied
// call is never queued or retried, the caller falls back instead.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}
