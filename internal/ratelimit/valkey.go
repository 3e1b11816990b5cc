package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/talentsignal/profiler/internal/clients"
)

// ValkeyWindow is a fixed-window limiter shared across instances through a
// valkey counter. When valkey is unreachable it fails open: the request is
// admitted and the provider's own quota errors trigger the fallback path.
type ValkeyWindow struct {
	client *clients.ValkeyClient
	window time.Duration
	max    int64
}

func NewValkeyWindow(client *clients.ValkeyClient, window time.Duration, max int) *ValkeyWindow {
	if window <= 0 {
		window = DefaultWindow
	}
	if max <= 0 {
		max = DefaultMaxRequests
	}
	return &ValkeyWindow{client: client, window: window, max: int64(max)}
}

func (v *ValkeyWindow) Allow(ctx context.Context, key string) bool {
	count, err := v.client.IncrWindow(ctx, key, v.window)
	if err != nil {
		slog.Warn("[RateLimit] Counter unavailable, admitting request",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return true
	}
	return count <= v.max
}
