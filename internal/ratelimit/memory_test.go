package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestFixedWindowAdmitsUpToMax(t *testing.T) {
	limiter := NewFixedWindow(time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !limiter.Allow(ctx, "key") {
			t.Fatalf("request %d should be admitted", i+1)
		}
	}
	if limiter.Allow(ctx, "key") {
		t.Fatal("request past the window max should be rejected")
	}
}

func TestFixedWindowResetsAfterWindow(t *testing.T) {
	limiter := NewFixedWindow(time.Minute, 1)
	current := time.Now()
	limiter.now = func() time.Time { return current }
	ctx := context.Background()

	if !limiter.Allow(ctx, "key") {
		t.Fatal("first request should be admitted")
	}
	if limiter.Allow(ctx, "key") {
		t.Fatal("second request inside the window should be rejected")
	}

	current = current.Add(time.Minute + time.Second)
	if !limiter.Allow(ctx, "key") {
		t.Fatal("request after the window elapsed should be admitted")
	}
}

func TestFixedWindowKeysAreIndependent(t *testing.T) {
	limiter := NewFixedWindow(time.Minute, 1)
	ctx := context.Background()

	if !limiter.Allow(ctx, "alice") {
		t.Fatal("first key should be admitted")
	}
	if !limiter.Allow(ctx, "bob") {
		t.Fatal("second key has its own counter")
	}
	if limiter.Allow(ctx, "alice") {
		t.Fatal("first key should now be exhausted")
	}
}

func TestFixedWindowDefaults(t *testing.T) {
	limiter := NewFixedWindow(0, 0)
	if limiter.window != DefaultWindow {
		t.Errorf("expected default window %v, got %v", DefaultWindow, limiter.window)
	}
	if limiter.max != DefaultMaxRequests {
		t.Errorf("expected default max %d, got %d", DefaultMaxRequests, limiter.max)
	}
}
