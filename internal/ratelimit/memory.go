package ratelimit

import (
	"context"
	"sync"
	"time"
)

type windowEntry struct {
	count int
	reset time.Time
}

// FixedWindow is an in-process fixed-window limiter. Counts reset when the
// window elapses; there is no sliding behavior.
type FixedWindow struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	counts map[string]*windowEntry
	now    func() time.Time
}

// NewFixedWindow creates a limiter admitting max requests per key per
// window. Non-positive arguments fall back to the defaults.
func NewFixedWindow(window time.Duration, max int) *FixedWindow {
	if window <= 0 {
		window = DefaultWindow
	}
	if max <= 0 {
		max = DefaultMaxRequests
	}
	return &FixedWindow{
		window: window,
		max:    max,
		counts: make(map[string]*windowEntry),
		now:    time.Now,
	}
}

func (w *FixedWindow) Allow(_ context.Context, key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	entry, ok := w.counts[key]
	if !ok || now.After(entry.reset) {
		w.counts[key] = &windowEntry{count: 1, reset: now.Add(w.window)}
		return true
	}

	if entry.count >= w.max {
		return false
	}
	entry.count++
	return true
}
