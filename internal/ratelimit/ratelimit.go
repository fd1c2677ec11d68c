// Package ratelimit implements a fixed-window request limiter keyed by an
// arbitrary string (here, the client IP). The counter resets when the window
// elapses rather than sliding continuously.
package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]*window

	now func() time.Time
}

func New(limit int, windowLen time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  windowLen,
		entries: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow counts one request against key and reports whether it is within the
// window's budget. Rejected requests are not counted toward the window.
func (l *Limiter) Allow(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.entries[key]
	if !ok || now.Sub(w.start) >= l.window {
		w = &window{start: now}
		l.entries[key] = w
	}

	res := Result{
		Limit:      l.limit,
		ResetAfter: l.window - now.Sub(w.start),
	}
	if w.count >= l.limit {
		res.Remaining = 0
		return res
	}

	w.count++
	res.Allowed = true
	res.Remaining = l.limit - w.count
	return res
}
