// Package ratelimit provides a sliding-window request limiter for the
// marketplace's quota-bound read endpoints.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Documented marketplace quota for the price read paths: 20 requests per
// 60-second window, shared across endpoints.
const (
	MarketReadLimit  = 20
	MarketReadWindow = 60 * time.Second
)

// RateLimiter is the limiter surface the client consumes.
type RateLimiter interface {
	Wait(ctx context.Context) error
	Allow() bool
	Remaining() int
	ResetTime() time.Time
}

// SlidingWindow admits at most limit requests per rolling window.
type SlidingWindow struct {
	limit      int
	windowSize time.Duration
	requests   []time.Time
	mu         sync.Mutex
}

func NewSlidingWindow(limit int, windowSize time.Duration) *SlidingWindow {
	return &SlidingWindow{
		limit:      limit,
		windowSize: windowSize,
		requests:   make([]time.Time, 0, limit),
	}
}

// NewMarketReadLimiter returns a limiter sized to the documented read
// quota. All read paths share one instance because the marketplace counts
// them against a single bucket.
func NewMarketReadLimiter() *SlidingWindow {
	return NewSlidingWindow(MarketReadLimit, MarketReadWindow)
}

// Allow records and admits the request when the window has room.
func (sw *SlidingWindow) Allow() bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	now := time.Now()
	sw.evict(now)

	if len(sw.requests) >= sw.limit {
		return false
	}
	sw.requests = append(sw.requests, now)
	return true
}

// Wait blocks until the window admits the request or the context ends.
func (sw *SlidingWindow) Wait(ctx context.Context) error {
	for {
		if sw.Allow() {
			return nil
		}

		sw.mu.Lock()
		waitTime := 100 * time.Millisecond
		if len(sw.requests) > 0 {
			if until := sw.windowSize - time.Since(sw.requests[0]); until > waitTime {
				waitTime = until
			}
		}
		sw.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

// Remaining returns how many requests the current window still admits.
func (sw *SlidingWindow) Remaining() int {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	sw.evict(time.Now())
	if n := sw.limit - len(sw.requests); n > 0 {
		return n
	}
	return 0
}

// ResetTime returns when the oldest in-window request expires.
func (sw *SlidingWindow) ResetTime() time.Time {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if len(sw.requests) == 0 {
		return time.Now()
	}
	return sw.requests[0].Add(sw.windowSize)
}

// evict drops requests that have slid out of the window. Callers hold mu.
func (sw *SlidingWindow) evict(now time.Time) {
	cutoff := now.Add(-sw.windowSize)
	kept := sw.requests[:0]
	for _, r := range sw.requests {
		if r.After(cutoff) {
			kept = append(kept, r)
		}
	}
	sw.requests = kept
}
