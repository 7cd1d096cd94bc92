package t212

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	// waitPadding is added to every computed wait so the reset has actually
	// happened when the next request goes out.
	waitPadding = 0.5
	// maxWaitSeconds caps a single rate-limit sleep.
	maxWaitSeconds = 60
)

// limitState mirrors the x-ratelimit-* headers of the last response seen for
// an endpoint.
type limitState struct {
	remaining int
	resetAt   int64
}

// RateLimiter tracks per-endpoint quota state and pre-emptively throttles
// requests that would run into a known-exhausted window. It never rejects,
// only delays. State is best-effort and lives for the process lifetime.
type RateLimiter struct {
	// Clock and Sleep are injectable for tests. Nil means real time.
	Clock func() time.Time
	Sleep func(ctx context.Context, d time.Duration) error

	mu        sync.Mutex
	states    map[string]limitState
	totalWait float64
}

// NewRateLimiter returns a tracker with no known endpoint state.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{states: make(map[string]limitState)}
}

// EndpointKey strips the query string from a request path, yielding the
// rate-limit bucket identity. Paginated continuations of the same endpoint
// share a key.
func EndpointKey(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}

// BeforeSend blocks until the tracked window for the endpoint permits another
// request. Unknown endpoints pass through immediately.
func (r *RateLimiter) BeforeSend(ctx context.Context, path string) error {
	key := EndpointKey(path)

	r.mu.Lock()
	state, ok := r.states[key]
	r.mu.Unlock()
	if !ok || state.remaining > 0 {
		return nil
	}

	wait := float64(state.resetAt) - r.nowUnix()
	if wait <= 0 {
		return nil
	}
	return r.sleep(ctx, math.Min(wait+waitPadding, maxWaitSeconds))
}

// AfterReceive updates the endpoint state from response headers. A missing
// x-ratelimit-remaining defaults to 1, a missing x-ratelimit-reset to 0.
// Unparseable values leave the state unchanged.
func (r *RateLimiter) AfterReceive(path string, header http.Header) {
	remaining := 1
	if v := header.Get("x-ratelimit-remaining"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return
		}
		remaining = n
	}
	resetAt := int64(0)
	if v := header.Get("x-ratelimit-reset"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return
		}
		resetAt = n
	}

	key := EndpointKey(path)
	r.mu.Lock()
	r.states[key] = limitState{remaining: remaining, resetAt: resetAt}
	r.mu.Unlock()
}

// RetryWait computes how long to sleep before retrying a 429, from the
// response's x-ratelimit-reset header. At least 1s even when the header is
// absent or already in the past.
func (r *RateLimiter) RetryWait(header http.Header) float64 {
	resetAt, _ := strconv.ParseInt(header.Get("x-ratelimit-reset"), 10, 64)
	wait := math.Max(float64(resetAt)-r.nowUnix(), 1)
	return math.Min(wait+waitPadding, maxWaitSeconds)
}

// SleepFor blocks for the given number of seconds, honouring ctx, and adds
// the slept time to the cumulative wait accumulator.
func (r *RateLimiter) SleepFor(ctx context.Context, seconds float64) error {
	return r.sleep(ctx, seconds)
}

// DrainWaitTime returns the total seconds slept for rate limiting since the
// previous drain, rounded to 0.1s, and resets the accumulator.
func (r *RateLimiter) DrainWaitTime() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	elapsed := r.totalWait
	r.totalWait = 0
	return math.Round(elapsed*10) / 10
}

func (r *RateLimiter) sleep(ctx context.Context, seconds float64) error {
	r.mu.Lock()
	r.totalWait += seconds
	r.mu.Unlock()

	d := time.Duration(seconds * float64(time.Second))
	if r.Sleep != nil {
		return r.Sleep(ctx, d)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *RateLimiter) nowUnix() float64 {
	if r.Clock != nil {
		return float64(r.Clock().UnixMilli()) / 1000
	}
	return float64(time.Now().UnixMilli()) / 1000
}
