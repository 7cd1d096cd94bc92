package t212

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestLimiter(now time.Time) (*RateLimiter, *[]float64) {
	var slept []float64
	limiter := NewRateLimiter()
	limiter.Clock = func() time.Time { return now }
	limiter.Sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d.Seconds())
		return nil
	}
	return limiter, &slept
}

func TestEndpointKeyStripsQuery(t *testing.T) {
	require.Equal(t, "/history/dividends", EndpointKey("/history/dividends?cursor=50&limit=50"))
	require.Equal(t, "/equity/orders", EndpointKey("/equity/orders"))
}

func TestBeforeSendUnknownEndpointDoesNotBlock(t *testing.T) {
	limiter, slept := newTestLimiter(time.Now())
	require.NoError(t, limiter.BeforeSend(context.Background(), "/equity/orders"))
	require.Empty(t, *slept)
}

func TestBeforeSendBlocksUntilReset(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	limiter, slept := newTestLimiter(now)

	header := http.Header{}
	header.Set("x-ratelimit-remaining", "0")
	header.Set("x-ratelimit-reset", "1700000005")
	limiter.AfterReceive("/history/dividends?cursor=2", header)

	require.NoError(t, limiter.BeforeSend(context.Background(), "/history/dividends"))
	require.Len(t, *slept, 1)
	require.InDelta(t, 5.5, (*slept)[0], 0.01)
}

func TestBeforeSendAfterResetDoesNotBlock(t *testing.T) {
	now := time.Unix(1_700_000_010, 0)
	limiter, slept := newTestLimiter(now)

	header := http.Header{}
	header.Set("x-ratelimit-remaining", "0")
	header.Set("x-ratelimit-reset", "1700000005")
	limiter.AfterReceive("/history/dividends", header)

	require.NoError(t, limiter.BeforeSend(context.Background(), "/history/dividends"))
	require.Empty(t, *slept)
}

func TestBeforeSendWithRemainingQuotaDoesNotBlock(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	limiter, slept := newTestLimiter(now)

	header := http.Header{}
	header.Set("x-ratelimit-remaining", "3")
	header.Set("x-ratelimit-reset", "1700000060")
	limiter.AfterReceive("/equity/portfolio", header)

	require.NoError(t, limiter.BeforeSend(context.Background(), "/equity/portfolio"))
	require.Empty(t, *slept)
}

func TestBeforeSendCapsWaitAtSixtySeconds(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	limiter, slept := newTestLimiter(now)

	header := http.Header{}
	header.Set("x-ratelimit-remaining", "0")
	header.Set("x-ratelimit-reset", "1700000500")
	limiter.AfterReceive("/equity/portfolio", header)

	require.NoError(t, limiter.BeforeSend(context.Background(), "/equity/portfolio"))
	require.Len(t, *slept, 1)
	require.InDelta(t, 60, (*slept)[0], 0.01)
}

func TestAfterReceiveDefaultsWhenHeadersAbsent(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	limiter, slept := newTestLimiter(now)

	limiter.AfterReceive("/equity/orders", http.Header{})

	// remaining defaults to 1, so the next send passes through.
	require.NoError(t, limiter.BeforeSend(context.Background(), "/equity/orders"))
	require.Empty(t, *slept)
}

func TestAfterReceiveSwallowsUnparseableHeaders(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	limiter, slept := newTestLimiter(now)

	good := http.Header{}
	good.Set("x-ratelimit-remaining", "0")
	good.Set("x-ratelimit-reset", "1700000030")
	limiter.AfterReceive("/equity/orders", good)

	bad := http.Header{}
	bad.Set("x-ratelimit-remaining", "not-a-number")
	limiter.AfterReceive("/equity/orders", bad)

	// The bad update is ignored, so the earlier exhausted state still throttles.
	require.NoError(t, limiter.BeforeSend(context.Background(), "/equity/orders"))
	require.Len(t, *slept, 1)
	require.InDelta(t, 30.5, (*slept)[0], 0.01)
}

func TestRetryWaitMinimumOneSecond(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	limiter, _ := newTestLimiter(now)

	require.InDelta(t, 1.5, limiter.RetryWait(http.Header{}), 0.01)

	past := http.Header{}
	past.Set("x-ratelimit-reset", "1600000000")
	require.InDelta(t, 1.5, limiter.RetryWait(past), 0.01)

	future := http.Header{}
	future.Set("x-ratelimit-reset", "1700000005")
	require.InDelta(t, 5.5, limiter.RetryWait(future), 0.01)
}

func TestDrainWaitTimeReadsAndResets(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	limiter, _ := newTestLimiter(now)

	require.NoError(t, limiter.SleepFor(context.Background(), 2.25))
	require.NoError(t, limiter.SleepFor(context.Background(), 1.5))

	require.InDelta(t, 3.8, limiter.DrainWaitTime(), 0.01)
	require.Zero(t, limiter.DrainWaitTime())
}

func TestSleepHonoursContextCancellation(t *testing.T) {
	limiter := NewRateLimiter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := limiter.SleepFor(ctx, 30)
	require.ErrorIs(t, err, context.Canceled)
}
