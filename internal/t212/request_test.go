package t212

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestClient points a client at a fake API server with a fixed clock and
// a sleep recorder so retry timing is observable without real waits.
func newTestClient(srv *httptest.Server, now time.Time) (*Client, *[]float64) {
	var slept []float64
	client := New(
		Credentials{APIKey: "test-key"},
		WithBaseURL(srv.URL),
		WithClock(func() time.Time { return now }),
		WithSleep(func(ctx context.Context, d time.Duration) error {
			slept = append(slept, d.Seconds())
			return nil
		}),
	)
	return client, &slept
}

func TestRequestRetriesOn429ThenSucceeds(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("x-ratelimit-reset", fmt.Sprintf("%d", now.Unix()+5))
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":123,"currencyCode":"GBP"}`))
	}))
	defer srv.Close()

	client, slept := newTestClient(srv, now)
	account, err := client.FetchAccount(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(123), account.ID)
	require.Equal(t, "GBP", account.CurrencyCode)
	require.EqualValues(t, 2, calls.Load())

	require.Len(t, *slept, 1)
	require.GreaterOrEqual(t, (*slept)[0], 5.0)
	require.LessOrEqual(t, (*slept)[0], 60.0)
}

func TestRequestFailsAfterThirdConsecutive429(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("x-ratelimit-reset", fmt.Sprintf("%d", now.Unix()+2))
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, slept := newTestClient(srv, now)
	_, err := client.FetchAccount(context.Background())
	require.Error(t, err)
	require.Equal(t, KindRateLimited, KindOf(err))
	require.EqualValues(t, 3, calls.Load())
	// Sleeps happen between attempts only, never after the final failure.
	require.Len(t, *slept, 2)
}

func TestRequest401FailsImmediately(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, slept := newTestClient(srv, time.Unix(1_700_000_000, 0))
	_, err := client.FetchAccount(context.Background())
	require.Error(t, err)
	require.Equal(t, KindAuth, KindOf(err))
	require.EqualValues(t, 1, calls.Load())
	require.Empty(t, *slept)
}

func TestRequestOtherStatusCarriesBodyAndIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"InsufficientFreeForStocksException"}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(srv, time.Unix(1_700_000_000, 0))
	_, err := client.PlaceMarketOrder(context.Background(), MarketOrderRequest{Ticker: "AAPL_US_EQ", Quantity: 1})
	require.Error(t, err)
	require.Equal(t, KindAPI, KindOf(err))
	require.Contains(t, err.Error(), "400")
	require.Contains(t, err.Error(), "InsufficientFreeForStocksException")
	require.EqualValues(t, 1, calls.Load())
}

func TestRequest204ReturnsNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/equity/orders/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, _ := newTestClient(srv, time.Unix(1_700_000_000, 0))
	require.NoError(t, client.CancelOrder(context.Background(), 42))
}

func TestRequestConnectionErrorClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, _ := newTestClient(srv, time.Unix(1_700_000_000, 0))
	_, err := client.FetchAccount(context.Background())
	require.Error(t, err)
	require.Equal(t, KindConnection, KindOf(err))
}

func TestRequestThrottlesBeforeSendingToExhaustedEndpoint(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// First response exhausts the bucket.
			w.Header().Set("x-ratelimit-remaining", "0")
			w.Header().Set("x-ratelimit-reset", fmt.Sprintf("%d", now.Unix()+3))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, slept := newTestClient(srv, now)
	ctx := context.Background()

	_, err := client.FetchPositions(ctx)
	require.NoError(t, err)
	require.Empty(t, *slept)

	_, err = client.FetchPositions(ctx)
	require.NoError(t, err)
	require.Len(t, *slept, 1)
	require.InDelta(t, 3.5, (*slept)[0], 0.01)

	require.InDelta(t, 3.5, client.DrainWaitTime(), 0.1)
	require.Zero(t, client.DrainWaitTime())
}
