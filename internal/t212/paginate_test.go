package t212

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPaginateFollowsNextPagePath(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch calls.Add(1) {
		case 1:
			require.Equal(t, "/x", r.URL.Path)
			require.Equal(t, "50", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`{"items":[1,2],"nextPagePath":"/x?cursor=2"}`))
		case 2:
			require.Equal(t, "/x", r.URL.Path)
			require.Equal(t, "2", r.URL.Query().Get("cursor"))
			// The starting query must not leak into continuations.
			require.Empty(t, r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`{"items":[3],"nextPagePath":null}`))
		default:
			t.Error("fetched past the final page")
		}
	}))
	defer srv.Close()

	client, _ := newTestClient(srv, time.Unix(1_700_000_000, 0))
	items, err := paginate[int](context.Background(), client, "/x", map[string][]string{"limit": {"50"}})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, items)
	require.EqualValues(t, 2, calls.Load())
}

func TestPaginateSinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"ticker":"AAPL_US_EQ","amount":0.42}]}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(srv, time.Unix(1_700_000_000, 0))
	dividends, err := client.FetchAllDividends(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, dividends, 1)
	require.Equal(t, "AAPL_US_EQ", dividends[0].Ticker)
	require.InDelta(t, 0.42, dividends[0].Amount, 0.001)
}

func TestPaginatePropagatesRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	client, _ := newTestClient(srv, time.Unix(1_700_000_000, 0))
	_, err := client.FetchAllTransactions(context.Background())
	require.Error(t, err)
	require.Equal(t, KindAPI, KindOf(err))
}
