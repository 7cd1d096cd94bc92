package t212

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetchOrderHistoryFlattensNestedOrderAndFill(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/equity/history/orders", r.URL.Path)
		require.Equal(t, "20", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"order": {
						"id": 501,
						"ticker": "AAPL_US_EQ",
						"type": "MARKET",
						"status": "FILLED",
						"initiatedFrom": "API",
						"filledValue": 150.25,
						"value": 150.0,
						"createdAt": "2024-03-01T09:30:00Z",
						"timeValidity": "DAY"
					},
					"fill": {
						"id": 9001,
						"type": "TOTV",
						"price": 150.25,
						"quantity": 1,
						"filledAt": "2024-03-01T09:30:02Z",
						"walletImpact": {
							"taxes": [{"name": "FINRA_FEE", "quantity": 0.01}]
						}
					}
				}
			],
			"nextPagePath": null
		}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(srv, time.Unix(1_700_000_000, 0))
	orders, err := client.FetchOrderHistory(context.Background(), nil, "", 20)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	require.Equal(t, int64(501), o.ID)
	require.Equal(t, "AAPL_US_EQ", o.Ticker)
	require.Equal(t, OrderTypeMarket, o.Type)
	require.Equal(t, OrderStatusFilled, o.Status)
	require.Equal(t, "API", o.Executor)
	require.InDelta(t, 150.25, *o.FilledValue, 0.001)
	require.InDelta(t, 150.0, *o.OrderedValue, 0.001)
	require.InDelta(t, 150.25, *o.FillPrice, 0.001)
	require.InDelta(t, 1.0, *o.FilledQuantity, 0.001)
	require.Equal(t, int64(9001), *o.FillID)
	require.Equal(t, "TOTV", o.FillType)
	require.Equal(t, ValidityDay, o.TimeValidity)
	require.Equal(t, "2024-03-01T09:30:00Z", o.DateCreated.Format(time.RFC3339))
	require.Equal(t, "2024-03-01T09:30:02Z", o.DateExecuted.Format(time.RFC3339))
	require.Len(t, o.Taxes, 1)
	require.Equal(t, "FINRA_FEE", o.Taxes[0].Name)
}

func TestFetchOrderHistoryPassesCursorAndTicker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "77", r.URL.Query().Get("cursor"))
		require.Equal(t, "TSLA_US_EQ", r.URL.Query().Get("ticker"))
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	cursor := int64(77)
	client, _ := newTestClient(srv, time.Unix(1_700_000_000, 0))
	orders, err := client.FetchOrderHistory(context.Background(), &cursor, "TSLA_US_EQ", 10)
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestFetchDividendsClampsLimit(t *testing.T) {
	var gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`{"items":[],"nextPagePath":null}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(srv, time.Unix(1_700_000_000, 0))
	ctx := context.Background()

	_, err := client.FetchDividends(ctx, nil, "", 500)
	require.NoError(t, err)
	require.Equal(t, "50", gotLimit)

	_, err = client.FetchDividends(ctx, nil, "", 0)
	require.NoError(t, err)
	require.Equal(t, "1", gotLimit)

	_, err = client.FetchDividends(ctx, nil, "", 20)
	require.NoError(t, err)
	require.Equal(t, "20", gotLimit)
}

func TestFetchTransactionsOpaqueCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/equity/history/transactions", r.URL.Path)
		require.Equal(t, "abc-def", r.URL.Query().Get("cursor"))
		_, _ = w.Write([]byte(`{
			"items": [{"amount": 100.0, "type": "DEPOSIT", "dateTime": "2024-05-01T12:00:00Z", "reference": "ref-1"}],
			"nextPagePath": "/equity/history/transactions?cursor=ghi"
		}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(srv, time.Unix(1_700_000_000, 0))
	page, err := client.FetchTransactions(context.Background(), "abc-def", "", 20)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, TransactionDeposit, page.Items[0].Type)
	require.Equal(t, "/equity/history/transactions?cursor=ghi", page.NextPagePath)
}
