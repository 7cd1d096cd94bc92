package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tradelens/tradelens/internal/analytics"
	"github.com/tradelens/tradelens/internal/t212"
)

func newTestHandler(srv *httptest.Server) *Handler {
	client := t212.New(t212.Credentials{APIKey: "test-key"}, t212.WithBaseURL(srv.URL))
	return &Handler{
		client:    client,
		analytics: analytics.NewService(client),
		log:       zap.NewNop(),
	}
}

func TestFilterInstruments(t *testing.T) {
	instruments := []t212.Instrument{
		{Ticker: "AAPL_US_EQ", Name: "Apple"},
		{Ticker: "MSFT_US_EQ", Name: "Microsoft"},
		{Ticker: "VOD_GB_EQ", Name: "Vodafone Group"},
	}

	require.Len(t, filterInstruments(instruments, ""), 3)

	apple := filterInstruments(instruments, "apple")
	require.Len(t, apple, 1)
	require.Equal(t, "AAPL_US_EQ", apple[0].Ticker)

	byTicker := filterInstruments(instruments, "vod_gb")
	require.Len(t, byTicker, 1)
	require.Equal(t, "Vodafone Group", byTicker[0].Name)

	require.Empty(t, filterInstruments(instruments, "tesla"))
}

func TestFilterExchanges(t *testing.T) {
	exchanges := []t212.Exchange{
		{ID: 1, Name: "London Stock Exchange"},
		{ID: 12, Name: "NASDAQ"},
	}

	require.Len(t, filterExchanges(exchanges, ""), 2)

	byName := filterExchanges(exchanges, "nasdaq")
	require.Len(t, byName, 1)
	require.EqualValues(t, 12, byName[0].ID)

	// Numeric terms match IDs exactly, not as substrings.
	byID := filterExchanges(exchanges, "1")
	require.Len(t, byID, 1)
	require.Equal(t, "London Stock Exchange", byID[0].Name)
}

func TestValidityDefaultsToDay(t *testing.T) {
	require.Equal(t, t212.ValidityDay, validity(""))
	require.Equal(t, t212.ValidityGoodTillCancel, validity("GOOD_TILL_CANCEL"))
}

func TestPieRequestRejectsBadEndDate(t *testing.T) {
	bad := "next tuesday"
	_, err := pieRequest(nil, nil, nil, &bad, nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "end_date")
}

func TestFetchAccountInfoTool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/equity/account/info", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":42,"currencyCode":"GBP"}`))
	}))
	defer srv.Close()

	h := newTestHandler(srv)
	_, account, err := h.fetchAccountInfo(context.Background(), nil, struct{}{})
	require.NoError(t, err)
	require.Equal(t, int64(42), account.ID)
	require.Equal(t, "GBP", account.CurrencyCode)
}

func TestCancelOrderToolAcknowledges(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/equity/orders/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	h := newTestHandler(srv)
	_, result, err := h.cancelOrder(context.Background(), nil, orderIDInput{OrderID: 9})
	require.NoError(t, err)
	require.Equal(t, "cancelled", result.Status)
}

func TestCancelOrderToolPassesAPIErrorThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"OrderAlreadyCancelled"}`))
	}))
	defer srv.Close()

	h := newTestHandler(srv)
	_, _, err := h.cancelOrder(context.Background(), nil, orderIDInput{OrderID: 9})
	require.Error(t, err)
	require.Equal(t, t212.KindAPI, t212.KindOf(err))
	require.Contains(t, err.Error(), "OrderAlreadyCancelled")
}

func TestAnalysePromptFallsBackToUnknownCurrency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	h := newTestHandler(srv)
	result, err := h.analysePrompt(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Messages, 1)
	text := result.Messages[0].Content.(*mcp.TextContent).Text
	require.Contains(t, text, "denominated in unknown")
}

func TestAnalysePromptIncludesAccountCurrency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"currencyCode":"EUR"}`))
	}))
	defer srv.Close()

	h := newTestHandler(srv)
	result, err := h.analysePrompt(context.Background(), nil)
	require.NoError(t, err)
	text := result.Messages[0].Content.(*mcp.TextContent).Text
	require.Contains(t, text, "denominated in EUR")
	require.Contains(t, text, "fetch_portfolio_summary")
}

func TestNewServerRegisters(t *testing.T) {
	client := t212.New(t212.Credentials{APIKey: "k"})
	server := NewServer(client, "test", zap.NewNop())
	require.NotNil(t, server)
}
