package t212

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCredentialsBaseURL(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  string
	}{
		{"defaults", Credentials{}, "https://demo.trading212.com/api/v0"},
		{"live", Credentials{Environment: EnvLive}, "https://live.trading212.com/api/v0"},
		{"explicit version", Credentials{Environment: EnvDemo, Version: "v1"}, "https://demo.trading212.com/api/v1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.creds.baseURL())
		})
	}
}

func TestAuthHeaderBasicWhenSecretPresent(t *testing.T) {
	creds := Credentials{APIKey: "key", APISecret: "secret"}
	// base64("key:secret")
	require.Equal(t, "Basic a2V5OnNlY3JldA==", creds.authHeader())
}

func TestAuthHeaderKeyVerbatimWithoutSecret(t *testing.T) {
	creds := Credentials{APIKey: "12345abc"}
	require.Equal(t, "12345abc", creds.authHeader())
}

func TestClientSendsAuthAndContentTypeHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Basic a2V5OnNlY3JldA==", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"id":1,"currencyCode":"EUR"}`))
	}))
	defer srv.Close()

	client := New(Credentials{APIKey: "key", APISecret: "secret"}, WithBaseURL(srv.URL))
	account, err := client.FetchAccount(context.Background())
	require.NoError(t, err)
	require.Equal(t, "EUR", account.CurrencyCode)
}

func TestCursorFromPath(t *testing.T) {
	tests := []struct {
		path   string
		cursor int64
		ok     bool
	}{
		{"/history/dividends?cursor=150&limit=50", 150, true},
		{"/history/dividends?limit=50&cursor=9", 9, true},
		{"/history/dividends?limit=50", 0, false},
		{"/history/dividends", 0, false},
		{"/history/dividends?cursor=abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		cursor, ok := CursorFromPath(tt.path)
		require.Equal(t, tt.ok, ok, "path %q", tt.path)
		require.Equal(t, tt.cursor, cursor, "path %q", tt.path)
	}
}

func TestWithClockAndSleepInjection(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	client := New(Credentials{APIKey: "k"},
		WithClock(func() time.Time { return now }),
		WithSleep(func(ctx context.Context, d time.Duration) error { return nil }),
	)
	require.NotNil(t, client.limiter.Clock)
	require.NotNil(t, client.limiter.Sleep)
	require.InDelta(t, float64(now.Unix()), client.limiter.nowUnix(), 0.001)
}
