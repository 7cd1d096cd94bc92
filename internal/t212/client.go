// Package t212 implements a rate-limit-aware client for the Trading 212
// public API. All calls go through a single resilient request path that
// throttles pre-emptively on known quota state, retries HTTP 429 with the
// server-reported reset time, and translates failures into a typed error
// taxonomy.
package t212

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	// EnvDemo targets the paper-trading environment.
	EnvDemo = "demo"
	// EnvLive targets the real-money environment.
	EnvLive = "live"

	defaultVersion = "v0"
	requestTimeout = 30 * time.Second
	maxAttempts    = 3
)

// Credentials configure authentication and environment selection.
type Credentials struct {
	APIKey      string
	APISecret   string
	Environment string // demo or live, defaults to demo
	Version     string // API version, defaults to v0
}

// baseURL builds https://{environment}.trading212.com/api/{version}.
func (c Credentials) baseURL() string {
	env := c.Environment
	if env == "" {
		env = EnvDemo
	}
	version := c.Version
	if version == "" {
		version = defaultVersion
	}
	return fmt.Sprintf("https://%s.trading212.com/api/%s", env, version)
}

// authHeader combines key and secret into a Basic header when a secret is
// configured, otherwise the key is sent verbatim.
func (c Credentials) authHeader() string {
	if c.APISecret != "" {
		encoded := base64.StdEncoding.EncodeToString([]byte(c.APIKey + ":" + c.APISecret))
		return "Basic " + encoded
	}
	return c.APIKey
}

// Client talks to the Trading 212 REST API.
type Client struct {
	http    *resty.Client
	limiter *RateLimiter
	log     *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the environment-derived base URL. Intended for tests
// against local fake servers.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.http.SetBaseURL(url) }
}

// WithLogger attaches a structured logger. The default discards logs.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithClock injects the time source used for rate-limit arithmetic.
func WithClock(clock func() time.Time) Option {
	return func(c *Client) { c.limiter.Clock = clock }
}

// WithSleep injects the sleep function used for throttle and retry waits.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) { c.limiter.Sleep = sleep }
}

// New creates a client for the given credentials. Retries are owned by the
// request executor, so resty's built-in retry stays disabled.
func New(creds Credentials, opts ...Option) *Client {
	httpClient := resty.New().
		SetBaseURL(creds.baseURL()).
		SetTimeout(requestTimeout).
		SetRetryCount(0).
		SetHeader("Authorization", creds.authHeader()).
		SetHeader("Content-Type", "application/json")

	c := &Client{
		http:    httpClient,
		limiter: NewRateLimiter(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DrainWaitTime reports the total seconds this client has slept for rate
// limiting since the previous drain, and resets the counter. Callers use it
// to attribute latency overhead.
func (c *Client) DrainWaitTime() float64 {
	return c.limiter.DrainWaitTime()
}
