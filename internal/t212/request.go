package t212

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// request executes one logical API call with up to maxAttempts physical
// attempts. Only HTTP 429 is retried; every other failure is terminal. The
// parsed JSON body is stored into out when out is non-nil and the response
// carries a body (HTTP 204 leaves out untouched).
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body, out any) error {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := c.limiter.BeforeSend(ctx, path); err != nil {
			return err
		}

		resp, err := c.send(ctx, method, path, query, body)
		if err != nil {
			return classifyTransportError(err)
		}

		status := resp.StatusCode()
		c.limiter.AfterReceive(path, resp.Header())

		switch {
		case resp.IsSuccess():
			if out == nil || status == http.StatusNoContent || len(resp.Body()) == 0 {
				return nil
			}
			if err := json.Unmarshal(resp.Body(), out); err != nil {
				return fmt.Errorf("decode %s %s response: %w", method, path, err)
			}
			return nil

		case status == http.StatusUnauthorized:
			return &APIError{Kind: KindAuth, Status: status}

		case status == http.StatusTooManyRequests:
			if attempt == maxAttempts-1 {
				return &APIError{Kind: KindRateLimited, Status: status}
			}
			wait := c.limiter.RetryWait(resp.Header())
			c.log.Info("rate limited, retrying",
				zap.String("path", path),
				zap.Float64("wait_seconds", wait),
				zap.Int("attempt", attempt+1),
				zap.Int("max_attempts", maxAttempts))
			if err := c.limiter.SleepFor(ctx, wait); err != nil {
				return err
			}

		default:
			return &APIError{Kind: KindAPI, Status: status, Body: string(resp.Body())}
		}
	}
	return &APIError{Kind: KindRateLimited, Status: http.StatusTooManyRequests}
}

// send issues a single HTTP attempt.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}
	return req.Execute(method, path)
}

// classifyTransportError maps network-level failures onto the error taxonomy:
// deadline overruns become KindTimeout, everything else KindConnection.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &APIError{Kind: KindTimeout}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &APIError{Kind: KindTimeout}
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return &APIError{Kind: KindConnection}
}
