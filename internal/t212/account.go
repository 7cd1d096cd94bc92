package t212

import (
	"context"
	"net/http"
)

// FetchAccount retrieves account metadata.
func (c *Client) FetchAccount(ctx context.Context) (*Account, error) {
	var account Account
	if err := c.request(ctx, http.MethodGet, "/equity/account/info", nil, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// FetchCash retrieves the account balance breakdown.
func (c *Client) FetchCash(ctx context.Context) (*Cash, error) {
	var cash Cash
	if err := c.request(ctx, http.MethodGet, "/equity/account/cash", nil, nil, &cash); err != nil {
		return nil, err
	}
	return &cash, nil
}

// FetchPositions lists all open positions.
func (c *Client) FetchPositions(ctx context.Context) ([]Position, error) {
	var positions []Position
	if err := c.request(ctx, http.MethodGet, "/equity/portfolio", nil, nil, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// SearchPositionByTicker looks up a single open position by ticker.
func (c *Client) SearchPositionByTicker(ctx context.Context, ticker string) (*Position, error) {
	body := map[string]string{"ticker": ticker}
	var position Position
	if err := c.request(ctx, http.MethodPost, "/equity/portfolio/ticker", nil, body, &position); err != nil {
		return nil, err
	}
	return &position, nil
}
