package t212

import (
	"context"
	"net/http"
)

// FetchInstruments retrieves the full tradeable instrument catalogue.
func (c *Client) FetchInstruments(ctx context.Context) ([]Instrument, error) {
	var instruments []Instrument
	if err := c.request(ctx, http.MethodGet, "/equity/metadata/instruments", nil, nil, &instruments); err != nil {
		return nil, err
	}
	return instruments, nil
}

// FetchExchanges retrieves all exchanges with their working schedules.
func (c *Client) FetchExchanges(ctx context.Context) ([]Exchange, error) {
	var exchanges []Exchange
	if err := c.request(ctx, http.MethodGet, "/equity/metadata/exchanges", nil, nil, &exchanges); err != nil {
		return nil, err
	}
	return exchanges, nil
}
