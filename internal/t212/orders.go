package t212

import (
	"context"
	"fmt"
	"net/http"
)

// FetchOrders lists all pending equity orders.
func (c *Client) FetchOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.request(ctx, http.MethodGet, "/equity/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FetchOrder retrieves a single pending order by ID.
func (c *Client) FetchOrder(ctx context.Context, orderID int64) (*Order, error) {
	var order Order
	path := fmt.Sprintf("/equity/orders/%d", orderID)
	if err := c.request(ctx, http.MethodGet, path, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// PlaceMarketOrder submits an order that executes at the current price.
func (c *Client) PlaceMarketOrder(ctx context.Context, req MarketOrderRequest) (*Order, error) {
	return c.placeOrder(ctx, "market", req)
}

// PlaceLimitOrder submits an order that executes at a target price.
func (c *Client) PlaceLimitOrder(ctx context.Context, req LimitOrderRequest) (*Order, error) {
	return c.placeOrder(ctx, "limit", req)
}

// PlaceStopOrder submits an order triggered at a stop price.
func (c *Client) PlaceStopOrder(ctx context.Context, req StopOrderRequest) (*Order, error) {
	return c.placeOrder(ctx, "stop", req)
}

// PlaceStopLimitOrder submits a limit order triggered at a stop price.
func (c *Client) PlaceStopLimitOrder(ctx context.Context, req StopLimitOrderRequest) (*Order, error) {
	return c.placeOrder(ctx, "stop_limit", req)
}

func (c *Client) placeOrder(ctx context.Context, variant string, req any) (*Order, error) {
	var order Order
	if err := c.request(ctx, http.MethodPost, "/equity/orders/"+variant, nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder removes a pending order from the book. Cancelling an order
// that is already gone surfaces the upstream API error unchanged.
func (c *Client) CancelOrder(ctx context.Context, orderID int64) error {
	path := fmt.Sprintf("/equity/orders/%d", orderID)
	return c.request(ctx, http.MethodDelete, path, nil, nil, nil)
}
