package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tradelens/tradelens/internal/t212"
)

type orderIDInput struct {
	OrderID int64 `json:"order_id" jsonschema:"Numeric ID of the order"`
}

type marketOrderInput struct {
	Ticker   string  `json:"ticker" jsonschema:"Instrument ticker to trade (e.g. 'AAPL_US_EQ')"`
	Quantity float64 `json:"quantity" jsonschema:"Number of shares to trade. Use a positive value to buy, negative to sell."`
}

type limitOrderInput struct {
	Ticker       string  `json:"ticker" jsonschema:"Instrument ticker to trade (e.g. 'AAPL_US_EQ')"`
	Quantity     float64 `json:"quantity" jsonschema:"Number of shares to trade"`
	LimitPrice   float64 `json:"limit_price" jsonschema:"Maximum price you are willing to pay (buy) or minimum to accept (sell)"`
	TimeValidity string  `json:"time_validity,omitempty" jsonschema:"How long the order stays active. Options: DAY, GOOD_TILL_CANCEL. Defaults to DAY."`
}

type stopOrderInput struct {
	Ticker       string  `json:"ticker" jsonschema:"Instrument ticker to trade (e.g. 'AAPL_US_EQ')"`
	Quantity     float64 `json:"quantity" jsonschema:"Number of shares to trade"`
	StopPrice    float64 `json:"stop_price" jsonschema:"Trigger price that activates the order"`
	TimeValidity string  `json:"time_validity,omitempty" jsonschema:"How long the order stays active. Options: DAY, GOOD_TILL_CANCEL. Defaults to DAY."`
}

type stopLimitOrderInput struct {
	Ticker       string  `json:"ticker" jsonschema:"Instrument ticker to trade (e.g. 'AAPL_US_EQ')"`
	Quantity     float64 `json:"quantity" jsonschema:"Number of shares to trade"`
	StopPrice    float64 `json:"stop_price" jsonschema:"Trigger price that activates the limit order"`
	LimitPrice   float64 `json:"limit_price" jsonschema:"Price at which the resulting limit order will be placed"`
	TimeValidity string  `json:"time_validity,omitempty" jsonschema:"How long the order stays active. Options: DAY, GOOD_TILL_CANCEL. Defaults to DAY."`
}

type orderList struct {
	Orders []t212.Order `json:"orders"`
}

func (h *Handler) registerTradingTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_all_orders",
		Description: "List all active equity orders (limit, stop, stop-limit) that are waiting to be filled.",
	}, h.fetchAllOrders)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_order",
		Description: "Retrieve a single pending order by ID, showing its current status, fill progress, and price parameters.",
	}, h.fetchOrder)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "place_market_order",
		Description: "Execute a market order at the current price for the given instrument.",
	}, h.placeMarketOrder)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "place_limit_order",
		Description: "Submit a limit order that executes only when the instrument reaches your target price.",
	}, h.placeLimitOrder)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "place_stop_order",
		Description: "Submit a stop order that triggers a market execution once the instrument hits the specified stop price.",
	}, h.placeStopOrder)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "place_stop_limit_order",
		Description: "Submit a combined stop-limit order: once the stop price is hit, a limit order is placed at your specified limit price instead of executing at market.",
	}, h.placeStopLimitOrder)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "cancel_order",
		Description: "Remove a pending order from the book. This cannot be undone once executed.",
	}, h.cancelOrder)
}

// validity applies the DAY default the API expects when the caller omits it.
func validity(s string) t212.TimeValidity {
	if s == "" {
		return t212.ValidityDay
	}
	return t212.TimeValidity(s)
}

func (h *Handler) fetchAllOrders(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, *orderList, error) {
	orders, err := h.client.FetchOrders(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, &orderList{Orders: orders}, nil
}

func (h *Handler) fetchOrder(ctx context.Context, req *mcp.CallToolRequest, in orderIDInput) (*mcp.CallToolResult, *t212.Order, error) {
	order, err := h.client.FetchOrder(ctx, in.OrderID)
	if err != nil {
		return nil, nil, err
	}
	return nil, order, nil
}

func (h *Handler) placeMarketOrder(ctx context.Context, req *mcp.CallToolRequest, in marketOrderInput) (*mcp.CallToolResult, *t212.Order, error) {
	order, err := h.client.PlaceMarketOrder(ctx, t212.MarketOrderRequest{
		Ticker:   in.Ticker,
		Quantity: in.Quantity,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, order, nil
}

func (h *Handler) placeLimitOrder(ctx context.Context, req *mcp.CallToolRequest, in limitOrderInput) (*mcp.CallToolResult, *t212.Order, error) {
	order, err := h.client.PlaceLimitOrder(ctx, t212.LimitOrderRequest{
		Ticker:       in.Ticker,
		Quantity:     in.Quantity,
		LimitPrice:   in.LimitPrice,
		TimeValidity: validity(in.TimeValidity),
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, order, nil
}

func (h *Handler) placeStopOrder(ctx context.Context, req *mcp.CallToolRequest, in stopOrderInput) (*mcp.CallToolResult, *t212.Order, error) {
	order, err := h.client.PlaceStopOrder(ctx, t212.StopOrderRequest{
		Ticker:       in.Ticker,
		Quantity:     in.Quantity,
		StopPrice:    in.StopPrice,
		TimeValidity: validity(in.TimeValidity),
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, order, nil
}

func (h *Handler) placeStopLimitOrder(ctx context.Context, req *mcp.CallToolRequest, in stopLimitOrderInput) (*mcp.CallToolResult, *t212.Order, error) {
	order, err := h.client.PlaceStopLimitOrder(ctx, t212.StopLimitOrderRequest{
		Ticker:       in.Ticker,
		Quantity:     in.Quantity,
		StopPrice:    in.StopPrice,
		LimitPrice:   in.LimitPrice,
		TimeValidity: validity(in.TimeValidity),
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, order, nil
}

func (h *Handler) cancelOrder(ctx context.Context, req *mcp.CallToolRequest, in orderIDInput) (*mcp.CallToolResult, *actionResult, error) {
	if err := h.client.CancelOrder(ctx, in.OrderID); err != nil {
		return nil, nil, err
	}
	return nil, &actionResult{Status: "cancelled"}, nil
}
