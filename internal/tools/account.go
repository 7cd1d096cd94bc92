package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tradelens/tradelens/internal/t212"
)

type tickerInput struct {
	Ticker string `json:"ticker" jsonschema:"Instrument ticker to look up (e.g. 'AAPL_US_EQ')"`
}

type positionList struct {
	Positions []t212.Position `json:"positions"`
}

func (h *Handler) registerAccountTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_account_info",
		Description: "Retrieve account metadata such as the currency and unique account identifier.",
	}, h.fetchAccountInfo)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_account_cash",
		Description: "Get a detailed breakdown of your account balance, including available cash, invested capital, P/L, and blocked funds.",
	}, h.fetchAccountCash)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_all_open_positions",
		Description: "Retrieve your current holdings with live prices, quantities, cost basis, and unrealised gains for every position.",
	}, h.fetchAllOpenPositions)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_specific_position_by_ticker",
		Description: "Look up a single position by its ticker symbol to get real-time details on that specific holding.",
	}, h.searchPositionByTicker)
}

func (h *Handler) fetchAccountInfo(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, *t212.Account, error) {
	account, err := h.client.FetchAccount(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, account, nil
}

func (h *Handler) fetchAccountCash(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, *t212.Cash, error) {
	cash, err := h.client.FetchCash(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, cash, nil
}

func (h *Handler) fetchAllOpenPositions(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, *positionList, error) {
	positions, err := h.client.FetchPositions(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, &positionList{Positions: positions}, nil
}

func (h *Handler) searchPositionByTicker(ctx context.Context, req *mcp.CallToolRequest, in tickerInput) (*mcp.CallToolResult, *t212.Position, error) {
	position, err := h.client.SearchPositionByTicker(ctx, in.Ticker)
	if err != nil {
		return nil, nil, err
	}
	return nil, position, nil
}
