package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tradelens/tradelens/internal/t212"
)

type pieIDInput struct {
	PieID int64 `json:"pie_id" jsonschema:"Numeric ID of the pie"`
}

type createPieInput struct {
	Name               string             `json:"name" jsonschema:"Display name for the pie"`
	InstrumentShares   map[string]float64 `json:"instrument_shares" jsonschema:"Mapping of instrument tickers to their target weights (e.g. {'AAPL_US_EQ': 0.5, 'MSFT_US_EQ': 0.5})"`
	DividendCashAction *string            `json:"dividend_cash_action,omitempty" jsonschema:"What to do with dividends - REINVEST or TO_ACCOUNT_CASH"`
	EndDate            *string            `json:"end_date,omitempty" jsonschema:"Optional target end date in ISO 8601 format (e.g. '2025-12-31T23:59:59Z')"`
	Goal               *float64           `json:"goal,omitempty" jsonschema:"Target total value for the pie in your account currency"`
	Icon               *string            `json:"icon,omitempty" jsonschema:"Identifier for the pie icon"`
}

type updatePieInput struct {
	PieID              int64              `json:"pie_id" jsonschema:"Numeric ID of the pie to modify"`
	Name               *string            `json:"name,omitempty" jsonschema:"Updated name for the pie (required by the API)"`
	InstrumentShares   map[string]float64 `json:"instrument_shares,omitempty" jsonschema:"New ticker-to-weight mapping (e.g. {'AAPL_US_EQ': 0.5, 'MSFT_US_EQ': 0.5})"`
	DividendCashAction *string            `json:"dividend_cash_action,omitempty" jsonschema:"Updated dividend handling - REINVEST or TO_ACCOUNT_CASH"`
	EndDate            *string            `json:"end_date,omitempty" jsonschema:"Revised end date in ISO 8601 format (e.g. '2025-12-31T23:59:59Z')"`
	Goal               *float64           `json:"goal,omitempty" jsonschema:"Revised target value in account currency"`
	Icon               *string            `json:"icon,omitempty" jsonschema:"Updated icon identifier"`
}

type duplicatePieInput struct {
	PieID int64   `json:"pie_id" jsonschema:"ID of the source pie to copy"`
	Name  *string `json:"name,omitempty" jsonschema:"Optional custom name for the clone"`
	Icon  *string `json:"icon,omitempty" jsonschema:"Optional icon for the clone"`
}

type pieList struct {
	Pies []t212.PieSummary `json:"pies"`
}

func (h *Handler) registerPieTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_pies",
		Description: "List all your pies with their cash balances, dividend info, goal progress, and investment performance.",
	}, h.fetchPies)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_a_pie",
		Description: "Get full details for a single pie including every instrument allocation, current settings, and per-instrument results.",
	}, h.fetchPie)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_pie",
		Description: "Build a new pie with the given instruments and weights.",
	}, h.createPie)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_pie",
		Description: "Modify an existing pie's configuration. You must provide a new name when updating; only provided fields are sent.",
	}, h.updatePie)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "duplicate_pie",
		Description: "Clone an existing pie into a new one with identical instrument allocations.",
	}, h.duplicatePie)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_pie",
		Description: "Permanently remove a pie. Instruments inside it become standalone positions in your portfolio.",
	}, h.deletePie)
}

func (h *Handler) fetchPies(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, *pieList, error) {
	pies, err := h.client.FetchPies(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, &pieList{Pies: pies}, nil
}

func (h *Handler) fetchPie(ctx context.Context, req *mcp.CallToolRequest, in pieIDInput) (*mcp.CallToolResult, *t212.PieDetails, error) {
	pie, err := h.client.FetchPie(ctx, in.PieID)
	if err != nil {
		return nil, nil, err
	}
	return nil, pie, nil
}

func (h *Handler) createPie(ctx context.Context, req *mcp.CallToolRequest, in createPieInput) (*mcp.CallToolResult, *t212.PieDetails, error) {
	pieReq, err := pieRequest(&in.Name, in.InstrumentShares, in.DividendCashAction, in.EndDate, in.Goal, in.Icon)
	if err != nil {
		return nil, nil, err
	}
	pie, err := h.client.CreatePie(ctx, pieReq)
	if err != nil {
		return nil, nil, err
	}
	return nil, pie, nil
}

func (h *Handler) updatePie(ctx context.Context, req *mcp.CallToolRequest, in updatePieInput) (*mcp.CallToolResult, *t212.PieDetails, error) {
	pieReq, err := pieRequest(in.Name, in.InstrumentShares, in.DividendCashAction, in.EndDate, in.Goal, in.Icon)
	if err != nil {
		return nil, nil, err
	}
	pie, err := h.client.UpdatePie(ctx, in.PieID, pieReq)
	if err != nil {
		return nil, nil, err
	}
	return nil, pie, nil
}

func (h *Handler) duplicatePie(ctx context.Context, req *mcp.CallToolRequest, in duplicatePieInput) (*mcp.CallToolResult, *t212.PieDetails, error) {
	pie, err := h.client.DuplicatePie(ctx, in.PieID, t212.DuplicatePieRequest{
		Name: in.Name,
		Icon: in.Icon,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, pie, nil
}

func (h *Handler) deletePie(ctx context.Context, req *mcp.CallToolRequest, in pieIDInput) (*mcp.CallToolResult, *actionResult, error) {
	if err := h.client.DeletePie(ctx, in.PieID); err != nil {
		return nil, nil, err
	}
	return nil, &actionResult{Status: "deleted"}, nil
}

func pieRequest(name *string, shares map[string]float64, action, endDate *string, goal *float64, icon *string) (t212.PieRequest, error) {
	req := t212.PieRequest{
		Name:             name,
		InstrumentShares: shares,
		Goal:             goal,
		Icon:             icon,
	}
	if action != nil {
		a := t212.DividendCashAction(*action)
		req.DividendCashAction = &a
	}
	if endDate != nil {
		parsed, err := time.Parse(time.RFC3339, *endDate)
		if err != nil {
			return t212.PieRequest{}, fmt.Errorf("parse end_date: %w", err)
		}
		req.EndDate = &parsed
	}
	return req, nil
}
