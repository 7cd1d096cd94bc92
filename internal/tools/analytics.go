package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/tradelens/tradelens/internal/analytics"
)

type activityInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"How many items to pull from each source (capped at 50). Defaults to 20."`
}

func (h *Handler) registerAnalyticsTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_portfolio_summary",
		Description: "Produce a full portfolio snapshot in one call: account info, cash balance, and every open position with totals and holdings ranked by value.",
	}, h.fetchPortfolioSummary)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_portfolio_performance",
		Description: "Build a performance report across all positions, combining holdings, recent order history, and dividend payouts to identify top and bottom performers.",
	}, h.fetchPortfolioPerformance)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_dividend_summary",
		Description: "Analyse your dividend income history: up to 200 records broken down by ticker and by calendar month to reveal income trends.",
	}, h.fetchDividendSummary)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_recent_activity",
		Description: "Get a unified timeline of recent trades and account movements, merged and sorted newest-first.",
	}, h.fetchRecentActivity)
}

// logWaitOverhead drains the client's rate-limit wait accumulator after a
// composite report, which can span many throttled calls.
func (h *Handler) logWaitOverhead(tool string) {
	if waited := h.client.DrainWaitTime(); waited > 0 {
		h.log.Info("report delayed by rate limiting",
			zap.String("tool", tool),
			zap.Float64("wait_seconds", waited))
	}
}

func (h *Handler) fetchPortfolioSummary(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, *analytics.PortfolioSummary, error) {
	summary, err := h.analytics.PortfolioSummary(ctx)
	if err != nil {
		return nil, nil, err
	}
	h.logWaitOverhead("fetch_portfolio_summary")
	return nil, summary, nil
}

func (h *Handler) fetchPortfolioPerformance(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, *analytics.PerformanceReport, error) {
	report, err := h.analytics.Performance(ctx)
	if err != nil {
		return nil, nil, err
	}
	h.logWaitOverhead("fetch_portfolio_performance")
	return nil, report, nil
}

func (h *Handler) fetchDividendSummary(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, *analytics.DividendSummary, error) {
	summary, err := h.analytics.DividendSummary(ctx)
	if err != nil {
		return nil, nil, err
	}
	h.logWaitOverhead("fetch_dividend_summary")
	return nil, summary, nil
}

func (h *Handler) fetchRecentActivity(ctx context.Context, req *mcp.CallToolRequest, in activityInput) (*mcp.CallToolResult, *analytics.ActivityFeed, error) {
	feed, err := h.analytics.RecentActivity(ctx, defaultLimit(in.Limit))
	if err != nil {
		return nil, nil, err
	}
	h.logWaitOverhead("fetch_recent_activity")
	return nil, feed, nil
}
