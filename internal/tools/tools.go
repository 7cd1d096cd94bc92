// Package tools exposes the broker client and the analytics reports as MCP
// tools, plus the portfolio-analysis prompt.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/tradelens/tradelens/internal/analytics"
	"github.com/tradelens/tradelens/internal/t212"
)

// Handler carries the dependencies shared by every tool.
type Handler struct {
	client    *t212.Client
	analytics *analytics.Service
	log       *zap.Logger
}

// NewServer builds an MCP server with the full tool surface registered.
func NewServer(client *t212.Client, version string, log *zap.Logger) *mcp.Server {
	h := &Handler{
		client:    client,
		analytics: analytics.NewService(client),
		log:       log,
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "tradelens", Version: version}, nil)
	h.registerAccountTools(server)
	h.registerTradingTools(server)
	h.registerPieTools(server)
	h.registerHistoryTools(server)
	h.registerMarketTools(server)
	h.registerAnalyticsTools(server)
	h.registerPrompts(server)
	return server
}

// actionResult acknowledges a tool call that returns no resource.
type actionResult struct {
	Status string `json:"status"`
}
