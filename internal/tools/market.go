package tools

import (
	"context"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tradelens/tradelens/internal/t212"
)

type searchInput struct {
	SearchTerm string `json:"search_term,omitempty" jsonschema:"Case-insensitive text to match. Omit to return everything."`
}

type instrumentList struct {
	Instruments []t212.Instrument `json:"instruments"`
}

type exchangeList struct {
	Exchanges []t212.Exchange `json:"exchanges"`
}

func (h *Handler) registerMarketTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_instrument",
		Description: "Look up tradeable instruments, with optional filtering by ticker or name.",
	}, h.searchInstrument)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_exchange",
		Description: "Look up exchanges, with optional filtering by name or numeric ID.",
	}, h.searchExchange)
}

func (h *Handler) searchInstrument(ctx context.Context, req *mcp.CallToolRequest, in searchInput) (*mcp.CallToolResult, *instrumentList, error) {
	instruments, err := h.client.FetchInstruments(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, &instrumentList{Instruments: filterInstruments(instruments, in.SearchTerm)}, nil
}

func (h *Handler) searchExchange(ctx context.Context, req *mcp.CallToolRequest, in searchInput) (*mcp.CallToolResult, *exchangeList, error) {
	exchanges, err := h.client.FetchExchanges(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, &exchangeList{Exchanges: filterExchanges(exchanges, in.SearchTerm)}, nil
}

// filterInstruments keeps instruments whose ticker or name contains the term,
// case-insensitively. An empty term keeps everything.
func filterInstruments(instruments []t212.Instrument, term string) []t212.Instrument {
	if term == "" {
		return instruments
	}
	lower := strings.ToLower(term)
	matched := make([]t212.Instrument, 0, len(instruments))
	for _, inst := range instruments {
		if strings.Contains(strings.ToLower(inst.Ticker), lower) ||
			strings.Contains(strings.ToLower(inst.Name), lower) {
			matched = append(matched, inst)
		}
	}
	return matched
}

// filterExchanges keeps exchanges whose name contains the term or whose
// numeric ID matches it exactly.
func filterExchanges(exchanges []t212.Exchange, term string) []t212.Exchange {
	if term == "" {
		return exchanges
	}
	lower := strings.ToLower(term)
	matched := make([]t212.Exchange, 0, len(exchanges))
	for _, exch := range exchanges {
		if strings.Contains(strings.ToLower(exch.Name), lower) ||
			strconv.FormatInt(exch.ID, 10) == term {
			matched = append(matched, exch)
		}
	}
	return matched
}
