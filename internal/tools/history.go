package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tradelens/tradelens/internal/t212"
)

type orderHistoryInput struct {
	Cursor *int64 `json:"cursor,omitempty" jsonschema:"Pagination cursor from a previous page"`
	Ticker string `json:"ticker,omitempty" jsonschema:"Restrict results to a single instrument ticker"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of records to return. Defaults to 20."`
}

type dividendsInput struct {
	Cursor *int64 `json:"cursor,omitempty" jsonschema:"Pagination cursor from a previous page"`
	Ticker string `json:"ticker,omitempty" jsonschema:"Restrict results to a single instrument ticker"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of records per page, between 1 and 50. Defaults to 20."`
}

type transactionsInput struct {
	Cursor string `json:"cursor,omitempty" jsonschema:"Opaque pagination cursor from a previous page"`
	Time   string `json:"time,omitempty" jsonschema:"Restrict results to movements at or after this ISO 8601 timestamp"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of records per page. Defaults to 20."`
}

type exportInput struct {
	IncludeDividends    *bool  `json:"include_dividends,omitempty" jsonschema:"Add dividend records to the export. Defaults to true."`
	IncludeInterest     *bool  `json:"include_interest,omitempty" jsonschema:"Add interest records to the export. Defaults to true."`
	IncludeOrders       *bool  `json:"include_orders,omitempty" jsonschema:"Add order history to the export. Defaults to true."`
	IncludeTransactions *bool  `json:"include_transactions,omitempty" jsonschema:"Add deposit/withdrawal records. Defaults to true."`
	TimeFrom            string `json:"time_from,omitempty" jsonschema:"Start of the reporting window in ISO 8601 (e.g. '2024-01-01T00:00:00Z')"`
	TimeTo              string `json:"time_to,omitempty" jsonschema:"End of the reporting window in ISO 8601 (e.g. '2024-12-31T23:59:59Z')"`
}

type historicalOrderList struct {
	Orders []t212.HistoricalOrder `json:"orders"`
}

type reportList struct {
	Reports []t212.Report `json:"reports"`
}

func (h *Handler) registerHistoryTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_historical_order_data",
		Description: "Retrieve past orders (filled, cancelled, rejected) along with their execution details and timestamps.",
	}, h.fetchHistoricalOrders)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_paid_out_dividends",
		Description: "Retrieve dividend payouts you have received, including per-share amounts, payment dates, and totals.",
	}, h.fetchPaidOutDividends)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_transaction_list",
		Description: "Retrieve account movements such as deposits, withdrawals, fees, and internal transfers with pagination support.",
	}, h.fetchTransactionList)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_exports_list",
		Description: "Get a list of all previously generated CSV account exports with their status and download links.",
	}, h.fetchExportsList)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "request_csv_export",
		Description: "Queue a CSV export of your account history. When finished, the download link appears in the exports list.",
	}, h.requestCSVExport)
}

func defaultLimit(limit int) int {
	if limit == 0 {
		return 20
	}
	return limit
}

func (h *Handler) fetchHistoricalOrders(ctx context.Context, req *mcp.CallToolRequest, in orderHistoryInput) (*mcp.CallToolResult, *historicalOrderList, error) {
	orders, err := h.client.FetchOrderHistory(ctx, in.Cursor, in.Ticker, defaultLimit(in.Limit))
	if err != nil {
		return nil, nil, err
	}
	return nil, &historicalOrderList{Orders: orders}, nil
}

func (h *Handler) fetchPaidOutDividends(ctx context.Context, req *mcp.CallToolRequest, in dividendsInput) (*mcp.CallToolResult, *t212.PaginatedDividends, error) {
	page, err := h.client.FetchDividends(ctx, in.Cursor, in.Ticker, defaultLimit(in.Limit))
	if err != nil {
		return nil, nil, err
	}
	return nil, page, nil
}

func (h *Handler) fetchTransactionList(ctx context.Context, req *mcp.CallToolRequest, in transactionsInput) (*mcp.CallToolResult, *t212.PaginatedTransactions, error) {
	page, err := h.client.FetchTransactions(ctx, in.Cursor, in.Time, defaultLimit(in.Limit))
	if err != nil {
		return nil, nil, err
	}
	return nil, page, nil
}

func (h *Handler) fetchExportsList(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, *reportList, error) {
	reports, err := h.client.FetchReports(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, &reportList{Reports: reports}, nil
}

func (h *Handler) requestCSVExport(ctx context.Context, req *mcp.CallToolRequest, in exportInput) (*mcp.CallToolResult, *t212.EnqueuedReport, error) {
	included := t212.AllReportData()
	if in.IncludeDividends != nil {
		included.IncludeDividends = *in.IncludeDividends
	}
	if in.IncludeInterest != nil {
		included.IncludeInterest = *in.IncludeInterest
	}
	if in.IncludeOrders != nil {
		included.IncludeOrders = *in.IncludeOrders
	}
	if in.IncludeTransactions != nil {
		included.IncludeTransactions = *in.IncludeTransactions
	}
	enqueued, err := h.client.RequestExport(ctx, included, in.TimeFrom, in.TimeTo)
	if err != nil {
		return nil, nil, err
	}
	return nil, enqueued, nil
}
