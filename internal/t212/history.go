package t212

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// historyItem is the nested wire shape returned by /equity/history/orders:
// the order parameters and the fill that (partially) executed it arrive as
// separate objects and are flattened into one HistoricalOrder.
type historyItem struct {
	Order struct {
		ID            int64        `json:"id"`
		Ticker        string       `json:"ticker"`
		Type          OrderType    `json:"type"`
		Status        OrderStatus  `json:"status"`
		InitiatedFrom string       `json:"initiatedFrom"`
		FilledValue   *float64     `json:"filledValue"`
		Value         *float64     `json:"value"`
		Quantity      *float64     `json:"quantity"`
		CreatedAt     *time.Time   `json:"createdAt"`
		LimitPrice    *float64     `json:"limitPrice"`
		StopPrice     *float64     `json:"stopPrice"`
		TimeValidity  TimeValidity `json:"timeValidity"`
		ParentOrder   *int64       `json:"parentOrder"`
	} `json:"order"`
	Fill struct {
		ID           *int64     `json:"id"`
		Type         string     `json:"type"`
		Price        *float64   `json:"price"`
		Quantity     *float64   `json:"quantity"`
		FilledAt     *time.Time `json:"filledAt"`
		WalletImpact struct {
			Taxes []Tax `json:"taxes"`
		} `json:"walletImpact"`
	} `json:"fill"`
}

func (item historyItem) flatten() HistoricalOrder {
	return HistoricalOrder{
		ID:              item.Order.ID,
		Ticker:          item.Order.Ticker,
		Type:            item.Order.Type,
		Status:          item.Order.Status,
		Executor:        item.Order.InitiatedFrom,
		FilledValue:     item.Order.FilledValue,
		OrderedValue:    item.Order.Value,
		OrderedQuantity: item.Order.Quantity,
		DateCreated:     item.Order.CreatedAt,
		LimitPrice:      item.Order.LimitPrice,
		StopPrice:       item.Order.StopPrice,
		TimeValidity:    item.Order.TimeValidity,
		ParentOrder:     item.Order.ParentOrder,
		FilledQuantity:  item.Fill.Quantity,
		FillPrice:       item.Fill.Price,
		FillID:          item.Fill.ID,
		FillType:        item.Fill.Type,
		DateExecuted:    item.Fill.FilledAt,
		Taxes:           item.Fill.WalletImpact.Taxes,
	}
}

// FetchOrderHistory retrieves past orders with their execution details.
// Cursor and ticker are optional filters.
func (c *Client) FetchOrderHistory(ctx context.Context, cursor *int64, ticker string, limit int) ([]HistoricalOrder, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if cursor != nil {
		query.Set("cursor", strconv.FormatInt(*cursor, 10))
	}
	if ticker != "" {
		query.Set("ticker", ticker)
	}

	var page paginatedPage[historyItem]
	if err := c.request(ctx, http.MethodGet, "/equity/history/orders", query, nil, &page); err != nil {
		return nil, err
	}
	orders := make([]HistoricalOrder, 0, len(page.Items))
	for _, item := range page.Items {
		orders = append(orders, item.flatten())
	}
	return orders, nil
}

// FetchDividends retrieves one page of dividend payouts. The limit is
// clamped to [1, 50].
func (c *Client) FetchDividends(ctx context.Context, cursor *int64, ticker string, limit int) (*PaginatedDividends, error) {
	query := url.Values{}
	if cursor != nil {
		query.Set("cursor", strconv.FormatInt(*cursor, 10))
	}
	if ticker != "" {
		query.Set("ticker", ticker)
	}
	query.Set("limit", strconv.Itoa(clampLimit(limit)))

	var page PaginatedDividends
	if err := c.request(ctx, http.MethodGet, "/history/dividends", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FetchAllDividends follows the dividend page chain to the end and returns
// the flattened payout history.
func (c *Client) FetchAllDividends(ctx context.Context, ticker string) ([]Dividend, error) {
	query := url.Values{}
	if ticker != "" {
		query.Set("ticker", ticker)
	}
	query.Set("limit", "50")
	return paginate[Dividend](ctx, c, "/history/dividends", query)
}

// FetchTransactions retrieves one page of account cash movements. The
// cursor is an opaque string issued by the API.
func (c *Client) FetchTransactions(ctx context.Context, cursor, timeFilter string, limit int) (*PaginatedTransactions, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	if timeFilter != "" {
		query.Set("time", timeFilter)
	}

	var page PaginatedTransactions
	if err := c.request(ctx, http.MethodGet, "/equity/history/transactions", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FetchAllTransactions follows the transaction page chain to the end.
func (c *Client) FetchAllTransactions(ctx context.Context) ([]Transaction, error) {
	query := url.Values{}
	query.Set("limit", "50")
	return paginate[Transaction](ctx, c, "/equity/history/transactions", query)
}

// clampLimit keeps a page size within the documented [1, 50] range.
func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > 50 {
		return 50
	}
	return limit
}
