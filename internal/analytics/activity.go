package analytics

import (
	"context"
	"sort"
	"time"
)

// ActivityEntry is one row of the merged order/transaction feed. Fields not
// relevant to the entry's kind stay zero and are omitted from JSON.
type ActivityEntry struct {
	Type            string   `json:"type"`
	Date            string   `json:"date,omitempty"`
	Ticker          string   `json:"ticker,omitempty"`
	OrderType       string   `json:"order_type,omitempty"`
	Status          string   `json:"status,omitempty"`
	Quantity        *float64 `json:"quantity,omitempty"`
	FillPrice       *float64 `json:"fill_price,omitempty"`
	Value           *float64 `json:"value,omitempty"`
	TransactionType string   `json:"transaction_type,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	Reference       string   `json:"reference,omitempty"`
}

// ActivityFeed is the unified recent-activity timeline, newest first.
type ActivityFeed struct {
	Currency         string          `json:"currency"`
	Activity         []ActivityEntry `json:"activity"`
	OrderCount       int             `json:"order_count"`
	TransactionCount int             `json:"transaction_count"`
}

// RecentActivity merges order history with cash movements into one feed
// sorted by date descending. Orders date by execution time when present,
// falling back to creation time; undated entries sort last.
func (s *Service) RecentActivity(ctx context.Context, limit int) (*ActivityFeed, error) {
	if limit > 50 {
		limit = 50
	}
	account, err := s.api.FetchAccount(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.api.FetchOrderHistory(ctx, nil, "", limit)
	if err != nil {
		return nil, err
	}
	txns, err := s.api.FetchTransactions(ctx, "", "", limit)
	if err != nil {
		return nil, err
	}

	activity := make([]ActivityEntry, 0, len(orders)+len(txns.Items))
	for _, o := range orders {
		var date string
		switch {
		case o.DateExecuted != nil:
			date = o.DateExecuted.Format(time.RFC3339)
		case o.DateCreated != nil:
			date = o.DateCreated.Format(time.RFC3339)
		}
		quantity := o.FilledQuantity
		if quantity == nil {
			quantity = o.OrderedQuantity
		}
		value := o.FilledValue
		if value == nil {
			value = o.OrderedValue
		}
		activity = append(activity, ActivityEntry{
			Type:      "order",
			Date:      date,
			Ticker:    o.Ticker,
			OrderType: string(o.Type),
			Status:    string(o.Status),
			Quantity:  quantity,
			FillPrice: o.FillPrice,
			Value:     value,
		})
	}
	for _, txn := range txns.Items {
		var date string
		if txn.DateTime != nil {
			date = txn.DateTime.Format(time.RFC3339)
		}
		amount := txn.Amount
		activity = append(activity, ActivityEntry{
			Type:            "transaction",
			Date:            date,
			TransactionType: string(txn.Type),
			Amount:          &amount,
			Reference:       txn.Reference,
		})
	}
	// RFC 3339 strings sort lexicographically in time order, and an empty
	// date sorts after every real one.
	sort.SliceStable(activity, func(i, j int) bool {
		return activity[i].Date > activity[j].Date
	})

	return &ActivityFeed{
		Currency:         account.CurrencyCode,
		Activity:         activity,
		OrderCount:       len(orders),
		TransactionCount: len(txns.Items),
	}, nil
}
