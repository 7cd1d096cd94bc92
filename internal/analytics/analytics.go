// Package analytics derives composite portfolio reports from the broker
// API: snapshot, performance, dividend income and a merged activity feed.
// It performs no network work of its own beyond the client calls it
// composes.
package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tradelens/tradelens/internal/t212"
)

// API is the slice of the broker client the report builders consume.
// *t212.Client satisfies it; tests substitute a stub.
type API interface {
	FetchAccount(ctx context.Context) (*t212.Account, error)
	FetchCash(ctx context.Context) (*t212.Cash, error)
	FetchPositions(ctx context.Context) ([]t212.Position, error)
	FetchOrderHistory(ctx context.Context, cursor *int64, ticker string, limit int) ([]t212.HistoricalOrder, error)
	FetchDividends(ctx context.Context, cursor *int64, ticker string, limit int) (*t212.PaginatedDividends, error)
	FetchTransactions(ctx context.Context, cursor, timeFilter string, limit int) (*t212.PaginatedTransactions, error)
}

// Service builds reports against a broker API.
type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// round2 rounds a monetary value to two decimal places for presentation.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
