package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/tradelens/tradelens/internal/t212"
)

// PositionPerformance is the realized-plus-unrealized return of one holding.
type PositionPerformance struct {
	Ticker       string  `json:"ticker"`
	Quantity     float64 `json:"quantity"`
	Invested     float64 `json:"invested"`
	CurrentValue float64 `json:"current_value"`
	PricePPL     float64 `json:"price_ppl"`
	Dividends    float64 `json:"dividends"`
	TotalReturn  float64 `json:"total_return"`
	ReturnPct    float64 `json:"return_pct"`
	HeldSince    string  `json:"held_since,omitempty"`
}

// FilledOrder is a recently executed order in the performance report.
type FilledOrder struct {
	Ticker    string   `json:"ticker"`
	Type      string   `json:"type,omitempty"`
	Quantity  *float64 `json:"quantity"`
	FillPrice *float64 `json:"fill_price"`
	Date      string   `json:"date,omitempty"`
	Status    string   `json:"status,omitempty"`
}

// PerformanceReport ranks positions by total return, dividends included.
type PerformanceReport struct {
	Currency           string                `json:"currency"`
	TotalPricePPL      float64               `json:"total_price_ppl"`
	TotalDividends     float64               `json:"total_dividends"`
	TotalReturn        float64               `json:"total_return"`
	BestPerformer      *PositionPerformance  `json:"best_performer"`
	WorstPerformer     *PositionPerformance  `json:"worst_performer"`
	Positions          []PositionPerformance `json:"positions"`
	RecentFilledOrders []FilledOrder         `json:"recent_filled_orders"`
}

// Performance combines positions, recent order history and dividend payouts
// into per-position total returns.
func (s *Service) Performance(ctx context.Context) (*PerformanceReport, error) {
	account, err := s.api.FetchAccount(ctx)
	if err != nil {
		return nil, err
	}
	positions, err := s.api.FetchPositions(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.api.FetchOrderHistory(ctx, nil, "", 50)
	if err != nil {
		return nil, err
	}
	dividends, err := s.api.FetchDividends(ctx, nil, "", 50)
	if err != nil {
		return nil, err
	}

	divByTicker := map[string]float64{}
	totalDividends := 0.0
	for _, d := range dividends.Items {
		ticker := d.Ticker
		if ticker == "" {
			ticker = "unknown"
		}
		divByTicker[ticker] += d.Amount
		totalDividends += d.Amount
	}

	perf := make([]PositionPerformance, 0, len(positions))
	totalPPL := 0.0
	totalReturn := 0.0
	for _, pos := range positions {
		invested := pos.AveragePrice * pos.Quantity
		ppl := deref(pos.PPL)
		divs := round2(divByTicker[pos.Ticker])
		ret := round2(ppl + divs)
		var pct float64
		if invested != 0 {
			pct = round2(ret / invested * 100)
		}
		var heldSince string
		if pos.InitialFillDate != nil {
			heldSince = pos.InitialFillDate.Format(time.RFC3339)
		}
		perf = append(perf, PositionPerformance{
			Ticker:       pos.Ticker,
			Quantity:     pos.Quantity,
			Invested:     round2(invested),
			CurrentValue: round2(pos.CurrentPrice * pos.Quantity),
			PricePPL:     round2(ppl),
			Dividends:    divs,
			TotalReturn:  ret,
			ReturnPct:    pct,
			HeldSince:    heldSince,
		})
		totalPPL += ppl
		totalReturn += ret
	}
	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].TotalReturn > perf[j].TotalReturn
	})

	filled := make([]FilledOrder, 0, 20)
	for _, o := range orders {
		if o.Status != t212.OrderStatusFilled {
			continue
		}
		var date string
		if o.DateExecuted != nil {
			date = o.DateExecuted.Format(time.RFC3339)
		}
		filled = append(filled, FilledOrder{
			Ticker:    o.Ticker,
			Type:      string(o.Type),
			Quantity:  o.FilledQuantity,
			FillPrice: o.FillPrice,
			Date:      date,
			Status:    string(o.Status),
		})
		if len(filled) == 20 {
			break
		}
	}

	report := &PerformanceReport{
		Currency:           account.CurrencyCode,
		TotalPricePPL:      round2(totalPPL),
		TotalDividends:     round2(totalDividends),
		TotalReturn:        round2(totalReturn),
		Positions:          perf,
		RecentFilledOrders: filled,
	}
	if len(perf) > 0 {
		report.BestPerformer = &perf[0]
		report.WorstPerformer = &perf[len(perf)-1]
	}
	return report, nil
}
