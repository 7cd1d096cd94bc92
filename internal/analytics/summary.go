package analytics

import (
	"context"
	"sort"
)

// Holding is one position valued at the current market price.
type Holding struct {
	Ticker        string  `json:"ticker"`
	Quantity      float64 `json:"quantity"`
	AveragePrice  float64 `json:"average_price"`
	CurrentPrice  float64 `json:"current_price"`
	CurrentValue  float64 `json:"current_value"`
	ProfitLoss    float64 `json:"profit_loss"`
	ProfitLossPct float64 `json:"profit_loss_pct"`
}

// PortfolioSummary is a full account snapshot with holdings ranked by value.
type PortfolioSummary struct {
	Currency      string    `json:"currency"`
	TotalValue    float64   `json:"total_value"`
	CashAvailable float64   `json:"cash_available"`
	Invested      float64   `json:"invested"`
	ProfitLoss    float64   `json:"profit_loss"`
	ProfitLossPct float64   `json:"profit_loss_pct"`
	PositionCount int       `json:"position_count"`
	Positions     []Holding `json:"positions"`
	TopHoldings   []Holding `json:"top_holdings"`
}

// PortfolioSummary pulls account info, cash and open positions and ranks
// holdings by current value.
func (s *Service) PortfolioSummary(ctx context.Context) (*PortfolioSummary, error) {
	account, err := s.api.FetchAccount(ctx)
	if err != nil {
		return nil, err
	}
	cash, err := s.api.FetchCash(ctx)
	if err != nil {
		return nil, err
	}
	positions, err := s.api.FetchPositions(ctx)
	if err != nil {
		return nil, err
	}

	holdings := make([]Holding, 0, len(positions))
	for _, pos := range positions {
		ppl := deref(pos.PPL)
		var pct float64
		if pos.AveragePrice != 0 && pos.Quantity != 0 {
			pct = round2(ppl / (pos.AveragePrice * pos.Quantity) * 100)
		}
		holdings = append(holdings, Holding{
			Ticker:        pos.Ticker,
			Quantity:      pos.Quantity,
			AveragePrice:  pos.AveragePrice,
			CurrentPrice:  pos.CurrentPrice,
			CurrentValue:  round2(pos.CurrentPrice * pos.Quantity),
			ProfitLoss:    round2(ppl),
			ProfitLossPct: pct,
		})
	}
	sort.SliceStable(holdings, func(i, j int) bool {
		return holdings[i].CurrentValue > holdings[j].CurrentValue
	})

	invested := deref(cash.Invested)
	ppl := deref(cash.PPL)
	var overallPct float64
	if invested != 0 {
		overallPct = round2(ppl / invested * 100)
	}

	top := holdings
	if len(top) > 5 {
		top = top[:5]
	}
	return &PortfolioSummary{
		Currency:      account.CurrencyCode,
		TotalValue:    round2(deref(cash.Total)),
		CashAvailable: round2(deref(cash.Free)),
		Invested:      round2(invested),
		ProfitLoss:    round2(ppl),
		ProfitLossPct: overallPct,
		PositionCount: len(positions),
		Positions:     holdings,
		TopHoldings:   top,
	}, nil
}
