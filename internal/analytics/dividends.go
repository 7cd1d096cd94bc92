package analytics

import (
	"context"
	"sort"

	"github.com/tradelens/tradelens/internal/t212"
)

// dividendPageBudget bounds the summary scan to 4 pages of 50 records.
const dividendPageBudget = 4

// TickerDividends is the payout total for one instrument.
type TickerDividends struct {
	Ticker string  `json:"ticker"`
	Total  float64 `json:"total"`
}

// MonthDividends is the payout total for one calendar month.
type MonthDividends struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// DividendSummary breaks down dividend income by ticker and by month.
type DividendSummary struct {
	Currency       string            `json:"currency"`
	TotalDividends float64           `json:"total_dividends"`
	DividendCount  int               `json:"dividend_count"`
	AverageMonthly float64           `json:"average_monthly"`
	ByTicker       []TickerDividends `json:"by_ticker"`
	ByMonth        []MonthDividends  `json:"by_month"`
}

// DividendSummary collects up to 200 dividend records and aggregates them.
// The page walk stops early when the API stops issuing a parseable cursor.
func (s *Service) DividendSummary(ctx context.Context) (*DividendSummary, error) {
	account, err := s.api.FetchAccount(ctx)
	if err != nil {
		return nil, err
	}

	var all []t212.Dividend
	var cursor *int64
	for i := 0; i < dividendPageBudget; i++ {
		page, err := s.api.FetchDividends(ctx, cursor, "", 50)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if page.NextPagePath == "" {
			break
		}
		next, ok := t212.CursorFromPath(page.NextPagePath)
		if !ok {
			break
		}
		cursor = &next
	}

	byTicker := map[string]float64{}
	byMonth := map[string]float64{}
	total := 0.0
	for _, d := range all {
		ticker := d.Ticker
		if ticker == "" {
			ticker = "unknown"
		}
		byTicker[ticker] += d.Amount
		if d.PaidOn != nil {
			byMonth[d.PaidOn.Format("2006-01")] += d.Amount
		}
		total += d.Amount
	}

	tickerList := make([]TickerDividends, 0, len(byTicker))
	for ticker, amount := range byTicker {
		tickerList = append(tickerList, TickerDividends{Ticker: ticker, Total: round2(amount)})
	}
	sort.SliceStable(tickerList, func(i, j int) bool {
		return tickerList[i].Total > tickerList[j].Total
	})

	monthList := make([]MonthDividends, 0, len(byMonth))
	for month, amount := range byMonth {
		monthList = append(monthList, MonthDividends{Month: month, Total: round2(amount)})
	}
	sort.Slice(monthList, func(i, j int) bool {
		return monthList[i].Month < monthList[j].Month
	})

	months := len(byMonth)
	if months == 0 {
		months = 1
	}
	return &DividendSummary{
		Currency:       account.CurrencyCode,
		TotalDividends: round2(total),
		DividendCount:  len(all),
		AverageMonthly: round2(total / float64(months)),
		ByTicker:       tickerList,
		ByMonth:        monthList,
	}, nil
}
