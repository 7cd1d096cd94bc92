package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tradelens/tradelens/internal/analytics"
)

// roundedStyle is StyleRounded with footer text rendered as written
// instead of the library default of uppercasing it.
func roundedStyle() table.Style {
	style := table.StyleRounded
	style.Format.Footer = text.FormatDefault
	return style
}

// SummaryTable renders the portfolio summary as a table with a totals
// footer.
func SummaryTable(summary *analytics.PortfolioSummary) string {
	t := table.NewWriter()
	t.SetStyle(roundedStyle())
	t.SetTitle(fmt.Sprintf("Portfolio (%s)", summary.Currency))
	t.AppendHeader(table.Row{"Ticker", "Quantity", "Avg Price", "Price", "Value", "P/L", "P/L %"})

	for _, h := range summary.Positions {
		t.AppendRow(table.Row{
			h.Ticker,
			h.Quantity,
			money(h.AveragePrice),
			money(h.CurrentPrice),
			money(h.CurrentValue),
			money(h.ProfitLoss),
			pct(h.ProfitLossPct),
		})
	}
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d positions", summary.PositionCount),
		"",
		"",
		"cash " + money(summary.CashAvailable),
		money(summary.TotalValue),
		money(summary.ProfitLoss),
		pct(summary.ProfitLossPct),
	})
	return t.Render()
}

// PerformanceTable renders the per-position performance report.
func PerformanceTable(report *analytics.PerformanceReport) string {
	t := table.NewWriter()
	t.SetStyle(roundedStyle())
	t.SetTitle(fmt.Sprintf("Performance (%s)", report.Currency))
	t.AppendHeader(table.Row{"Ticker", "Invested", "Value", "Price P/L", "Dividends", "Total Return", "Return %"})

	for _, p := range report.Positions {
		t.AppendRow(table.Row{
			p.Ticker,
			money(p.Invested),
			money(p.CurrentValue),
			money(p.PricePPL),
			money(p.Dividends),
			money(p.TotalReturn),
			pct(p.ReturnPct),
		})
	}
	t.AppendFooter(table.Row{
		"",
		"",
		"",
		money(report.TotalPricePPL),
		money(report.TotalDividends),
		money(report.TotalReturn),
		"",
	})

	rendered := t.Render()
	if report.BestPerformer != nil && report.WorstPerformer != nil {
		rendered += fmt.Sprintf("\nBest: %s (%s)  Worst: %s (%s)",
			report.BestPerformer.Ticker, money(report.BestPerformer.TotalReturn),
			report.WorstPerformer.Ticker, money(report.WorstPerformer.TotalReturn))
	}
	return rendered
}

// DividendTables renders the by-ticker and by-month dividend breakdowns.
func DividendTables(summary *analytics.DividendSummary) string {
	byTicker := table.NewWriter()
	byTicker.SetStyle(roundedStyle())
	byTicker.SetTitle(fmt.Sprintf("Dividends by ticker (%s)", summary.Currency))
	byTicker.AppendHeader(table.Row{"Ticker", "Total"})
	for _, row := range summary.ByTicker {
		byTicker.AppendRow(table.Row{row.Ticker, money(row.Total)})
	}
	byTicker.AppendFooter(table.Row{
		fmt.Sprintf("%d payouts", summary.DividendCount),
		money(summary.TotalDividends),
	})

	byMonth := table.NewWriter()
	byMonth.SetStyle(roundedStyle())
	byMonth.SetTitle("Dividends by month")
	byMonth.AppendHeader(table.Row{"Month", "Total"})
	for _, row := range summary.ByMonth {
		byMonth.AppendRow(table.Row{row.Month, money(row.Total)})
	}
	byMonth.AppendFooter(table.Row{"avg/month", money(summary.AverageMonthly)})

	return byTicker.Render() + "\n\n" + byMonth.Render()
}

// ActivityTable renders the merged activity feed.
func ActivityTable(feed *analytics.ActivityFeed) string {
	t := table.NewWriter()
	t.SetStyle(roundedStyle())
	t.SetTitle(fmt.Sprintf("Recent activity (%s)", feed.Currency))
	t.AppendHeader(table.Row{"Date", "Kind", "Detail", "Amount"})

	for _, entry := range feed.Activity {
		t.AppendRow(table.Row{
			entry.Date,
			entry.Type,
			activityDetail(entry),
			activityAmount(entry),
		})
	}
	t.AppendFooter(table.Row{
		"",
		"",
		fmt.Sprintf("%d orders, %d transactions", feed.OrderCount, feed.TransactionCount),
		"",
	})
	return t.Render()
}

func activityDetail(entry analytics.ActivityEntry) string {
	if entry.Type == "order" {
		parts := []string{entry.Ticker}
		if entry.OrderType != "" {
			parts = append(parts, entry.OrderType)
		}
		if entry.Status != "" {
			parts = append(parts, entry.Status)
		}
		return strings.Join(parts, " ")
	}
	detail := entry.TransactionType
	if entry.Reference != "" {
		detail += " " + entry.Reference
	}
	return detail
}

func activityAmount(entry analytics.ActivityEntry) string {
	if entry.Type == "order" {
		if entry.Value != nil {
			return money(*entry.Value)
		}
		return ""
	}
	if entry.Amount != nil {
		return money(*entry.Amount)
	}
	return ""
}
