package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradelens/tradelens/internal/analytics"
	"github.com/tradelens/tradelens/internal/output"
)

var (
	outputFormat  string
	activityLimit int
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Show the portfolio summary",
	Long:  "Fetch account, cash and open positions, and show holdings ranked by current value.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, func(svc *analytics.Service) (any, string, error) {
			summary, err := svc.PortfolioSummary(cmd.Context())
			if err != nil {
				return nil, "", err
			}
			return summary, output.SummaryTable(summary), nil
		})
	},
}

var performanceCmd = &cobra.Command{
	Use:   "performance",
	Short: "Show per-position returns including dividends",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, func(svc *analytics.Service) (any, string, error) {
			report, err := svc.Performance(cmd.Context())
			if err != nil {
				return nil, "", err
			}
			return report, output.PerformanceTable(report), nil
		})
	},
}

var dividendsCmd = &cobra.Command{
	Use:   "dividends",
	Short: "Show dividend income grouped by ticker and month",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, func(svc *analytics.Service) (any, string, error) {
			summary, err := svc.DividendSummary(cmd.Context())
			if err != nil {
				return nil, "", err
			}
			return summary, output.DividendTables(summary), nil
		})
	},
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show a merged feed of recent orders and cash movements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, func(svc *analytics.Service) (any, string, error) {
			feed, err := svc.RecentActivity(cmd.Context(), activityLimit)
			if err != nil {
				return nil, "", err
			}
			return feed, output.ActivityTable(feed), nil
		})
	},
}

// runReport handles the config/format boilerplate shared by the report
// commands. build returns the raw report for JSON and its table rendering.
func runReport(cmd *cobra.Command, build func(*analytics.Service) (any, string, error)) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report, rendered, err := build(newAnalytics(cfg))
	if err != nil {
		return err
	}
	if format == output.FormatJSON {
		rendered, err = output.RenderJSON(report)
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{portfolioCmd, performanceCmd, dividendsCmd, activityCmd} {
		c.Flags().StringVarP(&outputFormat, "output", "o", "table", "output format (table or json)")
		rootCmd.AddCommand(c)
	}
	activityCmd.Flags().IntVar(&activityLimit, "limit", 20, "items to pull from each source (capped at 50)")
}
