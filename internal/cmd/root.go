// Package cmd wires the CLI: the MCP serve command and the report
// commands that render the analytics locally.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tradelens/tradelens/internal/analytics"
	"github.com/tradelens/tradelens/internal/config"
	"github.com/tradelens/tradelens/internal/observability"
	"github.com/tradelens/tradelens/internal/t212"
)

var (
	cfgFile string
	verbose bool

	// Version info set by main package.
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by the main package to set version information.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

var rootCmd = &cobra.Command{
	Use:   "tradelens",
	Short: "Trading 212 client, analytics and MCP server",
	Long: `tradelens talks to the Trading 212 public API with rate-limit-aware
retries, computes portfolio reports locally, and exposes the whole
surface as MCP tools over stdio or HTTP.

Use the subcommands to perform specific operations.`,
	SilenceUsage: true,
}

// Execute runs the CLI. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() {
		observability.InitCLILogger(verbose)
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ./tradelens.yaml and $HOME/.config/tradelens)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")
}

// loadConfig loads and validates the configuration for commands that talk
// to the API.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newAnalytics builds a broker client and the report service over it.
func newAnalytics(cfg *config.Config) *analytics.Service {
	client := t212.New(cfg.T212Credentials(), t212.WithLogger(observability.CLILogger))
	return analytics.NewService(client)
}
