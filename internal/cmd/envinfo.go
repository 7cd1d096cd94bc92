package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tradelens/tradelens/internal/config"
)

var envinfoCmd = &cobra.Command{
	Use:   "envinfo",
	Short: "Show the resolved configuration",
	Long:  "Show the configuration after merging defaults, the config file and environment variables. Secrets are redacted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "environment:  %s\n", cfg.Credentials.Environment)
		fmt.Fprintf(out, "api version:  %s\n", cfg.Credentials.Version)
		fmt.Fprintf(out, "api key:      %s\n", redact(cfg.Credentials.APIKey))
		fmt.Fprintf(out, "api secret:   %s\n", redact(cfg.Credentials.APISecret))
		fmt.Fprintf(out, "server:       %s:%d\n", cfg.Server.Host, cfg.Server.Port)
		fmt.Fprintf(out, "log level:    %s\n", cfg.Logging.Level)
		return nil
	},
}

// redact keeps just enough of a secret to recognize it.
func redact(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:4] + strings.Repeat("*", 4) + secret[len(secret)-4:]
}

func init() {
	rootCmd.AddCommand(envinfoCmd)
}
