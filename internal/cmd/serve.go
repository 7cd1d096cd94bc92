package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tradelens/tradelens/internal/observability"
	"github.com/tradelens/tradelens/internal/server"
	"github.com/tradelens/tradelens/internal/t212"
	"github.com/tradelens/tradelens/internal/tools"
)

var (
	serveTransport string
	serveHost      string
	servePort      int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the MCP server over the chosen transport.

stdio serves a single client on stdin/stdout (the default; all logging
goes to stderr). http serves the MCP streamable transport at /mcp with
health and version endpoints alongside.

Ctrl+C (SIGINT) or SIGTERM triggers a graceful shutdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		observability.InitServerLogger("tradelens", cfg.Logging.Level)
		log := observability.ServerLogger

		client := t212.New(cfg.T212Credentials(), t212.WithLogger(log))
		mcpServer := tools.NewServer(client, versionInfo.Version, log)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		switch serveTransport {
		case "stdio":
			log.Info("serving MCP over stdio",
				zap.String("environment", cfg.Credentials.Environment),
				zap.String("version", versionInfo.Version))
			return mcpServer.Run(ctx, &mcp.StdioTransport{})

		case "http":
			if serveHost != "" {
				cfg.Server.Host = serveHost
			}
			if servePort != 0 {
				cfg.Server.Port = servePort
			}
			handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
				return mcpServer
			}, nil)
			srv := server.New(cfg.Server, handler, versionInfo.Version, log)

			errChan := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errChan <- err
				}
			}()

			select {
			case err := <-errChan:
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}

		default:
			return errors.New("invalid transport: must be stdio or http")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveTransport, "transport", "t", "stdio", "MCP transport (stdio or http)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "HTTP server host (overrides config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP server port (overrides config)")
}
