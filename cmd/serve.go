package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobend/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis engine over HTTP",
	Long: `Start an HTTP server exposing the analysis engine.

Endpoints:
  POST /api/analyze     analyze one JSON request; ?profile=N adds N diagram stations
  GET  /api/materials   list catalog materials
  GET  /api/health      liveness and version

Requests are rate limited per client address (server.rate_limit and
server.burst in the config file, 0 disables).

Examples:
  gobend serve
  gobend serve --addr 127.0.0.1:9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig.Server
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Infow("starting server", "addr", cfg.Addr, "rate_limit", cfg.RateLimit, "burst", cfg.Burst)
		if err := server.New(eng, cfg, logger).ListenAndServe(ctx); err != nil {
			return err
		}
		logger.Infow("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
}
