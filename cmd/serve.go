package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gorsd/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the design calculator over HTTP",
	Long: `Start a JSON API for form-based front ends.

Endpoints:
  GET  /api/defaults                        form fields and default values
  POST /api/design                          results, metrics and scene
  POST /api/design/diagram?format=png|svg|pdf
  POST /api/design/report?format=pdf|xlsx

Configuration is read from the environment or a .env file:
  GORSD_ADDR   listen address (default :8080)
  GORSD_RATE   requests per second per client (default 5)
  GORSD_BURST  burst size per client (default 10)

Examples:
  gorsd serve
  gorsd serve --addr 127.0.0.1:9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides GORSD_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := server.LoadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := log.New(os.Stderr, "gorsd ", log.LstdFlags)
	return server.Run(ctx, cfg, logger)
}
