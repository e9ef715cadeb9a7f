package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		port    int
		migrate bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: "Start an HTTP server exposing /score, /recalculate-score, /health and /metrics. " +
			"Storage and cache are enabled when DATABASE_URL and REDIS_URL (or their config keys) are set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.runtime()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			cfg.Database.Migrate = cfg.Database.Migrate || migrate

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := server.Open(ctx, cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on (overrides server.port)")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply database migrations on startup")
	return cmd
}
