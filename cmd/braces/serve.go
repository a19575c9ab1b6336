package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/braces/expander"
	"github.com/katalvlaran/braces/server"
)

func newServeCmd(a *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve brace expansion over HTTP",
		Long: `Serve GET /expand?pattern=...&limit=N, GET /metrics and GET /healthz.
The server stops gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Server
			if listen != "" {
				cfg.ListenAddress = listen
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			exp := expander.New(a.cfg.Expand, a.log, a.metrics)

			return server.Run(ctx, cfg, server.New(exp, a.log, a.metrics), a.log)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides server.listen_address)")

	return cmd
}
