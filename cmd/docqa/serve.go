package main

import (
	"os/signal"
	"syscall"

	"github.com/docqa/docqa/internal/app"
	"github.com/docqa/docqa/internal/config"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if servePort != "" {
			cfg.Server.Port = servePort
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		a, err := app.New(ctx, cfg, app.Deps{})
		if err != nil {
			return err
		}
		return a.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides SERVER_PORT)")
}
