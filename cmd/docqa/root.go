package main

import (
	"github.com/docqa/docqa/pkg/logger"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "docqa",
	Short: "Ask questions about documents with Mistral AI",
	Long: `docqa serves the document Q&A HTTP API, or answers a single question
about a local file without starting a server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.AddCommand(serveCmd, askCmd)
}
