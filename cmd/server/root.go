package main

import (
	"fmt"
	"os"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "assistea",
	Short: "AssisTea - worker to field assignment scheduler",
	Long: `AssisTea assigns plantation workers to fields for a day.

Every (worker, field) pairing is scored by an efficiency predictor, workers
are spread over fields in round-robin passes, and the result is stored as the
schedule of that plantation-day.

Run 'assistea serve' to start the API server, 'assistea import' to load a
roster, or 'assistea generate' to build a schedule from the command line.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(generateCmd)
}

// setup loads configuration and installs the process-wide logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return cfg, logger, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
