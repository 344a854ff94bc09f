package main

import (
	"fmt"
	"os"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagLogLevel string

var rootCmd = &cobra.Command{
	Use:   "budget-worksheet",
	Short: "Budgeting and CTC reflection worksheet",
	Long: "Evaluate a personal budget against the 30-30-20 rule, decompose a CTC offer, " +
		"and export a five-sheet spreadsheet submission.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": %q}\n", err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

// loadWorksheet reads the worksheet at path and builds the logger it configures.
func loadWorksheet(path string) (*config.Configuration, *zap.Logger, error) {
	conf, err := config.LoadConfiguration(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration at %s: %w", path, err)
	}

	logger, err := initializeLogger(conf.Logging, flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return conf, logger, nil
}

func logWarnings(logger *zap.Logger, op string, warnings []string) {
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", op),
		)
	}
}
