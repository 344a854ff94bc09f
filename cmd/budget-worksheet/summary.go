package main

import (
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/worksheet"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/constants"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/output"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagSummaryConfig string
	flagOutputFormat  string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Evaluate a worksheet and print its metrics and scores",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&flagSummaryConfig, "config", constants.DefaultConfigFile, "path to worksheet file")
	summaryCmd.Flags().StringVar(&flagOutputFormat, "output-format", "", "type of output override: pretty, csv")
	rootCmd.AddCommand(summaryCmd)
}

// resolveOutputFormat applies the CLI override over the configured format.
func resolveOutputFormat(configured, override string) string {
	if override != "" {
		return override
	}
	if configured != "" {
		return configured
	}
	return constants.OutputFormatPretty
}

func runSummary(_ *cobra.Command, _ []string) error {
	conf, logger, err := loadWorksheet(flagSummaryConfig)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := resolveOutputFormat(conf.Output.Format, flagOutputFormat)
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	result, err := worksheet.Evaluate(logger, *conf)
	if err != nil {
		logger.Error("failed to evaluate worksheet",
			zap.String("op", "main.runSummary"),
			zap.Error(err),
		)
		return err
	}
	logWarnings(logger, "main.runSummary", result.Warnings)

	switch outputFormat {
	case constants.OutputFormatCSV:
		return output.CsvFormat(result)
	default:
		output.PrettyFormat(result)
	}
	return nil
}
