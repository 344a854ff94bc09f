package main

import (
	"fmt"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/config"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/report"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/worksheet"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/constants"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagExportConfig string
	flagExportDir    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the five-sheet spreadsheet submission for a worksheet",
	Long: "Evaluate a worksheet and write {student}_Budget_Submission.xlsx. " +
		"Nothing is written when the reflection has no student name.",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportConfig, "config", constants.DefaultConfigFile, "path to worksheet file")
	exportCmd.Flags().StringVar(&flagExportDir, "dir", ".", "directory to write the spreadsheet into")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	conf, logger, err := loadWorksheet(flagExportConfig)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	path, err := exportWorksheet(logger, conf, flagExportDir)
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Println(path)
	}
	return nil
}

// exportWorksheet writes the spreadsheet for conf into dir and returns its path.
// The path is empty when the export was skipped for lack of a student name.
func exportWorksheet(logger *zap.Logger, conf *config.Configuration, dir string) (string, error) {
	result, err := worksheet.Evaluate(logger, *conf)
	if err != nil {
		return "", err
	}
	logWarnings(logger, "main.exportWorksheet", result.Warnings)

	if !result.Exportable() {
		logger.Info("export skipped: student name is empty",
			zap.String("op", "main.exportWorksheet"),
		)
		return "", nil
	}

	artifact, err := report.NewGenerator(logger).Generate(report.FromResult(result))
	if err != nil {
		return "", err
	}

	path, err := artifact.WriteFile(dir)
	if err != nil {
		return "", err
	}

	logger.Info("workbook written",
		zap.String("op", "main.exportWorksheet"),
		zap.String("submissionId", uuid.NewString()),
		zap.String("path", path),
		zap.Int("healthScore", result.Scores.Health.Score),
		zap.Int("alignmentScore", result.Scores.Alignment),
	)
	return path, nil
}
