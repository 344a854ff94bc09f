package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/constants"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	defaultSheet = "Sheet1"
	labelWidth   = 32
	valueWidth   = 18
)

// Artifact is a generated workbook ready for download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Filename is the suggested download name for a student's submission.
func Filename(studentName string) string {
	return strings.ReplaceAll(strings.TrimSpace(studentName), " ", "_") + constants.SubmissionFileSuffix
}

// Generator writes report workbooks.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a generator with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Generate builds a fresh workbook for in. On any error nothing is returned.
func (g *Generator) Generate(in Input) (*Artifact, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			g.logger.Warn("failed to close workbook",
				zap.String("op", "report.Generate"),
				zap.Error(err),
			)
		}
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, table := range Tables(in) {
		if i == 0 {
			err = f.SetSheetName(defaultSheet, table.Sheet)
		} else {
			_, err = f.NewSheet(table.Sheet)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", table.Sheet, err)
		}

		if err := writeTable(f, table, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to write sheet %s: %w", table.Sheet, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	artifact := &Artifact{
		Filename:    Filename(in.Reflection.StudentName),
		ContentType: constants.SpreadsheetContentType,
		Data:        buf.Bytes(),
	}

	g.logger.Debug("generated workbook",
		zap.String("op", "report.Generate"),
		zap.String("filename", artifact.Filename),
		zap.Int("bytes", len(artifact.Data)),
	)

	return artifact, nil
}

func writeTable(f *excelize.File, table Table, headerStyle int) error {
	header := table.Header
	if err := f.SetSheetRow(table.Sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(table.Sheet, 1, 1, headerStyle); err != nil {
		return err
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(table.Sheet, cell, &values); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(table.Sheet, "A", "A", labelWidth); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(table.Header))
	if err != nil {
		return err
	}
	return f.SetColWidth(table.Sheet, "B", lastCol, valueWidth)
}

// WriteFile writes the artifact into dir under its suggested filename and
// returns the path written.
func (a *Artifact) WriteFile(dir string) (string, error) {
	path := filepath.Join(dir, filepath.Base(a.Filename))
	if err := os.WriteFile(path, a.Data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// SheetContents is one sheet read back from a workbook, header row first.
type SheetContents struct {
	Name string
	Rows [][]string
}

// ReadSheets opens a workbook and returns the raw cell values of every sheet in order.
func ReadSheets(data []byte) ([]SheetContents, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var sheets []SheetContents
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}
		sheets = append(sheets, SheetContents{Name: name, Rows: rows})
	}
	return sheets, nil
}
