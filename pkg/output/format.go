// Package output provides utilities for formatting and displaying worksheet results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/report"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/worksheet"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/budget"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/format"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
	colorRed    = lipgloss.Color("#D14D41")
	colorDim    = lipgloss.Color("#575653")

	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Width(labelWidth)
	warnStyle    = lipgloss.NewStyle().Foreground(colorOrange)
)

const (
	labelWidth = 28
	barWidth   = 20
)

// PrettyFormat writes a human-readable rather than machine-readable summary to stdout.
func PrettyFormat(result worksheet.Result) {
	fmt.Print(PrettyString(result))
}

// PrettyString renders the human-readable summary of result.
func PrettyString(result worksheet.Result) string {
	in := result.Inputs
	r := result.Ratios

	var b strings.Builder

	title := fmt.Sprintf("--- Budget worksheet (%s) ---", in.Budget.Period)
	if in.Reflection.HasStudent() {
		title = fmt.Sprintf("--- Budget worksheet for %s (%s) ---", in.Reflection.StudentName, in.Budget.Period)
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	line(&b, "Income", format.Currency(in.Budget.Income))
	line(&b, "Total expenses", format.Currency(r.TotalExpenses))
	line(&b, "Savings", format.Currency(r.Savings))
	line(&b, "Savings rate", format.Percent(r.SavingsRatePct))
	line(&b, "Expense-income ratio", format.Percent(r.ExpenseRatioPct))

	b.WriteString("\n" + sectionStyle.Render("Expenses") + "\n")
	for _, c := range budget.Categories() {
		line(&b, c.String(), fmt.Sprintf("%-14s %s",
			format.Currency(in.Budget.Expenses.Amount(c)),
			format.Percent(in.Budget.CategoryPct(c))))
	}

	b.WriteString("\n" + sectionStyle.Render("30-30-20 check") + "\n")
	line(&b, "Needs", checkMark(r.NeedsPct, r.NeedsPct <= 30, "≤ 30%"))
	line(&b, "Wants", checkMark(r.WantsPct, r.WantsPct <= 30, "≤ 30%"))
	line(&b, "Savings", checkMark(r.SavingsRatePct, r.SavingsRatePct >= 20, "≥ 20%"))

	b.WriteString("\n" + sectionStyle.Render("Salary") + "\n")
	line(&b, "Gross CTC", format.Currency(result.CTC.GrossCTC))
	line(&b, "Take-home pay", format.Currency(result.CTC.TakeHome))
	line(&b, "Spendable income", format.Currency(result.CTC.SpendableIncome))
	line(&b, "Essential expenses", format.Currency(result.EssentialExpenses()))

	b.WriteString("\n" + sectionStyle.Render("Scores") + "\n")
	line(&b, "Financial health", scoreBar(result.Scores.Health.Score))
	line(&b, "CTC-budget alignment", scoreBar(result.Scores.Alignment))

	if goal := result.Goal; goal != nil {
		b.WriteString("\n" + sectionStyle.Render("Savings goal") + "\n")
		line(&b, "Target", format.Currency(goal.Target))
		status := "met"
		if !goal.Met {
			status = "short by " + format.Currency(goal.Shortfall)
		}
		line(&b, "Progress", fmt.Sprintf("%.1f%% (%s)", goal.ProgressPct, status))
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Warnings") + "\n")
		for _, w := range result.Warnings {
			b.WriteString(warnStyle.Render("  ! "+w) + "\n")
		}
	}

	return b.String()
}

func line(b *strings.Builder, label, value string) {
	b.WriteString("  " + labelStyle.Render(label) + value + "\n")
}

func checkMark(pct float64, ok bool, benchmark string) string {
	verdict := lipgloss.NewStyle().Foreground(colorGreen).Render("ok")
	if !ok {
		verdict = lipgloss.NewStyle().Foreground(colorRed).Render("off target")
	}
	return fmt.Sprintf("%-8s (%s) %s", format.Percent(pct), benchmark, verdict)
}

func scoreBar(score int) string {
	pct := float64(score) / 100
	bar := progress.New(
		progress.WithSolidFill(string(colorForScore(score))),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(colorDim)

	return fmt.Sprintf("%3d/100 ", score) + bar.ViewAs(pct)
}

func colorForScore(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return colorGreen
	case score >= 50:
		return colorOrange
	default:
		return colorRed
	}
}

// CsvFormat writes every report row to stdout in comma-separated value format.
func CsvFormat(result worksheet.Result) error {
	return WriteCsv(os.Stdout, result)
}

// CsvString renders every report row in comma-separated value format.
func CsvString(result worksheet.Result) (string, error) {
	var b strings.Builder
	if err := WriteCsv(&b, result); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteCsv writes one record per report row: sheet, label, then the row's values.
func WriteCsv(w io.Writer, result worksheet.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"sheet", "field", "value", "detail"}); err != nil {
		return err
	}

	for _, table := range report.Tables(report.FromResult(result)) {
		for _, row := range table.Rows {
			record := []string{table.Sheet, "", "", ""}
			for i, cell := range row {
				if i+1 >= len(record) {
					break
				}
				record[i+1] = csvValue(cell)
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvValue(v interface{}) string {
	switch val := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", val)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
