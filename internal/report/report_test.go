package report

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/worksheet"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/budget"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/constants"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/mathutil"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/testutil"
	"go.uber.org/zap"
)

func sampleInput() Input {
	result := worksheet.Compute(zap.NewNop(), worksheet.Inputs{
		Budget:     testutil.SampleBudget(),
		Salary:     testutil.SampleSalary(),
		Reflection: testutil.SampleReflection(),
	})
	return FromResult(result)
}

func findTable(t *testing.T, tables []Table, sheet string) Table {
	t.Helper()
	for _, table := range tables {
		if table.Sheet == sheet {
			return table
		}
	}
	t.Fatalf("sheet %s not found", sheet)
	return Table{}
}

func rowValue(t *testing.T, table Table, label string) interface{} {
	t.Helper()
	for _, row := range table.Rows {
		if row[0] == label {
			return row[1]
		}
	}
	t.Fatalf("row %q not found in %s", label, table.Sheet)
	return nil
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		student  string
		expected string
	}{
		{"Single word", "Asha", "Asha_Budget_Submission.xlsx"},
		{"Two words", "Asha Verma", "Asha_Verma_Budget_Submission.xlsx"},
		{"Surrounding whitespace", "  Ravi K  ", "Ravi_K_Budget_Submission.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.student); got != tt.expected {
				t.Errorf("Filename(%q) = %q, expected %q", tt.student, got, tt.expected)
			}
		})
	}
}

func TestTablesSheetOrderAndHeaders(t *testing.T) {
	tables := Tables(sampleInput())
	if len(tables) != len(SheetNames) {
		t.Fatalf("expected %d tables, got %d", len(SheetNames), len(tables))
	}

	headers := map[string][]string{
		SheetBudgetSummary:  {"Metric", "Value"},
		SheetExpenseDetails: {"Category", "Amount (₹)", "% of Income"},
		SheetRuleCheck:      {"Component", "Actual %", "Benchmark"},
		SheetCTCAlignment:   {"Component", "Amount (₹)"},
		SheetReflection:     {"Field", "Response"},
	}

	for i, table := range tables {
		if table.Sheet != SheetNames[i] {
			t.Errorf("table %d is %s, expected %s", i, table.Sheet, SheetNames[i])
		}
		if !reflect.DeepEqual(table.Header, headers[table.Sheet]) {
			t.Errorf("%s header = %v, expected %v", table.Sheet, table.Header, headers[table.Sheet])
		}
		for _, row := range table.Rows {
			if len(row) != len(table.Header) {
				t.Errorf("%s row %v has %d cells, expected %d", table.Sheet, row, len(row), len(table.Header))
			}
		}
	}
}

func TestBudgetSummaryRows(t *testing.T) {
	table := findTable(t, Tables(sampleInput()), SheetBudgetSummary)

	expected := [][]interface{}{
		{"Period", "Monthly"},
		{"Income", 50000.0},
		{"Total Expenses", 35000.0},
		{"Savings", 15000.0},
		{"Savings Rate (%)", 30.0},
		{"Expense–Income Ratio (%)", 70.0},
		{"Financial Health Score", 90},
		{"CTC–Budget Alignment Score", 80},
	}
	if !reflect.DeepEqual(table.Rows, expected) {
		t.Errorf("Budget_Summary rows = %v, expected %v", table.Rows, expected)
	}
}

func TestExpenseDetailsRows(t *testing.T) {
	table := findTable(t, Tables(sampleInput()), SheetExpenseDetails)

	expected := [][]interface{}{
		{"Housing (Rent / EMI)", 15000.0, 30.0},
		{"Food", 8000.0, 16.0},
		{"Transport", 3000.0, 6.0},
		{"Utilities", 2000.0, 4.0},
		{"Lifestyle & Entertainment", 5000.0, 10.0},
		{"Others", 2000.0, 4.0},
	}
	if !reflect.DeepEqual(table.Rows, expected) {
		t.Errorf("Expense_Details rows = %v, expected %v", table.Rows, expected)
	}
}

func TestExpenseDetailsRoundsToTwoDecimals(t *testing.T) {
	in := sampleInput()
	in.Income = 30000
	in.Expenses = budget.Expenses{10000, 0, 0, 0, 0, 0}

	table := findTable(t, Tables(in), SheetExpenseDetails)
	if got := table.Rows[0][2]; got != 33.33 {
		t.Errorf("housing %% of income = %v, expected 33.33", got)
	}
}

func TestPercentagesRoundTiesToEven(t *testing.T) {
	in := sampleInput()
	in.Income = 40000
	in.Expenses = budget.Expenses{4050, 30000, 0, 0, 0, 0}
	in.TotalExpenses = in.Expenses.Total()
	in.ExpenseRatioPct = mathutil.CalculatePercentage(in.TotalExpenses, in.Income)

	tables := Tables(in)
	details := findTable(t, tables, SheetExpenseDetails)
	if got := details.Rows[0][2]; got != 10.12 {
		t.Errorf("housing %% of income = %v, expected 10.12", got)
	}
	summary := findTable(t, tables, SheetBudgetSummary)
	if got := rowValue(t, summary, "Expense–Income Ratio (%)"); got != 85.12 {
		t.Errorf("expense ratio = %v, expected 85.12", got)
	}
}

func TestExpenseDetailsZeroIncome(t *testing.T) {
	in := sampleInput()
	in.Income = 0

	table := findTable(t, Tables(in), SheetExpenseDetails)
	for _, row := range table.Rows {
		if row[2] != 0.0 {
			t.Errorf("%v: %% of income = %v, expected 0", row[0], row[2])
		}
	}
}

func TestNegativeSavingsRateDisplay(t *testing.T) {
	in := sampleInput()
	in.SavingsRatePct = -20

	tables := Tables(in)
	summary := findTable(t, tables, SheetBudgetSummary)
	if got := rowValue(t, summary, "Savings Rate (%)"); got != 0.0 {
		t.Errorf("summary savings rate = %v, expected clamped 0", got)
	}

	check := findTable(t, tables, SheetRuleCheck)
	if got := rowValue(t, check, "Savings"); got != -20.0 {
		t.Errorf("rule check savings = %v, expected raw -20", got)
	}
}

func TestRuleCheckRows(t *testing.T) {
	table := findTable(t, Tables(sampleInput()), SheetRuleCheck)

	expected := [][]interface{}{
		{"Needs", 50.0, "≤ 30%"},
		{"Wants", 10.0, "≤ 30%"},
		{"Savings", 30.0, "≥ 20%"},
	}
	if !reflect.DeepEqual(table.Rows, expected) {
		t.Errorf("30-30-20_Check rows = %v, expected %v", table.Rows, expected)
	}
}

func TestCTCAlignmentRows(t *testing.T) {
	table := findTable(t, Tables(sampleInput()), SheetCTCAlignment)

	expected := map[string]interface{}{
		"Basic Pay":                  30000.0,
		"HRA":                        12000.0,
		"Special Allowance":          8000.0,
		"Variable Pay":               5000.0,
		"Employer PF":                3600.0,
		"Employee PF":                3600.0,
		"Tax":                        4000.0,
		"Take-Home Pay":              47400.0,
		"Spendable Income":           42400.0,
		"Essential Expenses":         25000.0,
		"CTC–Budget Alignment Score": 80,
	}
	if len(table.Rows) != len(expected) {
		t.Fatalf("expected %d rows, got %d", len(expected), len(table.Rows))
	}
	for label, value := range expected {
		if got := rowValue(t, table, label); got != value {
			t.Errorf("%s = %v, expected %v", label, got, value)
		}
	}
}

func TestReflectionRows(t *testing.T) {
	in := sampleInput()
	table := findTable(t, Tables(in), SheetReflection)

	labels := []string{
		"Student Name", "Course", "Confidence (Before)", "Confidence (After)",
		"Q1", "Q2", "Q3", "Q4", "Q5",
	}
	if len(table.Rows) != len(labels) {
		t.Fatalf("expected %d rows, got %d", len(labels), len(table.Rows))
	}
	for i, label := range labels {
		if table.Rows[i][0] != label {
			t.Errorf("row %d label = %v, expected %s", i, table.Rows[i][0], label)
		}
	}
	if table.Rows[0][1] != in.Reflection.StudentName {
		t.Errorf("student name = %v", table.Rows[0][1])
	}
	if table.Rows[2][1] != 4 || table.Rows[3][1] != 7 {
		t.Errorf("confidence = %v -> %v, expected 4 -> 7", table.Rows[2][1], table.Rows[3][1])
	}
	if table.Rows[8][1] != in.Reflection.Answers[4] {
		t.Errorf("Q5 = %v, expected %q", table.Rows[8][1], in.Reflection.Answers[4])
	}
}

func TestTablesDeterministic(t *testing.T) {
	in := sampleInput()
	if !reflect.DeepEqual(Tables(in), Tables(in)) {
		t.Error("Tables() returned different layouts for identical input")
	}
}

func TestGenerateWorkbook(t *testing.T) {
	in := sampleInput()
	artifact, err := NewGenerator(zap.NewNop()).Generate(in)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if artifact.Filename != "Asha_Verma_Budget_Submission.xlsx" {
		t.Errorf("Filename = %q", artifact.Filename)
	}
	if artifact.ContentType != constants.SpreadsheetContentType {
		t.Errorf("ContentType = %q", artifact.ContentType)
	}
	if len(artifact.Data) == 0 {
		t.Fatal("expected workbook bytes")
	}

	sheets, err := ReadSheets(artifact.Data)
	if err != nil {
		t.Fatalf("ReadSheets() error = %v", err)
	}
	if len(sheets) != len(SheetNames) {
		t.Fatalf("expected %d sheets, got %d", len(SheetNames), len(sheets))
	}
	for i, sheet := range sheets {
		if sheet.Name != SheetNames[i] {
			t.Errorf("sheet %d = %s, expected %s", i, sheet.Name, SheetNames[i])
		}
	}

	summary := sheets[0].Rows
	if !reflect.DeepEqual(summary[0], []string{"Metric", "Value"}) {
		t.Errorf("summary header = %v", summary[0])
	}
	checks := map[int][]string{
		1: {"Period", "Monthly"},
		2: {"Income", "50000"},
		5: {"Savings Rate (%)", "30"},
		7: {"Financial Health Score", "90"},
		8: {"CTC–Budget Alignment Score", "80"},
	}
	for i, expected := range checks {
		if !reflect.DeepEqual(summary[i], expected) {
			t.Errorf("summary row %d = %v, expected %v", i, summary[i], expected)
		}
	}

	details := sheets[1].Rows
	if !reflect.DeepEqual(details[1], []string{"Housing (Rent / EMI)", "15000", "30"}) {
		t.Errorf("housing row = %v", details[1])
	}

	reflectionRows := sheets[4].Rows
	if !reflect.DeepEqual(reflectionRows[1], []string{"Student Name", "Asha Verma"}) {
		t.Errorf("student row = %v", reflectionRows[1])
	}
}

func TestGenerateNilLogger(t *testing.T) {
	if _, err := NewGenerator(nil).Generate(sampleInput()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
}

func TestArtifactWriteFile(t *testing.T) {
	artifact, err := NewGenerator(nil).Generate(sampleInput())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	dir := t.TempDir()
	path, err := artifact.WriteFile(dir)
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if path != filepath.Join(dir, artifact.Filename) {
		t.Errorf("path = %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written workbook: %v", err)
	}
	if len(data) != len(artifact.Data) {
		t.Errorf("wrote %d bytes, expected %d", len(data), len(artifact.Data))
	}
}
