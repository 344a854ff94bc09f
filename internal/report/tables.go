// Package report assembles an evaluated worksheet into the five-sheet
// spreadsheet a student submits.
package report

import (
	"fmt"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/worksheet"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/budget"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/ctc"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/mathutil"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/reflection"
)

// Sheet names, in workbook order.
const (
	SheetBudgetSummary  = "Budget_Summary"
	SheetExpenseDetails = "Expense_Details"
	SheetRuleCheck      = "30-30-20_Check"
	SheetCTCAlignment   = "CTC_Alignment"
	SheetReflection     = "Reflection"
)

// SheetNames lists every sheet in workbook order.
var SheetNames = []string{
	SheetBudgetSummary,
	SheetExpenseDetails,
	SheetRuleCheck,
	SheetCTCAlignment,
	SheetReflection,
}

// Input is everything the report shows. It carries no state beyond its fields.
type Input struct {
	Period          budget.Period
	Income          float64
	TotalExpenses   float64
	Savings         float64
	SavingsRatePct  float64
	ExpenseRatioPct float64
	HealthScore     int
	Expenses        budget.Expenses
	NeedsPct        float64
	WantsPct        float64

	Reflection reflection.Record

	Salary            ctc.Structure
	TakeHome          float64
	SpendableIncome   float64
	EssentialExpenses float64
	AlignmentScore    int
}

// FromResult collects the report input from an evaluated worksheet.
func FromResult(r worksheet.Result) Input {
	return Input{
		Period:            r.Inputs.Budget.Period,
		Income:            r.Inputs.Budget.Income,
		TotalExpenses:     r.Ratios.TotalExpenses,
		Savings:           r.Ratios.Savings,
		SavingsRatePct:    r.Ratios.SavingsRatePct,
		ExpenseRatioPct:   r.Ratios.ExpenseRatioPct,
		HealthScore:       r.Scores.Health.Score,
		Expenses:          r.Inputs.Budget.Expenses,
		NeedsPct:          r.Ratios.NeedsPct,
		WantsPct:          r.Ratios.WantsPct,
		Reflection:        r.Inputs.Reflection,
		Salary:            r.Inputs.Salary,
		TakeHome:          r.CTC.TakeHome,
		SpendableIncome:   r.CTC.SpendableIncome,
		EssentialExpenses: r.EssentialExpenses(),
		AlignmentScore:    r.Scores.Alignment,
	}
}

// Table is the content of one sheet: a header row followed by data rows.
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]interface{}
}

// Tables lays out the five sheets for in. The result depends only on in.
func Tables(in Input) []Table {
	return []Table{
		budgetSummary(in),
		expenseDetails(in),
		ruleCheck(in),
		ctcAlignment(in),
		reflectionSheet(in),
	}
}

func budgetSummary(in Input) Table {
	return Table{
		Sheet:  SheetBudgetSummary,
		Header: []string{"Metric", "Value"},
		Rows: [][]interface{}{
			{"Period", in.Period.String()},
			{"Income", in.Income},
			{"Total Expenses", in.TotalExpenses},
			{"Savings", in.Savings},
			// Display only; the rule check sheet keeps the signed rate.
			{"Savings Rate (%)", mathutil.Round(mathutil.Max(in.SavingsRatePct, 0))},
			{"Expense–Income Ratio (%)", mathutil.Round(in.ExpenseRatioPct)},
			{"Financial Health Score", in.HealthScore},
			{"CTC–Budget Alignment Score", in.AlignmentScore},
		},
	}
}

func expenseDetails(in Input) Table {
	rows := make([][]interface{}, 0, budget.NumCategories)
	for _, c := range budget.Categories() {
		amount := in.Expenses.Amount(c)
		rows = append(rows, []interface{}{
			c.String(),
			amount,
			mathutil.Round(mathutil.CalculatePercentage(amount, in.Income)),
		})
	}

	return Table{
		Sheet:  SheetExpenseDetails,
		Header: []string{"Category", "Amount (₹)", "% of Income"},
		Rows:   rows,
	}
}

func ruleCheck(in Input) Table {
	return Table{
		Sheet:  SheetRuleCheck,
		Header: []string{"Component", "Actual %", "Benchmark"},
		Rows: [][]interface{}{
			{"Needs", in.NeedsPct, "≤ 30%"},
			{"Wants", in.WantsPct, "≤ 30%"},
			{"Savings", in.SavingsRatePct, "≥ 20%"},
		},
	}
}

func ctcAlignment(in Input) Table {
	s := in.Salary
	return Table{
		Sheet:  SheetCTCAlignment,
		Header: []string{"Component", "Amount (₹)"},
		Rows: [][]interface{}{
			{"Basic Pay", s.Basic},
			{"HRA", s.HRA},
			{"Special Allowance", s.SpecialAllowance},
			{"Variable Pay", s.VariablePay},
			{"Employer PF", s.EmployerContribution},
			{"Employee PF", s.EmployeeContribution},
			{"Tax", s.Tax},
			{"Take-Home Pay", in.TakeHome},
			{"Spendable Income", in.SpendableIncome},
			{"Essential Expenses", in.EssentialExpenses},
			{"CTC–Budget Alignment Score", in.AlignmentScore},
		},
	}
}

func reflectionSheet(in Input) Table {
	r := in.Reflection
	rows := [][]interface{}{
		{"Student Name", r.StudentName},
		{"Course", r.Course},
		{"Confidence (Before)", r.ConfidenceBefore},
		{"Confidence (After)", r.ConfidenceAfter},
	}
	for i, answer := range r.Answers {
		rows = append(rows, []interface{}{fmt.Sprintf("Q%d", i+1), answer})
	}

	return Table{
		Sheet:  SheetReflection,
		Header: []string{"Field", "Response"},
		Rows:   rows,
	}
}
