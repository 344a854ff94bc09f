package validation

import (
	"fmt"
	"strings"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/budget"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/constants"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/ctc"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/reflection"
)

// WorksheetValidator checks a complete worksheet submission.
type WorksheetValidator struct {
	Budget     budget.Input
	Salary     ctc.Structure
	Reflection reflection.Record
}

// ValidateAll returns advisory warnings and an error listing every field that
// cannot be accepted. Amounts must be non-negative and confidence ratings must
// lie in 0..10; nothing else is rejected.
func (wv *WorksheetValidator) ValidateAll() ([]string, error) {
	var problems []string

	problems = append(problems, NonNegative("income", wv.Budget.Income)...)
	problems = append(problems, NonNegative("savings goal", wv.Budget.SavingsGoal)...)
	for _, c := range budget.Categories() {
		problems = append(problems, NonNegative(c.String(), wv.Budget.Expenses.Amount(c))...)
	}

	s := wv.Salary
	for _, field := range []struct {
		name   string
		amount float64
	}{
		{"basic pay", s.Basic},
		{"HRA", s.HRA},
		{"special allowance", s.SpecialAllowance},
		{"variable pay", s.VariablePay},
		{"employer contribution", s.EmployerContribution},
		{"employee contribution", s.EmployeeContribution},
		{"tax", s.Tax},
	} {
		problems = append(problems, NonNegative(field.name, field.amount)...)
	}

	problems = append(problems, ConfidenceInRange("confidence before", wv.Reflection.ConfidenceBefore)...)
	problems = append(problems, ConfidenceInRange("confidence after", wv.Reflection.ConfidenceAfter)...)

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid worksheet: %s", strings.Join(problems, "; "))
	}

	return wv.warnings(), nil
}

func (wv *WorksheetValidator) warnings() []string {
	var warnings []string

	if wv.Budget.Income == 0 {
		warnings = append(warnings, "Income is zero; all percentages are reported as 0")
	}
	if wv.Budget.Income > 0 && wv.Budget.Expenses.Total() > wv.Budget.Income {
		warnings = append(warnings, fmt.Sprintf("Expenses (%.2f) exceed income (%.2f); savings are negative",
			wv.Budget.Expenses.Total(), wv.Budget.Income))
	}
	if wv.Budget.SavingsGoal > 0 && wv.Budget.SavingsGoal > wv.Budget.Income {
		warnings = append(warnings, fmt.Sprintf("Savings goal (%.2f) is larger than income (%.2f)",
			wv.Budget.SavingsGoal, wv.Budget.Income))
	}
	if spendable := ctc.Decompose(wv.Salary).SpendableIncome; spendable <= 0 {
		warnings = append(warnings, "Spendable income is not positive; alignment score will be 0")
	}
	if wv.Reflection.ConfidenceAfter < wv.Reflection.ConfidenceBefore {
		warnings = append(warnings, fmt.Sprintf("Confidence dropped from %d to %d",
			wv.Reflection.ConfidenceBefore, wv.Reflection.ConfidenceAfter))
	}
	if !wv.Reflection.HasStudent() {
		warnings = append(warnings, "No student name; the spreadsheet export will be skipped")
	}

	return warnings
}

// NonNegative returns a problem description when amount is below zero.
func NonNegative(field string, amount float64) []string {
	if amount < 0 {
		return []string{fmt.Sprintf("%s must not be negative (got %.2f)", field, amount)}
	}
	return nil
}

// ConfidenceInRange returns a problem description when rating is outside 0..10.
func ConfidenceInRange(field string, rating int) []string {
	if rating < constants.MinConfidence || rating > constants.MaxConfidence {
		return []string{fmt.Sprintf("%s must be between %d and %d (got %d)",
			field, constants.MinConfidence, constants.MaxConfidence, rating)}
	}
	return nil
}
