// Package budget derives savings and spending ratios from a period's income and
// categorized expenses.
package budget

import (
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/mathutil"
)

// Input is the raw budget side of a worksheet.
type Input struct {
	Period      Period
	Income      float64
	Expenses    Expenses
	SavingsGoal float64 // 0 means unset
}

// Ratios holds everything derived from an Input. Percentages are 0 when income is 0.
type Ratios struct {
	TotalExpenses   float64
	Savings         float64 // negative when spending exceeds income
	SavingsRatePct  float64 // may be negative
	ExpenseRatioPct float64
	NeedsAmount     float64
	WantsAmount     float64
	NeedsPct        float64
	WantsPct        float64
}

// Calculate derives the ratios for in.
func Calculate(in Input) Ratios {
	total := in.Expenses.Total()
	savings := in.Income - total
	needs := in.Expenses.Needs()
	wants := in.Expenses.Wants()

	return Ratios{
		TotalExpenses:   total,
		Savings:         savings,
		SavingsRatePct:  mathutil.CalculatePercentage(savings, in.Income),
		ExpenseRatioPct: mathutil.CalculatePercentage(total, in.Income),
		NeedsAmount:     needs,
		WantsAmount:     wants,
		NeedsPct:        mathutil.CalculatePercentage(needs, in.Income),
		WantsPct:        mathutil.CalculatePercentage(wants, in.Income),
	}
}

// ClampedSavingsRatePct is the savings rate floored at zero.
func (r Ratios) ClampedSavingsRatePct() float64 {
	return mathutil.Max(r.SavingsRatePct, 0)
}

// CategoryPct is the share of income spent on c, 0 when income is 0.
func (in Input) CategoryPct(c Category) float64 {
	return mathutil.CalculatePercentage(in.Expenses.Amount(c), in.Income)
}
