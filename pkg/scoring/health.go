// Package scoring turns budget ratios into bounded 0-100 scores.
package scoring

import (
	"math"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/mathutil"
)

// Health score weights and thresholds. All percentages are of income.
const (
	MaxScore = 100

	SavingsWeight        = 40.0
	TargetSavingsRatePct = 20.0

	ExpenseRatioGoodPct = 70.0
	ExpenseRatioFairPct = 85.0
	ExpenseRatioGood    = 30.0
	ExpenseRatioFair    = 15.0
	ExpenseRatioPoor    = 5.0

	RuleCheckPoints = 10.0
	NeedsCeilingPct = 30.0
	WantsCeilingPct = 30.0
)

// HealthBreakdown shows how a Financial Health Score was assembled.
type HealthBreakdown struct {
	Savings      float64 // 0..40, linear up to a 20% savings rate
	ExpenseRatio float64 // 30, 15 or 5
	Adherence    float64 // 0, 10, 20 or 30
	Score        int
}

// ScoreHealth computes the Financial Health Score with its components.
func ScoreHealth(savingsRatePct, expenseRatioPct, needsPct, wantsPct float64) HealthBreakdown {
	savingsRatePct = mathutil.Max(savingsRatePct, 0)

	b := HealthBreakdown{
		Savings:      mathutil.Min(savingsRatePct/TargetSavingsRatePct*SavingsWeight, SavingsWeight),
		ExpenseRatio: expenseRatioPoints(expenseRatioPct),
	}

	if needsPct <= NeedsCeilingPct {
		b.Adherence += RuleCheckPoints
	}
	if wantsPct <= WantsCeilingPct {
		b.Adherence += RuleCheckPoints
	}
	if savingsRatePct >= TargetSavingsRatePct {
		b.Adherence += RuleCheckPoints
	}

	score := int(math.RoundToEven(b.Savings + b.ExpenseRatio + b.Adherence))
	if score > MaxScore {
		score = MaxScore
	}
	if score < 0 {
		score = 0
	}
	b.Score = score
	return b
}

// HealthScore is the 0-100 Financial Health Score.
func HealthScore(savingsRatePct, expenseRatioPct, needsPct, wantsPct float64) int {
	return ScoreHealth(savingsRatePct, expenseRatioPct, needsPct, wantsPct).Score
}

func expenseRatioPoints(expenseRatioPct float64) float64 {
	switch {
	case expenseRatioPct <= ExpenseRatioGoodPct:
		return ExpenseRatioGood
	case expenseRatioPct <= ExpenseRatioFairPct:
		return ExpenseRatioFair
	default:
		return ExpenseRatioPoor
	}
}
