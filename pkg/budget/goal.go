package budget

import "github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/mathutil"

// GoalProgress compares a period's savings with the savings goal.
type GoalProgress struct {
	Target      float64
	Savings     float64
	Shortfall   float64 // 0 once the goal is met
	ProgressPct float64 // 0..100
	Met         bool
}

// Goal reports progress toward in.SavingsGoal. ok is false when no goal is set.
func Goal(in Input, r Ratios) (progress GoalProgress, ok bool) {
	if in.SavingsGoal <= 0 {
		return GoalProgress{}, false
	}

	// savings within a paisa of the goal count as meeting it
	shortfall := mathutil.Max(in.SavingsGoal-r.Savings, 0)
	met := mathutil.IsZero(shortfall)
	if met {
		shortfall = 0
	}

	return GoalProgress{
		Target:      in.SavingsGoal,
		Savings:     r.Savings,
		Shortfall:   shortfall,
		ProgressPct: mathutil.Clamp(mathutil.CalculatePercentage(r.Savings, in.SavingsGoal), 0, 100),
		Met:         met,
	}, true
}
