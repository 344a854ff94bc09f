// Package worksheet runs the full evaluation of a budget worksheet: spending
// ratios, salary decomposition, and the health and alignment scores.
package worksheet

import (
	"fmt"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/config"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/budget"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/ctc"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/reflection"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/scoring"
	"go.uber.org/zap"
)

// Inputs are the immutable raw values of one worksheet.
type Inputs struct {
	Budget     budget.Input
	Salary     ctc.Structure
	Reflection reflection.Record
}

// Scores holds both composite scores.
type Scores struct {
	Health    scoring.HealthBreakdown
	Alignment int
}

// Result holds every derived quantity of a worksheet.
type Result struct {
	Inputs   Inputs
	Ratios   budget.Ratios
	CTC      ctc.Breakdown
	Scores   Scores
	Goal     *budget.GoalProgress // nil when no savings goal is set
	Warnings []string
}

// EssentialExpenses is the needs total that the alignment score weighs
// against spendable income.
func (r Result) EssentialExpenses() float64 {
	return r.Ratios.NeedsAmount
}

// Exportable reports whether a spreadsheet may be produced for this result.
func (r Result) Exportable() bool {
	return r.Inputs.Reflection.HasStudent()
}

// Evaluate validates the configuration and computes its Result.
func Evaluate(logger *zap.Logger, conf config.Configuration) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	warnings, err := conf.ValidateConfiguration()
	if err != nil {
		return Result{}, fmt.Errorf("failed to validate worksheet: %w", err)
	}

	in, err := conf.BudgetInput()
	if err != nil {
		return Result{}, err
	}

	result := Compute(logger, Inputs{
		Budget:     in,
		Salary:     conf.SalaryStructure(),
		Reflection: conf.ReflectionRecord(),
	})
	result.Warnings = warnings
	return result, nil
}

// Compute derives every metric from already-validated inputs. It never fails.
func Compute(logger *zap.Logger, in Inputs) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	ratios := budget.Calculate(in.Budget)
	logger.Debug("computed budget ratios",
		zap.String("op", "worksheet.Compute"),
		zap.Float64("totalExpenses", ratios.TotalExpenses),
		zap.Float64("savingsRatePct", ratios.SavingsRatePct),
		zap.Float64("expenseRatioPct", ratios.ExpenseRatioPct),
	)

	breakdown := ctc.Decompose(in.Salary)
	logger.Debug("decomposed salary structure",
		zap.String("op", "worksheet.Compute"),
		zap.Float64("grossCTC", breakdown.GrossCTC),
		zap.Float64("takeHome", breakdown.TakeHome),
		zap.Float64("spendableIncome", breakdown.SpendableIncome),
	)

	result := Result{
		Inputs: in,
		Ratios: ratios,
		CTC:    breakdown,
		Scores: Scores{
			Health:    scoring.ScoreHealth(ratios.SavingsRatePct, ratios.ExpenseRatioPct, ratios.NeedsPct, ratios.WantsPct),
			Alignment: scoring.AlignmentScore(breakdown.SpendableIncome, ratios.NeedsAmount),
		},
	}

	if goal, ok := budget.Goal(in.Budget, ratios); ok {
		result.Goal = &goal
	}

	logger.Debug("scored worksheet",
		zap.String("op", "worksheet.Compute"),
		zap.Int("healthScore", result.Scores.Health.Score),
		zap.Int("alignmentScore", result.Scores.Alignment),
	)

	return result
}
