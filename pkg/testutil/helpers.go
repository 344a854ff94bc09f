// Package testutil provides common fixtures for testing.
package testutil

import (
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/budget"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/ctc"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/reflection"
)

// SampleBudget is a monthly budget of 50,000 with 35,000 of expenses and a
// 10,000 savings goal.
func SampleBudget() budget.Input {
	var e budget.Expenses
	e[budget.Housing] = 15000
	e[budget.Food] = 8000
	e[budget.Transport] = 3000
	e[budget.Utilities] = 2000
	e[budget.Lifestyle] = 5000
	e[budget.Others] = 2000

	return budget.Input{
		Period:      budget.Monthly,
		Income:      50000,
		Expenses:    e,
		SavingsGoal: 10000,
	}
}

// SampleSalary has 42,400 of spendable income and 47,400 of take-home pay.
func SampleSalary() ctc.Structure {
	return ctc.Structure{
		Basic:                30000,
		HRA:                  12000,
		SpecialAllowance:     8000,
		VariablePay:          5000,
		EmployerContribution: 3600,
		EmployeeContribution: 3600,
		Tax:                  4000,
	}
}

// SampleReflection is a complete reflection for a named student.
func SampleReflection() reflection.Record {
	return reflection.Record{
		StudentName:      "Asha Verma",
		Course:           "PGP Finance - Section B",
		ConfidenceBefore: 4,
		ConfidenceAfter:  7,
		Answers: [5]string{
			"How much small food orders added up",
			"Weekend cab rides",
			"Needs are well above thirty percent because of rent",
			"Track every expense for a month",
			"Spendable income is much smaller than the CTC number",
		},
	}
}
