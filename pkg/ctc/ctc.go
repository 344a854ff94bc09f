// Package ctc decomposes a monthly cost-to-company salary structure into what
// an employee actually receives and can plan spending around.
package ctc

// Structure is a monthly salary breakdown. All amounts are non-negative.
type Structure struct {
	Basic                float64
	HRA                  float64
	SpecialAllowance     float64
	VariablePay          float64
	EmployerContribution float64 // employer PF / NPS
	EmployeeContribution float64 // employee PF
	Tax                  float64
}

// Breakdown is derived from a Structure. Values may be negative when
// deductions exceed the fixed components.
type Breakdown struct {
	GrossCTC        float64
	TakeHome        float64
	SpendableIncome float64
}

// Decompose derives gross CTC, take-home pay and spendable income.
// Variable pay counts toward take-home but not spendable income.
func Decompose(s Structure) Breakdown {
	fixed := s.Basic + s.HRA + s.SpecialAllowance
	deductions := s.EmployeeContribution + s.Tax

	return Breakdown{
		GrossCTC:        fixed + s.VariablePay + s.EmployerContribution,
		TakeHome:        fixed + s.VariablePay - deductions,
		SpendableIncome: fixed - deductions,
	}
}
