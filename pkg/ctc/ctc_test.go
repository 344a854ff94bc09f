package ctc

import "testing"

func TestDecompose(t *testing.T) {
	tests := []struct {
		name      string
		structure Structure
		expected  Breakdown
	}{
		{
			name: "Typical graduate offer",
			structure: Structure{
				Basic:                30000,
				HRA:                  12000,
				SpecialAllowance:     8000,
				VariablePay:          5000,
				EmployerContribution: 3600,
				EmployeeContribution: 3600,
				Tax:                  4000,
			},
			expected: Breakdown{GrossCTC: 58600, TakeHome: 47400, SpendableIncome: 42400},
		},
		{
			name:      "All zero",
			structure: Structure{},
			expected:  Breakdown{},
		},
		{
			name: "Variable pay only",
			structure: Structure{
				VariablePay: 10000,
			},
			expected: Breakdown{GrossCTC: 10000, TakeHome: 10000, SpendableIncome: 0},
		},
		{
			name: "Deductions exceed fixed pay",
			structure: Structure{
				Basic:                5000,
				EmployeeContribution: 4000,
				Tax:                  3000,
			},
			expected: Breakdown{GrossCTC: 5000, TakeHome: -2000, SpendableIncome: -2000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decompose(tt.structure)
			if got != tt.expected {
				t.Errorf("Decompose() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestEmployerContributionNotInTakeHome(t *testing.T) {
	base := Structure{Basic: 20000, HRA: 8000}
	withPF := base
	withPF.EmployerContribution = 2400

	a, b := Decompose(base), Decompose(withPF)
	if b.GrossCTC-a.GrossCTC != 2400 {
		t.Errorf("employer contribution should raise gross CTC by 2400, got %v", b.GrossCTC-a.GrossCTC)
	}
	if a.TakeHome != b.TakeHome || a.SpendableIncome != b.SpendableIncome {
		t.Errorf("employer contribution changed take-home or spendable income: %+v vs %+v", a, b)
	}
}
