package scoring

// Alignment tiers, by essential expenses as a fraction of spendable income.
const (
	AlignmentNone     = 0
	AlignmentStrained = 20
	AlignmentTight    = 50
	AlignmentGood     = 80
	AlignmentStrong   = 100

	strongRatio = 0.5
	goodRatio   = 0.7
	tightRatio  = 0.9
)

// AlignmentScore rates how comfortably spendable income covers essential
// expenses. Boundaries are inclusive. Non-positive spendable income scores 0.
func AlignmentScore(spendableIncome, essentialExpenses float64) int {
	if spendableIncome <= 0 {
		return AlignmentNone
	}

	ratio := essentialExpenses / spendableIncome
	switch {
	case ratio <= strongRatio:
		return AlignmentStrong
	case ratio <= goodRatio:
		return AlignmentGood
	case ratio <= tightRatio:
		return AlignmentTight
	default:
		return AlignmentStrained
	}
}
