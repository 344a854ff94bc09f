// Package format renders amounts and percentages for display.
package format

import (
	"fmt"
	"math"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency returns a currency string with a rupee sign and thousands separators (e.g., "-₹1,234.56").
func Currency(amount float64) string {
	p := message.NewPrinter(language.English)
	formatted := p.Sprintf("%.2f", math.Abs(amount))
	if amount < 0 {
		return "-" + constants.CurrencySymbol + formatted
	}
	return constants.CurrencySymbol + formatted
}

// Percent renders a percentage with two decimals (e.g., "33.33%").
func Percent(pct float64) string {
	if pct == 0 {
		pct = 0
	}
	return fmt.Sprintf("%.2f%%", pct)
}
