package budget

import (
	"fmt"
	"strings"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/constants"
)

// Period is the span of time a worksheet's income and expenses cover.
type Period int

const (
	Monthly Period = iota
	Yearly
)

func (p Period) String() string {
	if p == Yearly {
		return constants.PeriodYearly
	}
	return constants.PeriodMonthly
}

// ParsePeriod accepts "Monthly" or "Yearly" in any case. An empty string is Monthly.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monthly":
		return Monthly, nil
	case "yearly":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("expected period of %s or %s, got %q",
			constants.PeriodMonthly, constants.PeriodYearly, s)
	}
}

// Category is one of the fixed expense buckets of a worksheet.
type Category int

const (
	Housing Category = iota
	Food
	Transport
	Utilities
	Lifestyle
	Others
)

// NumCategories is the number of expense categories.
const NumCategories = 6

var categoryLabels = [NumCategories]string{
	"Housing (Rent / EMI)",
	"Food",
	"Transport",
	"Utilities",
	"Lifestyle & Entertainment",
	"Others",
}

func (c Category) String() string {
	if c < 0 || int(c) >= NumCategories {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryLabels[c]
}

// Categories lists every category in worksheet order.
func Categories() []Category {
	return []Category{Housing, Food, Transport, Utilities, Lifestyle, Others}
}

// IsNeed reports whether the category counts toward essential spending.
func (c Category) IsNeed() bool {
	return c == Housing || c == Food || c == Utilities
}

// IsWant reports whether the category counts toward discretionary spending.
func (c Category) IsWant() bool {
	return c == Lifestyle
}

// Expenses holds one amount per category, indexed by Category.
// Unset categories are zero.
type Expenses [NumCategories]float64

// Amount returns the amount recorded for c.
func (e Expenses) Amount(c Category) float64 {
	return e[c]
}

// Total sums every category.
func (e Expenses) Total() float64 {
	total := 0.0
	for _, amount := range e {
		total += amount
	}
	return total
}

// Needs sums Housing, Food and Utilities.
func (e Expenses) Needs() float64 {
	total := 0.0
	for _, c := range Categories() {
		if c.IsNeed() {
			total += e[c]
		}
	}
	return total
}

// Wants returns the Lifestyle & Entertainment amount.
func (e Expenses) Wants() float64 {
	total := 0.0
	for _, c := range Categories() {
		if c.IsWant() {
			total += e[c]
		}
	}
	return total
}
