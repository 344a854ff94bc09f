// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"
	"strconv"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round rounds a value to two decimals. The exact binary value decides the
// direction; an exact tie goes to the even digit.
// Used for every percentage written to a report.
func Round(val float64) float64 {
	d, err := decimal.NewFromString(strconv.FormatFloat(val, 'f', constants.DecimalPlaces, 64))
	if err != nil {
		return val
	}
	rounded, _ := d.Float64()
	// Avoid reporting -0 for tiny negatives.
	if rounded == 0 {
		return 0
	}
	return rounded
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Clamp bounds val to [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	return Min(Max(val, lo), hi)
}

// CalculatePercentage calculates what percentage value is of total.
// A non-positive total yields 0 rather than a division by zero.
func CalculatePercentage(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}
