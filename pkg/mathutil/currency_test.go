package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Repeating third", 100.0 / 3.0, 33.33},
		{"Two thirds", 200.0 / 3.0, 66.67},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round up", -1.235, -1.24},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Very small negative", -0.001, 0.00},
		{"Exactly one cent", 0.01, 0.01},
		{"Exact tie rounds to even down", 10.125, 10.12},
		{"Exact tie rounds to even up", 0.375, 0.38},
		{"Binary value below the tie", 2.675, 2.67},
		{"Share of income on a tie", 4050.0 / 40000.0 * 100, 10.12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundNeverReturnsNegativeZero(t *testing.T) {
	result := Round(-0.001)
	if math.Signbit(result) {
		t.Errorf("Round(-0.001) returned negative zero")
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Very small positive", 0.001, true},
		{"Very small negative", -0.001, true},
		{"Just above tolerance", 0.02, false},
		{"Just below negative tolerance", -0.02, false},
		{"Large positive", 100.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(tt.input); result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(3, -2); got != -2 {
		t.Errorf("Min(3, -2) = %v, expected -2", got)
	}
	if got := Max(3, -2); got != 3 {
		t.Errorf("Max(3, -2) = %v, expected 3", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected float64
	}{
		{"Below range", -5, 0},
		{"Inside range", 42, 42},
		{"Above range", 120, 100},
		{"Lower bound", 0, 0},
		{"Upper bound", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.val, 0, 100); got != tt.expected {
				t.Errorf("Clamp(%v, 0, 100) = %v, expected %v", tt.val, got, tt.expected)
			}
		})
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{"Half", 50, 100, 50},
		{"Quarter", 25000, 100000, 25},
		{"Over total", 150, 100, 150},
		{"Negative value", -20, 100, -20},
		{"Zero total", 500, 0, 0},
		{"Negative total", 500, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePercentage(tt.value, tt.total)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v", tt.value, tt.total, result, tt.expected)
			}
		})
	}
}
