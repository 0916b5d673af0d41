package format

import "testing"

func TestDebt(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Thousands separator", 1234.5, "1,234.50"},
		{"Millions", 1234567.891, "1,234,567.89"},
		{"Negative", -1234.5, "-1,234.50"},
		{"Zero", 0, "0.00"},
		{"Under a thousand", 999.99, "999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Debt(tt.amount); got != tt.expected {
				t.Errorf("Debt(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestCollateral(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Trailing zeros trimmed", 0.56, "0.56"},
		{"Whole number", 1.0, "1"},
		{"Eight decimals kept", 0.12345678, "0.12345678"},
		{"Zero", 0, "0"},
		{"Negative", -0.44, "-0.44"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collateral(tt.amount); got != tt.expected {
				t.Errorf("Collateral(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(12.0); got != "12.00%" {
		t.Errorf("Percent(12.0) = %q, expected \"12.00%%\"", got)
	}
	if got := PercentShort(200.0); got != "200.0%" {
		t.Errorf("PercentShort(200.0) = %q, expected \"200.0%%\"", got)
	}
}
