// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/btcbacked/collateral-calc/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent a debt-asset amount.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DebtPrecision) / constants.DebtPrecision
}

// RoundCollateral rounds a value to eight decimals, the practical precision of
// the collateral asset.
func RoundCollateral(val float64) float64 {
	return math.Round(val*constants.CollateralPrecision) / constants.CollateralPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}
