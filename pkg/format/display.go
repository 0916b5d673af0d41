// Package format renders calculator amounts for display. Debt-asset amounts
// show two decimals with thousands separators; collateral-asset amounts show
// up to eight decimals with trailing zeros trimmed.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Debt returns a debt-asset amount with thousands separators and two decimals
// (e.g., "-1,234.56").
func Debt(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + groupThousands(fmt.Sprintf("%.2f", math.Abs(amount)))
}

// Collateral returns a collateral-asset amount with up to eight decimals,
// trailing zeros trimmed (e.g., "0.56", "0.00000001").
func Collateral(amount float64) string {
	formatted := fmt.Sprintf("%.8f", amount)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimSuffix(formatted, ".")
	if formatted == "" || formatted == "-" {
		return "0"
	}
	return formatted
}

// Percent returns a percentage with two decimals and a percent sign.
func Percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// PercentShort returns a percentage with one decimal, the precision used in
// scenario rows.
func PercentShort(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

func groupThousands(formatted string) string {
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
