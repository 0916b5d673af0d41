// Package constants provides shared constants for the collateral-calc application.
package constants

import "time"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DebtPrecision is the precision for debt-asset rounding (2 decimal places)
	DebtPrecision = 100.0

	// CollateralPrecision is the precision for collateral-asset rounding
	// (8 decimal places, one satoshi)
	CollateralPrecision = 1e8

	// CurrencyTolerance is the tolerance for debt-asset comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Asset labels. The calculator models exactly two units: debt denominated in
// the debt asset, collateral in the collateral asset.
const (
	// DebtAssetSymbol is the display symbol for debt-asset amounts
	DebtAssetSymbol = "USDT"

	// CollateralAssetSymbol is the display symbol for collateral-asset amounts
	CollateralAssetSymbol = "BTC"
)

// Validation bounds for user-submitted fields
const (
	// MinRatePercent is the lowest accepted annual interest rate
	MinRatePercent = 0.0

	// MaxRatePercent is the highest accepted annual interest rate
	MaxRatePercent = 100.0

	// MinPeriodMonths is the shortest accepted rate period
	MinPeriodMonths = 1
)

// Calculator defaults
const (
	// DefaultLoanDuration is the initial loan term in months
	DefaultLoanDuration = 12

	// NotificationClearDelay is how long a schedule-adjustment notification
	// stays visible before it clears itself
	NotificationClearDelay = 5 * time.Second
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the JSON API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)
