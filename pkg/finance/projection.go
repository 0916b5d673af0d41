package finance

import "github.com/btcbacked/collateral-calc/pkg/constants"

// Projection is the collateral outlook at one hypothetical price of the
// collateral asset, expressed in debt-asset units.
type Projection struct {
	// Price is the hypothetical price of one collateral unit.
	Price float64
	// CollateralValue is the posted collateral valued at Price.
	CollateralValue float64
	// CollateralPercent is CollateralValue as a percentage of the initial
	// debt; zero when there is no initial debt.
	CollateralPercent float64
	// RequiredCollateral is the collateral needed to cover the final debt at
	// Price; zero when Price is zero.
	RequiredCollateral float64
	// SurplusCollateral is posted minus required collateral. Negative means
	// the position is under-collateralized at this price. That is a risk
	// signal for the caller, not an error.
	SurplusCollateral float64
	// Undercollateralized is true when SurplusCollateral is negative.
	Undercollateralized bool
}

// Project computes one Projection per price, preserving input order.
func (e *Engine) Project(totalCollateral, initialDebt, finalDebt float64, prices []float64) []Projection {
	if len(prices) == 0 {
		return nil
	}

	projections := make([]Projection, 0, len(prices))
	for _, price := range prices {
		value := totalCollateral * price
		percent := 0.0
		if initialDebt > 0 {
			percent = value / initialDebt * constants.PercentageMultiplier
		}
		required := 0.0
		if price > 0 {
			required = finalDebt / price
		}
		surplus := totalCollateral - required
		projections = append(projections, Projection{
			Price:               price,
			CollateralValue:     value,
			CollateralPercent:   percent,
			RequiredCollateral:  required,
			SurplusCollateral:   surplus,
			Undercollateralized: surplus < 0,
		})
	}
	return projections
}
