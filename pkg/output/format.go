// Package output provides utilities for formatting and displaying calculator
// results.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/btcbacked/collateral-calc/internal/calculator"
	"github.com/btcbacked/collateral-calc/pkg/constants"
	"github.com/btcbacked/collateral-calc/pkg/format"
	"github.com/btcbacked/collateral-calc/pkg/i18n"
)

// PrettyFormat writes a human-readable rather than machine-readable summary
// of the snapshot. Labels are resolved through the bundle; amounts use the
// display precision of each asset.
func PrettyFormat(w io.Writer, snap calculator.Snapshot, bundle i18n.Bundle) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- %s ---\n", bundle.T("results"))
	fmt.Fprintf(w, "%s: %d (%d %s)\n", bundle.T("loanDuration"), snap.Duration, snap.RemainingMonths, bundle.T("monthsLeft"))
	fmt.Fprintf(w, "%s: %s %s\n", bundle.T("initialDebt"), format.Debt(snap.TotalInitialDebt), constants.DebtAssetSymbol)
	fmt.Fprintf(w, "%s: %s %s\n", bundle.T("totalCollateral"), format.Collateral(snap.TotalCollateral), constants.CollateralAssetSymbol)

	if snap.Results == nil {
		fmt.Fprintf(w, "%s\n", bundle.T("specifyRates"))
		return
	}

	fmt.Fprintf(w, "%s: %s %s\n", bundle.T("totalInterest"), format.Debt(snap.Results.TotalInterest), constants.DebtAssetSymbol)
	if snap.Results.MonthlyInterest != nil {
		fmt.Fprintf(w, "%s: %s %s\n", bundle.T("monthlyInterest"), format.Debt(*snap.Results.MonthlyInterest), constants.DebtAssetSymbol)
	}
	fmt.Fprintf(w, "%s: %s %s\n", bundle.T("finalDebt"), format.Debt(snap.Results.FinalDebt), constants.DebtAssetSymbol)
	if snap.Results.EffectiveRate != nil {
		fmt.Fprintf(w, "%s: %s\n", bundle.T("effectiveRate"), format.Percent(*snap.Results.EffectiveRate))
	}

	if len(snap.Projections) == 0 {
		return
	}

	fmt.Fprintf(w, "\n--- %s ---\n", bundle.T("priceScenarios"))
	for _, proj := range snap.Projections {
		_, _ = p.Fprintf(w, "@ %.0f %s: %s %s (%s %s)\n",
			proj.Price, constants.DebtAssetSymbol,
			format.Debt(proj.CollateralValue), constants.DebtAssetSymbol,
			format.PercentShort(proj.CollateralPercent), bundle.T("ofCollateral"),
		)
		fmt.Fprintf(w, "  %s: %s | %s: %s\n",
			bundle.T("requiredBtc"), format.Collateral(proj.RequiredCollateral),
			bundle.T("remainingBtc"), format.Collateral(proj.SurplusCollateral),
		)
	}
}

// CsvFormat writes the price scenarios in comma-separated value format, one
// row per scenario. Without computed results only the header is written.
func CsvFormat(w io.Writer, snap calculator.Snapshot) {
	headers := []string{"price", "collateralValue", "collateralPercent", "requiredCollateral", "surplusCollateral"}
	fmt.Fprintf(w, "%s\n", strings.Join(headers, ","))
	for _, proj := range snap.Projections {
		fmt.Fprintf(w, "%.2f,%.2f,%.1f,%.8f,%.8f\n",
			proj.Price,
			proj.CollateralValue,
			proj.CollateralPercent,
			proj.RequiredCollateral,
			proj.SurplusCollateral,
		)
	}
}
