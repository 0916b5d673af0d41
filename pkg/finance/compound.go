// Package finance provides the pure financial calculations behind the
// calculator: period-by-period interest compounding and collateral price
// projections. All functions are deterministic over their inputs and never
// mutate them.
package finance

import (
	"go.uber.org/zap"

	"github.com/btcbacked/collateral-calc/pkg/constants"
)

// RatePeriod is one contiguous span of months during which a fixed annual
// interest rate applies. Periods are applied chronologically, first to last.
type RatePeriod struct {
	AnnualRatePercent float64
	Months            int
}

// CompoundResult holds the outcome of compounding a rate schedule over the
// loan duration. EffectiveRate is nil when the initial debt is zero and
// MonthlyInterest is nil when the duration is zero, since neither quotient
// is defined there.
type CompoundResult struct {
	InitialDebt     float64
	TotalInterest   float64
	FinalDebt       float64
	EffectiveRate   *float64
	MonthlyInterest *float64
}

// Engine computes compounding results and price projections.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a new calculation engine with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Compound accrues interest period by period over durationMonths, starting
// from initialDebt. Interest within a period is simple and prorated monthly
// (balance * rate * months/12); the balance carried into the next period
// includes interest accrued so far, so periods compound on each other.
//
// Returns nil when the schedule does not fully cover the duration or when the
// schedule is empty: an uncovered loan has no result, not a zero one. A
// period that would run past the duration is clamped to the months still
// owed, so an inconsistent schedule can never drive the remaining term
// negative.
func (e *Engine) Compound(initialDebt float64, periods []RatePeriod, durationMonths int) *CompoundResult {
	if len(periods) == 0 {
		return nil
	}

	covered := 0
	for _, p := range periods {
		covered += p.Months
	}
	if covered < durationMonths {
		e.logger.Debug("rate schedule does not cover loan duration",
			zap.Int("coveredMonths", covered),
			zap.Int("durationMonths", durationMonths),
		)
		return nil
	}

	monthsOwed := durationMonths
	debt := initialDebt
	totalInterest := 0.0
	for _, p := range periods {
		monthsToApply := p.Months
		if monthsToApply > monthsOwed {
			monthsToApply = monthsOwed
		}
		if monthsToApply <= 0 {
			break
		}
		rateFraction := p.AnnualRatePercent / constants.PercentageMultiplier
		periodInterest := debt * rateFraction * (float64(monthsToApply) / constants.MonthsPerYear)
		totalInterest += periodInterest
		debt += periodInterest
		monthsOwed -= monthsToApply
	}

	result := &CompoundResult{
		InitialDebt:   initialDebt,
		TotalInterest: totalInterest,
		FinalDebt:     initialDebt + totalInterest,
	}
	if initialDebt > 0 {
		effective := totalInterest / initialDebt * constants.PercentageMultiplier
		result.EffectiveRate = &effective
	}
	if durationMonths > 0 {
		monthly := totalInterest / float64(durationMonths)
		result.MonthlyInterest = &monthly
	}
	return result
}
