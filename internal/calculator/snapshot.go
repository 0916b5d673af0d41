package calculator

import "github.com/btcbacked/collateral-calc/pkg/finance"

// Snapshot is the complete derived state after a mutation. It is recomputed
// from the collections on every call rather than cached, so it can never go
// stale. Results is nil until the rate schedule fully covers the duration and
// at least one position and one rate period exist; Projections is nil unless
// Results exists and at least one price was entered.
type Snapshot struct {
	Duration        int          `json:"duration"`
	Positions       []Position   `json:"positions"`
	Rates           []RatePeriod `json:"rates"`
	Prices          []string     `json:"prices"`
	RemainingMonths int          `json:"remainingMonths"`
	Notification    Notification `json:"-"`
	Highlight       bool         `json:"highlight"`

	TotalInitialDebt float64                 `json:"totalInitialDebt"`
	TotalCollateral  float64                 `json:"totalCollateral"`
	Results          *finance.CompoundResult `json:"results,omitempty"`
	Projections      []finance.Projection    `json:"projections,omitempty"`
}

func (c *Calculator) snapshotLocked() Snapshot {
	snap := Snapshot{
		Duration:        c.duration,
		Positions:       append([]Position(nil), c.positions...),
		Rates:           append([]RatePeriod(nil), c.rates...),
		Prices:          append([]string(nil), c.prices...),
		RemainingMonths: c.remainingMonthsLocked(),
		Notification:    c.notification,
		Highlight:       c.highlight,
	}

	for _, p := range c.positions {
		snap.TotalInitialDebt += parseAmount(p.Principal)
		snap.TotalCollateral += parseAmount(p.Collateral)
	}

	if snap.RemainingMonths != 0 || len(c.positions) == 0 || len(c.rates) == 0 {
		return snap
	}

	periods := make([]finance.RatePeriod, 0, len(c.rates))
	for _, r := range c.rates {
		periods = append(periods, finance.RatePeriod{
			AnnualRatePercent: parseAmount(r.Rate),
			Months:            parseMonths(r.Period),
		})
	}
	snap.Results = c.engine.Compound(snap.TotalInitialDebt, periods, c.duration)

	if snap.Results != nil && len(c.prices) > 0 {
		prices := make([]float64, 0, len(c.prices))
		for _, p := range c.prices {
			prices = append(prices, parseAmount(p))
		}
		snap.Projections = c.engine.Project(snap.TotalCollateral, snap.TotalInitialDebt, snap.Results.FinalDebt, prices)
	}

	return snap
}
