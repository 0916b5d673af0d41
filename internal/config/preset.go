package config

import (
	"go.uber.org/zap"

	"github.com/btcbacked/collateral-calc/internal/calculator"
)

// ApplyPreset feeds a preset scenario into the calculator through its normal
// mutation methods. Entries the calculator rejects are skipped with a warning
// rather than failing startup. Returns the snapshot after the last entry.
func ApplyPreset(logger *zap.Logger, calc *calculator.Calculator, preset *Preset) calculator.Snapshot {
	if logger == nil {
		logger = zap.NewNop()
	}
	if preset == nil {
		return calc.Snapshot()
	}

	snap := calc.Snapshot()
	if preset.DurationMonths > 0 {
		snap = calc.SetDuration(preset.DurationMonths)
	}

	for _, p := range preset.Positions {
		var ok bool
		snap, ok = calc.AddPosition(calculator.Position{Principal: p.Principal, Collateral: p.Collateral})
		if !ok {
			logger.Warn("skipping invalid preset position",
				zap.String("principal", p.Principal),
				zap.String("collateral", p.Collateral),
			)
		}
	}

	for _, r := range preset.Rates {
		var ok bool
		snap, ok = calc.AddRate(calculator.RatePeriod{Rate: r.Rate, Period: r.Period})
		if !ok {
			logger.Warn("skipping invalid preset rate period",
				zap.String("rate", r.Rate),
				zap.String("period", r.Period),
			)
		}
	}

	for _, price := range preset.Prices {
		var ok bool
		snap, ok = calc.AddPrice(price)
		if !ok {
			logger.Warn("skipping invalid preset price", zap.String("price", price))
		}
	}

	return snap
}
