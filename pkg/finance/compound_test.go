package finance

import (
	"testing"

	"github.com/btcbacked/collateral-calc/pkg/mathutil"
)

func TestCompoundSinglePeriod(t *testing.T) {
	engine := NewEngine(nil)

	result := engine.Compound(10000, []RatePeriod{{AnnualRatePercent: 12, Months: 12}}, 12)
	if result == nil {
		t.Fatal("Compound() returned nil for a fully covered schedule")
	}

	if !mathutil.WithinTolerance(result.TotalInterest, 1200.00, 1e-9) {
		t.Errorf("TotalInterest = %v, expected 1200.00", result.TotalInterest)
	}
	if !mathutil.WithinTolerance(result.FinalDebt, 11200.00, 1e-9) {
		t.Errorf("FinalDebt = %v, expected 11200.00", result.FinalDebt)
	}
	if result.EffectiveRate == nil {
		t.Fatal("EffectiveRate is nil, expected 12.00")
	}
	if !mathutil.WithinTolerance(*result.EffectiveRate, 12.00, 1e-9) {
		t.Errorf("EffectiveRate = %v, expected 12.00", *result.EffectiveRate)
	}
	if result.MonthlyInterest == nil {
		t.Fatal("MonthlyInterest is nil, expected 100.00")
	}
	if !mathutil.WithinTolerance(*result.MonthlyInterest, 100.00, 1e-9) {
		t.Errorf("MonthlyInterest = %v, expected 100.00", *result.MonthlyInterest)
	}
}

// Two half-year periods at the same rate must yield more interest than one
// full-year period would at that rate on the initial balance alone: the
// second period accrues on the first period's interest.
func TestCompoundTwoPeriodsCompoundOnPriorInterest(t *testing.T) {
	engine := NewEngine(nil)

	periods := []RatePeriod{
		{AnnualRatePercent: 10, Months: 6},
		{AnnualRatePercent: 10, Months: 6},
	}
	result := engine.Compound(10000, periods, 12)
	if result == nil {
		t.Fatal("Compound() returned nil for a fully covered schedule")
	}

	// period 1: 10000 * 0.10 * 0.5 = 500.00; period 2: 10500 * 0.10 * 0.5 = 525.00
	if !mathutil.WithinTolerance(result.TotalInterest, 1025.00, 1e-9) {
		t.Errorf("TotalInterest = %v, expected 1025.00", result.TotalInterest)
	}
	if !mathutil.WithinTolerance(result.FinalDebt, 11025.00, 1e-9) {
		t.Errorf("FinalDebt = %v, expected 11025.00", result.FinalDebt)
	}
}

func TestCompoundNoResultCases(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		name     string
		debt     float64
		periods  []RatePeriod
		duration int
	}{
		{
			name:     "Empty schedule",
			debt:     10000,
			periods:  nil,
			duration: 12,
		},
		{
			name:     "Schedule shorter than duration",
			debt:     10000,
			periods:  []RatePeriod{{AnnualRatePercent: 10, Months: 6}},
			duration: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := engine.Compound(tt.debt, tt.periods, tt.duration); result != nil {
				t.Errorf("Compound() = %+v, expected nil", result)
			}
		})
	}
}

// A schedule longer than the duration is clamped, not faulted: months past
// the duration contribute nothing.
func TestCompoundClampsExcessSchedule(t *testing.T) {
	engine := NewEngine(nil)

	periods := []RatePeriod{
		{AnnualRatePercent: 10, Months: 12},
		{AnnualRatePercent: 50, Months: 12},
	}
	result := engine.Compound(10000, periods, 12)
	if result == nil {
		t.Fatal("Compound() returned nil, expected clamped result")
	}

	// Only the first 12 months apply: 10000 * 0.10 * 1 = 1000.00
	if !mathutil.WithinTolerance(result.TotalInterest, 1000.00, 1e-9) {
		t.Errorf("TotalInterest = %v, expected 1000.00", result.TotalInterest)
	}
}

func TestCompoundDivisionGuards(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("Zero initial debt has no effective rate", func(t *testing.T) {
		result := engine.Compound(0, []RatePeriod{{AnnualRatePercent: 10, Months: 12}}, 12)
		if result == nil {
			t.Fatal("Compound() returned nil")
		}
		if result.EffectiveRate != nil {
			t.Errorf("EffectiveRate = %v, expected nil for zero initial debt", *result.EffectiveRate)
		}
		if result.MonthlyInterest == nil {
			t.Error("MonthlyInterest is nil, expected a value for nonzero duration")
		}
	})

	t.Run("Zero duration has no monthly interest", func(t *testing.T) {
		result := engine.Compound(10000, []RatePeriod{{AnnualRatePercent: 10, Months: 1}}, 0)
		if result == nil {
			t.Fatal("Compound() returned nil")
		}
		if result.MonthlyInterest != nil {
			t.Errorf("MonthlyInterest = %v, expected nil for zero duration", *result.MonthlyInterest)
		}
		if result.TotalInterest != 0 {
			t.Errorf("TotalInterest = %v, expected 0 over zero months", result.TotalInterest)
		}
	})
}
