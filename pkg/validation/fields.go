// Package validation provides input validation for calculator field sets.
package validation

import (
	"math"
	"strconv"

	"github.com/btcbacked/collateral-calc/pkg/constants"
)

// Field names a user-submitted value.
type Field string

// Fields accepted by the calculator forms.
const (
	FieldRate       Field = "rate"
	FieldPeriod     Field = "period"
	FieldPrincipal  Field = "principal"
	FieldCollateral Field = "collateral"
	FieldPrice      Field = "price"
)

// FieldErrors maps a field to a message describing why it was rejected.
type FieldErrors map[Field]string

// Valid reports whether no field was rejected.
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// Check validates every field present in values. Absent fields pass by
// omission, so partial records are valid. Rules per field:
//   - rate: a number in [0, 100]
//   - period: an integer >= 1
//   - principal, collateral, price: a number > 0
//
// Unparseable text fails the field it was submitted for.
func Check(values map[Field]string) FieldErrors {
	errs := FieldErrors{}

	if raw, ok := values[FieldRate]; ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || !isFinite(v) || v < constants.MinRatePercent || v > constants.MaxRatePercent {
			errs[FieldRate] = "rate must be a number between 0 and 100"
		}
	}

	if raw, ok := values[FieldPeriod]; ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < constants.MinPeriodMonths {
			errs[FieldPeriod] = "period must be a whole number of months, at least 1"
		}
	}

	checkPositive(values, FieldPrincipal, errs)
	checkPositive(values, FieldCollateral, errs)
	checkPositive(values, FieldPrice, errs)

	return errs
}

func checkPositive(values map[Field]string, field Field, errs FieldErrors) {
	raw, ok := values[field]
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFinite(v) || v <= 0 {
		errs[field] = string(field) + " must be a number greater than zero"
	}
}

// isFinite rejects NaN and infinities, which strconv.ParseFloat accepts from
// inputs like "NaN" and "Inf".
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
