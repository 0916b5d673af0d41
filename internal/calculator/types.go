// Package calculator implements the collateralized loan calculator state: loan
// positions, interest rate periods, hypothetical collateral prices, and the
// loan duration, together with the reconciliation rules that keep the rate
// schedule consistent with the duration and the notification lifecycle that
// reports adjustments to the user.
package calculator

import "strconv"

// Position is one loan draw: principal debt plus posted collateral. Values
// stay as the user-entered decimal text until computation so editing never
// loses precision; positions are immutable once added.
type Position struct {
	Principal  string `json:"principal" yaml:"principal"`
	Collateral string `json:"collateral" yaml:"collateral"`
}

// RatePeriod is a fixed annual interest rate applied for a number of months.
// The sequence of periods is chronological and order matters.
type RatePeriod struct {
	Rate   string `json:"rate" yaml:"rate"`
	Period string `json:"period" yaml:"period"`
}

// Notification classifies the state of the rate schedule after an adjustment.
type Notification int

const (
	// NotificationNone means the schedule needs no attention.
	NotificationNone Notification = iota
	// NotificationSpecifyMore means the schedule no longer covers the loan
	// duration and the user must add more rate periods.
	NotificationSpecifyMore
	// NotificationAutoAdjusted means periods were resized to fit the new
	// duration but still cover it.
	NotificationAutoAdjusted
)

// MessageKey returns the i18n key for the notification, or "" for none.
func (n Notification) MessageKey() string {
	switch n {
	case NotificationSpecifyMore:
		return "specifyRates"
	case NotificationAutoAdjusted:
		return "adjustedRates"
	default:
		return ""
	}
}

// parseAmount parses user-entered decimal text, treating unparseable text as
// zero the same way the display layer does.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseMonths parses a period's month count, treating unparseable text as zero.
func parseMonths(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
