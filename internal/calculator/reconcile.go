package calculator

import "strconv"

// reconcileSchedule fits an ordered rate schedule to a new loan duration.
// Walking the periods in order, each one is clamped to the months still
// available; once the duration is consumed the rest are dropped. The second
// return value classifies the outcome:
//
//   - NotificationSpecifyMore: periods were dropped, or the surviving
//     schedule covers less than the duration, so the user must specify more.
//   - NotificationAutoAdjusted: every period survived and coverage is intact,
//     but at least one month count was resized.
//   - NotificationNone: the schedule fit as-is.
//
// The input slice is not modified.
func reconcileSchedule(rates []RatePeriod, duration int) ([]RatePeriod, Notification) {
	consumed := 0
	changed := false
	adjusted := make([]RatePeriod, 0, len(rates))
	for _, r := range rates {
		remaining := duration - consumed
		if remaining <= 0 {
			break
		}
		months := parseMonths(r.Period)
		if months > remaining {
			months = remaining
		}
		if months < 0 {
			months = 0
		}
		clamped := strconv.Itoa(months)
		if clamped != r.Period {
			changed = true
		}
		consumed += months
		adjusted = append(adjusted, RatePeriod{Rate: r.Rate, Period: clamped})
	}

	switch {
	case len(adjusted) != len(rates) || consumed < duration:
		return adjusted, NotificationSpecifyMore
	case changed:
		return adjusted, NotificationAutoAdjusted
	default:
		return adjusted, NotificationNone
	}
}
