package calculator

import (
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/btcbacked/collateral-calc/pkg/constants"
	"github.com/btcbacked/collateral-calc/pkg/finance"
	"github.com/btcbacked/collateral-calc/pkg/validation"
)

// Calculator owns the four user-edited collections and the loan duration.
// Every mutation is synchronous and total: adds report acceptance through a
// bool, removals and duration changes always succeed, and each mutation
// returns the complete derived snapshot so callers never read stale state.
type Calculator struct {
	mu        sync.Mutex
	logger    *zap.Logger
	scheduler Scheduler
	engine    *finance.Engine

	duration  int
	positions []Position
	rates     []RatePeriod
	prices    []string

	notification Notification
	highlight    bool
	// notifyToken increases on every notification change so a deferred clear
	// can tell whether it has been superseded.
	notifyToken uint64
}

// New creates a calculator with the default loan duration. A nil logger is
// replaced with a no-op logger and a nil scheduler with the wall clock.
func New(logger *zap.Logger, scheduler Scheduler) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if scheduler == nil {
		scheduler = NewScheduler()
	}
	return &Calculator{
		logger:    logger,
		scheduler: scheduler,
		engine:    finance.NewEngine(logger),
		duration:  constants.DefaultLoanDuration,
	}
}

// SetDuration changes the loan duration and reconciles the rate schedule to
// it. Negative values are treated as zero. Setting the current duration again
// leaves the schedule and any active notification untouched.
func (c *Calculator) SetDuration(months int) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if months < 0 {
		months = 0
	}
	c.logger.Info("loan duration changed", zap.Int("duration", months))
	if months == c.duration {
		return c.snapshotLocked()
	}
	c.duration = months

	adjusted, classification := reconcileSchedule(c.rates, months)
	switch classification {
	case NotificationSpecifyMore:
		c.logger.Info("adjusting rate periods for new duration",
			zap.Int("duration", months),
			zap.Int("periods", len(adjusted)),
		)
		c.rates = adjusted
		c.setNotificationLocked(NotificationSpecifyMore, true)
	case NotificationAutoAdjusted:
		c.rates = adjusted
		c.setNotificationLocked(NotificationAutoAdjusted, c.highlight)
	}

	c.clearIfCompleteLocked()
	return c.snapshotLocked()
}

// AddPosition appends a loan position if both fields validate. On rejection
// the state is unchanged and false is returned so the caller can keep the
// user's draft input.
func (c *Calculator) AddPosition(p Position) (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := validation.Check(map[validation.Field]string{
		validation.FieldPrincipal:  p.Principal,
		validation.FieldCollateral: p.Collateral,
	})
	if !errs.Valid() {
		return c.snapshotLocked(), false
	}

	c.logger.Info("adding position",
		zap.String("principal", p.Principal),
		zap.String("collateral", p.Collateral),
	)
	c.positions = append(c.positions, p)
	return c.snapshotLocked(), true
}

// RemovePosition removes the position at index; out-of-range indexes are a
// no-op.
func (c *Calculator) RemovePosition(index int) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index >= 0 && index < len(c.positions) {
		c.logger.Info("removing position", zap.Int("index", index))
		c.positions = append(c.positions[:index], c.positions[index+1:]...)
	}
	return c.snapshotLocked()
}

// AddRate appends a rate period. It is rejected when the fields fail
// validation or when the schedule already covers the duration; otherwise the
// submitted month count is clamped to the remaining uncovered months before
// appending, so coverage can never exceed the duration.
func (c *Calculator) AddRate(r RatePeriod) (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := validation.Check(map[validation.Field]string{
		validation.FieldRate:   r.Rate,
		validation.FieldPeriod: r.Period,
	})
	if !errs.Valid() {
		return c.snapshotLocked(), false
	}

	remaining := c.remainingMonthsLocked()
	months := parseMonths(r.Period)
	if months > remaining {
		months = remaining
	}
	if months <= 0 {
		return c.snapshotLocked(), false
	}

	clamped := RatePeriod{Rate: r.Rate, Period: strconv.Itoa(months)}
	c.logger.Info("adding rate period",
		zap.String("rate", clamped.Rate),
		zap.String("period", clamped.Period),
	)
	c.rates = append(c.rates, clamped)
	c.clearIfCompleteLocked()
	return c.snapshotLocked(), true
}

// RemoveRate removes the rate period at index. Removal never resizes the
// remaining periods; it only reopens uncovered months.
func (c *Calculator) RemoveRate(index int) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index >= 0 && index < len(c.rates) {
		c.logger.Info("removing rate period", zap.Int("index", index))
		c.rates = append(c.rates[:index], c.rates[index+1:]...)
	}
	return c.snapshotLocked()
}

// AddPrice appends a hypothetical collateral price if it validates.
func (c *Calculator) AddPrice(price string) (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := validation.Check(map[validation.Field]string{
		validation.FieldPrice: price,
	})
	if !errs.Valid() {
		return c.snapshotLocked(), false
	}

	c.logger.Info("adding price scenario", zap.String("price", price))
	c.prices = append(c.prices, price)
	return c.snapshotLocked(), true
}

// RemovePrice removes the price at index; out-of-range indexes are a no-op.
func (c *Calculator) RemovePrice(index int) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index >= 0 && index < len(c.prices) {
		c.logger.Info("removing price scenario", zap.Int("index", index))
		c.prices = append(c.prices[:index], c.prices[index+1:]...)
	}
	return c.snapshotLocked()
}

// Snapshot returns the current derived state without mutating anything.
func (c *Calculator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Calculator) remainingMonthsLocked() int {
	covered := 0
	for _, r := range c.rates {
		covered += parseMonths(r.Period)
	}
	if remaining := c.duration - covered; remaining > 0 {
		return remaining
	}
	return 0
}

// setNotificationLocked publishes a classification and arms its auto-clear.
// The deferred clear captures the current token and backs off if another
// classification (or a completion clear) has bumped it since.
func (c *Calculator) setNotificationLocked(n Notification, highlight bool) {
	c.notification = n
	c.highlight = highlight
	c.notifyToken++
	token := c.notifyToken
	c.scheduler.AfterFunc(constants.NotificationClearDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.notifyToken != token {
			return
		}
		c.notification = NotificationNone
		c.highlight = false
	})
}

// clearIfCompleteLocked drops any active notification the instant the rate
// schedule covers the whole duration, without waiting for the timed clear.
func (c *Calculator) clearIfCompleteLocked() {
	if c.remainingMonthsLocked() != 0 {
		return
	}
	if c.notification == NotificationNone && !c.highlight {
		return
	}
	c.notifyToken++
	c.notification = NotificationNone
	c.highlight = false
}
