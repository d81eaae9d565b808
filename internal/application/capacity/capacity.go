package capacity

import (
	"fmt"

	"mudarabah-backend/internal/domain"
	"mudarabah-backend/internal/pkg/currency"

	"github.com/shopspring/decimal"
)

const (
	MinAmount             = 5000
	SlotUnit              = 5000
	MaxAmount             = 500000
	MaxSlotsPerInvestment = MaxAmount / SlotUnit
)

var (
	minAmount = decimal.NewFromInt(MinAmount)
	slotUnit  = decimal.NewFromInt(SlotUnit)
	maxAmount = decimal.NewFromInt(MaxAmount)
)

// SlotsConsumed is floor(amount / SlotUnit). Validation, consumption and
// restoration all use it so a reversal gives back exactly what was taken.
func SlotsConsumed(amount decimal.Decimal) int {
	if !amount.IsPositive() {
		return 0
	}
	return int(amount.Div(slotUnit).Floor().IntPart())
}

// Validate checks a proposed investment against the pool's current state.
// It never mutates the pool. A non-nil error is always a *domain.CapacityError.
func Validate(pool *domain.Pool, amount decimal.Decimal) error {
	remaining := pool.Remaining()

	if pool.State() == domain.PoolFull {
		return &domain.CapacityError{
			Reason:  domain.ReasonPoolFull,
			Message: "Not enough slots available in the pool",
		}
	}
	if amount.LessThan(minAmount) {
		return &domain.CapacityError{
			Reason:  domain.ReasonBelowMinimum,
			Message: fmt.Sprintf("Minimum investment is %s", currency.PKR(minAmount)),
		}
	}
	if !amount.Mod(slotUnit).IsZero() || amount.GreaterThan(maxAmount) {
		return &domain.CapacityError{
			Reason: domain.ReasonInvalidIncrement,
			Message: fmt.Sprintf("Investments must be in multiples of %s up to %s",
				currency.PKR(slotUnit), currency.PKR(maxAmount)),
		}
	}

	slots := SlotsConsumed(amount)
	if slots > MaxSlotsPerInvestment || pool.Slots < slots {
		return &domain.CapacityError{
			Reason:  domain.ReasonCapacityExceeded,
			Message: fmt.Sprintf("Not enough slots available in the pool (%d requested, %d left)", slots, pool.Slots),
		}
	}
	if amount.GreaterThan(remaining) {
		return &domain.CapacityError{
			Reason:  domain.ReasonTargetExceeded,
			Message: fmt.Sprintf("You can only invest up to %s", currency.PKR(decimal.Min(remaining, maxAmount))),
		}
	}
	return nil
}
