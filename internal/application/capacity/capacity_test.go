package capacity

import (
	"testing"

	"mudarabah-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pool(total, target int64, slots int) *domain.Pool {
	return &domain.Pool{
		Total:  decimal.NewFromInt(total),
		Target: decimal.NewFromInt(target),
		Slots:  slots,
	}
}

func TestSlotsConsumed(t *testing.T) {
	assert.Equal(t, 1, SlotsConsumed(decimal.NewFromInt(5000)))
	assert.Equal(t, 1, SlotsConsumed(decimal.NewFromInt(9999)))
	assert.Equal(t, 20, SlotsConsumed(decimal.NewFromInt(100000)))
	assert.Equal(t, 100, SlotsConsumed(decimal.NewFromInt(500000)))
	assert.Equal(t, 0, SlotsConsumed(decimal.Zero))
	assert.Equal(t, 0, SlotsConsumed(decimal.NewFromInt(-5000)))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		pool   *domain.Pool
		amount int64
		reason domain.CapacityReason
	}{
		{"minimum accepted", pool(0, 1500000, 300), 5000, ""},
		{"maximum accepted", pool(0, 1500000, 300), 500000, ""},
		{"below minimum", pool(0, 1500000, 300), 4999, domain.ReasonBelowMinimum},
		{"zero", pool(0, 1500000, 300), 0, domain.ReasonBelowMinimum},
		{"not a multiple", pool(0, 1500000, 300), 7000, domain.ReasonInvalidIncrement},
		{"above maximum", pool(0, 1500000, 300), 505000, domain.ReasonInvalidIncrement},
		{"not enough slots", pool(0, 1500000, 10), 100000, domain.ReasonCapacityExceeded},
		{"beyond target", pool(1400000, 1500000, 300), 150000, domain.ReasonTargetExceeded},
		{"exactly remaining", pool(1400000, 1500000, 20), 100000, ""},
		{"full pool rejects minimum", pool(1500000, 1500000, 300), 5000, domain.ReasonPoolFull},
		{"full pool rejects bad amount", pool(1500000, 1500000, 0), 7000, domain.ReasonPoolFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.pool, decimal.NewFromInt(tt.amount))
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, domain.IsCapacityReason(err, tt.reason), "got %v", err)
		})
	}
}

func TestValidate_TargetMessageNamesLimit(t *testing.T) {
	err := Validate(pool(1400000, 1500000, 300), decimal.NewFromInt(150000))
	require.Error(t, err)
	assert.Equal(t, "You can only invest up to PKR 100,000", err.Error())
}

func TestValidate_DoesNotMutatePool(t *testing.T) {
	p := pool(0, 1500000, 300)
	require.NoError(t, Validate(p, decimal.NewFromInt(500000)))
	assert.True(t, p.Total.IsZero())
	assert.Equal(t, 300, p.Slots)
}
