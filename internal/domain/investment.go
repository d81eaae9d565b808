package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is one commitment of capital by a user into a pool.
type Investment struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64           `gorm:"column:user_id;not null;index" json:"userId"`
	PoolID    int64           `gorm:"column:pool_id;not null;index" json:"poolId"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric(20,2);not null" json:"amount"`
	CreatedAt time.Time       `gorm:"column:created_at;not null" json:"createdAt"`
}

func (Investment) TableName() string {
	return "investments"
}

// NewInvestment builds an unsaved investment stamped with the given time.
func NewInvestment(userID, poolID int64, amount decimal.Decimal, at time.Time) *Investment {
	return &Investment{
		UserID:    userID,
		PoolID:    poolID,
		Amount:    amount,
		CreatedAt: at.UTC(),
	}
}
