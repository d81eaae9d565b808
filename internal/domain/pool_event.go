package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// PoolEventType names what happened to a pool's capacity.
type PoolEventType string

const (
	PoolEventInvested PoolEventType = "INVESTED"
	PoolEventReversed PoolEventType = "REVERSED"
	PoolEventReset    PoolEventType = "RESET"
)

// PoolEvent is the audit row written alongside every capacity mutation.
type PoolEvent struct {
	ID           int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PoolID       int64          `gorm:"column:pool_id;not null;index" json:"poolId"`
	UserID       *int64         `gorm:"column:user_id" json:"userId"`
	InvestmentID *int64         `gorm:"column:investment_id" json:"investmentId"`
	EventType    PoolEventType  `gorm:"column:event_type;type:varchar(20);not null" json:"eventType"`
	EventData    datatypes.JSON `gorm:"column:event_data" json:"eventData"`
	CreatedAt    time.Time      `gorm:"column:created_at" json:"createdAt"`
}

func (PoolEvent) TableName() string {
	return "pool_events"
}

// NewPoolEvent builds an unsaved audit row. userID and investmentID may be
// zero for pool-wide events.
func NewPoolEvent(poolID, userID, investmentID int64, kind PoolEventType, data map[string]interface{}) *PoolEvent {
	ev := &PoolEvent{PoolID: poolID, EventType: kind}
	if userID != 0 {
		ev.UserID = &userID
	}
	if investmentID != 0 {
		ev.InvestmentID = &investmentID
	}
	if data != nil {
		raw, _ := json.Marshal(data)
		ev.EventData = datatypes.JSON(raw)
	}
	return ev
}
