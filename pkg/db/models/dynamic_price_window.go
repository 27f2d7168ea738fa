package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DynamicPriceWindow is a time-of-day interval with a fixed price for dynamic
// items. Times are zero-padded HH:MM strings; the window is half-open, start
// inclusive and end exclusive.
type DynamicPriceWindow struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ItemID    uuid.UUID       `gorm:"column:item_id;type:uuid;not null;index"`
	StartTime string          `gorm:"column:start_time;not null"`
	EndTime   string          `gorm:"column:end_time;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}
