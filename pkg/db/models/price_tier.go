package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceTier is a duration ceiling for tiered items: the price holds for up to
// UpToHours hours. Tiers for one item have distinct UpToHours values.
type PriceTier struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ItemID    uuid.UUID       `gorm:"column:item_id;type:uuid;not null;index"`
	UpToHours int             `gorm:"column:up_to_hours;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}
