package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Addon is an independently selectable extra that belongs to one item.
type Addon struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ItemID     uuid.UUID       `gorm:"column:item_id;type:uuid;not null;index"`
	Name       string          `gorm:"column:name;not null"`
	Price      decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	IsRequired bool            `gorm:"column:is_required;not null;default:false"`
	AddonGroup *string         `gorm:"column:addon_group"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
}
