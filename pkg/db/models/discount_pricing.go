package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mesabook/mesabook-backend/pkg/enums"
)

// DiscountPricing is the zero-or-one discount record for a discounted item.
type DiscountPricing struct {
	ID            uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ItemID        uuid.UUID          `gorm:"column:item_id;type:uuid;not null;uniqueIndex"`
	BasePrice     decimal.Decimal    `gorm:"column:base_price;type:numeric(10,2);not null"`
	DiscountType  enums.DiscountType `gorm:"column:discount_type;type:discount_type;not null"`
	DiscountValue decimal.Decimal    `gorm:"column:discount_value;type:numeric(10,2);not null"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
}
