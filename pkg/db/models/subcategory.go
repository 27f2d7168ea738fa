package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Subcategory belongs to a category. Both tax fields are nullable: a non-null
// pair is an override (even applicable=false with a numeric rate, which pins
// the rate to zero), a null pair falls through to the category.
type Subcategory struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID    uuid.UUID        `gorm:"column:category_id;type:uuid;not null"`
	Name          string           `gorm:"column:name;not null"`
	Slug          string           `gorm:"column:slug;not null;uniqueIndex"`
	Description   *string          `gorm:"column:description"`
	ImageURL      *string          `gorm:"column:image_url"`
	TaxApplicable *bool            `gorm:"column:tax_applicable"`
	TaxPercentage *decimal.Decimal `gorm:"column:tax_percentage;type:numeric(5,2)"`
	IsActive      bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
