package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is a top-level menu grouping. Its tax pair is the last stop in the
// override chain: applicable is non-null here, unlike items and subcategories.
type Category struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string           `gorm:"column:name;not null"`
	Slug          string           `gorm:"column:slug;not null;uniqueIndex"`
	Description   *string          `gorm:"column:description"`
	ImageURL      *string          `gorm:"column:image_url"`
	TaxApplicable bool             `gorm:"column:tax_applicable;not null;default:false"`
	TaxPercentage *decimal.Decimal `gorm:"column:tax_percentage;type:numeric(5,2)"`
	IsActive      bool             `gorm:"column:is_active;not null;default:true"`
	Subcategories []Subcategory    `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
