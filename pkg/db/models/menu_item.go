package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mesabook/mesabook-backend/pkg/enums"
)

// MenuItem is the canonical catalog listing. Exactly one pricing strategy is
// active per item; the strategy payload associations (PriceTiers, Discount,
// DynamicWindows) are only populated when the matching type is set.
type MenuItem struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID    *uuid.UUID        `gorm:"column:category_id;type:uuid"`
	SubcategoryID *uuid.UUID        `gorm:"column:subcategory_id;type:uuid"`
	Name          string            `gorm:"column:name;not null"`
	Slug          string            `gorm:"column:slug;not null;uniqueIndex"`
	Description   *string           `gorm:"column:description"`
	ImageURL      *string           `gorm:"column:image_url"`
	IsActive      bool              `gorm:"column:is_active;not null;default:true"`
	PricingType   enums.PricingType `gorm:"column:pricing_type;type:pricing_type;not null"`
	StaticPrice   *decimal.Decimal  `gorm:"column:static_price;type:numeric(10,2)"`
	TaxApplicable *bool             `gorm:"column:tax_applicable"`
	TaxPercentage *decimal.Decimal  `gorm:"column:tax_percentage;type:numeric(5,2)"`
	IsBookable    bool              `gorm:"column:is_bookable;not null;default:false"`
	IsBestseller  bool              `gorm:"column:is_bestseller;not null;default:false"`
	IsNew         bool              `gorm:"column:is_new;not null;default:false"`

	Category              *Category              `gorm:"foreignKey:CategoryID"`
	Subcategory           *Subcategory           `gorm:"foreignKey:SubcategoryID"`
	PriceTiers            []PriceTier            `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	Discount              *DiscountPricing       `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	DynamicWindows        []DynamicPriceWindow   `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	Addons                []Addon                `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	AvailabilityTemplates []AvailabilityTemplate `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
