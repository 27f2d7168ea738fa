package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mesabook/mesabook-backend/pkg/db/models"
)

// CategoryDTO represents a category payload returned to clients.
type CategoryDTO struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   *string          `json:"description,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	TaxApplicable bool             `json:"tax_applicable"`
	TaxPercentage *decimal.Decimal `json:"tax_percentage,omitempty"`
	Subcategories []SubcategoryDTO `json:"subcategories"`
}

// SubcategoryDTO represents a subcategory payload.
type SubcategoryDTO struct {
	ID            uuid.UUID        `json:"id"`
	CategoryID    uuid.UUID        `json:"category_id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   *string          `json:"description,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	TaxApplicable *bool            `json:"tax_applicable,omitempty"`
	TaxPercentage *decimal.Decimal `json:"tax_percentage,omitempty"`
}

// ItemDTO represents the hydrated menu item payload.
type ItemDTO struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	Description   *string           `json:"description,omitempty"`
	ImageURL      *string           `json:"image_url,omitempty"`
	PricingType   string            `json:"pricing_type"`
	StaticPrice   *decimal.Decimal  `json:"static_price,omitempty"`
	IsBookable    bool              `json:"is_bookable"`
	IsBestseller  bool              `json:"is_bestseller"`
	IsNew         bool              `json:"is_new"`
	Category      *ParentRefDTO     `json:"category,omitempty"`
	Subcategory   *ParentRefDTO     `json:"subcategory,omitempty"`
	PriceTiers    []PriceTierDTO    `json:"price_tiers,omitempty"`
	Discount      *DiscountDTO      `json:"discount,omitempty"`
	DynamicPrices []DynamicPriceDTO `json:"dynamic_prices,omitempty"`
	Addons        []AddonDTO        `json:"addons,omitempty"`
}

// ItemPageDTO is one page of items. An empty NextCursor means no more pages.
type ItemPageDTO struct {
	Items      []ItemDTO `json:"items"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

// ParentRefDTO is the minimal category/subcategory reference on an item.
type ParentRefDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// PriceTierDTO is one duration ceiling of a tiered item.
type PriceTierDTO struct {
	ID        uuid.UUID       `json:"id"`
	UpToHours int             `json:"up_to_hours"`
	Price     decimal.Decimal `json:"price"`
}

// DiscountDTO is the discount record of a discounted item.
type DiscountDTO struct {
	BasePrice     decimal.Decimal `json:"base_price"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

// DynamicPriceDTO is one time-of-day pricing window of a dynamic item.
type DynamicPriceDTO struct {
	ID        uuid.UUID       `json:"id"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	Price     decimal.Decimal `json:"price"`
}

// AddonDTO is one selectable extra on an item.
type AddonDTO struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	IsRequired bool            `json:"is_required"`
	AddonGroup *string         `json:"addon_group,omitempty"`
}

func newCategoryDTO(category models.Category) CategoryDTO {
	subs := make([]SubcategoryDTO, 0, len(category.Subcategories))
	for _, sub := range category.Subcategories {
		subs = append(subs, SubcategoryDTO{
			ID:            sub.ID,
			CategoryID:    sub.CategoryID,
			Name:          sub.Name,
			Slug:          sub.Slug,
			Description:   sub.Description,
			ImageURL:      sub.ImageURL,
			TaxApplicable: sub.TaxApplicable,
			TaxPercentage: sub.TaxPercentage,
		})
	}
	return CategoryDTO{
		ID:            category.ID,
		Name:          category.Name,
		Slug:          category.Slug,
		Description:   category.Description,
		ImageURL:      category.ImageURL,
		TaxApplicable: category.TaxApplicable,
		TaxPercentage: category.TaxPercentage,
		Subcategories: subs,
	}
}

func newItemDTO(item models.MenuItem) ItemDTO {
	dto := ItemDTO{
		ID:           item.ID,
		Name:         item.Name,
		Slug:         item.Slug,
		Description:  item.Description,
		ImageURL:     item.ImageURL,
		PricingType:  item.PricingType.String(),
		StaticPrice:  item.StaticPrice,
		IsBookable:   item.IsBookable,
		IsBestseller: item.IsBestseller,
		IsNew:        item.IsNew,
	}
	if item.Category != nil {
		dto.Category = &ParentRefDTO{ID: item.Category.ID, Name: item.Category.Name, Slug: item.Category.Slug}
	}
	if item.Subcategory != nil {
		dto.Subcategory = &ParentRefDTO{ID: item.Subcategory.ID, Name: item.Subcategory.Name, Slug: item.Subcategory.Slug}
	}
	for _, tier := range item.PriceTiers {
		dto.PriceTiers = append(dto.PriceTiers, PriceTierDTO{ID: tier.ID, UpToHours: tier.UpToHours, Price: tier.Price})
	}
	if item.Discount != nil {
		dto.Discount = &DiscountDTO{
			BasePrice:     item.Discount.BasePrice,
			DiscountType:  item.Discount.DiscountType.String(),
			DiscountValue: item.Discount.DiscountValue,
		}
	}
	for _, window := range item.DynamicWindows {
		dto.DynamicPrices = append(dto.DynamicPrices, DynamicPriceDTO{
			ID:        window.ID,
			StartTime: window.StartTime,
			EndTime:   window.EndTime,
			Price:     window.Price,
		})
	}
	for _, addon := range item.Addons {
		dto.Addons = append(dto.Addons, AddonDTO{
			ID:         addon.ID,
			Name:       addon.Name,
			Price:      addon.Price,
			IsRequired: addon.IsRequired,
			AddonGroup: addon.AddonGroup,
		})
	}
	return dto
}
