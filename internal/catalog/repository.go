package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mesabook/mesabook-backend/pkg/db/models"
	pkgerrors "github.com/mesabook/mesabook-backend/pkg/errors"
	"github.com/mesabook/mesabook-backend/pkg/pagination"
)

// Repository provides read access to the catalog tables.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the given DB handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// ListItemsFilter narrows the item listing. Zero values mean no filter.
type ListItemsFilter struct {
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	Query         string
}

// HydratedItem loads one item with its parents, strategy payloads, and
// addons fully populated. Tiers come back ordered by their hour ceiling.
func (r *Repository) HydratedItem(ctx context.Context, itemID uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Subcategory").
		Preload("PriceTiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("up_to_hours ASC")
		}).
		Preload("Discount").
		Preload("DynamicWindows", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Preload("Addons").
		First(&item, "id = ?", itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load menu item")
	}
	return &item, nil
}

// ItemList is one page of items plus the cursor for the next page. An empty
// NextCursor means the listing is exhausted.
type ItemList struct {
	Items      []models.MenuItem
	NextCursor string
}

// ListItems returns a page of active items matching the filter, hydrated the
// same way as HydratedItem, newest first.
func (r *Repository) ListItems(ctx context.Context, filter ListItemsFilter, params pagination.Params) (*ItemList, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Subcategory").
		Preload("PriceTiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("up_to_hours ASC")
		}).
		Preload("Discount").
		Preload("DynamicWindows", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Preload("Addons").
		Where("is_active = ?", true)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SubcategoryID != nil {
		query = query.Where("subcategory_id = ?", *filter.SubcategoryID)
	}
	if trimmed := strings.TrimSpace(filter.Query); trimmed != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(trimmed)+"%")
	}

	pageSize := pagination.NormalizeLimit(params.Limit)
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	if cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var items []models.MenuItem
	err = query.Order("created_at DESC").Order("id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit)).
		Find(&items).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list menu items")
	}

	nextCursor := ""
	if len(items) > pageSize {
		items = items[:pageSize]
		last := items[len(items)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return &ItemList{Items: items, NextCursor: nextCursor}, nil
}

// ListCategories returns active categories with their active subcategories.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("name ASC")
		}).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	return categories, nil
}
