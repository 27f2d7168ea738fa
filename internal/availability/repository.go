package availability

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mesabook/mesabook-backend/pkg/db/models"
	pkgerrors "github.com/mesabook/mesabook-backend/pkg/errors"
)

// Repository reads availability templates.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds an availability repository bound to the given DB handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// TemplatesForDay returns an item's open windows for one weekday in insertion
// order. Zero rows means the item is closed that day.
func (r *Repository) TemplatesForDay(ctx context.Context, itemID uuid.UUID, dayOfWeek int) ([]models.AvailabilityTemplate, error) {
	var templates []models.AvailabilityTemplate
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND day_of_week = ?", itemID, dayOfWeek).
		Order("created_at ASC").
		Find(&templates).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load availability templates")
	}
	return templates, nil
}
