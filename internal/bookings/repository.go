package bookings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mesabook/mesabook-backend/pkg/db"
	"github.com/mesabook/mesabook-backend/pkg/db/models"
	"github.com/mesabook/mesabook-backend/pkg/enums"
	pkgerrors "github.com/mesabook/mesabook-backend/pkg/errors"
)

// Repository persists and reads bookings.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a booking repository bound to the given DB handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// dateOnly normalizes a timestamp to its calendar date so the booking_date
// column compares consistently across drivers.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ListActive returns the pending/confirmed bookings for an item on a date,
// ordered by start time. Cancelled and completed rows do not hold slots.
func (r *Repository) ListActive(ctx context.Context, itemID uuid.UUID, date time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND booking_date = ? AND status IN ?", itemID, dateOnly(date), enums.ActiveBookingStatuses()).
		Order("start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list active bookings")
	}
	return bookings, nil
}

// Insert writes one booking row. The bookings_no_overlap exclusion constraint
// is the final authority against double booking; its violation surfaces as a
// conflict, same as losing the race to a concurrent insert.
func (r *Repository) Insert(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	booking.BookingDate = dateOnly(booking.BookingDate)

	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		if db.IsExclusionViolation(err) || db.IsUniqueViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "this time slot is already booked")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "insert booking")
	}
	return booking, nil
}

// FindByID loads one booking.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load booking")
	}
	return &booking, nil
}

// UpdateStatus persists a status transition. Reactivating a booking can trip
// the overlap constraint if the slot was taken in the meantime.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus) (*models.Booking, error) {
	booking, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	booking.Status = status
	if err := r.db.WithContext(ctx).Model(booking).Update("status", status).Error; err != nil {
		if db.IsExclusionViolation(err) || db.IsUniqueViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "this time slot is already booked")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update booking status")
	}
	return booking, nil
}
