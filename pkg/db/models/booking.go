package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mesabook/mesabook-backend/pkg/enums"
)

// Booking holds a time slot for an item on a date. Times are HH:MM strings
// compared as half-open intervals. Rows are only mutated by status transition;
// the bookings_no_overlap exclusion constraint in the schema is the final
// authority against double booking, the service-level check is the fast path.
type Booking struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ItemID        uuid.UUID           `gorm:"column:item_id;type:uuid;not null;index:idx_bookings_item_date"`
	BookingDate   time.Time           `gorm:"column:booking_date;type:date;not null;index:idx_bookings_item_date"`
	StartTime     string              `gorm:"column:start_time;not null"`
	EndTime       string              `gorm:"column:end_time;not null"`
	CustomerName  string              `gorm:"column:customer_name;not null"`
	CustomerEmail *string             `gorm:"column:customer_email"`
	CustomerPhone *string             `gorm:"column:customer_phone"`
	Notes         *string             `gorm:"column:notes"`
	Status        enums.BookingStatus `gorm:"column:status;type:booking_status;not null;default:'pending'"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
