package bookings

import (
	"time"

	"github.com/google/uuid"

	"github.com/mesabook/mesabook-backend/pkg/db/models"
)

// BookingDTO represents a booking payload returned to clients.
type BookingDTO struct {
	ID            uuid.UUID `json:"id"`
	ItemID        uuid.UUID `json:"item_id"`
	BookingDate   string    `json:"booking_date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail *string   `json:"customer_email,omitempty"`
	CustomerPhone *string   `json:"customer_phone,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func newBookingDTO(booking models.Booking) BookingDTO {
	return BookingDTO{
		ID:            booking.ID,
		ItemID:        booking.ItemID,
		BookingDate:   booking.BookingDate.Format("2006-01-02"),
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		CustomerPhone: booking.CustomerPhone,
		Notes:         booking.Notes,
		Status:        booking.Status.String(),
		CreatedAt:     booking.CreatedAt,
	}
}
