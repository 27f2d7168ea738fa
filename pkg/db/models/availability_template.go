package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityTemplate pins an item's open window to a weekday
// (0 = Sunday through 6 = Saturday). An item may carry several templates for
// the same weekday; each is expanded into candidate slots independently.
type AvailabilityTemplate struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ItemID    uuid.UUID `gorm:"column:item_id;type:uuid;not null;index"`
	DayOfWeek int       `gorm:"column:day_of_week;not null"`
	StartTime string    `gorm:"column:start_time;not null"`
	EndTime   string    `gorm:"column:end_time;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
