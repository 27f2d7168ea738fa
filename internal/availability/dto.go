package availability

import "github.com/google/uuid"

// SlotDTO is one candidate booking window with its conflict verdict.
type SlotDTO struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

// DayAvailabilityDTO is the availability payload for one item on one date.
type DayAvailabilityDTO struct {
	ItemID    uuid.UUID `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Date      string    `json:"date"`
	DayOfWeek int       `json:"day_of_week"`
	Available bool      `json:"available"`
	Slots     []SlotDTO `json:"slots"`
}
