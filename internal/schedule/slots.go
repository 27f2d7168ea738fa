package schedule

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mesabook/mesabook-backend/pkg/errors"
)

var clockPattern = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):([0-5][0-9])$`)

// Slot is one bookable window inside an availability template.
type Slot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ParseClock converts a zero-padded "HH:MM" string to minutes since midnight.
func ParseClock(value string) (int, error) {
	m := clockPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, errors.New(errors.CodeValidation, fmt.Sprintf("invalid time %q, expected HH:MM", value))
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// FormatClock renders minutes since midnight as a zero-padded "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateSlots splits the [start, end) window into consecutive slots of
// intervalMinutes each. A trailing window shorter than the interval is
// dropped. An inverted or empty window yields no slots.
func GenerateSlots(start, end string, intervalMinutes int) ([]Slot, error) {
	if intervalMinutes <= 0 {
		return nil, errors.New(errors.CodeValidation, "slot interval must be positive")
	}
	startMin, err := ParseClock(start)
	if err != nil {
		return nil, err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return nil, err
	}

	slots := []Slot{}
	for cursor := startMin; cursor+intervalMinutes <= endMin; cursor += intervalMinutes {
		slots = append(slots, Slot{
			StartTime: FormatClock(cursor),
			EndTime:   FormatClock(cursor + intervalMinutes),
		})
	}
	return slots, nil
}
