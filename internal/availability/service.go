package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesabook/mesabook-backend/internal/schedule"
	"github.com/mesabook/mesabook-backend/pkg/db/models"
	pkgerrors "github.com/mesabook/mesabook-backend/pkg/errors"
	"github.com/mesabook/mesabook-backend/pkg/metrics"
	"github.com/mesabook/mesabook-backend/pkg/redis"
)

const dateLayout = "2006-01-02"

// Service answers "which slots are free for item I on day D".
type Service interface {
	ItemAvailability(ctx context.Context, itemID uuid.UUID, date string) (*DayAvailabilityDTO, error)
}

type itemLoader interface {
	HydratedItem(ctx context.Context, itemID uuid.UUID) (*models.MenuItem, error)
}

type templateLister interface {
	TemplatesForDay(ctx context.Context, itemID uuid.UUID, dayOfWeek int) ([]models.AvailabilityTemplate, error)
}

type bookingLister interface {
	ListActive(ctx context.Context, itemID uuid.UUID, date time.Time) ([]models.Booking, error)
}

type dayCache interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Config tunes slot granularity and cache lifetime.
type Config struct {
	SlotIntervalMinutes int
	CacheTTL            time.Duration
}

type service struct {
	items     itemLoader
	templates templateLister
	bookings  bookingLister
	cache     dayCache
	metrics   *metrics.EngineMetrics
	cfg       Config
	now       func() time.Time
}

// NewService constructs an availability service instance. The cache is
// optional; pass nil to compute every request.
func NewService(items itemLoader, templates templateLister, bookings bookingLister, cache dayCache, engineMetrics *metrics.EngineMetrics, cfg Config) (Service, error) {
	if items == nil {
		return nil, fmt.Errorf("item loader required")
	}
	if templates == nil {
		return nil, fmt.Errorf("template repository required")
	}
	if bookings == nil {
		return nil, fmt.Errorf("booking repository required")
	}
	if cfg.SlotIntervalMinutes <= 0 {
		cfg.SlotIntervalMinutes = 60
	}
	return &service{
		items:     items,
		templates: templates,
		bookings:  bookings,
		cache:     cache,
		metrics:   engineMetrics,
		cfg:       cfg,
		now:       time.Now,
	}, nil
}

// ItemAvailability expands the item's weekday templates into slots and marks
// each one against the day's active bookings. A day with no templates is a
// valid closed day, not an error.
func (s *service) ItemAvailability(ctx context.Context, itemID uuid.UUID, date string) (*DayAvailabilityDTO, error) {
	if date == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date parameter is required (YYYY-MM-DD)")
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date must be formatted YYYY-MM-DD")
	}

	item, err := s.items.HydratedItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsBookable {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "this item is not bookable")
	}

	cacheKey := redis.AvailabilityKey(itemID.String(), date)
	if s.cache != nil {
		var cached DayAvailabilityDTO
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	started := s.now()
	dto, err := s.compute(ctx, item, day, date)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveAvailability(s.now().Sub(started))

	if s.cache != nil && s.cfg.CacheTTL > 0 {
		// Cache write failures degrade to recomputation on the next request.
		_ = s.cache.SetJSON(ctx, cacheKey, dto, s.cfg.CacheTTL)
	}
	return dto, nil
}

func (s *service) compute(ctx context.Context, item *models.MenuItem, day time.Time, date string) (*DayAvailabilityDTO, error) {
	dayOfWeek := int(day.Weekday())
	dto := &DayAvailabilityDTO{
		ItemID:    item.ID,
		ItemName:  item.Name,
		Date:      date,
		DayOfWeek: dayOfWeek,
		Slots:     []SlotDTO{},
	}

	templates, err := s.templates.TemplatesForDay(ctx, item.ID, dayOfWeek)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return dto, nil
	}

	existing, err := s.bookings.ListActive(ctx, item.ID, day)
	if err != nil {
		return nil, err
	}

	for _, template := range templates {
		slots, err := schedule.GenerateSlots(template.StartTime, template.EndTime, s.cfg.SlotIntervalMinutes)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "expand availability template")
		}
		for _, slot := range slots {
			free := true
			for _, booking := range existing {
				if schedule.Overlaps(slot.StartTime, slot.EndTime, booking.StartTime, booking.EndTime) {
					free = false
					break
				}
			}
			dto.Slots = append(dto.Slots, SlotDTO{StartTime: slot.StartTime, EndTime: slot.EndTime, Available: free})
			if free {
				dto.Available = true
			}
		}
	}
	return dto, nil
}
