package bookings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesabook/mesabook-backend/internal/schedule"
	"github.com/mesabook/mesabook-backend/pkg/db/models"
	"github.com/mesabook/mesabook-backend/pkg/enums"
	pkgerrors "github.com/mesabook/mesabook-backend/pkg/errors"
	"github.com/mesabook/mesabook-backend/pkg/logger"
	"github.com/mesabook/mesabook-backend/pkg/metrics"
	"github.com/mesabook/mesabook-backend/pkg/redis"
)

const dateLayout = "2006-01-02"

// Service admits, lists, and transitions bookings.
type Service interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingDTO, error)
	ListForItem(ctx context.Context, itemID uuid.UUID, date string) ([]BookingDTO, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status enums.BookingStatus) (*BookingDTO, error)
}

// CreateBookingInput holds the validated admission payload.
type CreateBookingInput struct {
	ItemID        uuid.UUID
	BookingDate   string
	StartTime     string
	EndTime       string
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Notes         *string
}

type itemLoader interface {
	HydratedItem(ctx context.Context, itemID uuid.UUID) (*models.MenuItem, error)
}

type cacheInvalidator interface {
	Del(ctx context.Context, keys ...string) error
}

type service struct {
	repo    *Repository
	items   itemLoader
	cache   cacheInvalidator
	metrics *metrics.EngineMetrics
	log     *logger.Logger
	now     func() time.Time
}

// NewService constructs a booking service instance. The cache invalidator is
// optional.
func NewService(repo *Repository, items itemLoader, cache cacheInvalidator, engineMetrics *metrics.EngineMetrics, log *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("booking repository required")
	}
	if items == nil {
		return nil, fmt.Errorf("item loader required")
	}
	return &service{
		repo:    repo,
		items:   items,
		cache:   cache,
		metrics: engineMetrics,
		log:     log,
		now:     time.Now,
	}, nil
}

// CreateBooking runs the fail-fast admission chain and persists the booking as
// confirmed. The in-process conflict check is a fast path; the database
// exclusion constraint settles concurrent races.
func (s *service) CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingDTO, error) {
	if input.ItemID == uuid.Nil || input.BookingDate == "" || input.StartTime == "" || input.EndTime == "" || input.CustomerName == "" {
		s.metrics.IncRejected("missing_fields")
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			"missing required fields: item_id, booking_date, start_time, end_time, customer_name")
	}

	name := strings.TrimSpace(input.CustomerName)
	if name == "" {
		s.metrics.IncRejected("blank_name")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name cannot be empty")
	}

	day, err := time.Parse(dateLayout, input.BookingDate)
	if err != nil {
		s.metrics.IncRejected("bad_date")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "booking_date must be formatted YYYY-MM-DD")
	}
	today := s.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		s.metrics.IncRejected("past_date")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot book for past dates")
	}

	if _, err := schedule.ParseClock(input.StartTime); err != nil {
		s.metrics.IncRejected("bad_window")
		return nil, err
	}
	if _, err := schedule.ParseClock(input.EndTime); err != nil {
		s.metrics.IncRejected("bad_window")
		return nil, err
	}
	if input.StartTime >= input.EndTime {
		s.metrics.IncRejected("bad_window")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "start_time must be before end_time")
	}

	item, err := s.items.HydratedItem(ctx, input.ItemID)
	if err != nil {
		s.metrics.IncRejected("item_missing")
		return nil, err
	}
	if !item.IsBookable {
		s.metrics.IncRejected("not_bookable")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "this item is not bookable")
	}

	existing, err := s.repo.ListActive(ctx, input.ItemID, day)
	if err != nil {
		return nil, err
	}
	for _, booking := range existing {
		if schedule.Overlaps(input.StartTime, input.EndTime, booking.StartTime, booking.EndTime) {
			s.metrics.IncConflict()
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "this time slot is already booked")
		}
	}

	booking := &models.Booking{
		ItemID:        input.ItemID,
		BookingDate:   day,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		CustomerName:  name,
		CustomerEmail: trimOptional(input.CustomerEmail),
		CustomerPhone: trimOptional(input.CustomerPhone),
		Notes:         trimOptional(input.Notes),
		Status:        enums.BookingStatusConfirmed,
	}
	created, err := s.repo.Insert(ctx, booking)
	if err != nil {
		if pkgerrors.As(err).Code() == pkgerrors.CodeConflict {
			s.metrics.IncConflict()
		}
		return nil, err
	}

	s.metrics.IncAdmitted()
	s.invalidateDay(ctx, created.ItemID, input.BookingDate)
	if s.log != nil {
		s.log.Info(s.log.WithBookingID(ctx, created.ID.String()), "booking admitted")
	}

	dto := newBookingDTO(*created)
	return &dto, nil
}

// ListForItem returns the active bookings for an item on a date.
func (s *service) ListForItem(ctx context.Context, itemID uuid.UUID, date string) ([]BookingDTO, error) {
	if date == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date parameter is required (YYYY-MM-DD)")
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date must be formatted YYYY-MM-DD")
	}
	if _, err := s.items.HydratedItem(ctx, itemID); err != nil {
		return nil, err
	}

	bookings, err := s.repo.ListActive(ctx, itemID, day)
	if err != nil {
		return nil, err
	}
	dtos := make([]BookingDTO, 0, len(bookings))
	for _, booking := range bookings {
		dtos = append(dtos, newBookingDTO(booking))
	}
	return dtos, nil
}

// UpdateStatus applies a lifecycle transition. Illegal moves are state
// conflicts, not validation failures, so clients can distinguish a stale view
// of the booking from a malformed request.
func (s *service) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status enums.BookingStatus) (*BookingDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid booking status")
	}
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(status) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, status))
	}

	updated, err := s.repo.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	s.invalidateDay(ctx, updated.ItemID, updated.BookingDate.Format(dateLayout))

	dto := newBookingDTO(*updated)
	return &dto, nil
}

func (s *service) invalidateDay(ctx context.Context, itemID uuid.UUID, date string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, redis.AvailabilityKey(itemID.String(), date)); err != nil && s.log != nil {
		s.log.Warn(ctx, "availability cache invalidation failed: "+err.Error())
	}
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
