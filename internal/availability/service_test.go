package availability

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mesabook/mesabook-backend/pkg/db/models"
	"github.com/mesabook/mesabook-backend/pkg/enums"
	pkgerrors "github.com/mesabook/mesabook-backend/pkg/errors"
	"github.com/mesabook/mesabook-backend/pkg/redis"
)

type stubItems struct {
	item *models.MenuItem
	err  error
}

func (s *stubItems) HydratedItem(context.Context, uuid.UUID) (*models.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

type stubTemplates struct {
	templates []models.AvailabilityTemplate
	gotDay    int
}

func (s *stubTemplates) TemplatesForDay(_ context.Context, _ uuid.UUID, dayOfWeek int) ([]models.AvailabilityTemplate, error) {
	s.gotDay = dayOfWeek
	return s.templates, nil
}

type stubBookings struct {
	bookings []models.Booking
}

func (s *stubBookings) ListActive(context.Context, uuid.UUID, time.Time) ([]models.Booking, error) {
	return s.bookings, nil
}

type memoryCache struct {
	entries map[string][]byte
	hits    int
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, dest any) error {
	raw, ok := m.entries[key]
	if !ok {
		return redis.ErrCacheMiss
	}
	m.hits++
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	m.sets++
	return nil
}

func bookableItem() *models.MenuItem {
	return &models.MenuItem{ID: uuid.New(), Name: "Conference Room", IsBookable: true, PricingType: enums.PricingTypeStatic}
}

// 2024-06-01 is a Saturday.
const testDate = "2024-06-01"

func newTestService(t *testing.T, items itemLoader, templates templateLister, bookings bookingLister, cache dayCache) Service {
	t.Helper()
	svc, err := NewService(items, templates, bookings, cache, nil, Config{SlotIntervalMinutes: 60, CacheTTL: 30 * time.Second})
	require.NoError(t, err)
	return svc
}

func TestItemAvailabilityMarksBookedSlots(t *testing.T) {
	item := bookableItem()
	templates := &stubTemplates{templates: []models.AvailabilityTemplate{
		{ItemID: item.ID, DayOfWeek: 6, StartTime: "09:00", EndTime: "12:00"},
	}}
	bookings := &stubBookings{bookings: []models.Booking{
		{ItemID: item.ID, StartTime: "10:00", EndTime: "11:00", Status: enums.BookingStatusConfirmed},
	}}

	svc := newTestService(t, &stubItems{item: item}, templates, bookings, nil)
	got, err := svc.ItemAvailability(context.Background(), item.ID, testDate)
	require.NoError(t, err)

	require.Equal(t, 6, got.DayOfWeek)
	require.Equal(t, 6, templates.gotDay)
	require.True(t, got.Available)
	require.Len(t, got.Slots, 3)
	require.True(t, got.Slots[0].Available, "09:00-10:00 is free")
	require.False(t, got.Slots[1].Available, "10:00-11:00 is booked")
	require.True(t, got.Slots[2].Available, "11:00-12:00 touches but does not overlap")
}

func TestItemAvailabilityClosedDay(t *testing.T) {
	item := bookableItem()
	svc := newTestService(t, &stubItems{item: item}, &stubTemplates{}, &stubBookings{}, nil)

	got, err := svc.ItemAvailability(context.Background(), item.ID, testDate)
	require.NoError(t, err)
	require.False(t, got.Available)
	require.Empty(t, got.Slots)
	require.NotNil(t, got.Slots, "closed day serializes as an empty list, not null")
}

func TestItemAvailabilityMultipleTemplatesConcatenate(t *testing.T) {
	item := bookableItem()
	templates := &stubTemplates{templates: []models.AvailabilityTemplate{
		{ItemID: item.ID, DayOfWeek: 6, StartTime: "09:00", EndTime: "11:00"},
		{ItemID: item.ID, DayOfWeek: 6, StartTime: "10:00", EndTime: "12:00"},
	}}

	svc := newTestService(t, &stubItems{item: item}, templates, &stubBookings{}, nil)
	got, err := svc.ItemAvailability(context.Background(), item.ID, testDate)
	require.NoError(t, err)

	// Overlapping candidates from independent templates are kept as-is.
	require.Len(t, got.Slots, 4)
	require.Equal(t, "10:00", got.Slots[1].StartTime)
	require.Equal(t, "10:00", got.Slots[2].StartTime)
}

func TestItemAvailabilityValidation(t *testing.T) {
	item := bookableItem()
	svc := newTestService(t, &stubItems{item: item}, &stubTemplates{}, &stubBookings{}, nil)

	_, err := svc.ItemAvailability(context.Background(), item.ID, "")
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.ItemAvailability(context.Background(), item.ID, "06/01/2024")
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	notBookable := &models.MenuItem{ID: uuid.New(), Name: "Espresso", IsBookable: false}
	svc = newTestService(t, &stubItems{item: notBookable}, &stubTemplates{}, &stubBookings{}, nil)
	_, err = svc.ItemAvailability(context.Background(), notBookable.ID, testDate)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	missing := &stubItems{err: pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")}
	svc = newTestService(t, missing, &stubTemplates{}, &stubBookings{}, nil)
	_, err = svc.ItemAvailability(context.Background(), uuid.New(), testDate)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestItemAvailabilityUsesCache(t *testing.T) {
	item := bookableItem()
	templates := &stubTemplates{templates: []models.AvailabilityTemplate{
		{ItemID: item.ID, DayOfWeek: 6, StartTime: "09:00", EndTime: "10:00"},
	}}
	cache := newMemoryCache()

	svc := newTestService(t, &stubItems{item: item}, templates, &stubBookings{}, cache)

	first, err := svc.ItemAvailability(context.Background(), item.ID, testDate)
	require.NoError(t, err)
	require.Equal(t, 1, cache.sets)

	second, err := svc.ItemAvailability(context.Background(), item.ID, testDate)
	require.NoError(t, err)
	require.Equal(t, 1, cache.hits)
	require.Equal(t, first.Slots, second.Slots)
}
