package bookings

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mesabook/mesabook-backend/pkg/db/models"
	"github.com/mesabook/mesabook-backend/pkg/enums"
	pkgerrors "github.com/mesabook/mesabook-backend/pkg/errors"
)

func setupBookingsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	// The unique index stands in for the production exclusion constraint so
	// the violation-to-conflict mapping is exercised.
	require.NoError(t, db.Exec(`CREATE TABLE bookings (
  id TEXT PRIMARY KEY,
  item_id TEXT NOT NULL,
  booking_date DATETIME NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT NOT NULL,
  customer_name TEXT NOT NULL,
  customer_email TEXT,
  customer_phone TEXT,
  notes TEXT,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME,
  UNIQUE (item_id, booking_date, start_time)
);`).Error)
	return db
}

func testDay() time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func mustInsertBooking(t *testing.T, repo *Repository, itemID uuid.UUID, start, end string, status enums.BookingStatus) *models.Booking {
	t.Helper()
	created, err := repo.Insert(context.Background(), &models.Booking{
		ItemID:       itemID,
		BookingDate:  testDay(),
		StartTime:    start,
		EndTime:      end,
		CustomerName: "Asha Patel",
		Status:       status,
	})
	require.NoError(t, err)
	return created
}

func TestInsertAssignsIDAndNormalizesDate(t *testing.T) {
	repo := NewRepository(setupBookingsTestDB(t))

	created, err := repo.Insert(context.Background(), &models.Booking{
		ItemID:       uuid.New(),
		BookingDate:  time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "11:00",
		CustomerName: "Asha Patel",
		Status:       enums.BookingStatusConfirmed,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, testDay(), created.BookingDate)
}

func TestListActiveFiltersStatusAndDate(t *testing.T) {
	repo := NewRepository(setupBookingsTestDB(t))
	itemID := uuid.New()

	mustInsertBooking(t, repo, itemID, "09:00", "10:00", enums.BookingStatusPending)
	mustInsertBooking(t, repo, itemID, "10:00", "11:00", enums.BookingStatusConfirmed)
	mustInsertBooking(t, repo, itemID, "11:00", "12:00", enums.BookingStatusCancelled)
	mustInsertBooking(t, repo, uuid.New(), "09:00", "10:00", enums.BookingStatusConfirmed)

	other, err := repo.Insert(context.Background(), &models.Booking{
		ItemID:       itemID,
		BookingDate:  testDay().AddDate(0, 0, 1),
		StartTime:    "09:00",
		EndTime:      "10:00",
		CustomerName: "Asha Patel",
		Status:       enums.BookingStatusConfirmed,
	})
	require.NoError(t, err)
	require.NotNil(t, other)

	active, err := repo.ListActive(context.Background(), itemID, testDay())
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, "09:00", active[0].StartTime)
	require.Equal(t, "10:00", active[1].StartTime)
}

func TestInsertMapsConstraintViolationToConflict(t *testing.T) {
	repo := NewRepository(setupBookingsTestDB(t))
	itemID := uuid.New()

	mustInsertBooking(t, repo, itemID, "10:00", "11:00", enums.BookingStatusConfirmed)

	_, err := repo.Insert(context.Background(), &models.Booking{
		ItemID:       itemID,
		BookingDate:  testDay(),
		StartTime:    "10:00",
		EndTime:      "11:30",
		CustomerName: "Ravi Kumar",
		Status:       enums.BookingStatusConfirmed,
	})
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}

func TestFindByIDAndUpdateStatus(t *testing.T) {
	repo := NewRepository(setupBookingsTestDB(t))
	itemID := uuid.New()

	created := mustInsertBooking(t, repo, itemID, "10:00", "11:00", enums.BookingStatusConfirmed)

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)

	updated, err := repo.UpdateStatus(context.Background(), created.ID, enums.BookingStatusCancelled)
	require.NoError(t, err)
	require.Equal(t, enums.BookingStatusCancelled, updated.Status)

	active, err := repo.ListActive(context.Background(), itemID, testDay())
	require.NoError(t, err)
	require.Empty(t, active, "cancelled booking must release its slot")

	_, err = repo.FindByID(context.Background(), uuid.New())
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
