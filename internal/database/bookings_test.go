package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ampedent/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	logger := zerolog.Nop()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testBooking(first, last, slot string, date time.Time) *models.Booking {
	return &models.Booking{
		FirstName: first,
		LastName:  last,
		Email:     first + "@example.com",
		Phone:     "555-0100",
		Date:      date,
		Time:      slot,
	}
}

func TestCreateAndGetBooking(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	date := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC) // a Monday
	b := testBooking("Ann", "Lee", "09:00", date)
	b.Message = "first visit"

	require.NoError(t, db.CreateBooking(ctx, b))
	assert.NotZero(t, b.ID)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.False(t, b.CreatedAt.IsZero())

	got, err := db.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, "09:00", got.Time)
	assert.Equal(t, "first visit", got.Message)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, "2030-06-03", got.Date.Format("2006-01-02"))
}

func TestGetBookingNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetBooking(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListBookingsPagination(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	date := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)

	// 10 pending + 2 confirmed.
	for i := 0; i < 10; i++ {
		b := testBooking("Pending", "Visitor", "09:00", date.AddDate(0, 0, i))
		require.NoError(t, db.CreateBooking(ctx, b))
	}
	for i := 0; i < 2; i++ {
		b := testBooking("Confirmed", "Visitor", "10:00", date.AddDate(0, 0, i))
		require.NoError(t, db.CreateBooking(ctx, b))
		require.NoError(t, db.UpdateBookingStatus(ctx, b.ID, models.StatusConfirmed))
	}

	// Status filter: ceil(10/9) = 2 pages, 9 items on page 1.
	items, totalPages, err := db.ListBookings(ctx, ListFilter{Status: "pending", Page: 1})
	require.NoError(t, err)
	assert.Len(t, items, 9)
	assert.Equal(t, 2, totalPages)

	items, _, err = db.ListBookings(ctx, ListFilter{Status: "pending", Page: 2})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// "all" disables the filter: 12 rows, 2 pages.
	items, totalPages, err = db.ListBookings(ctx, ListFilter{Status: "all", Page: 1})
	require.NoError(t, err)
	assert.Len(t, items, 9)
	assert.Equal(t, 2, totalPages)
}

func TestListBookingsOrdering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	date := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)

	early := testBooking("Early", "Confirmed", "09:00", date)
	require.NoError(t, db.CreateBooking(ctx, early))
	require.NoError(t, db.UpdateBookingStatus(ctx, early.ID, models.StatusConfirmed))

	late := testBooking("Late", "Pending", "10:00", date.AddDate(0, 0, 2))
	require.NoError(t, db.CreateBooking(ctx, late))

	sameDay := testBooking("SameDay", "Pending", "11:00", date.AddDate(0, 0, 2))
	require.NoError(t, db.CreateBooking(ctx, sameDay))

	items, _, err := db.ListBookings(ctx, ListFilter{Page: 1})
	require.NoError(t, err)
	require.Len(t, items, 3)

	// status DESC groups pending ahead of confirmed; date then time
	// ascending break ties.
	assert.Equal(t, "Late", items[0].FirstName)
	assert.Equal(t, "SameDay", items[1].FirstName)
	assert.Equal(t, "Early", items[2].FirstName)
}

func TestListBookingsSearch(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	date := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)

	smith := testBooking("John", "Smith", "09:00", date)
	require.NoError(t, db.CreateBooking(ctx, smith))

	byEmail := testBooking("Jane", "Doe", "10:00", date)
	byEmail.Email = "contact@smithdental.com"
	require.NoError(t, db.CreateBooking(ctx, byEmail))

	other := testBooking("Bob", "Jones", "11:00", date)
	require.NoError(t, db.CreateBooking(ctx, other))

	items, _, err := db.ListBookings(ctx, ListFilter{Search: "SMITH", Page: 1})
	require.NoError(t, err)
	require.Len(t, items, 2, "search must match last name and email case-insensitively")
	for _, b := range items {
		assert.NotEqual(t, "Jones", b.LastName)
	}
}

func TestCancelIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	b := testBooking("Ann", "Lee", "09:00", time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.CreateBooking(ctx, b))

	require.NoError(t, db.UpdateBookingStatus(ctx, b.ID, models.StatusCanceled))
	require.NoError(t, db.UpdateBookingStatus(ctx, b.ID, models.StatusCanceled))

	got, err := db.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, got.Status)
}

func TestRescheduleResetsStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	b := testBooking("Ann", "Lee", "09:00", time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.CreateBooking(ctx, b))
	require.NoError(t, db.UpdateBookingStatus(ctx, b.ID, models.StatusConfirmed))

	newDate := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.RescheduleBooking(ctx, b.ID, newDate, "14:00"))

	got, err := db.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, "14:00", got.Time)
	assert.Equal(t, "2030-06-10", got.Date.Format("2006-01-02"))
}

func TestBookedTimes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	day := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)

	active := testBooking("Active", "One", "09:00", day)
	require.NoError(t, db.CreateBooking(ctx, active))

	confirmed := testBooking("Active", "Two", "10:00", day)
	require.NoError(t, db.CreateBooking(ctx, confirmed))
	require.NoError(t, db.UpdateBookingStatus(ctx, confirmed.ID, models.StatusConfirmed))

	canceled := testBooking("Canceled", "Three", "11:00", day)
	require.NoError(t, db.CreateBooking(ctx, canceled))
	require.NoError(t, db.UpdateBookingStatus(ctx, canceled.ID, models.StatusCanceled))

	otherDay := testBooking("Other", "Day", "12:00", day.AddDate(0, 0, 1))
	require.NoError(t, db.CreateBooking(ctx, otherDay))

	times, err := db.BookedTimes(ctx, day)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"09:00", "10:00"}, times,
		"canceled bookings and other days must not occupy slots")
}
