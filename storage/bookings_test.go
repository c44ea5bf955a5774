package storage

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT OR REPLACE INTO bookings")).
		WithArgs(42, "San A", "pitch", "Pitch 3", "2026-09-02", "18:00:00", "19:00:00", 400000, "pending", "2026-09-01T10:00:00Z").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = UpsertBooking(db, CachedBooking{
		ID:          42,
		ComplexName: "San A",
		TargetType:  "pitch",
		TargetName:  "Pitch 3",
		BookingDate: "2026-09-02",
		StartTime:   "18:00:00",
		EndTime:     "19:00:00",
		Amount:      400000,
		Status:      "pending",
		SyncedAt:    "2026-09-01T10:00:00Z",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCachedBookingsUpcoming(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "complex_name", "target_type", "target_name", "booking_date",
		"start_time", "end_time", "amount", "status", "synced_at",
	}).AddRow(42, "San A", "pitch", "Pitch 3", "2026-09-02", "18:00:00", "19:00:00", 400000, "pending", "2026-09-01T10:00:00Z")

	mock.ExpectQuery("booking_date >= \\?").
		WithArgs("2026-09-01").
		WillReturnRows(rows)

	bookings, err := ListCachedBookings(db, CachedBookingFilter{Upcoming: true, NowDate: "2026-09-01"})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, 42, bookings[0].ID)
	assert.Equal(t, 400000, bookings[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCachedBookingsPast(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "complex_name", "target_type", "target_name", "booking_date",
		"start_time", "end_time", "amount", "status", "synced_at",
	})

	mock.ExpectQuery("booking_date < \\?").
		WithArgs("2026-09-01").
		WillReturnRows(rows)

	bookings, err := ListCachedBookings(db, CachedBookingFilter{Past: true, NowDate: "2026-09-01"})
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCachedBookingsNullAmount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "complex_name", "target_type", "target_name", "booking_date",
		"start_time", "end_time", "amount", "status", "synced_at",
	}).AddRow(7, "San B", "group", "Full field", "2026-08-20", "20:00:00", "21:00:00", nil, "completed", "2026-09-01T10:00:00Z")

	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	bookings, err := ListCachedBookings(db, CachedBookingFilter{})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Zero(t, bookings[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveCachedBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = ?")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = ?")).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := RemoveCachedBooking(db, 42)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = RemoveCachedBooking(db, 99)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncBookingKeepsAmount(t *testing.T) {
	t.Setenv("DATSAN_CONFIG_DIR", t.TempDir())

	db, err := OpenBookingsDB()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, UpsertBooking(db, CachedBooking{
		ID:          42,
		ComplexName: "San A",
		TargetType:  "pitch",
		TargetName:  "Pitch 3",
		BookingDate: "2026-09-02",
		StartTime:   "18:00:00",
		EndTime:     "19:00:00",
		Amount:      400000,
		Status:      "pending",
		SyncedAt:    "2026-09-01T10:00:00Z",
	}))

	// The backend's listing carries no amount; syncing the same booking
	// must not wipe the amount recorded at booking time.
	require.NoError(t, SyncBooking(db, CachedBooking{
		ID:          42,
		ComplexName: "San A",
		TargetType:  "pitch",
		TargetName:  "Pitch 3",
		BookingDate: "2026-09-02",
		StartTime:   "18:00:00",
		EndTime:     "19:00:00",
		Status:      "confirmed",
		SyncedAt:    "2026-09-01T11:00:00Z",
	}))

	bookings, err := ListCachedBookings(db, CachedBookingFilter{})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, 400000, bookings[0].Amount)
	assert.Equal(t, "confirmed", bookings[0].Status)
	assert.Equal(t, "2026-09-01T11:00:00Z", bookings[0].SyncedAt)

	// A booking never seen before still inserts.
	require.NoError(t, SyncBooking(db, CachedBooking{
		ID:          43,
		ComplexName: "San B",
		BookingDate: "2026-09-03",
		Status:      "pending",
		SyncedAt:    "2026-09-01T11:00:00Z",
	}))

	bookings, err = ListCachedBookings(db, CachedBookingFilter{})
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestBookingsRoundTripSQLite(t *testing.T) {
	t.Setenv("DATSAN_CONFIG_DIR", t.TempDir())

	db, err := OpenBookingsDB()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, UpsertBooking(db, CachedBooking{
		ID:          1,
		ComplexName: "San A",
		TargetType:  "pitch",
		TargetName:  "Pitch 1",
		BookingDate: "2026-09-05",
		StartTime:   "18:00:00",
		EndTime:     "19:00:00",
		Amount:      250000,
		Status:      "pending",
		SyncedAt:    "2026-09-01T10:00:00Z",
	}))

	// Replacing the same id updates in place.
	require.NoError(t, UpsertBooking(db, CachedBooking{
		ID:          1,
		ComplexName: "San A",
		TargetType:  "pitch",
		TargetName:  "Pitch 1",
		BookingDate: "2026-09-05",
		StartTime:   "18:00:00",
		EndTime:     "19:00:00",
		Amount:      250000,
		Status:      "cancelled",
		SyncedAt:    "2026-09-01T11:00:00Z",
	}))

	bookings, err := ListCachedBookings(db, CachedBookingFilter{})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "cancelled", bookings[0].Status)

	require.NoError(t, ClearCachedBookings(db))
	bookings, err = ListCachedBookings(db, CachedBookingFilter{})
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
