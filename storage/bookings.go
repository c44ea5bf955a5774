package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// CachedBooking is one row of the local booking-history cache, refreshed
// from the backend's booking list for the logged-in user.
type CachedBooking struct {
	ID          int    `json:"id"`
	ComplexName string `json:"complex_name"`
	TargetType  string `json:"target_type"`
	TargetName  string `json:"target_name"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Amount      int    `json:"amount"`
	Status      string `json:"status"`
	SyncedAt    string `json:"synced_at"`
}

// CachedBookingFilter narrows a local listing by date range relative to
// NowDate (YYYY-MM-DD).
type CachedBookingFilter struct {
	Upcoming bool
	Past     bool
	NowDate  string
}

func OpenBookingsDB() (*sql.DB, error) {
	if _, err := ensureConfigDir(); err != nil {
		return nil, err
	}
	path, err := BookingsPath()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := ensureBookingsSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func ensureBookingsSchema(db *sql.DB) error {
	createTable := `
CREATE TABLE IF NOT EXISTS bookings (
  id INTEGER PRIMARY KEY,
  complex_name TEXT,
  target_type TEXT,
  target_name TEXT,
  booking_date TEXT,
  start_time TEXT,
  end_time TEXT,
  amount INTEGER,
  status TEXT,
  synced_at TEXT
);`

	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}

	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings(booking_date);"); err != nil {
		return fmt.Errorf("create bookings index: %w", err)
	}

	return nil
}

// UpsertBooking writes one cached booking, replacing any prior row for
// the same id so repeated syncs pick up status changes.
func UpsertBooking(db *sql.DB, booking CachedBooking) error {
	query := `
INSERT OR REPLACE INTO bookings (
  id, complex_name, target_type, target_name, booking_date, start_time, end_time, amount, status, synced_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	_, err := db.Exec(
		query,
		booking.ID,
		booking.ComplexName,
		booking.TargetType,
		booking.TargetName,
		booking.BookingDate,
		booking.StartTime,
		booking.EndTime,
		booking.Amount,
		booking.Status,
		booking.SyncedAt,
	)
	return err
}

// SyncBooking refreshes a cached booking from the backend's listing. The
// listing payload carries no amount, so the amount column is written only
// on first insert and left untouched for rows that already exist; the
// amount recorded at booking time survives every sync.
func SyncBooking(db *sql.DB, booking CachedBooking) error {
	query := `
INSERT INTO bookings (
  id, complex_name, target_type, target_name, booking_date, start_time, end_time, amount, status, synced_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  complex_name = excluded.complex_name,
  target_type = excluded.target_type,
  target_name = excluded.target_name,
  booking_date = excluded.booking_date,
  start_time = excluded.start_time,
  end_time = excluded.end_time,
  status = excluded.status,
  synced_at = excluded.synced_at;`

	_, err := db.Exec(
		query,
		booking.ID,
		booking.ComplexName,
		booking.TargetType,
		booking.TargetName,
		booking.BookingDate,
		booking.StartTime,
		booking.EndTime,
		booking.Amount,
		booking.Status,
		booking.SyncedAt,
	)
	return err
}

func RemoveCachedBooking(db *sql.DB, id int) (bool, error) {
	res, err := db.Exec("DELETE FROM bookings WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func ClearCachedBookings(db *sql.DB) error {
	_, err := db.Exec("DELETE FROM bookings")
	return err
}

func ListCachedBookings(db *sql.DB, filter CachedBookingFilter) ([]CachedBooking, error) {
	base := `
SELECT id, complex_name, target_type, target_name, booking_date, start_time, end_time, amount, status, synced_at
FROM bookings`

	conds := []string{}
	args := []any{}

	if filter.Upcoming && filter.NowDate != "" {
		conds = append(conds, "booking_date >= ?")
		args = append(args, filter.NowDate)
	}
	if filter.Past && filter.NowDate != "" {
		conds = append(conds, "booking_date < ?")
		args = append(args, filter.NowDate)
	}

	query := base
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY booking_date, start_time"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []CachedBooking{}
	for rows.Next() {
		var booking CachedBooking
		var amount sql.NullInt64
		if err := rows.Scan(
			&booking.ID,
			&booking.ComplexName,
			&booking.TargetType,
			&booking.TargetName,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.EndTime,
			&amount,
			&booking.Status,
			&booking.SyncedAt,
		); err != nil {
			return nil, err
		}
		if amount.Valid {
			booking.Amount = int(amount.Int64)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
