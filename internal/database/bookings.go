package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ampedent/internal/models"
)

// PageSize is the fixed number of bookings returned per listing page.
const PageSize = 9

// ListFilter narrows down a booking listing.
type ListFilter struct {
	Status string // exact match; "" or "all" disables the filter
	Search string // case-insensitive substring over name/phone/email
	Page   int    // 1-based
}

// CreateBooking inserts a new pending booking and fills in the
// generated id and creation time.
func (db *DB) CreateBooking(ctx context.Context, b *models.Booking) error {
	now := time.Now()
	res, err := db.ExecContext(ctx, `
		INSERT INTO bookings (first_name, last_name, email, phone, message, date, time, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.FirstName, b.LastName, b.Email, b.Phone, b.Message,
		b.Date, b.Time, models.StatusPending, now,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}

	b.ID = id
	b.Status = models.StatusPending
	b.CreatedAt = now
	return nil
}

// GetBooking returns a booking by id, or ErrNotFound.
func (db *DB) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, phone, message, date, time, status, created_at
		FROM bookings WHERE id = ?`, id)

	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// ListBookings returns one page of bookings matching the filter along
// with the total page count (ceiling division over the match count).
//
// Ordering is status descending, then date and time ascending, which
// with the status strings in use surfaces pending bookings first.
func (db *DB) ListBookings(ctx context.Context, f ListFilter) ([]models.Booking, int, error) {
	where := "1=1"
	var args []any

	if f.Status != "" && f.Status != "all" {
		where += " AND status = ?"
		args = append(args, f.Status)
	}

	if f.Search != "" {
		where += " AND (first_name LIKE ? OR last_name LIKE ? OR phone LIKE ? OR email LIKE ?)"
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}

	var total int
	if err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE "+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	totalPages := (total + PageSize - 1) / PageSize

	page := f.Page
	if page < 1 {
		page = 1
	}
	offset := PageSize * (page - 1)

	rows, err := db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email, phone, message, date, time, status, created_at
		FROM bookings WHERE `+where+`
		ORDER BY status DESC, date ASC, time ASC
		LIMIT ? OFFSET ?`,
		append(args, PageSize, offset)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var out []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, *b)
	}
	return out, totalPages, rows.Err()
}

// UpdateBookingStatus sets the status of a booking. It does not verify
// the prior status; callers go through booking.Apply for that decision.
func (db *DB) UpdateBookingStatus(ctx context.Context, id int64, status models.Status) error {
	if _, err := db.ExecContext(ctx,
		"UPDATE bookings SET status = ? WHERE id = ?", status, id,
	); err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	return nil
}

// RescheduleBooking overwrites date and time and resets the booking to
// pending, regardless of its prior status.
func (db *DB) RescheduleBooking(ctx context.Context, id int64, date time.Time, slot string) error {
	if _, err := db.ExecContext(ctx,
		"UPDATE bookings SET date = ?, time = ?, status = ? WHERE id = ?",
		date, slot, models.StatusPending, id,
	); err != nil {
		return fmt.Errorf("reschedule booking: %w", err)
	}
	return nil
}

// BookedTimes returns the time values of all non-canceled bookings
// whose stored date falls on the given calendar day. Full-day matching
// tolerates both date-only and timestamp storage of the date column.
func (db *DB) BookedTimes(ctx context.Context, day time.Time) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT time FROM bookings
		WHERE date(date) = date(?) AND status != ?`,
		day, models.StatusCanceled,
	)
	if err != nil {
		return nil, fmt.Errorf("booked times: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan time: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (*models.Booking, error) {
	var b models.Booking
	var message sql.NullString
	if err := s.Scan(
		&b.ID, &b.FirstName, &b.LastName, &b.Email, &b.Phone,
		&message, &b.Date, &b.Time, &b.Status, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	b.Message = message.String
	return &b, nil
}
