// Package timeslot holds the slot catalog and computes per-date
// availability against existing bookings.
package timeslot

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultCatalog is the fixed ordered list of bookable slots: hourly
// appointments within business hours. The deployed catalog can be
// overridden via config, but order is always preserved.
var DefaultCatalog = []string{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00",
}

// ErrWeekend is returned for dates falling on Saturday or Sunday.
var ErrWeekend = errors.New("no available times on Saturday or Sunday")

// BookingSource yields the occupied slot times for a calendar day.
// Only non-canceled bookings count as occupying a slot.
type BookingSource interface {
	BookedTimes(ctx context.Context, day time.Time) ([]string, error)
}

// Calculator computes free slots for a date. Results are recomputed on
// every call; the per-day data set is small enough that caching would
// buy nothing.
type Calculator struct {
	catalog []string
	source  BookingSource
}

// NewCalculator creates a Calculator over the given catalog. An empty
// catalog falls back to DefaultCatalog.
func NewCalculator(catalog []string, source BookingSource) *Calculator {
	if len(catalog) == 0 {
		catalog = DefaultCatalog
	}
	return &Calculator{catalog: catalog, source: source}
}

// AvailableTimes returns the catalog entries not occupied by a
// non-canceled booking on the given date, in catalog order. Weekend
// dates yield ErrWeekend and an empty result.
func (c *Calculator) AvailableTimes(ctx context.Context, date time.Time) ([]string, error) {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return nil, ErrWeekend
	}

	booked, err := c.source.BookedTimes(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetch booked times: %w", err)
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	available := make([]string, 0, len(c.catalog))
	for _, slot := range c.catalog {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available, nil
}

// ParseDate parses a YYYY-MM-DD availability query parameter. Full
// timestamps are tolerated by taking only the date part, matching what
// booking clients send.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("date parameter is required")
	}
	if len(value) > 10 {
		value = value[:10]
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.New("invalid date format")
	}
	return date, nil
}
