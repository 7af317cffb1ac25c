// Package validation holds the field checks shared by the booking
// intake and reschedule paths.
package validation

import (
	"regexp"
	"strings"
	"time"
)

var (
	// Letters and spaces, including accented letters.
	nameRe  = regexp.MustCompile(`^[a-zA-ZÀ-ỹ\s]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-\(\)\s]+$`)
	// HH:MM, optionally with seconds, milliseconds and a trailing Z.
	timeRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9](\.[0-9]{3})?Z?)?$`)
	// Date part embedded in a longer timestamp string.
	datePartRe = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
)

// Error is a user-facing validation failure.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func fail(message string) error { return &Error{Message: message} }

// IsValidationError reports whether err is a field validation failure.
func IsValidationError(err error) bool {
	_, ok := err.(*Error)
	return ok
}

// Name validates a person-name field. The label names the field in the
// error message ("First name", "Last name").
func Name(label, value string) error {
	if strings.TrimSpace(value) == "" {
		return fail(label + " is required")
	}
	if !nameRe.MatchString(strings.TrimSpace(value)) {
		return fail(label + " can only contain letters and spaces")
	}
	return nil
}

// Email validates an email address field.
func Email(value string) error {
	if strings.TrimSpace(value) == "" {
		return fail("Email is required")
	}
	if !emailRe.MatchString(strings.TrimSpace(value)) {
		return fail("Invalid email format")
	}
	return nil
}

// Phone validates a phone number field.
func Phone(value string) error {
	if strings.TrimSpace(value) == "" {
		return fail("Phone number is required")
	}
	if !phoneRe.MatchString(strings.TrimSpace(value)) {
		return fail("Phone number can only contain numbers and special characters")
	}
	return nil
}

// Date parses a calendar date and rejects dates before today.
// Both plain YYYY-MM-DD values and full timestamps are accepted; for
// timestamps only the embedded date part is used.
func Date(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fail("Date is required")
	}

	raw := value
	if strings.Contains(raw, "T") || strings.Contains(raw, "GMT") {
		if m := datePartRe.FindString(raw); m != "" {
			raw = m
		}
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fail("Invalid date format")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return time.Time{}, fail("Date must be in the present or future")
	}

	return date, nil
}

// Slot validates a time-of-day value and normalizes it to HH:MM.
// Suffixes with seconds, milliseconds or a trailing Z are tolerated and
// stripped before storage.
func Slot(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", fail("Please select a time slot")
	}
	if !timeRe.MatchString(value) {
		return "", fail("Invalid time format")
	}

	parts := strings.Split(value, ":")
	return parts[0] + ":" + parts[1], nil
}
