package validation

import (
	"strings"
	"time"
)

// BookingInput carries the raw intake fields as submitted by a visitor.
type BookingInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// Validated holds the normalized intake fields after validation.
type Validated struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Message   string
	Date      time.Time
	Time      string
}

// Validate checks all intake fields in order, short-circuiting on the
// first failure, and returns the normalized values.
func (in BookingInput) Validate() (*Validated, error) {
	if err := Name("First name", in.FirstName); err != nil {
		return nil, err
	}
	if err := Name("Last name", in.LastName); err != nil {
		return nil, err
	}
	if err := Email(in.Email); err != nil {
		return nil, err
	}
	if err := Phone(in.Phone); err != nil {
		return nil, err
	}

	date, err := Date(in.Date)
	if err != nil {
		return nil, err
	}

	slot, err := Slot(in.Time)
	if err != nil {
		return nil, err
	}

	return &Validated{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Message:   in.Message,
		Date:      date,
		Time:      slot,
	}, nil
}

// ScheduleInput carries the date/time pair of a reschedule request.
type ScheduleInput struct {
	Date string
	Time string
}

// Validate checks the pair with the same rules the intake path uses.
func (in ScheduleInput) Validate() (time.Time, string, error) {
	date, err := Date(in.Date)
	if err != nil {
		return time.Time{}, "", err
	}
	slot, err := Slot(in.Time)
	if err != nil {
		return time.Time{}, "", err
	}
	return date, slot, nil
}
