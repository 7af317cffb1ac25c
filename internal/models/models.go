// Package models defines the persistent entities of the booking service.
package models

import "time"

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

// Role is the access level of an admin account. Public callers
// carry RoleNone.
type Role string

const (
	RoleNone       Role = ""
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// Valid reports whether r is a role that can be stored on an account.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Booking represents an appointment request submitted by a visitor.
// Bookings are never deleted; canceling only flips the status.
type Booking struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message,omitempty"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"` // HH:MM, drawn from the slot catalog
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// User represents an admin account. The password hash never leaves
// the server.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
