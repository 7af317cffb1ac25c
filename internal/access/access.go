// Package access centralizes every authorization decision of the
// service. Handlers never compare role strings themselves; they ask the
// one function guarding their operation.
package access

import "ampedent/internal/models"

// Error is returned when a caller lacks the role an operation requires.
type Error struct{}

func (*Error) Error() string { return "Unauthorized" }

// ErrDenied is the uniform authorization failure. Callers receive the
// same error whether they are unauthenticated or under-privileged.
var ErrDenied = &Error{}

// IsDenied reports whether err is an authorization failure.
func IsDenied(err error) bool {
	_, ok := err.(*Error)
	return ok
}

func isAdmin(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleSuperAdmin
}

// CanViewBookings gates booking reads (list, detail).
func CanViewBookings(role models.Role) error {
	if !isAdmin(role) {
		return ErrDenied
	}
	return nil
}

// CanDecideBookings gates confirm/cancel/reschedule actions.
func CanDecideBookings(role models.Role) error {
	if !isAdmin(role) {
		return ErrDenied
	}
	return nil
}

// CanViewSelf gates the current-user endpoint; any authenticated
// account qualifies.
func CanViewSelf(role models.Role) error {
	if role == models.RoleNone {
		return ErrDenied
	}
	return nil
}

// CanListUsers gates the account listing; admins may see who exists.
func CanListUsers(role models.Role) error {
	if !isAdmin(role) {
		return ErrDenied
	}
	return nil
}

// CanManageUsers gates account creation, update and deletion.
func CanManageUsers(role models.Role) error {
	if role != models.RoleSuperAdmin {
		return ErrDenied
	}
	return nil
}
