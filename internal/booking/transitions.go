// Package booking implements the status transitions applied by admin
// decisions over bookings.
package booking

import (
	"fmt"

	"ampedent/internal/models"
)

// Action is an admin decision over a booking.
type Action string

const (
	ActionConfirm    Action = "confirm"
	ActionCancel     Action = "cancel"
	ActionReschedule Action = "reschedule"
)

// Machine maps admin actions onto booking statuses. Every action is
// applicable from any current status: confirm does not verify that the
// booking was pending, cancel is idempotent, and reschedule resets any
// booking back to pending with a fresh date and time.
type Machine struct {
	targets map[Action]models.Status
}

// NewMachine creates a Machine with the predefined transitions.
func NewMachine() *Machine {
	return &Machine{
		targets: map[Action]models.Status{
			ActionConfirm:    models.StatusConfirmed,
			ActionCancel:     models.StatusCanceled,
			ActionReschedule: models.StatusPending,
		},
	}
}

// Valid reports whether a is a known action.
func (m *Machine) Valid(a Action) bool {
	_, ok := m.targets[a]
	return ok
}

// Apply returns the status a booking ends up in after the given action.
// The current status is accepted for every action and only matters to
// callers tracking the change.
func (m *Machine) Apply(current models.Status, a Action) (models.Status, error) {
	target, ok := m.targets[a]
	if !ok {
		return current, fmt.Errorf("invalid action %q", a)
	}
	return target, nil
}

// RequiresSchedule reports whether the action carries a new date/time
// pair that has to be validated before it is applied.
func (m *Machine) RequiresSchedule(a Action) bool {
	return a == ActionReschedule
}
