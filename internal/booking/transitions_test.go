package booking

import (
	"testing"

	"ampedent/internal/models"
)

func TestMachineApply(t *testing.T) {
	m := NewMachine()

	tests := []struct {
		name    string
		current models.Status
		action  Action
		want    models.Status
	}{
		{"confirm pending", models.StatusPending, ActionConfirm, models.StatusConfirmed},
		{"confirm canceled", models.StatusCanceled, ActionConfirm, models.StatusConfirmed},
		{"confirm confirmed", models.StatusConfirmed, ActionConfirm, models.StatusConfirmed},
		{"cancel pending", models.StatusPending, ActionCancel, models.StatusCanceled},
		{"cancel canceled again", models.StatusCanceled, ActionCancel, models.StatusCanceled},
		{"reschedule confirmed", models.StatusConfirmed, ActionReschedule, models.StatusPending},
		{"reschedule canceled", models.StatusCanceled, ActionReschedule, models.StatusPending},
		{"reschedule pending", models.StatusPending, ActionReschedule, models.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Apply(tt.current, tt.action)
			if err != nil {
				t.Fatalf("Apply(%s, %s): unexpected error %v", tt.current, tt.action, err)
			}
			if got != tt.want {
				t.Errorf("Apply(%s, %s) = %s, want %s", tt.current, tt.action, got, tt.want)
			}
		})
	}
}

func TestMachineInvalidAction(t *testing.T) {
	m := NewMachine()

	if m.Valid("notify") {
		t.Error("notify should not be a valid action")
	}
	if _, err := m.Apply(models.StatusPending, "notify"); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRequiresSchedule(t *testing.T) {
	m := NewMachine()

	if !m.RequiresSchedule(ActionReschedule) {
		t.Error("reschedule must carry a new date/time")
	}
	if m.RequiresSchedule(ActionConfirm) || m.RequiresSchedule(ActionCancel) {
		t.Error("confirm and cancel carry no schedule")
	}
}
