package access

import (
	"testing"

	"ampedent/internal/models"
)

func TestDecisions(t *testing.T) {
	tests := []struct {
		name  string
		check func(models.Role) error
		allow []models.Role
		deny  []models.Role
	}{
		{
			name:  "view bookings",
			check: CanViewBookings,
			allow: []models.Role{models.RoleAdmin, models.RoleSuperAdmin},
			deny:  []models.Role{models.RoleNone},
		},
		{
			name:  "decide bookings",
			check: CanDecideBookings,
			allow: []models.Role{models.RoleAdmin, models.RoleSuperAdmin},
			deny:  []models.Role{models.RoleNone},
		},
		{
			name:  "view self",
			check: CanViewSelf,
			allow: []models.Role{models.RoleAdmin, models.RoleSuperAdmin},
			deny:  []models.Role{models.RoleNone},
		},
		{
			name:  "list users",
			check: CanListUsers,
			allow: []models.Role{models.RoleAdmin, models.RoleSuperAdmin},
			deny:  []models.Role{models.RoleNone},
		},
		{
			name:  "manage users",
			check: CanManageUsers,
			allow: []models.Role{models.RoleSuperAdmin},
			deny:  []models.Role{models.RoleNone, models.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, role := range tt.allow {
				if err := tt.check(role); err != nil {
					t.Errorf("role %q should be allowed, got %v", role, err)
				}
			}
			for _, role := range tt.deny {
				err := tt.check(role)
				if err == nil {
					t.Errorf("role %q should be denied", role)
					continue
				}
				if !IsDenied(err) {
					t.Errorf("role %q: expected the uniform denial error, got %v", role, err)
				}
			}
		})
	}
}
