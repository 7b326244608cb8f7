package user

import "github.com/oralvis-health/scan-api/internal/httperr"

// ===============================
// User Role
// ===============================

type Role string

const (
	RoleTechnician Role = "Technician"
	RoleDentist    Role = "Dentist"
)

// ParseRole rejects anything outside the two clinic roles.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleTechnician, RoleDentist:
		return Role(raw), nil
	default:
		return "", httperr.ErrBusiness("invalid_role")
	}
}

// CanUpload is the only role-restricted action: scans enter the system
// through technicians.
func (r Role) CanUpload() bool {
	return r == RoleTechnician
}

// CanViewScans covers list and delete.
func (r Role) CanViewScans() bool {
	return r == RoleTechnician || r == RoleDentist
}
