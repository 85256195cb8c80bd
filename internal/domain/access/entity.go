package access

import "time"

// CustomRole is a school-defined role carrying a capability grant.
type CustomRole struct {
	ID       string
	SchoolID string
	Name     string
	Grant    CapabilityGrant

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DelegatedAccess grants a manager visibility over one staff member,
// outside the normal role hierarchy.
type DelegatedAccess struct {
	ID        string
	SchoolID  string
	ManagerID string
	StaffID   string

	CreatedAt time.Time
}
