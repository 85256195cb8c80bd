package staff

import "time"

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleStaff      Role = "STAFF"
)

// IsAdmin reports whether the role carries school-wide administrative
// authority.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// StaffMember is owned by the identity subsystem; this engine reads it
// but never mutates it.
type StaffMember struct {
	ID           string
	SchoolID     string
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	CustomRoleID *string
	IsActive     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
