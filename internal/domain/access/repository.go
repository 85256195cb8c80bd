package access

import "context"

type CustomRoleRepository interface {
	GetByID(ctx context.Context, id string, schoolID string) (CustomRole, error)
}

// DelegatedAccessRepository resolves the manager -> staff visibility
// pairs backing the SELECTED scope. Lookups are read-only and are not
// cached across requests, since delegation can change mid-session.
type DelegatedAccessRepository interface {
	ListStaffIDsByManager(ctx context.Context, managerID string, schoolID string) ([]string, error)
}

// ScopeResolver computes the visibility scope for a viewing user.
type ScopeResolver interface {
	ResolveScope(ctx context.Context, user ActingUser) (Scope, error)
}
