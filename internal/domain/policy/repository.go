package policy

import "context"

type LeavePolicyRepository interface {
	// GetByRole returns the policy bound to a specific custom role.
	GetByRole(ctx context.Context, schoolID string, roleID string) (LeavePolicy, error)

	// GetDefault returns the school's default policy.
	GetDefault(ctx context.Context, schoolID string) (LeavePolicy, error)

	ListBySchool(ctx context.Context, schoolID string) ([]LeavePolicy, error)

	Create(ctx context.Context, p LeavePolicy) (LeavePolicy, error)
}

// Resolver returns the effective policy for a staff member. It never
// fails the caller: any lookup problem resolves to Default().
type Resolver interface {
	Resolve(ctx context.Context, schoolID string, customRoleID *string) Policy
}
