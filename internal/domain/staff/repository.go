package staff

import "context"

// StaffRepository reads staff identity data. All methods scoped by
// schoolID take it to prevent cross-school access.
type StaffRepository interface {
	GetByID(ctx context.Context, id string, schoolID string) (StaffMember, error)
	GetByEmail(ctx context.Context, email string) (StaffMember, error)
	ListBySchool(ctx context.Context, schoolID string) ([]StaffMember, error)

	// Get fetches by id without school scoping. Used only by the auth
	// boundary, where no school context exists yet.
	Get(ctx context.Context, id string) (StaffMember, error)
}
