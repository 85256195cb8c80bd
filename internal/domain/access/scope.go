package access

import "github.com/schoolhub/attendance-backend-go/internal/domain/staff"

// ActingUser is the already-authenticated caller. Handlers build it
// from token claims at the boundary; services never read session state
// themselves.
type ActingUser struct {
	ID           string
	SchoolID     string
	Role         staff.Role
	CustomRoleID *string
}

type ScopeKind string

const (
	ScopeAll      ScopeKind = "ALL"
	ScopeOwn      ScopeKind = "OWN"
	ScopeSelected ScopeKind = "SELECTED"
	ScopeNone     ScopeKind = "NONE"
)

// Scope is the set of staff whose attendance a viewer may read.
// StaffIDs is populated only for SELECTED.
type Scope struct {
	Kind     ScopeKind
	StaffIDs []string
}

// StaffIDFilter translates a scope into a repository id filter:
// nil means no filter (ALL), an empty slice means no visible staff
// (NONE), and a non-empty slice restricts to those ids.
func (s Scope) StaffIDFilter(selfID string) []string {
	switch s.Kind {
	case ScopeAll:
		return nil
	case ScopeOwn:
		return []string{selfID}
	case ScopeSelected:
		return s.StaffIDs
	default:
		return []string{}
	}
}

// IsNone reports whether the viewer can see no staff at all. Reads
// under a NONE scope return empty results, never errors.
func (s Scope) IsNone() bool {
	return s.Kind == ScopeNone
}

// EvaluateScope computes the visibility scope for a viewer from their
// role, capability grant, and delegated staff set. Action priority:
// manage > manage_selected > manage_own > view. The view action is a
// global read grant, distinct from manage.
func EvaluateScope(user ActingUser, grant CapabilityGrant, delegatedIDs []string) Scope {
	if user.Role.IsAdmin() {
		return Scope{Kind: ScopeAll}
	}

	actions := grant.Actions(ModuleStaffAttendance)
	if len(actions) == 0 {
		return Scope{Kind: ScopeNone}
	}

	has := func(action string) bool {
		for _, a := range actions {
			if a == action {
				return true
			}
		}
		return false
	}

	switch {
	case has(ActionManage):
		return Scope{Kind: ScopeAll}
	case has(ActionManageSelected):
		ids := make([]string, 0, len(delegatedIDs)+1)
		seen := map[string]bool{}
		for _, id := range append(delegatedIDs, user.ID) {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		return Scope{Kind: ScopeSelected, StaffIDs: ids}
	case has(ActionManageOwn):
		return Scope{Kind: ScopeOwn}
	case has(ActionView):
		return Scope{Kind: ScopeAll}
	default:
		return Scope{Kind: ScopeNone}
	}
}

// CanMutate is the write-path guard: only admins or the staff member
// acting on their own record may record punches or mark attendance.
// Delegated SELECTED visibility deliberately does not confer write
// access.
func CanMutate(user ActingUser, targetStaffID string) bool {
	if user.Role.IsAdmin() {
		return true
	}
	return user.ID == targetStaffID
}
