package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
)

type ScopeResolverImpl struct {
	access.CustomRoleRepository
	access.DelegatedAccessRepository
}

func NewScopeResolver(
	customRoleRepo access.CustomRoleRepository,
	delegatedRepo access.DelegatedAccessRepository,
) access.ScopeResolver {
	return &ScopeResolverImpl{
		CustomRoleRepository:      customRoleRepo,
		DelegatedAccessRepository: delegatedRepo,
	}
}

// ResolveScope implements access.ScopeResolver. Admin roles short-
// circuit to ALL; everyone else is judged by the capability grant on
// their custom role. A missing or unresolvable role yields NONE so
// that reads degrade to empty results instead of erroring.
func (s *ScopeResolverImpl) ResolveScope(ctx context.Context, user access.ActingUser) (access.Scope, error) {
	if user.Role.IsAdmin() {
		return access.Scope{Kind: access.ScopeAll}, nil
	}

	if user.CustomRoleID == nil || *user.CustomRoleID == "" {
		return access.Scope{Kind: access.ScopeNone}, nil
	}

	role, err := s.CustomRoleRepository.GetByID(ctx, *user.CustomRoleID, user.SchoolID)
	if err != nil {
		if errors.Is(err, access.ErrCustomRoleNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return access.Scope{Kind: access.ScopeNone}, nil
		}
		return access.Scope{}, fmt.Errorf("failed to load custom role: %w", err)
	}

	var delegatedIDs []string
	if role.Grant.Has(access.ModuleStaffAttendance, access.ActionManageSelected) {
		delegatedIDs, err = s.DelegatedAccessRepository.ListStaffIDsByManager(ctx, user.ID, user.SchoolID)
		if err != nil {
			return access.Scope{}, fmt.Errorf("failed to load delegated access: %w", err)
		}
	}

	return access.EvaluateScope(user, role.Grant, delegatedIDs), nil
}
