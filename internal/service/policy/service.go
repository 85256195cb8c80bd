package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
	"github.com/schoolhub/attendance-backend-go/internal/domain/policy"
	"github.com/schoolhub/attendance-backend-go/internal/domain/school"
)

type PolicyServiceImpl struct {
	policy.LeavePolicyRepository
	school.SchoolRepository
}

func NewPolicyService(policyRepo policy.LeavePolicyRepository, schoolRepo school.SchoolRepository) policy.PolicyService {
	return &PolicyServiceImpl{
		LeavePolicyRepository: policyRepo,
		SchoolRepository:      schoolRepo,
	}
}

// ListPolicies implements policy.PolicyService.
func (p *PolicyServiceImpl) ListPolicies(ctx context.Context, actor access.ActingUser, schoolSlug string) ([]policy.PolicyResponse, error) {
	sch, err := p.SchoolRepository.GetBySlug(ctx, schoolSlug)
	if err != nil {
		if errors.Is(err, school.ErrSchoolNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return nil, school.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("failed to resolve school: %w", err)
	}
	if actor.SchoolID != sch.ID {
		return nil, school.ErrSchoolAccessDenied
	}
	if !actor.Role.IsAdmin() {
		return nil, access.ErrUnauthorized
	}

	policies, err := p.LeavePolicyRepository.ListBySchool(ctx, sch.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}

	responses := make([]policy.PolicyResponse, 0, len(policies))
	for _, lp := range policies {
		responses = append(responses, policy.PolicyResponse{
			ID:                  lp.ID,
			RoleID:              lp.RoleID,
			IsDefault:           lp.IsDefault,
			MinFullDayHours:     lp.MinFullDayHours,
			MinHalfDayHours:     lp.MinHalfDayHours,
			MaxDailyPunchEvents: lp.MaxDailyPunchEvents,
			MinPunchGapMinutes:  lp.MinPunchGapMinutes,
		})
	}
	return responses, nil
}
