package policy

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/policy"
)

type PolicyResolverImpl struct {
	policy.LeavePolicyRepository
}

func NewPolicyResolver(repo policy.LeavePolicyRepository) policy.Resolver {
	return &PolicyResolverImpl{LeavePolicyRepository: repo}
}

// Resolve implements policy.Resolver. Resolution order: role-specific
// policy, then the school default, then the hard-coded fallback. Any
// lookup failure falls through rather than failing the caller; policy
// resolution must never block a punch.
func (r *PolicyResolverImpl) Resolve(ctx context.Context, schoolID string, customRoleID *string) policy.Policy {
	if customRoleID != nil && *customRoleID != "" {
		lp, err := r.GetByRole(ctx, schoolID, *customRoleID)
		if err == nil {
			return lp.Effective()
		}
		if !errors.Is(err, policy.ErrPolicyNotFound) && !errors.Is(err, pgx.ErrNoRows) {
			slog.Warn("role policy lookup failed, falling back", "school_id", schoolID, "error", err)
		}
	}

	lp, err := r.GetDefault(ctx, schoolID)
	if err == nil {
		return lp.Effective()
	}
	if !errors.Is(err, policy.ErrPolicyNotFound) && !errors.Is(err, pgx.ErrNoRows) {
		slog.Warn("default policy lookup failed, falling back", "school_id", schoolID, "error", err)
	}

	return policy.Default()
}
