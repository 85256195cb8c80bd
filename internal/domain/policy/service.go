package policy

import (
	"context"

	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
)

// PolicyService exposes the configured policy rows for inspection.
// Admin-gated; the write side is handled by provisioning fixtures.
type PolicyService interface {
	ListPolicies(ctx context.Context, actor access.ActingUser, schoolSlug string) ([]PolicyResponse, error)
}
