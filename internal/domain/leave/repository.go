package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository persists leave requests. staffIDs filters
// follow the scope convention: nil is unfiltered, empty matches
// nothing.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)

	GetByID(ctx context.Context, id string, schoolID string) (Request, error)

	ListBySchool(ctx context.Context, schoolID string, staffIDs []string) ([]Request, error)

	UpdateStatus(ctx context.Context, id string, schoolID string, status RequestStatus, reviewerID string, reviewedAt time.Time) error

	// CountApprovedInRange counts approved leave requests overlapping
	// [from, to) for the scoped staff set, for analytics.
	CountApprovedInRange(ctx context.Context, schoolID string, from time.Time, to time.Time, staffIDs []string) (int64, error)
}
