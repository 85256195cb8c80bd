package leave

import (
	"context"

	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
)

type LeaveService interface {
	// CreateLeaveRequest files a request for the acting user, or for
	// another staff member when the write guard allows it.
	CreateLeaveRequest(ctx context.Context, actor access.ActingUser, schoolSlug string, req CreateRequest) (RequestResponse, error)

	// ListLeaveRequests returns requests filtered by the caller's
	// resolved visibility scope.
	ListLeaveRequests(ctx context.Context, actor access.ActingUser, schoolSlug string) ([]RequestResponse, error)

	// UpdateLeaveStatus approves or rejects a pending request.
	UpdateLeaveStatus(ctx context.Context, actor access.ActingUser, schoolSlug string, req UpdateStatusRequest) (RequestResponse, error)
}
