package attendance

import (
	"context"

	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
)

// AttendanceService is the only surface external callers touch. Every
// method takes the explicit acting user; nothing here reads ambient
// session state.
type AttendanceService interface {
	// TogglePunch records the next clock event for a staff member:
	// write guard, policy resolution, ledger constraints, then
	// recomputation of hours and status.
	TogglePunch(ctx context.Context, actor access.ActingUser, schoolSlug string, req TogglePunchRequest) (TogglePunchResponse, error)

	// MarkStatus is the administrative override. It bypasses
	// punch-derived computation but keeps the future-date guard.
	MarkStatus(ctx context.Context, actor access.ActingUser, schoolSlug string, req MarkStatusRequest) (RecordResponse, error)

	// ListAttendance returns one day's records filtered by the
	// caller's resolved visibility scope.
	ListAttendance(ctx context.Context, actor access.ActingUser, schoolSlug string, filter ListFilter) ([]RecordResponse, error)

	// GetAnalytics aggregates one month over the scoped record set.
	GetAnalytics(ctx context.Context, actor access.ActingUser, schoolSlug string, month int, year int) (AnalyticsResponse, error)

	// GetStaffHistory returns all records plus summary counts for a
	// single target, subject to read scope.
	GetStaffHistory(ctx context.Context, actor access.ActingUser, schoolSlug string, staffID string) (HistoryResponse, error)
}
