package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
	"github.com/schoolhub/attendance-backend-go/internal/domain/leave"
	"github.com/schoolhub/attendance-backend-go/internal/domain/school"
	"github.com/schoolhub/attendance-backend-go/internal/domain/staff"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/timezone"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	staff.StaffRepository
	school.SchoolRepository
	scopeResolver access.ScopeResolver
}

func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	staffRepo staff.StaffRepository,
	schoolRepo school.SchoolRepository,
	scopeResolver access.ScopeResolver,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
		StaffRepository:        staffRepo,
		SchoolRepository:       schoolRepo,
		scopeResolver:          scopeResolver,
	}
}

func (l *LeaveServiceImpl) resolveSchool(ctx context.Context, actor access.ActingUser, slug string) (school.School, error) {
	sch, err := l.SchoolRepository.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, school.ErrSchoolNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return school.School{}, school.ErrSchoolNotFound
		}
		return school.School{}, fmt.Errorf("failed to resolve school: %w", err)
	}
	if actor.SchoolID != sch.ID {
		return school.School{}, school.ErrSchoolAccessDenied
	}
	return sch, nil
}

// CreateLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, actor access.ActingUser, schoolSlug string, req leave.CreateRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	sch, err := l.resolveSchool(ctx, actor, schoolSlug)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	targetID := req.StaffID
	if targetID == "" {
		targetID = actor.ID
	}
	if !access.CanMutate(actor, targetID) {
		return leave.RequestResponse{}, access.ErrUnauthorized
	}

	member, err := l.StaffRepository.GetByID(ctx, targetID, sch.ID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return leave.RequestResponse{}, staff.ErrStaffNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return leave.RequestResponse{}, leave.ErrInvalidDateRange
	}

	created, err := l.LeaveRequestRepository.Create(ctx, leave.Request{
		StaffID:   member.ID,
		SchoolID:  sch.ID,
		StartDate: timezone.DateOf(start),
		EndDate:   timezone.DateOf(end),
		Type:      req.Type,
		Status:    leave.RequestStatusPending,
		Reason:    req.Reason,
	})
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	created.StaffName = &member.Name
	return mapRequestToResponse(created), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, actor access.ActingUser, schoolSlug string) ([]leave.RequestResponse, error) {
	sch, err := l.resolveSchool(ctx, actor, schoolSlug)
	if err != nil {
		return nil, err
	}

	scope, err := l.scopeResolver.ResolveScope(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scope: %w", err)
	}
	if scope.IsNone() {
		return []leave.RequestResponse{}, nil
	}

	requests, err := l.LeaveRequestRepository.ListBySchool(ctx, sch.ID, scope.StaffIDFilter(actor.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapRequestToResponse(req))
	}
	return responses, nil
}

// UpdateLeaveStatus implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateLeaveStatus(ctx context.Context, actor access.ActingUser, schoolSlug string, req leave.UpdateStatusRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	sch, err := l.resolveSchool(ctx, actor, schoolSlug)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	// Approving leave is an administrative action, not covered by
	// delegated visibility.
	if !actor.Role.IsAdmin() {
		return leave.RequestResponse{}, access.ErrUnauthorized
	}

	existing, err := l.LeaveRequestRepository.GetByID(ctx, req.ID, sch.ID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return leave.RequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if existing.Status != leave.RequestStatusPending {
		return leave.RequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	reviewedAt := timezone.SchoolNow(sch.Timezone)
	if err := l.LeaveRequestRepository.UpdateStatus(ctx, req.ID, sch.ID, req.Status, actor.ID, reviewedAt); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	existing.Status = req.Status
	existing.ReviewedBy = &actor.ID
	existing.ReviewedAt = &reviewedAt
	return mapRequestToResponse(existing), nil
}

func mapRequestToResponse(req leave.Request) leave.RequestResponse {
	var staffName string
	if req.StaffName != nil {
		staffName = *req.StaffName
	}
	return leave.RequestResponse{
		ID:        req.ID,
		StaffID:   req.StaffID,
		StaffName: staffName,
		StartDate: req.StartDate.Format("2006-01-02"),
		EndDate:   req.EndDate.Format("2006-01-02"),
		Type:      req.Type,
		Status:    req.Status,
		Reason:    req.Reason,
	}
}
