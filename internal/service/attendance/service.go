package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
	"github.com/schoolhub/attendance-backend-go/internal/domain/attendance"
	"github.com/schoolhub/attendance-backend-go/internal/domain/leave"
	"github.com/schoolhub/attendance-backend-go/internal/domain/policy"
	"github.com/schoolhub/attendance-backend-go/internal/domain/school"
	"github.com/schoolhub/attendance-backend-go/internal/domain/staff"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/database"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/timezone"
	"github.com/schoolhub/attendance-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	staff.StaffRepository
	school.SchoolRepository
	leaveRepo      leave.LeaveRequestRepository
	scopeResolver  access.ScopeResolver
	policyResolver policy.Resolver
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	staffRepo staff.StaffRepository,
	schoolRepo school.SchoolRepository,
	leaveRepo leave.LeaveRequestRepository,
	scopeResolver access.ScopeResolver,
	policyResolver policy.Resolver,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		StaffRepository:      staffRepo,
		SchoolRepository:     schoolRepo,
		leaveRepo:            leaveRepo,
		scopeResolver:        scopeResolver,
		policyResolver:       policyResolver,
	}
}

// runInTx runs fn inside a store transaction so the alternation, gap
// and limit checks act on the same snapshot the insert lands in. A nil
// db (repositories without transaction support) runs fn directly.
func (a *AttendanceServiceImpl) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if a.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}

// resolveSchool loads the school from the URL slug and enforces that
// the acting user belongs to it.
func (a *AttendanceServiceImpl) resolveSchool(ctx context.Context, actor access.ActingUser, slug string) (school.School, error) {
	sch, err := a.SchoolRepository.GetBySlug(ctx, slug)
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

// parseDate parses an optional YYYY-MM-DD request date, defaulting to
// the school's current day.
func parseDate(raw string, tz string) (time.Time, error) {
	if raw == "" {
		return timezone.SchoolToday(tz), nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return timezone.DateOf(parsed), nil
}

// resolveDate is parseDate plus the mutation-path future-date guard.
// No record may be created or mutated for a date after the school's
// current local day, regardless of role.
func resolveDate(raw string, tz string) (time.Time, error) {
	date, err := parseDate(raw, tz)
	if err != nil {
		return time.Time{}, err
	}
	if timezone.IsFutureDate(date, tz) {
		return time.Time{}, attendance.ErrFutureDate
	}
	return date, nil
}

// TogglePunch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TogglePunch(ctx context.Context, actor access.ActingUser, schoolSlug string, req attendance.TogglePunchRequest) (attendance.TogglePunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.TogglePunchResponse{}, err
	}

	sch, err := a.resolveSchool(ctx, actor, schoolSlug)
	if err != nil {
		return attendance.TogglePunchResponse{}, err
	}

	if !access.CanMutate(actor, req.StaffID) {
		return attendance.TogglePunchResponse{}, access.ErrUnauthorized
	}

	member, err := a.StaffRepository.GetByID(ctx, req.StaffID, sch.ID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return attendance.TogglePunchResponse{}, staff.ErrStaffNotFound
		}
		return attendance.TogglePunchResponse{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	date, err := resolveDate(req.Date, sch.Timezone)
	if err != nil {
		return attendance.TogglePunchResponse{}, err
	}

	pol := a.policyResolver.Resolve(ctx, sch.ID, member.CustomRoleID)

	var (
		rec      attendance.Record
		newPunch attendance.Punch
	)
	err = a.runInTx(ctx, func(ctx context.Context) error {
		rec, err = a.AttendanceRepository.GetOrCreate(ctx, member.ID, sch.ID, date)
		if err != nil {
			return fmt.Errorf("failed to get or create attendance record: %w", err)
		}

		// Re-read punches right before inserting so the alternation and
		// gap checks never act on stale state.
		punches, err := a.AttendanceRepository.ListPunches(ctx, rec.ID)
		if err != nil {
			return fmt.Errorf("failed to list punches: %w", err)
		}

		if len(punches) >= pol.MaxDailyPunchEvents {
			return attendance.ErrPunchLimitExceeded
		}

		now := timezone.SchoolNow(sch.Timezone)
		nextType := attendance.NextPunchType(punches)

		if len(punches) > 0 && pol.MinPunchGapMinutes > 0 {
			last := punches[len(punches)-1]
			gap := time.Duration(pol.MinPunchGapMinutes) * time.Minute
			if elapsed := now.Sub(last.Timestamp); elapsed < gap {
				wait := int(math.Ceil((gap - elapsed).Minutes()))
				return &attendance.PunchTooSoonError{WaitMinutes: wait}
			}
		}

		newPunch, err = a.AttendanceRepository.CreatePunch(ctx, rec.ID, nextType, now)
		if err != nil {
			return fmt.Errorf("failed to create punch: %w", err)
		}

		// Recompute from the complete punch list; the persisted status and
		// hours are a cache over this derivation.
		all := append(punches, newPunch)
		totalHours := attendance.ComputeTotalHours(all)
		status := attendance.DeriveStatus(rec.Status, nextType == attendance.PunchIn, totalHours, pol)

		if err := a.AttendanceRepository.UpdateDerived(ctx, rec.ID, status, totalHours); err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		rec.Status = status
		rec.TotalHours = totalHours
		return nil
	})
	if err != nil {
		return attendance.TogglePunchResponse{}, err
	}

	rec.StaffName = &member.Name

	return attendance.TogglePunchResponse{
		Record: mapRecordToResponse(rec),
		Punch: attendance.PunchResponse{
			ID:        newPunch.ID,
			Type:      newPunch.Type,
			Timestamp: newPunch.Timestamp.Format(time.RFC3339),
		},
	}, nil
}

// MarkStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkStatus(ctx context.Context, actor access.ActingUser, schoolSlug string, req attendance.MarkStatusRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	sch, err := a.resolveSchool(ctx, actor, schoolSlug)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if !access.CanMutate(actor, req.StaffID) {
		return attendance.RecordResponse{}, access.ErrUnauthorized
	}

	member, err := a.StaffRepository.GetByID(ctx, req.StaffID, sch.ID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return attendance.RecordResponse{}, staff.ErrStaffNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	date, err := resolveDate(req.Date, sch.Timezone)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := a.AttendanceRepository.UpsertStatus(ctx, member.ID, sch.ID, date, req.Status, req.Notes)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to mark attendance status: %w", err)
	}

	rec.StaffName = &member.Name
	return mapRecordToResponse(rec), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, actor access.ActingUser, schoolSlug string, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	sch, err := a.resolveSchool(ctx, actor, schoolSlug)
	if err != nil {
		return nil, err
	}

	scope, err := a.scopeResolver.ResolveScope(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scope: %w", err)
	}
	if scope.IsNone() {
		return []attendance.RecordResponse{}, nil
	}

	date, err := parseDate(filter.Date, sch.Timezone)
	if err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.ListBySchoolAndDate(ctx, sch.ID, date, scope.StaffIDFilter(actor.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}

// GetAnalytics implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAnalytics(ctx context.Context, actor access.ActingUser, schoolSlug string, month int, year int) (attendance.AnalyticsResponse, error) {
	if month < 1 || month > 12 || year < 1 {
		return attendance.AnalyticsResponse{}, fmt.Errorf("invalid month or year")
	}

	sch, err := a.resolveSchool(ctx, actor, schoolSlug)
	if err != nil {
		return attendance.AnalyticsResponse{}, err
	}

	resp := attendance.AnalyticsResponse{Month: month, Year: year}

	scope, err := a.scopeResolver.ResolveScope(ctx, actor)
	if err != nil {
		return attendance.AnalyticsResponse{}, fmt.Errorf("failed to resolve scope: %w", err)
	}
	if scope.IsNone() {
		// No permission means zeroed analytics, not an error.
		return resp, nil
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	staffIDs := scope.StaffIDFilter(actor.ID)

	counts, err := a.AttendanceRepository.CountByStatus(ctx, sch.ID, from, to, staffIDs)
	if err != nil {
		return attendance.AnalyticsResponse{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	leaveCount, err := a.leaveRepo.CountApprovedInRange(ctx, sch.ID, from, to, staffIDs)
	if err != nil {
		return attendance.AnalyticsResponse{}, fmt.Errorf("failed to count leave requests: %w", err)
	}

	resp.PresentCount = counts.Present
	resp.LateCount = counts.Late
	resp.HalfDayCount = counts.HalfDay
	resp.AbsentCount = counts.Absent
	resp.LeaveCount = leaveCount
	if counts.RecordCount > 0 {
		resp.AvgHours = counts.SumHours / float64(counts.RecordCount)
	}
	return resp, nil
}

// GetStaffHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetStaffHistory(ctx context.Context, actor access.ActingUser, schoolSlug string, staffID string) (attendance.HistoryResponse, error) {
	sch, err := a.resolveSchool(ctx, actor, schoolSlug)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	scope, err := a.scopeResolver.ResolveScope(ctx, actor)
	if err != nil {
		return attendance.HistoryResponse{}, fmt.Errorf("failed to resolve scope: %w", err)
	}
	if !scopeCovers(scope, actor.ID, staffID) {
		return attendance.HistoryResponse{}, access.ErrUnauthorized
	}

	if _, err := a.StaffRepository.GetByID(ctx, staffID, sch.ID); err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return attendance.HistoryResponse{}, staff.ErrStaffNotFound
		}
		return attendance.HistoryResponse{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	records, err := a.AttendanceRepository.ListByStaff(ctx, staffID, sch.ID)
	if err != nil {
		return attendance.HistoryResponse{}, fmt.Errorf("failed to list attendance history: %w", err)
	}

	resp := attendance.HistoryResponse{
		StaffID: staffID,
		Records: make([]attendance.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, mapRecordToResponse(rec))
		switch rec.Status {
		case attendance.StatusPresent:
			resp.Summary.PresentCount++
		case attendance.StatusLate:
			resp.Summary.LateCount++
		case attendance.StatusHalfDay:
			resp.Summary.HalfDayCount++
		case attendance.StatusAbsent:
			resp.Summary.AbsentCount++
		}
		resp.Summary.TotalHours += rec.TotalHours
	}
	return resp, nil
}

// scopeCovers reports whether a single-target read falls inside the
// viewer's scope.
func scopeCovers(scope access.Scope, selfID string, targetID string) bool {
	switch scope.Kind {
	case access.ScopeAll:
		return true
	case access.ScopeOwn:
		return selfID == targetID
	case access.ScopeSelected:
		for _, id := range scope.StaffIDs {
			if id == targetID {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	var staffName string
	if rec.StaffName != nil {
		staffName = *rec.StaffName
	}
	return attendance.RecordResponse{
		ID:         rec.ID,
		StaffID:    rec.StaffID,
		StaffName:  staffName,
		Date:       rec.Date.Format("2006-01-02"),
		Status:     rec.Status,
		TotalHours: rec.TotalHours,
		Notes:      rec.Notes,
	}
}
