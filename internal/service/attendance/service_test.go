package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
	"github.com/schoolhub/attendance-backend-go/internal/domain/attendance"
	"github.com/schoolhub/attendance-backend-go/internal/domain/leave"
	"github.com/schoolhub/attendance-backend-go/internal/domain/policy"
	"github.com/schoolhub/attendance-backend-go/internal/domain/school"
	"github.com/schoolhub/attendance-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes -----------------------------------------------------------------

type fakeAttendanceRepo struct {
	records map[string]*attendance.Record // staffID|date
	punches map[string][]attendance.Punch // recordID
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records: make(map[string]*attendance.Record),
		punches: make(map[string][]attendance.Punch),
	}
}

func recordKey(staffID string, date time.Time) string {
	return staffID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) GetOrCreate(ctx context.Context, staffID string, schoolID string, date time.Time) (attendance.Record, error) {
	key := recordKey(staffID, date)
	if rec, ok := f.records[key]; ok {
		return *rec, nil
	}
	rec := &attendance.Record{
		ID:       uuid.NewString(),
		StaffID:  staffID,
		SchoolID: schoolID,
		Date:     date,
	}
	f.records[key] = rec
	return *rec, nil
}

func (f *fakeAttendanceRepo) GetByStaffAndDate(ctx context.Context, staffID string, schoolID string, date time.Time) (attendance.Record, error) {
	if rec, ok := f.records[recordKey(staffID, date)]; ok {
		return *rec, nil
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) ListPunches(ctx context.Context, recordID string) ([]attendance.Punch, error) {
	return append([]attendance.Punch(nil), f.punches[recordID]...), nil
}

func (f *fakeAttendanceRepo) CreatePunch(ctx context.Context, recordID string, punchType attendance.PunchType, at time.Time) (attendance.Punch, error) {
	p := attendance.Punch{ID: uuid.NewString(), RecordID: recordID, Type: punchType, Timestamp: at}
	f.punches[recordID] = append(f.punches[recordID], p)
	return p, nil
}

func (f *fakeAttendanceRepo) UpdateDerived(ctx context.Context, recordID string, status attendance.Status, totalHours float64) error {
	for _, rec := range f.records {
		if rec.ID == recordID {
			rec.Status = status
			rec.TotalHours = totalHours
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) UpsertStatus(ctx context.Context, staffID string, schoolID string, date time.Time, status attendance.Status, notes *string) (attendance.Record, error) {
	key := recordKey(staffID, date)
	if rec, ok := f.records[key]; ok {
		rec.Status = status
		rec.Notes = notes
		return *rec, nil
	}
	rec := &attendance.Record{
		ID:       uuid.NewString(),
		StaffID:  staffID,
		SchoolID: schoolID,
		Date:     date,
		Status:   status,
		Notes:    notes,
	}
	f.records[key] = rec
	return *rec, nil
}

func (f *fakeAttendanceRepo) ListBySchoolAndDate(ctx context.Context, schoolID string, date time.Time, staffIDs []string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.SchoolID != schoolID || !rec.Date.Equal(date) {
			continue
		}
		if staffIDs != nil && !contains(staffIDs, rec.StaffID) {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByStaff(ctx context.Context, staffID string, schoolID string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.StaffID == staffID && rec.SchoolID == schoolID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CountByStatus(ctx context.Context, schoolID string, from time.Time, to time.Time, staffIDs []string) (attendance.StatusCounts, error) {
	var counts attendance.StatusCounts
	for _, rec := range f.records {
		if rec.SchoolID != schoolID || rec.Date.Before(from) || !rec.Date.Before(to) {
			continue
		}
		if staffIDs != nil && !contains(staffIDs, rec.StaffID) {
			continue
		}
		switch rec.Status {
		case attendance.StatusPresent:
			counts.Present++
		case attendance.StatusLate:
			counts.Late++
		case attendance.StatusHalfDay:
			counts.HalfDay++
		case attendance.StatusAbsent:
			counts.Absent++
		}
		counts.SumHours += rec.TotalHours
		counts.RecordCount++
	}
	return counts, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fakeStaffRepo struct {
	members map[string]staff.StaffMember
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string, schoolID string) (staff.StaffMember, error) {
	m, ok := f.members[id]
	if !ok || m.SchoolID != schoolID {
		return staff.StaffMember{}, staff.ErrStaffNotFound
	}
	return m, nil
}

func (f *fakeStaffRepo) GetByEmail(ctx context.Context, email string) (staff.StaffMember, error) {
	for _, m := range f.members {
		if m.Email == email {
			return m, nil
		}
	}
	return staff.StaffMember{}, staff.ErrStaffNotFound
}

func (f *fakeStaffRepo) ListBySchool(ctx context.Context, schoolID string) ([]staff.StaffMember, error) {
	var out []staff.StaffMember
	for _, m := range f.members {
		if m.SchoolID == schoolID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) Get(ctx context.Context, id string) (staff.StaffMember, error) {
	m, ok := f.members[id]
	if !ok {
		return staff.StaffMember{}, staff.ErrStaffNotFound
	}
	return m, nil
}

type fakeSchoolRepo struct {
	schools map[string]school.School
}

func (f *fakeSchoolRepo) GetByID(ctx context.Context, id string) (school.School, error) {
	for _, s := range f.schools {
		if s.ID == id {
			return s, nil
		}
	}
	return school.School{}, school.ErrSchoolNotFound
}

func (f *fakeSchoolRepo) GetBySlug(ctx context.Context, slug string) (school.School, error) {
	s, ok := f.schools[slug]
	if !ok {
		return school.School{}, school.ErrSchoolNotFound
	}
	return s, nil
}

type fakeLeaveRepo struct {
	approvedCount int64
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string, schoolID string) (leave.Request, error) {
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) ListBySchool(ctx context.Context, schoolID string, staffIDs []string) ([]leave.Request, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, schoolID string, status leave.RequestStatus, reviewerID string, reviewedAt time.Time) error {
	return nil
}

func (f *fakeLeaveRepo) CountApprovedInRange(ctx context.Context, schoolID string, from time.Time, to time.Time, staffIDs []string) (int64, error) {
	return f.approvedCount, nil
}

type stubScopeResolver struct {
	scope access.Scope
}

func (s *stubScopeResolver) ResolveScope(ctx context.Context, user access.ActingUser) (access.Scope, error) {
	if user.Role.IsAdmin() {
		return access.Scope{Kind: access.ScopeAll}, nil
	}
	return s.scope, nil
}

type stubPolicyResolver struct {
	p policy.Policy
}

func (s *stubPolicyResolver) Resolve(ctx context.Context, schoolID string, customRoleID *string) policy.Policy {
	return s.p
}

// ---- fixture ---------------------------------------------------------------

const (
	testSchoolID  = "sch-1"
	testSlug      = "greenwood-high"
	testTZ        = "Asia/Kolkata"
	adminID       = "staff-admin"
	memberID      = "staff-member"
	otherMemberID = "staff-other"
)

type fixture struct {
	svc     attendance.AttendanceService
	attRepo *fakeAttendanceRepo
	staff   *fakeStaffRepo
	leave   *fakeLeaveRepo
	scope   *stubScopeResolver
	policy  *stubPolicyResolver
}

func newFixture() *fixture {
	attRepo := newFakeAttendanceRepo()
	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		adminID:       {ID: adminID, SchoolID: testSchoolID, Name: "Asha Admin", Role: staff.RoleAdmin, IsActive: true},
		memberID:      {ID: memberID, SchoolID: testSchoolID, Name: "Manu Staff", Role: staff.RoleStaff, IsActive: true},
		otherMemberID: {ID: otherMemberID, SchoolID: testSchoolID, Name: "Omar Staff", Role: staff.RoleStaff, IsActive: true},
	}}
	schoolRepo := &fakeSchoolRepo{schools: map[string]school.School{
		testSlug: {ID: testSchoolID, Name: "Greenwood High", Slug: testSlug, Timezone: testTZ},
	}}
	leaveRepo := &fakeLeaveRepo{}
	scope := &stubScopeResolver{scope: access.Scope{Kind: access.ScopeNone}}
	pol := &stubPolicyResolver{p: policy.Policy{
		MinFullDayHours: 8, MinHalfDayHours: 4, MaxDailyPunchEvents: 10, MinPunchGapMinutes: 0,
	}}

	return &fixture{
		svc:     NewAttendanceService(nil, attRepo, staffRepo, schoolRepo, leaveRepo, scope, pol),
		attRepo: attRepo,
		staff:   staffRepo,
		leave:   leaveRepo,
		scope:   scope,
		policy:  pol,
	}
}

func actingStaff(id string) access.ActingUser {
	return access.ActingUser{ID: id, SchoolID: testSchoolID, Role: staff.RoleStaff}
}

func actingAdmin() access.ActingUser {
	return access.ActingUser{ID: adminID, SchoolID: testSchoolID, Role: staff.RoleAdmin}
}

// seedPunch injects an existing punch offset from the current instant,
// so hour-sensitive scenarios run against the real clock.
func (fx *fixture) seedPunch(t *testing.T, staffID string, punchType attendance.PunchType, ago time.Duration) attendance.Record {
	t.Helper()
	ctx := context.Background()
	today := mustToday()
	rec, err := fx.attRepo.GetOrCreate(ctx, staffID, testSchoolID, today)
	require.NoError(t, err)
	_, err = fx.attRepo.CreatePunch(ctx, rec.ID, punchType, time.Now().Add(-ago))
	require.NoError(t, err)
	return rec
}

func mustToday() time.Time {
	now := time.Now().UTC()
	// Mirror of the production day normalization for the test school.
	loc, _ := time.LoadLocation(testTZ)
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ---- scenarios -------------------------------------------------------------

func TestTogglePunch_FirstPunchCreatesPresentRecord(t *testing.T) {
	fx := newFixture()

	resp, err := fx.svc.TogglePunch(context.Background(), actingStaff(memberID), testSlug,
		attendance.TogglePunchRequest{StaffID: memberID})
	require.NoError(t, err)

	assert.Equal(t, attendance.PunchIn, resp.Punch.Type)
	assert.Equal(t, attendance.StatusPresent, resp.Record.Status)
	assert.Equal(t, 0.0, resp.Record.TotalHours)
}

func TestTogglePunch_ClockOutFullDayIsPresent(t *testing.T) {
	fx := newFixture()
	fx.seedPunch(t, memberID, attendance.PunchIn, 8*time.Hour+30*time.Minute)

	resp, err := fx.svc.TogglePunch(context.Background(), actingStaff(memberID), testSlug,
		attendance.TogglePunchRequest{StaffID: memberID})
	require.NoError(t, err)

	assert.Equal(t, attendance.PunchOut, resp.Punch.Type)
	assert.Equal(t, attendance.StatusPresent, resp.Record.Status)
	assert.InDelta(t, 8.5, resp.Record.TotalHours, 0.05)
}

func TestTogglePunch_ShortDayIsAbsent(t *testing.T) {
	fx := newFixture()
	fx.seedPunch(t, memberID, attendance.PunchIn, 2*time.Hour)

	resp, err := fx.svc.TogglePunch(context.Background(), actingStaff(memberID), testSlug,
		attendance.TogglePunchRequest{StaffID: memberID})
	require.NoError(t, err)

	assert.Equal(t, attendance.PunchOut, resp.Punch.Type)
	assert.Equal(t, attendance.StatusAbsent, resp.Record.Status)
}

func TestTogglePunch_HalfDay(t *testing.T) {
	fx := newFixture()
	fx.seedPunch(t, memberID, attendance.PunchIn, 5*time.Hour)

	resp, err := fx.svc.TogglePunch(context.Background(), actingStaff(memberID), testSlug,
		attendance.TogglePunchRequest{StaffID: memberID})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusHalfDay, resp.Record.Status)
}

func TestTogglePunch_TooSoonReportsWait(t *testing.T) {
	fx := newFixture()
	fx.policy.p.MinPunchGapMinutes = 5
	fx.seedPunch(t, memberID, attendance.PunchIn, 30*time.Second)

	_, err := fx.svc.TogglePunch(context.Background(), actingStaff(memberID), testSlug,
		attendance.TogglePunchRequest{StaffID: memberID})

	var tooSoon *attendance.PunchTooSoonError
	require.ErrorAs(t, err, &tooSoon)
	assert.Equal(t, 5, tooSoon.WaitMinutes)
	assert.Contains(t, tooSoon.Error(), "wait 5 more minute(s)")
}

func TestTogglePunch_PunchLimit(t *testing.T) {
	fx := newFixture()
	fx.policy.p.MaxDailyPunchEvents = 10
	for i := 0; i < 10; i++ {
		punchType := attendance.PunchIn
		if i%2 == 1 {
			punchType = attendance.PunchOut
		}
		fx.seedPunch(t, memberID, punchType, time.Duration(10-i)*time.Hour)
	}

	_, err := fx.svc.TogglePunch(context.Background(), actingStaff(memberID), testSlug,
		attendance.TogglePunchRequest{StaffID: memberID})
	assert.ErrorIs(t, err, attendance.ErrPunchLimitExceeded)
}

func TestTogglePunch_FutureDateRejected(t *testing.T) {
	fx := newFixture()
	tomorrow := mustToday().AddDate(0, 0, 1).Format("2006-01-02")

	// Even an admin cannot punch into the future.
	_, err := fx.svc.TogglePunch(context.Background(), actingAdmin(), testSlug,
		attendance.TogglePunchRequest{StaffID: memberID, Date: tomorrow})
	assert.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestTogglePunch_Alternation(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	first, err := fx.svc.TogglePunch(ctx, actingStaff(memberID), testSlug,
		attendance.TogglePunchRequest{StaffID: memberID})
	require.NoError(t, err)
	second, err := fx.svc.TogglePunch(ctx, actingStaff(memberID), testSlug,
		attendance.TogglePunchRequest{StaffID: memberID})
	require.NoError(t, err)
	third, err := fx.svc.TogglePunch(ctx, actingStaff(memberID), testSlug,
		attendance.TogglePunchRequest{StaffID: memberID})
	require.NoError(t, err)

	assert.Equal(t, attendance.PunchIn, first.Punch.Type)
	assert.Equal(t, attendance.PunchOut, second.Punch.Type)
	assert.Equal(t, attendance.PunchIn, third.Punch.Type)
}

func TestTogglePunch_LatePreservedOnReentry(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	// Admin marks the member LATE, then the member clocks in.
	_, err := fx.svc.MarkStatus(ctx, actingAdmin(), testSlug, attendance.MarkStatusRequest{
		StaffID: memberID,
		Date:    mustToday().Format("2006-01-02"),
		Status:  attendance.StatusLate,
	})
	require.NoError(t, err)

	resp, err := fx.svc.TogglePunch(ctx, actingStaff(memberID), testSlug,
		attendance.TogglePunchRequest{StaffID: memberID})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Record.Status)
}

func TestTogglePunch_WriteGuard(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	// A plain staff member cannot punch for someone else.
	_, err := fx.svc.TogglePunch(ctx, actingStaff(memberID), testSlug,
		attendance.TogglePunchRequest{StaffID: otherMemberID})
	assert.ErrorIs(t, err, access.ErrUnauthorized)

	// An admin can.
	_, err = fx.svc.TogglePunch(ctx, actingAdmin(), testSlug,
		attendance.TogglePunchRequest{StaffID: otherMemberID})
	assert.NoError(t, err)
}

func TestDelegatedManagerCanReadButNotWrite(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	managerID := memberID
	fx.scope.scope = access.Scope{Kind: access.ScopeSelected, StaffIDs: []string{otherMemberID, managerID}}

	// Seed records for the delegated target, the manager, and an
	// unrelated admin record.
	_, err := fx.svc.TogglePunch(ctx, actingAdmin(), testSlug, attendance.TogglePunchRequest{StaffID: otherMemberID})
	require.NoError(t, err)
	_, err = fx.svc.TogglePunch(ctx, actingStaff(managerID), testSlug, attendance.TogglePunchRequest{StaffID: managerID})
	require.NoError(t, err)
	_, err = fx.svc.TogglePunch(ctx, actingAdmin(), testSlug, attendance.TogglePunchRequest{StaffID: adminID})
	require.NoError(t, err)

	// Read: delegated target and self visible, admin's record is not.
	records, err := fx.svc.ListAttendance(ctx, actingStaff(managerID), testSlug, attendance.ListFilter{})
	require.NoError(t, err)
	var seen []string
	for _, r := range records {
		seen = append(seen, r.StaffID)
	}
	assert.ElementsMatch(t, []string{otherMemberID, managerID}, seen)

	// Write: the same manager cannot punch for the delegated target.
	_, err = fx.svc.TogglePunch(ctx, actingStaff(managerID), testSlug,
		attendance.TogglePunchRequest{StaffID: otherMemberID})
	assert.ErrorIs(t, err, access.ErrUnauthorized)
}

func TestListAttendance_NoneScopeIsEmpty(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	_, err := fx.svc.TogglePunch(ctx, actingAdmin(), testSlug, attendance.TogglePunchRequest{StaffID: memberID})
	require.NoError(t, err)

	fx.scope.scope = access.Scope{Kind: access.ScopeNone}
	records, err := fx.svc.ListAttendance(ctx, actingStaff(otherMemberID), testSlug, attendance.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMarkStatus_PreservesDerivedHours(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	fx.seedPunch(t, memberID, attendance.PunchIn, 5*time.Hour)

	// Clock out, accruing roughly five hours.
	resp, err := fx.svc.TogglePunch(ctx, actingStaff(memberID), testSlug,
		attendance.TogglePunchRequest{StaffID: memberID})
	require.NoError(t, err)
	require.InDelta(t, 5.0, resp.Record.TotalHours, 0.05)

	notes := "medical appointment"
	marked, err := fx.svc.MarkStatus(ctx, actingAdmin(), testSlug, attendance.MarkStatusRequest{
		StaffID: memberID,
		Date:    mustToday().Format("2006-01-02"),
		Status:  attendance.StatusPresent,
		Notes:   &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, marked.Status)
	assert.InDelta(t, 5.0, marked.TotalHours, 0.05)
	require.NotNil(t, marked.Notes)
	assert.Equal(t, notes, *marked.Notes)
}

func TestMarkStatus_FutureDateRejected(t *testing.T) {
	fx := newFixture()
	tomorrow := mustToday().AddDate(0, 0, 1).Format("2006-01-02")

	_, err := fx.svc.MarkStatus(context.Background(), actingAdmin(), testSlug, attendance.MarkStatusRequest{
		StaffID: memberID,
		Date:    tomorrow,
		Status:  attendance.StatusAbsent,
	})
	assert.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestGetAnalytics_NoneScopeIsZeroed(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	_, err := fx.svc.TogglePunch(ctx, actingAdmin(), testSlug, attendance.TogglePunchRequest{StaffID: memberID})
	require.NoError(t, err)
	fx.leave.approvedCount = 3

	fx.scope.scope = access.Scope{Kind: access.ScopeNone}
	today := mustToday()
	resp, err := fx.svc.GetAnalytics(ctx, actingStaff(otherMemberID), testSlug, int(today.Month()), today.Year())
	require.NoError(t, err)

	assert.Zero(t, resp.PresentCount)
	assert.Zero(t, resp.LeaveCount)
	assert.Zero(t, resp.AvgHours)
}

func TestGetAnalytics_CountsScopedRecords(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	today := mustToday()

	_, err := fx.svc.MarkStatus(ctx, actingAdmin(), testSlug, attendance.MarkStatusRequest{
		StaffID: memberID, Date: today.Format("2006-01-02"), Status: attendance.StatusPresent,
	})
	require.NoError(t, err)
	_, err = fx.svc.MarkStatus(ctx, actingAdmin(), testSlug, attendance.MarkStatusRequest{
		StaffID: otherMemberID, Date: today.Format("2006-01-02"), Status: attendance.StatusLate,
	})
	require.NoError(t, err)
	fx.leave.approvedCount = 2

	resp, err := fx.svc.GetAnalytics(ctx, actingAdmin(), testSlug, int(today.Month()), today.Year())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.PresentCount)
	assert.Equal(t, int64(1), resp.LateCount)
	assert.Equal(t, int64(2), resp.LeaveCount)
}

func TestGetStaffHistory_ScopeEnforced(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	_, err := fx.svc.TogglePunch(ctx, actingStaff(memberID), testSlug,
		attendance.TogglePunchRequest{StaffID: memberID})
	require.NoError(t, err)

	// OWN scope: self readable, others not.
	fx.scope.scope = access.Scope{Kind: access.ScopeOwn}
	hist, err := fx.svc.GetStaffHistory(ctx, actingStaff(memberID), testSlug, memberID)
	require.NoError(t, err)
	assert.Len(t, hist.Records, 1)
	assert.Equal(t, int64(1), hist.Summary.PresentCount)

	_, err = fx.svc.GetStaffHistory(ctx, actingStaff(memberID), testSlug, otherMemberID)
	assert.ErrorIs(t, err, access.ErrUnauthorized)
}

func TestResolveSchool_MembershipEnforced(t *testing.T) {
	fx := newFixture()
	outsider := access.ActingUser{ID: "stranger", SchoolID: "sch-2", Role: staff.RoleAdmin}

	_, err := fx.svc.ListAttendance(context.Background(), outsider, testSlug, attendance.ListFilter{})
	assert.ErrorIs(t, err, school.ErrSchoolAccessDenied)

	_, err = fx.svc.ListAttendance(context.Background(), actingAdmin(), "no-such-school", attendance.ListFilter{})
	assert.ErrorIs(t, err, school.ErrSchoolNotFound)
}

func TestTogglePunch_UnknownStaff(t *testing.T) {
	fx := newFixture()
	_, err := fx.svc.TogglePunch(context.Background(), actingAdmin(), testSlug,
		attendance.TogglePunchRequest{StaffID: fmt.Sprintf("ghost-%d", time.Now().Unix())})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}
