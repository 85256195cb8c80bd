package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/attendance"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// GetOrCreate implements attendance.AttendanceRepository.
//
// The insert races on the (staff_id, date) unique key; ON CONFLICT
// DO UPDATE makes the statement always return the surviving row, so
// two concurrent first punches of the day resolve to one record.
func (a *attendanceRepository) GetOrCreate(ctx context.Context, staffID string, schoolID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (staff_id, school_id, date, status, total_hours)
		VALUES ($1, $2, $3, '', 0)
		ON CONFLICT (staff_id, date) DO UPDATE SET updated_at = NOW()
		RETURNING id, staff_id, school_id, date, status, total_hours, notes, created_at, updated_at
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, staffID, schoolID, date).Scan(
		&rec.ID, &rec.StaffID, &rec.SchoolID, &rec.Date,
		&rec.Status, &rec.TotalHours, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to get or create attendance record: %w", err)
	}

	return rec, nil
}

// GetByStaffAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByStaffAndDate(ctx context.Context, staffID string, schoolID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, staff_id, school_id, date, status, total_hours, notes, created_at, updated_at
		FROM attendance_records
		WHERE staff_id = $1
		  AND school_id = $2
		  AND date = $3
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, staffID, schoolID, date).Scan(
		&rec.ID, &rec.StaffID, &rec.SchoolID, &rec.Date,
		&rec.Status, &rec.TotalHours, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// ListPunches implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListPunches(ctx context.Context, recordID string) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, record_id, punch_type, punched_at, created_at
		FROM attendance_punches
		WHERE record_id = $1
		ORDER BY punched_at ASC
	`

	rows, err := q.Query(ctx, query, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []attendance.Punch
	for rows.Next() {
		var p attendance.Punch
		if err := rows.Scan(&p.ID, &p.RecordID, &p.Type, &p.Timestamp, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, nil
}

// CreatePunch implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreatePunch(ctx context.Context, recordID string, punchType attendance.PunchType, at time.Time) (attendance.Punch, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_punches (record_id, punch_type, punched_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	p := attendance.Punch{RecordID: recordID, Type: punchType, Timestamp: at}
	err := q.QueryRow(ctx, query, recordID, punchType, at).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return attendance.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

// UpdateDerived implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateDerived(ctx context.Context, recordID string, status attendance.Status, totalHours float64) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET status = $2, total_hours = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, recordID, status, totalHours)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// UpsertStatus implements attendance.AttendanceRepository.
//
// total_hours is deliberately absent from the DO UPDATE SET list: a
// manual mark overrides status without touching derived hours.
func (a *attendanceRepository) UpsertStatus(ctx context.Context, staffID string, schoolID string, date time.Time, status attendance.Status, notes *string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (staff_id, school_id, date, status, total_hours, notes)
		VALUES ($1, $2, $3, $4, 0, $5)
		ON CONFLICT (staff_id, date) DO UPDATE
		SET status = EXCLUDED.status, notes = EXCLUDED.notes, updated_at = NOW()
		RETURNING id, staff_id, school_id, date, status, total_hours, notes, created_at, updated_at
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, staffID, schoolID, date, status, notes).Scan(
		&rec.ID, &rec.StaffID, &rec.SchoolID, &rec.Date,
		&rec.Status, &rec.TotalHours, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance status: %w", err)
	}

	return rec, nil
}

// ListBySchoolAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListBySchoolAndDate(ctx context.Context, schoolID string, date time.Time, staffIDs []string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ar.id, ar.staff_id, ar.school_id, ar.date, ar.status, ar.total_hours, ar.notes,
			   ar.created_at, ar.updated_at, sm.name
		FROM attendance_records ar
		JOIN staff_members sm ON sm.id = ar.staff_id
		WHERE ar.school_id = $1
		  AND ar.date = $2
	`
	args := []interface{}{schoolID, date}

	if staffIDs != nil {
		query += ` AND ar.staff_id = ANY($3)`
		args = append(args, staffIDs)
	}
	query += ` ORDER BY sm.name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectRecordsWithName(rows)
}

// ListByStaff implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByStaff(ctx context.Context, staffID string, schoolID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ar.id, ar.staff_id, ar.school_id, ar.date, ar.status, ar.total_hours, ar.notes,
			   ar.created_at, ar.updated_at, sm.name
		FROM attendance_records ar
		JOIN staff_members sm ON sm.id = ar.staff_id
		WHERE ar.staff_id = $1
		  AND ar.school_id = $2
		ORDER BY ar.date DESC
	`

	rows, err := q.Query(ctx, query, staffID, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}
	defer rows.Close()

	return collectRecordsWithName(rows)
}

func collectRecordsWithName(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.SchoolID, &rec.Date,
			&rec.Status, &rec.TotalHours, &rec.Notes,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.StaffName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// CountByStatus implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByStatus(ctx context.Context, schoolID string, from time.Time, to time.Time, staffIDs []string) (attendance.StatusCounts, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'PRESENT'),
			COUNT(*) FILTER (WHERE status = 'LATE'),
			COUNT(*) FILTER (WHERE status = 'HALF_DAY'),
			COUNT(*) FILTER (WHERE status = 'ABSENT'),
			COALESCE(SUM(total_hours), 0),
			COUNT(*)
		FROM attendance_records
		WHERE school_id = $1
		  AND date >= $2
		  AND date < $3
	`
	args := []interface{}{schoolID, from, to}

	if staffIDs != nil {
		query += ` AND staff_id = ANY($4)`
		args = append(args, staffIDs)
	}

	var counts attendance.StatusCounts
	err := q.QueryRow(ctx, query, args...).Scan(
		&counts.Present, &counts.Late, &counts.HalfDay, &counts.Absent,
		&counts.SumHours, &counts.RecordCount,
	)
	if err != nil {
		return attendance.StatusCounts{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	return counts, nil
}
