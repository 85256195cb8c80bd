package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/leave"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			staff_id, school_id, start_date, end_date, leave_type, status, reason
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.StaffID,
		req.SchoolID,
		req.StartDate,
		req.EndDate,
		req.Type,
		req.Status,
		req.Reason,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string, schoolID string) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lr.id, lr.staff_id, lr.school_id, lr.start_date, lr.end_date,
			   lr.leave_type, lr.status, lr.reason, lr.reviewed_by, lr.reviewed_at,
			   lr.created_at, lr.updated_at, sm.name
		FROM leave_requests lr
		JOIN staff_members sm ON sm.id = lr.staff_id
		WHERE lr.id = $1
		  AND lr.school_id = $2
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id, schoolID).Scan(
		&req.ID, &req.StaffID, &req.SchoolID, &req.StartDate, &req.EndDate,
		&req.Type, &req.Status, &req.Reason, &req.ReviewedBy, &req.ReviewedAt,
		&req.CreatedAt, &req.UpdatedAt, &req.StaffName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// ListBySchool implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListBySchool(ctx context.Context, schoolID string, staffIDs []string) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lr.id, lr.staff_id, lr.school_id, lr.start_date, lr.end_date,
			   lr.leave_type, lr.status, lr.reason, lr.reviewed_by, lr.reviewed_at,
			   lr.created_at, lr.updated_at, sm.name
		FROM leave_requests lr
		JOIN staff_members sm ON sm.id = lr.staff_id
		WHERE lr.school_id = $1
	`
	args := []interface{}{schoolID}

	if staffIDs != nil {
		query += ` AND lr.staff_id = ANY($2)`
		args = append(args, staffIDs)
	}
	query += ` ORDER BY lr.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.StaffID, &req.SchoolID, &req.StartDate, &req.EndDate,
			&req.Type, &req.Status, &req.Reason, &req.ReviewedBy, &req.ReviewedAt,
			&req.CreatedAt, &req.UpdatedAt, &req.StaffName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
//
// The status predicate keeps the transition single shot: a request
// that already left PENDING is not updated again.
func (l *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, schoolID string, status leave.RequestStatus, reviewerID string, reviewedAt time.Time) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $3, reviewed_by = $4, reviewed_at = $5, updated_at = NOW()
		WHERE id = $1
		  AND school_id = $2
		  AND status = 'PENDING'
	`

	tag, err := q.Exec(ctx, query, id, schoolID, status, reviewerID, reviewedAt)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return nil
}

// CountApprovedInRange implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) CountApprovedInRange(ctx context.Context, schoolID string, from time.Time, to time.Time, staffIDs []string) (int64, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE school_id = $1
		  AND status = 'APPROVED'
		  AND start_date < $3
		  AND end_date >= $2
	`
	args := []interface{}{schoolID, from, to}

	if staffIDs != nil {
		query += ` AND staff_id = ANY($4)`
		args = append(args, staffIDs)
	}

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count approved leave requests: %w", err)
	}

	return count, nil
}
