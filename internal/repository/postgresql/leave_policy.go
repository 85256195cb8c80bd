package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/policy"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/database"
)

type leavePolicyRepository struct {
	db *database.DB
}

func NewLeavePolicyRepository(db *database.DB) policy.LeavePolicyRepository {
	return &leavePolicyRepository{db: db}
}

const leavePolicyColumns = `
	id, school_id, role_id, is_default,
	min_full_day_hours, min_half_day_hours,
	max_daily_punch_events, min_punch_gap_minutes,
	created_at, updated_at
`

func scanLeavePolicy(row pgx.Row) (policy.LeavePolicy, error) {
	var p policy.LeavePolicy
	err := row.Scan(
		&p.ID, &p.SchoolID, &p.RoleID, &p.IsDefault,
		&p.MinFullDayHours, &p.MinHalfDayHours,
		&p.MaxDailyPunchEvents, &p.MinPunchGapMinutes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// GetByRole implements policy.LeavePolicyRepository.
func (l *leavePolicyRepository) GetByRole(ctx context.Context, schoolID string, roleID string) (policy.LeavePolicy, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leavePolicyColumns + `
		FROM leave_policies
		WHERE school_id = $1
		  AND role_id = $2
		LIMIT 1
	`

	p, err := scanLeavePolicy(q.QueryRow(ctx, query, schoolID, roleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.LeavePolicy{}, policy.ErrPolicyNotFound
		}
		return policy.LeavePolicy{}, fmt.Errorf("failed to get role policy: %w", err)
	}

	return p, nil
}

// GetDefault implements policy.LeavePolicyRepository.
func (l *leavePolicyRepository) GetDefault(ctx context.Context, schoolID string) (policy.LeavePolicy, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leavePolicyColumns + `
		FROM leave_policies
		WHERE school_id = $1
		  AND is_default = TRUE
		LIMIT 1
	`

	p, err := scanLeavePolicy(q.QueryRow(ctx, query, schoolID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.LeavePolicy{}, policy.ErrPolicyNotFound
		}
		return policy.LeavePolicy{}, fmt.Errorf("failed to get default policy: %w", err)
	}

	return p, nil
}

// ListBySchool implements policy.LeavePolicyRepository.
func (l *leavePolicyRepository) ListBySchool(ctx context.Context, schoolID string) ([]policy.LeavePolicy, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leavePolicyColumns + `
		FROM leave_policies
		WHERE school_id = $1
		ORDER BY is_default DESC, created_at ASC
	`

	rows, err := q.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	defer rows.Close()

	var policies []policy.LeavePolicy
	for rows.Next() {
		p, err := scanLeavePolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan policy: %w", err)
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate policies: %w", err)
	}

	return policies, nil
}

// Create implements policy.LeavePolicyRepository.
func (l *leavePolicyRepository) Create(ctx context.Context, p policy.LeavePolicy) (policy.LeavePolicy, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_policies (
			school_id, role_id, is_default,
			min_full_day_hours, min_half_day_hours,
			max_daily_punch_events, min_punch_gap_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.SchoolID,
		p.RoleID,
		p.IsDefault,
		p.MinFullDayHours,
		p.MinHalfDayHours,
		p.MaxDailyPunchEvents,
		p.MinPunchGapMinutes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return policy.LeavePolicy{}, fmt.Errorf("failed to create policy: %w", err)
	}

	return p, nil
}
