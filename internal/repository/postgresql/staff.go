package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/staff"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `
	id, school_id, name, email, password_hash, role, custom_role_id,
	is_active, created_at, updated_at
`

func scanStaffMember(row pgx.Row) (staff.StaffMember, error) {
	var m staff.StaffMember
	err := row.Scan(
		&m.ID, &m.SchoolID, &m.Name, &m.Email, &m.PasswordHash,
		&m.Role, &m.CustomRoleID, &m.IsActive,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// GetByID implements staff.StaffRepository.
func (s *staffRepository) GetByID(ctx context.Context, id string, schoolID string) (staff.StaffMember, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff_members
		WHERE id = $1
		  AND school_id = $2
	`

	m, err := scanStaffMember(q.QueryRow(ctx, query, id, schoolID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffMember{}, staff.ErrStaffNotFound
		}
		return staff.StaffMember{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return m, nil
}

// GetByEmail implements staff.StaffRepository.
func (s *staffRepository) GetByEmail(ctx context.Context, email string) (staff.StaffMember, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff_members
		WHERE LOWER(email) = LOWER($1)
	`

	m, err := scanStaffMember(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffMember{}, staff.ErrStaffNotFound
		}
		return staff.StaffMember{}, fmt.Errorf("failed to get staff member by email: %w", err)
	}

	return m, nil
}

// ListBySchool implements staff.StaffRepository.
func (s *staffRepository) ListBySchool(ctx context.Context, schoolID string) ([]staff.StaffMember, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff_members
		WHERE school_id = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff members: %w", err)
	}
	defer rows.Close()

	var members []staff.StaffMember
	for rows.Next() {
		m, err := scanStaffMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff members: %w", err)
	}

	return members, nil
}

// Get implements staff.StaffRepository.
func (s *staffRepository) Get(ctx context.Context, id string) (staff.StaffMember, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff_members
		WHERE id = $1
	`

	m, err := scanStaffMember(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffMember{}, staff.ErrStaffNotFound
		}
		return staff.StaffMember{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return m, nil
}
