package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/school"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/database"
)

type schoolRepository struct {
	db *database.DB
}

func NewSchoolRepository(db *database.DB) school.SchoolRepository {
	return &schoolRepository{db: db}
}

// GetByID implements school.SchoolRepository.
func (s *schoolRepository) GetByID(ctx context.Context, id string) (school.School, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, slug, timezone, created_at, updated_at
		FROM schools
		WHERE id = $1
	`

	var sch school.School
	err := q.QueryRow(ctx, query, id).Scan(
		&sch.ID, &sch.Name, &sch.Slug, &sch.Timezone,
		&sch.CreatedAt, &sch.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return school.School{}, school.ErrSchoolNotFound
		}
		return school.School{}, fmt.Errorf("failed to get school: %w", err)
	}

	return sch, nil
}

// GetBySlug implements school.SchoolRepository.
func (s *schoolRepository) GetBySlug(ctx context.Context, slug string) (school.School, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, slug, timezone, created_at, updated_at
		FROM schools
		WHERE slug = $1
	`

	var sch school.School
	err := q.QueryRow(ctx, query, slug).Scan(
		&sch.ID, &sch.Name, &sch.Slug, &sch.Timezone,
		&sch.CreatedAt, &sch.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return school.School{}, school.ErrSchoolNotFound
		}
		return school.School{}, fmt.Errorf("failed to get school by slug: %w", err)
	}

	return sch, nil
}
