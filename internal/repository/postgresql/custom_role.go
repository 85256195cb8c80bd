package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/database"
)

type customRoleRepository struct {
	db *database.DB
}

func NewCustomRoleRepository(db *database.DB) access.CustomRoleRepository {
	return &customRoleRepository{db: db}
}

// GetByID implements access.CustomRoleRepository.
func (c *customRoleRepository) GetByID(ctx context.Context, id string, schoolID string) (access.CustomRole, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, school_id, name, grant_document, created_at, updated_at
		FROM custom_roles
		WHERE id = $1
		  AND school_id = $2
	`

	var role access.CustomRole
	err := q.QueryRow(ctx, query, id, schoolID).Scan(
		&role.ID, &role.SchoolID, &role.Name, &role.Grant,
		&role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return access.CustomRole{}, access.ErrCustomRoleNotFound
		}
		return access.CustomRole{}, fmt.Errorf("failed to get custom role: %w", err)
	}

	return role, nil
}
