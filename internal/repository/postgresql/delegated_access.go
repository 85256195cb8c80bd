package postgresql

import (
	"context"
	"fmt"

	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/database"
)

type delegatedAccessRepository struct {
	db *database.DB
}

func NewDelegatedAccessRepository(db *database.DB) access.DelegatedAccessRepository {
	return &delegatedAccessRepository{db: db}
}

// ListStaffIDsByManager implements access.DelegatedAccessRepository.
func (d *delegatedAccessRepository) ListStaffIDsByManager(ctx context.Context, managerID string, schoolID string) ([]string, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT staff_id
		FROM delegated_access
		WHERE manager_id = $1
		  AND school_id = $2
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, managerID, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list delegated staff: %w", err)
	}
	defer rows.Close()

	var staffIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan delegated staff id: %w", err)
		}
		staffIDs = append(staffIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate delegated staff: %w", err)
	}

	return staffIDs, nil
}
