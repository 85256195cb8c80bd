package school

import "context"

type SchoolRepository interface {
	GetByID(ctx context.Context, id string) (School, error)

	// GetBySlug resolves the school referenced in a request URL.
	GetBySlug(ctx context.Context, slug string) (School, error)
}
