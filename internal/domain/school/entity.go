package school

import "time"

type School struct {
	ID       string
	Name     string
	Slug     string
	Timezone string

	CreatedAt time.Time
	UpdatedAt time.Time
}
