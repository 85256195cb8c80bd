package attendance

import (
	"context"
	"time"
)

// StatusCounts aggregates record counts per status over a scoped set.
type StatusCounts struct {
	Present int64
	Late    int64
	HalfDay int64
	Absent  int64

	// SumHours and RecordCount feed the average-hours figure.
	SumHours    float64
	RecordCount int64
}

// AttendanceRepository persists attendance records and their punches.
// All methods take schoolID to prevent cross-school access. Wherever a
// staffIDs filter appears, nil means unfiltered and an empty slice
// means match nothing.
type AttendanceRepository interface {
	// GetOrCreate atomically fetches or creates the record for one
	// (staff, day), keyed on the unique (staff_id, date) pair so
	// concurrent first punches land on a single record.
	GetOrCreate(ctx context.Context, staffID string, schoolID string, date time.Time) (Record, error)

	GetByStaffAndDate(ctx context.Context, staffID string, schoolID string, date time.Time) (Record, error)

	// ListPunches returns a record's punches ordered by timestamp.
	ListPunches(ctx context.Context, recordID string) ([]Punch, error)

	CreatePunch(ctx context.Context, recordID string, punchType PunchType, at time.Time) (Punch, error)

	// UpdateDerived persists the recomputed status and total hours.
	UpdateDerived(ctx context.Context, recordID string, status Status, totalHours float64) error

	// UpsertStatus creates or overwrites the record's status and notes
	// for a manual mark, leaving total hours untouched.
	UpsertStatus(ctx context.Context, staffID string, schoolID string, date time.Time, status Status, notes *string) (Record, error)

	ListBySchoolAndDate(ctx context.Context, schoolID string, date time.Time, staffIDs []string) ([]Record, error)

	ListByStaff(ctx context.Context, staffID string, schoolID string) ([]Record, error)

	// CountByStatus aggregates over records in [from, to) for the
	// scoped staff set.
	CountByStatus(ctx context.Context, schoolID string, from time.Time, to time.Time, staffIDs []string) (StatusCounts, error)
}
