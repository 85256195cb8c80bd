package policy

import "time"

// LeavePolicy is a configurable attendance policy row. A school may
// hold several: role-specific ones (RoleID set) and at most one
// default (IsDefault).
type LeavePolicy struct {
	ID        string
	SchoolID  string
	RoleID    *string
	IsDefault bool

	MinFullDayHours     float64
	MinHalfDayHours     float64
	MaxDailyPunchEvents int
	MinPunchGapMinutes  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Policy is the resolved, effective set of thresholds applied to one
// punch or derivation. Resolution always yields concrete values.
type Policy struct {
	MinFullDayHours     float64
	MinHalfDayHours     float64
	MaxDailyPunchEvents int
	MinPunchGapMinutes  int
}

// Default returns the hard-coded fallback policy applied when no
// LeavePolicy rows match.
func Default() Policy {
	return Policy{
		MinFullDayHours:     8.0,
		MinHalfDayHours:     4.0,
		MaxDailyPunchEvents: 10,
		MinPunchGapMinutes:  0,
	}
}

// Effective converts a stored policy row into the applied thresholds.
func (p LeavePolicy) Effective() Policy {
	return Policy{
		MinFullDayHours:     p.MinFullDayHours,
		MinHalfDayHours:     p.MinHalfDayHours,
		MaxDailyPunchEvents: p.MaxDailyPunchEvents,
		MinPunchGapMinutes:  p.MinPunchGapMinutes,
	}
}
