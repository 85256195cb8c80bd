package policy

type PolicyResponse struct {
	ID                  string  `json:"id"`
	RoleID              *string `json:"role_id,omitempty"`
	IsDefault           bool    `json:"is_default"`
	MinFullDayHours     float64 `json:"min_full_day_hours"`
	MinHalfDayHours     float64 `json:"min_half_day_hours"`
	MaxDailyPunchEvents int     `json:"max_daily_punch_events"`
	MinPunchGapMinutes  int     `json:"min_punch_gap_minutes"`
}
