package attendance

import (
	"github.com/schoolhub/attendance-backend-go/internal/pkg/validator"
)

type TogglePunchRequest struct {
	StaffID string `json:"staff_id"`
	// Date is optional; empty means the school's current day.
	Date string `json:"date,omitempty"`
}

func (r *TogglePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkStatusRequest struct {
	StaffID string  `json:"staff_id"`
	Date    string  `json:"date"`
	Status  Status  `json:"status"`
	Notes   *string `json:"notes,omitempty"`
}

func (r *MarkStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, LATE, HALF_DAY, ABSENT",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter filters the school-wide attendance listing.
type ListFilter struct {
	// Date in YYYY-MM-DD; empty means the school's current day.
	Date string
}

type RecordResponse struct {
	ID         string  `json:"id"`
	StaffID    string  `json:"staff_id"`
	StaffName  string  `json:"staff_name,omitempty"`
	Date       string  `json:"date"`
	Status     Status  `json:"status"`
	TotalHours float64 `json:"total_hours"`
	Notes      *string `json:"notes,omitempty"`
}

type PunchResponse struct {
	ID        string    `json:"id"`
	Type      PunchType `json:"type"`
	Timestamp string    `json:"timestamp"`
}

// TogglePunchResponse reports the punch just recorded together with
// the freshly derived record state.
type TogglePunchResponse struct {
	Record RecordResponse `json:"record"`
	Punch  PunchResponse  `json:"punch"`
}

type AnalyticsResponse struct {
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	PresentCount int64   `json:"present_count"`
	LateCount    int64   `json:"late_count"`
	HalfDayCount int64   `json:"half_day_count"`
	AbsentCount  int64   `json:"absent_count"`
	LeaveCount   int64   `json:"leave_count"`
	AvgHours     float64 `json:"avg_hours"`
}

type HistorySummary struct {
	PresentCount int64   `json:"present_count"`
	LateCount    int64   `json:"late_count"`
	HalfDayCount int64   `json:"half_day_count"`
	AbsentCount  int64   `json:"absent_count"`
	TotalHours   float64 `json:"total_hours"`
}

type HistoryResponse struct {
	StaffID string           `json:"staff_id"`
	Records []RecordResponse `json:"records"`
	Summary HistorySummary   `json:"summary"`
}
