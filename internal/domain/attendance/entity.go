package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusHalfDay Status = "HALF_DAY"
	StatusAbsent  Status = "ABSENT"
)

// ValidStatuses are the statuses accepted from manual marking.
var ValidStatuses = []Status{StatusPresent, StatusLate, StatusHalfDay, StatusAbsent}

func IsValidStatus(s Status) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type PunchType string

const (
	PunchIn  PunchType = "IN"
	PunchOut PunchType = "OUT"
)

// Complement returns the opposite punch type.
func (t PunchType) Complement() PunchType {
	if t == PunchIn {
		return PunchOut
	}
	return PunchIn
}

// Record is the one-per-staff-per-day attendance aggregate. Date is a
// calendar day normalized to midnight UTC; Status and TotalHours are
// derived from the punch list and persisted eagerly, but are always
// recomputable from scratch.
type Record struct {
	ID         string
	StaffID    string
	SchoolID   string
	Date       time.Time
	Status     Status
	TotalHours float64
	Notes      *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	StaffName *string
}

// Punch is a single clock event. Immutable once created; the
// timestamp is always server-assigned.
type Punch struct {
	ID        string
	RecordID  string
	Type      PunchType
	Timestamp time.Time

	CreatedAt time.Time
}
