package leave

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

func IsValidRequestStatus(s RequestStatus) bool {
	return s == RequestStatusPending || s == RequestStatusApproved || s == RequestStatusRejected
}

// Request is a staff leave request. Created by (or on behalf of) a
// staff member; status mutated once by an approver.
type Request struct {
	ID        string
	StaffID   string
	SchoolID  string
	StartDate time.Time
	EndDate   time.Time
	Type      string
	Status    RequestStatus
	Reason    string

	ReviewedBy *string
	ReviewedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	StaffName *string
}
