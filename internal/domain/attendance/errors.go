package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrFutureDate         = errors.New("attendance cannot be recorded for a future date")
	ErrPunchLimitExceeded = errors.New("maximum daily punch limit reached")
	ErrRecordNotFound     = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)

// PunchTooSoonError is returned when a punch arrives before the
// policy's minimum gap has elapsed. WaitMinutes is the remaining wait
// rounded up to whole minutes.
type PunchTooSoonError struct {
	WaitMinutes int
}

func (e *PunchTooSoonError) Error() string {
	return fmt.Sprintf("Please wait %d more minute(s) before punching again", e.WaitMinutes)
}
