package attendance

import (
	"sort"

	"github.com/schoolhub/attendance-backend-go/internal/domain/policy"
)

// NextPunchType returns the type the next punch must take: the
// complement of the most recent punch, or IN when the day has none.
// Punches within a record strictly alternate starting with IN.
func NextPunchType(punches []Punch) PunchType {
	if len(punches) == 0 {
		return PunchIn
	}
	last := punches[0]
	for _, p := range punches[1:] {
		if p.Timestamp.After(last.Timestamp) {
			last = p
		}
	}
	return last.Type.Complement()
}

// ComputeTotalHours recomputes worked hours as the sum of completed
// IN->OUT intervals. It is recomputed from the full punch list on
// every punch, never patched incrementally, so historical corrections
// stay safe. A trailing unmatched IN contributes nothing; a dangling
// OUT with no open IN is ignored.
func ComputeTotalHours(punches []Punch) float64 {
	ordered := make([]Punch, len(punches))
	copy(ordered, punches)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	var total float64
	var openIn *Punch
	for i := range ordered {
		p := ordered[i]
		switch p.Type {
		case PunchIn:
			openIn = &ordered[i]
		case PunchOut:
			if openIn != nil {
				total += p.Timestamp.Sub(openIn.Timestamp).Hours()
				openIn = nil
			}
		}
	}
	return total
}

// DeriveStatus maps the current punch state onto a daily status.
//
// While clocked in the staff member gets the benefit of the doubt:
// ABSENT and HALF_DAY promote to PRESENT, while LATE and PRESENT are
// left alone (LATE is sticky and a later IN must not erase it). Once
// clocked out the hours are held against the policy thresholds, with
// LATE again surviving a full-day total.
func DeriveStatus(current Status, currentlyIn bool, totalHours float64, p policy.Policy) Status {
	if currentlyIn {
		if current == StatusAbsent || current == StatusHalfDay {
			return StatusPresent
		}
		if current == "" {
			return StatusPresent
		}
		return current
	}

	switch {
	case totalHours >= p.MinFullDayHours:
		if current == StatusLate {
			return StatusLate
		}
		return StatusPresent
	case totalHours >= p.MinHalfDayHours:
		return StatusHalfDay
	default:
		return StatusAbsent
	}
}
