package fixtures

import (
	"context"
	"fmt"

	"github.com/schoolhub/attendance-backend-go/internal/domain/policy"
)

// GetDefaultLeavePolicy returns the default attendance policy seeded
// when a school is provisioned. The thresholds mirror the hard-coded
// resolver fallback, so behavior is identical before and after seeding.
func GetDefaultLeavePolicy(schoolID string) policy.LeavePolicy {
	defaults := policy.Default()
	return policy.LeavePolicy{
		SchoolID:            schoolID,
		IsDefault:           true,
		MinFullDayHours:     defaults.MinFullDayHours,
		MinHalfDayHours:     defaults.MinHalfDayHours,
		MaxDailyPunchEvents: defaults.MaxDailyPunchEvents,
		MinPunchGapMinutes:  defaults.MinPunchGapMinutes,
	}
}

// SeedSchoolDefaults creates the default policy rows for a newly
// provisioned school.
func SeedSchoolDefaults(ctx context.Context, policyRepo policy.LeavePolicyRepository, schoolID string) error {
	if _, err := policyRepo.Create(ctx, GetDefaultLeavePolicy(schoolID)); err != nil {
		return fmt.Errorf("seed default leave policy: %w", err)
	}
	return nil
}
