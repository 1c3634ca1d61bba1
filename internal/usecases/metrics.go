package usecases

import (
	"context"
)

// SmokeTestCount returns the number of automated or to-be-automated actual smoke tests.
func (u *Usecases) SmokeTestCount(ctx context.Context, automated bool) (int, error) {
	tests, err := u.SmokeTests(ctx, automated)
	if err != nil {
		return 0, err
	}
	return len(tests), nil
}

// SmokeExecutionHours returns the manual execution time, in hours, of the automated or manual smoke tests.
func (u *Usecases) SmokeExecutionHours(ctx context.Context, automated bool) (float64, error) {
	tests, err := u.SmokeTests(ctx, automated)
	if err != nil {
		return 0, err
	}
	return u.TotalManualExecutionTime(tests), nil
}

// BlockedManualSmoke returns the count and execution hours of manual smoke tests whose automation is blocked.
func (u *Usecases) BlockedManualSmoke(ctx context.Context) (int, float64, error) {
	tests, err := u.SmokeTests(ctx, false)
	if err != nil {
		return 0, 0, err
	}
	blocked, err := u.BlockedTests(ctx, tests)
	if err != nil {
		return 0, 0, err
	}
	return len(blocked), u.TotalManualExecutionTime(blocked), nil
}

// ManualSmokeWithoutTask returns the count and execution hours of manual smoke tests with no automation task.
func (u *Usecases) ManualSmokeWithoutTask(ctx context.Context) (int, float64, error) {
	tests, err := u.SmokeTests(ctx, false)
	if err != nil {
		return 0, 0, err
	}
	without := u.TestsWithoutAutomationTask(tests)
	return len(without), u.TotalManualExecutionTime(without), nil
}
