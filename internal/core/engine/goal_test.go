package engine_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/engine"
)

func mustDate(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, date)
	require.NoError(t, err)
	return d
}

func fixedClock(t *testing.T, date string) func() time.Time {
	t.Helper()
	d := mustDate(t, date)
	return func() time.Time { return d }
}

func goalLedger(goals ...domain.Goal) *domain.Ledger {
	return &domain.Ledger{Goals: goals}
}

func TestCalculateGoalProgress_NotFound(t *testing.T) {
	e := engine.New(goalLedger())

	_, err := e.CalculateGoalProgress("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCalculateGoalProgress_Percent(t *testing.T) {
	e := engine.New(goalLedger(domain.Goal{
		GoalID:        "g1",
		Type:          domain.GoalTargetBalance,
		TargetAmount:  decimal.RequireFromString("6000"),
		CurrentAmount: decimal.RequireFromString("1500"),
		IsActive:      true,
	}))

	progress, err := e.CalculateGoalProgress("g1")
	require.NoError(t, err)
	assertDecEqual(t, "25", progress.Progress)
	assert.True(t, progress.OnTrack)
	assert.Zero(t, progress.MonthsRemaining)
	assert.True(t, progress.RecommendedMonthly.IsZero())
}

func TestCalculateGoalProgress_ZeroTargetNoDivisionError(t *testing.T) {
	e := engine.New(goalLedger(domain.Goal{
		GoalID:        "g1",
		Type:          domain.GoalTargetBalance,
		TargetAmount:  decimal.Zero,
		CurrentAmount: decimal.RequireFromString("100"),
		IsActive:      true,
	}))

	progress, err := e.CalculateGoalProgress("g1")
	require.NoError(t, err)
	assert.True(t, progress.Progress.IsZero())
}

func TestCalculateGoalProgress_TargetDate(t *testing.T) {
	targetDate := mustDate(t, "2025-07-15")

	tests := []struct {
		name           string
		monthlyFunding string
		wantOnTrack    bool
	}{
		{name: "funding covers recommendation", monthlyFunding: "200", wantOnTrack: true},
		{name: "funding falls short", monthlyFunding: "150", wantOnTrack: false},
		{name: "funding unset", monthlyFunding: "0", wantOnTrack: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := engine.New(goalLedger(domain.Goal{
				GoalID:         "g1",
				Type:           domain.GoalTargetDate,
				TargetAmount:   decimal.RequireFromString("1200"),
				CurrentAmount:  decimal.Zero,
				TargetDate:     &targetDate,
				MonthlyFunding: decimal.RequireFromString(tc.monthlyFunding),
				IsActive:       true,
			}), engine.WithClock(fixedClock(t, "2025-01-15")))

			progress, err := e.CalculateGoalProgress("g1")
			require.NoError(t, err)
			assert.Equal(t, 6, progress.MonthsRemaining)
			assertDecEqual(t, "200", progress.RecommendedMonthly)
			assert.Equal(t, tc.wantOnTrack, progress.OnTrack)
		})
	}
}

func TestCalculateGoalProgress_MonthlyFunding(t *testing.T) {
	e := engine.New(goalLedger(domain.Goal{
		GoalID:         "g1",
		Type:           domain.GoalMonthlyFunding,
		TargetAmount:   decimal.RequireFromString("1000"),
		CurrentAmount:  decimal.RequireFromString("250"),
		MonthlyFunding: decimal.RequireFromString("300"),
		IsActive:       true,
	}))

	progress, err := e.CalculateGoalProgress("g1")
	require.NoError(t, err)
	assertDecEqual(t, "300", progress.RecommendedMonthly)
	assert.Equal(t, 3, progress.MonthsRemaining) // ceil(750/300)
}

func TestCalculateGoalProgress_MonthlyFundingAlreadyReached(t *testing.T) {
	e := engine.New(goalLedger(domain.Goal{
		GoalID:         "g1",
		Type:           domain.GoalMonthlyFunding,
		TargetAmount:   decimal.RequireFromString("1000"),
		CurrentAmount:  decimal.RequireFromString("1200"),
		MonthlyFunding: decimal.RequireFromString("300"),
		IsActive:       true,
	}))

	progress, err := e.CalculateGoalProgress("g1")
	require.NoError(t, err)
	assert.Zero(t, progress.MonthsRemaining)
}
