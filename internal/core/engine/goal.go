package engine

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// GoalProgress is the projection of one savings goal.
type GoalProgress struct {
	GoalID             string          `json:"goalID"`
	Name               string          `json:"name"`
	Type               domain.GoalType `json:"type"`
	TargetAmount       decimal.Decimal `json:"targetAmount"`
	CurrentAmount      decimal.Decimal `json:"currentAmount"`
	Progress           decimal.Decimal `json:"progress"` // percent of target reached
	MonthsRemaining    int             `json:"monthsRemaining"`
	RecommendedMonthly decimal.Decimal `json:"recommendedMonthly"`
	OnTrack            bool            `json:"onTrack"`
}

// CalculateGoalProgress projects completion of the goal with the given ID.
// Returns apperrors.ErrNotFound when no such goal exists. A zero target
// amount yields zero progress rather than a division error.
//
// For target_date goals the recommended monthly funding is what closes the
// gap in the whole calendar months left until the target date, and on-track
// means the configured monthly funding covers it. For monthly_funding goals
// the configured funding projects the months remaining. For target_balance
// goals there is no timeline; they are always on track.
func (e *Engine) CalculateGoalProgress(goalID string) (*GoalProgress, error) {
	goal := e.ledger.Goal(goalID)
	if goal == nil {
		return nil, fmt.Errorf("goal %s: %w", goalID, apperrors.ErrNotFound)
	}

	progress := &GoalProgress{
		GoalID:             goal.GoalID,
		Name:               goal.Name,
		Type:               goal.Type,
		TargetAmount:       goal.TargetAmount,
		CurrentAmount:      goal.CurrentAmount,
		Progress:           decimal.Zero,
		RecommendedMonthly: decimal.Zero,
		OnTrack:            true,
	}

	if goal.TargetAmount.IsPositive() {
		progress.Progress = goal.CurrentAmount.Div(goal.TargetAmount).Mul(decimal.NewFromInt(100))
	}

	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)

	switch goal.Type {
	case domain.GoalTargetDate:
		if goal.TargetDate != nil {
			progress.MonthsRemaining = domain.MonthsBetween(e.now(), *goal.TargetDate)
		}
		if progress.MonthsRemaining > 0 {
			progress.RecommendedMonthly = remaining.DivRound(decimal.NewFromInt(int64(progress.MonthsRemaining)), 2)
			progress.OnTrack = goal.MonthlyFunding.GreaterThanOrEqual(progress.RecommendedMonthly)
		}

	case domain.GoalMonthlyFunding:
		progress.RecommendedMonthly = goal.MonthlyFunding
		if progress.RecommendedMonthly.IsPositive() {
			months := math.Ceil(remaining.Div(progress.RecommendedMonthly).InexactFloat64())
			if months > 0 {
				progress.MonthsRemaining = int(months)
			}
		}

	case domain.GoalTargetBalance:
		// No timeline arithmetic; zero defaults and on-track stand.
	}

	return progress, nil
}
