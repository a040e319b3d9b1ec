package repositories

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// GoalReader defines read operations for savings goals.
type GoalReader interface {
	// FindGoalByID retrieves a specific goal owned by the user.
	FindGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error)

	// ListGoals retrieves all of a user's goals.
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for savings goals.
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// UpdateGoal updates an existing goal.
	UpdateGoal(ctx context.Context, goal domain.Goal) error

	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, userID string, goalID string) error
}

// GoalRepository combines all goal persistence operations.
type GoalRepository interface {
	GoalReader
	GoalWriter
}
