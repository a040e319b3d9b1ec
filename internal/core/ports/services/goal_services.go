package services

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/engine"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// GoalSvc defines operations over savings goals.
type GoalSvc interface {
	// CreateGoal persists a new goal attached to an isGoal category.
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)

	// GetGoalByID retrieves a specific goal owned by the user.
	GetGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error)

	// ListGoals retrieves all of a user's goals.
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)

	// UpdateGoal updates an existing goal.
	UpdateGoal(ctx context.Context, userID string, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)

	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, userID string, goalID string) error

	// GoalProgress projects completion of one goal.
	GoalProgress(ctx context.Context, userID string, goalID string) (*engine.GoalProgress, error)
}
