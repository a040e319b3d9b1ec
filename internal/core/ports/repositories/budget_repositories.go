package repositories

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// BudgetReader defines read operations for envelope assignments.
type BudgetReader interface {
	// FindBudget retrieves the single record for (category, month), if any.
	FindBudget(ctx context.Context, userID string, categoryID string, month string) (*domain.Budget, error)

	// ListBudgets retrieves all of a user's budget records.
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)

	// ListBudgetsByMonth retrieves a user's budget records for one month.
	ListBudgetsByMonth(ctx context.Context, userID string, month string) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for envelope assignments.
type BudgetWriter interface {
	// UpsertBudget inserts the record or, when (user, category, month)
	// already exists, replaces its amounts. This backs the engine's
	// merge-into-existing-record rule.
	UpsertBudget(ctx context.Context, budget domain.Budget) error
}

// BudgetRepository combines all budget persistence operations.
type BudgetRepository interface {
	BudgetReader
	BudgetWriter
}
