package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/engine"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// BudgetSvc exposes envelope budgeting: it loads the user's ledger snapshot,
// runs the budget engine, and persists any records the engine produced.
type BudgetSvc interface {
	// AssignMoney moves money into (or out of, when negative) an envelope
	// and returns the persisted record.
	AssignMoney(ctx context.Context, userID string, req dto.AssignMoneyRequest) (*domain.Budget, error)

	// AutoAssignMoney distributes the month's unassigned funds across
	// overspent envelopes and goal envelopes, returning every record touched.
	AutoAssignMoney(ctx context.Context, userID string, req dto.AutoAssignRequest) ([]domain.Budget, error)

	// MonthlySummary reports available-to-budget against total assigned.
	MonthlySummary(ctx context.Context, userID string, month string) (*engine.MonthlySummary, error)

	// CategoryAvailable computes the envelope balance for (category, month).
	CategoryAvailable(ctx context.Context, userID string, categoryID string, month string) (decimal.Decimal, error)
}
