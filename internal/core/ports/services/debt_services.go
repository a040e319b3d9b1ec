package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/engine"
)

// DebtSvc exposes debt payoff planning.
type DebtSvc interface {
	// ListDebtAccounts returns the user's credit card and loan accounts.
	ListDebtAccounts(ctx context.Context, userID string) ([]domain.Account, error)

	// PayoffPlan builds an ordered amortization plan. An empty strategy
	// falls back to the user's settings; the custom strategy resolves to
	// avalanche before the engine is called.
	PayoffPlan(ctx context.Context, userID string, extraPayment decimal.Decimal, strategy domain.DebtStrategy) ([]engine.DebtPlanEntry, error)
}
