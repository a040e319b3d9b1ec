package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/engine"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
)

// debtService implements the DebtSvc interface.
type debtService struct {
	BaseService
	snapshotLoader
}

// NewDebtService creates a new debt planning service.
func NewDebtService(repos portsrepo.RepositoryProvider) portssvc.DebtSvc {
	return &debtService{
		snapshotLoader: snapshotLoader{
			accountRepo:     repos.AccountRepo,
			categoryRepo:    repos.CategoryRepo,
			transactionRepo: repos.TransactionRepo,
			budgetRepo:      repos.BudgetRepo,
			goalRepo:        repos.GoalRepo,
			settingsRepo:    repos.SettingsRepo,
		},
	}
}

// Ensure debtService implements the DebtSvc interface
var _ portssvc.DebtSvc = (*debtService)(nil)

func (s *debtService) ListDebtAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	ledger, err := s.LoadLedger(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for debt accounts")
		return nil, err
	}
	return engine.New(ledger).DebtAccounts(), nil
}

// PayoffPlan resolves the strategy before handing off to the engine: an
// empty strategy falls back to the user's settings, and custom maps to
// avalanche since the engine only understands snowball and avalanche.
func (s *debtService) PayoffPlan(ctx context.Context, userID string, extraPayment decimal.Decimal, strategy domain.DebtStrategy) ([]engine.DebtPlanEntry, error) {
	ledger, err := s.LoadLedger(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for payoff plan")
		return nil, err
	}

	if strategy == "" {
		strategy = ledger.Settings.DebtStrategy
	}
	if strategy == domain.StrategyCustom || strategy == "" {
		strategy = domain.StrategyAvalanche
	}

	plan, err := engine.New(ledger).CalculateDebtPayoffPlan(extraPayment, strategy)
	if err != nil {
		s.LogError(ctx, err, "Failed to calculate payoff plan")
		return nil, err
	}
	return plan, nil
}
