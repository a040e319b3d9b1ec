package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/engine"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// budgetService implements the BudgetSvc interface: it loads ledger
// snapshots, runs the budget engine, and persists the records the engine
// touched.
type budgetService struct {
	BaseService
	snapshotLoader
	budgetRepo portsrepo.BudgetRepository
}

// BudgetServiceOption is a functional option for configuring the budget service.
type BudgetServiceOption func(*budgetService)

// NewBudgetService creates a new budget service over the given repositories.
func NewBudgetService(repos portsrepo.RepositoryProvider, options ...BudgetServiceOption) portssvc.BudgetSvc {
	svc := &budgetService{
		snapshotLoader: snapshotLoader{
			accountRepo:     repos.AccountRepo,
			categoryRepo:    repos.CategoryRepo,
			transactionRepo: repos.TransactionRepo,
			budgetRepo:      repos.BudgetRepo,
			goalRepo:        repos.GoalRepo,
			settingsRepo:    repos.SettingsRepo,
		},
		budgetRepo: repos.BudgetRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure budgetService implements the BudgetSvc interface
var _ portssvc.BudgetSvc = (*budgetService)(nil)

func (s *budgetService) AssignMoney(ctx context.Context, userID string, req dto.AssignMoneyRequest) (*domain.Budget, error) {
	ledger, err := s.LoadLedger(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for assignment")
		return nil, err
	}

	e := engine.New(ledger)
	budget := e.AssignMoney(req.CategoryID, req.Month, req.Amount)
	budget.UserID = userID
	budget.LastUpdatedBy = userID
	if budget.CreatedBy == "" {
		budget.CreatedBy = userID
	}

	if err := s.budgetRepo.UpsertBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to persist budget assignment",
			slog.String("category_id", req.CategoryID),
			slog.String("month", req.Month))
		return nil, fmt.Errorf("persisting budget: %w", err)
	}

	s.LogInfo(ctx, "Money assigned",
		slog.String("category_id", req.CategoryID),
		slog.String("month", req.Month),
		slog.String("amount", req.Amount.String()))
	return &budget, nil
}

func (s *budgetService) AutoAssignMoney(ctx context.Context, userID string, req dto.AutoAssignRequest) ([]domain.Budget, error) {
	ledger, err := s.LoadLedger(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for auto-assignment")
		return nil, err
	}

	priorities := req.PriorityCategoryIDs
	if len(priorities) == 0 {
		priorities = ledger.Settings.AutoAssignPriority
	}

	e := engine.New(ledger)
	touched := e.AutoAssignMoney(req.Month, priorities)

	for i := range touched {
		touched[i].UserID = userID
		touched[i].LastUpdatedBy = userID
		if touched[i].CreatedBy == "" {
			touched[i].CreatedBy = userID
		}
		if err := s.budgetRepo.UpsertBudget(ctx, touched[i]); err != nil {
			s.LogError(ctx, err, "Failed to persist auto-assignment",
				slog.String("category_id", touched[i].CategoryID),
				slog.String("month", touched[i].Month))
			return nil, fmt.Errorf("persisting budget: %w", err)
		}
	}

	s.LogInfo(ctx, "Auto-assignment completed",
		slog.String("month", req.Month),
		slog.Int("envelopes_touched", len(touched)))
	return touched, nil
}

func (s *budgetService) MonthlySummary(ctx context.Context, userID string, month string) (*engine.MonthlySummary, error) {
	ledger, err := s.LoadLedger(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for monthly summary")
		return nil, err
	}

	summary := engine.New(ledger).MonthlyBudgetSummary(month)
	return &summary, nil
}

func (s *budgetService) CategoryAvailable(ctx context.Context, userID string, categoryID string, month string) (decimal.Decimal, error) {
	ledger, err := s.LoadLedger(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for category available")
		return decimal.Zero, err
	}

	return engine.New(ledger).CategoryAvailable(categoryID, month), nil
}
