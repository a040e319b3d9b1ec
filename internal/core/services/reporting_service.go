package services

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/engine"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
)

// reportingService implements the ReportingSvc interface.
type reportingService struct {
	BaseService
	snapshotLoader
}

// NewReportingService creates a new reporting service.
func NewReportingService(repos portsrepo.RepositoryProvider) portssvc.ReportingSvc {
	return &reportingService{
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

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) NetWorth(ctx context.Context, userID string) (*engine.NetWorthSummary, error) {
	ledger, err := s.LoadLedger(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for net worth")
		return nil, err
	}

	summary := engine.New(ledger).CalculateNetWorth()
	return &summary, nil
}

func (s *reportingService) AgeOfMoney(ctx context.Context, userID string) (int, error) {
	ledger, err := s.LoadLedger(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for age of money")
		return 0, err
	}

	return engine.New(ledger).AgeOfMoney(), nil
}
