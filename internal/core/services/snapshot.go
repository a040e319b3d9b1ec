package services

import (
	"context"
	"fmt"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
)

// snapshotLoader assembles a full in-memory ledger snapshot for one user.
// The budget engine is constructed from these snapshots; every engine-backed
// service embeds a loader.
type snapshotLoader struct {
	accountRepo     portsrepo.AccountReader
	categoryRepo    portsrepo.CategoryReader
	transactionRepo portsrepo.TransactionReader
	budgetRepo      portsrepo.BudgetReader
	goalRepo        portsrepo.GoalReader
	settingsRepo    portsrepo.SettingsRepository
}

// LoadLedger reads every collection the engine needs. A personal ledger is
// small; loading it whole keeps the engine pure and the persistence layer
// out of the computation path.
func (l *snapshotLoader) LoadLedger(ctx context.Context, userID string) (*domain.Ledger, error) {
	accounts, err := l.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	categories, err := l.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	transactions, err := l.transactionRepo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	budgets, err := l.budgetRepo.ListBudgets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading budgets: %w", err)
	}
	goals, err := l.goalRepo.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}
	settings, err := l.settingsRepo.FindSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	return &domain.Ledger{
		Accounts:     accounts,
		Categories:   categories,
		Transactions: transactions,
		Budgets:      budgets,
		Goals:        goals,
		Settings:     *settings,
	}, nil
}
