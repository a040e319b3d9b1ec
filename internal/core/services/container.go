package services

import (
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(repos.UserRepo, cfg),
		User:        NewUserService(repos.UserRepo),
		Account:     NewAccountService(repos.AccountRepo),
		Category:    NewCategoryService(repos.CategoryRepo, repos.TransactionRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo),
		Budget:      NewBudgetService(repos),
		Debt:        NewDebtService(repos),
		Goal:        NewGoalService(repos),
		Reporting:   NewReportingService(repos),
		Settings:    NewSettingsService(repos.SettingsRepo),
	}
}
