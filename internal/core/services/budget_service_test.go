package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	"github.com/pennywise-app/pennywise_backend/internal/core/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

type budgetServiceMocks struct {
	accountRepo     *MockAccountRepository
	categoryRepo    *MockCategoryRepository
	transactionRepo *MockTransactionRepository
	budgetRepo      *MockBudgetRepository
	goalRepo        *MockGoalRepository
	settingsRepo    *MockSettingsRepository
}

func newBudgetServiceMocks() budgetServiceMocks {
	return budgetServiceMocks{
		accountRepo:     new(MockAccountRepository),
		categoryRepo:    new(MockCategoryRepository),
		transactionRepo: new(MockTransactionRepository),
		budgetRepo:      new(MockBudgetRepository),
		goalRepo:        new(MockGoalRepository),
		settingsRepo:    new(MockSettingsRepository),
	}
}

func (m budgetServiceMocks) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     m.accountRepo,
		CategoryRepo:    m.categoryRepo,
		TransactionRepo: m.transactionRepo,
		BudgetRepo:      m.budgetRepo,
		GoalRepo:        m.goalRepo,
		SettingsRepo:    m.settingsRepo,
	}
}

// expectLedger wires the full snapshot load for one user.
func (m budgetServiceMocks) expectLedger(userID string, txns []domain.Transaction, budgets []domain.Budget) {
	m.accountRepo.On("ListAccounts", mock.Anything, userID).Return([]domain.Account{}, nil)
	m.categoryRepo.On("ListCategories", mock.Anything, userID).Return([]domain.Category{
		{CategoryID: "cat-groceries", UserID: userID, Label: "Groceries", Type: domain.CategoryExpense},
	}, nil)
	m.transactionRepo.On("ListTransactions", mock.Anything, userID).Return(txns, nil)
	m.budgetRepo.On("ListBudgets", mock.Anything, userID).Return(budgets, nil)
	m.goalRepo.On("ListGoals", mock.Anything, userID).Return([]domain.Goal{}, nil)
	m.settingsRepo.On("FindSettings", mock.Anything, userID).Return(&domain.Settings{UserID: userID}, nil)
}

func TestAssignMoney_CreatesRecord(t *testing.T) {
	mocks := newBudgetServiceMocks()
	userID := "user-1"
	mocks.expectLedger(userID, nil, nil)
	mocks.budgetRepo.On("UpsertBudget", mock.Anything, mock.MatchedBy(func(b domain.Budget) bool {
		return b.UserID == userID &&
			b.CategoryID == "cat-groceries" &&
			b.Month == "2025-06" &&
			b.Assigned.Equal(decimal.NewFromInt(200))
	})).Return(nil)

	svc := services.NewBudgetService(mocks.provider())

	budget, err := svc.AssignMoney(context.Background(), userID, dto.AssignMoneyRequest{
		CategoryID: "cat-groceries",
		Month:      "2025-06",
		Amount:     decimal.NewFromInt(200),
	})

	require.NoError(t, err)
	require.NotNil(t, budget)
	assert.NotEmpty(t, budget.BudgetID)
	assert.Equal(t, userID, budget.UserID)
	assert.True(t, budget.Assigned.Equal(decimal.NewFromInt(200)))
	mocks.budgetRepo.AssertExpectations(t)
}

func TestAssignMoney_MergesExistingRecord(t *testing.T) {
	mocks := newBudgetServiceMocks()
	userID := "user-1"
	existing := domain.Budget{
		BudgetID:   "budget-1",
		UserID:     userID,
		CategoryID: "cat-groceries",
		Month:      "2025-06",
		Assigned:   decimal.NewFromInt(150),
	}
	mocks.expectLedger(userID, nil, []domain.Budget{existing})
	mocks.budgetRepo.On("UpsertBudget", mock.Anything, mock.MatchedBy(func(b domain.Budget) bool {
		return b.BudgetID == "budget-1" && b.Assigned.Equal(decimal.NewFromInt(200))
	})).Return(nil)

	svc := services.NewBudgetService(mocks.provider())

	budget, err := svc.AssignMoney(context.Background(), userID, dto.AssignMoneyRequest{
		CategoryID: "cat-groceries",
		Month:      "2025-06",
		Amount:     decimal.NewFromInt(50),
	})

	require.NoError(t, err)
	assert.Equal(t, "budget-1", budget.BudgetID)
	assert.True(t, budget.Assigned.Equal(decimal.NewFromInt(200)))
	mocks.budgetRepo.AssertExpectations(t)
}

func TestAssignMoney_PersistFailure(t *testing.T) {
	mocks := newBudgetServiceMocks()
	userID := "user-1"
	mocks.expectLedger(userID, nil, nil)
	dbErr := errors.New("connection reset")
	mocks.budgetRepo.On("UpsertBudget", mock.Anything, mock.Anything).Return(dbErr)

	svc := services.NewBudgetService(mocks.provider())

	_, err := svc.AssignMoney(context.Background(), userID, dto.AssignMoneyRequest{
		CategoryID: "cat-groceries",
		Month:      "2025-06",
		Amount:     decimal.NewFromInt(10),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestMonthlySummary_ReflectsLedger(t *testing.T) {
	mocks := newBudgetServiceMocks()
	userID := "user-1"
	txns := []domain.Transaction{
		{
			TransactionID: "txn-1",
			UserID:        userID,
			Type:          domain.TxnIncome,
			Amount:        decimal.NewFromInt(3000),
			Date:          "2025-06-01",
		},
		{
			TransactionID: "txn-2",
			UserID:        userID,
			CategoryID:    "cat-groceries",
			Type:          domain.TxnExpense,
			Amount:        decimal.NewFromInt(400),
			Date:          "2025-06-10",
		},
	}
	budgets := []domain.Budget{
		{
			BudgetID:   "budget-1",
			UserID:     userID,
			CategoryID: "cat-groceries",
			Month:      "2025-06",
			Assigned:   decimal.NewFromInt(500),
		},
	}
	mocks.expectLedger(userID, txns, budgets)

	svc := services.NewBudgetService(mocks.provider())

	summary, err := svc.MonthlySummary(context.Background(), userID, "2025-06")

	require.NoError(t, err)
	assert.True(t, summary.AvailableToBudget.Equal(decimal.NewFromInt(3000)), "available was %s", summary.AvailableToBudget)
	assert.True(t, summary.TotalAssigned.Equal(decimal.NewFromInt(500)))
	assert.True(t, summary.ToBeBudgeted.Equal(decimal.NewFromInt(2500)))
	assert.False(t, summary.IsFullyAssigned)
	assert.False(t, summary.IsOverAssigned)
}

func TestMonthlySummary_LedgerLoadFailure(t *testing.T) {
	mocks := newBudgetServiceMocks()
	userID := "user-1"
	dbErr := errors.New("timeout")
	mocks.accountRepo.On("ListAccounts", mock.Anything, userID).Return(nil, dbErr)

	svc := services.NewBudgetService(mocks.provider())

	_, err := svc.MonthlySummary(context.Background(), userID, "2025-06")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestAutoAssignMoney_PersistsEveryTouchedRecord(t *testing.T) {
	mocks := newBudgetServiceMocks()
	userID := "user-1"
	txns := []domain.Transaction{
		{
			TransactionID: "txn-1",
			UserID:        userID,
			Type:          domain.TxnIncome,
			Amount:        decimal.NewFromInt(1000),
			Date:          "2025-06-01",
		},
		{
			TransactionID: "txn-2",
			UserID:        userID,
			CategoryID:    "cat-groceries",
			Type:          domain.TxnExpense,
			Amount:        decimal.NewFromInt(80),
			Date:          "2025-06-05",
		},
	}
	mocks.expectLedger(userID, txns, nil)
	mocks.budgetRepo.On("UpsertBudget", mock.Anything, mock.Anything).Return(nil)

	svc := services.NewBudgetService(mocks.provider())

	touched, err := svc.AutoAssignMoney(context.Background(), userID, dto.AutoAssignRequest{
		Month: "2025-06",
	})

	require.NoError(t, err)
	require.Len(t, touched, 1)
	assert.True(t, touched[0].Assigned.Equal(decimal.NewFromInt(80)), "assigned was %s", touched[0].Assigned)
	mocks.budgetRepo.AssertNumberOfCalls(t, "UpsertBudget", 1)
}

func TestCategoryAvailable_RollsForward(t *testing.T) {
	mocks := newBudgetServiceMocks()
	userID := "user-1"
	budgets := []domain.Budget{
		{BudgetID: "b1", UserID: userID, CategoryID: "cat-groceries", Month: "2025-05", Assigned: decimal.NewFromInt(100)},
		{BudgetID: "b2", UserID: userID, CategoryID: "cat-groceries", Month: "2025-06", Assigned: decimal.NewFromInt(50)},
	}
	mocks.expectLedger(userID, nil, budgets)

	svc := services.NewBudgetService(mocks.provider())

	available, err := svc.CategoryAvailable(context.Background(), userID, "cat-groceries", "2025-06")

	require.NoError(t, err)
	assert.True(t, available.Equal(decimal.NewFromInt(150)), "available was %s", available)
}
