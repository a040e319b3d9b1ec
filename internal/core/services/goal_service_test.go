package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

func TestCreateGoal_RequiresGoalCategory(t *testing.T) {
	mocks := newBudgetServiceMocks()
	mocks.categoryRepo.On("FindCategoryByID", mock.Anything, "user-1", "cat-rent").Return(&domain.Category{
		CategoryID: "cat-rent",
		UserID:     "user-1",
		IsGoal:     false,
	}, nil)

	svc := services.NewGoalService(mocks.provider())

	_, err := svc.CreateGoal(context.Background(), "user-1", dto.CreateGoalRequest{
		CategoryID:   "cat-rent",
		Name:         "Vacation",
		Type:         domain.GoalTargetBalance,
		TargetAmount: decimal.NewFromInt(2000),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mocks.goalRepo.AssertNotCalled(t, "SaveGoal", mock.Anything, mock.Anything)
}

func TestCreateGoal_TargetDateRequiresDate(t *testing.T) {
	mocks := newBudgetServiceMocks()
	mocks.categoryRepo.On("FindCategoryByID", mock.Anything, "user-1", "cat-vacation").Return(&domain.Category{
		CategoryID: "cat-vacation",
		UserID:     "user-1",
		IsGoal:     true,
	}, nil)

	svc := services.NewGoalService(mocks.provider())

	_, err := svc.CreateGoal(context.Background(), "user-1", dto.CreateGoalRequest{
		CategoryID:   "cat-vacation",
		Name:         "Vacation",
		Type:         domain.GoalTargetDate,
		TargetAmount: decimal.NewFromInt(2000),
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateGoal_Success(t *testing.T) {
	mocks := newBudgetServiceMocks()
	mocks.categoryRepo.On("FindCategoryByID", mock.Anything, "user-1", "cat-vacation").Return(&domain.Category{
		CategoryID: "cat-vacation",
		UserID:     "user-1",
		IsGoal:     true,
	}, nil)
	mocks.goalRepo.On("SaveGoal", mock.Anything, mock.MatchedBy(func(g domain.Goal) bool {
		return g.Name == "Vacation" && g.IsActive && g.UserID == "user-1"
	})).Return(nil)

	svc := services.NewGoalService(mocks.provider())

	goal, err := svc.CreateGoal(context.Background(), "user-1", dto.CreateGoalRequest{
		CategoryID:   "cat-vacation",
		Name:         "Vacation",
		Type:         domain.GoalTargetBalance,
		TargetAmount: decimal.NewFromInt(2000),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, goal.GoalID)
	assert.True(t, goal.TargetAmount.Equal(decimal.NewFromInt(2000)))
	mocks.goalRepo.AssertExpectations(t)
}

func TestGoalProgress_ComputedFromLedger(t *testing.T) {
	mocks := newBudgetServiceMocks()
	userID := "user-1"
	mocks.accountRepo.On("ListAccounts", mock.Anything, userID).Return([]domain.Account{}, nil)
	mocks.categoryRepo.On("ListCategories", mock.Anything, userID).Return([]domain.Category{
		{CategoryID: "cat-vacation", UserID: userID, IsGoal: true},
	}, nil)
	mocks.transactionRepo.On("ListTransactions", mock.Anything, userID).Return([]domain.Transaction{}, nil)
	mocks.budgetRepo.On("ListBudgets", mock.Anything, userID).Return([]domain.Budget{}, nil)
	mocks.goalRepo.On("ListGoals", mock.Anything, userID).Return([]domain.Goal{
		{
			GoalID:        "goal-1",
			UserID:        userID,
			CategoryID:    "cat-vacation",
			Type:          domain.GoalTargetBalance,
			TargetAmount:  decimal.NewFromInt(2000),
			CurrentAmount: decimal.NewFromInt(500),
			IsActive:      true,
		},
	}, nil)
	mocks.settingsRepo.On("FindSettings", mock.Anything, userID).Return(&domain.Settings{UserID: userID}, nil)

	svc := services.NewGoalService(mocks.provider())

	progress, err := svc.GoalProgress(context.Background(), userID, "goal-1")

	require.NoError(t, err)
	assert.True(t, progress.Progress.Equal(decimal.NewFromInt(25)), "progress was %s", progress.Progress)
	assert.True(t, progress.OnTrack)
}
