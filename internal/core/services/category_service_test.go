package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

func TestCreateCategory_Success(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	transactionRepo := new(MockTransactionRepository)
	categoryRepo.On("SaveCategory", mock.Anything, mock.MatchedBy(func(c domain.Category) bool {
		return c.Label == "Groceries" && c.Type == domain.CategoryExpense && c.UserID == "user-1"
	})).Return(nil)

	svc := services.NewCategoryService(categoryRepo, transactionRepo)

	category, err := svc.CreateCategory(context.Background(), "user-1", dto.CreateCategoryRequest{
		Label: "Groceries",
		Icon:  "cart",
		Type:  domain.CategoryExpense,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, category.CategoryID)
	assert.Equal(t, "user-1", category.CreatedBy)
	categoryRepo.AssertExpectations(t)
}

func TestDeleteCategory_RefusedWhileReferenced(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	transactionRepo := new(MockTransactionRepository)
	categoryRepo.On("FindCategoryByID", mock.Anything, "user-1", "cat-1").Return(&domain.Category{
		CategoryID: "cat-1",
		UserID:     "user-1",
	}, nil)
	transactionRepo.On("CountByCategory", mock.Anything, "user-1", "cat-1").Return(int64(3), nil)

	svc := services.NewCategoryService(categoryRepo, transactionRepo)

	err := svc.DeleteCategory(context.Background(), "user-1", "cat-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	categoryRepo.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteCategory_Unreferenced(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	transactionRepo := new(MockTransactionRepository)
	categoryRepo.On("FindCategoryByID", mock.Anything, "user-1", "cat-1").Return(&domain.Category{
		CategoryID: "cat-1",
		UserID:     "user-1",
	}, nil)
	transactionRepo.On("CountByCategory", mock.Anything, "user-1", "cat-1").Return(int64(0), nil)
	categoryRepo.On("DeleteCategory", mock.Anything, "user-1", "cat-1").Return(nil)

	svc := services.NewCategoryService(categoryRepo, transactionRepo)

	err := svc.DeleteCategory(context.Background(), "user-1", "cat-1")

	require.NoError(t, err)
	categoryRepo.AssertExpectations(t)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	transactionRepo := new(MockTransactionRepository)
	categoryRepo.On("FindCategoryByID", mock.Anything, "user-1", "missing").Return(nil, apperrors.ErrNotFound)

	svc := services.NewCategoryService(categoryRepo, transactionRepo)

	err := svc.DeleteCategory(context.Background(), "user-1", "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
