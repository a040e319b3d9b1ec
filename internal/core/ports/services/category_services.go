package services

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// CategorySvc defines operations over envelope categories.
type CategorySvc interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves a specific category owned by the user.
	GetCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all of a user's categories.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, userID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category; refused with ErrConflict while
	// transactions still reference it.
	DeleteCategory(ctx context.Context, userID string, categoryID string) error
}
