package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// categoryService implements the CategorySvc interface.
type categoryService struct {
	BaseService
	categoryRepo    portsrepo.CategoryRepository
	transactionRepo portsrepo.TransactionReader
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository, transactionRepo portsrepo.TransactionReader) portssvc.CategorySvc {
	return &categoryService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Ensure categoryService implements the CategorySvc interface
var _ portssvc.CategorySvc = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     userID,
		Label:      req.Label,
		Icon:       req.Icon,
		Type:       req.Type,
		Color:      req.Color,
		IsDebt:     req.IsDebt,
		IsGoal:     req.IsGoal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("label", req.Label))
		return nil, fmt.Errorf("saving category: %w", err)
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, userID)
}

func (s *categoryService) UpdateCategory(ctx context.Context, userID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		category.Label = *req.Label
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.IsDebt != nil {
		category.IsDebt = *req.IsDebt
	}
	if req.IsGoal != nil {
		category.IsGoal = *req.IsGoal
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("updating category: %w", err)
	}
	return category, nil
}

// DeleteCategory refuses to remove a category while transactions still
// reference it, keeping every historical activity computation resolvable.
func (s *categoryService) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID); err != nil {
		return err
	}

	count, err := s.transactionRepo.CountByCategory(ctx, userID, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count category transactions", slog.String("category_id", categoryID))
		return fmt.Errorf("checking category usage: %w", err)
	}
	if count > 0 {
		err := apperrors.ErrConflict
		s.LogError(ctx, err, "Category still referenced by transactions",
			slog.String("category_id", categoryID),
			slog.Int64("transaction_count", count))
		return fmt.Errorf("category has %d transactions: %w", count, err)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, userID, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return fmt.Errorf("deleting category: %w", err)
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
