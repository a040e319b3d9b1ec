package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/engine"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// goalService implements the GoalSvc interface.
type goalService struct {
	BaseService
	snapshotLoader
	goalRepo     portsrepo.GoalRepository
	categoryRepo portsrepo.CategoryReader
}

// NewGoalService creates a new goal service.
func NewGoalService(repos portsrepo.RepositoryProvider) portssvc.GoalSvc {
	return &goalService{
		snapshotLoader: snapshotLoader{
			accountRepo:     repos.AccountRepo,
			categoryRepo:    repos.CategoryRepo,
			transactionRepo: repos.TransactionRepo,
			budgetRepo:      repos.BudgetRepo,
			goalRepo:        repos.GoalRepo,
			settingsRepo:    repos.SettingsRepo,
		},
		goalRepo:     repos.GoalRepo,
		categoryRepo: repos.CategoryRepo,
	}
}

// Ensure goalService implements the GoalSvc interface
var _ portssvc.GoalSvc = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID)
	if err != nil {
		s.LogError(ctx, err, "Goal category not found", slog.String("category_id", req.CategoryID))
		return nil, fmt.Errorf("goal category: %w", err)
	}
	if !category.IsGoal {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Category is not a goal envelope", slog.String("category_id", req.CategoryID))
		return nil, fmt.Errorf("category %s is not marked as a goal envelope: %w", req.CategoryID, err)
	}
	if req.Type == domain.GoalTargetDate && req.TargetDate == nil {
		return nil, fmt.Errorf("target_date goal requires a target date: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:         uuid.NewString(),
		UserID:         userID,
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		Type:           req.Type,
		TargetAmount:   req.TargetAmount,
		TargetDate:     req.TargetDate,
		MonthlyFunding: req.MonthlyFunding,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("goal_name", req.Name))
		return nil, fmt.Errorf("saving goal: %w", err)
	}

	s.LogInfo(ctx, "Goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	return s.goalRepo.ListGoals(ctx, userID)
}

func (s *goalService) UpdateGoal(ctx context.Context, userID string, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.TargetDate != nil {
		goal.TargetDate = req.TargetDate
	}
	if req.MonthlyFunding != nil {
		goal.MonthlyFunding = *req.MonthlyFunding
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.IsActive != nil {
		goal.IsActive = *req.IsActive
	}
	goal.LastUpdatedAt = time.Now()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("updating goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	if _, err := s.goalRepo.FindGoalByID(ctx, userID, goalID); err != nil {
		return err
	}
	if err := s.goalRepo.DeleteGoal(ctx, userID, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal", slog.String("goal_id", goalID))
		return fmt.Errorf("deleting goal: %w", err)
	}
	s.LogInfo(ctx, "Goal deleted", slog.String("goal_id", goalID))
	return nil
}

func (s *goalService) GoalProgress(ctx context.Context, userID string, goalID string) (*engine.GoalProgress, error) {
	ledger, err := s.LoadLedger(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for goal progress")
		return nil, err
	}

	progress, err := engine.New(ledger).CalculateGoalProgress(goalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to calculate goal progress", slog.String("goal_id", goalID))
		return nil, err
	}
	return progress, nil
}
