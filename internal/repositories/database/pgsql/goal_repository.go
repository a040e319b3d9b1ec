package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	"github.com/pennywise-app/pennywise_backend/internal/models"
)

type PgxGoalRepository struct {
	pool *pgxpool.Pool
}

// newPgxGoalRepository creates a new repository for savings goals.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepository {
	return &PgxGoalRepository{pool: pool}
}

// Ensure PgxGoalRepository implements portsrepo.GoalRepository
var _ portsrepo.GoalRepository = (*PgxGoalRepository)(nil)

func toModelGoal(d domain.Goal) models.Goal {
	var targetDate sql.NullTime
	if d.TargetDate != nil {
		targetDate = sql.NullTime{Time: *d.TargetDate, Valid: true}
	}
	return models.Goal{
		GoalID:         d.GoalID,
		UserID:         d.UserID,
		CategoryID:     d.CategoryID,
		Name:           d.Name,
		GoalType:       string(d.Type),
		TargetAmount:   d.TargetAmount,
		TargetDate:     targetDate,
		MonthlyFunding: d.MonthlyFunding,
		CurrentAmount:  d.CurrentAmount,
		IsActive:       d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainGoal(m models.Goal) domain.Goal {
	goal := domain.Goal{
		GoalID:         m.GoalID,
		UserID:         m.UserID,
		CategoryID:     m.CategoryID,
		Name:           m.Name,
		Type:           domain.GoalType(m.GoalType),
		TargetAmount:   m.TargetAmount,
		MonthlyFunding: m.MonthlyFunding,
		CurrentAmount:  m.CurrentAmount,
		IsActive:       m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.TargetDate.Valid {
		t := m.TargetDate.Time
		goal.TargetDate = &t
	}
	return goal
}

const goalColumns = `goal_id, user_id, category_id, name, goal_type, target_amount, target_date, monthly_funding, current_amount, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanGoal(row pgx.Row) (models.Goal, error) {
	var m models.Goal
	err := row.Scan(
		&m.GoalID,
		&m.UserID,
		&m.CategoryID,
		&m.Name,
		&m.GoalType,
		&m.TargetAmount,
		&m.TargetDate,
		&m.MonthlyFunding,
		&m.CurrentAmount,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveGoal inserts a new goal.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := toModelGoal(goal)

	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		m.GoalID,
		m.UserID,
		m.CategoryID,
		m.Name,
		m.GoalType,
		m.TargetAmount,
		m.TargetDate,
		m.MonthlyFunding,
		m.CurrentAmount,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: goal with ID %s already exists", apperrors.ErrDuplicate, m.GoalID)
		}
		return fmt.Errorf("failed to save goal %s: %w", m.GoalID, err)
	}
	return nil
}

// FindGoalByID retrieves a goal by its ID, scoped to the owning user.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE user_id = $1 AND goal_id = $2;
	`
	m, err := scanGoal(r.pool.QueryRow(ctx, query, userID, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}

	goal := toDomainGoal(m)
	return &goal, nil
}

// ListGoals retrieves all of a user's goals.
func (r *PgxGoalRepository) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	goals := make([]domain.Goal, 0)
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, toDomainGoal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", err)
	}
	return goals, nil
}

// UpdateGoal updates an existing goal.
func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	m := toModelGoal(goal)

	query := `
		UPDATE goals
		SET name = $3, goal_type = $4, target_amount = $5, target_date = $6, monthly_funding = $7, current_amount = $8, is_active = $9, last_updated_at = $10, last_updated_by = $11
		WHERE user_id = $1 AND goal_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.UserID,
		m.GoalID,
		m.Name,
		m.GoalType,
		m.TargetAmount,
		m.TargetDate,
		m.MonthlyFunding,
		m.CurrentAmount,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", m.GoalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGoal removes a goal.
func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	query := `
		DELETE FROM goals
		WHERE user_id = $1 AND goal_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query, userID, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
