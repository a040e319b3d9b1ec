package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	"github.com/pennywise-app/pennywise_backend/internal/models"
)

type PgxSettingsRepository struct {
	pool *pgxpool.Pool
}

// newPgxSettingsRepository creates a new repository for per-user settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{pool: pool}
}

// Ensure PgxSettingsRepository implements portsrepo.SettingsRepository
var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func toDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		UserID:             m.UserID,
		Currency:           m.Currency,
		DateFormat:         m.DateFormat,
		FirstDayOfWeek:     m.FirstDayOfWeek,
		DebtStrategy:       domain.DebtStrategy(m.DebtStrategy),
		AutoAssignPriority: m.AutoAssignPriority,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// defaultSettings are applied for users who have never saved settings.
func defaultSettings(userID string) *domain.Settings {
	return &domain.Settings{
		UserID:         userID,
		Currency:       "USD",
		DateFormat:     "YYYY-MM-DD",
		FirstDayOfWeek: 1,
		DebtStrategy:   domain.StrategyAvalanche,
	}
}

// FindSettings retrieves a user's settings, falling back to defaults when
// none are stored yet.
func (r *PgxSettingsRepository) FindSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	query := `
		SELECT user_id, currency, date_format, first_day_of_week, debt_strategy, auto_assign_priority, created_at, created_by, last_updated_at, last_updated_by
		FROM settings
		WHERE user_id = $1;
	`
	var m models.Settings
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.Currency,
		&m.DateFormat,
		&m.FirstDayOfWeek,
		&m.DebtStrategy,
		&m.AutoAssignPriority,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return defaultSettings(userID), nil
		}
		return nil, fmt.Errorf("failed to find settings for user %s: %w", userID, err)
	}

	settings := toDomainSettings(m)
	return &settings, nil
}

// SaveSettings inserts or replaces a user's settings.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	query := `
		INSERT INTO settings (user_id, currency, date_format, first_day_of_week, debt_strategy, auto_assign_priority, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id)
		DO UPDATE SET currency = EXCLUDED.currency,
			date_format = EXCLUDED.date_format,
			first_day_of_week = EXCLUDED.first_day_of_week,
			debt_strategy = EXCLUDED.debt_strategy,
			auto_assign_priority = EXCLUDED.auto_assign_priority,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		settings.UserID,
		settings.Currency,
		settings.DateFormat,
		settings.FirstDayOfWeek,
		string(settings.DebtStrategy),
		settings.AutoAssignPriority,
		settings.CreatedAt,
		settings.CreatedBy,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings for user %s: %w", settings.UserID, err)
	}
	return nil
}
