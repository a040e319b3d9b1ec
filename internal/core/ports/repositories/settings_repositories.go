package repositories

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// SettingsRepository defines persistence operations for per-user settings.
type SettingsRepository interface {
	// FindSettings retrieves a user's settings; defaults apply when none are
	// stored yet, so implementations return a zero-value-with-defaults record
	// rather than an error.
	FindSettings(ctx context.Context, userID string) (*domain.Settings, error)

	// SaveSettings inserts or replaces a user's settings.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
