package services

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// SettingsSvc defines operations over per-user ledger preferences.
type SettingsSvc interface {
	// GetSettings retrieves the user's settings, with defaults when none
	// are stored yet.
	GetSettings(ctx context.Context, userID string) (*domain.Settings, error)

	// UpdateSettings applies a partial settings update.
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.Settings, error)
}
