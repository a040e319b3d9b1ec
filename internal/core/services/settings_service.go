package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// settingsService implements the SettingsSvc interface.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo portsrepo.SettingsRepository) portssvc.SettingsSvc {
	return &settingsService{settingsRepo: repo}
}

// Ensure settingsService implements the SettingsSvc interface
var _ portssvc.SettingsSvc = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	return s.settingsRepo.FindSettings(ctx, userID)
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	settings, err := s.settingsRepo.FindSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Currency != nil {
		settings.Currency = *req.Currency
	}
	if req.DateFormat != nil {
		settings.DateFormat = *req.DateFormat
	}
	if req.FirstDayOfWeek != nil {
		settings.FirstDayOfWeek = *req.FirstDayOfWeek
	}
	if req.DebtStrategy != nil {
		settings.DebtStrategy = *req.DebtStrategy
	}
	if req.AutoAssignPriority != nil {
		settings.AutoAssignPriority = req.AutoAssignPriority
	}
	settings.UserID = userID
	settings.LastUpdatedAt = time.Now()
	settings.LastUpdatedBy = userID

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return nil, fmt.Errorf("saving settings: %w", err)
	}
	return settings, nil
}
