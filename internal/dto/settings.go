package dto

import (
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// UpdateSettingsRequest defines a partial settings update.
type UpdateSettingsRequest struct {
	Currency           *string              `json:"currency"`
	DateFormat         *string              `json:"dateFormat"`
	FirstDayOfWeek     *int                 `json:"firstDayOfWeek" binding:"omitempty,min=0,max=6"`
	DebtStrategy       *domain.DebtStrategy `json:"debtStrategy" binding:"omitempty,oneof=snowball avalanche custom"`
	AutoAssignPriority []string             `json:"autoAssignPriority"`
}

// SettingsResponse defines the data returned for settings.
type SettingsResponse struct {
	Currency           string              `json:"currency"`
	DateFormat         string              `json:"dateFormat"`
	FirstDayOfWeek     int                 `json:"firstDayOfWeek"`
	DebtStrategy       domain.DebtStrategy `json:"debtStrategy"`
	AutoAssignPriority []string            `json:"autoAssignPriority"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse.
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		Currency:           s.Currency,
		DateFormat:         s.DateFormat,
		FirstDayOfWeek:     s.FirstDayOfWeek,
		DebtStrategy:       s.DebtStrategy,
		AutoAssignPriority: s.AutoAssignPriority,
	}
}
