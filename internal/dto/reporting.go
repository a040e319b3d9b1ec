package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// DebtPlanParams defines query parameters for the payoff plan endpoint.
// Strategy defaults to the user's settings when omitted.
type DebtPlanParams struct {
	ExtraPayment decimal.Decimal     `form:"extraPayment"`
	Strategy     domain.DebtStrategy `form:"strategy" binding:"omitempty,oneof=snowball avalanche custom"`
}

// AgeOfMoneyResponse reports the age-of-money metric.
type AgeOfMoneyResponse struct {
	Days int `json:"days"`
}
