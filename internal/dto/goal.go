package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// CreateGoalRequest defines the data needed to create a savings goal.
// CategoryID must reference an isGoal category.
type CreateGoalRequest struct {
	CategoryID     string          `json:"categoryID" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	Type           domain.GoalType `json:"type" binding:"required,oneof=target_balance monthly_funding target_date"`
	TargetAmount   decimal.Decimal `json:"targetAmount" binding:"required"`
	TargetDate     *time.Time      `json:"targetDate"`
	MonthlyFunding decimal.Decimal `json:"monthlyFunding"`
}

// UpdateGoalRequest defines the data allowed for updating a goal.
// CurrentAmount is settable here because it is tracked externally
// (mirroring the envelope balance); the engine only reads it.
type UpdateGoalRequest struct {
	Name           *string          `json:"name"`
	TargetAmount   *decimal.Decimal `json:"targetAmount"`
	TargetDate     *time.Time       `json:"targetDate"`
	MonthlyFunding *decimal.Decimal `json:"monthlyFunding"`
	CurrentAmount  *decimal.Decimal `json:"currentAmount"`
	IsActive       *bool            `json:"isActive"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID         string          `json:"goalID"`
	CategoryID     string          `json:"categoryID"`
	Name           string          `json:"name"`
	Type           domain.GoalType `json:"type"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	TargetDate     *time.Time      `json:"targetDate,omitempty"`
	MonthlyFunding decimal.Decimal `json:"monthlyFunding"`
	CurrentAmount  decimal.Decimal `json:"currentAmount"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToGoalResponse converts a domain.Goal to GoalResponse.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:         g.GoalID,
		CategoryID:     g.CategoryID,
		Name:           g.Name,
		Type:           g.Type,
		TargetAmount:   g.TargetAmount,
		TargetDate:     g.TargetDate,
		MonthlyFunding: g.MonthlyFunding,
		CurrentAmount:  g.CurrentAmount,
		IsActive:       g.IsActive,
		CreatedAt:      g.CreatedAt,
	}
}

// ToListGoalResponse converts a slice of domain.Goal.
func ToListGoalResponse(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}
