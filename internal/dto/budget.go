package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// AssignMoneyRequest moves money into (or out of, when Amount is negative)
// one envelope for one month.
type AssignMoneyRequest struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	Month      string          `json:"month" binding:"required,month"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// AutoAssignRequest distributes the month's unassigned funds. When
// PriorityCategoryIDs is empty the user's configured auto-assign priority
// order applies.
type AutoAssignRequest struct {
	Month               string   `json:"month" binding:"required,month"`
	PriorityCategoryIDs []string `json:"priorityCategoryIDs"`
}

// BudgetResponse defines the data returned for an envelope assignment.
type BudgetResponse struct {
	BudgetID   string          `json:"budgetID"`
	CategoryID string          `json:"categoryID"`
	Month      string          `json:"month"`
	Assigned   decimal.Decimal `json:"assigned"`
	Activity   decimal.Decimal `json:"activity"`
	Available  decimal.Decimal `json:"available"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:   b.BudgetID,
		CategoryID: b.CategoryID,
		Month:      b.Month,
		Assigned:   b.Assigned,
		Activity:   b.Activity,
		Available:  b.Available,
	}
}

// ToListBudgetResponse converts a slice of domain.Budget.
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i])
	}
	return res
}

// CategoryAvailableResponse is the envelope balance for one (category, month).
type CategoryAvailableResponse struct {
	CategoryID string          `json:"categoryID"`
	Month      string          `json:"month"`
	Available  decimal.Decimal `json:"available"`
}
