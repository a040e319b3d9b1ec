package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name         string             `json:"name" binding:"required"`
	Type         domain.AccountType `json:"type" binding:"required,oneof=checking savings credit_card loan investment cash"`
	Balance      decimal.Decimal    `json:"balance"`
	InterestRate decimal.Decimal    `json:"interestRate"`
	CreditLimit  decimal.Decimal    `json:"creditLimit"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name         *string          `json:"name"`
	Balance      *decimal.Decimal `json:"balance"` // reconciliation happens here, outside the engine
	InterestRate *decimal.Decimal `json:"interestRate"`
	CreditLimit  *decimal.Decimal `json:"creditLimit"`
	IsActive     *bool            `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID    string             `json:"accountID"`
	Name         string             `json:"name"`
	Type         domain.AccountType `json:"type"`
	Balance      decimal.Decimal    `json:"balance"`
	InterestRate decimal.Decimal    `json:"interestRate"`
	CreditLimit  decimal.Decimal    `json:"creditLimit"`
	IsActive     bool               `json:"isActive"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    a.AccountID,
		Name:         a.Name,
		Type:         a.Type,
		Balance:      a.Balance,
		InterestRate: a.InterestRate,
		CreditLimit:  a.CreditLimit,
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
