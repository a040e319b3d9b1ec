package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount is a non-negative magnitude; Type carries the sign semantics.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense transfer"`
	AccountID   string                 `json:"accountID" binding:"required"`
	CategoryID  string                 `json:"categoryID" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Description string                 `json:"description"`
	Date        string                 `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateTransactionRequest defines the data allowed for an explicit edit.
type UpdateTransactionRequest struct {
	AccountID    *string          `json:"accountID"`
	CategoryID   *string          `json:"categoryID"`
	Amount       *decimal.Decimal `json:"amount"`
	Description  *string          `json:"description"`
	Date         *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	IsReconciled *bool            `json:"isReconciled"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Type          domain.TransactionType `json:"type"`
	AccountID     string                 `json:"accountID"`
	CategoryID    string                 `json:"categoryID"`
	Amount        decimal.Decimal        `json:"amount"`
	Description   string                 `json:"description"`
	Date          string                 `json:"date"`
	IsReconciled  bool                   `json:"isReconciled"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Type:          t.Type,
		AccountID:     t.AccountID,
		CategoryID:    t.CategoryID,
		Amount:        t.Amount,
		Description:   t.Description,
		Date:          t.Date,
		IsReconciled:  t.IsReconciled,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
