package services

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// TransactionSvc defines operations over ledger transactions.
type TransactionSvc interface {
	// CreateTransaction persists a new transaction after verifying the
	// referenced account and category exist.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves a specific transaction owned by the user.
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all of a user's transactions, newest first.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// UpdateTransaction applies an explicit edit to a transaction.
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}
