package repositories

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction owned by the user.
	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all of a user's transactions, newest first.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// CountByCategory reports how many transactions reference a category.
	// Used to refuse deleting a category still in use.
	CountByCategory(ctx context.Context, userID string, categoryID string) (int64, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionRepository combines all transaction persistence operations.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
