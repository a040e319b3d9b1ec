package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	"github.com/pennywise-app/pennywise_backend/internal/models"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		TransactionType: string(d.Type),
		AccountID:       d.AccountID,
		CategoryID:      d.CategoryID,
		Amount:          d.Amount,
		Description:     d.Description,
		TxnDate:         d.Date,
		IsReconciled:    d.IsReconciled,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Type:          domain.TransactionType(m.TransactionType),
		AccountID:     m.AccountID,
		CategoryID:    m.CategoryID,
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          m.TxnDate,
		IsReconciled:  m.IsReconciled,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const transactionColumns = `transaction_id, user_id, transaction_type, account_id, category_id, amount, description, txn_date, is_reconciled, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	var txnDate time.Time
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.TransactionType,
		&m.AccountID,
		&m.CategoryID,
		&m.Amount,
		&m.Description,
		&txnDate,
		&m.IsReconciled,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err == nil {
		m.TxnDate = txnDate.Format(domain.DateLayout)
	}
	return m, err
}

// applyBalanceDelta shifts an account's persisted balance inside the
// surrounding transaction.
func applyBalanceDelta(ctx context.Context, tx pgx.Tx, userID, accountID string, delta decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = balance + $3
		WHERE user_id = $1 AND account_id = $2;
	`
	tag, err := tx.Exec(ctx, query, userID, accountID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust balance of account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}

// SaveTransaction inserts a new transaction and applies its signed amount to
// the account balance atomically.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.TransactionType,
		m.AccountID,
		m.CategoryID,
		m.Amount,
		m.Description,
		m.TxnDate,
		m.IsReconciled,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}

	if err := applyBalanceDelta(ctx, tx, txn.UserID, txn.AccountID, txn.SignedAmount()); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its ID, scoped to the owning user.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND transaction_id = $2;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, userID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	txn := toDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves all of a user's transactions, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY txn_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// CountByCategory reports how many transactions reference a category.
func (r *PgxTransactionRepository) CountByCategory(ctx context.Context, userID string, categoryID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2;
	`
	var count int64
	if err := r.Pool.QueryRow(ctx, query, userID, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions for category %s: %w", categoryID, err)
	}
	return count, nil
}

// UpdateTransaction replaces a transaction's details, reversing the old
// signed amount and applying the new one so account balances stay consistent.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	findQuery := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND transaction_id = $2
		FOR UPDATE;
	`
	existingModel, err := scanTransaction(tx.QueryRow(ctx, findQuery, txn.UserID, txn.TransactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load transaction %s for update: %w", txn.TransactionID, err)
	}
	existing := toDomainTransaction(existingModel)

	query := `
		UPDATE transactions
		SET transaction_type = $3, account_id = $4, category_id = $5, amount = $6, description = $7, txn_date = $8, is_reconciled = $9, last_updated_at = $10, last_updated_by = $11
		WHERE user_id = $1 AND transaction_id = $2;
	`
	_, err = tx.Exec(ctx, query,
		m.UserID,
		m.TransactionID,
		m.TransactionType,
		m.AccountID,
		m.CategoryID,
		m.Amount,
		m.Description,
		m.TxnDate,
		m.IsReconciled,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}

	if err := applyBalanceDelta(ctx, tx, existing.UserID, existing.AccountID, existing.SignedAmount().Neg()); err != nil {
		return err
	}
	if err := applyBalanceDelta(ctx, tx, txn.UserID, txn.AccountID, txn.SignedAmount()); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteTransaction removes a transaction and reverses its effect on the
// account balance.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	findQuery := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND transaction_id = $2
		FOR UPDATE;
	`
	existingModel, err := scanTransaction(tx.QueryRow(ctx, findQuery, userID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load transaction %s for delete: %w", transactionID, err)
	}
	existing := toDomainTransaction(existingModel)

	query := `
		DELETE FROM transactions
		WHERE user_id = $1 AND transaction_id = $2;
	`
	if _, err := tx.Exec(ctx, query, userID, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	if err := applyBalanceDelta(ctx, tx, existing.UserID, existing.AccountID, existing.SignedAmount().Neg()); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
