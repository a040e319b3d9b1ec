package models

import (
	"github.com/shopspring/decimal"
)

// Transaction represents a row in the transactions table.
// Amount is a non-negative magnitude; transaction_type carries the sign
// convention. txn_date is stored as a DATE column and mapped to the
// domain's YYYY-MM-DD string form at the repository boundary.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	TransactionType string          `db:"transaction_type"`
	AccountID       string          `db:"account_id"`
	CategoryID      string          `db:"category_id"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	TxnDate         string          `db:"txn_date"`
	IsReconciled    bool            `db:"is_reconciled"`
	AuditFields
}
