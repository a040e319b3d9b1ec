package domain

import "github.com/shopspring/decimal"

// TransactionType indicates how a transaction affects balances and envelopes.
type TransactionType string

const (
	TxnIncome   TransactionType = "income"
	TxnExpense  TransactionType = "expense"
	TxnTransfer TransactionType = "transfer"
)

// Transaction is the ledger of record for all activity computations.
// Amount is a non-negative magnitude; sign semantics come from Type.
// Date is a calendar date in YYYY-MM-DD form.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> users.user_id (NON-NULL)
	Type          TransactionType `json:"type"`
	AccountID     string          `json:"accountID"`  // FK -> accounts.account_id (NON-NULL)
	CategoryID    string          `json:"categoryID"` // FK -> categories.category_id (NON-NULL)
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
	IsReconciled  bool            `json:"isReconciled"`
	AuditFields
}

// Month returns the YYYY-MM prefix of the transaction date.
func (t Transaction) Month() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}

// SignedAmount applies the envelope sign convention to the transaction
// magnitude: income adds to an envelope, expenses and transfers draw from it.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TxnIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}
