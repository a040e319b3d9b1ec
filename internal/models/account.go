package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a row in the accounts table.
// Balance is signed: negative for credit cards and loans.
type Account struct {
	AccountID    string          `db:"account_id"`
	UserID       string          `db:"user_id"`
	Name         string          `db:"name"`
	AccountType  string          `db:"account_type"`
	Balance      decimal.Decimal `db:"balance"`
	InterestRate decimal.Decimal `db:"interest_rate"`
	CreditLimit  decimal.Decimal `db:"credit_limit"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
