package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account for budgeting and net-worth purposes.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCreditCard AccountType = "credit_card"
	AccountLoan       AccountType = "loan"
	AccountInvestment AccountType = "investment"
	AccountCash       AccountType = "cash"
)

// IsDebt reports whether the account type carries a payable balance.
func (t AccountType) IsDebt() bool {
	return t == AccountCreditCard || t == AccountLoan
}

// Account represents a financial account within the core domain.
// Balance is signed: negative for liabilities (credit cards, loans).
// The budget engine treats accounts as read-only; reconciliation happens
// outside the engine.
type Account struct {
	AccountID    string          `json:"accountID"` // Primary Key (UUID)
	UserID       string          `json:"userID"`    // FK -> users.user_id (NON-NULL)
	Name         string          `json:"name"`
	Type         AccountType     `json:"type"`
	Balance      decimal.Decimal `json:"balance"`
	InterestRate decimal.Decimal `json:"interestRate"` // Annual percentage, zero when not applicable
	CreditLimit  decimal.Decimal `json:"creditLimit"`  // Zero when not applicable
	IsActive     bool            `json:"isActive"`
	AuditFields
}
