package models

import (
	"github.com/shopspring/decimal"
)

// Budget represents a row in the budgets table. A UNIQUE constraint on
// (user_id, category_id, month) enforces the single-record-per-pair rule.
type Budget struct {
	BudgetID   string          `db:"budget_id"`
	UserID     string          `db:"user_id"`
	CategoryID string          `db:"category_id"`
	Month      string          `db:"month"`
	Assigned   decimal.Decimal `db:"assigned"`
	Activity   decimal.Decimal `db:"activity"`
	Available  decimal.Decimal `db:"available"`
	AuditFields
}
