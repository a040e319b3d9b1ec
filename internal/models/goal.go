package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Goal represents a row in the goals table.
type Goal struct {
	GoalID         string          `db:"goal_id"`
	UserID         string          `db:"user_id"`
	CategoryID     string          `db:"category_id"`
	Name           string          `db:"name"`
	GoalType       string          `db:"goal_type"`
	TargetAmount   decimal.Decimal `db:"target_amount"`
	TargetDate     sql.NullTime    `db:"target_date"`
	MonthlyFunding decimal.Decimal `db:"monthly_funding"`
	CurrentAmount  decimal.Decimal `db:"current_amount"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
