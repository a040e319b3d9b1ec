package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalType selects the projection arithmetic for a savings goal.
type GoalType string

const (
	GoalTargetBalance  GoalType = "target_balance"
	GoalMonthlyFunding GoalType = "monthly_funding"
	GoalTargetDate     GoalType = "target_date"
)

// Goal is a savings target attached to an isGoal category. CurrentAmount is
// tracked externally (it mirrors the envelope's available balance) and is
// only read by the engine.
type Goal struct {
	GoalID         string          `json:"goalID"`     // Primary Key (UUID)
	UserID         string          `json:"userID"`     // FK -> users.user_id (NON-NULL)
	CategoryID     string          `json:"categoryID"` // FK -> categories.category_id, isGoal category
	Name           string          `json:"name"`
	Type           GoalType        `json:"type"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	TargetDate     *time.Time      `json:"targetDate,omitempty"`     // target_date goals only
	MonthlyFunding decimal.Decimal `json:"monthlyFunding,omitempty"` // zero when unset
	CurrentAmount  decimal.Decimal `json:"currentAmount"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
