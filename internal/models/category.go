package models

// Category represents a row in the categories table.
type Category struct {
	CategoryID   string `db:"category_id"`
	UserID       string `db:"user_id"`
	Label        string `db:"label"`
	Icon         string `db:"icon"`
	CategoryType string `db:"category_type"`
	Color        string `db:"color"`
	IsDebt       bool   `db:"is_debt"`
	IsGoal       bool   `db:"is_goal"`
	AuditFields
}
