package models

// Settings represents a row in the settings table, keyed by user_id.
// auto_assign_priority is a text[] column of category IDs in funding order.
type Settings struct {
	UserID             string   `db:"user_id"`
	Currency           string   `db:"currency"`
	DateFormat         string   `db:"date_format"`
	FirstDayOfWeek     int      `db:"first_day_of_week"`
	DebtStrategy       string   `db:"debt_strategy"`
	AutoAssignPriority []string `db:"auto_assign_priority"`
	AuditFields
}
