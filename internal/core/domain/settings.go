package domain

// DebtStrategy names a debt payoff ordering. The budget engine only accepts
// snowball and avalanche; custom is resolved by the service layer before the
// engine is called.
type DebtStrategy string

const (
	StrategySnowball  DebtStrategy = "snowball"
	StrategyAvalanche DebtStrategy = "avalanche"
	StrategyCustom    DebtStrategy = "custom"
)

// Settings holds per-user ledger preferences.
type Settings struct {
	UserID             string       `json:"userID"` // Primary Key, FK -> users.user_id
	Currency           string       `json:"currency"`
	DateFormat         string       `json:"dateFormat"`
	FirstDayOfWeek     int          `json:"firstDayOfWeek"`
	DebtStrategy       DebtStrategy `json:"debtStrategy"`
	AutoAssignPriority []string     `json:"autoAssignPriority"` // Ordered category IDs
	AuditFields
}
