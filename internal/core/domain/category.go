package domain

// CategoryType determines which envelope grouping and budgeting rules apply.
type CategoryType string

const (
	CategoryIncome   CategoryType = "income"
	CategoryExpense  CategoryType = "expense"
	CategoryTransfer CategoryType = "transfer"
)

// Category is an envelope identity. IsDebt marks debt-payment envelopes,
// IsGoal marks savings-goal envelopes. Deleting a category that still has
// transactions referencing it is refused by the service layer, not here.
type Category struct {
	CategoryID string       `json:"categoryID"` // Primary Key (UUID)
	UserID     string       `json:"userID"`     // FK -> users.user_id (NON-NULL)
	Label      string       `json:"label"`
	Icon       string       `json:"icon"`
	Type       CategoryType `json:"type"`
	Color      string       `json:"color"`
	IsDebt     bool         `json:"isDebt"`
	IsGoal     bool         `json:"isGoal"`
	AuditFields
}
