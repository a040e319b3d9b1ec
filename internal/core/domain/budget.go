package domain

import "github.com/shopspring/decimal"

// Budget is an envelope assignment for one (category, month) pair, month in
// YYYY-MM form. At most one Budget record may exist per pair; the engine
// merges into an existing record instead of duplicating.
//
// Assigned is the cumulative money moved into the envelope this month.
// Activity and Available are derived:
//
//	available(M) = available(M-1) + assigned(M) + activity(M)
//
// with the recursion bottoming out at the first month that has no prior
// Budget record (previous available = 0).
type Budget struct {
	BudgetID   string          `json:"budgetID"` // Primary Key (UUID)
	UserID     string          `json:"userID"`   // FK -> users.user_id (NON-NULL)
	CategoryID string          `json:"categoryID"`
	Month      string          `json:"month"`
	Assigned   decimal.Decimal `json:"assigned"`
	Activity   decimal.Decimal `json:"activity"`
	Available  decimal.Decimal `json:"available"`
	AuditFields
}
