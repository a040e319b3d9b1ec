package domain

// Ledger is a full in-memory snapshot of one user's financial data. The
// budget engine is constructed from a Ledger and computes everything from it;
// only the Budgets slice is ever mutated by the engine (envelope assignment),
// and the caller owns persisting any returned records.
type Ledger struct {
	Accounts     []Account
	Categories   []Category
	Transactions []Transaction
	Budgets      []Budget
	Goals        []Goal
	Settings     Settings
}

// Category returns the category with the given ID, or nil.
func (l *Ledger) Category(categoryID string) *Category {
	for i := range l.Categories {
		if l.Categories[i].CategoryID == categoryID {
			return &l.Categories[i]
		}
	}
	return nil
}

// Goal returns the goal with the given ID, or nil.
func (l *Ledger) Goal(goalID string) *Goal {
	for i := range l.Goals {
		if l.Goals[i].GoalID == goalID {
			return &l.Goals[i]
		}
	}
	return nil
}

// GoalForCategory returns the active goal attached to a category, or nil.
func (l *Ledger) GoalForCategory(categoryID string) *Goal {
	for i := range l.Goals {
		if l.Goals[i].CategoryID == categoryID && l.Goals[i].IsActive {
			return &l.Goals[i]
		}
	}
	return nil
}

// Budget returns the budget record for (categoryID, month), or nil.
func (l *Ledger) Budget(categoryID, month string) *Budget {
	for i := range l.Budgets {
		if l.Budgets[i].CategoryID == categoryID && l.Budgets[i].Month == month {
			return &l.Budgets[i]
		}
	}
	return nil
}
