package engine

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// MonthlySummary reports how fully a month's income has been assigned to
// envelopes.
type MonthlySummary struct {
	Month             string          `json:"month"`
	AvailableToBudget decimal.Decimal `json:"availableToBudget"`
	TotalAssigned     decimal.Decimal `json:"totalAssigned"`
	ToBeBudgeted      decimal.Decimal `json:"toBeBudgeted"`
	IsFullyAssigned   bool            `json:"isFullyAssigned"`
	IsOverAssigned    bool            `json:"isOverAssigned"`
}

// monthlyIncome sums income-type transaction amounts dated within the month.
func (e *Engine) monthlyIncome(month string) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range e.ledger.Transactions {
		if txn.Type == domain.TxnIncome && txn.Month() == month {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// totalAssigned sums the assigned field across all envelopes for the month.
func (e *Engine) totalAssigned(month string) decimal.Decimal {
	total := decimal.Zero
	for _, b := range e.ledger.Budgets {
		if b.Month == month {
			total = total.Add(b.Assigned)
		}
	}
	return total
}

// activity is the signed net transaction effect for a category in a month:
// income adds, expenses and transfers draw down.
func (e *Engine) activity(categoryID, month string) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range e.ledger.Transactions {
		if txn.CategoryID == categoryID && txn.Month() == month {
			total = total.Add(txn.SignedAmount())
		}
	}
	return total
}

// overspending sums the shortfall of every overspent envelope in the month,
// each floored at zero before summing.
func (e *Engine) overspending(month string) decimal.Decimal {
	total := decimal.Zero
	for _, b := range e.ledger.Budgets {
		if b.Month != month {
			continue
		}
		available := e.CategoryAvailable(b.CategoryID, month)
		if available.IsNegative() {
			total = total.Add(available.Neg())
		}
	}
	return total
}

// AvailableToBudget is the month's income plus the prior month's unassigned
// income, minus the prior month's total overspending. The carry deliberately
// reaches only one month back; multi-month carry is obtained by calling this
// forward month by month, since envelope available balances already chain
// through CategoryAvailable.
func (e *Engine) AvailableToBudget(month string) decimal.Decimal {
	income := e.monthlyIncome(month)

	prev := domain.PrevMonth(month)
	carried := e.monthlyIncome(prev).Sub(e.totalAssigned(prev))
	if carried.IsNegative() {
		carried = decimal.Zero
	}

	return income.Add(carried).Sub(e.overspending(prev))
}

// MonthlyBudgetSummary reports available-to-budget against total assigned for
// the month.
func (e *Engine) MonthlyBudgetSummary(month string) MonthlySummary {
	available := e.AvailableToBudget(month)
	assigned := e.totalAssigned(month)
	toBeBudgeted := available.Sub(assigned)

	return MonthlySummary{
		Month:             month,
		AvailableToBudget: available,
		TotalAssigned:     assigned,
		ToBeBudgeted:      toBeBudgeted,
		IsFullyAssigned:   toBeBudgeted.IsZero(),
		IsOverAssigned:    toBeBudgeted.IsNegative(),
	}
}

// CategoryAvailable computes the envelope balance for (categoryID, month):
// prior month's available plus this month's assigned and activity. The
// recursion bottoms out at the first month with no prior Budget record.
// Calling it for a month with no Budget record is legal and yields the
// carry-forward-plus-activity balance.
func (e *Engine) CategoryAvailable(categoryID, month string) decimal.Decimal {
	prev := domain.PrevMonth(month)
	prevAvailable := decimal.Zero
	if prev != month && e.ledger.Budget(categoryID, prev) != nil {
		prevAvailable = e.CategoryAvailable(categoryID, prev)
	}

	assigned := decimal.Zero
	if b := e.ledger.Budget(categoryID, month); b != nil {
		assigned = b.Assigned
	}

	return prevAvailable.Add(assigned).Add(e.activity(categoryID, month))
}

// AssignMoney adds amount (negative to unassign) to the envelope for
// (categoryID, month), creating the Budget record if absent and merging into
// the existing one otherwise, then recomputes the derived fields. The ledger's
// budget collection is mutated in place; the returned record is a copy for
// the caller to persist.
func (e *Engine) AssignMoney(categoryID, month string, amount decimal.Decimal) domain.Budget {
	now := e.now()

	b := e.ledger.Budget(categoryID, month)
	if b == nil {
		e.ledger.Budgets = append(e.ledger.Budgets, domain.Budget{
			BudgetID:   uuid.NewString(),
			UserID:     e.ledger.Settings.UserID,
			CategoryID: categoryID,
			Month:      month,
			Assigned:   amount,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		})
		b = &e.ledger.Budgets[len(e.ledger.Budgets)-1]
	} else {
		b.Assigned = b.Assigned.Add(amount)
		b.LastUpdatedAt = now
	}

	b.Activity = e.activity(categoryID, month)
	b.Available = e.CategoryAvailable(categoryID, month)
	return *b
}

// AutoAssignMoney distributes the month's positive to-be-budgeted amount in
// two passes: first covering every overspent envelope, then topping up goal
// envelopes toward their recommended monthly funding in priority order. It
// stops as soon as funds run out and never assigns more than the pre-call
// to-be-budgeted amount. The touched records are returned in processing
// order.
func (e *Engine) AutoAssignMoney(month string, priorityCategoryIDs []string) []domain.Budget {
	remaining := e.MonthlyBudgetSummary(month).ToBeBudgeted
	if !remaining.IsPositive() {
		return nil
	}

	var touched []domain.Budget

	// Pass 1: zero out overspent envelopes.
	for _, c := range e.ledger.Categories {
		if !remaining.IsPositive() {
			break
		}
		available := e.CategoryAvailable(c.CategoryID, month)
		if !available.IsNegative() {
			continue
		}
		amount := decimal.Min(available.Neg(), remaining)
		touched = append(touched, e.AssignMoney(c.CategoryID, month, amount))
		remaining = remaining.Sub(amount)
	}

	// Pass 2: fund goal envelopes toward their recommended monthly amount.
	for _, categoryID := range priorityCategoryIDs {
		if !remaining.IsPositive() {
			break
		}
		category := e.ledger.Category(categoryID)
		if category == nil || !category.IsGoal {
			continue
		}
		goal := e.ledger.GoalForCategory(categoryID)
		if goal == nil {
			continue
		}
		progress, err := e.CalculateGoalProgress(goal.GoalID)
		if err != nil {
			continue
		}

		assigned := decimal.Zero
		if b := e.ledger.Budget(categoryID, month); b != nil {
			assigned = b.Assigned
		}
		topUp := progress.RecommendedMonthly.Sub(assigned)
		if !topUp.IsPositive() {
			continue
		}
		amount := decimal.Min(topUp, remaining)
		touched = append(touched, e.AssignMoney(categoryID, month, amount))
		remaining = remaining.Sub(amount)
	}

	return touched
}
