package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/engine"
)

func dec(t *testing.T, v string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	require.NoError(t, err)
	return d
}

func assertDecEqual(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(t, expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

func incomeTxn(month, amount string) domain.Transaction {
	return domain.Transaction{
		Type:       domain.TxnIncome,
		CategoryID: "cat-salary",
		Amount:     decimal.RequireFromString(amount),
		Date:       month + "-15",
	}
}

func expenseTxn(categoryID, month, amount string) domain.Transaction {
	return domain.Transaction{
		Type:       domain.TxnExpense,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString(amount),
		Date:       month + "-10",
	}
}

func TestAvailableToBudget_CarriesUnassignedIncomeOneMonth(t *testing.T) {
	ledger := &domain.Ledger{
		Transactions: []domain.Transaction{
			incomeTxn("2025-01", "1000"),
			incomeTxn("2025-02", "500"),
		},
		Budgets: []domain.Budget{
			{BudgetID: "b1", CategoryID: "cat-food", Month: "2025-01", Assigned: decimal.RequireFromString("600")},
		},
	}
	e := engine.New(ledger)

	// 500 income + (1000 - 600) carried from January, nothing overspent.
	assertDecEqual(t, "900", e.AvailableToBudget("2025-02"))
}

func TestAvailableToBudget_SubtractsPriorOverspending(t *testing.T) {
	ledger := &domain.Ledger{
		Transactions: []domain.Transaction{
			incomeTxn("2025-01", "1000"),
			expenseTxn("cat-food", "2025-01", "250"), // envelope only holds 200
			incomeTxn("2025-02", "500"),
		},
		Budgets: []domain.Budget{
			{BudgetID: "b1", CategoryID: "cat-food", Month: "2025-01", Assigned: decimal.RequireFromString("200")},
		},
	}
	e := engine.New(ledger)

	// January envelope is 200 - 250 = -50 overspent; carried unassigned
	// income is 1000 - 200 = 800.
	assertDecEqual(t, "1250", e.AvailableToBudget("2025-02"))
}

func TestCategoryAvailable_CarryForwardInvariant(t *testing.T) {
	ledger := &domain.Ledger{
		Transactions: []domain.Transaction{
			expenseTxn("cat-food", "2025-01", "120"),
			expenseTxn("cat-food", "2025-02", "80"),
			expenseTxn("cat-food", "2025-03", "40"),
		},
		Budgets: []domain.Budget{
			{BudgetID: "b1", CategoryID: "cat-food", Month: "2025-01", Assigned: decimal.RequireFromString("150")},
			{BudgetID: "b2", CategoryID: "cat-food", Month: "2025-02", Assigned: decimal.RequireFromString("100")},
			{BudgetID: "b3", CategoryID: "cat-food", Month: "2025-03", Assigned: decimal.RequireFromString("50")},
		},
	}
	e := engine.New(ledger)

	// Month by month: 150-120=30, 30+100-80=50, 50+50-40=60.
	assertDecEqual(t, "30", e.CategoryAvailable("cat-food", "2025-01"))
	assertDecEqual(t, "50", e.CategoryAvailable("cat-food", "2025-02"))
	assertDecEqual(t, "60", e.CategoryAvailable("cat-food", "2025-03"))

	// The invariant holds for every month with a record.
	for _, month := range []string{"2025-02", "2025-03"} {
		prev := domain.PrevMonth(month)
		b := ledger.Budget("cat-food", month)
		require.NotNil(t, b)
		expected := e.CategoryAvailable("cat-food", prev).
			Add(b.Assigned).
			Add(expenseActivity(ledger, "cat-food", month))
		assert.True(t, expected.Equal(e.CategoryAvailable("cat-food", month)), "invariant broken for %s", month)
	}
}

// expenseActivity recomputes signed activity independently of the engine.
func expenseActivity(ledger *domain.Ledger, categoryID, month string) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range ledger.Transactions {
		if txn.CategoryID == categoryID && txn.Month() == month {
			total = total.Add(txn.SignedAmount())
		}
	}
	return total
}

func TestCategoryAvailable_BottomsOutAtFirstUnbudgetedMonth(t *testing.T) {
	ledger := &domain.Ledger{
		Transactions: []domain.Transaction{
			// Activity in a month with no Budget record does not leak into
			// the recursion: December has spend but no record.
			expenseTxn("cat-food", "2024-12", "999"),
		},
		Budgets: []domain.Budget{
			{BudgetID: "b1", CategoryID: "cat-food", Month: "2025-01", Assigned: decimal.RequireFromString("100")},
		},
	}
	e := engine.New(ledger)

	assertDecEqual(t, "100", e.CategoryAvailable("cat-food", "2025-01"))
}

func TestCategoryAvailable_NoRecordIsLegal(t *testing.T) {
	ledger := &domain.Ledger{
		Transactions: []domain.Transaction{
			expenseTxn("cat-food", "2025-02", "30"),
		},
	}
	e := engine.New(ledger)

	assertDecEqual(t, "-30", e.CategoryAvailable("cat-food", "2025-02"))
}

func TestMonthlyBudgetSummary(t *testing.T) {
	ledger := &domain.Ledger{
		Transactions: []domain.Transaction{
			incomeTxn("2025-03", "1000"),
		},
		Budgets: []domain.Budget{
			{BudgetID: "b1", CategoryID: "cat-food", Month: "2025-03", Assigned: decimal.RequireFromString("400")},
			{BudgetID: "b2", CategoryID: "cat-rent", Month: "2025-03", Assigned: decimal.RequireFromString("350")},
		},
	}
	e := engine.New(ledger)

	summary := e.MonthlyBudgetSummary("2025-03")
	assertDecEqual(t, "1000", summary.AvailableToBudget)
	assertDecEqual(t, "750", summary.TotalAssigned)
	assertDecEqual(t, "250", summary.ToBeBudgeted)
	assert.False(t, summary.IsFullyAssigned)
	assert.False(t, summary.IsOverAssigned)

	assert.True(t, summary.ToBeBudgeted.Equal(summary.AvailableToBudget.Sub(summary.TotalAssigned)))
}

func TestMonthlyBudgetSummary_Flags(t *testing.T) {
	ledger := &domain.Ledger{
		Transactions: []domain.Transaction{
			incomeTxn("2025-03", "500"),
		},
		Budgets: []domain.Budget{
			{BudgetID: "b1", CategoryID: "cat-food", Month: "2025-03", Assigned: decimal.RequireFromString("500")},
		},
	}
	e := engine.New(ledger)

	summary := e.MonthlyBudgetSummary("2025-03")
	assert.True(t, summary.IsFullyAssigned)
	assert.False(t, summary.IsOverAssigned)

	e.AssignMoney("cat-rent", "2025-03", decimal.RequireFromString("1"))
	summary = e.MonthlyBudgetSummary("2025-03")
	assert.False(t, summary.IsFullyAssigned)
	assert.True(t, summary.IsOverAssigned)
}

func TestAssignMoney_CreatesThenMerges(t *testing.T) {
	ledger := &domain.Ledger{}
	e := engine.New(ledger)

	first := e.AssignMoney("cat-food", "2025-04", decimal.RequireFromString("10"))
	require.NotEmpty(t, first.BudgetID)
	assertDecEqual(t, "10", first.Assigned)

	second := e.AssignMoney("cat-food", "2025-04", decimal.RequireFromString("10"))
	assert.Equal(t, first.BudgetID, second.BudgetID, "should merge into the existing record")
	assertDecEqual(t, "20", second.Assigned)
	assert.Len(t, ledger.Budgets, 1)

	// Additive: two +10 calls match a single +20 call on a fresh ledger.
	other := engine.New(&domain.Ledger{})
	once := other.AssignMoney("cat-food", "2025-04", decimal.RequireFromString("20"))
	assert.True(t, once.Assigned.Equal(second.Assigned))
}

func TestAssignMoney_NegativeUnassigns(t *testing.T) {
	ledger := &domain.Ledger{}
	e := engine.New(ledger)

	e.AssignMoney("cat-food", "2025-04", decimal.RequireFromString("100"))
	b := e.AssignMoney("cat-food", "2025-04", decimal.RequireFromString("-40"))
	assertDecEqual(t, "60", b.Assigned)
	assertDecEqual(t, "60", b.Available)
}

func TestAssignMoney_RecomputesDerivedFields(t *testing.T) {
	ledger := &domain.Ledger{
		Transactions: []domain.Transaction{
			expenseTxn("cat-food", "2025-04", "35"),
		},
	}
	e := engine.New(ledger)

	b := e.AssignMoney("cat-food", "2025-04", decimal.RequireFromString("100"))
	assertDecEqual(t, "-35", b.Activity)
	assertDecEqual(t, "65", b.Available)
}

func autoAssignLedger(t *testing.T) *domain.Ledger {
	t.Helper()
	targetDate := mustDate(t, "2025-10-15")
	return &domain.Ledger{
		Categories: []domain.Category{
			{CategoryID: "cat-food", UserID: "u1", Label: "Food", Type: domain.CategoryExpense},
			{CategoryID: "cat-vacation", UserID: "u1", Label: "Vacation", Type: domain.CategoryExpense, IsGoal: true},
		},
		Transactions: []domain.Transaction{
			incomeTxn("2025-04", "1000"),
			expenseTxn("cat-food", "2025-04", "50"), // overspent: no assignment yet
		},
		Goals: []domain.Goal{
			{
				GoalID:       "g1",
				CategoryID:   "cat-vacation",
				Name:         "Vacation",
				Type:         domain.GoalTargetDate,
				TargetAmount: decimal.RequireFromString("1200"),
				TargetDate:   &targetDate,
				IsActive:     true,
			},
		},
	}
}

func TestAutoAssignMoney_CoversOverspendingThenFundsGoals(t *testing.T) {
	e := engine.New(autoAssignLedger(t), engine.WithClock(fixedClock(t, "2025-04-15")))

	touched := e.AutoAssignMoney("2025-04", []string{"cat-vacation"})
	require.Len(t, touched, 2)

	// Pass 1 zeroes the overspent food envelope.
	assert.Equal(t, "cat-food", touched[0].CategoryID)
	assertDecEqual(t, "50", touched[0].Assigned)
	assertDecEqual(t, "0", touched[0].Available)

	// Pass 2 funds the goal toward its recommended monthly (1200 over 6 months).
	assert.Equal(t, "cat-vacation", touched[1].CategoryID)
	assertDecEqual(t, "200", touched[1].Assigned)
}

func TestAutoAssignMoney_NeverExceedsToBeBudgeted(t *testing.T) {
	ledger := autoAssignLedger(t)
	// Shrink income so funds run out mid-way through the goal top-up.
	ledger.Transactions[0] = incomeTxn("2025-04", "120")
	e := engine.New(ledger, engine.WithClock(fixedClock(t, "2025-04-15")))

	before := e.MonthlyBudgetSummary("2025-04").ToBeBudgeted
	touched := e.AutoAssignMoney("2025-04", []string{"cat-vacation"})

	total := decimal.Zero
	for _, b := range touched {
		total = total.Add(b.Assigned)
	}
	assert.True(t, total.LessThanOrEqual(before), "assigned %s, had %s", total, before)
	assertDecEqual(t, "0", e.MonthlyBudgetSummary("2025-04").ToBeBudgeted)
}

func TestAutoAssignMoney_NoFundsNoAssignments(t *testing.T) {
	ledger := autoAssignLedger(t)
	ledger.Transactions = ledger.Transactions[1:] // drop the income
	e := engine.New(ledger, engine.WithClock(fixedClock(t, "2025-04-15")))

	touched := e.AutoAssignMoney("2025-04", []string{"cat-vacation"})
	assert.Empty(t, touched)
	assert.Empty(t, ledger.Budgets)
}
