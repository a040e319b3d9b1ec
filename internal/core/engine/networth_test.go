package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/engine"
)

func TestCalculateNetWorth(t *testing.T) {
	e := engine.New(&domain.Ledger{
		Accounts: []domain.Account{
			{AccountID: "a1", Name: "Checking", Type: domain.AccountChecking, Balance: decimal.RequireFromString("2000")},
			{AccountID: "a2", Name: "Visa", Type: domain.AccountCreditCard, Balance: decimal.RequireFromString("-500")},
		},
	})

	summary := e.CalculateNetWorth()
	assertDecEqual(t, "2000", summary.Assets)
	assertDecEqual(t, "500", summary.Liabilities)
	assertDecEqual(t, "1500", summary.NetWorth)

	require.Len(t, summary.Breakdown, 2)
	assertDecEqual(t, "2000", summary.Breakdown["Checking"])
	assertDecEqual(t, "-500", summary.Breakdown["Visa"])
}

func TestCalculateNetWorth_NameCollisionLastWriteWins(t *testing.T) {
	e := engine.New(&domain.Ledger{
		Accounts: []domain.Account{
			{AccountID: "a1", Name: "Wallet", Balance: decimal.RequireFromString("100")},
			{AccountID: "a2", Name: "Wallet", Balance: decimal.RequireFromString("40")},
		},
	})

	summary := e.CalculateNetWorth()
	assertDecEqual(t, "140", summary.Assets)
	assertDecEqual(t, "40", summary.Breakdown["Wallet"])
}

func TestAgeOfMoney(t *testing.T) {
	e := engine.New(&domain.Ledger{
		Transactions: []domain.Transaction{
			{Type: domain.TxnIncome, Amount: decimal.RequireFromString("1000"), Date: "2025-03-01"},
			{Type: domain.TxnExpense, Amount: decimal.RequireFromString("50"), Date: "2025-03-21"},
			{Type: domain.TxnExpense, Amount: decimal.RequireFromString("50"), Date: "2025-03-31"},
		},
	}, engine.WithClock(fixedClock(t, "2025-04-01")))

	// Mean expense date is 2025-03-26, mean income date 2025-03-01.
	assert.Equal(t, 25, e.AgeOfMoney())
}

func TestAgeOfMoney_IgnoresTransactionsOutsideWindow(t *testing.T) {
	e := engine.New(&domain.Ledger{
		Transactions: []domain.Transaction{
			{Type: domain.TxnIncome, Amount: decimal.RequireFromString("1000"), Date: "2024-06-01"}, // outside 90 days
			{Type: domain.TxnExpense, Amount: decimal.RequireFromString("50"), Date: "2025-03-21"},
		},
	}, engine.WithClock(fixedClock(t, "2025-04-01")))

	// No income left inside the window.
	assert.Equal(t, 0, e.AgeOfMoney())
}

func TestAgeOfMoney_EmptySidesYieldZero(t *testing.T) {
	e := engine.New(&domain.Ledger{}, engine.WithClock(fixedClock(t, "2025-04-01")))
	assert.Equal(t, 0, e.AgeOfMoney())
}

func TestAgeOfMoney_ClampsAtZero(t *testing.T) {
	e := engine.New(&domain.Ledger{
		Transactions: []domain.Transaction{
			{Type: domain.TxnExpense, Amount: decimal.RequireFromString("50"), Date: "2025-02-01"},
			{Type: domain.TxnIncome, Amount: decimal.RequireFromString("1000"), Date: "2025-03-20"},
		},
	}, engine.WithClock(fixedClock(t, "2025-04-01")))

	assert.Equal(t, 0, e.AgeOfMoney())
}
