package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/engine"
)

func debtAccount(id string, accountType domain.AccountType, balance, rate string) domain.Account {
	return domain.Account{
		AccountID:    id,
		Name:         id,
		Type:         accountType,
		Balance:      decimal.RequireFromString(balance).Neg(),
		InterestRate: decimal.RequireFromString(rate),
		IsActive:     true,
	}
}

func TestDebtAccounts_FiltersByType(t *testing.T) {
	e := engine.New(&domain.Ledger{
		Accounts: []domain.Account{
			{AccountID: "a1", Type: domain.AccountChecking},
			debtAccount("a2", domain.AccountCreditCard, "500", "24"),
			{AccountID: "a3", Type: domain.AccountSavings},
			debtAccount("a4", domain.AccountLoan, "10000", "6"),
		},
	})

	debts := e.DebtAccounts()
	require.Len(t, debts, 2)
	assert.Equal(t, "a2", debts[0].AccountID)
	assert.Equal(t, "a4", debts[1].AccountID)
}

func TestCalculateDebtPayoffPlan_AvalancheOrdersByRate(t *testing.T) {
	e := engine.New(&domain.Ledger{
		Accounts: []domain.Account{
			debtAccount("high", domain.AccountCreditCard, "2000", "24"),
			debtAccount("mid", domain.AccountCreditCard, "2000", "12"),
			debtAccount("low", domain.AccountCreditCard, "2000", "5"),
		},
	})

	plan, err := e.CalculateDebtPayoffPlan(decimal.Zero, domain.StrategyAvalanche)
	require.NoError(t, err)
	require.Len(t, plan, 3)

	assert.Equal(t, "high", plan[0].AccountID)
	assert.Equal(t, "mid", plan[1].AccountID)
	assert.Equal(t, "low", plan[2].AccountID)
	for i, entry := range plan {
		assert.Equal(t, i+1, entry.PayoffOrder)
	}
}

func TestCalculateDebtPayoffPlan_SnowballOrdersByBalance(t *testing.T) {
	e := engine.New(&domain.Ledger{
		Accounts: []domain.Account{
			debtAccount("small", domain.AccountCreditCard, "500", "10"),
			debtAccount("large", domain.AccountCreditCard, "5000", "10"),
			debtAccount("medium", domain.AccountCreditCard, "1000", "10"),
		},
	})

	plan, err := e.CalculateDebtPayoffPlan(decimal.Zero, domain.StrategySnowball)
	require.NoError(t, err)
	require.Len(t, plan, 3)

	assert.Equal(t, "small", plan[0].AccountID)
	assert.Equal(t, "medium", plan[1].AccountID)
	assert.Equal(t, "large", plan[2].AccountID)
}

func TestCalculateDebtPayoffPlan_RejectsCustomStrategy(t *testing.T) {
	e := engine.New(&domain.Ledger{})

	_, err := e.CalculateDebtPayoffPlan(decimal.Zero, domain.StrategyCustom)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCalculateDebtPayoffPlan_LoanAmortization(t *testing.T) {
	e := engine.New(&domain.Ledger{
		Accounts: []domain.Account{
			debtAccount("loan", domain.AccountLoan, "10000", "6"),
		},
	})

	plan, err := e.CalculateDebtPayoffPlan(decimal.Zero, domain.StrategyAvalanche)
	require.NoError(t, err)
	require.Len(t, plan, 1)

	// Standard 10-year amortization: $10,000 at 6% -> ~$111.02/month,
	// paid off in the full 120-month term.
	assert.InDelta(t, 111.02, plan[0].MinimumPayment.InexactFloat64(), 0.01)
	assert.Equal(t, 120, plan[0].MonthsToPayoff)
	assert.True(t, plan[0].Payable)
	assert.InDelta(t, 3322.46, plan[0].TotalInterest.InexactFloat64(), 1.0)
}

func TestCalculateDebtPayoffPlan_CreditCardMinimum(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		want    string
	}{
		{name: "two percent of large balance", balance: "5000", want: "100"},
		{name: "floor of 25 on small balance", balance: "500", want: "25"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := engine.New(&domain.Ledger{
				Accounts: []domain.Account{
					debtAccount("card", domain.AccountCreditCard, tc.balance, "20"),
				},
			})

			plan, err := e.CalculateDebtPayoffPlan(decimal.Zero, domain.StrategySnowball)
			require.NoError(t, err)
			assertDecEqual(t, tc.want, plan[0].MinimumPayment)
		})
	}
}

func TestCalculateDebtPayoffPlan_ExtraPaymentOnlyOnFirstDebt(t *testing.T) {
	e := engine.New(&domain.Ledger{
		Accounts: []domain.Account{
			debtAccount("first", domain.AccountCreditCard, "1000", "24"),
			debtAccount("second", domain.AccountCreditCard, "1000", "12"),
		},
	})

	plan, err := e.CalculateDebtPayoffPlan(decimal.RequireFromString("100"), domain.StrategyAvalanche)
	require.NoError(t, err)
	require.Len(t, plan, 2)

	assert.True(t, plan[0].MonthlyPayment.Equal(plan[0].MinimumPayment.Add(decimal.RequireFromString("100"))))
	assert.True(t, plan[1].MonthlyPayment.Equal(plan[1].MinimumPayment))
	assert.Less(t, plan[0].MonthsToPayoff, plan[1].MonthsToPayoff)
}

func TestCalculateDebtPayoffPlan_InfiniteHorizon(t *testing.T) {
	// 2% minimum on a huge balance at an extreme rate never outruns the
	// accruing interest.
	e := engine.New(&domain.Ledger{
		Accounts: []domain.Account{
			debtAccount("card", domain.AccountCreditCard, "10000", "60"),
		},
	})

	plan, err := e.CalculateDebtPayoffPlan(decimal.Zero, domain.StrategySnowball)
	require.NoError(t, err)
	require.Len(t, plan, 1)

	assert.False(t, plan[0].Payable)
	assert.Zero(t, plan[0].MonthsToPayoff)
	assert.True(t, plan[0].TotalInterest.IsZero())
}

func TestCalculateDebtPayoffPlan_ZeroRateLoan(t *testing.T) {
	e := engine.New(&domain.Ledger{
		Accounts: []domain.Account{
			debtAccount("loan", domain.AccountLoan, "1200", "0"),
		},
	})

	plan, err := e.CalculateDebtPayoffPlan(decimal.Zero, domain.StrategySnowball)
	require.NoError(t, err)
	require.Len(t, plan, 1)

	assertDecEqual(t, "10", plan[0].MinimumPayment) // 1200 / 120
	assert.Equal(t, 120, plan[0].MonthsToPayoff)
	assert.True(t, plan[0].TotalInterest.IsZero())
}
