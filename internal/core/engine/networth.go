package engine

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// ageOfMoneyWindowDays is the trailing window over which age of money is
// computed.
const ageOfMoneyWindowDays = 90

// NetWorthSummary splits account balances into assets and liabilities.
// Breakdown is keyed by account name; colliding names are last-write-wins.
type NetWorthSummary struct {
	Assets      decimal.Decimal            `json:"assets"`
	Liabilities decimal.Decimal            `json:"liabilities"`
	NetWorth    decimal.Decimal            `json:"netWorth"`
	Breakdown   map[string]decimal.Decimal `json:"breakdown"`
}

// CalculateNetWorth sums all account balances: non-negative balances count as
// assets, negative balances as liabilities (by magnitude).
func (e *Engine) CalculateNetWorth() NetWorthSummary {
	summary := NetWorthSummary{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		Breakdown:   make(map[string]decimal.Decimal, len(e.ledger.Accounts)),
	}

	for _, a := range e.ledger.Accounts {
		if a.Balance.IsNegative() {
			summary.Liabilities = summary.Liabilities.Add(a.Balance.Abs())
		} else {
			summary.Assets = summary.Assets.Add(a.Balance)
		}
		summary.Breakdown[a.Name] = a.Balance
	}

	summary.NetWorth = summary.Assets.Sub(summary.Liabilities)
	return summary
}

// AgeOfMoney estimates how long money sits before being spent: over the
// trailing 90 days, the gap in days between the mean expense date and the
// mean income date, clamped at zero. Returns 0 when either side has no
// transactions in the window.
func (e *Engine) AgeOfMoney() int {
	cutoff := e.now().AddDate(0, 0, -ageOfMoneyWindowDays)

	var incomeSum, expenseSum float64
	var incomeCount, expenseCount int

	for _, txn := range e.ledger.Transactions {
		date, err := time.Parse(domain.DateLayout, txn.Date)
		if err != nil || date.Before(cutoff) {
			continue
		}
		switch txn.Type {
		case domain.TxnIncome:
			incomeSum += float64(date.Unix())
			incomeCount++
		case domain.TxnExpense:
			expenseSum += float64(date.Unix())
			expenseCount++
		}
	}

	if incomeCount == 0 || expenseCount == 0 {
		return 0
	}

	meanIncome := incomeSum / float64(incomeCount)
	meanExpense := expenseSum / float64(expenseCount)
	days := int(math.Round((meanExpense - meanIncome) / (24 * 60 * 60)))
	if days < 0 {
		return 0
	}
	return days
}
