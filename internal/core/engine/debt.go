package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// loanTermMonths is the amortization horizon assumed for loan minimum
// payments (10 years).
const loanTermMonths = 120

// DebtPlanEntry is one debt account's position in a payoff plan.
//
// The plan is a snapshot estimate: all extra payment is concentrated on the
// top-priority debt, and a paid-off debt's payment is not rolled over onto
// the next one. Payable is false when the payment cannot retire the balance
// (non-positive payment, or payment below accruing interest), in which case
// MonthsToPayoff is zero and TotalInterest is zero.
type DebtPlanEntry struct {
	AccountID      string             `json:"accountID"`
	AccountName    string             `json:"accountName"`
	AccountType    domain.AccountType `json:"accountType"`
	Balance        decimal.Decimal    `json:"balance"`
	InterestRate   decimal.Decimal    `json:"interestRate"`
	MinimumPayment decimal.Decimal    `json:"minimumPayment"`
	MonthlyPayment decimal.Decimal    `json:"monthlyPayment"` // minimum plus any extra for the rank-1 debt
	PayoffOrder    int                `json:"payoffOrder"`
	MonthsToPayoff int                `json:"monthsToPayoff"`
	TotalInterest  decimal.Decimal    `json:"totalInterest"`
	Payable        bool               `json:"payable"`
}

// DebtAccounts returns every account that carries a payable balance
// (credit cards and loans).
func (e *Engine) DebtAccounts() []domain.Account {
	var debts []domain.Account
	for _, a := range e.ledger.Accounts {
		if a.Type.IsDebt() {
			debts = append(debts, a)
		}
	}
	return debts
}

// CalculateDebtPayoffPlan orders all debt accounts by the given strategy
// (avalanche: highest interest rate first; snowball: smallest balance first)
// and computes a closed-form payoff timeline for each. The extra payment is
// applied entirely to the first-ranked debt. Only snowball and avalanche are
// accepted; callers map the custom strategy to one of them first.
func (e *Engine) CalculateDebtPayoffPlan(extraPayment decimal.Decimal, strategy domain.DebtStrategy) ([]DebtPlanEntry, error) {
	if strategy != domain.StrategySnowball && strategy != domain.StrategyAvalanche {
		return nil, fmt.Errorf("unsupported debt strategy %q: %w", strategy, apperrors.ErrValidation)
	}

	var plan []DebtPlanEntry
	for _, a := range e.DebtAccounts() {
		balance := a.Balance.Abs()
		plan = append(plan, DebtPlanEntry{
			AccountID:      a.AccountID,
			AccountName:    a.Name,
			AccountType:    a.Type,
			Balance:        balance,
			InterestRate:   a.InterestRate,
			MinimumPayment: minimumPayment(a.Type, balance, a.InterestRate),
		})
	}

	switch strategy {
	case domain.StrategyAvalanche:
		sort.SliceStable(plan, func(i, j int) bool {
			return plan[i].InterestRate.GreaterThan(plan[j].InterestRate)
		})
	case domain.StrategySnowball:
		sort.SliceStable(plan, func(i, j int) bool {
			return plan[i].Balance.LessThan(plan[j].Balance)
		})
	}

	for i := range plan {
		plan[i].PayoffOrder = i + 1
		plan[i].MonthlyPayment = plan[i].MinimumPayment
		if i == 0 {
			plan[i].MonthlyPayment = plan[i].MonthlyPayment.Add(extraPayment)
		}
		plan[i].MonthsToPayoff, plan[i].TotalInterest, plan[i].Payable =
			payoffTimeline(plan[i].Balance, plan[i].InterestRate, plan[i].MonthlyPayment)
	}

	return plan, nil
}

// minimumPayment computes the assumed minimum monthly payment for a debt:
// credit cards pay the greater of $25 or 2% of balance; loans pay the
// standard fixed amortization payment over a 10-year term.
func minimumPayment(accountType domain.AccountType, balance, annualRate decimal.Decimal) decimal.Decimal {
	if accountType == domain.AccountCreditCard {
		floor := decimal.NewFromInt(25)
		pct := balance.Mul(decimal.NewFromFloat(0.02))
		return decimal.Max(floor, pct)
	}

	r := monthlyRate(annualRate)
	if r == 0 {
		return balance.Div(decimal.NewFromInt(loanTermMonths))
	}

	// P = B*r*(1+r)^n / ((1+r)^n - 1)
	// Kept at full precision: rounding the payment to cents before the
	// timeline computation shifts the closed-form month count.
	b := balance.InexactFloat64()
	factor := math.Pow(1+r, loanTermMonths)
	payment := b * r * factor / (factor - 1)
	return decimal.NewFromFloat(payment)
}

// payoffTimeline evaluates the closed-form amortization timeline for a debt:
// months = ceil(-ln(1 - B*r/pmt) / ln(1+r)), interest = max(0, pmt*months - B).
func payoffTimeline(balance, annualRate, payment decimal.Decimal) (months int, interest decimal.Decimal, payable bool) {
	if !payment.IsPositive() {
		return 0, decimal.Zero, false
	}

	r := monthlyRate(annualRate)
	b := balance.InexactFloat64()
	pmt := payment.InexactFloat64()

	if r == 0 {
		return int(math.Ceil(b / pmt)), decimal.Zero, true
	}

	// Payment at or below accruing interest never retires the balance.
	if b*r/pmt >= 1 {
		return 0, decimal.Zero, false
	}

	months = int(math.Ceil(-math.Log(1-b*r/pmt) / math.Log(1+r)))
	interest = payment.Mul(decimal.NewFromInt(int64(months))).Sub(balance).Round(2)
	if interest.IsNegative() {
		interest = decimal.Zero
	}
	return months, interest, true
}

func monthlyRate(annualRate decimal.Decimal) float64 {
	return annualRate.InexactFloat64() / 100 / 12
}
