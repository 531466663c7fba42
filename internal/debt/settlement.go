package debt

import "geldplan/internal/core"

// DefaultSettlementHorizon is the saving horizon, in months, a buyout
// offer is usually computed over.
const DefaultSettlementHorizon = 36

// Settlement is a fixed-horizon buyout scenario: the pot saved up over the
// horizon and the share of the total debt it covers. Percentage is left
// uncapped; values over 100 mean the pot covers the debt in full and then
// some, and any clamping is a display concern.
type Settlement struct {
	Pot        float64 `json:"pot"`
	Percentage float64 `json:"percentage"`
}

// EstimateSettlement computes the buyout offer a monthly budget can fund
// over horizonMonths. A non-positive total debt yields a zero scenario.
func EstimateSettlement(totalDebt, monthlyBudget float64, horizonMonths int) Settlement {
	if totalDebt <= 0 || horizonMonths <= 0 {
		return Settlement{}
	}
	pot := monthlyBudget * float64(horizonMonths)
	return Settlement{
		Pot:        pot,
		Percentage: pot / totalDebt * 100,
	}
}

// PortfolioSummary aggregates the debt list for display and advice context.
type PortfolioSummary struct {
	TotalDebt        float64 `json:"totalDebt"`
	TotalMonthly     float64 `json:"totalMonthly"`
	WeightedInterest float64 `json:"weightedInterest"`
	CreditorCount    int     `json:"creditorCount"`
}

// Portfolio sums the outstanding balances and contractual payments and
// computes the balance-weighted average interest rate.
func Portfolio(debts []core.DebtItem) PortfolioSummary {
	s := PortfolioSummary{CreditorCount: len(debts)}
	var weighted float64
	for _, d := range debts {
		s.TotalDebt += d.TotalAmount
		s.TotalMonthly += d.MonthlyPayment
		weighted += d.InterestRate * d.TotalAmount
	}
	if s.TotalDebt > 0 {
		s.WeightedInterest = weighted / s.TotalDebt
	}
	return s
}
