// Package debt projects multi-debt payoff trajectories under a fixed
// monthly budget and estimates fixed-horizon settlement offers.
package debt

import (
	"sort"
	"time"

	"geldplan/internal/core"
)

const (
	// horizonMonths caps the projection; payoffs past it report
	// OutcomeBeyondHorizon instead of looping on.
	horizonMonths = 360

	// settledEpsilon treats floating residue below a cent as paid off.
	settledEpsilon = 0.01

	// runawayFactor stops the projection once the aggregate balance grows
	// past this multiple of the starting balance.
	runawayFactor = 2.0
)

// PayoffUnreached is the PayoffMonth sentinel when the projection ended
// without the balance reaching zero.
const PayoffUnreached = -1

// Outcome classifies how a simulation ended.
type Outcome string

const (
	OutcomePaidOff       Outcome = "paid_off"
	OutcomeBeyondHorizon Outcome = "beyond_horizon"
	OutcomeDiverged      Outcome = "diverged"
)

// TrajectoryPoint is the aggregate balance at the end of a simulated month.
type TrajectoryPoint struct {
	Month   int     `json:"month"`
	Balance float64 `json:"balance"`
}

// SimulationResult is the complete payoff projection. It is produced fresh
// on every Simulate call and never mutated afterward.
type SimulationResult struct {
	Points              []TrajectoryPoint `json:"points"`
	PayoffMonth         int               `json:"payoffMonth"`
	Outcome             Outcome           `json:"outcome"`
	TotalInterest       float64           `json:"totalInterest"`
	EstimatedPayoffDate time.Time         `json:"estimatedPayoffDate"`
	// Shortfall is set when the monthly budget cannot cover the sum of
	// contractual minimums, so later debts in list order go unpaid.
	Shortfall bool `json:"shortfall"`
}

// Simulate runs the month-by-month payoff projection for debts under a
// fixed monthly budget. Each month interest accrues on every balance,
// contractual minimums are paid in list order while budget remains, and
// whatever is left goes to the highest-rate open debt first (avalanche,
// stable on ties). The input slice is never mutated.
//
// today only converts the payoff month into a calendar date; the
// trajectory itself is fully determined by (debts, monthlyBudget).
func Simulate(debts []core.DebtItem, monthlyBudget float64, today time.Time) SimulationResult {
	balances := make([]float64, len(debts))
	var initial float64
	for i, d := range debts {
		balances[i] = d.TotalAmount
		initial += d.TotalAmount
	}

	var minimums float64
	for _, d := range debts {
		minimums += d.MonthlyPayment
	}

	result := SimulationResult{
		PayoffMonth: PayoffUnreached,
		Outcome:     OutcomeBeyondHorizon,
		Shortfall:   monthlyBudget < minimums,
	}

	if initial <= settledEpsilon {
		result.PayoffMonth = 0
		result.Outcome = OutcomePaidOff
		result.EstimatedPayoffDate = today
		result.Points = []TrajectoryPoint{{Month: 0, Balance: 0}}
		return result
	}

	// Avalanche order: descending interest rate, list order on ties.
	order := make([]int, len(debts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return debts[order[a]].InterestRate > debts[order[b]].InterestRate
	})

	for month := 1; month <= horizonMonths; month++ {
		// 1. Accrue interest.
		for i, d := range debts {
			if balances[i] <= 0 {
				continue
			}
			interest := balances[i] * (d.InterestRate / 100) / 12
			balances[i] += interest
			result.TotalInterest += interest
		}

		remaining := monthlyBudget

		// 2. Contractual minimums in list order; once the budget runs out,
		// later debts in this pass receive nothing.
		for i, d := range debts {
			if remaining <= 0 {
				break
			}
			pay := min3(balances[i], d.MonthlyPayment, remaining)
			if pay <= 0 {
				continue
			}
			balances[i] -= pay
			remaining -= pay
		}

		// 3. Avalanche: spend what remains on the highest-rate open debts.
		for _, i := range order {
			if remaining <= 0 {
				break
			}
			if balances[i] <= 0 {
				continue
			}
			pay := balances[i]
			if pay > remaining {
				pay = remaining
			}
			balances[i] -= pay
			remaining -= pay
		}

		// 4. Settle residue and recompute the aggregate.
		var aggregate float64
		for i := range balances {
			if balances[i] < settledEpsilon {
				balances[i] = 0
			}
			aggregate += balances[i]
		}

		result.Points = append(result.Points, TrajectoryPoint{Month: month, Balance: aggregate})

		if aggregate <= 0 {
			result.PayoffMonth = month
			result.Outcome = OutcomePaidOff
			result.EstimatedPayoffDate = today.AddDate(0, month, 0)
			return result
		}
		if aggregate > initial*runawayFactor {
			result.Outcome = OutcomeDiverged
			return result
		}
	}

	return result
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
