package budget

import (
	"time"

	"geldplan/internal/core"
)

// paymentCycleDays is the fixed wrap used when a payment day has already
// passed this month. The original tool wraps on a flat 30 days rather than
// the true month length, so "days until next payment" can be off by up to a
// day around short and long months; kept as-is to preserve reported values.
const paymentCycleDays = 30

// Summary holds the income/expense totals for a resolved group hierarchy.
type Summary struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// Totals partitions groups by type and sums every item in each partition.
func Totals(groups []core.BudgetGroup) Summary {
	var s Summary
	for _, g := range groups {
		switch g.Type {
		case core.Income:
			s.Income += g.Total()
		case core.Expense:
			s.Expenses += g.Total()
		}
	}
	s.Net = s.Income - s.Expenses
	return s
}

// SavingsRate is the share of income left after expenses, in percent.
// Zero when there is no income or nothing left.
func SavingsRate(s Summary) float64 {
	if s.Income <= 0 {
		return 0
	}
	potential := s.Net
	if potential < 0 {
		potential = 0
	}
	return potential / s.Income * 100
}

// ExpenseItems flattens the items of all expense groups, in group order.
func ExpenseItems(groups []core.BudgetGroup) []core.SubItem {
	var items []core.SubItem
	for _, g := range groups {
		if g.Type == core.Expense {
			items = append(items, g.Items...)
		}
	}
	return items
}

// Upcoming is the next item expected to clear.
type Upcoming struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	DaysLeft int     `json:"daysLeft"`
}

// NextUpcomingPayment scans items with a payment day and returns the one
// closest to today, wrapping past days into the next cycle. Ties go to the
// first item encountered.
func NextUpcomingPayment(items []core.SubItem, today time.Time) (Upcoming, bool) {
	currentDay := today.Day()
	best := Upcoming{}
	bestDelta := -1

	for _, item := range items {
		if item.PaymentDay == nil {
			continue
		}
		delta := *item.PaymentDay - currentDay
		if delta < 0 {
			delta += paymentCycleDays
		}
		if bestDelta == -1 || delta < bestDelta {
			bestDelta = delta
			best = Upcoming{Name: item.Name, Amount: item.Amount, DaysLeft: delta}
		}
	}

	return best, bestDelta >= 0
}
