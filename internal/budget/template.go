package budget

import "geldplan/internal/core"

func day(d int) *int { return &d }

// DefaultTemplate is the starter budget used when no stored state exists.
func DefaultTemplate() []core.BudgetGroup {
	return []core.BudgetGroup{
		{
			ID:   "inc-1",
			Name: "Inkomen",
			Type: core.Income,
			Items: []core.SubItem{
				{ID: "1", Name: "Salaris", Amount: 3200, PaymentDay: day(24)},
				{ID: "2", Name: "Zorgtoeslag", Amount: 120, PaymentDay: day(20)},
			},
		},
		{
			ID:   "exp-1",
			Name: "Wonen",
			Type: core.Expense,
			Items: []core.SubItem{
				{ID: "3", Name: "Huur/Hypotheek", Amount: 1100, PaymentDay: day(1)},
				{ID: "4", Name: "Energie & Water", Amount: 150, PaymentDay: day(15)},
				{ID: "5", Name: "Internet & TV", Amount: 60, PaymentDay: day(28)},
			},
		},
		{
			ID:   "exp-2",
			Name: "Boodschappen",
			Type: core.Expense,
			Items: []core.SubItem{
				{ID: "6", Name: "Supermarkt", Amount: 400},
				{ID: "7", Name: "Drogist", Amount: 50},
			},
		},
	}
}
