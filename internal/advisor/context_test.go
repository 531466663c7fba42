package advisor

import (
	"strings"
	"testing"
	"time"

	"geldplan/internal/core"
	"geldplan/internal/debt"
)

func day(d int) *int { return &d }

func TestBudgetContextDeterministic(t *testing.T) {
	groups := []core.BudgetGroup{
		{ID: "inc-1", Name: "Inkomen", Type: core.Income, Items: []core.SubItem{
			{ID: "a", Name: "Salaris", Amount: 3200, PaymentDay: day(24)},
		}},
		{ID: "exp-1", Name: "Wonen", Type: core.Expense, Items: []core.SubItem{
			{ID: "b", Name: "Huur", Amount: 1100, PaymentDay: day(1)},
			{ID: "c", Name: "Energie", Amount: 150},
		}},
	}

	first := BudgetContext("2024-03", groups)
	second := BudgetContext("2024-03", groups)
	if first != second {
		t.Error("same input must render the same context")
	}
	for _, want := range []string{"2024-03", "Salaris", "dag 24", "Huur", "netto 1950.00"} {
		if !strings.Contains(first, want) {
			t.Errorf("context missing %q:\n%s", want, first)
		}
	}
	if strings.Contains(first, "dag 0") {
		t.Error("items without a payment day must not render one")
	}
}

func TestDebtContext(t *testing.T) {
	debts := []core.DebtItem{
		{ID: "1", Creditor: "Creditcard", TotalAmount: 1850.50, InterestRate: 14, MonthlyPayment: 45},
		{ID: "2", Creditor: "Webshop", TotalAmount: 340, InterestRate: 0, MonthlyPayment: 50},
	}
	got := DebtContext(debts)
	for _, want := range []string{"Creditcard", "14.00%", "Webshop", "2 schuldeisers"} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q:\n%s", want, got)
		}
	}
}

func TestRepaymentContextOutcomes(t *testing.T) {
	base := debt.SimulationResult{
		PayoffMonth:         18,
		Outcome:             debt.OutcomePaidOff,
		TotalInterest:       123.45,
		EstimatedPayoffDate: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
	}
	got := RepaymentContext(400, base)
	for _, want := range []string{"18 maanden", "2025-09", "123.45"} {
		if !strings.Contains(got, want) {
			t.Errorf("paid-off context missing %q:\n%s", want, got)
		}
	}

	diverged := debt.SimulationResult{Outcome: debt.OutcomeDiverged, PayoffMonth: debt.PayoffUnreached, Shortfall: true}
	got = RepaymentContext(100, diverged)
	if !strings.Contains(got, "groeit") || !strings.Contains(got, "minimumbetalingen") {
		t.Errorf("diverged context incomplete:\n%s", got)
	}
}
