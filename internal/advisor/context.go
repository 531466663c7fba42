package advisor

import (
	"fmt"
	"strings"

	"geldplan/internal/budget"
	"geldplan/internal/core"
	"geldplan/internal/debt"
)

// Context builders produce the financial snapshot that is sent alongside a
// question. Output is deterministic for a given input so responses can be
// cached on the context text itself.

// BudgetContext renders the resolved month plan as prompt context.
func BudgetContext(period string, groups []core.BudgetGroup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Maandbudget voor %s:\n", period)
	for _, g := range groups {
		fmt.Fprintf(&b, "- %s (%s): totaal %.2f\n", g.Name, g.Type, g.Total())
		for _, it := range g.Items {
			fmt.Fprintf(&b, "  - %s: %.2f", it.Name, it.Amount)
			if it.PaymentDay != nil {
				fmt.Fprintf(&b, " (dag %d)", *it.PaymentDay)
			}
			b.WriteString("\n")
		}
	}
	s := budget.Totals(groups)
	fmt.Fprintf(&b, "Inkomsten %.2f, uitgaven %.2f, netto %.2f per maand.\n", s.Income, s.Expenses, s.Net)
	return b.String()
}

// DebtContext renders the debt portfolio as prompt context.
func DebtContext(debts []core.DebtItem) string {
	var b strings.Builder
	b.WriteString("Openstaande schulden:\n")
	for _, d := range debts {
		fmt.Fprintf(&b, "- %s: %.2f tegen %.2f%% rente, minimaal %.2f per maand\n",
			d.Creditor, d.TotalAmount, d.InterestRate, d.MonthlyPayment)
	}
	p := debt.Portfolio(debts)
	fmt.Fprintf(&b, "Totaal %.2f verdeeld over %d schuldeisers, gewogen rente %.2f%%.\n",
		p.TotalDebt, p.CreditorCount, p.WeightedInterest)
	return b.String()
}

// RepaymentContext renders a simulation outcome as prompt context.
func RepaymentContext(monthlyBudget float64, r debt.SimulationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Aflosplan met %.2f per maand:\n", monthlyBudget)
	switch r.Outcome {
	case debt.OutcomePaidOff:
		fmt.Fprintf(&b, "- schuldenvrij na %d maanden (%s)\n", r.PayoffMonth, r.EstimatedPayoffDate.Format("2006-01"))
	case debt.OutcomeBeyondHorizon:
		b.WriteString("- niet afgelost binnen de simulatiehorizon\n")
	case debt.OutcomeDiverged:
		b.WriteString("- het budget dekt de rente niet, de schuld groeit\n")
	}
	fmt.Fprintf(&b, "- totaal betaalde rente: %.2f\n", r.TotalInterest)
	if r.Shortfall {
		b.WriteString("- let op: het budget dekte niet elke maand alle minimumbetalingen\n")
	}
	return b.String()
}
