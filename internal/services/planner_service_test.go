package services

import (
	"context"
	"testing"
	"time"

	"geldplan/internal/core"
	"geldplan/internal/debt"
	"geldplan/internal/kv/memory"
)

func intPtr(d int) *int { return &d }

func TestOutlook(t *testing.T) {
	ctx := context.Background()
	datasets := NewDatasetService(ctx, memory.New(), nil)
	planner := NewPlannerService(datasets)

	groups := []core.BudgetGroup{
		{ID: "inc-1", Name: "Inkomen", Type: core.Income, Items: []core.SubItem{
			{ID: "a", Name: "Salaris", Amount: 2800, PaymentDay: intPtr(24)},
		}},
		{ID: "exp-1", Name: "Wonen", Type: core.Expense, Items: []core.SubItem{
			{ID: "b", Name: "Huur", Amount: 1100, PaymentDay: intPtr(1)},
			{ID: "c", Name: "Boodschappen", Amount: 500},
		}},
	}
	if err := datasets.CommitBudget(ctx, "2024-03", groups); err != nil {
		t.Fatalf("CommitBudget() error = %v", err)
	}

	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	out, err := planner.Outlook(ctx, "2024-03", today)
	if err != nil {
		t.Fatalf("Outlook() error = %v", err)
	}

	if !out.HasOverride {
		t.Error("outlook should report the committed override")
	}
	if out.Summary.Income != 2800 || out.Summary.Expenses != 1600 {
		t.Errorf("summary = %+v, want income 2800 expenses 1600", out.Summary)
	}
	if out.FreeBudget != 1200 {
		t.Errorf("free budget = %v, want 1200", out.FreeBudget)
	}

	// Seed portfolio totals 4240.50; a 1200 budget clears it comfortably.
	if out.Portfolio.TotalDebt != 4240.50 {
		t.Errorf("portfolio total = %v, want 4240.50", out.Portfolio.TotalDebt)
	}
	if out.Repayment.Outcome != debt.OutcomePaidOff {
		t.Errorf("repayment outcome = %v, want paid off", out.Repayment.Outcome)
	}
	if out.Settlement.Pot != 1200*debt.DefaultSettlementHorizon {
		t.Errorf("settlement pot = %v", out.Settlement.Pot)
	}

	// Huur on day 1 wrapped past the 15th loses to nothing else with a
	// payment day among the expenses.
	if out.Upcoming == nil || out.Upcoming.Name != "Huur" {
		t.Errorf("upcoming = %+v, want Huur", out.Upcoming)
	}
	if out.Upcoming != nil && out.Upcoming.DaysLeft != 16 {
		t.Errorf("days left = %d, want 16", out.Upcoming.DaysLeft)
	}
}

func TestOutlookNegativeNetFloorsBudget(t *testing.T) {
	ctx := context.Background()
	datasets := NewDatasetService(ctx, memory.New(), nil)
	planner := NewPlannerService(datasets)

	groups := []core.BudgetGroup{
		{ID: "exp-1", Name: "Wonen", Type: core.Expense, Items: []core.SubItem{
			{ID: "b", Name: "Huur", Amount: 1100},
		}},
	}
	if err := datasets.CommitBudget(ctx, "2024-03", groups); err != nil {
		t.Fatalf("CommitBudget() error = %v", err)
	}

	out, err := planner.Outlook(ctx, "2024-03", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Outlook() error = %v", err)
	}
	if out.FreeBudget != 0 {
		t.Errorf("free budget = %v, want 0", out.FreeBudget)
	}
	if out.Repayment.Outcome == debt.OutcomePaidOff {
		t.Error("no budget cannot pay off the seed portfolio")
	}
}

func TestOutlookInvalidPeriod(t *testing.T) {
	ctx := context.Background()
	planner := NewPlannerService(NewDatasetService(ctx, memory.New(), nil))

	if _, err := planner.Outlook(ctx, "march", time.Now()); err == nil {
		t.Error("invalid period must be rejected")
	}
}
