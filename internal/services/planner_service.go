package services

import (
	"context"
	"fmt"
	"time"

	"geldplan/internal/budget"
	"geldplan/internal/core"
	"geldplan/internal/debt"
)

// PlannerService derives the combined month outlook from the stored
// datasets.
type PlannerService struct {
	datasets *DatasetService
}

func NewPlannerService(datasets *DatasetService) *PlannerService {
	return &PlannerService{datasets: datasets}
}

// MonthOutlook is the dashboard view for one period: budget totals, the
// next payment due, and the repayment picture the free budget supports.
type MonthOutlook struct {
	Period      string           `json:"period"`
	HasOverride bool             `json:"hasOverride"`
	Summary     budget.Summary   `json:"summary"`
	SavingsRate float64          `json:"savingsRate"`
	Upcoming    *budget.Upcoming `json:"upcoming,omitempty"`

	Portfolio  debt.PortfolioSummary `json:"portfolio"`
	FreeBudget float64               `json:"freeBudget"`
	Repayment  debt.SimulationResult `json:"repayment"`
	Settlement debt.Settlement       `json:"settlement"`
}

// Outlook assembles the month outlook for period as of today. The free
// repayment budget is the month's net result, floored at zero.
func (s *PlannerService) Outlook(ctx context.Context, period string, today time.Time) (MonthOutlook, error) {
	groups, err := s.datasets.ResolveBudget(period)
	if err != nil {
		return MonthOutlook{}, fmt.Errorf("resolve budget: %w", err)
	}
	debts, err := s.datasets.Debts(ctx)
	if err != nil {
		return MonthOutlook{}, fmt.Errorf("load debts: %w", err)
	}

	summary := budget.Totals(groups)
	free := summary.Net
	if free < 0 {
		free = 0
	}

	out := MonthOutlook{
		Period:      period,
		HasOverride: s.datasets.HasOverride(period),
		Summary:     summary,
		SavingsRate: budget.SavingsRate(summary),
		Portfolio:   debt.Portfolio(debts),
		FreeBudget:  free,
		Repayment:   debt.Simulate(debts, free, today),
	}
	out.Settlement = debt.EstimateSettlement(out.Portfolio.TotalDebt, free, debt.DefaultSettlementHorizon)

	if up, ok := budget.NextUpcomingPayment(budget.ExpenseItems(groups), today); ok {
		out.Upcoming = &up
	}
	return out, nil
}

// Groups exposes the resolved groups for period, for handlers that need
// the raw hierarchy next to the outlook.
func (s *PlannerService) Groups(period string) ([]core.BudgetGroup, error) {
	return s.datasets.ResolveBudget(period)
}
