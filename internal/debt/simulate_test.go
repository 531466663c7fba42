package debt

import (
	"math"
	"testing"
	"time"

	"geldplan/internal/core"
)

func sampleDebts() []core.DebtItem {
	return []core.DebtItem{
		{ID: "1", Creditor: "Wehkamp Krediet", TotalAmount: 1850.50, InterestRate: 14.0, MonthlyPayment: 45},
		{ID: "2", Creditor: "CJIB", TotalAmount: 340.00, InterestRate: 0, MonthlyPayment: 50},
		{ID: "3", Creditor: "Dienst Toeslagen", TotalAmount: 850.00, InterestRate: 4.0, MonthlyPayment: 100},
		{ID: "4", Creditor: "ING Roodstand", TotalAmount: 1200.00, InterestRate: 12.5, MonthlyPayment: 50},
	}
}

var testToday = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func TestSimulate_SampleTerminates(t *testing.T) {
	result := Simulate(sampleDebts(), 500, testToday)

	if result.Outcome != OutcomePaidOff {
		t.Fatalf("outcome = %s, want paid_off", result.Outcome)
	}
	if result.PayoffMonth == PayoffUnreached || result.PayoffMonth >= horizonMonths {
		t.Fatalf("payoff month = %d, want strictly before the %d-month cap", result.PayoffMonth, horizonMonths)
	}
	if result.Shortfall {
		t.Error("budget of 500 covers minimums of 245, shortfall must not be flagged")
	}
	last := result.Points[len(result.Points)-1]
	if last.Balance != 0 {
		t.Errorf("final balance = %v, want 0", last.Balance)
	}
	if result.TotalInterest <= 0 {
		t.Errorf("expected accrued interest, got %v", result.TotalInterest)
	}
	want := testToday.AddDate(0, result.PayoffMonth, 0)
	if !result.EstimatedPayoffDate.Equal(want) {
		t.Errorf("payoff date = %v, want %v", result.EstimatedPayoffDate, want)
	}
}

// The 14% debt starts larger than the 12.5% one but has the highest rate,
// so the avalanche must clear it no later.
func TestSimulate_AvalanchePriority(t *testing.T) {
	result := Simulate(sampleDebts(), 500, testToday)
	if result.Outcome != OutcomePaidOff {
		t.Fatal("expected payoff")
	}

	// With 255/month extra the 14% debt (1850.50) must be gone before the
	// 12.5% debt (1200) receives any avalanche money. Verify via a
	// two-debt reduction of the same scenario.
	two := []core.DebtItem{
		{ID: "a", Creditor: "High", TotalAmount: 1850.50, InterestRate: 14.0, MonthlyPayment: 45},
		{ID: "b", Creditor: "Low", TotalAmount: 1200.00, InterestRate: 12.5, MonthlyPayment: 50},
	}
	rBoth := Simulate(two, 400, testToday)
	rHighOnly := Simulate(two[:1], 400-50, testToday) // low-rate debt gets only its minimum
	if rBoth.Outcome != OutcomePaidOff || rHighOnly.Outcome != OutcomePaidOff {
		t.Fatal("expected both scenarios to pay off")
	}
	// While the high-rate debt is open it absorbs the full surplus, so its
	// payoff in the pair matches the solo run where the low-rate debt's
	// minimum is carved out.
	if rHighOnly.PayoffMonth > rBoth.PayoffMonth {
		t.Errorf("high-rate debt held back: solo=%d, paired=%d", rHighOnly.PayoffMonth, rBoth.PayoffMonth)
	}
}

func TestSimulate_NonIncreasingUnderSufficientBudget(t *testing.T) {
	result := Simulate(sampleDebts(), 500, testToday)
	prev := math.Inf(1)
	for _, p := range result.Points {
		if p.Balance > prev {
			t.Fatalf("balance increased at month %d: %v > %v", p.Month, p.Balance, prev)
		}
		prev = p.Balance
	}
}

func TestSimulate_Shortfall(t *testing.T) {
	// Minimums total 245; a 100 budget cannot honor them.
	result := Simulate(sampleDebts(), 100, testToday)
	if !result.Shortfall {
		t.Error("expected shortfall flag when budget < sum of minimums")
	}
}

func TestSimulate_Runaway(t *testing.T) {
	debts := []core.DebtItem{
		{ID: "1", Creditor: "Loan Shark", TotalAmount: 10000, InterestRate: 60.0, MonthlyPayment: 100},
	}
	result := Simulate(debts, 100, testToday)
	if result.Outcome != OutcomeDiverged {
		t.Fatalf("outcome = %s, want diverged", result.Outcome)
	}
	if result.PayoffMonth != PayoffUnreached {
		t.Errorf("payoff month = %d, want sentinel %d", result.PayoffMonth, PayoffUnreached)
	}
	last := result.Points[len(result.Points)-1]
	if last.Balance <= 10000*runawayFactor {
		t.Errorf("runaway stop at balance %v, expected > %v", last.Balance, 10000*runawayFactor)
	}
}

func TestSimulate_BeyondHorizon(t *testing.T) {
	// Interest-free but far too slow: 100000 at 10/month needs 10000 months.
	debts := []core.DebtItem{
		{ID: "1", Creditor: "Slow", TotalAmount: 100000, InterestRate: 0, MonthlyPayment: 10},
	}
	result := Simulate(debts, 10, testToday)
	if result.Outcome != OutcomeBeyondHorizon {
		t.Fatalf("outcome = %s, want beyond_horizon", result.Outcome)
	}
	if result.PayoffMonth != PayoffUnreached {
		t.Errorf("payoff month = %d, want sentinel", result.PayoffMonth)
	}
	if len(result.Points) != horizonMonths {
		t.Errorf("recorded %d points, want %d", len(result.Points), horizonMonths)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	a := Simulate(sampleDebts(), 500, testToday)
	b := Simulate(sampleDebts(), 500, testToday)
	if a.PayoffMonth != b.PayoffMonth || a.TotalInterest != b.TotalInterest {
		t.Fatal("identical inputs produced different results")
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("trajectories diverge at index %d", i)
		}
	}
}

func TestSimulate_DoesNotMutateInput(t *testing.T) {
	debts := sampleDebts()
	Simulate(debts, 500, testToday)
	for i, want := range sampleDebts() {
		if debts[i] != want {
			t.Fatalf("input debt %d mutated: %+v", i, debts[i])
		}
	}
}

func TestSimulate_EmptyAndSettled(t *testing.T) {
	result := Simulate(nil, 500, testToday)
	if result.Outcome != OutcomePaidOff || result.PayoffMonth != 0 {
		t.Errorf("empty debt list should be paid off at month 0, got %s/%d", result.Outcome, result.PayoffMonth)
	}

	result = Simulate([]core.DebtItem{{ID: "1", Creditor: "Dust", TotalAmount: 0.005, InterestRate: 5, MonthlyPayment: 10}}, 50, testToday)
	if result.Outcome != OutcomePaidOff || result.PayoffMonth != 0 {
		t.Errorf("sub-epsilon balance should count as settled, got %s/%d", result.Outcome, result.PayoffMonth)
	}
}

func TestEstimateSettlement(t *testing.T) {
	tests := []struct {
		name           string
		totalDebt      float64
		monthlyBudget  float64
		horizon        int
		wantPot        float64
		wantPercentage float64
	}{
		{
			name:           "documented sample",
			totalDebt:      4240.50,
			monthlyBudget:  500,
			horizon:        36,
			wantPot:        18000,
			wantPercentage: 424.5254097865817,
		},
		{
			name:           "partial coverage",
			totalDebt:      36000,
			monthlyBudget:  500,
			horizon:        36,
			wantPot:        18000,
			wantPercentage: 50,
		},
		{
			name:          "zero debt yields zero scenario",
			totalDebt:     0,
			monthlyBudget: 500,
			horizon:       36,
		},
		{
			name:          "zero horizon yields zero scenario",
			totalDebt:     1000,
			monthlyBudget: 500,
			horizon:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateSettlement(tt.totalDebt, tt.monthlyBudget, tt.horizon)
			if got.Pot != tt.wantPot {
				t.Errorf("pot = %v, want %v", got.Pot, tt.wantPot)
			}
			if math.Abs(got.Percentage-tt.wantPercentage) > 0.01 {
				t.Errorf("percentage = %v, want %v", got.Percentage, tt.wantPercentage)
			}
		})
	}
}

func TestPortfolio(t *testing.T) {
	s := Portfolio(sampleDebts())
	if math.Abs(s.TotalDebt-4240.50) > 1e-9 {
		t.Errorf("total debt = %v, want 4240.50", s.TotalDebt)
	}
	if math.Abs(s.TotalMonthly-245) > 1e-9 {
		t.Errorf("total monthly = %v, want 245", s.TotalMonthly)
	}
	// (14*1850.50 + 0*340 + 4*850 + 12.5*1200) / 4240.50
	want := (14*1850.50 + 4*850 + 12.5*1200) / 4240.50
	if math.Abs(s.WeightedInterest-want) > 1e-9 {
		t.Errorf("weighted interest = %v, want %v", s.WeightedInterest, want)
	}
	if s.CreditorCount != 4 {
		t.Errorf("creditor count = %d, want 4", s.CreditorCount)
	}

	empty := Portfolio(nil)
	if empty.WeightedInterest != 0 || empty.TotalDebt != 0 {
		t.Error("empty portfolio should be all zeros")
	}
}
