package annuity

import (
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		term      int
		want      float64
		tolerance float64
	}{
		{
			name:      "standard mortgage",
			principal: 300000,
			rate:      4.0,
			term:      300,
			want:      1583.51,
			tolerance: 0.01,
		},
		{
			name:      "zero rate is linear",
			principal: 12000,
			rate:      0,
			term:      120,
			want:      100,
			tolerance: 0,
		},
		{
			name:      "zero principal",
			principal: 0,
			rate:      5,
			term:      60,
			want:      0,
			tolerance: 0,
		},
		{
			name:      "zero term",
			principal: 1000,
			rate:      5,
			term:      0,
			want:      0,
			tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(tt.principal, tt.rate, tt.term)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MonthlyPayment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthlyPayment_TotalCoversPrincipal(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		term      int
	}{
		{100000, 3.5, 360},
		{5000, 14.0, 24},
		{300000, 4.0, 300},
		{750, 0.5, 12},
	}
	for _, c := range cases {
		payment := MonthlyPayment(c.principal, c.rate, c.term)
		total := payment * float64(c.term)
		if total < c.principal {
			t.Errorf("total paid %v < principal %v (rate=%v, term=%v)", total, c.principal, c.rate, c.term)
		}
	}

	// At zero rate the total equals the principal exactly.
	if total := MonthlyPayment(12000, 0, 120) * 120; math.Abs(total-12000) > 1e-9 {
		t.Errorf("zero-rate total = %v, want 12000", total)
	}
}

func TestTermWithExtra(t *testing.T) {
	t.Run("matches closed form", func(t *testing.T) {
		// 300k at 4% over 25 years, 250 extra per month.
		base := MonthlyPayment(300000, 4.0, 300)
		months, ok := TermWithExtra(300000, 4.0, base, 250)
		if !ok {
			t.Fatal("expected convergence")
		}
		if months >= 300 {
			t.Errorf("extra payment did not shorten term: %v months", months)
		}
		if months < 200 {
			t.Errorf("term suspiciously short: %v months", months)
		}
	})

	t.Run("does not converge when payment under interest", func(t *testing.T) {
		// Monthly interest on 100k at 12% is 1000; paying 900 never repays.
		if _, ok := TermWithExtra(100000, 12.0, 500, 400); ok {
			t.Error("expected non-convergence sentinel")
		}
	})

	t.Run("exact interest boundary does not converge", func(t *testing.T) {
		if _, ok := TermWithExtra(100000, 12.0, 1000, 0); ok {
			t.Error("payment equal to monthly interest must not converge")
		}
	})

	t.Run("zero rate amortizes linearly", func(t *testing.T) {
		months, ok := TermWithExtra(12000, 0, 100, 100)
		if !ok {
			t.Fatal("zero-rate loan always converges for positive payment")
		}
		if math.Abs(months-60) > 1e-9 {
			t.Errorf("months = %v, want 60", months)
		}
	})

	t.Run("zero payment never converges", func(t *testing.T) {
		if _, ok := TermWithExtra(1000, 0, 0, 0); ok {
			t.Error("expected non-convergence for zero payment")
		}
	})

	t.Run("never returns NaN", func(t *testing.T) {
		for _, extra := range []float64{-2000, 0, 1, 500, 1e9} {
			months, ok := TermWithExtra(100000, 8.0, 600, extra)
			if ok && (math.IsNaN(months) || math.IsInf(months, 0)) {
				t.Errorf("extra=%v produced non-finite term %v", extra, months)
			}
		}
	})
}

func TestTermWithExtra_Monotonic(t *testing.T) {
	base := MonthlyPayment(200000, 5.0, 360)
	prevTerm := math.Inf(1)
	prevTotal := math.Inf(1)
	for _, extra := range []float64{0, 50, 100, 250, 500, 1000, 2500} {
		months, ok := TermWithExtra(200000, 5.0, base, extra)
		if !ok {
			t.Fatalf("extra=%v should converge", extra)
		}
		if months > prevTerm {
			t.Errorf("term increased with larger extra payment: %v > %v", months, prevTerm)
		}
		total := (base + extra) * months
		if total > prevTotal {
			t.Errorf("total paid increased with larger extra payment: %v > %v", total, prevTotal)
		}
		prevTerm = months
		prevTotal = total
	}
}

func TestInterestSaved(t *testing.T) {
	if got := InterestSaved(500000, 450000); got != 50000 {
		t.Errorf("InterestSaved() = %v, want 50000", got)
	}
	if got := InterestSaved(400000, 450000); got != 0 {
		t.Errorf("InterestSaved() should floor at zero, got %v", got)
	}
}

func TestExtraRepayment(t *testing.T) {
	t.Run("saves interest and shortens term", func(t *testing.T) {
		out := ExtraRepayment(300000, 4.0, 300, 250)
		if !out.Converges {
			t.Fatal("expected convergence")
		}
		if out.Saving <= 0 {
			t.Errorf("expected positive saving, got %v", out.Saving)
		}
		if out.NewTerm >= 300 {
			t.Errorf("expected shortened term, got %v", out.NewTerm)
		}
	})

	t.Run("flags non-convergent scenario", func(t *testing.T) {
		// A large negative extra payment pushes the combined payment below
		// the monthly interest.
		out := ExtraRepayment(300000, 4.0, 300, -1500)
		if out.Converges {
			t.Error("expected non-convergent outcome")
		}
	})
}
