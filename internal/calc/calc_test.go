package calc

import (
	"math"
	"testing"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestSelfEmployedTax(t *testing.T) {
	t.Run("below hours floor gets no deductions", func(t *testing.T) {
		r := SelfEmployedTax(SelfEmployedInput{HourlyRate: 75, HoursPerYear: 1200, Costs: 5000, StarterBreak: true})
		approx(t, "revenue", r.Revenue, 90000, 1e-9)
		approx(t, "gross profit", r.GrossProfit, 85000, 1e-9)
		if r.EntrepreneurDed != 0 || r.StarterDed != 0 {
			t.Errorf("deductions below 1225 hours must be zero, got %v/%v", r.EntrepreneurDed, r.StarterDed)
		}
		approx(t, "mkb exemption", r.MKBExemption, 85000*0.1331, 0.01)
	})

	t.Run("above hours floor applies both deductions", func(t *testing.T) {
		r := SelfEmployedTax(SelfEmployedInput{HourlyRate: 75, HoursPerYear: 1300, Costs: 5000, StarterBreak: true})
		if r.EntrepreneurDed != 3750 {
			t.Errorf("entrepreneur deduction = %v, want 3750", r.EntrepreneurDed)
		}
		if r.StarterDed != 2123 {
			t.Errorf("starter deduction = %v, want 2123", r.StarterDed)
		}
	})

	t.Run("second bracket engages above the limit", func(t *testing.T) {
		r := SelfEmployedTax(SelfEmployedInput{HourlyRate: 150, HoursPerYear: 1500, Costs: 0})
		if r.TaxableProfit <= box1Bracket1Limit {
			t.Fatalf("test input should exceed the first bracket, taxable = %v", r.TaxableProfit)
		}
		wantTax := box1Bracket1Limit*box1Rate1 + (r.TaxableProfit-box1Bracket1Limit)*box1Rate2
		// Credits taper to zero at this income level.
		approx(t, "income tax", r.IncomeTax, wantTax, 0.01)
	})

	t.Run("loss year pays no tax", func(t *testing.T) {
		r := SelfEmployedTax(SelfEmployedInput{HourlyRate: 10, HoursPerYear: 100, Costs: 5000})
		if r.IncomeTax != 0 {
			t.Errorf("income tax on a loss = %v, want 0", r.IncomeTax)
		}
		if r.NetIncome >= 0 {
			t.Errorf("net income should reflect the loss, got %v", r.NetIncome)
		}
	})

	t.Run("zvw is capped", func(t *testing.T) {
		r := SelfEmployedTax(SelfEmployedInput{HourlyRate: 200, HoursPerYear: 2000, Costs: 0})
		approx(t, "zvw", r.HealthInsurance, zvwIncomeCap*zvwRate, 0.01)
	})

	t.Run("monthly is a twelfth", func(t *testing.T) {
		r := SelfEmployedTax(SelfEmployedInput{HourlyRate: 75, HoursPerYear: 1200, Costs: 5000})
		approx(t, "monthly net", r.NetIncomeMonthly, r.NetIncome/12, 1e-9)
	})
}

func TestStudentLoan(t *testing.T) {
	t.Run("sf35 term and ability share", func(t *testing.T) {
		r := StudentLoan(StudentLoanInput{Debt: 25000, AnnualRatePct: 2.56, Scheme: SchemeSF35, Income: 35000})
		if r.TermMonths != 420 {
			t.Errorf("term = %d, want 420", r.TermMonths)
		}
		// (35000 - 28000) * 4% / 12
		approx(t, "ability pay", r.AbilityPay, 7000*0.04/12, 1e-9)
		if r.ActualPay > r.StatutoryPay || r.ActualPay > r.AbilityPay {
			t.Errorf("actual pay %v must be the minimum of %v and %v", r.ActualPay, r.StatutoryPay, r.AbilityPay)
		}
	})

	t.Run("sf15 uses 12 percent over 180 months", func(t *testing.T) {
		r := StudentLoan(StudentLoanInput{Debt: 25000, AnnualRatePct: 2.56, Scheme: SchemeSF15, Income: 35000})
		if r.TermMonths != 180 {
			t.Errorf("term = %d, want 180", r.TermMonths)
		}
		approx(t, "ability pay", r.AbilityPay, 7000*0.12/12, 1e-9)
	})

	t.Run("partner raises the income floor", func(t *testing.T) {
		single := StudentLoan(StudentLoanInput{Debt: 25000, AnnualRatePct: 2.56, Scheme: SchemeSF35, Income: 40000})
		partnered := StudentLoan(StudentLoanInput{Debt: 25000, AnnualRatePct: 2.56, Scheme: SchemeSF35, Income: 40000, PartnerIncome: 1})
		if partnered.AbilityPay >= single.AbilityPay {
			t.Errorf("partner floor should lower ability pay: %v >= %v", partnered.AbilityPay, single.AbilityPay)
		}
	})

	t.Run("zero rate amortizes linearly", func(t *testing.T) {
		r := StudentLoan(StudentLoanInput{Debt: 42000, AnnualRatePct: 0, Scheme: SchemeSF35, Income: 100000})
		approx(t, "statutory pay", r.StatutoryPay, 42000.0/420, 1e-9)
	})

	t.Run("income below floor pays nothing", func(t *testing.T) {
		r := StudentLoan(StudentLoanInput{Debt: 25000, AnnualRatePct: 2.56, Scheme: SchemeSF35, Income: 20000})
		if r.ActualPay != 0 {
			t.Errorf("actual pay = %v, want 0", r.ActualPay)
		}
		if r.TotalInterest != 0 {
			t.Errorf("total interest = %v, want 0", r.TotalInterest)
		}
	})
}

func TestCompoundGrowth(t *testing.T) {
	r := CompoundGrowth(10000, 500, 20, 7)

	if len(r.Points) != 21 {
		t.Fatalf("points = %d, want 21 (year 0 through 20)", len(r.Points))
	}
	if r.Points[0].Value != 10000 {
		t.Errorf("year 0 value = %v, want 10000", r.Points[0].Value)
	}
	approx(t, "total invested", r.TotalInvested, 10000+500*12*20, 1e-6)
	if r.FinalValue <= r.TotalInvested {
		t.Errorf("positive return should beat contributions: %v <= %v", r.FinalValue, r.TotalInvested)
	}

	t.Run("zero return equals contributions", func(t *testing.T) {
		r := CompoundGrowth(1000, 100, 5, 0)
		approx(t, "final value", r.FinalValue, 1000+100*60, 1e-6)
	})
}

func TestCompareGrowth(t *testing.T) {
	r := CompareGrowth(5000, 250, 15, 2.0, 7.0)
	if r.FinalInvest <= r.FinalSavings {
		t.Errorf("higher rate should win: invest %v <= savings %v", r.FinalInvest, r.FinalSavings)
	}
	approx(t, "difference", r.Difference, r.FinalInvest-r.FinalSavings, 1e-9)
	approx(t, "paid in", r.TotalPaidIn, 5000+250*12*15, 1e-6)
	if len(r.Points) != 16 {
		t.Errorf("points = %d, want 16", len(r.Points))
	}

	t.Run("equal rates are identical", func(t *testing.T) {
		r := CompareGrowth(5000, 250, 10, 4.0, 4.0)
		if r.Difference != 0 {
			t.Errorf("difference = %v, want 0", r.Difference)
		}
	})
}

func TestPensionGap(t *testing.T) {
	in := PensionInput{
		CurrentAge:           35,
		RetirementAge:        68,
		CurrentCapital:       20000,
		MonthlyDeposit:       200,
		DesiredIncome:        3000,
		ExpectedStatePension: 1400,
	}
	r := PensionGap(in)

	years := 33.0
	growth := math.Pow(1.05, years)
	wantFV := 20000*growth + 200*12*((growth-1)/0.05)
	approx(t, "final capital", r.FinalCapital, wantFV, 0.01)

	wantRequired := 1600 * 12 * (1 - math.Pow(1.03, -20)) / 0.03
	approx(t, "required capital", r.RequiredCapital, wantRequired, 0.01)

	t.Run("state pension covering income leaves no gap", func(t *testing.T) {
		in := in
		in.ExpectedStatePension = 3500
		r := PensionGap(in)
		if r.RequiredCapital != 0 || r.Gap != 0 {
			t.Errorf("expected zero requirement, got %v/%v", r.RequiredCapital, r.Gap)
		}
	})

	t.Run("retirement in the past clamps to zero years", func(t *testing.T) {
		in := in
		in.CurrentAge = 70
		in.RetirementAge = 68
		r := PensionGap(in)
		approx(t, "final capital", r.FinalCapital, 20000, 0.01)
	})
}

func TestSplitCosts(t *testing.T) {
	r := SplitCosts(3000, 2500, 2000)
	approx(t, "ratio A", r.RatioA, 3000.0/5500*100, 1e-9)
	approx(t, "share A", r.ShareA, 3000.0/5500*2000, 1e-9)
	approx(t, "shares sum", r.ShareA+r.ShareB, 2000, 1e-9)

	if r := SplitCosts(0, 0, 2000); r.ShareA != 0 || r.ShareB != 0 {
		t.Error("no income should split nothing")
	}
}

func TestHoliday(t *testing.T) {
	r := Holiday(2, 14, 800, 1500, 75)
	approx(t, "spending", r.SpendingMoney, 2*14*75, 1e-9)
	approx(t, "total", r.TotalCost, 800+1500+2100, 1e-9)
	approx(t, "per person", r.PerPerson, r.TotalCost/2, 1e-9)

	t.Run("zero persons does not divide by zero", func(t *testing.T) {
		r := Holiday(0, 7, 100, 200, 50)
		approx(t, "per person", r.PerPerson, r.TotalCost, 1e-9)
	})
}

func TestMinimumBuffer(t *testing.T) {
	tests := []struct {
		name string
		in   BufferInput
		want BufferResult
	}{
		{
			name: "single with home and cheap car",
			in:   BufferInput{HasHome: true, HomeValue: 350000, HasCar: true, CarValue: 8000},
			want: BufferResult{Inventory: 1000, Home: 1750, Car: 1000, Unforeseen: 1000, Total: 4750},
		},
		{
			name: "couple with children and expensive car",
			in:   BufferInput{Couple: true, Children: 2, HasHome: true, HomeValue: 350000, HasCar: true, CarValue: 15000},
			want: BufferResult{Inventory: 2000, Home: 1750, Car: 1500, Unforeseen: 1000, Total: 6250},
		},
		{
			name: "renter without car",
			in:   BufferInput{},
			want: BufferResult{Inventory: 1000, Unforeseen: 1000, Total: 2000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinimumBuffer(tt.in); got != tt.want {
				t.Errorf("MinimumBuffer() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
