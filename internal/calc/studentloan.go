package calc

import (
	"math"

	"geldplan/internal/annuity"
)

// RepaymentScheme selects the student-loan repayment regime.
type RepaymentScheme string

const (
	SchemeSF35 RepaymentScheme = "sf35" // 35 years, 4% ability-to-pay
	SchemeSF15 RepaymentScheme = "sf15" // 15 years, 12% ability-to-pay
)

// Simplified DUO ability-to-pay baseline.
const (
	abilityIncomeFloor   = 28000
	partnerFloorFactor   = 1.43
	sf35AbilityShare     = 0.04
	sf15AbilityShare     = 0.12
	sf35TermMonths       = 420
	sf15TermMonths       = 180
)

// StudentLoanInput describes an outstanding study debt and the household
// income the repayment is tested against.
type StudentLoanInput struct {
	Debt          float64         `json:"debt"`
	AnnualRatePct float64         `json:"annualRatePct"`
	Scheme        RepaymentScheme `json:"scheme"`
	Income        float64         `json:"income"`
	PartnerIncome float64         `json:"partnerIncome"`
}

// StudentLoanResult is the projected repayment picture.
type StudentLoanResult struct {
	TermMonths     int     `json:"termMonths"`
	StatutoryPay   float64 `json:"statutoryPay"`   // full annuity payment
	AbilityPay     float64 `json:"abilityPay"`     // income-tested ceiling
	ActualPay      float64 `json:"actualPay"`      // min of the two
	TotalInterest  float64 `json:"totalInterest"`  // rough full-term projection
}

// StudentLoan computes the statutory annuity payment over the scheme's
// term, the income-tested ability to pay, and the resulting monthly amount.
// Total interest is the rough projection of paying that amount for the full
// term; any remainder is forgiven at the end of the term, so it is an
// upper-bound estimate, not a schedule.
func StudentLoan(in StudentLoanInput) StudentLoanResult {
	term := sf35TermMonths
	share := sf35AbilityShare
	if in.Scheme == SchemeSF15 {
		term = sf15TermMonths
		share = sf15AbilityShare
	}

	statutory := annuity.MonthlyPayment(in.Debt, in.AnnualRatePct, term)

	floor := float64(abilityIncomeFloor)
	if in.PartnerIncome > 0 {
		floor *= partnerFloorFactor
	}
	surplus := math.Max(0, in.Income+in.PartnerIncome-floor)
	ability := surplus * share / 12

	actual := math.Min(statutory, ability)
	totalPaid := actual * float64(term)

	return StudentLoanResult{
		TermMonths:    term,
		StatutoryPay:  statutory,
		AbilityPay:    ability,
		ActualPay:     actual,
		TotalInterest: math.Max(0, totalPaid-in.Debt),
	}
}
