// Package annuity implements closed-form fixed-rate loan mathematics:
// the standard annuity payment, the shortened term under an extra monthly
// payment, and the interest saved between two repayment plans.
package annuity

import "math"

// MonthlyPayment returns the fixed monthly payment that fully amortizes
// principal over termMonths at the given annual rate (in percent).
//
// The closed form P*(r*(1+r)^n)/((1+r)^n-1) is undefined at r=0, so a zero
// rate falls back to straight linear amortization.
func MonthlyPayment(principal, annualRatePct float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if annualRatePct == 0 {
		return principal / float64(termMonths)
	}
	r := annualRatePct / 100 / 12
	pow := math.Pow(1+r, float64(termMonths))
	return principal * (r * pow) / (pow - 1)
}

// TermWithExtra returns the number of months needed to repay principal when
// basePayment is raised by extraPayment each month, solving
// n = -ln(1 - r*P/M) / ln(1+r) for the combined payment M.
//
// ok is false when the combined payment does not even cover the monthly
// interest, in which case the loan never converges and months is
// meaningless. A zero rate amortizes linearly.
func TermWithExtra(principal, annualRatePct, basePayment, extraPayment float64) (months float64, ok bool) {
	payment := basePayment + extraPayment
	if principal <= 0 {
		return 0, true
	}
	if payment <= 0 {
		return 0, false
	}
	if annualRatePct == 0 {
		return principal / payment, true
	}
	r := annualRatePct / 100 / 12
	if payment <= principal*r {
		return 0, false
	}
	return -math.Log(1-r*principal/payment) / math.Log(1+r), true
}

// InterestSaved is the total saved by the revised plan, floored at zero.
func InterestSaved(originalTotal, revisedTotal float64) float64 {
	return math.Max(0, originalTotal-revisedTotal)
}

// ExtraOutcome describes the effect of an extra monthly repayment on an
// existing annuity loan.
type ExtraOutcome struct {
	BasePayment float64 `json:"basePayment"`
	NewTerm     float64 `json:"newTermMonths"`
	Saving      float64 `json:"saving"`
	Converges   bool    `json:"converges"`
}

// ExtraRepayment computes the combined effect of paying extraPayment on top
// of the regular annuity payment for a loan with termMonths remaining: the
// shortened term and the total amount saved versus the original schedule.
func ExtraRepayment(principal, annualRatePct float64, termMonths int, extraPayment float64) ExtraOutcome {
	base := MonthlyPayment(principal, annualRatePct, termMonths)
	originalTotal := base * float64(termMonths)

	newTerm, ok := TermWithExtra(principal, annualRatePct, base, extraPayment)
	if !ok {
		return ExtraOutcome{BasePayment: base, Converges: false}
	}
	revisedTotal := (base + extraPayment) * newTerm
	return ExtraOutcome{
		BasePayment: base,
		NewTerm:     newTerm,
		Saving:      InterestSaved(originalTotal, revisedTotal),
		Converges:   true,
	}
}
