// Package calc collects the standalone planning calculators: self-employed
// income tax, student-loan repayment, compound growth, pension gap, shared
// cost splitting, holiday budgeting and the minimum-buffer estimate. All
// functions are pure and total over validated, non-negative inputs.
package calc

import "math"

// Dutch 2024 self-employment tax model, simplified the way the original
// calculator approximates it.
const (
	selfEmployedDeduction = 3750
	starterDeduction      = 2123
	deductionHoursFloor   = 1225
	mkbExemptionRate      = 0.1331
	box1Bracket1Limit     = 75518
	box1Rate1             = 0.3697
	box1Rate2             = 0.4950
	generalCreditBase     = 3362
	generalCreditTaper    = 0.06
	labourCreditBase      = 5532
	labourCreditTaper     = 0.03
	zvwRate               = 0.0532
	zvwIncomeCap          = 71628
)

// SelfEmployedInput describes a freelancer's year.
type SelfEmployedInput struct {
	HourlyRate   float64 `json:"hourlyRate"`
	HoursPerYear float64 `json:"hoursPerYear"`
	Costs        float64 `json:"costs"`
	StarterBreak bool    `json:"starterBreak"`
}

// SelfEmployedResult is the simplified annual tax picture.
type SelfEmployedResult struct {
	Revenue          float64 `json:"revenue"`
	GrossProfit      float64 `json:"grossProfit"`
	EntrepreneurDed  float64 `json:"entrepreneurDeduction"`
	StarterDed       float64 `json:"starterDeduction"`
	MKBExemption     float64 `json:"mkbExemption"`
	TaxableProfit    float64 `json:"taxableProfit"`
	IncomeTax        float64 `json:"incomeTax"`
	HealthInsurance  float64 `json:"healthInsurance"`
	NetIncome        float64 `json:"netIncome"`
	NetIncomeMonthly float64 `json:"netIncomeMonthly"`
}

// SelfEmployedTax estimates the annual income tax and net income for a
// Dutch freelancer under the simplified 2024 rules: entrepreneur and
// starter deductions above the hours floor, the MKB profit exemption,
// two box-1 brackets, tapered tax credits and the ZVW contribution.
func SelfEmployedTax(in SelfEmployedInput) SelfEmployedResult {
	revenue := in.HourlyRate * in.HoursPerYear
	grossProfit := revenue - in.Costs

	var entrepreneurDed, starterDed float64
	if in.HoursPerYear >= deductionHoursFloor {
		entrepreneurDed = selfEmployedDeduction
		if in.StarterBreak {
			starterDed = starterDeduction
		}
	}

	profitAfterDed := math.Max(0, grossProfit-entrepreneurDed-starterDed)
	mkbExemption := profitAfterDed * mkbExemptionRate
	taxable := profitAfterDed - mkbExemption

	var box1 float64
	if taxable <= box1Bracket1Limit {
		box1 = taxable * box1Rate1
	} else {
		box1 = box1Bracket1Limit*box1Rate1 + (taxable-box1Bracket1Limit)*box1Rate2
	}

	generalCredit := math.Max(0, generalCreditBase-taxable*generalCreditTaper)
	labourCredit := math.Max(0, labourCreditBase-taxable*labourCreditTaper)
	incomeTax := math.Max(0, box1-generalCredit-labourCredit)

	zvw := math.Min(taxable, zvwIncomeCap) * zvwRate
	net := grossProfit - incomeTax - zvw

	return SelfEmployedResult{
		Revenue:          revenue,
		GrossProfit:      grossProfit,
		EntrepreneurDed:  entrepreneurDed,
		StarterDed:       starterDed,
		MKBExemption:     mkbExemption,
		TaxableProfit:    taxable,
		IncomeTax:        incomeTax,
		HealthInsurance:  zvw,
		NetIncome:        net,
		NetIncomeMonthly: net / 12,
	}
}
