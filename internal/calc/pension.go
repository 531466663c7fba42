package calc

import "math"

// Fixed actuarial assumptions of the original pension check.
const (
	pensionGrowthRate = 0.05
	payoutYears       = 20
	payoutRate        = 0.03
)

// PensionInput describes the saver's current position and retirement goal.
type PensionInput struct {
	CurrentAge           int     `json:"currentAge"`
	RetirementAge        int     `json:"retirementAge"`
	CurrentCapital       float64 `json:"currentCapital"`
	MonthlyDeposit       float64 `json:"monthlyDeposit"`
	DesiredIncome        float64 `json:"desiredIncome"`        // per month
	ExpectedStatePension float64 `json:"expectedStatePension"` // per month
}

// PensionResult is the projected capital at retirement against the capital
// needed to fund the income gap.
type PensionResult struct {
	FinalCapital    float64 `json:"finalCapital"`
	RequiredCapital float64 `json:"requiredCapital"`
	Gap             float64 `json:"gap"`
}

// PensionGap grows the current capital and yearly deposits to retirement
// at a fixed 5% return, then prices the desired income gap as a 20-year
// annuity at 3% and reports the shortfall (floored at zero).
func PensionGap(in PensionInput) PensionResult {
	years := float64(in.RetirementAge - in.CurrentAge)
	if years < 0 {
		years = 0
	}

	growth := math.Pow(1+pensionGrowthRate, years)
	fv := in.CurrentCapital * growth
	fv += in.MonthlyDeposit * 12 * ((growth - 1) / pensionGrowthRate)

	gapPerMonth := math.Max(0, in.DesiredIncome-in.ExpectedStatePension)
	required := gapPerMonth * 12 * (1 - math.Pow(1+payoutRate, -payoutYears)) / payoutRate

	return PensionResult{
		FinalCapital:    fv,
		RequiredCapital: required,
		Gap:             math.Max(0, required-fv),
	}
}
