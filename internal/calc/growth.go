package calc

// GrowthPoint is the balance at the end of a projected year.
type GrowthPoint struct {
	Year     int     `json:"year"`
	Value    float64 `json:"value"`
	Invested float64 `json:"invested"`
}

// GrowthResult is a compound-growth projection with a yearly trajectory.
type GrowthResult struct {
	Points        []GrowthPoint `json:"points"`
	FinalValue    float64       `json:"finalValue"`
	TotalInvested float64       `json:"totalInvested"`
}

// CompoundGrowth projects monthly contributions compounding at the given
// annual return over a number of years. Contributions land before the
// month's growth is applied, matching the original projection.
func CompoundGrowth(startAmount, monthlyContribution float64, years int, annualReturnPct float64) GrowthResult {
	value := startAmount
	invested := startAmount
	monthlyRate := annualReturnPct / 100 / 12

	result := GrowthResult{
		Points: []GrowthPoint{{Year: 0, Value: value, Invested: invested}},
	}

	for year := 1; year <= years; year++ {
		for m := 0; m < 12; m++ {
			value += monthlyContribution
			value *= 1 + monthlyRate
			invested += monthlyContribution
		}
		result.Points = append(result.Points, GrowthPoint{Year: year, Value: value, Invested: invested})
	}

	result.FinalValue = value
	result.TotalInvested = invested
	return result
}

// ComparisonPoint tracks two competing growth scenarios over one year.
type ComparisonPoint struct {
	Year     int     `json:"year"`
	Savings  float64 `json:"savings"`
	Invested float64 `json:"invested"`
	PaidIn   float64 `json:"paidIn"`
}

// ComparisonResult contrasts a savings rate against an investment return
// for the same contributions.
type ComparisonResult struct {
	Points       []ComparisonPoint `json:"points"`
	FinalSavings float64           `json:"finalSavings"`
	FinalInvest  float64           `json:"finalInvest"`
	Difference   float64           `json:"difference"`
	TotalPaidIn  float64           `json:"totalPaidIn"`
}

// CompareGrowth runs the savings and investment scenarios side by side.
// Here growth is applied before the month's contribution, as the original
// comparison does.
func CompareGrowth(startAmount, monthlyContribution float64, years int, savingsRatePct, investRatePct float64) ComparisonResult {
	savings := startAmount
	invest := startAmount
	paidIn := startAmount

	result := ComparisonResult{
		Points: []ComparisonPoint{{Year: 0, Savings: savings, Invested: invest, PaidIn: paidIn}},
	}

	for year := 1; year <= years; year++ {
		for m := 0; m < 12; m++ {
			savings *= 1 + savingsRatePct/100/12
			invest *= 1 + investRatePct/100/12
			savings += monthlyContribution
			invest += monthlyContribution
			paidIn += monthlyContribution
		}
		result.Points = append(result.Points, ComparisonPoint{Year: year, Savings: savings, Invested: invest, PaidIn: paidIn})
	}

	result.FinalSavings = savings
	result.FinalInvest = invest
	result.Difference = invest - savings
	result.TotalPaidIn = paidIn
	return result
}
