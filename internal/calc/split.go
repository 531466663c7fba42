package calc

// CostSplit divides shared costs in proportion to two incomes.
type CostSplit struct {
	RatioA  float64 `json:"ratioA"` // percent
	RatioB  float64 `json:"ratioB"` // percent
	ShareA  float64 `json:"shareA"`
	ShareB  float64 `json:"shareB"`
}

// SplitCosts splits sharedCosts pro rata over incomeA and incomeB.
// With no income on either side everything stays at zero.
func SplitCosts(incomeA, incomeB, sharedCosts float64) CostSplit {
	total := incomeA + incomeB
	if total <= 0 {
		return CostSplit{}
	}
	ratioA := incomeA / total * 100
	ratioB := incomeB / total * 100
	return CostSplit{
		RatioA: ratioA,
		RatioB: ratioB,
		ShareA: ratioA / 100 * sharedCosts,
		ShareB: ratioB / 100 * sharedCosts,
	}
}
