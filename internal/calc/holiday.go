package calc

// HolidayBudget totals a trip: transport, accommodation and daily spending
// money for every person, plus the per-person share.
type HolidayBudget struct {
	SpendingMoney float64 `json:"spendingMoney"`
	TotalCost     float64 `json:"totalCost"`
	PerPerson     float64 `json:"perPerson"`
}

// Holiday computes the full cost of a trip for persons over days.
func Holiday(persons, days int, transportCost, accommodationCost, dailyBudget float64) HolidayBudget {
	spending := float64(persons) * float64(days) * dailyBudget
	total := transportCost + accommodationCost + spending

	divisor := float64(persons)
	if divisor == 0 {
		divisor = 1
	}
	return HolidayBudget{
		SpendingMoney: spending,
		TotalCost:     total,
		PerPerson:     total / divisor,
	}
}
