package core

// CloneGroups returns a structurally independent copy of the group list.
// The original app serialized through JSON to break reference sharing
// between the template and month overrides; an explicit field copy gives
// the same isolation without the round-trip.
func CloneGroups(groups []BudgetGroup) []BudgetGroup {
	if groups == nil {
		return nil
	}
	out := make([]BudgetGroup, len(groups))
	for i, g := range groups {
		cp := g
		cp.Items = make([]SubItem, len(g.Items))
		for j, item := range g.Items {
			ci := item
			if item.PaymentDay != nil {
				day := *item.PaymentDay
				ci.PaymentDay = &day
			}
			cp.Items[j] = ci
		}
		out[i] = cp
	}
	return out
}

// CloneDebts returns an independent copy of the debt list.
func CloneDebts(debts []DebtItem) []DebtItem {
	if debts == nil {
		return nil
	}
	out := make([]DebtItem, len(debts))
	copy(out, debts)
	return out
}
