package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  GroupType = "income"
	Expense GroupType = "expense"
)

type (
	// GroupType tags a budget group as income or expense.
	GroupType string

	// SubItem is a single budget line inside a group. PaymentDay, when set,
	// is the calendar day (1-31) the item clears.
	SubItem struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Amount     float64 `json:"amount"`
		PaymentDay *int    `json:"paymentDay,omitempty"`
	}

	// BudgetGroup is a named collection of budget lines. A group owns its
	// items; deleting the group deletes them. Item order is insertion order.
	BudgetGroup struct {
		ID    string    `json:"id"`
		Name  string    `json:"name"`
		Type  GroupType `json:"type"`
		Items []SubItem `json:"items"`
	}

	// BudgetData is the standing template plus per-period overrides keyed by
	// "YYYY-MM". The JSON field names match the original storage format.
	BudgetData struct {
		Template  []BudgetGroup            `json:"template"`
		Overrides map[string][]BudgetGroup `json:"months"`
	}

	// DebtItem is one outstanding debt in the flat debt list.
	DebtItem struct {
		ID             string  `json:"id"`
		Creditor       string  `json:"creditor"`
		TotalAmount    float64 `json:"totalAmount"`
		InterestRate   float64 `json:"interestRate"`
		MonthlyPayment float64 `json:"monthlyPayment"`
		Description    string  `json:"description,omitempty"`
	}
)

var (
	ErrInvalidAmount     = errors.New("amount must not be negative")
	ErrInvalidPaymentDay = errors.New("payment day must be between 1 and 31")
	ErrInvalidGroupType  = errors.New("group type must be income or expense")
	ErrInvalidRate       = errors.New("interest rate must not be negative")
	ErrEmptyCreditor     = errors.New("empty creditor name")
	ErrInvalidPeriod     = errors.New("period must be formatted as YYYY-MM")
)

func (t GroupType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidGroupType
	}
}

func (i SubItem) Validate() error {
	if i.Amount < 0 {
		return ErrInvalidAmount
	}
	if i.PaymentDay != nil && (*i.PaymentDay < 1 || *i.PaymentDay > 31) {
		return ErrInvalidPaymentDay
	}
	return nil
}

func (g BudgetGroup) Validate() error {
	if err := g.Type.Validate(); err != nil {
		return err
	}
	for _, item := range g.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Total sums the amounts of all items in the group.
func (g BudgetGroup) Total() float64 {
	var sum float64
	for _, item := range g.Items {
		sum += item.Amount
	}
	return sum
}

func ValidateGroups(groups []BudgetGroup) error {
	for _, g := range groups {
		if err := g.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (d DebtItem) Validate() error {
	if strings.TrimSpace(d.Creditor) == "" {
		return ErrEmptyCreditor
	}
	if d.TotalAmount < 0 || d.MonthlyPayment < 0 {
		return ErrInvalidAmount
	}
	if d.InterestRate < 0 {
		return ErrInvalidRate
	}
	return nil
}

func ValidateDebts(debts []DebtItem) error {
	for _, d := range debts {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PeriodOf formats a point in time as a "YYYY-MM" period key.
func PeriodOf(t time.Time) string {
	return t.Format("2006-01")
}

// ParsePeriod validates a "YYYY-MM" period key and returns the first day
// of that month in UTC.
func ParsePeriod(period string) (time.Time, error) {
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return time.Time{}, ErrInvalidPeriod
	}
	return t, nil
}
