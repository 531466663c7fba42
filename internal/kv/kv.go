// Package kv defines the key-value persistence port the planning toolkit
// stores its datasets behind. Each logical dataset lives under its own key;
// writes are last-write-wins per key.
package kv

import "context"

// Logical storage keys.
const (
	BudgetDataKey = "budget_data"
	DebtsDataKey  = "debts_data"
)

// Store is the outbound persistence port. Get reports ok=false for a
// missing key; an error is reserved for backend failures.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
