// Package services orchestrates the planning datasets across the key-value
// store and AMQP notifications, and assembles the derived month outlook.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"

	"geldplan/internal/amqp"
	"geldplan/internal/budget"
	"geldplan/internal/core"
	"geldplan/internal/kv"
	applog "geldplan/internal/log"
)

// DatasetService owns the two stored datasets: the budget overlay state and
// the flat debt list. Writes go to the store first; the AMQP notification is
// best-effort and never fails the request.
type DatasetService struct {
	store      kv.Store
	budgets    *budget.OverlayStore
	amqpClient *amqp.Client
	structured *applog.StructuredLogger
	revision   int64
}

func NewDatasetService(ctx context.Context, store kv.Store, amqpClient *amqp.Client) *DatasetService {
	return &DatasetService{
		store:      store,
		budgets:    budget.NewOverlayStore(ctx, store),
		amqpClient: amqpClient,
		structured: applog.NewStructuredLogger(applog.New(applog.DefaultConfig())),
	}
}

// seedDebts is the starter portfolio used when nothing is stored yet.
func seedDebts() []core.DebtItem {
	return []core.DebtItem{
		{ID: "debt-1", Creditor: "Creditcard", TotalAmount: 1850.50, InterestRate: 14, MonthlyPayment: 45},
		{ID: "debt-2", Creditor: "Webwinkel achteraf betalen", TotalAmount: 340, InterestRate: 0, MonthlyPayment: 50},
		{ID: "debt-3", Creditor: "Zorgverzekeraar betalingsregeling", TotalAmount: 850, InterestRate: 4, MonthlyPayment: 100},
		{ID: "debt-4", Creditor: "Doorlopend krediet", TotalAmount: 1200, InterestRate: 12.5, MonthlyPayment: 50},
	}
}

// ResolveBudget returns the groups active for period.
func (s *DatasetService) ResolveBudget(period string) ([]core.BudgetGroup, error) {
	return s.budgets.Resolve(period)
}

// ReloadBudget re-reads the budget state from the store. Processes that
// only observe the datasets (like the outlook worker) call this on change
// notifications so commits made elsewhere become visible.
func (s *DatasetService) ReloadBudget(ctx context.Context) {
	s.budgets.Reload(ctx)
}

// CommitBudget stores groups as the override for period and notifies
// listeners of the change.
func (s *DatasetService) CommitBudget(ctx context.Context, period string, groups []core.BudgetGroup) error {
	if err := s.budgets.Commit(ctx, period, groups); err != nil {
		return err
	}
	s.publishChange(ctx, kv.BudgetDataKey)
	return nil
}

// EditTemplate replaces the standing budget template.
func (s *DatasetService) EditTemplate(ctx context.Context, groups []core.BudgetGroup) error {
	if err := s.budgets.EditTemplate(ctx, groups); err != nil {
		return err
	}
	s.publishChange(ctx, kv.BudgetDataKey)
	return nil
}

// Template returns a copy of the standing budget template.
func (s *DatasetService) Template() []core.BudgetGroup {
	return s.budgets.Template()
}

// ResetPeriod drops the override for period.
func (s *DatasetService) ResetPeriod(ctx context.Context, period string) error {
	if err := s.budgets.ResetPeriod(ctx, period); err != nil {
		return err
	}
	s.publishChange(ctx, kv.BudgetDataKey)
	return nil
}

// HasOverride reports whether period has a committed override.
func (s *DatasetService) HasOverride(period string) bool {
	return s.budgets.HasOverride(period)
}

// Debts loads the stored debt list. A missing or corrupt value falls back
// to the starter portfolio; that is a recovery path, not an error.
func (s *DatasetService) Debts(ctx context.Context) ([]core.DebtItem, error) {
	raw, ok, err := s.store.Get(ctx, kv.DebtsDataKey)
	if err != nil {
		return nil, fmt.Errorf("read debts: %w", err)
	}
	if !ok {
		return seedDebts(), nil
	}
	var debts []core.DebtItem
	if err := json.Unmarshal([]byte(raw), &debts); err != nil {
		slog.WarnContext(ctx, "Debt state corrupt, using starter portfolio", "error", err)
		return seedDebts(), nil
	}
	return debts, nil
}

// SaveDebts validates and stores the debt list wholesale, then notifies
// listeners of the change.
func (s *DatasetService) SaveDebts(ctx context.Context, debts []core.DebtItem) error {
	if err := core.ValidateDebts(debts); err != nil {
		return err
	}
	raw, err := json.Marshal(core.CloneDebts(debts))
	if err != nil {
		return fmt.Errorf("marshal debts: %w", err)
	}
	if err := s.store.Set(ctx, kv.DebtsDataKey, string(raw)); err != nil {
		return fmt.Errorf("persist debts: %w", err)
	}
	s.publishChange(ctx, kv.DebtsDataKey)
	return nil
}

func (s *DatasetService) publishChange(ctx context.Context, dataset string) {
	rev := atomic.AddInt64(&s.revision, 1)
	s.structured.LogDatasetSaved(ctx, dataset, rev)
	if s.amqpClient == nil {
		slog.DebugContext(ctx, "AMQP client not available, skipping change notification", "dataset", dataset)
		return
	}
	if err := s.amqpClient.PublishDatasetChanged(ctx, dataset, rev); err != nil {
		slog.ErrorContext(ctx, "Failed to publish change notification",
			"dataset", dataset, "revision", rev, "error", err)
		// Don't fail the request, the write already landed in the store.
	}
}

// Close closes the AMQP connection if one is attached.
func (s *DatasetService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close amqp: %w", err)
		}
	}
	return nil
}
