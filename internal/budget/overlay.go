// Package budget resolves the standing budget template and per-month
// overrides into an active group hierarchy and derives totals from it.
package budget

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"geldplan/internal/core"
	"geldplan/internal/kv"
)

// OverlayStore layers per-period overrides over a standing template.
// Every resolved period is a structurally independent copy: editing the
// template never reaches into a committed month and vice versa.
// All methods are safe for concurrent use.
type OverlayStore struct {
	store kv.Store

	mu   sync.RWMutex
	data core.BudgetData
}

// NewOverlayStore loads the budget state from the injected store. Missing
// or corrupt stored data falls back to the default template with no
// overrides; that is a recovery path, not an error.
func NewOverlayStore(ctx context.Context, store kv.Store) *OverlayStore {
	s := &OverlayStore{store: store}
	s.load(ctx)
	return s
}

// Reload re-reads the budget state from the injected store, picking up
// writes made by other processes sharing it.
func (s *OverlayStore) Reload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)
}

// load must be called with mu held (or before the store is shared).
func (s *OverlayStore) load(ctx context.Context) {
	s.data = core.BudgetData{
		Template:  DefaultTemplate(),
		Overrides: make(map[string][]core.BudgetGroup),
	}

	raw, ok, err := s.store.Get(ctx, kv.BudgetDataKey)
	if err != nil {
		slog.WarnContext(ctx, "Budget state read failed, using defaults", "error", err)
		return
	}
	if !ok {
		return
	}

	var data core.BudgetData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		slog.WarnContext(ctx, "Budget state corrupt, using defaults", "error", err)
		return
	}
	if data.Overrides == nil {
		data.Overrides = make(map[string][]core.BudgetGroup)
	}
	if data.Template == nil {
		data.Template = DefaultTemplate()
	}
	s.data = data
}

// save must be called with mu held.
func (s *OverlayStore) save(ctx context.Context) error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("marshal budget state: %w", err)
	}
	if err := s.store.Set(ctx, kv.BudgetDataKey, string(raw)); err != nil {
		return fmt.Errorf("persist budget state: %w", err)
	}
	return nil
}

// Resolve returns the groups active for the period: the committed override
// if one exists, otherwise a deep copy of the template. The returned slice
// is always owned by the caller and safe to edit before committing.
func (s *OverlayStore) Resolve(period string) ([]core.BudgetGroup, error) {
	if _, err := core.ParsePeriod(period); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if groups, ok := s.data.Overrides[period]; ok {
		return core.CloneGroups(groups), nil
	}
	return core.CloneGroups(s.data.Template), nil
}

// Commit stores groups as the override for period, replacing any prior
// override wholesale.
func (s *OverlayStore) Commit(ctx context.Context, period string, groups []core.BudgetGroup) error {
	if _, err := core.ParsePeriod(period); err != nil {
		return err
	}
	if err := core.ValidateGroups(groups); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Overrides[period] = core.CloneGroups(groups)
	return s.save(ctx)
}

// EditTemplate replaces the standing template wholesale. Existing overrides
// are untouched: months materialized before the edit keep their data.
func (s *OverlayStore) EditTemplate(ctx context.Context, groups []core.BudgetGroup) error {
	if err := core.ValidateGroups(groups); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Template = core.CloneGroups(groups)
	return s.save(ctx)
}

// Template returns a copy of the standing template.
func (s *OverlayStore) Template() []core.BudgetGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.CloneGroups(s.data.Template)
}

// ResetPeriod drops the override for period; the next Resolve falls back to
// a fresh copy of the then-current template.
func (s *OverlayStore) ResetPeriod(ctx context.Context, period string) error {
	if _, err := core.ParsePeriod(period); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data.Overrides, period)
	return s.save(ctx)
}

// HasOverride reports whether period has a committed override.
func (s *OverlayStore) HasOverride(period string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data.Overrides[period]
	return ok
}
