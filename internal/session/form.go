// internal/session/form.go
package session

import (
	"errors"
	"maps"
	"sync"

	"points-calculator/internal/domain"
	"points-calculator/internal/evaluator"
)

var ErrUnknownItem = errors.New("unknown catalog item")

const (
	TriggerPrice    = "price"
	TriggerQuantity = "quantity"
	TriggerBonus    = "bonus"
	TriggerReset    = "reset"
)

// Recorder gets notified about every recompute.
type Recorder interface {
	Recompute(trigger string)
}

type nopRecorder struct{}

func (nopRecorder) Recompute(string) {}

// Form holds one user's inputs. Each edit triggers a full recompute before returning.
type Form struct {
	mu       sync.Mutex
	catalog  []domain.CatalogEntry
	known    map[string]struct{}
	inputs   map[string]domain.PurchaseInput
	bonus    bool
	result   domain.DerivedResult
	recorder Recorder
}

func NewForm(catalog []domain.CatalogEntry, rec Recorder) *Form {
	if rec == nil {
		rec = nopRecorder{}
	}
	f := &Form{
		catalog:  catalog,
		known:    make(map[string]struct{}, len(catalog)),
		inputs:   make(map[string]domain.PurchaseInput, len(catalog)),
		recorder: rec,
	}
	for _, e := range catalog {
		f.known[e.ID] = struct{}{}
	}
	f.result = evaluator.Evaluate(f.catalog, f.inputs, f.bonus)
	return f
}

func (f *Form) SetPrice(id, text string) (domain.DerivedResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.known[id]; !ok {
		return domain.DerivedResult{}, ErrUnknownItem
	}
	in := f.inputs[id]
	in.Price = text
	f.inputs[id] = in
	return f.recompute(TriggerPrice), nil
}

// SetQuantity stores the quantity clamped to 0.
func (f *Form) SetQuantity(id string, n int) (domain.DerivedResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.known[id]; !ok {
		return domain.DerivedResult{}, ErrUnknownItem
	}
	in := f.inputs[id]
	in.Quantity = evaluator.ClampQuantity(n)
	f.inputs[id] = in
	return f.recompute(TriggerQuantity), nil
}

func (f *Form) SetBonus(active bool) domain.DerivedResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bonus = active
	return f.recompute(TriggerBonus)
}

func (f *Form) ToggleBonus() domain.DerivedResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bonus = !f.bonus
	return f.recompute(TriggerBonus)
}

func (f *Form) Reset() domain.DerivedResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.inputs)
	f.bonus = false
	return f.recompute(TriggerReset)
}

func (f *Form) Result() domain.DerivedResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

func (f *Form) BonusActive() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bonus
}

// Inputs returns a copy; mutating it does not touch the form.
func (f *Form) Inputs() map[string]domain.PurchaseInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.inputs)
}

func (f *Form) Catalog() []domain.CatalogEntry {
	return f.catalog
}

// Snapshot returns inputs, bonus flag and result read under one lock.
func (f *Form) Snapshot() (map[string]domain.PurchaseInput, bool, domain.DerivedResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.inputs), f.bonus, f.result
}

func (f *Form) recompute(trigger string) domain.DerivedResult {
	f.result = evaluator.Evaluate(f.catalog, f.inputs, f.bonus)
	f.recorder.Recompute(trigger)
	return f.result
}
