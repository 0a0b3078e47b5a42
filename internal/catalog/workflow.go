package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rshade/finprod/internal/product"
	"github.com/rshade/finprod/internal/products"
)

// Select marks the record with id as selected.
func (m *Manager) Select(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectLocked(id)
}

// Selected returns the selected record, if any.
func (m *Manager) Selected() (product.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexLocked(m.selectedID); i >= 0 {
		return m.records[i], true
	}
	return product.Product{}, false
}

// Mode returns the active workflow.
func (m *Manager) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// BeginCreate enters the create workflow with nothing selected.
func (m *Manager) BeginCreate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedID = ""
	m.mode = ModeCreate
}

// BeginEdit selects id and enters the edit workflow.
func (m *Manager) BeginEdit(id string) error {
	return m.begin(id, ModeEdit)
}

// BeginDelete selects id and enters the delete workflow.
func (m *Manager) BeginDelete(id string) error {
	return m.begin(id, ModeDelete)
}

// Cancel leaves the active workflow and clears the selection.
func (m *Manager) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedID = ""
	m.mode = ModeNone
}

func (m *Manager) begin(id string, mode Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.selectLocked(id); err != nil {
		return err
	}
	m.mode = mode
	return nil
}

func (m *Manager) selectLocked(id string) error {
	if m.indexLocked(id) < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	m.selectedID = id
	return nil
}

// Create stores p through the product service, then reloads the list.
func (m *Manager) Create(ctx context.Context, p *product.Product) (string, error) {
	msg, err := m.svc.Create(ctx, p)
	if err != nil {
		return "", err
	}
	return msg, m.finish(ctx)
}

// Update replaces p through the product service, then reloads the list.
func (m *Manager) Update(ctx context.Context, p *product.Product) (string, error) {
	msg, err := m.svc.Update(ctx, p)
	if err != nil {
		return "", err
	}
	return msg, m.finish(ctx)
}

// Delete removes id through the product service, then reloads the list.
func (m *Manager) Delete(ctx context.Context, id string) (string, error) {
	msg, err := m.svc.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	return msg, m.finish(ctx)
}

// Import creates items concurrently, then reloads the list once if anything
// was created, including when ctx is cancelled part-way.
func (m *Manager) Import(ctx context.Context, items []product.Product, limit int) (products.ImportResult, error) {
	result, err := m.svc.ImportAll(ctx, items, limit)
	if len(result.Created) > 0 {
		if loadErr := m.Load(context.WithoutCancel(ctx)); loadErr != nil {
			return result, errors.Join(err, fmt.Errorf("reloading after import: %w", loadErr))
		}
	}
	return result, err
}

// finish ends the workflow after a successful mutation and reloads.
func (m *Manager) finish(ctx context.Context) error {
	m.mu.Lock()
	m.selectedID = ""
	m.mode = ModeNone
	m.mu.Unlock()

	if err := m.Load(ctx); err != nil {
		return fmt.Errorf("reloading products: %w", err)
	}
	return nil
}
