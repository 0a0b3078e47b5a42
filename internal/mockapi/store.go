// Package mockapi serves the product REST API from memory. It backs
// "finprod serve" and the HTTP tests of the client and CLI.
package mockapi

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rshade/finprod/internal/product"
)

// Store errors.
var (
	ErrDuplicateID = errors.New("product id already exists")
	ErrNotFound    = errors.New("product not found")
)

// Store is a mutex-guarded product table. Reads return copies.
type Store struct {
	mu    sync.RWMutex
	items []product.Product
}

// NewStore returns a store holding seed in order.
func NewStore(seed ...product.Product) *Store {
	return &Store{items: slices.Clone(seed)}
}

// List returns every product in insertion order.
func (s *Store) List() []product.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.items == nil {
		return []product.Product{}
	}
	return slices.Clone(s.items)
}

// Get returns the product with id.
func (s *Store) Get(id string) (product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(id)
	if i < 0 {
		return product.Product{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s.items[i], nil
}

// Exists reports whether id is taken.
func (s *Store) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index(id) >= 0
}

// Add appends p unless its id is taken.
func (s *Store) Add(p product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index(p.ID) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateID, p.ID)
	}
	s.items = append(s.items, p)
	return nil
}

// Replace overwrites the product with p.ID in place.
func (s *Store) Replace(p product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(p.ID)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, p.ID)
	}
	s.items[i] = p
	return nil
}

// Remove deletes the product with id.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

// Len returns the number of stored products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.items, func(p product.Product) bool { return p.ID == id })
}
