// Package products holds the product use cases: precondition checks in
// front of a Repository that talks to the product API.
package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/finprod/internal/logging"
	"github.com/rshade/finprod/internal/product"
)

// Precondition errors. They are returned before any repository call.
var (
	ErrIDRequired      = errors.New("product id is required")
	ErrProductRequired = errors.New("product is required")
)

// Repository is the remote store of products.
type Repository interface {
	// List returns every product.
	List(ctx context.Context) ([]product.Product, error)
	// Get returns one product by id.
	Get(ctx context.Context, id string) (product.Product, error)
	// Create stores a new product and returns the server's message.
	Create(ctx context.Context, p product.Product) (string, error)
	// Update replaces an existing product and returns the server's message.
	Update(ctx context.Context, p product.Product) (string, error)
	// Delete removes a product and returns the server's message.
	Delete(ctx context.Context, id string) (string, error)
}

// Service runs product use cases against a Repository.
type Service struct {
	repo Repository
}

// NewService returns a Service backed by repo.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List fetches all products.
func (s *Service) List(ctx context.Context) ([]product.Product, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	logging.FromContext(ctx).Debug().
		Str("component", "products").
		Str("operation", "list").
		Int("count", len(items)).
		Msg("fetched products")
	return items, nil
}

// Get fetches one product. A blank id fails with ErrIDRequired.
func (s *Service) Get(ctx context.Context, id string) (product.Product, error) {
	if strings.TrimSpace(id) == "" {
		return product.Product{}, ErrIDRequired
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return product.Product{}, fmt.Errorf("getting product %q: %w", id, err)
	}
	return p, nil
}

// Create stores p. A nil product fails with ErrProductRequired.
func (s *Service) Create(ctx context.Context, p *product.Product) (string, error) {
	if p == nil {
		return "", ErrProductRequired
	}
	msg, err := s.repo.Create(ctx, *p)
	if err != nil {
		return "", fmt.Errorf("creating product %q: %w", p.ID, err)
	}
	s.logMutation(ctx, "create", p.ID, msg)
	return msg, nil
}

// Update replaces p. A nil product or blank id fails before any call.
func (s *Service) Update(ctx context.Context, p *product.Product) (string, error) {
	if p == nil {
		return "", ErrProductRequired
	}
	if strings.TrimSpace(p.ID) == "" {
		return "", ErrIDRequired
	}
	msg, err := s.repo.Update(ctx, *p)
	if err != nil {
		return "", fmt.Errorf("updating product %q: %w", p.ID, err)
	}
	s.logMutation(ctx, "update", p.ID, msg)
	return msg, nil
}

// Delete removes the product with id. A blank id fails with ErrIDRequired.
func (s *Service) Delete(ctx context.Context, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", ErrIDRequired
	}
	msg, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", fmt.Errorf("deleting product %q: %w", id, err)
	}
	s.logMutation(ctx, "delete", id, msg)
	return msg, nil
}

func (s *Service) logMutation(ctx context.Context, op, id, msg string) {
	logging.FromContext(ctx).Info().
		Str("component", "products").
		Str("operation", op).
		Str("product_id", id).
		Str("server_message", msg).
		Msg("product " + op + " succeeded")
}
