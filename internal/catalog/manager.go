// Package catalog holds the product list view state and derives the
// filtered, sorted and paginated views from it.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/finprod/internal/listing"
	"github.com/rshade/finprod/internal/product"
	"github.com/rshade/finprod/internal/products"
)

// View state errors.
var (
	ErrInvalidPageSize  = errors.New("page size is not one of the allowed sizes")
	ErrInvalidPage      = errors.New("page must be >= 1")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrNotFound         = errors.New("product not in the current list")
)

// Mode is the workflow the list is currently in.
type Mode int

// Workflow modes.
const (
	ModeNone Mode = iota
	ModeCreate
	ModeEdit
	ModeDelete
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	case ModeDelete:
		return "delete"
	default:
		return "none"
	}
}

// View is one rendered page plus the inputs it was derived from.
type View struct {
	Items     []product.Product
	Meta      listing.Meta
	Pages     []int
	Search    string
	SortField string
	Direction listing.Direction
	Mode      Mode
	Selected  *product.Product
}

// Manager owns the view state of a product list. All methods are safe for
// concurrent use; repository calls run without holding the lock.
type Manager struct {
	svc          *products.Service
	pageSizes    []int
	searchFields []string
	logger       zerolog.Logger

	mu         sync.Mutex
	records    []product.Product
	search     string
	sortField  string
	direction  listing.Direction
	page       int
	pageSize   int
	selectedID string
	mode       Mode
}

// Option customizes a Manager.
type Option func(*Manager)

// WithPageSizes sets the allowed page sizes; the smallest becomes the default.
func WithPageSizes(sizes []int) Option {
	return func(m *Manager) {
		if len(sizes) > 0 {
			m.pageSizes = slices.Sorted(slices.Values(sizes))
		}
	}
}

// WithSearchFields sets the fields matched by SetSearch.
func WithSearchFields(fields []string) Option {
	return func(m *Manager) {
		if len(fields) > 0 {
			m.searchFields = slices.Clone(fields)
		}
	}
}

// WithDefaultPageSize starts the list at size instead of the smallest size.
// Sizes outside the allowed set are ignored.
func WithDefaultPageSize(size int) Option {
	return func(m *Manager) {
		m.pageSize = size
	}
}

// WithLogger sets the logger used for state changes.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// New returns an empty Manager backed by repo. Call Load to populate it.
func New(repo products.Repository, opts ...Option) *Manager {
	m := &Manager{
		svc:          products.NewService(repo),
		pageSizes:    slices.Clone(listing.PageSizes),
		searchFields: slices.Clone(product.SearchFields),
		logger:       zerolog.Nop(),
		records:      []product.Product{},
		direction:    listing.Ascending,
		page:         listing.DefaultPage,
	}
	for _, opt := range opts {
		opt(m)
	}
	if !listing.ValidPageSize(m.pageSize, m.pageSizes) {
		m.pageSize = m.pageSizes[0]
	}
	return m
}

// Service returns the use cases the Manager delegates to.
func (m *Manager) Service() *products.Service {
	return m.svc
}

// PageSizes returns the allowed page sizes.
func (m *Manager) PageSizes() []int {
	return slices.Clone(m.pageSizes)
}

// Load replaces the record set with a fresh fetch. The current page is kept
// while it still exists and reset to 1 otherwise. A selection whose record
// disappeared is cleared.
func (m *Manager) Load(ctx context.Context) error {
	items, err := m.svc.List(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = items
	if total := m.totalPagesLocked(); m.page > max(total, 1) {
		m.logger.Debug().
			Str("operation", "load").
			Int("page", m.page).
			Int("total_pages", total).
			Msg("page no longer exists, returning to first page")
		m.page = listing.DefaultPage
	}
	if m.selectedID != "" && m.indexLocked(m.selectedID) < 0 {
		m.selectedID = ""
		m.mode = ModeNone
	}

	m.logger.Debug().Str("operation", "load").Int("count", len(items)).Msg("records replaced")
	return nil
}

// Records returns a copy of the full record set.
func (m *Manager) Records() []product.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.records)
}

// SetSearch changes the search term and returns to the first page.
func (m *Manager) SetSearch(term string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.search = term
	m.page = listing.DefaultPage
}

// Search returns the current search term.
func (m *Manager) Search() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.search
}

// SetPageSize changes the page size and returns to the first page.
func (m *Manager) SetPageSize(size int) error {
	if !listing.ValidPageSize(size, m.pageSizes) {
		return fmt.Errorf("%w: %d (allowed %v)", ErrInvalidPageSize, size, m.pageSizes)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pageSize = size
	m.page = listing.DefaultPage
	return nil
}

// CyclePageSize moves to the next allowed page size, wrapping around, and
// returns it.
func (m *Manager) CyclePageSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := slices.Index(m.pageSizes, m.pageSize)
	m.pageSize = m.pageSizes[(i+1)%len(m.pageSizes)]
	m.page = listing.DefaultPage
	return m.pageSize
}

// GoToPage moves to page n. Pages past the end are allowed and render empty.
func (m *Manager) GoToPage(n int) error {
	if n < listing.DefaultPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, n)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.page = n
	return nil
}

// NextPage advances one page, stopping at the last page.
func (m *Manager) NextPage() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.page < max(m.totalPagesLocked(), 1) {
		m.page++
	}
	return m.page
}

// PrevPage goes back one page, stopping at the first page.
func (m *Manager) PrevPage() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.page > listing.DefaultPage {
		m.page--
	}
	return m.page
}

// SortBy orders the list by field. Selecting the current field again
// toggles the direction; a new field starts ascending.
func (m *Manager) SortBy(field string) error {
	if !product.IsSortField(field) {
		return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidSortField, field, product.SortFields)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sortField == field {
		m.direction = m.direction.Toggle()
		return nil
	}
	m.sortField = field
	m.direction = listing.Ascending
	return nil
}

// SetSort sets field and direction directly. An empty field clears sorting.
func (m *Manager) SetSort(field string, dir listing.Direction) error {
	if field != "" && !product.IsSortField(field) {
		return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidSortField, field, product.SortFields)
	}
	if dir != listing.Descending {
		dir = listing.Ascending
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sortField = field
	m.direction = dir
	return nil
}

// ClearSort restores insertion order.
func (m *Manager) ClearSort() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sortField = ""
	m.direction = listing.Ascending
}

// Filtered returns the records matching the search term.
func (m *Manager) Filtered() []product.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.filteredLocked())
}

// Sorted returns the filtered records in the current order.
func (m *Manager) Sorted() []product.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.sortedLocked())
}

// Current derives the visible page from the current state.
func (m *Manager) Current() View {
	m.mu.Lock()
	defer m.mu.Unlock()

	sorted := m.sortedLocked()
	meta := listing.NewMeta(m.page, m.pageSize, len(sorted))

	v := View{
		Items:     slices.Clone(listing.Paginate(sorted, m.page, m.pageSize)),
		Meta:      meta,
		Pages:     listing.PageNumbers(meta.TotalPages),
		Search:    m.search,
		SortField: m.sortField,
		Direction: m.direction,
		Mode:      m.mode,
	}
	if i := m.indexLocked(m.selectedID); i >= 0 {
		selected := m.records[i]
		v.Selected = &selected
	}
	return v
}

func (m *Manager) filteredLocked() []product.Product {
	return listing.Filter(m.records, m.search, m.searchFields, product.Value)
}

func (m *Manager) sortedLocked() []product.Product {
	return listing.Sort(m.filteredLocked(), m.sortField, m.direction, product.Value)
}

func (m *Manager) totalPagesLocked() int {
	return listing.TotalPages(len(m.filteredLocked()), m.pageSize)
}

func (m *Manager) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(m.records, func(p product.Product) bool { return p.ID == id })
}
