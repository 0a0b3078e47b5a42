package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/finprod/internal/listing"
	"github.com/rshade/finprod/internal/product"
	"github.com/rshade/finprod/internal/products"
)

// memRepo is a mutable in-memory products.Repository.
type memRepo struct {
	mu      sync.Mutex
	items   []product.Product
	calls   []string
	listErr error

	// onCreate runs after a create is recorded.
	onCreate func(id string)
}

func (r *memRepo) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *memRepo) callCount(prefix string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (r *memRepo) List(context.Context) ([]product.Product, error) {
	r.record("list")
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	return slices.Clone(r.items), nil
}

func (r *memRepo) Get(_ context.Context, id string) (product.Product, error) {
	r.record("get " + id)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return product.Product{}, errors.New("not found")
}

func (r *memRepo) Create(_ context.Context, p product.Product) (string, error) {
	r.record("create " + p.ID)
	if r.onCreate != nil {
		r.onCreate(p.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, p)
	return "Product added successfully", nil
}

func (r *memRepo) Update(_ context.Context, p product.Product) (string, error) {
	r.record("update " + p.ID)
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i] = p
		}
	}
	return "Product updated successfully", nil
}

func (r *memRepo) Delete(_ context.Context, id string) (string, error) {
	r.record("delete " + id)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = slices.DeleteFunc(r.items, func(p product.Product) bool { return p.ID == id })
	return "Product removed successfully", nil
}

func seed(n int) []product.Product {
	items := make([]product.Product, n)
	for i := range items {
		items[i] = product.Product{
			ID:          fmt.Sprintf("p-%02d", i+1),
			Name:        fmt.Sprintf("Product %02d", i+1),
			Description: fmt.Sprintf("Description %02d", i+1),
		}
	}
	return items
}

func loaded(t *testing.T, items []product.Product, opts ...Option) (*Manager, *memRepo) {
	t.Helper()
	repo := &memRepo{items: items}
	m := New(repo, opts...)
	require.NoError(t, m.Load(context.Background()))
	return m, repo
}

func TestNew_Defaults(t *testing.T) {
	m := New(&memRepo{})
	v := m.Current()

	assert.Equal(t, 1, v.Meta.CurrentPage)
	assert.Equal(t, 5, v.Meta.PageSize)
	assert.Empty(t, v.Items)
	assert.Empty(t, v.Pages)
	assert.Equal(t, ModeNone, v.Mode)
	assert.Nil(t, v.Selected)
	assert.Equal(t, []int{5, 10, 25, 50}, m.PageSizes())
}

func TestNew_Options(t *testing.T) {
	m := New(&memRepo{},
		WithPageSizes([]int{20, 10}),
		WithDefaultPageSize(20),
		WithSearchFields([]string{product.FieldID}),
	)
	assert.Equal(t, []int{10, 20}, m.PageSizes())
	assert.Equal(t, 20, m.Current().Meta.PageSize)

	m = New(&memRepo{}, WithDefaultPageSize(7))
	assert.Equal(t, 5, m.Current().Meta.PageSize, "unknown default falls back to smallest size")
}

func TestLoad_Pages(t *testing.T) {
	m, _ := loaded(t, seed(12))
	v := m.Current()

	assert.Equal(t, 12, v.Meta.TotalItems)
	assert.Equal(t, 3, v.Meta.TotalPages)
	assert.Equal(t, []int{1, 2, 3}, v.Pages)
	assert.Equal(t, []string{"p-01", "p-02", "p-03", "p-04", "p-05"}, product.IDs(v.Items))
}

func TestLoad_Error(t *testing.T) {
	repo := &memRepo{items: seed(3)}
	m := New(repo)
	require.NoError(t, m.Load(context.Background()))

	repo.listErr = errors.New("boom")
	err := m.Load(context.Background())
	require.Error(t, err)
	assert.Len(t, m.Records(), 3, "failed load keeps previous records")
}

func TestLoad_KeepsOrResetsPage(t *testing.T) {
	m, repo := loaded(t, seed(12))
	require.NoError(t, m.GoToPage(3))

	require.NoError(t, m.Load(context.Background()))
	assert.Equal(t, 3, m.Current().Meta.CurrentPage, "page still exists")

	repo.mu.Lock()
	repo.items = repo.items[:6]
	repo.mu.Unlock()

	require.NoError(t, m.Load(context.Background()))
	assert.Equal(t, 1, m.Current().Meta.CurrentPage, "page 3 no longer exists")
}

func TestSetSearch_ResetsPage(t *testing.T) {
	m, _ := loaded(t, seed(12))
	require.NoError(t, m.GoToPage(2))

	m.SetSearch("product 1")
	v := m.Current()

	assert.Equal(t, 1, v.Meta.CurrentPage)
	assert.Equal(t, "product 1", v.Search)
	assert.Equal(t, []string{"p-10", "p-11", "p-12"}, product.IDs(v.Items))
	assert.Len(t, m.Filtered(), 3)
}

func TestSetSearch_OnlySearchFields(t *testing.T) {
	m, _ := loaded(t, seed(3))
	m.SetSearch("p-01")
	assert.Empty(t, m.Filtered(), "id is not a default search field")

	m, _ = loaded(t, seed(3), WithSearchFields([]string{product.FieldID}))
	m.SetSearch("p-01")
	assert.Len(t, m.Filtered(), 1)
}

func TestSetPageSize(t *testing.T) {
	m, _ := loaded(t, seed(12))
	require.NoError(t, m.GoToPage(2))

	require.NoError(t, m.SetPageSize(10))
	v := m.Current()
	assert.Equal(t, 1, v.Meta.CurrentPage)
	assert.Equal(t, 10, v.Meta.PageSize)
	assert.Len(t, v.Items, 10)

	err := m.SetPageSize(7)
	require.ErrorIs(t, err, ErrInvalidPageSize)
	assert.Equal(t, 10, m.Current().Meta.PageSize)
}

func TestCyclePageSize(t *testing.T) {
	m, _ := loaded(t, seed(2))
	assert.Equal(t, 10, m.CyclePageSize())
	assert.Equal(t, 25, m.CyclePageSize())
	assert.Equal(t, 50, m.CyclePageSize())
	assert.Equal(t, 5, m.CyclePageSize())
}

func TestPageNavigation(t *testing.T) {
	m, _ := loaded(t, seed(12))

	assert.Equal(t, 1, m.PrevPage())
	assert.Equal(t, 2, m.NextPage())
	assert.Equal(t, 3, m.NextPage())
	assert.Equal(t, 3, m.NextPage(), "stops at last page")
	assert.Equal(t, 2, m.PrevPage())

	require.ErrorIs(t, m.GoToPage(0), ErrInvalidPage)

	require.NoError(t, m.GoToPage(9))
	v := m.Current()
	assert.Equal(t, 9, v.Meta.CurrentPage)
	assert.Empty(t, v.Items, "pages past the end render empty")
}

func TestNextPage_EmptyList(t *testing.T) {
	m, _ := loaded(t, nil)
	assert.Equal(t, 1, m.NextPage())
}

func TestSortBy_Toggle(t *testing.T) {
	m, _ := loaded(t, seed(3))

	require.NoError(t, m.SortBy(product.FieldName))
	v := m.Current()
	assert.Equal(t, product.FieldName, v.SortField)
	assert.Equal(t, listing.Ascending, v.Direction)
	assert.Equal(t, []string{"p-01", "p-02", "p-03"}, product.IDs(v.Items))

	require.NoError(t, m.SortBy(product.FieldName))
	v = m.Current()
	assert.Equal(t, listing.Descending, v.Direction)
	assert.Equal(t, []string{"p-03", "p-02", "p-01"}, product.IDs(v.Items))

	require.NoError(t, m.SortBy(product.FieldID))
	v = m.Current()
	assert.Equal(t, product.FieldID, v.SortField)
	assert.Equal(t, listing.Ascending, v.Direction, "new field starts ascending")
}

func TestSortBy_InvalidField(t *testing.T) {
	m, _ := loaded(t, seed(3))
	require.ErrorIs(t, m.SortBy("price"), ErrInvalidSortField)
	assert.Empty(t, m.Current().SortField)
}

func TestSetSortAndClear(t *testing.T) {
	m, _ := loaded(t, seed(3))

	require.NoError(t, m.SetSort(product.FieldID, listing.Descending))
	assert.Equal(t, []string{"p-03", "p-02", "p-01"}, product.IDs(m.Sorted()))

	m.ClearSort()
	assert.Equal(t, []string{"p-01", "p-02", "p-03"}, product.IDs(m.Sorted()))

	require.ErrorIs(t, m.SetSort("bogus", listing.Ascending), ErrInvalidSortField)
}

func TestSort_MissingDates(t *testing.T) {
	items := seed(3)
	items[0].DateRelease = product.NewDate(2024, 5, 1)
	items[2].DateRelease = product.NewDate(2023, 1, 1)
	m, _ := loaded(t, items)

	require.NoError(t, m.SortBy(product.FieldDateRelease))
	assert.Equal(t, []string{"p-03", "p-01", "p-02"}, product.IDs(m.Sorted()))
}

func TestViewsDoNotAlias(t *testing.T) {
	m, _ := loaded(t, seed(3))
	v := m.Current()
	v.Items[0].Name = "changed"
	got := m.Records()
	got[1].Name = "changed"

	assert.Equal(t, "Product 01", m.Current().Items[0].Name)
	assert.Equal(t, "Product 02", m.Records()[1].Name)
}

func TestConcurrentAccess(t *testing.T) {
	m, _ := loaded(t, seed(30))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.SetSearch(fmt.Sprintf("product %d", i%3))
			_ = m.SortBy(product.FieldName)
			m.NextPage()
			_ = m.Current()
			_ = m.Load(ctx)
		}()
	}
	wg.Wait()

	assert.Len(t, m.Records(), 30)
}

var _ products.Repository = (*memRepo)(nil)
