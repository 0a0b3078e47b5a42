package listing

import "slices"

// Page size defaults for product lists.
const (
	DefaultPage     = 1
	DefaultPageSize = 5
)

// PageSizes is the enumerated set of page sizes a list offers, smallest first.
//
//nolint:gochecknoglobals // Read-only lookup table.
var PageSizes = []int{5, 10, 25, 50}

// Paginate returns the items of the 1-based page of the given size.
// Pages past the end yield an empty slice. size must be positive.
func Paginate[T any](items []T, page, size int) []T {
	start := (page - 1) * size
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns ceil(totalItems / size). Zero items yield zero pages.
// size must be positive.
func TotalPages(totalItems, size int) int {
	if totalItems <= 0 {
		return 0
	}
	pages := totalItems / size
	if totalItems%size > 0 {
		pages++
	}
	return pages
}

// PageNumbers returns 1..totalPages.
func PageNumbers(totalPages int) []int {
	if totalPages <= 0 {
		return []int{}
	}
	pages := make([]int, totalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// ValidPageSize reports whether size is one of allowed.
func ValidPageSize(size int, allowed []int) bool {
	return slices.Contains(allowed, size)
}
