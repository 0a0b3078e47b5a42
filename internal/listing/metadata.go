package listing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Meta contains metadata about one page of results.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates page metadata for page of size over totalItems.
func NewMeta(page, size, totalItems int) Meta {
	totalPages := 0
	if size > 0 {
		totalPages = TotalPages(totalItems, size)
	}

	return Meta{
		CurrentPage: page,
		PageSize:    size,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}

// FirstItem returns the 1-based position of the first item on the page,
// or 0 when the page is empty.
func (m Meta) FirstItem() int {
	first := (m.CurrentPage-1)*m.PageSize + 1
	if m.TotalItems == 0 || first > m.TotalItems {
		return 0
	}
	return first
}

// LastItem returns the 1-based position of the last item on the page,
// or 0 when the page is empty.
func (m Meta) LastItem() int {
	if m.FirstItem() == 0 {
		return 0
	}
	return min(m.CurrentPage*m.PageSize, m.TotalItems)
}

// Summary renders the page position, e.g. "Page 2 of 3 (1,204 products)".
// An empty result still reads as page 1 of 1.
func (m Meta) Summary() string {
	return printer.Sprintf("Page %d of %d (%d products)",
		m.CurrentPage, max(m.TotalPages, 1), m.TotalItems)
}
