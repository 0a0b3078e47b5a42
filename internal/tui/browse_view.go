package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/finprod/internal/catalog"
	"github.com/rshade/finprod/internal/listing"
	"github.com/rshade/finprod/internal/product"
	"github.com/rshade/finprod/internal/tui/detail"
)

// Column widths, in product.SortFields order.
const (
	colWidthLogo        = 14
	colWidthName        = 24
	colWidthDescription = 36
	colWidthDate        = 12
	colWidthID          = 10
	ellipsis            = "..."
)

type column struct {
	field string
	title string
	width int
}

//nolint:gochecknoglobals // Column layout.
var columns = []column{
	{product.FieldLogo, "Logo", colWidthLogo},
	{product.FieldName, "Name", colWidthName},
	{product.FieldDescription, "Description", colWidthDescription},
	{product.FieldDateRelease, "Released", colWidthDate},
	{product.FieldDateRevision, "Revised", colWidthDate},
	{product.FieldID, "ID", colWidthID},
}

// View renders the current screen.
func (m *BrowseModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return fmt.Sprintf("\n %s Loading products...\n", m.spinner.View())
	case ViewStateDetail:
		if p, ok := m.rows.Selected(); ok {
			return lipgloss.JoinVertical(lipgloss.Left,
				detail.Render(p, m.width),
				mutedStyle.Render("[Esc] Back  [d] Delete  [q] Quit"),
			)
		}
		return m.renderList(m.manager.Current())
	case ViewStateConfirmDelete:
		return m.renderConfirm()
	default:
		return m.renderList(m.manager.Current())
	}
}

func (m *BrowseModel) renderList(v catalog.View) string {
	title := titleStyle.Render("FINANCIAL PRODUCTS")

	var body string
	if len(v.Items) == 0 {
		body = mutedStyle.Render("No products to show.")
	} else {
		body = headerStyle.Render(renderHeader(v.SortField, v.Direction)) + "\n" + m.rows.View()
	}

	parts := []string{title, body, renderFooter(v)}
	if m.searching {
		parts = append(parts, m.search.View())
	} else if v.Search != "" {
		parts = append(parts, mutedStyle.Render(fmt.Sprintf("Search: %q", v.Search)))
	}
	if line := m.renderStatus(); line != "" {
		parts = append(parts, line)
	}
	parts = append(parts, mutedStyle.Render(
		"[/] Search  [1-6] Sort  [←→/hl] Page  [+] Page size  [↑↓/jk] Move  [Enter] Details  [d] Delete  [r] Reload  [q] Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *BrowseModel) renderConfirm() string {
	p, ok := m.manager.Selected()
	if !ok {
		return m.renderList(m.manager.Current())
	}
	prompt := warnStyle.Render(fmt.Sprintf("Delete product %q (%s)?", p.Name, p.ID))
	return lipgloss.JoinVertical(lipgloss.Left,
		detail.Render(p, m.width),
		prompt,
		mutedStyle.Render("[y] Yes  [n] No"),
	)
}

func (m *BrowseModel) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render("Error: " + m.status)
	}
	return okStyle.Render(m.status)
}

func renderHeader(sortField string, dir listing.Direction) string {
	cells := make([]string, len(columns))
	for i, c := range columns {
		title := fmt.Sprintf("%d %s", i+1, c.title)
		if c.field == sortField {
			title += sortIndicator(dir)
		}
		cells[i] = pad(title, c.width)
	}
	return strings.Join(cells, "  ")
}

func sortIndicator(dir listing.Direction) string {
	if dir == listing.Descending {
		return " ▼"
	}
	return " ▲"
}

func renderFooter(v catalog.View) string {
	meta := v.Meta
	return mutedStyle.Render(fmt.Sprintf("%s  Showing %d-%d, %d per page",
		meta.Summary(), meta.FirstItem(), meta.LastItem(), meta.PageSize))
}

// renderRow formats one product as a table row.
func (m *BrowseModel) renderRow(p product.Product, selected bool) string {
	values := []string{
		p.Logo,
		p.Name,
		p.Description,
		p.DateRelease.String(),
		p.DateRevision.String(),
		p.ID,
	}
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = pad(values[i], c.width)
	}
	row := strings.Join(cells, "  ")
	if selected {
		return selectedStyle.Render(row)
	}
	return row
}

// pad truncates or right-pads s to exactly width runes.
func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		if width <= len(ellipsis) {
			return string(r[:width])
		}
		return string(r[:width-len(ellipsis)]) + ellipsis
	}
	return s + strings.Repeat(" ", width-len(r))
}
