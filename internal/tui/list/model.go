package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one row. selected reports whether the cursor is on it.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a cursor over items with a viewport of height rows.
type Model[T any] struct {
	items  []T
	render RenderFunc[T]
	cursor int
	from   int
	height int
}

// New returns a Model over items. A height below 1 is treated as 1.
func New[T any](items []T, height int, render RenderFunc[T]) *Model[T] {
	m := &Model[T]{items: items, render: render, height: max(height, 1)}
	m.follow()
	return m
}

// SetItems replaces the rows, keeping the cursor in range.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.SetCursor(m.cursor)
}

// SetHeight resizes the viewport.
func (m *Model[T]) SetHeight(height int) {
	m.height = max(height, 1)
	m.follow()
}

// HandleKey moves the cursor for navigation keys and reports whether the
// key was consumed.
//
//nolint:exhaustive // Only navigation keys are handled.
func (m *Model[T]) HandleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp:
		m.SetCursor(m.cursor - 1)
	case tea.KeyDown:
		m.SetCursor(m.cursor + 1)
	case tea.KeyPgUp:
		m.SetCursor(m.cursor - m.height)
	case tea.KeyPgDown:
		m.SetCursor(m.cursor + m.height)
	case tea.KeyHome:
		m.SetCursor(0)
	case tea.KeyEnd:
		m.SetCursor(len(m.items) - 1)
	case tea.KeyRunes:
		switch msg.String() {
		case "k":
			m.SetCursor(m.cursor - 1)
		case "j":
			m.SetCursor(m.cursor + 1)
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// Cursor returns the selected row index.
func (m *Model[T]) Cursor() int {
	return m.cursor
}

// SetCursor moves the cursor, clamping to the rows.
func (m *Model[T]) SetCursor(i int) {
	m.cursor = min(max(i, 0), max(len(m.items)-1, 0))
	m.follow()
}

// Selected returns the row under the cursor.
func (m *Model[T]) Selected() (T, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor], true
}

// Len returns the number of rows.
func (m *Model[T]) Len() int {
	return len(m.items)
}

// Visible returns the half-open range of rendered rows.
func (m *Model[T]) Visible() (from, to int) {
	return m.from, min(m.from+m.height, len(m.items))
}

// View renders the visible rows, newline separated.
func (m *Model[T]) View() string {
	from, to := m.Visible()
	rows := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		rows = append(rows, m.render(m.items[i], i == m.cursor))
	}
	return strings.Join(rows, "\n")
}

// follow scrolls the window so the cursor stays visible.
func (m *Model[T]) follow() {
	switch {
	case m.cursor < m.from:
		m.from = m.cursor
	case m.cursor >= m.from+m.height:
		m.from = m.cursor - m.height + 1
	}
	m.from = max(min(m.from, len(m.items)-m.height), 0)
}
