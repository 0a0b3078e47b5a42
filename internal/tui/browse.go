package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/finprod/internal/catalog"
	"github.com/rshade/finprod/internal/product"
	listview "github.com/rshade/finprod/internal/tui/list"
)

// ViewState is the screen the browser shows.
type ViewState int

// Browser screens.
const (
	ViewStateLoading ViewState = iota
	ViewStateList
	ViewStateDetail
	ViewStateConfirmDelete
	ViewStateQuitting
)

type loadedMsg struct {
	err error
}

type deletedMsg struct {
	id      string
	message string
	err     error
}

// BrowseModel is the Bubble Tea model of the product browser. All list
// state lives in the catalog.Manager; the model only tracks the screen.
type BrowseModel struct {
	ctx     context.Context
	manager *catalog.Manager

	state     ViewState
	rows      *listview.Model[product.Product]
	search    textinput.Model
	searching bool
	spinner   spinner.Model

	width  int
	height int

	status    string
	statusErr bool
}

// NewBrowseModel returns a browser over manager that loads on Init.
func NewBrowseModel(ctx context.Context, manager *catalog.Manager) *BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "Search by name or description..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	ti.Prompt = "Search: "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &BrowseModel{
		ctx:     ctx,
		manager: manager,
		state:   ViewStateLoading,
		search:  ti,
		spinner: sp,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.rows = listview.New[product.Product](nil, m.listHeight(), m.renderRow)
	return m
}

// Init starts the first load.
func (m *BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

// State returns the current screen.
func (m *BrowseModel) State() ViewState {
	return m.state
}

// Status returns the status line text and whether it reports an error.
func (m *BrowseModel) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m *BrowseModel) loadCmd() tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		return loadedMsg{err: manager.Load(ctx)}
	}
}

func (m *BrowseModel) deleteCmd(id string) tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		msg, err := manager.Delete(ctx, id)
		return deletedMsg{id: id, message: msg, err: err}
	}
}

// Update handles messages and updates the model state.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.rows.SetHeight(m.listHeight())
		return m, nil
	case loadedMsg:
		return m.handleLoaded(msg)
	case deletedMsg:
		return m.handleDeleted(msg)
	case spinner.TickMsg:
		if m.state != ViewStateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if s := keyMsg.String(); s == keyCtrlC {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	switch m.state {
	case ViewStateList:
		return m.handleListKey(keyMsg)
	case ViewStateDetail:
		return m.handleDetailKey(keyMsg)
	case ViewStateConfirmDelete:
		return m.handleConfirmKey(keyMsg)
	case ViewStateLoading:
		if keyMsg.String() == keyQuit {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	case ViewStateQuitting:
	}
	return m, nil
}

func (m *BrowseModel) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	m.state = ViewStateList
	if msg.err != nil {
		m.setError(fmt.Errorf("loading products: %w", msg.err))
	} else {
		m.setStatus(fmt.Sprintf("Loaded %d products", len(m.manager.Records())))
	}
	m.refresh()
	return m, nil
}

func (m *BrowseModel) handleDeleted(msg deletedMsg) (tea.Model, tea.Cmd) {
	m.state = ViewStateList
	if msg.err != nil {
		m.manager.Cancel()
		m.setError(msg.err)
	} else {
		m.setStatus(fmt.Sprintf("%s: %s", msg.id, msg.message))
	}
	m.refresh()
	return m, nil
}

func (m *BrowseModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter:
			m.searching = false
			m.search.Blur()
			m.manager.SetSearch(m.search.Value())
			m.rows.SetCursor(0)
			m.refresh()
			return m, nil
		case keyEsc:
			m.searching = false
			m.search.Blur()
			m.search.SetValue(m.manager.Search())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

//nolint:gocyclo,cyclop // One branch per key binding.
func (m *BrowseModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case keyQuit:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keySlash:
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case keyEsc:
		if m.manager.Search() != "" {
			m.search.SetValue("")
			m.manager.SetSearch("")
			m.refresh()
		}
		return m, nil
	case keyClearAll:
		m.manager.ClearSort()
		m.refresh()
		return m, nil
	case keyLeft, keyH:
		m.manager.PrevPage()
		m.rows.SetCursor(0)
		m.refresh()
		return m, nil
	case keyRight, keyL:
		m.manager.NextPage()
		m.rows.SetCursor(0)
		m.refresh()
		return m, nil
	case keyPlus:
		size := m.manager.CyclePageSize()
		m.rows.SetCursor(0)
		m.setStatus(fmt.Sprintf("Page size %d", size))
		m.refresh()
		return m, nil
	case keyReload:
		m.state = ViewStateLoading
		return m, tea.Batch(m.spinner.Tick, m.loadCmd())
	case keyEnter:
		if _, ok := m.rows.Selected(); ok {
			m.state = ViewStateDetail
		}
		return m, nil
	case keyDelete:
		p, ok := m.rows.Selected()
		if !ok {
			return m, nil
		}
		if err := m.manager.BeginDelete(p.ID); err != nil {
			m.setError(err)
			return m, nil
		}
		m.state = ViewStateConfirmDelete
		return m, nil
	}

	if n, ok := sortColumnKey(key); ok {
		field := product.SortFields[n]
		if err := m.manager.SortBy(field); err != nil {
			m.setError(err)
		}
		m.refresh()
		return m, nil
	}

	m.rows.HandleKey(msg)
	return m, nil
}

func (m *BrowseModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEsc, keyEnter:
		m.state = ViewStateList
	case keyDelete:
		if p, ok := m.rows.Selected(); ok && m.manager.BeginDelete(p.ID) == nil {
			m.state = ViewStateConfirmDelete
		}
	}
	return m, nil
}

func (m *BrowseModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyYes:
		p, ok := m.manager.Selected()
		if !ok {
			m.manager.Cancel()
			m.state = ViewStateList
			return m, nil
		}
		m.state = ViewStateLoading
		m.setStatus("Deleting " + p.ID + "...")
		return m, tea.Batch(m.spinner.Tick, m.deleteCmd(p.ID))
	case keyNo, keyEsc, keyQuit:
		m.manager.Cancel()
		m.state = ViewStateList
		m.setStatus("Delete cancelled")
	}
	return m, nil
}

// sortColumnKey maps "1".."6" to a column index.
func sortColumnKey(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	n := int(key[0] - '1')
	if n >= len(product.SortFields) {
		return 0, false
	}
	return n, true
}

// refresh pulls the current page from the manager into the row window.
func (m *BrowseModel) refresh() {
	m.rows.SetItems(m.manager.Current().Items)
}

func (m *BrowseModel) listHeight() int {
	return max(m.height-chromeHeight, 1)
}

func (m *BrowseModel) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *BrowseModel) setError(err error) {
	m.status, m.statusErr = err.Error(), true
}
