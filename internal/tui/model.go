package tui

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tobvie/gearlist/internal/catalog"
	"github.com/tobvie/gearlist/internal/state"
)

// allTab is the label of the combined cross-project tab.
const allTab = "All Items"

const defaultPerPage = 14

// Model is the bubbletea model for the checklist view.
type Model struct {
	catalog *catalog.Catalog
	store   *state.Store

	tabs   []string
	active int

	search textinput.Model
	pager  paginator.Model

	rows   []row
	cursor int

	styles Styles
	width  int
	height int

	// loadErr carries the non-fatal "no data" condition into the view.
	loadErr error
}

// NewModel creates the checklist model. loadErr may carry a catalog load
// failure; the model still runs and renders it as a banner.
func NewModel(c *catalog.Catalog, store *state.Store, loadErr error) Model {
	search := textinput.New()
	search.Placeholder = "search items"
	search.Prompt = "/ "
	search.CharLimit = 64

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = defaultPerPage

	tabs := []string{}
	for _, project := range c.Projects() {
		tabs = append(tabs, project.Name)
	}
	tabs = append(tabs, allTab)

	m := Model{
		catalog: c,
		store:   store,
		tabs:    tabs,
		search:  search,
		pager:   pager,
		styles:  NewStyles(store.Theme()),
		loadErr: loadErr,
	}
	m.rebuildRows()

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if per := msg.Height - 10; per > 4 {
			m.pager.PerPage = per
		} else {
			m.pager.PerPage = defaultPerPage
		}
		m.syncPager()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.Blur()
		m.search.SetValue("")
		m.rebuildRows()
		return m, nil
	case "enter":
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.rebuildRows()
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "/":
		return m, m.search.Focus()

	case "tab", "right", "l":
		m.active = (m.active + 1) % len(m.tabs)
		m.cursor = 0
		m.rebuildRows()

	case "shift+tab", "left", "h":
		m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
		m.cursor = 0
		m.rebuildRows()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.syncPager()
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.syncPager()
		}

	case "pgup":
		m.cursor -= m.pager.PerPage
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.syncPager()

	case "pgdown":
		m.cursor += m.pager.PerPage
		if m.cursor > len(m.rows)-1 {
			m.cursor = len(m.rows) - 1
		}
		m.syncPager()

	case " ", "enter":
		m.toggleCurrent()

	case "t":
		m.toggleTheme()
	}

	return m, nil
}

// toggleCurrent flips the row under the cursor: collapse state for group
// headers, completion for items. Completion changes recompute the derived
// totals immediately.
func (m *Model) toggleCurrent() {
	if m.cursor >= len(m.rows) {
		return
	}

	switch r := m.rows[m.cursor]; r.kind {
	case rowGroup:
		m.store.ToggleGroup(r.group.ID)
	case rowItem:
		m.store.ToggleItem(r.project, r.item.ID)
		m.catalog.Refresh()
	}
	m.rebuildRows()
}

func (m *Model) toggleTheme() {
	theme := "dark"
	if m.store.Theme() == "dark" {
		theme = "light"
	}
	m.store.SetTheme(theme)
	m.styles = NewStyles(theme)
}

func (m *Model) rebuildRows() {
	name := m.tabs[m.active]
	if name == allTab {
		m.rows = m.buildSummaryRows()
	} else if project, ok := m.catalog.Project(name); ok {
		m.rows = m.buildProjectRows(project)
	} else {
		m.rows = nil
	}

	if m.cursor > len(m.rows)-1 {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.syncPager()
}

func (m *Model) syncPager() {
	total := len(m.rows)
	if total == 0 {
		total = 1
	}
	m.pager.SetTotalPages(total)
	m.pager.Page = m.cursor / m.pager.PerPage
}
