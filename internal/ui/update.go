package ui

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/davess/kview/internal/table"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.detail.Width = msg.Width - 4
		m.detail.Height = msg.Height - 6
		m.recompute()
		return m, nil

	case tickMsg:
		if m.store != nil {
			m.snapshot = m.store.Snapshot()
		}
		m.recompute()
		return m, m.tick()

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeFilter:
			return m.updateFilter(msg)
		case modeColumns:
			return m.updateColumns(msg)
		case modeDetail:
			return m.updateDetail(msg)
		case modeHelp:
			return m.updateHelp(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.SwitchView):
		if m.currentView == ViewWorkloads {
			m.currentView = ViewEvents
		} else {
			m.currentView = ViewWorkloads
		}
		return m, nil

	case key.Matches(msg, keys.Search):
		m.mode = modeSearch
		m.searchInput.SetValue(m.activePattern())
		return m, m.searchInput.Focus()

	case key.Matches(msg, keys.Filter):
		m.mode = modeFilter
		m.filterCol = 0
		m.filterVal = 0
		return m, nil

	case key.Matches(msg, keys.Columns):
		m.mode = modeColumns
		m.columnCursor = 0
		return m, nil

	case key.Matches(msg, keys.ClearAll):
		m.activeFilters().Clear()
		m.recompute()
		return m, nil

	case key.Matches(msg, keys.Help):
		m.mode = modeHelp
		return m, nil

	case key.Matches(msg, keys.Escape):
		m.setPattern("")
		m.recompute()
		return m, nil

	case key.Matches(msg, keys.Detail):
		m.openDetail()
		return m, nil

	case key.Matches(msg, keys.Down):
		m.moveSelection(1)
		return m, nil
	case key.Matches(msg, keys.Up):
		m.moveSelection(-1)
		return m, nil
	case key.Matches(msg, keys.Top):
		m.moveSelection(-1 << 30)
		return m, nil
	case key.Matches(msg, keys.Bottom):
		m.moveSelection(1 << 30)
		return m, nil
	case key.Matches(msg, keys.HalfDown):
		m.moveSelection(m.bodyRows() / 2)
		return m, nil
	case key.Matches(msg, keys.HalfUp):
		m.moveSelection(-m.bodyRows() / 2)
		return m, nil

	case key.Matches(msg, keys.PrevPage):
		if m.currentView == ViewWorkloads {
			m.workloads.setPage(m.snapshot, m.workloads.pageIndex-1)
		}
		return m, nil
	case key.Matches(msg, keys.NextPage):
		if m.currentView == ViewWorkloads {
			m.workloads.setPage(m.snapshot, m.workloads.pageIndex+1)
		}
		return m, nil
	case key.Matches(msg, keys.FirstPage):
		if m.currentView == ViewWorkloads {
			m.workloads.setPage(m.snapshot, 0)
		}
		return m, nil
	case key.Matches(msg, keys.LastPage):
		if m.currentView == ViewWorkloads {
			m.workloads.setPage(m.snapshot, m.workloads.page.TotalPages-1)
		}
		return m, nil
	case key.Matches(msg, keys.PageSize):
		if m.currentView == ViewWorkloads {
			m.workloads.cyclePageSize(m.snapshot)
		}
		return m, nil
	}

	// Digits sort by the n-th visible column; the same digit again
	// reverses the order.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		n, _ := strconv.Atoi(s)
		m.sortByVisibleColumn(n - 1)
		return m, nil
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeList
		m.searchInput.Blur()
		m.setPattern(strings.TrimSpace(m.searchInput.Value()))
		m.recompute()
		return m, nil
	case "esc":
		m.mode = modeList
		m.searchInput.Blur()
		// Revert the live preview to the last applied pattern.
		m.applySearch(m.activePattern())
		m.recompute()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Live preview: recompute on every keystroke.
	m.applySearch(strings.TrimSpace(m.searchInput.Value()))
	m.recompute()
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ids := m.filterableColumns()
	if len(ids) == 0 {
		m.mode = modeList
		return m, nil
	}
	if m.filterCol >= len(ids) {
		m.filterCol = len(ids) - 1
	}
	facet := m.activeFacets()[ids[m.filterCol].id]

	switch msg.String() {
	case "esc", "f", "q":
		m.mode = modeList
		return m, nil
	case "h", "left", "shift+tab":
		m.filterCol--
		if m.filterCol < 0 {
			m.filterCol = len(ids) - 1
		}
		m.filterVal = 0
		return m, nil
	case "l", "right", "tab":
		m.filterCol = (m.filterCol + 1) % len(ids)
		m.filterVal = 0
		return m, nil
	case "j", "down":
		if m.filterVal < len(facet)-1 {
			m.filterVal++
		}
		return m, nil
	case "k", "up":
		if m.filterVal > 0 {
			m.filterVal--
		}
		return m, nil
	case " ", "enter":
		if m.filterVal < len(facet) {
			m.activeFilters().Toggle(ids[m.filterCol].id, facet[m.filterVal].Value)
			m.recompute()
		}
		return m, nil
	case "x":
		m.activeFilters().Set(ids[m.filterCol].id, nil)
		m.recompute()
		return m, nil
	case "C":
		m.activeFilters().Clear()
		m.recompute()
		return m, nil
	}
	return m, nil
}

func (m Model) updateColumns(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.columnList()
	switch msg.String() {
	case "esc", "c", "q":
		m.mode = modeList
		return m, nil
	case "j", "down":
		if m.columnCursor < len(cols)-1 {
			m.columnCursor++
		}
		return m, nil
	case "k", "up":
		if m.columnCursor > 0 {
			m.columnCursor--
		}
		return m, nil
	case " ", "enter":
		if m.columnCursor < len(cols) {
			col := cols[m.columnCursor]
			_ = m.activeVisibility().SetVisible(col.id, !m.activeVisibility().IsVisible(col.id))
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.mode = modeList
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q", "enter":
		m.mode = modeList
	}
	return m, nil
}

// moveSelection moves the active screen's cursor.
func (m *Model) moveSelection(delta int) {
	if m.currentView == ViewWorkloads {
		m.workloads.moveCursor(delta)
		return
	}
	m.events.moveCursor(delta)
}

// sortByVisibleColumn sorts by the idx-th visible column of the active
// screen, reversing when it is already the sort key.
func (m *Model) sortByVisibleColumn(idx int) {
	switch m.currentView {
	case ViewWorkloads:
		applySortKey(&m.workloads.sort, visibleSortableID(m.workloads.cols, m.workloads.vis, idx))
	default:
		applySortKey(&m.events.sort, visibleSortableID(m.events.cols, m.events.vis, idx))
	}
	m.recompute()
}

func visibleSortableID[T any](cols []table.Column[T], vis *table.Visibility, idx int) string {
	visible := make([]table.Column[T], 0, len(cols))
	for _, c := range cols {
		if vis.IsVisible(c.ID) {
			visible = append(visible, c)
		}
	}
	if idx < 0 || idx >= len(visible) || !visible[idx].Sortable {
		return ""
	}
	return visible[idx].ID
}

func applySortKey(s *table.SortState, id string) {
	if id == "" {
		return
	}
	if s.Key == id {
		if s.Order == table.Ascending {
			s.Order = table.Descending
		} else {
			s.Order = table.Ascending
		}
		return
	}
	s.Key = id
	s.Order = table.Ascending
}

// applySearch compiles and installs a live search pattern without
// recording it as applied.
func (m *Model) applySearch(pattern string) {
	re := compileSearch(pattern)
	if m.currentView == ViewWorkloads {
		m.workloads.searchRe = re
		return
	}
	m.events.searchRe = re
}

// setPattern records pattern as the applied search for the active
// screen.
func (m *Model) setPattern(pattern string) {
	re := compileSearch(pattern)
	if m.currentView == ViewWorkloads {
		m.workloads.pattern = pattern
		m.workloads.searchRe = re
		return
	}
	m.events.pattern = pattern
	m.events.searchRe = re
}

// compileSearch builds the case-insensitive regex for a pattern, or nil
// for an empty or invalid one.
func compileSearch(pattern string) *regexp.Regexp {
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" {
		return nil
	}
	re, err := regexp.Compile("(?i)" + trimmed)
	if err != nil {
		return nil
	}
	return re
}

func (m *Model) activePattern() string {
	if m.currentView == ViewWorkloads {
		return m.workloads.pattern
	}
	return m.events.pattern
}

func (m *Model) activeFilters() table.FilterState {
	if m.currentView == ViewWorkloads {
		return m.workloads.filters
	}
	return m.events.filters
}

func (m *Model) activeFacets() map[string]table.Facet {
	if m.currentView == ViewWorkloads {
		return m.workloads.res.Facets
	}
	return m.events.res.Facets
}

func (m *Model) activeVisibility() *table.Visibility {
	if m.currentView == ViewWorkloads {
		return m.workloads.vis
	}
	return m.events.vis
}

// columnMeta is the id/title pair the overlays render.
type columnMeta struct {
	id    string
	title string
}

func (m *Model) filterableColumns() []columnMeta {
	if m.currentView == ViewWorkloads {
		return filterable(m.workloads.cols)
	}
	return filterable(m.events.cols)
}

func (m *Model) columnList() []columnMeta {
	if m.currentView == ViewWorkloads {
		return allColumns(m.workloads.cols)
	}
	return allColumns(m.events.cols)
}

func filterable[T any](cols []table.Column[T]) []columnMeta {
	out := make([]columnMeta, 0, len(cols))
	for _, c := range cols {
		if c.Filterable {
			out = append(out, columnMeta{id: c.ID, title: c.Title})
		}
	}
	return out
}

func allColumns[T any](cols []table.Column[T]) []columnMeta {
	out := make([]columnMeta, 0, len(cols))
	for _, c := range cols {
		out = append(out, columnMeta{id: c.ID, title: c.Title})
	}
	return out
}
