package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/davess/kview/internal/kube"
	"github.com/davess/kview/internal/table"
)

var workloadWidths = map[string]int{
	"name":      32,
	"namespace": 16,
	"kind":      12,
	"ready":     7,
	"status":    12,
	"restarts":  8,
	"node":      18,
	"age":       6,
}

var eventWidths = map[string]int{
	"lastseen":  8,
	"type":      8,
	"reason":    18,
	"object":    34,
	"namespace": 16,
	"count":     5,
	"message":   48,
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var body string
	switch m.mode {
	case modeHelp:
		body = m.viewHelp()
	case modeDetail:
		body = m.styles.Overlay.Render(m.detail.View())
	case modeFilter:
		body = m.viewFilterOverlay()
	case modeColumns:
		body = m.viewColumnsOverlay()
	default:
		body = m.viewBody()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		body,
		m.viewFooter(),
	)
}

func (m Model) viewHeader() string {
	logo := m.styles.Logo.Render(" kview ")

	tabs := []string{
		m.tabLabel(ViewWorkloads, "Workloads"),
		m.tabLabel(ViewEvents, "Events"),
	}

	status := ""
	switch {
	case m.snapshot.IsOffline():
		status = m.styles.DangerText.Render("● offline")
	case m.snapshot.LastError != nil:
		status = m.styles.WarningText.Render("● " + truncate(m.snapshot.LastError.Error(), 40))
	case !m.snapshot.LastUpdated.IsZero():
		status = m.styles.MutedText.Render("updated " + m.snapshot.LastUpdated.Local().Format("15:04:05"))
	}

	left := logo + " " + strings.Join(tabs, " ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(status) - 1
	if gap < 1 {
		gap = 1
	}
	return m.styles.Header.Render(left + strings.Repeat(" ", gap) + status)
}

func (m Model) tabLabel(v view, label string) string {
	if m.currentView == v {
		return m.styles.AccentText.Render("[" + label + "]")
	}
	return m.styles.MutedText.Render(" " + label + " ")
}

func (m Model) viewBody() string {
	if m.currentView == ViewWorkloads {
		return m.viewWorkloads()
	}
	return m.viewEvents()
}

func (m Model) viewWorkloads() string {
	s := m.workloads
	ids := s.vis.VisibleIDs()

	lines := make([]string, 0, len(s.page.Rows)+1)
	lines = append(lines, m.styles.TableHead.Render(m.headerRow(ids, workloadWidths, workloadTitles(s.cols), s.sort)))

	now := time.Now()
	for i, w := range s.page.Rows {
		cells := make([]string, 0, len(ids))
		for _, id := range ids {
			cells = append(cells, m.workloadCell(w, id, now))
		}
		row := joinCells(cells)
		if i == s.cursor {
			row = m.styles.Selected.Render(row)
		}
		lines = append(lines, row)
	}
	if len(s.page.Rows) == 0 {
		lines = append(lines, m.styles.FaintText.Render(m.emptyMessage()))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewEvents() string {
	s := m.events
	ids := s.vis.VisibleIDs()

	visible, firstIndex := s.viewportRows()

	lines := make([]string, 0, len(visible)+1)
	lines = append(lines, m.styles.TableHead.Render(m.headerRow(ids, eventWidths, eventTitles(s.cols), s.sort)))

	now := time.Now()
	for off, e := range visible {
		i := firstIndex + off
		cells := make([]string, 0, len(ids))
		for _, id := range ids {
			cells = append(cells, m.eventCell(e, id, now))
		}
		row := joinCells(cells)
		if i == s.cursor {
			row = m.styles.Selected.Render(row)
		}
		lines = append(lines, row)
	}
	if len(s.res.Rows) == 0 {
		lines = append(lines, m.styles.FaintText.Render(m.emptyMessage()))
	}
	return strings.Join(lines, "\n")
}

// emptyMessage distinguishes a truly empty collection from one filtered
// down to nothing.
func (m Model) emptyMessage() string {
	if m.activeFilters().Active() || m.activePattern() != "" {
		return "No rows match the current filters. Press C to clear."
	}
	return "Nothing here yet."
}

func (m Model) headerRow(ids []string, widths map[string]int, titles map[string]string, sort table.SortState) string {
	cells := make([]string, 0, len(ids))
	for _, id := range ids {
		title := titles[id]
		if id == sort.Key {
			if sort.Order == table.Ascending {
				title += " ↑"
			} else {
				title += " ↓"
			}
		}
		cells = append(cells, pad(title, widths[id]))
	}
	return joinCells(cells)
}

func workloadTitles(cols []table.Column[kube.Workload]) map[string]string {
	out := make(map[string]string, len(cols))
	for _, c := range cols {
		out[c.ID] = c.Title
	}
	return out
}

func eventTitles(cols []table.Column[kube.Event]) map[string]string {
	out := make(map[string]string, len(cols))
	for _, c := range cols {
		out[c.ID] = c.Title
	}
	return out
}

func (m Model) workloadCell(w kube.Workload, id string, now time.Time) string {
	width := workloadWidths[id]
	switch id {
	case "name":
		return pad(w.Name, width)
	case "namespace":
		return pad(w.Namespace, width)
	case "kind":
		return pad(w.Kind, width)
	case "ready":
		return pad(w.ReadyLabel(), width)
	case "status":
		cell := pad(w.Status, width)
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.StatusColor(w.Status))).Render(cell)
	case "restarts":
		cell := pad(strconv.Itoa(w.Restarts), width)
		if w.Restarts > 0 {
			return m.styles.WarningText.Render(cell)
		}
		return cell
	case "node":
		return pad(w.Node, width)
	case "age":
		created := w.ParsedCreatedAt()
		if created.IsZero() {
			return pad("-", width)
		}
		return pad(formatAge(now, created), width)
	}
	return pad("", width)
}

func (m Model) eventCell(e kube.Event, id string, now time.Time) string {
	width := eventWidths[id]
	switch id {
	case "lastseen":
		seen := e.ParsedLastSeen()
		if seen.IsZero() {
			return pad("-", width)
		}
		return pad(formatAge(now, seen), width)
	case "type":
		cell := pad(e.Type, width)
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.StatusColor(e.Type))).Render(cell)
	case "reason":
		return pad(e.Reason, width)
	case "object":
		return pad(e.Object, width)
	case "namespace":
		return pad(e.Namespace, width)
	case "count":
		return pad(strconv.Itoa(e.Count), width)
	case "message":
		return pad(e.Message, width)
	}
	return pad("", width)
}

func (m Model) viewFilterOverlay() string {
	ids := m.filterableColumns()
	if len(ids) == 0 {
		return m.styles.Overlay.Render(m.styles.MutedText.Render("No filterable columns."))
	}
	col := m.filterCol
	if col >= len(ids) {
		col = len(ids) - 1
	}

	tabs := make([]string, 0, len(ids))
	for i, c := range ids {
		label := c.title
		if m.activeFilters().Active() && len(m.activeFilters()[c.id]) > 0 {
			label += "*"
		}
		if i == col {
			tabs = append(tabs, m.styles.AccentText.Render("["+label+"]"))
		} else {
			tabs = append(tabs, m.styles.MutedText.Render(" "+label+" "))
		}
	}

	facet := m.activeFacets()[ids[col].id]
	filters := m.activeFilters()

	lines := make([]string, 0, len(facet)+3)
	lines = append(lines, strings.Join(tabs, " "), "")
	for i, fv := range facet {
		mark := "[ ]"
		if filters.Has(ids[col].id, fv.Value) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", mark, pad(fv.Value.Label(), 28), m.styles.MutedText.Render(strconv.Itoa(fv.Count)))
		if i == m.filterVal {
			line = m.styles.Selected.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", m.styles.FaintText.Render("space toggle · x clear column · C clear all · esc close"))
	return m.styles.Overlay.Render(strings.Join(lines, "\n"))
}

func (m Model) viewColumnsOverlay() string {
	cols := m.columnList()
	vis := m.activeVisibility()

	lines := make([]string, 0, len(cols)+3)
	lines = append(lines, m.styles.AccentText.Render("Columns"), "")
	for i, c := range cols {
		mark := "[ ]"
		if vis.IsVisible(c.id) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, c.title)
		if i == m.columnCursor {
			line = m.styles.Selected.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", m.styles.FaintText.Render("space toggle · esc close"))
	return m.styles.Overlay.Render(strings.Join(lines, "\n"))
}

func (m Model) viewHelp() string {
	m.help.ShowAll = true
	return m.styles.Overlay.Render(m.help.View(m.keys))
}

func (m Model) viewFooter() string {
	var parts []string

	if m.mode == modeSearch {
		parts = append(parts, m.searchInput.View())
	} else if p := m.activePattern(); p != "" {
		parts = append(parts, m.styles.AccentText.Render("/"+p))
	}
	if m.activeFilters().Active() {
		parts = append(parts, m.styles.AccentText.Render("filtered"))
	}

	if m.currentView == ViewWorkloads {
		parts = append(parts, m.styles.MutedText.Render(m.workloads.page.RangeLabel))
		parts = append(parts, m.workloads.pager.View())
	} else {
		total := len(m.events.res.Rows)
		if total > 0 {
			parts = append(parts, m.styles.MutedText.Render(fmt.Sprintf("%d/%d", m.events.cursor+1, total)))
		}
	}

	if m.mode == modeList {
		parts = append(parts, m.styles.FaintText.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	}
	return m.styles.Footer.Render(strings.Join(parts, "  "))
}
