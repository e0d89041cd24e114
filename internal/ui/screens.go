package ui

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/paginator"

	"github.com/davess/kview/internal/kube"
	"github.com/davess/kview/internal/state"
	"github.com/davess/kview/internal/table"
)

// Table identities used to key persisted column visibility.
const (
	workloadsTableID = "workloads"
	eventsTableID    = "events"
)

// eventOverscan is the extra rows materialized beyond the events
// viewport to avoid blank flashes while scrolling fast.
const eventOverscan = 5

var pageSizes = []int{25, 50, 100}

// workloadColumns declares the workloads table. The ready column sorts
// by ready/desired ratio alone; equal ratios keep their incoming order.
func workloadColumns() []table.Column[kube.Workload] {
	return []table.Column[kube.Workload]{
		{ID: "name", Title: "Name", Sortable: true,
			Value: func(w kube.Workload) table.Value { return table.String(w.Name) }},
		{ID: "namespace", Title: "Namespace", Sortable: true, Filterable: true,
			Value: func(w kube.Workload) table.Value { return table.String(w.Namespace) }},
		{ID: "kind", Title: "Kind", Sortable: true, Filterable: true,
			Value: func(w kube.Workload) table.Value { return table.String(w.Kind) }},
		{ID: "ready", Title: "Ready", Sortable: true,
			Value: func(w kube.Workload) table.Value { return table.String(w.ReadyLabel()) },
			Compare: func(a, b kube.Workload) int {
				ra, rb := a.ReadyRatio(), b.ReadyRatio()
				switch {
				case ra < rb:
					return -1
				case ra > rb:
					return 1
				default:
					return 0
				}
			}},
		{ID: "status", Title: "Status", Sortable: true, Filterable: true,
			Value: func(w kube.Workload) table.Value { return table.String(w.Status) }},
		{ID: "restarts", Title: "Restarts", Sortable: true,
			Value: func(w kube.Workload) table.Value { return table.Int(w.Restarts) }},
		{ID: "node", Title: "Node", Filterable: true,
			Value: func(w kube.Workload) table.Value { return table.String(w.Node) }},
		{ID: "age", Title: "Age", Sortable: true,
			Value: func(w kube.Workload) table.Value {
				t := w.ParsedCreatedAt()
				if t.IsZero() {
					return table.Unknown()
				}
				return table.Number(float64(t.Unix()))
			}},
	}
}

// eventColumns declares the events table.
func eventColumns() []table.Column[kube.Event] {
	return []table.Column[kube.Event]{
		{ID: "lastseen", Title: "Last Seen", Sortable: true,
			Value: func(e kube.Event) table.Value {
				t := e.ParsedLastSeen()
				if t.IsZero() {
					return table.Unknown()
				}
				return table.Number(float64(t.Unix()))
			}},
		{ID: "type", Title: "Type", Sortable: true, Filterable: true,
			Value: func(e kube.Event) table.Value { return table.String(e.Type) }},
		{ID: "reason", Title: "Reason", Sortable: true, Filterable: true,
			Value: func(e kube.Event) table.Value { return table.String(e.Reason) }},
		{ID: "object", Title: "Object", Sortable: true,
			Value: func(e kube.Event) table.Value { return table.String(e.Object) }},
		{ID: "namespace", Title: "Namespace", Filterable: true,
			Value: func(e kube.Event) table.Value { return table.String(e.Namespace) }},
		{ID: "count", Title: "Count", Sortable: true,
			Value: func(e kube.Event) table.Value { return table.Int(e.Count) }},
		{ID: "message", Title: "Message",
			Value: func(e kube.Event) table.Value { return table.String(e.Message) }},
	}
}

func columnIDs[T any](cols []table.Column[T]) []string {
	ids := make([]string, len(cols))
	for i, c := range cols {
		ids[i] = c.ID
	}
	return ids
}

// workloadScreen is the paginated workloads list.
type workloadScreen struct {
	cols     []table.Column[kube.Workload]
	vis      *table.Visibility
	filters  table.FilterState
	sort     table.SortState
	searchRe *regexp.Regexp
	pattern  string

	res       table.Result[kube.Workload]
	page      table.Page[kube.Workload]
	pageIndex int
	pageSize  int
	pager     paginator.Model
	selected  string // record key
	cursor    int    // index within the current page
}

func newWorkloadScreen(store table.VisibilityStore, pageSize int) *workloadScreen {
	cols := workloadColumns()
	if pageSize < 1 {
		pageSize = pageSizes[0]
	}
	pager := paginator.New()
	pager.Type = paginator.Dots
	return &workloadScreen{
		cols:     cols,
		vis:      table.NewVisibility(store, workloadsTableID, columnIDs(cols), []string{"name"}),
		filters:  table.NewFilterState(),
		sort:     table.SortState{Key: "name", Order: table.Ascending},
		pageSize: pageSize,
		pager:    pager,
	}
}

// recompute reruns the engine over the snapshot and re-clamps the page,
// keeping the selected record when it is still present.
func (s *workloadScreen) recompute(snap state.Snapshot) {
	var match func(kube.Workload) bool
	if re := s.searchRe; re != nil {
		match = func(w kube.Workload) bool { return re.MatchString(workloadHaystack(w)) }
	}
	s.res = table.Apply(snap.Workloads, s.cols, s.filters, s.sort, match)

	// Re-locate the selected record in the full result before
	// paginating, so a refresh that shifts it across a page boundary
	// follows it instead of snapping back to row 0.
	if s.selected != "" {
		for i, w := range s.res.Rows {
			if w.Key() == s.selected {
				s.pageIndex = i / s.pageSize
				break
			}
		}
	}

	s.page = table.Paginate(s.res.Rows, s.pageSize, s.pageIndex)
	s.pageIndex = s.page.Index

	s.pager.PerPage = s.pageSize
	s.pager.SetTotalPages(len(s.res.Rows))
	s.pager.Page = s.pageIndex

	s.cursor = 0
	for i, w := range s.page.Rows {
		if w.Key() == s.selected {
			s.cursor = i
			break
		}
	}
	s.rememberSelection()
}

func (s *workloadScreen) rememberSelection() {
	if s.cursor >= 0 && s.cursor < len(s.page.Rows) {
		s.selected = s.page.Rows[s.cursor].Key()
	} else {
		s.selected = ""
	}
}

func (s *workloadScreen) moveCursor(delta int) {
	n := len(s.page.Rows)
	if n == 0 {
		return
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= n {
		s.cursor = n - 1
	}
	s.rememberSelection()
}

func (s *workloadScreen) setPage(snap state.Snapshot, index int) {
	s.pageIndex = index
	s.selected = ""
	s.recompute(snap)
}

// cyclePageSize advances to the next preset size and resets to page 0.
// Like setPage, the reset wins over selection following.
func (s *workloadScreen) cyclePageSize(snap state.Snapshot) {
	for i, size := range pageSizes {
		if size == s.pageSize {
			s.pageSize = pageSizes[(i+1)%len(pageSizes)]
			s.pageIndex = 0
			s.selected = ""
			s.recompute(snap)
			return
		}
	}
	s.pageSize = pageSizes[0]
	s.pageIndex = 0
	s.selected = ""
	s.recompute(snap)
}

func (s *workloadScreen) selectedRow() *kube.Workload {
	if s.cursor < 0 || s.cursor >= len(s.page.Rows) {
		return nil
	}
	w := s.page.Rows[s.cursor]
	return &w
}

func workloadHaystack(w kube.Workload) string {
	return strings.Join([]string{w.Name, w.Namespace, w.Kind, w.Status, w.Node}, " ")
}

// eventScreen is the virtualized events list.
type eventScreen struct {
	cols     []table.Column[kube.Event]
	vis      *table.Visibility
	filters  table.FilterState
	sort     table.SortState
	searchRe *regexp.Regexp
	pattern  string

	res      table.Result[kube.Event]
	window   table.Window
	winRows  []kube.Event // materialized window slice of res.Rows
	scroll   int          // scroll offset in rows
	viewRows int          // viewport height in rows
	selected string
	cursor   int // index within res.Rows
}

func newEventScreen(store table.VisibilityStore) *eventScreen {
	cols := eventColumns()
	return &eventScreen{
		cols:    cols,
		vis:     table.NewVisibility(store, eventsTableID, columnIDs(cols), []string{"object"}),
		filters: table.NewFilterState(),
		sort:    table.SortState{Key: "lastseen", Order: table.Descending},
	}
}

// recompute reruns the engine and re-clamps scroll and window against
// the possibly-shrunken result.
func (s *eventScreen) recompute(snap state.Snapshot) {
	var match func(kube.Event) bool
	if re := s.searchRe; re != nil {
		match = func(e kube.Event) bool { return re.MatchString(eventHaystack(e)) }
	}
	s.res = table.Apply(snap.Events, s.cols, s.filters, s.sort, match)

	s.cursor = 0
	for i, e := range s.res.Rows {
		if e.Key() == s.selected {
			s.cursor = i
			break
		}
	}
	s.rememberSelection()
	s.clampScroll()
}

func (s *eventScreen) rememberSelection() {
	if s.cursor >= 0 && s.cursor < len(s.res.Rows) {
		s.selected = s.res.Rows[s.cursor].Key()
	} else {
		s.selected = ""
	}
}

// clampScroll keeps the cursor inside the viewport and recomputes the
// materialized window. Row height is one terminal row.
func (s *eventScreen) clampScroll() {
	total := len(s.res.Rows)
	if s.cursor >= total {
		s.cursor = total - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	rows := s.viewRows
	if rows < 1 {
		rows = 1
	}
	if s.cursor < s.scroll {
		s.scroll = s.cursor
	}
	if s.cursor >= s.scroll+rows {
		s.scroll = s.cursor - rows + 1
	}
	maxScroll := table.ContentHeight(total, 1) - rows
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
	s.window = table.ComputeWindow(total, s.scroll, rows, 1, eventOverscan)
	s.winRows = s.res.Rows[s.window.Start:s.window.End]
}

// viewportRows returns the visible slice of the materialized window
// along with the absolute index of its first row.
func (s *eventScreen) viewportRows() ([]kube.Event, int) {
	first := s.scroll - s.window.Start
	if first < 0 {
		first = 0
	}
	last := first + s.viewRows
	if last > len(s.winRows) {
		last = len(s.winRows)
	}
	if first > last {
		first = last
	}
	return s.winRows[first:last], s.window.Start + first
}

func (s *eventScreen) moveCursor(delta int) {
	if len(s.res.Rows) == 0 {
		return
	}
	s.cursor += delta
	s.clampScroll()
	s.rememberSelection()
}

func (s *eventScreen) selectedRow() *kube.Event {
	if s.cursor < 0 || s.cursor >= len(s.res.Rows) {
		return nil
	}
	e := s.res.Rows[s.cursor]
	return &e
}

func eventHaystack(e kube.Event) string {
	return strings.Join([]string{e.Namespace, e.Type, e.Reason, e.Object, e.Message}, " ")
}

// formatAge renders a duration since ts the way kubectl does.
func formatAge(now time.Time, ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	d := now.Sub(ts)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return strconv.Itoa(int(d.Seconds())) + "s"
	case d < time.Hour:
		return strconv.Itoa(int(d.Minutes())) + "m"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d.Hours())) + "h"
	default:
		return strconv.Itoa(int(d.Hours()/24)) + "d"
	}
}
