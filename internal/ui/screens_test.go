package ui

import (
	"fmt"
	"testing"
	"time"

	"github.com/davess/kview/internal/kube"
	"github.com/davess/kview/internal/state"
	"github.com/davess/kview/internal/table"
)

func workloadSnapshot(n int) state.Snapshot {
	items := make([]kube.Workload, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, kube.Workload{
			Name:      fmt.Sprintf("app-%03d", i),
			Namespace: "default",
			Kind:      "Deployment",
			Status:    "Healthy",
			Ready:     1,
			Desired:   1,
		})
	}
	return state.Snapshot{Workloads: items}
}

func eventSnapshot(n int) state.Snapshot {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	items := make([]kube.Event, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, kube.Event{
			Namespace: "default",
			Type:      "Normal",
			Reason:    "Scheduled",
			Object:    fmt.Sprintf("pod/app-%03d", i),
			Message:   "assigned",
			Count:     1,
			LastSeen:  base.Add(time.Duration(i) * time.Minute).Format(time.RFC3339),
		})
	}
	return state.Snapshot{Events: items}
}

func TestWorkloadScreenPagination(t *testing.T) {
	s := newWorkloadScreen(nil, 25)
	s.recompute(workloadSnapshot(60))

	if s.page.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", s.page.TotalPages)
	}
	if len(s.page.Rows) != 25 {
		t.Fatalf("expected 25 rows on first page, got %d", len(s.page.Rows))
	}

	s.setPage(workloadSnapshot(60), 2)
	if len(s.page.Rows) != 10 {
		t.Fatalf("expected 10 rows on last page, got %d", len(s.page.Rows))
	}
	if s.page.RangeLabel != "Showing 51–60 of 60" {
		t.Fatalf("unexpected range label %q", s.page.RangeLabel)
	}
}

func TestWorkloadScreenPageClampsWhenDataShrinks(t *testing.T) {
	s := newWorkloadScreen(nil, 10)
	s.recompute(workloadSnapshot(25))
	s.setPage(workloadSnapshot(25), 2)
	if s.pageIndex != 2 {
		t.Fatalf("expected page 2, got %d", s.pageIndex)
	}

	s.recompute(workloadSnapshot(5))
	if s.pageIndex != 0 {
		t.Fatalf("expected clamp to page 0, got %d", s.pageIndex)
	}
	if len(s.page.Rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(s.page.Rows))
	}
}

func TestWorkloadScreenKeepsSelectionAcrossRefresh(t *testing.T) {
	snap := workloadSnapshot(10)
	s := newWorkloadScreen(nil, 25)
	s.recompute(snap)
	s.moveCursor(4)
	want := s.page.Rows[s.cursor].Key()

	// Prepend a row so every index shifts by one.
	extra := kube.Workload{Name: "aaa-new", Namespace: "default", Kind: "Deployment", Status: "Healthy"}
	snap.Workloads = append([]kube.Workload{extra}, snap.Workloads...)
	s.recompute(snap)

	if got := s.page.Rows[s.cursor].Key(); got != want {
		t.Fatalf("selection drifted: got %q want %q", got, want)
	}
}

func TestWorkloadScreenFollowsSelectionAcrossPages(t *testing.T) {
	snap := workloadSnapshot(30)
	s := newWorkloadScreen(nil, 10)
	s.recompute(snap)
	s.moveCursor(5)
	want := s.selected

	// Prepend rows that sort before everything else so the selected
	// record lands on the next page.
	for i := 0; i < 7; i++ {
		extra := kube.Workload{Name: fmt.Sprintf("aaa-%d", i), Namespace: "default", Kind: "Deployment", Status: "Healthy"}
		snap.Workloads = append([]kube.Workload{extra}, snap.Workloads...)
	}
	s.recompute(snap)

	if s.pageIndex != 1 {
		t.Fatalf("expected to follow selection to page 1, got page %d", s.pageIndex)
	}
	row := s.selectedRow()
	if row == nil || row.Key() != want {
		t.Fatalf("selection lost across page boundary: got %v want %q", row, want)
	}
}

func TestWorkloadScreenCyclePageSizeResetsPage(t *testing.T) {
	snap := workloadSnapshot(120)
	s := newWorkloadScreen(nil, 25)
	s.recompute(snap)
	s.setPage(snap, 3)

	s.cyclePageSize(snap)
	if s.pageSize != 50 {
		t.Fatalf("expected page size 50, got %d", s.pageSize)
	}
	if s.pageIndex != 0 {
		t.Fatalf("expected reset to page 0, got %d", s.pageIndex)
	}

	s.cyclePageSize(snap)
	s.cyclePageSize(snap)
	if s.pageSize != 25 {
		t.Fatalf("expected cycle back to 25, got %d", s.pageSize)
	}
}

func TestEventScreenWindowFollowsCursor(t *testing.T) {
	s := newEventScreen(nil)
	s.viewRows = 10
	s.sort = table.SortState{Key: "lastseen", Order: table.Ascending}
	s.recompute(eventSnapshot(200))

	s.moveCursor(50)
	if s.cursor != 50 {
		t.Fatalf("expected cursor 50, got %d", s.cursor)
	}
	if s.cursor < s.scroll || s.cursor >= s.scroll+s.viewRows {
		t.Fatalf("cursor %d outside viewport [%d,%d)", s.cursor, s.scroll, s.scroll+s.viewRows)
	}
	if s.window.Start > s.scroll || s.window.End < s.scroll+s.viewRows {
		t.Fatalf("window [%d,%d) does not cover viewport at %d", s.window.Start, s.window.End, s.scroll)
	}
	if s.window.Start < 0 || s.window.End > len(s.res.Rows) {
		t.Fatalf("window [%d,%d) out of bounds for %d rows", s.window.Start, s.window.End, len(s.res.Rows))
	}
}

func TestEventScreenMaterializesWindow(t *testing.T) {
	s := newEventScreen(nil)
	s.viewRows = 10
	s.recompute(eventSnapshot(200))
	s.moveCursor(50)

	if len(s.winRows) != s.window.Len() {
		t.Fatalf("materialized %d rows, window is [%d,%d)", len(s.winRows), s.window.Start, s.window.End)
	}
	for i, e := range s.winRows {
		if want := s.res.Rows[s.window.Start+i]; e.Key() != want.Key() {
			t.Fatalf("window row %d = %q, want %q", i, e.Key(), want.Key())
		}
	}

	visible, first := s.viewportRows()
	if first != s.scroll {
		t.Fatalf("viewport starts at %d, scroll is %d", first, s.scroll)
	}
	if len(visible) != s.viewRows {
		t.Fatalf("viewport has %d rows, want %d", len(visible), s.viewRows)
	}
	if got := visible[s.cursor-first]; got.Key() != s.res.Rows[s.cursor].Key() {
		t.Fatalf("cursor row %q does not match result row %q", got.Key(), s.res.Rows[s.cursor].Key())
	}
}

func TestEventScreenViewportEmptyWhenNoRows(t *testing.T) {
	s := newEventScreen(nil)
	s.viewRows = 10
	s.recompute(state.Snapshot{})

	visible, first := s.viewportRows()
	if len(visible) != 0 || first != 0 {
		t.Fatalf("expected empty viewport, got %d rows at %d", len(visible), first)
	}
}

func TestEventScreenScrollClampsWhenFiltered(t *testing.T) {
	s := newEventScreen(nil)
	s.viewRows = 10
	s.recompute(eventSnapshot(200))
	s.moveCursor(150)

	s.filters.Set("type", []table.Value{table.String("Warning")})
	s.recompute(eventSnapshot(200))

	if len(s.res.Rows) != 0 {
		t.Fatalf("expected no Warning events, got %d", len(s.res.Rows))
	}
	if s.scroll != 0 || s.window.Len() != 0 {
		t.Fatalf("expected zeroed scroll and window, got scroll=%d window=[%d,%d)", s.scroll, s.window.Start, s.window.End)
	}
}

func TestEventScreenDefaultSortNewestFirst(t *testing.T) {
	s := newEventScreen(nil)
	s.viewRows = 10
	s.recompute(eventSnapshot(5))

	if s.res.Rows[0].Object != "pod/app-004" {
		t.Fatalf("expected newest event first, got %q", s.res.Rows[0].Object)
	}
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "10s"},
		{90 * time.Second, "1m"},
		{2 * time.Hour, "2h"},
		{49 * time.Hour, "2d"},
	}
	for _, tc := range cases {
		if got := formatAge(now, now.Add(-tc.ago)); got != tc.want {
			t.Fatalf("formatAge(%v) = %q, want %q", tc.ago, got, tc.want)
		}
	}
	if got := formatAge(now, time.Time{}); got != "-" {
		t.Fatalf("expected placeholder for zero time, got %q", got)
	}
}

func TestCompileSearch(t *testing.T) {
	if compileSearch("") != nil {
		t.Fatal("empty pattern should compile to nil")
	}
	if compileSearch("[unclosed") != nil {
		t.Fatal("invalid pattern should compile to nil")
	}
	re := compileSearch("NGINX")
	if re == nil {
		t.Fatal("expected a compiled regexp")
	}
	if !re.MatchString("pod/nginx-abc") {
		t.Fatal("search should be case-insensitive")
	}
}

func TestApplySortKey(t *testing.T) {
	s := table.SortState{Key: "name", Order: table.Ascending}

	applySortKey(&s, "status")
	if s.Key != "status" || s.Order != table.Ascending {
		t.Fatalf("expected ascending status sort, got %+v", s)
	}

	applySortKey(&s, "status")
	if s.Order != table.Descending {
		t.Fatalf("expected repeat to reverse, got %+v", s)
	}

	applySortKey(&s, "")
	if s.Key != "status" || s.Order != table.Descending {
		t.Fatalf("empty key should be a no-op, got %+v", s)
	}
}

func TestVisibleSortableID(t *testing.T) {
	cols := workloadColumns()
	vis := table.NewVisibility(nil, "t", columnIDs(cols), []string{"name"})

	if got := visibleSortableID(cols, vis, 0); got != "name" {
		t.Fatalf("expected name, got %q", got)
	}
	// node is visible but not sortable.
	if got := visibleSortableID(cols, vis, 6); got != "" {
		t.Fatalf("expected unsortable column to yield empty id, got %q", got)
	}
	if got := visibleSortableID(cols, vis, 99); got != "" {
		t.Fatalf("expected out-of-range index to yield empty id, got %q", got)
	}

	// Hiding namespace shifts kind into slot 1.
	if err := vis.SetVisible("namespace", false); err != nil {
		t.Fatalf("SetVisible: %v", err)
	}
	if got := visibleSortableID(cols, vis, 1); got != "kind" {
		t.Fatalf("expected kind after hiding namespace, got %q", got)
	}
}
