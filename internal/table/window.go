package table

// Window is the half-open row range [Start, End) that a virtualized
// table should materialize for rendering.
type Window struct {
	Start int
	End   int
}

// Len returns the number of rows in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// ComputeWindow derives the visible row range from scroll position and
// row geometry, padded by overscanRows on both sides and clamped so
// 0 <= Start <= End <= totalRows holds for any input, including scroll
// offsets far beyond the content height after the collection shrinks.
func ComputeWindow(totalRows, scrollOffset, viewportHeight, rowHeight, overscanRows int) Window {
	if rowHeight < 1 {
		rowHeight = 1
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	if viewportHeight < 0 {
		viewportHeight = 0
	}
	if overscanRows < 0 {
		overscanRows = 0
	}

	start := scrollOffset/rowHeight - overscanRows
	end := (scrollOffset+viewportHeight+rowHeight-1)/rowHeight + overscanRows

	if start < 0 {
		start = 0
	}
	if end > totalRows {
		end = totalRows
	}
	if start > end {
		start = end
	}
	return Window{Start: start, End: end}
}

// ContentHeight sizes the scroll spacer behind a virtualized table.
func ContentHeight(totalRows, rowHeight int) int {
	if totalRows < 0 {
		totalRows = 0
	}
	if rowHeight < 1 {
		rowHeight = 1
	}
	return totalRows * rowHeight
}
