package table

import "fmt"

// Page is one fixed-size slice of a filtered result. Index is the
// clamped page index; when it differs from the requested index the
// caller must adopt it so a stale out-of-range page never stays
// visible after the result shrinks.
type Page[T any] struct {
	Rows       []T
	Index      int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	RangeLabel string
}

// Paginate slices rows into pages of pageSize and returns the page at
// pageIndex, clamped into range. An empty result yields a single empty
// page. A non-positive pageSize is normalized to 1.
func Paginate[T any](rows []T, pageSize, pageIndex int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(rows)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageIndex > totalPages-1 {
		pageIndex = totalPages - 1
	}

	start := pageIndex * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	label := "No items"
	if total > 0 {
		label = fmt.Sprintf("Showing %d–%d of %d", start+1, end, total)
	}

	return Page[T]{
		Rows:       rows[start:end],
		Index:      pageIndex,
		TotalPages: totalPages,
		HasPrev:    pageIndex > 0,
		HasNext:    pageIndex < totalPages-1,
		RangeLabel: label,
	}
}
