package table

import "sort"

// SortOrder selects ascending or descending output.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// SortState names the active sort column, if any. At most one column
// sorts at a time; ties keep their pre-sort relative order.
type SortState struct {
	Key   string
	Order SortOrder
}

// FilterState maps column IDs to the set of accepted value keys.
// A missing or empty entry means "no restriction" for that column.
type FilterState map[string]map[string]struct{}

// NewFilterState returns an empty filter state.
func NewFilterState() FilterState {
	return make(FilterState)
}

// Set replaces the accepted values for a column. A nil or empty values
// slice clears the column's filter; an empty set never means "exclude
// everything".
func (f FilterState) Set(columnID string, values []Value) {
	if len(values) == 0 {
		delete(f, columnID)
		return
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v.Key()] = struct{}{}
	}
	f[columnID] = set
}

// Toggle adds the value to the column's accepted set, or removes it if
// already present. Removing the last value clears the column's filter.
func (f FilterState) Toggle(columnID string, v Value) {
	set := f[columnID]
	key := v.Key()
	if _, ok := set[key]; ok {
		delete(set, key)
		if len(set) == 0 {
			delete(f, columnID)
		}
		return
	}
	if set == nil {
		set = make(map[string]struct{})
		f[columnID] = set
	}
	set[key] = struct{}{}
}

// Has reports whether the value is in the column's accepted set.
func (f FilterState) Has(columnID string, v Value) bool {
	_, ok := f[columnID][v.Key()]
	return ok
}

// Clear removes every column filter. Sort and search state are owned by
// the caller and are untouched.
func (f FilterState) Clear() {
	for id := range f {
		delete(f, id)
	}
}

// Active reports whether any column has a non-empty accepted set.
func (f FilterState) Active() bool {
	for _, set := range f {
		if len(set) > 0 {
			return true
		}
	}
	return false
}

// FacetValue is one distinct cell value and how many records carry it.
type FacetValue struct {
	Value Value
	Count int
}

// Facet lists a filterable column's distinct values in default value
// order, with per-value counts. Counts are computed against the
// collection filtered by every other column's filter but not the
// column's own, so toggling a value never hides its siblings.
type Facet []FacetValue

// Count returns the count for the given value, or zero when absent.
func (f Facet) Count(v Value) int {
	key := v.Key()
	for _, fv := range f {
		if fv.Value.Key() == key {
			return fv.Count
		}
	}
	return 0
}

// Result is the output of one Apply pass.
type Result[T any] struct {
	Rows             []T
	Facets           map[string]Facet
	HasActiveFilters bool
}

// Apply runs the full pipeline over a record collection: the optional
// search predicate first, then per-column facets (cross-filtered), then
// all column filters, then a stable sort. The input slice is never
// mutated; calling Apply with identical inputs yields identical output.
// Filter or sort references to columns not in the descriptor list are
// ignored.
func Apply[T any](records []T, columns []Column[T], filters FilterState, sortState SortState, match func(T) bool) Result[T] {
	searched := records
	if match != nil {
		searched = make([]T, 0, len(records))
		for _, rec := range records {
			if match(rec) {
				searched = append(searched, rec)
			}
		}
	}

	facets := make(map[string]Facet)
	for _, col := range columns {
		if !col.Filterable {
			continue
		}
		facets[col.ID] = computeFacet(searched, columns, filters, col)
	}

	rows := filterRows(searched, columns, filters, "")
	sortRows(rows, columns, sortState)

	return Result[T]{
		Rows:             rows,
		Facets:           facets,
		HasActiveFilters: filters.Active(),
	}
}

// computeFacet tallies distinct values for one column against the subset
// that passes every other active column filter.
func computeFacet[T any](records []T, columns []Column[T], filters FilterState, col Column[T]) Facet {
	subset := filterRows(records, columns, filters, col.ID)

	counts := make(map[string]int)
	seen := make(map[string]Value)
	for _, rec := range subset {
		v := col.CellValue(rec)
		key := v.Key()
		counts[key]++
		if _, ok := seen[key]; !ok {
			seen[key] = v
		}
	}

	facet := make(Facet, 0, len(seen))
	for key, v := range seen {
		facet = append(facet, FacetValue{Value: v, Count: counts[key]})
	}
	sort.SliceStable(facet, func(i, j int) bool {
		return CompareValues(facet[i].Value, facet[j].Value) < 0
	})
	return facet
}

// filterRows returns the records accepted by every active column filter,
// skipping the column named by excludeID. The result is always a fresh
// slice so later sorting cannot disturb the caller's collection.
func filterRows[T any](records []T, columns []Column[T], filters FilterState, excludeID string) []T {
	active := make([]Column[T], 0, len(columns))
	for _, col := range columns {
		if !col.Filterable || col.ID == excludeID {
			continue
		}
		if len(filters[col.ID]) == 0 {
			continue
		}
		active = append(active, col)
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		keep := true
		for _, col := range active {
			if _, ok := filters[col.ID][col.CellValue(rec).Key()]; !ok {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, rec)
		}
	}
	return out
}

// sortRows stable-sorts rows in place. Descending output is the exact
// reverse of ascending output, duplicates included, so repeated clicks
// on a sort header flip the order predictably.
func sortRows[T any](rows []T, columns []Column[T], sortState SortState) {
	if sortState.Key == "" {
		return
	}
	var col Column[T]
	found := false
	for _, c := range columns {
		if c.ID == sortState.Key && c.Sortable {
			col = c
			found = true
			break
		}
	}
	if !found {
		return
	}

	cmp := col.Compare
	if cmp == nil {
		cmp = func(a, b T) int {
			return CompareValues(col.CellValue(a), col.CellValue(b))
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return cmp(rows[i], rows[j]) < 0
	})
	if sortState.Order == Descending {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
}
