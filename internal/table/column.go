package table

import (
	"strconv"
	"strings"
)

// ValueKind discriminates the kinds of comparable cell values.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindUnknown
)

// Value is a single comparable cell value extracted from a record.
// Values are either strings, numbers, or the Unknown sentinel used when
// an accessor fails or a field is absent. Unknown values sort after
// everything else and group into one facet bucket.
type Value struct {
	kind ValueKind
	str  string
	num  float64
}

// String returns a string-kinded value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a number-kinded value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Int returns a number-kinded value from an int.
func Int(n int) Value {
	return Number(float64(n))
}

// Unknown returns the sentinel value for missing or malformed cells.
func Unknown() Value {
	return Value{kind: KindUnknown}
}

// Kind reports the value's kind.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Label returns the display form of the value.
func (v Value) Label() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return "unknown"
	}
}

// Key returns the identity used for filter-set membership and facet
// grouping. Keys are prefixed by kind so the string "3" and the number 3
// remain distinct.
func (v Value) Key() string {
	switch v.kind {
	case KindString:
		return "s:" + v.str
	case KindNumber:
		return "n:" + strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return "u:"
	}
}

// CompareValues is the default total order over cell values: numbers
// before strings before unknown; numbers compare numerically, strings
// case-insensitively. Equal values return 0 and rely on the caller's
// stable sort to preserve original order.
func CompareValues(a, b Value) int {
	if a.kind != b.kind {
		return kindRank(a.kind) - kindRank(b.kind)
	}
	switch a.kind {
	case KindNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}
	case KindString:
		if c := strings.Compare(strings.ToLower(a.str), strings.ToLower(b.str)); c != 0 {
			return c
		}
		return 0
	default:
		return 0
	}
}

func kindRank(k ValueKind) int {
	switch k {
	case KindNumber:
		return 0
	case KindString:
		return 1
	default:
		return 2
	}
}

// Column declares how one column of a table reads, sorts, and filters
// its cells. ID must be unique within a table. Value is the single seam
// between the generic engine and the concrete record type. Compare, when
// set, overrides the default value order for sorting.
type Column[T any] struct {
	ID         string
	Title      string
	Sortable   bool
	Filterable bool
	Value      func(T) Value
	Compare    func(a, b T) int
}

// CellValue extracts the column's value from a record. A nil or
// panicking accessor yields Unknown so one malformed record cannot take
// down the rest of the collection.
func (c Column[T]) CellValue(rec T) (v Value) {
	if c.Value == nil {
		return Unknown()
	}
	defer func() {
		if recover() != nil {
			v = Unknown()
		}
	}()
	return c.Value(rec)
}
