package table

// VisibilityStore persists per-table column visibility choices. Stored
// state is keyed by table ID so two tables never collide. The second
// return of VisibleColumns is false when nothing is stored for the table.
type VisibilityStore interface {
	VisibleColumns(tableID string) ([]string, bool)
	SetVisibleColumns(tableID string, ids []string) error
}

// Visibility tracks which of a table's declared columns are shown.
// Columns named in alwaysVisible can never be hidden. Absent stored
// state defaults to all declared columns visible.
type Visibility struct {
	store   VisibilityStore
	tableID string
	order   []string
	always  map[string]struct{}
	visible map[string]struct{}
}

// NewVisibility builds the policy for one table, rehydrating any stored
// choices. A nil store keeps choices in memory only.
func NewVisibility(store VisibilityStore, tableID string, columnIDs, alwaysVisible []string) *Visibility {
	v := &Visibility{
		store:   store,
		tableID: tableID,
		order:   append([]string(nil), columnIDs...),
		always:  make(map[string]struct{}, len(alwaysVisible)),
		visible: make(map[string]struct{}, len(columnIDs)),
	}
	declared := make(map[string]struct{}, len(columnIDs))
	for _, id := range columnIDs {
		declared[id] = struct{}{}
	}
	for _, id := range alwaysVisible {
		if _, ok := declared[id]; ok {
			v.always[id] = struct{}{}
		}
	}

	stored, ok := ([]string)(nil), false
	if store != nil {
		stored, ok = store.VisibleColumns(tableID)
	}
	if ok {
		for _, id := range stored {
			if _, declaredID := declared[id]; declaredID {
				v.visible[id] = struct{}{}
			}
		}
		for id := range v.always {
			v.visible[id] = struct{}{}
		}
	} else {
		for id := range declared {
			v.visible[id] = struct{}{}
		}
	}
	return v
}

// IsVisible reports whether the column is shown. Always-visible columns
// report true regardless of stored state.
func (v *Visibility) IsVisible(columnID string) bool {
	if _, ok := v.always[columnID]; ok {
		return true
	}
	_, ok := v.visible[columnID]
	return ok
}

// SetVisible shows or hides a column and writes the choice through to
// the store. Hiding an always-visible column is a no-op.
func (v *Visibility) SetVisible(columnID string, show bool) error {
	if _, ok := v.always[columnID]; ok && !show {
		return nil
	}
	known := false
	for _, id := range v.order {
		if id == columnID {
			known = true
			break
		}
	}
	if !known {
		return nil
	}
	if show {
		v.visible[columnID] = struct{}{}
	} else {
		delete(v.visible, columnID)
	}
	if v.store == nil {
		return nil
	}
	return v.store.SetVisibleColumns(v.tableID, v.VisibleIDs())
}

// VisibleIDs returns the visible columns in declared order.
func (v *Visibility) VisibleIDs() []string {
	out := make([]string, 0, len(v.order))
	for _, id := range v.order {
		if v.IsVisible(id) {
			out = append(out, id)
		}
	}
	return out
}
