package prefs

// Store adapts the prefs file to the table engine's visibility
// persistence seam. Each write re-reads the file, updates one table's
// entry, and writes the whole file back: last writer wins, which is
// fine for a single-user client.
type Store struct {
	path string
}

// NewStore returns a Store backed by the prefs file at path (empty uses
// the default location).
func NewStore(path string) *Store {
	return &Store{path: path}
}

// VisibleColumns returns the stored visible columns for a table, and
// whether anything is stored for it.
func (s *Store) VisibleColumns(tableID string) ([]string, bool) {
	p, _ := Load(s.path)
	ids, ok := p.Tables[tableID]
	return ids, ok
}

// SetVisibleColumns stores the visible columns for a table.
func (s *Store) SetVisibleColumns(tableID string, ids []string) error {
	p, _ := Load(s.path)
	if p.Tables == nil {
		p.Tables = make(map[string][]string)
	}
	p.Tables[tableID] = append([]string(nil), ids...)
	return Save(s.path, p)
}
