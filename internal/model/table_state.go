package model

// DefaultPageSize is the number of rows per page.
const DefaultPageSize = 10

// SortSpec is the active sort column.
type SortSpec struct {
	Column int
	Desc   bool
}

// TableState is the user facing state of a data table. It lives as long as
// the screen that owns it.
type TableState struct {
	PageIndex    int
	PageSize     int
	GlobalFilter string
	Sorting      []SortSpec
	Selection    map[string]struct{}
}

// NewTableState returns a state on the first page.
func NewTableState(pageSize int) TableState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return TableState{
		PageSize:  pageSize,
		Selection: make(map[string]struct{}),
	}
}

// Clone returns a deep copy of the state.
func (s TableState) Clone() TableState {
	out := s
	out.Sorting = append([]SortSpec(nil), s.Sorting...)
	out.Selection = make(map[string]struct{}, len(s.Selection))
	for k := range s.Selection {
		out.Selection[k] = struct{}{}
	}
	return out
}

// Sort returns the active sort if any.
func (s TableState) Sort() (SortSpec, bool) {
	if len(s.Sorting) == 0 {
		return SortSpec{}, false
	}
	return s.Sorting[0], true
}

// PageCount returns how many pages n rows span.
func (s TableState) PageCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + s.PageSize - 1) / s.PageSize
}

// Clamp bounds p to the pages of n rows.
func (s TableState) Clamp(p, n int) int {
	last := s.PageCount(n) - 1
	if p > last {
		p = last
	}
	if p < 0 {
		p = 0
	}
	return p
}

// nextSort cycles none, asc, desc, none on col. Another column starts at asc.
func (s TableState) nextSort(col int) []SortSpec {
	cur, ok := s.Sort()
	switch {
	case !ok || cur.Column != col:
		return []SortSpec{{Column: col}}
	case !cur.Desc:
		return []SortSpec{{Column: col, Desc: true}}
	default:
		return nil
	}
}
