package model

import (
	"sort"
	"sync"

	"github.com/stockr/stockr/internal/model1"
)

// Table is the data table view model. It owns filtering, sorting,
// pagination and selection over the rows of a Query. It never fetches.
type Table struct {
	header   model1.Header
	events   *model1.RowEvents
	status   Status
	err      error
	state    TableState
	filtered []model1.RankedRow
	selected *model1.Row
	modal    *ModalState
	stateFn  func(TableState)
	mx       sync.RWMutex
}

// NewTable returns a pending table. modal may be nil.
func NewTable(h model1.Header, pageSize int, modal *ModalState) *Table {
	return &Table{
		header: h,
		events: model1.NewRowEvents(0),
		state:  NewTableState(pageSize),
		modal:  modal,
	}
}

// SetStateChangedFn registers a callback fired after every state change.
func (t *Table) SetStateChangedFn(f func(TableState)) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.stateFn = f
}

// Header returns the columns.
func (t *Table) Header() model1.Header {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.header
}

// Status returns the fetch status the table renders.
func (t *Table) Status() Status {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.status
}

// Err returns the fetch error if status is error.
func (t *Table) Err() error {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.err
}

// State returns a copy of the table state.
func (t *Table) State() TableState {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.state.Clone()
}

// SetPending flips the table to its loading state.
func (t *Table) SetPending() {
	t.mx.Lock()
	t.status, t.err = StatusPending, nil
	t.mx.Unlock()
}

// SetError flips the table to its error state.
func (t *Table) SetError(err error) {
	t.mx.Lock()
	t.status, t.err = StatusError, err
	t.mx.Unlock()
}

// SetData loads fetched rows. The page index is clamped to the new data.
func (t *Table) SetData(data *model1.TableData) {
	t.mx.Lock()
	if data != nil {
		if h := data.Header(); len(h) > 0 {
			t.header = h
		}
		t.events = data.RowEvents()
	} else {
		t.events = model1.NewRowEvents(0)
	}
	t.status, t.err = StatusSuccess, nil
	t.refilter()
	t.state.PageIndex = t.state.Clamp(t.state.PageIndex, len(t.filtered))
	if t.selected != nil {
		if re, ok := t.events.Get(t.selected.ID); ok {
			r := re.Row
			t.selected = &r
		}
	}
	t.mx.Unlock()
	t.fireState()
}

// RowEvent returns the change event of a loaded row.
func (t *Table) RowEvent(id string) (model1.RowEvent, bool) {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.events.Get(id)
}

// Rows returns every loaded row in fetch order.
func (t *Table) Rows() model1.Rows {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.events.Rows()
}

// Filter returns the global filter.
func (t *Table) Filter() string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.state.GlobalFilter
}

// SetFilter applies the global fuzzy filter and goes back to the first page.
func (t *Table) SetFilter(q string) {
	t.mx.Lock()
	t.state.GlobalFilter = q
	t.state.PageIndex = 0
	t.refilter()
	t.mx.Unlock()
	t.fireState()
}

// ToggleSort cycles the sort on col. Unsortable columns are ignored.
func (t *Table) ToggleSort(col int) bool {
	t.mx.Lock()
	if !t.header.IsSortable(col) {
		t.mx.Unlock()
		return false
	}
	t.state.Sorting = t.state.nextSort(col)
	t.refilter()
	t.mx.Unlock()
	t.fireState()

	return true
}

// Sort returns the active sort if any.
func (t *Table) Sort() (SortSpec, bool) {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.state.Sort()
}

// refilter recomputes filtered rows then sorts them. Callers hold the lock.
func (t *Table) refilter() {
	q := t.state.GlobalFilter
	cols := t.header.Visible()
	rr := make([]model1.RankedRow, 0, t.events.Len())
	t.events.Range(func(_ int, re model1.RowEvent) bool {
		if q == "" {
			rr = append(rr, model1.RankedRow{Row: re.Row})
			return true
		}
		ranks, passed := make([]float64, len(re.Row.Fields)), false
		for _, c := range cols {
			if c >= len(re.Row.Fields) {
				continue
			}
			m := model1.Match(re.Row.Fields[c], q)
			ranks[c] = m.Rank
			passed = passed || m.Passed
		}
		if passed {
			rr = append(rr, model1.RankedRow{Row: re.Row, Ranks: ranks})
		}
		return true
	})

	if spec, ok := t.state.Sort(); ok && spec.Column < len(t.header) {
		col, numeric, fuzzy := spec.Column, t.header.IsNumericCol(spec.Column), t.header[spec.Column].FuzzySort
		sort.SliceStable(rr, func(i, j int) bool {
			return compareRows(rr[i], rr[j], col, numeric, fuzzy, spec.Desc) < 0
		})
	}
	t.filtered = rr
}

func compareRows(a, b model1.RankedRow, col int, numeric, fuzzy, desc bool) int {
	if fuzzy {
		c := model1.SortByRank(a, b, col, numeric)
		if desc {
			c = -c
		}
		return c
	}

	var va, vb string
	if col < len(a.Fields) {
		va = a.Fields[col]
	}
	if col < len(b.Fields) {
		vb = b.Fields[col]
	}
	c := model1.Compare(numeric, va, vb)
	if desc {
		c = -c
	}
	if c != 0 {
		return c
	}

	ra, okA := a.RankAt(col)
	rb, okB := b.RankAt(col)
	switch {
	case !okA || !okB || ra == rb:
		return 0
	case ra > rb:
		return -1
	default:
		return 1
	}
}

// FilteredCount returns the number of rows passing the filter.
func (t *Table) FilteredCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return len(t.filtered)
}

// Filtered returns the rows passing the filter in display order.
func (t *Table) Filtered() []model1.RankedRow {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return append([]model1.RankedRow(nil), t.filtered...)
}

// PageIndex returns the current zero based page.
func (t *Table) PageIndex() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.state.PageIndex
}

// PageSize returns the rows per page.
func (t *Table) PageSize() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.state.PageSize
}

// PageCount returns ceil(filtered/pageSize).
func (t *Table) PageCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.state.PageCount(len(t.filtered))
}

// SetPageIndex moves to page p, clamped to the available pages.
func (t *Table) SetPageIndex(p int) {
	t.mx.Lock()
	t.state.PageIndex = t.state.Clamp(p, len(t.filtered))
	t.mx.Unlock()
	t.fireState()
}

// CanPrevPage returns true if there is a page before the current one.
func (t *Table) CanPrevPage() bool {
	return t.PageIndex() > 0
}

// CanNextPage returns true if there is a page after the current one.
func (t *Table) CanNextPage() bool {
	return t.PageIndex() < t.PageCount()-1
}

// NextPage moves one page forward.
func (t *Table) NextPage() { t.SetPageIndex(t.PageIndex() + 1) }

// PrevPage moves one page back.
func (t *Table) PrevPage() { t.SetPageIndex(t.PageIndex() - 1) }

// FirstPage moves to the first page.
func (t *Table) FirstPage() { t.SetPageIndex(0) }

// LastPage moves to the last page.
func (t *Table) LastPage() { t.SetPageIndex(t.PageCount() - 1) }

// PageRows returns the rows of the current page.
func (t *Table) PageRows() []model1.RankedRow {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.pageRows()
}

func (t *Table) pageRows() []model1.RankedRow {
	start := t.state.PageIndex * t.state.PageSize
	if start >= len(t.filtered) {
		return nil
	}
	end := min(start+t.state.PageSize, len(t.filtered))
	return append([]model1.RankedRow(nil), t.filtered[start:end]...)
}

// ToggleRow flips the selection of one row.
func (t *Table) ToggleRow(id string) {
	t.mx.Lock()
	if _, ok := t.state.Selection[id]; ok {
		delete(t.state.Selection, id)
	} else {
		t.state.Selection[id] = struct{}{}
	}
	t.mx.Unlock()
	t.fireState()
}

// TogglePage selects every row of the current page, or clears them when
// they are all selected already.
func (t *Table) TogglePage() {
	t.mx.Lock()
	t.toggleRows(t.pageRows())
	t.mx.Unlock()
	t.fireState()
}

// ToggleAll selects every filtered row, or clears them when they are all
// selected already.
func (t *Table) ToggleAll() {
	t.mx.Lock()
	t.toggleRows(t.filtered)
	t.mx.Unlock()
	t.fireState()
}

func (t *Table) toggleRows(rr []model1.RankedRow) {
	all := len(rr) > 0
	for _, r := range rr {
		if _, ok := t.state.Selection[r.ID]; !ok {
			all = false
			break
		}
	}
	for _, r := range rr {
		if all {
			delete(t.state.Selection, r.ID)
		} else {
			t.state.Selection[r.ID] = struct{}{}
		}
	}
}

// IsSelected returns true if the row is selected.
func (t *Table) IsSelected(id string) bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	_, ok := t.state.Selection[id]
	return ok
}

// SelectedIDs returns the selected rows that are still loaded, in fetch order.
func (t *Table) SelectedIDs() []string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	ids := make([]string, 0, len(t.state.Selection))
	t.events.Range(func(_ int, re model1.RowEvent) bool {
		if _, ok := t.state.Selection[re.Row.ID]; ok {
			ids = append(ids, re.Row.ID)
		}
		return true
	})
	return ids
}

// SelectedCount returns how many filtered rows are selected.
func (t *Table) SelectedCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	var n int
	for _, r := range t.filtered {
		if _, ok := t.state.Selection[r.ID]; ok {
			n++
		}
	}
	return n
}

// ClearSelection empties the selection.
func (t *Table) ClearSelection() {
	t.mx.Lock()
	t.state.Selection = make(map[string]struct{})
	t.mx.Unlock()
	t.fireState()
}

// SelectRow activates a row for the detail panel. It is a no-op while a
// dialog is open.
func (t *Table) SelectRow(id string) bool {
	if t.modal.IsOpen() {
		return false
	}
	t.mx.Lock()
	defer t.mx.Unlock()
	re, ok := t.events.Get(id)
	if !ok {
		return false
	}
	r := re.Row
	t.selected = &r

	return true
}

// SelectedRow returns the row shown in the detail panel.
func (t *Table) SelectedRow() (model1.Row, bool) {
	t.mx.RLock()
	defer t.mx.RUnlock()
	if t.selected == nil {
		return model1.Row{}, false
	}
	return *t.selected, true
}

// ClearSelectedRow closes the detail panel row.
func (t *Table) ClearSelectedRow() {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.selected = nil
}

func (t *Table) fireState() {
	t.mx.RLock()
	fn, st := t.stateFn, t.state.Clone()
	t.mx.RUnlock()
	if fn != nil {
		fn(st)
	}
}
