package model1

import "sync"

// TableData tracks a fetched collection for tabular display.
type TableData struct {
	header    Header
	rowEvents *RowEvents
	title     string
	mx        sync.RWMutex
}

// NewTableData returns a new table.
func NewTableData(h Header) *TableData {
	return &TableData{
		header:    h,
		rowEvents: NewRowEvents(10),
	}
}

// Header returns the table header.
func (t *TableData) Header() Header {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.header
}

// SetHeader sets the table header.
func (t *TableData) SetHeader(h Header) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.header = h
}

// SetRows replaces the rows, tracking what changed since the last call.
func (t *TableData) SetRows(rows Rows) {
	t.mx.Lock()
	defer t.mx.Unlock()
	var prev *RowEvents
	if !t.rowEvents.Empty() {
		prev = t.rowEvents
	}
	t.rowEvents = Reconcile(prev, rows)
}

// RowEvents returns the row events.
func (t *TableData) RowEvents() *RowEvents {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rowEvents
}

// Rows returns the rows in fetch order.
func (t *TableData) Rows() Rows {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rowEvents.Rows()
}

// Title returns the table title.
func (t *TableData) Title() string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.title
}

// SetTitle sets the table title.
func (t *TableData) SetTitle(s string) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.title = s
}

// Empty returns true if no data is available.
func (t *TableData) Empty() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rowEvents.Empty()
}

// RowCount returns the number of rows.
func (t *TableData) RowCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rowEvents.Len()
}

// Clone returns a copy of the table data.
func (t *TableData) Clone() *TableData {
	t.mx.RLock()
	defer t.mx.RUnlock()

	return &TableData{
		header:    t.header.Clone(),
		rowEvents: t.rowEvents.Clone(),
		title:     t.title,
	}
}
