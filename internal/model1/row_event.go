package model1

// RowEvent tracks how a row changed since the previous fetch.
type RowEvent struct {
	Kind ResEvent
	Row  Row
}

func NewRowEvent(kind ResEvent, row Row) RowEvent {
	return RowEvent{
		Kind: kind,
		Row:  row,
	}
}

func (r RowEvent) Clone() RowEvent {
	return RowEvent{
		Kind: r.Kind,
		Row:  r.Row.Clone(),
	}
}

// RowEvents a collection of row events, in fetch order.
type RowEvents struct {
	events []RowEvent
	index  map[string]int
}

func NewRowEvents(size int) *RowEvents {
	return &RowEvents{
		events: make([]RowEvent, 0, size),
		index:  make(map[string]int, size),
	}
}

// Reconcile builds the events for rows given the previous fetch.
// A nil prev marks every row unchanged.
func Reconcile(prev *RowEvents, rows Rows) *RowEvents {
	out := NewRowEvents(len(rows))
	for _, row := range rows {
		kind := EventUnchanged
		if prev != nil {
			old, ok := prev.Get(row.ID)
			switch {
			case !ok:
				kind = EventAdd
			case old.Row.Diff(row):
				kind = EventUpdate
			}
		}
		out.Add(NewRowEvent(kind, row))
	}

	return out
}

func (r *RowEvents) At(i int) (RowEvent, bool) {
	if i < 0 || i >= len(r.events) {
		return RowEvent{}, false
	}
	return r.events[i], true
}

func (r *RowEvents) Add(re RowEvent) {
	r.events = append(r.events, re)
	r.index[re.Row.ID] = len(r.events) - 1
}

func (r *RowEvents) Len() int {
	return len(r.events)
}

func (r *RowEvents) Empty() bool {
	return len(r.events) == 0
}

func (r *RowEvents) Get(id string) (RowEvent, bool) {
	i, ok := r.index[id]
	if !ok {
		return RowEvent{}, false
	}
	return r.At(i)
}

// Rows returns the rows in fetch order.
func (r *RowEvents) Rows() Rows {
	rr := make(Rows, 0, len(r.events))
	for _, e := range r.events {
		rr = append(rr, e.Row)
	}
	return rr
}

func (r *RowEvents) Clone() *RowEvents {
	out := NewRowEvents(len(r.events))
	for _, e := range r.events {
		out.Add(e.Clone())
	}
	return out
}

func (r *RowEvents) Range(f func(int, RowEvent) bool) {
	for i, e := range r.events {
		if !f(i, e) {
			return
		}
	}
}
