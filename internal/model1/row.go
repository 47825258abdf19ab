package model1

// Row represents a collection of columns
type Row struct {
	ID     string
	Fields Fields
	Object any
}

func NewRow(size int) Row {
	return Row{Fields: make(Fields, size)}
}

func (r Row) Diff(ro Row) bool {
	if r.ID != ro.ID {
		return true
	}
	return r.Fields.Diff(ro.Fields)
}

func (r Row) Clone() Row {
	return Row{
		ID:     r.ID,
		Fields: r.Fields.Clone(),
		Object: r.Object,
	}
}

func (r Row) Len() int {
	return len(r.Fields)
}

// Rows represents a collection of rows
type Rows []Row

func (r Rows) Clone() Rows {
	out := make(Rows, len(r))
	for i, row := range r {
		out[i] = row.Clone()
	}
	return out
}

