package model1

import (
	"fmt"
	"reflect"
)

// Attrs represents column attributes
type Attrs struct {
	Align     int  // tview alignment
	Width     int  // Max width, 0 means unbounded
	Sortable  bool // Header can cycle sort
	Numeric   bool // Compare as numbers
	FuzzySort bool // Sort by filter rank first
	Hide      bool // Always hidden
	Decorator DecoratorFunc
}

// HeaderColumn represents a table header column
type HeaderColumn struct {
	Name string
	Attrs
}

func (h HeaderColumn) String() string {
	return fmt.Sprintf("%s [%d::%t::%t]", h.Name, h.Align, h.Sortable, h.Numeric)
}

// Header represents a table header (slice of columns)
type Header []HeaderColumn

func (h Header) Clone() Header {
	he := make(Header, len(h))
	copy(he, h)
	return he
}

func (h Header) Diff(header Header) bool {
	if len(h) != len(header) {
		return true
	}
	return !reflect.DeepEqual(h.ColumnNames(), header.ColumnNames())
}

func (h Header) IsNumericCol(col int) bool {
	if col < 0 || col >= len(h) {
		return false
	}
	return h[col].Numeric
}

func (h Header) IsSortable(col int) bool {
	if col < 0 || col >= len(h) {
		return false
	}
	return h[col].Sortable
}

// Visible returns the indexes of the columns that are not hidden.
func (h Header) Visible() []int {
	cols := make([]int, 0, len(h))
	for i, c := range h {
		if !c.Hide {
			cols = append(cols, i)
		}
	}
	return cols
}

func (h Header) ColumnNames() []string {
	if len(h) == 0 {
		return nil
	}
	cc := make([]string, 0, len(h))
	for _, c := range h {
		cc = append(cc, c.Name)
	}
	return cc
}
