package model1

import "github.com/derailed/tcell/v2"

// ResEvent represents a row event type
type ResEvent int

const (
	EventUnchanged ResEvent = 1 << iota
	EventAdd
	EventUpdate
)

// DecoratorFunc decorates a string
type DecoratorFunc func(string) string

// ColorerFunc represents a row colorer
type ColorerFunc func(h Header, re *RowEvent) tcell.Color

// Renderer represents a record renderer
type Renderer interface {
	// Header returns the static column definitions.
	Header() Header

	// Render converts a record into a row.
	Render(o any, row *Row) error

	// ColorerFunc returns the row colorer.
	ColorerFunc() ColorerFunc
}
