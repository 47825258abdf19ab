package render

import (
	"github.com/stockr/stockr/internal/model1"
)

// Base provides a base renderer implementation
type Base struct{}

// ColorerFunc returns the default colorer
func (*Base) ColorerFunc() model1.ColorerFunc {
	return model1.DefaultColorer
}

// Detail is one labelled line of the detail panel.
type Detail struct {
	Label string
	Value string
}

// Detailer renders a record for the detail panel.
type Detailer interface {
	Details(o any) ([]Detail, error)
}
