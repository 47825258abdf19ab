package render

import (
	"fmt"

	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/model1"
)

// Category renders product categories
type Category struct {
	Base
}

// Header returns the category header
func (*Category) Header() model1.Header {
	return model1.Header{
		{Name: "ID", Attrs: model1.Attrs{Align: tview.AlignRight, Numeric: true, Sortable: true}},
		{Name: "NAME", Attrs: model1.Attrs{Sortable: true, FuzzySort: true}},
	}
}

// Render renders a category to a row
func (*Category) Render(o any, row *model1.Row) error {
	c, ok := o.(api.Category)
	if !ok {
		return fmt.Errorf("expected api.Category, got %T", o)
	}

	row.ID = IntToStr(c.ID)
	row.Fields = model1.Fields{
		IntToStr(c.ID),
		c.Name,
	}
	return nil
}

// Details renders the category preview
func (*Category) Details(o any) ([]Detail, error) {
	c, ok := o.(api.Category)
	if !ok {
		return nil, fmt.Errorf("expected api.Category, got %T", o)
	}
	return []Detail{
		{Label: "Name", Value: c.Name},
		{Label: "ID", Value: IntToStr(c.ID)},
	}, nil
}
