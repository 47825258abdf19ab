package render

import (
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/model1"
)

// Product renders inventory products
type Product struct {
	Base
}

// Header returns the product header
func (*Product) Header() model1.Header {
	return model1.Header{
		{Name: "ID", Attrs: model1.Attrs{Align: tview.AlignRight, Numeric: true, Sortable: true}},
		{Name: "NAME", Attrs: model1.Attrs{Width: 40, Sortable: true, FuzzySort: true}},
		{Name: "QUANTITY", Attrs: model1.Attrs{Align: tview.AlignRight, Numeric: true, Sortable: true}},
		{Name: "PRICE", Attrs: model1.Attrs{Align: tview.AlignRight, Numeric: true, Sortable: true}},
		{Name: "DATE-ADDED", Attrs: model1.Attrs{Sortable: true}},
		{Name: "CATEGORY", Attrs: model1.Attrs{Sortable: true}},
	}
}

// Render renders a product to a row
func (*Product) Render(o any, row *model1.Row) error {
	p, ok := o.(api.Product)
	if !ok {
		return fmt.Errorf("expected api.Product, got %T", o)
	}

	row.ID = IntToStr(p.ID)
	row.Fields = model1.Fields{
		IntToStr(p.ID),
		p.Name,
		IntToStr(p.Quantity),
		Currency(p.UnitPrice),
		Date(p.DateAdded),
		NA(p.CategoryName()),
	}
	return nil
}

// ColorerFunc flags products that ran out of stock
func (*Product) ColorerFunc() model1.ColorerFunc {
	return func(h model1.Header, re *model1.RowEvent) tcell.Color {
		if p, ok := re.Row.Object.(api.Product); ok && p.Quantity == 0 {
			return model1.ErrColor
		}
		return model1.DefaultColorer(h, re)
	}
}

// Details renders the product preview
func (*Product) Details(o any) ([]Detail, error) {
	p, ok := o.(api.Product)
	if !ok {
		return nil, fmt.Errorf("expected api.Product, got %T", o)
	}
	desc := p.Description
	if desc == "" {
		desc = NoDescription
	}

	return []Detail{
		{Label: "Name", Value: p.Name},
		{Label: "Description", Value: desc},
		{Label: "Price", Value: Currency(p.UnitPrice)},
		{Label: "Quantity", Value: IntToStr(p.Quantity)},
		{Label: "Category", Value: NA(p.CategoryName())},
		{Label: "Date Added", Value: Date(p.DateAdded)},
		{Label: "ID", Value: IntToStr(p.ID)},
	}, nil
}
