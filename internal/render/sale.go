package render

import (
	"fmt"

	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/model1"
)

// Sale renders recorded sales
type Sale struct {
	Base
}

// Header returns the sale header
func (*Sale) Header() model1.Header {
	return model1.Header{
		{Name: "ID", Attrs: model1.Attrs{Align: tview.AlignRight, Numeric: true, Sortable: true}},
		{Name: "PRODUCT NAME", Attrs: model1.Attrs{Width: 40, Sortable: true, FuzzySort: true}},
		{Name: "QUANTITIES SOLD", Attrs: model1.Attrs{Align: tview.AlignCenter, Numeric: true, Sortable: true}},
		{Name: "TOTAL PRICE", Attrs: model1.Attrs{Align: tview.AlignRight, Numeric: true, Sortable: true}},
		{Name: "DATE-ADDED", Attrs: model1.Attrs{Sortable: true}},
	}
}

// Render renders a sale to a row
func (*Sale) Render(o any, row *model1.Row) error {
	s, ok := o.(api.Sale)
	if !ok {
		return fmt.Errorf("expected api.Sale, got %T", o)
	}

	row.ID = IntToStr(s.ID)
	row.Fields = model1.Fields{
		IntToStr(s.ID),
		NA(s.ProductName()),
		IntToStr(s.QuantitySold),
		Currency(s.TotalPrice),
		Date(s.DateAdded),
	}
	return nil
}

// Details renders the sale preview
func (*Sale) Details(o any) ([]Detail, error) {
	s, ok := o.(api.Sale)
	if !ok {
		return nil, fmt.Errorf("expected api.Sale, got %T", o)
	}
	return []Detail{
		{Label: "Product", Value: NA(s.ProductName())},
		{Label: "Quantity Sold", Value: IntToStr(s.QuantitySold)},
		{Label: "Total Price", Value: Currency(s.TotalPrice)},
		{Label: "Date Added", Value: Date(s.DateAdded)},
		{Label: "ID", Value: IntToStr(s.ID)},
	}, nil
}
