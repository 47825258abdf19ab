package render

import (
	"testing"

	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/model1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	uu := map[string]struct {
		v float64
		e string
	}{
		"zero":      {v: 0, e: "₱0.00"},
		"small":     {v: 12.5, e: "₱12.50"},
		"thousands": {v: 1234.5, e: "₱1,234.50"},
		"millions":  {v: 1234567.891, e: "₱1,234,567.89"},
		"negative":  {v: -3, e: "-₱3.00"},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, Currency(u.v))
		})
	}
}

func TestDate(t *testing.T) {
	uu := map[string]struct {
		s, e string
	}{
		"rfc3339":  {s: "2024-03-05T10:11:12Z", e: "Mar 5, 2024"},
		"fraction": {s: "2024-03-05T10:11:12.1234567", e: "Mar 5, 2024"},
		"plain":    {s: "2023-12-31", e: "Dec 31, 2023"},
		"js-date":  {s: "Tue Jan 02 2024", e: "Jan 2, 2024"},
		"empty":    {s: "", e: NAValue},
		"garbage":  {s: "yesterday", e: "yesterday"},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, Date(u.s))
		})
	}
}

func TestProductRender(t *testing.T) {
	var (
		r   Product
		row model1.Row
	)
	p := api.Product{
		ID:         7,
		Name:       "Eco Friendly Bag",
		Quantity:   3,
		UnitPrice:  1499.99,
		DateAdded:  "2024-03-05T10:11:12Z",
		CategoryID: 2,
		Category:   &api.Category{ID: 2, Name: "Bags"},
	}
	require.NoError(t, r.Render(p, &row))
	assert.Equal(t, "7", row.ID)
	assert.Equal(t, model1.Fields{"7", "Eco Friendly Bag", "3", "₱1,499.99", "Mar 5, 2024", "Bags"}, row.Fields)
	assert.Len(t, row.Fields, len(r.Header()))

	assert.Error(t, r.Render(api.Category{}, &row))
}

func TestProductDetails(t *testing.T) {
	var r Product
	dd, err := r.Details(api.Product{ID: 1, Name: "Mug", UnitPrice: 5})
	require.NoError(t, err)
	assert.Equal(t, Detail{Label: "Description", Value: NoDescription}, dd[1])
	assert.Equal(t, Detail{Label: "Category", Value: NAValue}, dd[4])
	assert.Equal(t, Detail{Label: "ID", Value: "1"}, dd[len(dd)-1])
}

func TestProductColorer(t *testing.T) {
	var r Product
	f := r.ColorerFunc()

	out := model1.RowEvent{Kind: model1.EventUnchanged, Row: model1.Row{Object: api.Product{Quantity: 0}}}
	assert.Equal(t, model1.ErrColor, f(r.Header(), &out))

	added := model1.RowEvent{Kind: model1.EventAdd, Row: model1.Row{Object: api.Product{Quantity: 4}}}
	assert.Equal(t, model1.AddColor, f(r.Header(), &added))
}

func TestSaleRender(t *testing.T) {
	var (
		r   Sale
		row model1.Row
	)
	s := api.Sale{ID: 3, ProductID: 7, QuantitySold: 2, TotalPrice: 30, DateAdded: "2024-01-02", Product: &api.Product{Name: "Mug"}}
	require.NoError(t, r.Render(s, &row))
	assert.Equal(t, model1.Fields{"3", "Mug", "2", "₱30.00", "Jan 2, 2024"}, row.Fields)

	require.NoError(t, r.Render(api.Sale{ID: 4}, &row))
	assert.Equal(t, NAValue, row.Fields[1])
}

func TestCategoryRender(t *testing.T) {
	var (
		r   Category
		row model1.Row
	)
	require.NoError(t, r.Render(api.Category{ID: 9, Name: "Toys"}, &row))
	assert.Equal(t, model1.Fields{"9", "Toys"}, row.Fields)

	dd, err := r.Details(api.Category{ID: 9, Name: "Toys"})
	require.NoError(t, err)
	assert.Len(t, dd, 2)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab…", Truncate("abcdef", 3))
}
