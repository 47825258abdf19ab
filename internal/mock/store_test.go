package mock

import (
	"testing"

	"github.com/stockr/stockr/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, Seed(s))
	return s
}

func TestStoreAnalyticsConsistent(t *testing.T) {
	s := seeded(t)

	var qty int
	for _, p := range s.Products() {
		qty += p.Quantity
	}
	var levels int
	for _, l := range s.InventoryLevels(true) {
		levels += l.Quantity
	}
	assert.Equal(t, qty, levels)
	assert.Len(t, s.InventoryLevels(false), len(s.Products()))

	var rev float64
	var sold int
	for _, sl := range s.Sales() {
		rev += sl.TotalPrice
		sold += sl.QuantitySold
	}
	assert.InDelta(t, rev, s.TotalRevenue(), 1e-9)
	assert.Equal(t, sold, s.TotalItemsSold())

	var byCat float64
	for _, r := range s.Revenues(true) {
		byCat += r.Revenue
	}
	assert.InDelta(t, rev, byCat, 1e-9)

	var byProd int
	ii := s.ItemsSold(false)
	for _, i := range ii {
		byProd += i.QuantitySold
	}
	assert.Equal(t, sold, byProd)
	assert.Equal(t, "Ecofresh Water 500ml", ii[0].ItemName)
	assert.Equal(t, 58, ii[0].QuantitySold)
}

func TestStoreCreateSale(t *testing.T) {
	s := NewStore()
	c, err := s.CreateCategory(api.CategoryInput{Name: "Snacks"})
	require.NoError(t, err)
	p, err := s.CreateProduct(api.ProductInput{Name: "Chips", Quantity: 5, UnitPrice: 2.5, CategoryID: c.ID})
	require.NoError(t, err)
	assert.Equal(t, "Snacks", p.CategoryName())

	sl, err := s.CreateSale(api.SaleInput{ProductID: p.ID, QuantitySold: 2})
	require.NoError(t, err)
	assert.Equal(t, 5.0, sl.TotalPrice)
	assert.Equal(t, 3, s.Products()[0].Quantity)
	assert.Equal(t, "Chips", s.Sales()[0].ProductName())

	_, err = s.CreateSale(api.SaleInput{ProductID: p.ID, QuantitySold: 4})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	_, err = s.CreateSale(api.SaleInput{ProductID: 99, QuantitySold: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreConstraints(t *testing.T) {
	s := NewStore()
	c, err := s.CreateCategory(api.CategoryInput{Name: "Books"})
	require.NoError(t, err)

	_, err = s.CreateCategory(api.CategoryInput{Name: "Books"})
	assert.ErrorIs(t, err, ErrDuplicate)
	_, err = s.CreateCategory(api.CategoryInput{Name: " "})
	assert.ErrorIs(t, err, ErrInvalid)

	p, err := s.CreateProduct(api.ProductInput{Name: "Novel", Quantity: 1, UnitPrice: 1, CategoryID: c.ID})
	require.NoError(t, err)
	_, err = s.CreateProduct(api.ProductInput{Name: "Atlas", Quantity: 1, UnitPrice: 1, CategoryID: 42})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteCategory(c.ID), ErrInUse)
	_, err = s.CreateSale(api.SaleInput{ProductID: p.ID, QuantitySold: 1})
	require.NoError(t, err)
	require.NoError(t, s.DeleteProduct(p.ID))
	assert.Empty(t, s.Sales())
	assert.NoError(t, s.DeleteCategory(c.ID))
	assert.ErrorIs(t, s.DeleteProduct(p.ID), ErrNotFound)
}

func TestStoreUpdate(t *testing.T) {
	s := seeded(t)

	c, err := s.UpdateCategory(1, api.CategoryInput{Name: "Drinks"})
	require.NoError(t, err)
	assert.Equal(t, "Drinks", c.Name)
	assert.Equal(t, "Drinks", s.Products()[0].CategoryName())

	p, err := s.UpdateProduct(1, api.ProductInput{Name: "Water", Quantity: 9, UnitPrice: 10, CategoryID: 2})
	require.NoError(t, err)
	assert.Equal(t, "Water", p.Name)
	assert.Equal(t, "Snacks", p.CategoryName())

	_, err = s.UpdateProduct(1, api.ProductInput{Name: "Water", Quantity: -1, CategoryID: 2})
	assert.ErrorIs(t, err, ErrInvalid)
}
