package mock

import (
	"fmt"

	"github.com/stockr/stockr/internal/api"
)

var seedCategories = []string{"Beverages", "Snacks", "Household", "Personal Care", "Frozen"}

var seedProducts = []struct {
	name, desc, category string
	qty                  int
	price                float64
}{
	{"Ecofresh Water 500ml", "Purified drinking water.", "Beverages", 240, 15},
	{"Kape Barako 250g", "Batangas ground coffee.", "Beverages", 60, 185.5},
	{"Mango Juice 1L", "", "Beverages", 35, 92.75},
	{"Banana Chips", "Sweetened fried banana slices.", "Snacks", 120, 45},
	{"Chicharon 100g", "", "Snacks", 0, 68},
	{"Ube Crinkles", "Purple yam cookies.", "Snacks", 42, 120},
	{"Dishwashing Liquid", "Lemon scented.", "Household", 75, 89.25},
	{"Laundry Bar", "", "Household", 150, 28},
	{"Walis Tambo", "Soft broom.", "Household", 12, 150},
	{"Herbal Shampoo", "For daily use.", "Personal Care", 54, 210},
	{"Bath Soap", "", "Personal Care", 300, 35.5},
	{"Frozen Lumpia 20pcs", "Pork spring rolls.", "Frozen", 25, 245},
	{"Ice Cream 1.5L", "Cheese flavor.", "Frozen", 18, 389},
}

var seedSales = []struct {
	product string
	qty     int
}{
	{"Ecofresh Water 500ml", 40},
	{"Kape Barako 250g", 12},
	{"Banana Chips", 25},
	{"Ube Crinkles", 8},
	{"Dishwashing Liquid", 10},
	{"Herbal Shampoo", 6},
	{"Frozen Lumpia 20pcs", 5},
	{"Ecofresh Water 500ml", 18},
	{"Bath Soap", 30},
}

// Seed fills the store with a small sample inventory.
func Seed(s *Store) error {
	cats := make(map[string]int, len(seedCategories))
	for _, n := range seedCategories {
		c, err := s.CreateCategory(api.CategoryInput{Name: n})
		if err != nil {
			return fmt.Errorf("seed category %q: %w", n, err)
		}
		cats[n] = c.ID
	}

	prods := make(map[string]int, len(seedProducts))
	for _, p := range seedProducts {
		out, err := s.CreateProduct(api.ProductInput{
			Name:        p.name,
			Description: p.desc,
			Quantity:    p.qty,
			UnitPrice:   p.price,
			CategoryID:  cats[p.category],
		})
		if err != nil {
			return fmt.Errorf("seed product %q: %w", p.name, err)
		}
		prods[p.name] = out.ID
	}

	for _, sl := range seedSales {
		if _, err := s.CreateSale(api.SaleInput{ProductID: prods[sl.product], QuantitySold: sl.qty}); err != nil {
			return fmt.Errorf("seed sale %q: %w", sl.product, err)
		}
	}

	return nil
}
