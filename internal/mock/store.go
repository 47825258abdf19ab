// Package mock serves an in-memory inventory backend over HTTP.
package mock

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/stockr/stockr/internal/api"
)

type Error string

const (
	ErrNotFound          = Error("record not found")
	ErrInUse             = Error("record is still referenced")
	ErrDuplicate         = Error("name already exists")
	ErrInsufficientStock = Error("insufficient stock")
	ErrInvalid           = Error("invalid payload")
)

func (e Error) Error() string {
	return string(e)
}

// Store holds the backend collections. Collections keep insertion order.
type Store struct {
	products   []api.Product
	categories []api.Category
	sales      []api.Sale
	nextID     map[string]int
	now        func() time.Time
	mx         sync.RWMutex
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		nextID: map[string]int{"products": 1, "categories": 1, "sales": 1},
		now:    time.Now,
	}
}

func (s *Store) id(coll string) int {
	id := s.nextID[coll]
	s.nextID[coll]++
	return id
}

func (s *Store) stamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// Counts returns the size of every collection.
func (s *Store) Counts() map[string]int {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return map[string]int{
		"products":   len(s.products),
		"categories": len(s.categories),
		"sales":      len(s.sales),
	}
}

func (s *Store) categoryIdx(id int) int {
	for i, c := range s.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) productIdx(id int) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// expandProduct embeds the product category.
func (s *Store) expandProduct(p api.Product) api.Product {
	if i := s.categoryIdx(p.CategoryID); i >= 0 {
		c := s.categories[i]
		p.Category = &c
	}
	return p
}

// Products lists products with their category embedded.
func (s *Store) Products() []api.Product {
	s.mx.RLock()
	defer s.mx.RUnlock()

	pp := make([]api.Product, 0, len(s.products))
	for _, p := range s.products {
		pp = append(pp, s.expandProduct(p))
	}
	return pp
}

func validProduct(in api.ProductInput) bool {
	return strings.TrimSpace(in.Name) != "" && in.Quantity >= 0 && in.UnitPrice >= 0
}

// CreateProduct adds a product.
func (s *Store) CreateProduct(in api.ProductInput) (api.Product, error) {
	if !validProduct(in) {
		return api.Product{}, ErrInvalid
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	if s.categoryIdx(in.CategoryID) < 0 {
		return api.Product{}, ErrNotFound
	}
	for _, p := range s.products {
		if p.Name == in.Name {
			return api.Product{}, ErrDuplicate
		}
	}
	p := api.Product{
		ID:          s.id("products"),
		Img:         in.Img,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		DateAdded:   s.stamp(),
		CategoryID:  in.CategoryID,
	}
	s.products = append(s.products, p)

	return s.expandProduct(p), nil
}

// UpdateProduct replaces a product's fields.
func (s *Store) UpdateProduct(id int, in api.ProductInput) (api.Product, error) {
	if !validProduct(in) {
		return api.Product{}, ErrInvalid
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	i := s.productIdx(id)
	if i < 0 || s.categoryIdx(in.CategoryID) < 0 {
		return api.Product{}, ErrNotFound
	}
	p := &s.products[i]
	p.Img, p.Name, p.Description = in.Img, in.Name, in.Description
	p.Quantity, p.UnitPrice, p.CategoryID = in.Quantity, in.UnitPrice, in.CategoryID

	return s.expandProduct(*p), nil
}

// DeleteProduct removes a product and its sales.
func (s *Store) DeleteProduct(id int) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	i := s.productIdx(id)
	if i < 0 {
		return ErrNotFound
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	kept := s.sales[:0]
	for _, sl := range s.sales {
		if sl.ProductID != id {
			kept = append(kept, sl)
		}
	}
	s.sales = kept

	return nil
}

// Categories lists categories.
func (s *Store) Categories() []api.Category {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return append([]api.Category(nil), s.categories...)
}

// CreateCategory adds a category.
func (s *Store) CreateCategory(in api.CategoryInput) (api.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return api.Category{}, ErrInvalid
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	for _, c := range s.categories {
		if c.Name == in.Name {
			return api.Category{}, ErrDuplicate
		}
	}
	c := api.Category{ID: s.id("categories"), Name: in.Name}
	s.categories = append(s.categories, c)

	return c, nil
}

// UpdateCategory renames a category.
func (s *Store) UpdateCategory(id int, in api.CategoryInput) (api.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return api.Category{}, ErrInvalid
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	i := s.categoryIdx(id)
	if i < 0 {
		return api.Category{}, ErrNotFound
	}
	s.categories[i].Name = in.Name

	return s.categories[i], nil
}

// DeleteCategory removes a category that no product references.
func (s *Store) DeleteCategory(id int) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	i := s.categoryIdx(id)
	if i < 0 {
		return ErrNotFound
	}
	for _, p := range s.products {
		if p.CategoryID == id {
			return ErrInUse
		}
	}
	s.categories = append(s.categories[:i], s.categories[i+1:]...)

	return nil
}

// Sales lists sales with their product embedded.
func (s *Store) Sales() []api.Sale {
	s.mx.RLock()
	defer s.mx.RUnlock()

	ss := make([]api.Sale, 0, len(s.sales))
	for _, sl := range s.sales {
		if i := s.productIdx(sl.ProductID); i >= 0 {
			p := s.expandProduct(s.products[i])
			sl.Product = &p
		}
		ss = append(ss, sl)
	}
	return ss
}

// CreateSale records a sale, pricing it at the current unit price and
// drawing the quantity from stock.
func (s *Store) CreateSale(in api.SaleInput) (api.Sale, error) {
	if in.QuantitySold < 0 {
		return api.Sale{}, ErrInvalid
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	i := s.productIdx(in.ProductID)
	if i < 0 {
		return api.Sale{}, ErrNotFound
	}
	p := &s.products[i]
	if p.Quantity < in.QuantitySold {
		return api.Sale{}, ErrInsufficientStock
	}
	p.Quantity -= in.QuantitySold
	sl := api.Sale{
		ID:           s.id("sales"),
		ProductID:    p.ID,
		QuantitySold: in.QuantitySold,
		TotalPrice:   float64(in.QuantitySold) * p.UnitPrice,
		DateAdded:    s.stamp(),
	}
	s.sales = append(s.sales, sl)

	return sl, nil
}

type tally struct {
	order []string
	qty   map[string]int
	rev   map[string]float64
}

func newTally() *tally {
	return &tally{qty: make(map[string]int), rev: make(map[string]float64)}
}

func (t *tally) add(name string, qty int, rev float64) {
	if _, ok := t.qty[name]; !ok {
		t.order = append(t.order, name)
	}
	t.qty[name] += qty
	t.rev[name] += rev
}

func (s *Store) categoryName(id int) string {
	if i := s.categoryIdx(id); i >= 0 {
		return s.categories[i].Name
	}
	return "Uncategorized"
}

// InventoryLevels sums stock by product or by category.
func (s *Store) InventoryLevels(byCategory bool) []api.InventoryLevel {
	s.mx.RLock()
	defer s.mx.RUnlock()

	t := newTally()
	if byCategory {
		for _, c := range s.categories {
			t.add(c.Name, 0, 0)
		}
	}
	for _, p := range s.products {
		name := p.Name
		if byCategory {
			name = s.categoryName(p.CategoryID)
		}
		t.add(name, p.Quantity, 0)
	}

	ll := make([]api.InventoryLevel, 0, len(t.order))
	for _, n := range t.order {
		ll = append(ll, api.InventoryLevel{Name: n, Quantity: t.qty[n]})
	}
	return ll
}

func (s *Store) salesTally(byCategory bool) *tally {
	t := newTally()
	for _, sl := range s.sales {
		i := s.productIdx(sl.ProductID)
		if i < 0 {
			continue
		}
		name := s.products[i].Name
		if byCategory {
			name = s.categoryName(s.products[i].CategoryID)
		}
		t.add(name, sl.QuantitySold, sl.TotalPrice)
	}
	return t
}

// Revenues sums sale totals by product or by category, highest first.
func (s *Store) Revenues(byCategory bool) []api.Revenue {
	s.mx.RLock()
	defer s.mx.RUnlock()

	t := s.salesTally(byCategory)
	rr := make([]api.Revenue, 0, len(t.order))
	for _, n := range t.order {
		rr = append(rr, api.Revenue{ItemName: n, Revenue: t.rev[n]})
	}
	sort.SliceStable(rr, func(i, j int) bool { return rr[i].Revenue > rr[j].Revenue })

	return rr
}

// ItemsSold sums units sold by product or by category, highest first.
func (s *Store) ItemsSold(byCategory bool) []api.ItemsSold {
	s.mx.RLock()
	defer s.mx.RUnlock()

	t := s.salesTally(byCategory)
	ii := make([]api.ItemsSold, 0, len(t.order))
	for _, n := range t.order {
		ii = append(ii, api.ItemsSold{ItemName: n, QuantitySold: t.qty[n]})
	}
	sort.SliceStable(ii, func(i, j int) bool { return ii[i].QuantitySold > ii[j].QuantitySold })

	return ii
}

// TotalRevenue sums every sale.
func (s *Store) TotalRevenue() float64 {
	s.mx.RLock()
	defer s.mx.RUnlock()

	var total float64
	for _, sl := range s.sales {
		total += sl.TotalPrice
	}
	return total
}

// TotalItemsSold counts every unit sold.
func (s *Store) TotalItemsSold() int {
	s.mx.RLock()
	defer s.mx.RUnlock()

	var total int
	for _, sl := range s.sales {
		total += sl.QuantitySold
	}
	return total
}
