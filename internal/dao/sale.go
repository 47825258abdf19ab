package dao

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stockr/stockr/internal/api"
)

func init() {
	RegisterAccessor(&SaleRID, &Sale{})
}

// Sale is the DAO for recorded sales. Sales are create only.
type Sale struct {
	Resource
}

// List fetches every sale.
func (s *Sale) List(ctx context.Context) ([]Object, error) {
	c, err := s.client()
	if err != nil {
		return nil, err
	}
	ss, err := c.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	oo := make([]Object, 0, len(ss))
	for _, sa := range ss {
		oo = append(oo, &BaseObject{ID: strconv.Itoa(sa.ID), Name: sa.ProductName(), Raw: sa})
	}

	return s.remember(oo), nil
}

// Create posts an api.SaleInput.
func (s *Sale) Create(ctx context.Context, payload any) error {
	in, ok := payload.(api.SaleInput)
	if !ok {
		return fmt.Errorf("expecting a sale input but got %T", payload)
	}
	c, err := s.client()
	if err != nil {
		return err
	}
	// Stock levels move with every sale.
	defer s.invalidate(ProductRID)

	return c.CreateSale(ctx, in)
}
