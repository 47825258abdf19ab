package dao

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stockr/stockr/internal/api"
)

func init() {
	RegisterAccessor(&ProductRID, &Product{})
}

// Product is the DAO for inventory products.
type Product struct {
	Resource
}

// List fetches every product and refreshes the cache.
func (p *Product) List(ctx context.Context) ([]Object, error) {
	c, err := p.client()
	if err != nil {
		return nil, err
	}
	pp, err := c.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	oo := make([]Object, 0, len(pp))
	for _, pr := range pp {
		oo = append(oo, &BaseObject{ID: strconv.Itoa(pr.ID), Name: pr.Name, Raw: pr})
	}

	return p.remember(oo), nil
}

// Cached returns the products listing, fetching only when the cache is stale.
func (p *Product) Cached(ctx context.Context) ([]Object, error) {
	return p.cachedOr(ctx, p.List)
}

// Create posts an api.ProductInput.
func (p *Product) Create(ctx context.Context, payload any) error {
	in, ok := payload.(api.ProductInput)
	if !ok {
		return fmt.Errorf("expecting a product input but got %T", payload)
	}
	c, err := p.client()
	if err != nil {
		return err
	}
	defer p.invalidate()

	return c.CreateProduct(ctx, in)
}

// Update replaces the product with the given id.
func (p *Product) Update(ctx context.Context, id string, payload any) error {
	in, ok := payload.(api.ProductInput)
	if !ok {
		return fmt.Errorf("expecting a product input but got %T", payload)
	}
	pid, err := strconv.Atoi(id)
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", id, err)
	}
	c, err := p.client()
	if err != nil {
		return err
	}
	defer p.invalidate()

	return c.UpdateProduct(ctx, pid, in)
}

// Delete removes the products with the given ids.
func (p *Product) Delete(ctx context.Context, ids []string) error {
	nn, err := toIDs(ids)
	if err != nil {
		return err
	}
	c, err := p.client()
	if err != nil {
		return err
	}
	defer p.invalidate()

	return c.DeleteProducts(ctx, nn)
}
