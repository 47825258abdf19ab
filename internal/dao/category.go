package dao

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stockr/stockr/internal/api"
)

func init() {
	RegisterAccessor(&CategoryRID, &Category{})
}

// Category is the DAO for product categories.
type Category struct {
	Resource
}

// List fetches every category and refreshes the cache.
func (c *Category) List(ctx context.Context) ([]Object, error) {
	cl, err := c.client()
	if err != nil {
		return nil, err
	}
	cc, err := cl.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	oo := make([]Object, 0, len(cc))
	for _, ca := range cc {
		oo = append(oo, &BaseObject{ID: strconv.Itoa(ca.ID), Name: ca.Name, Raw: ca})
	}

	return c.remember(oo), nil
}

// Cached returns the categories listing, fetching only when the cache is stale.
func (c *Category) Cached(ctx context.Context) ([]Object, error) {
	return c.cachedOr(ctx, c.List)
}

// Create posts an api.CategoryInput.
func (c *Category) Create(ctx context.Context, payload any) error {
	in, ok := payload.(api.CategoryInput)
	if !ok {
		return fmt.Errorf("expecting a category input but got %T", payload)
	}
	cl, err := c.client()
	if err != nil {
		return err
	}
	defer c.invalidate()

	return cl.CreateCategory(ctx, in)
}

// Update renames the category with the given id.
func (c *Category) Update(ctx context.Context, id string, payload any) error {
	in, ok := payload.(api.CategoryInput)
	if !ok {
		return fmt.Errorf("expecting a category input but got %T", payload)
	}
	cid, err := strconv.Atoi(id)
	if err != nil {
		return fmt.Errorf("invalid category id %q: %w", id, err)
	}
	cl, err := c.client()
	if err != nil {
		return err
	}
	// Products embed the category name.
	defer c.invalidate(ProductRID)

	return cl.UpdateCategory(ctx, cid, in)
}

// Delete removes the categories with the given ids.
func (c *Category) Delete(ctx context.Context, ids []string) error {
	nn, err := toIDs(ids)
	if err != nil {
		return err
	}
	cl, err := c.client()
	if err != nil {
		return err
	}
	defer c.invalidate()

	return cl.DeleteCategories(ctx, nn)
}
