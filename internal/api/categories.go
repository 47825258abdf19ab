package api

import (
	"context"
	"net/http"
)

const categoriesPath = "/Categories"

// ListCategories fetches every category.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var cc []Category
	if err := c.do(ctx, http.MethodGet, categoriesPath, nil, &cc); err != nil {
		return nil, err
	}
	return cc, nil
}

// CreateCategory posts a new category.
func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) error {
	return c.do(ctx, http.MethodPost, categoriesPath, in, nil)
}

// UpdateCategory renames the category with the given id.
func (c *Client) UpdateCategory(ctx context.Context, id int, in CategoryInput) error {
	return c.do(ctx, http.MethodPut, itemPath(categoriesPath, id), in, nil)
}

// DeleteCategories removes every listed category, one request per id.
func (c *Client) DeleteCategories(ctx context.Context, ids []int) error {
	return c.deleteMany(ctx, categoriesPath, ids)
}
