package api

import (
	"context"
	"net/http"
)

const productsPath = "/Products"

// ListProducts fetches every product.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var pp []Product
	if err := c.do(ctx, http.MethodGet, productsPath, nil, &pp); err != nil {
		return nil, err
	}
	return pp, nil
}

// CreateProduct posts a new product.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) error {
	return c.do(ctx, http.MethodPost, productsPath, in, nil)
}

// UpdateProduct replaces the product with the given id.
func (c *Client) UpdateProduct(ctx context.Context, id int, in ProductInput) error {
	return c.do(ctx, http.MethodPut, itemPath(productsPath, id), in, nil)
}

// DeleteProducts removes every listed product, one request per id.
func (c *Client) DeleteProducts(ctx context.Context, ids []int) error {
	return c.deleteMany(ctx, productsPath, ids)
}
