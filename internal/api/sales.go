package api

import (
	"context"
	"net/http"
)

const salesPath = "/Sales"

// ListSales fetches every recorded sale.
func (c *Client) ListSales(ctx context.Context) ([]Sale, error) {
	var ss []Sale
	if err := c.do(ctx, http.MethodGet, salesPath, nil, &ss); err != nil {
		return nil, err
	}
	return ss, nil
}

// CreateSale records a sale. Sales are never updated or deleted.
func (c *Client) CreateSale(ctx context.Context, in SaleInput) error {
	return c.do(ctx, http.MethodPost, salesPath, in, nil)
}
