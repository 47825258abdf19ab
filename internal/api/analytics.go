package api

import (
	"context"
	"net/http"
)

const analyticsPath = "/Analytics/"

const (
	InventoryLevelsProduct  = "inventory-levels-product"
	InventoryLevelsCategory = "inventory-levels-category"
	TotalRevenueReport      = "total-revenue"
	TotalItemsSoldReport    = "total-items-sold"
	RevenueByProduct        = "revenue-by-product"
	RevenueByCategory       = "revenue-by-category"
	ItemsSoldProduct        = "items-sold-product"
	ItemsSoldCategory       = "items-sold-category"
)

func (c *Client) analytics(ctx context.Context, report string, target any) error {
	return c.do(ctx, http.MethodGet, analyticsPath+report, nil, target)
}

// InventoryLevels fetches inventory-levels-product or inventory-levels-category.
func (c *Client) InventoryLevels(ctx context.Context, report string) ([]InventoryLevel, error) {
	var ll []InventoryLevel
	if err := c.analytics(ctx, report, &ll); err != nil {
		return nil, err
	}
	return ll, nil
}

// Revenues fetches revenue-by-product or revenue-by-category.
func (c *Client) Revenues(ctx context.Context, report string) ([]Revenue, error) {
	var rr []Revenue
	if err := c.analytics(ctx, report, &rr); err != nil {
		return nil, err
	}
	return rr, nil
}

// ItemsSold fetches items-sold-product or items-sold-category.
func (c *Client) ItemsSold(ctx context.Context, report string) ([]ItemsSold, error) {
	var ii []ItemsSold
	if err := c.analytics(ctx, report, &ii); err != nil {
		return nil, err
	}
	return ii, nil
}

// TotalRevenue fetches the all-time revenue.
func (c *Client) TotalRevenue(ctx context.Context) (float64, error) {
	var t TotalRevenue
	if err := c.analytics(ctx, TotalRevenueReport, &t); err != nil {
		return 0, err
	}
	return t.TotalRevenue, nil
}

// TotalItemsSold fetches the all-time count of units sold.
func (c *Client) TotalItemsSold(ctx context.Context) (int, error) {
	var t TotalItemsSold
	if err := c.analytics(ctx, TotalItemsSoldReport, &t); err != nil {
		return 0, err
	}
	return t.TotalItemsSold, nil
}
