package mock_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, opts mock.Options) (*mock.Server, *api.Client) {
	t.Helper()

	st := mock.NewStore()
	require.NoError(t, mock.Seed(st))
	srv := mock.NewServer(st, opts)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	c, err := api.NewClient(api.ClientConfig{BaseURL: ts.URL})
	require.NoError(t, err)

	return srv, c
}

func TestServerProducts(t *testing.T) {
	srv, c := newBackend(t, mock.Options{})
	ctx := context.Background()

	pp, err := c.ListProducts(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, pp)
	assert.NotEmpty(t, pp[0].CategoryName())
	assert.NotEmpty(t, pp[0].DateAdded)

	require.NoError(t, c.CreateProduct(ctx, api.ProductInput{Name: "Pandesal", Quantity: 10, UnitPrice: 3, CategoryID: 2}))
	require.NoError(t, c.UpdateProduct(ctx, pp[0].ID, api.ProductInput{Name: "Renamed", Quantity: 1, UnitPrice: 1, CategoryID: 1}))

	after, err := c.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(pp)+1)
	assert.Equal(t, "Renamed", after[0].Name)

	err = c.CreateProduct(ctx, api.ProductInput{Name: "Pandesal", Quantity: 1, UnitPrice: 1, CategoryID: 2})
	var herr *api.HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, http.StatusConflict, herr.StatusCode)

	require.NoError(t, c.DeleteProducts(ctx, []int{after[1].ID, after[2].ID, after[3].ID}))
	assert.Len(t, srv.Store().Products(), len(after)-3)
}

func TestServerBulkDeletePartialFailure(t *testing.T) {
	_, c := newBackend(t, mock.Options{})
	ctx := context.Background()

	require.NoError(t, c.CreateCategory(ctx, api.CategoryInput{Name: "Empty"}))
	cc, err := c.ListCategories(ctx)
	require.NoError(t, err)
	last := cc[len(cc)-1]

	err = c.DeleteCategories(ctx, []int{cc[0].ID, last.ID})
	assert.ErrorIs(t, err, api.ErrBulkDelete)

	left, err := c.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, left, len(cc)-1)
}

func TestServerSalesAndAnalytics(t *testing.T) {
	_, c := newBackend(t, mock.Options{})
	ctx := context.Background()

	before, err := c.TotalItemsSold(ctx)
	require.NoError(t, err)
	require.NoError(t, c.CreateSale(ctx, api.SaleInput{ProductID: 4, QuantitySold: 2}))
	after, err := c.TotalItemsSold(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+2, after)

	ss, err := c.ListSales(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Banana Chips", ss[len(ss)-1].ProductName())
	assert.Equal(t, 90.0, ss[len(ss)-1].TotalPrice)

	rev, err := c.Revenues(ctx, api.RevenueByCategory)
	require.NoError(t, err)
	total, err := c.TotalRevenue(ctx)
	require.NoError(t, err)
	var sum float64
	for _, r := range rev {
		sum += r.Revenue
	}
	assert.InDelta(t, total, sum, 1e-6)

	ll, err := c.InventoryLevels(ctx, api.InventoryLevelsCategory)
	require.NoError(t, err)
	assert.Len(t, ll, 5)

	_, err = c.ItemsSold(ctx, "bogus-report")
	var herr *api.HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, http.StatusNotFound, herr.StatusCode)
}

func TestServerFault(t *testing.T) {
	srv, c := newBackend(t, mock.Options{})
	ctx := context.Background()

	srv.Fail("/api/Products", http.StatusInternalServerError)
	_, err := c.ListProducts(ctx)
	assert.Equal(t, "Internal Server Error", api.StatusText(err))

	srv.Fail("/api/Products", 0)
	_, err = c.ListProducts(ctx)
	assert.NoError(t, err)
}

func TestServerRateLimit(t *testing.T) {
	_, c := newBackend(t, mock.Options{RPS: 0.001, Burst: 2})
	ctx := context.Background()

	_, err := c.ListCategories(ctx)
	require.NoError(t, err)
	_, err = c.ListCategories(ctx)
	require.NoError(t, err)

	_, err = c.ListCategories(ctx)
	var herr *api.HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusTooManyRequests, herr.StatusCode)
}

func TestServerMetrics(t *testing.T) {
	srv, c := newBackend(t, mock.Options{})

	_, err := c.ListSales(context.Background())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `route="/api/Sales"`)
}
