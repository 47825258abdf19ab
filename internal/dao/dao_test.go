package dao_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/dao"
	"github.com/stockr/stockr/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(t *testing.T) (*mock.Server, *dao.APIFactory) {
	t.Helper()

	st := mock.NewStore()
	require.NoError(t, mock.Seed(st))
	srv := mock.NewServer(st, mock.Options{})
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	c, err := api.NewClient(api.ClientConfig{BaseURL: ts.URL})
	require.NoError(t, err)

	return srv, dao.NewFactory(c)
}

func isCached(f dao.Factory, rid dao.ResourceID) bool {
	_, ok := f.Cache().Lookup(rid)
	return ok
}

func TestAccessorFor(t *testing.T) {
	_, f := newFactory(t)

	acc, err := dao.AccessorFor(f, &dao.ProductRID)
	require.NoError(t, err)
	assert.Equal(t, "inventory/products", acc.ResourceID().String())
	_, ok := acc.(dao.Nuker)
	assert.True(t, ok)

	acc, err = dao.AccessorFor(f, &dao.SaleRID)
	require.NoError(t, err)
	_, ok = acc.(dao.Updater)
	assert.False(t, ok)
	_, ok = acc.(dao.Nuker)
	assert.False(t, ok)

	_, err = dao.AccessorFor(f, &dao.ResourceID{Group: "inventory", Resource: "widgets"})
	assert.Error(t, err)

	assert.Len(t, dao.ListAccessors(), 3+len(dao.ReportRIDs))
}

func TestResourceIDParse(t *testing.T) {
	var rid dao.ResourceID
	require.NoError(t, rid.Parse("analytics/total-revenue"))
	assert.Equal(t, dao.TotalRevenueRID, rid)

	assert.Error(t, rid.Parse("products"))
	assert.Error(t, rid.Parse("/products"))
}

func TestProductLifecycle(t *testing.T) {
	srv, f := newFactory(t)
	ctx := context.Background()

	p := new(dao.Product)
	p.Init(f, &dao.ProductRID)

	oo, err := p.List(ctx)
	require.NoError(t, err)
	n := len(oo)
	assert.Equal(t, "1", oo[0].GetID())
	raw, ok := oo[0].GetRaw().(api.Product)
	require.True(t, ok)
	assert.Equal(t, oo[0].GetName(), raw.Name)

	srv.Fail("/api/Products", http.StatusInternalServerError)
	cached, err := p.Cached(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, n)
	srv.Fail("/api/Products", 0)

	require.NoError(t, p.Create(ctx, api.ProductInput{Name: "Taho", Quantity: 3, UnitPrice: 20, CategoryID: 2}))
	assert.False(t, isCached(f, dao.ProductRID))

	assert.Error(t, p.Create(ctx, api.CategoryInput{Name: "nope"}))
	assert.Error(t, p.Update(ctx, "x", api.ProductInput{}))

	oo, err = p.Cached(ctx)
	require.NoError(t, err)
	assert.Len(t, oo, n+1)

	require.NoError(t, p.Delete(ctx, []string{oo[n].GetID()}))
	oo, err = p.List(ctx)
	require.NoError(t, err)
	assert.Len(t, oo, n)

	assert.Error(t, p.Delete(ctx, []string{"abc"}))
}

func TestCategoryDeletePartialFailure(t *testing.T) {
	_, f := newFactory(t)
	ctx := context.Background()

	c := new(dao.Category)
	c.Init(f, &dao.CategoryRID)
	require.NoError(t, c.Create(ctx, api.CategoryInput{Name: "Unused"}))
	oo, err := c.List(ctx)
	require.NoError(t, err)

	err = c.Delete(ctx, []string{oo[0].GetID(), oo[len(oo)-1].GetID()})
	assert.ErrorIs(t, err, api.ErrBulkDelete)

	left, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, left, len(oo)-1)
}

func TestSaleCreateInvalidatesProducts(t *testing.T) {
	_, f := newFactory(t)
	ctx := context.Background()

	p := new(dao.Product)
	p.Init(f, &dao.ProductRID)
	_, err := p.List(ctx)
	require.NoError(t, err)

	s := new(dao.Sale)
	s.Init(f, &dao.SaleRID)
	require.NoError(t, s.Create(ctx, api.SaleInput{ProductID: 1, QuantitySold: 1}))
	assert.False(t, isCached(f, dao.ProductRID))

	oo, err := s.List(ctx)
	require.NoError(t, err)
	sl, ok := oo[len(oo)-1].GetRaw().(api.Sale)
	require.True(t, ok)
	assert.Equal(t, 1, sl.ProductID)
}

func TestFetchReports(t *testing.T) {
	srv, f := newFactory(t)
	srv.Fail("/api/Analytics/revenue-by-product", http.StatusServiceUnavailable)

	var (
		mx  sync.Mutex
		got = make(map[string]dao.ReportResult)
	)
	dao.FetchReports(context.Background(), f, func(r dao.ReportResult) {
		mx.Lock()
		defer mx.Unlock()
		got[r.RID.String()] = r
	})

	require.Len(t, got, len(dao.ReportRIDs))
	bad := got[dao.RevenueByProductRID.String()]
	assert.Equal(t, "Service Unavailable", api.StatusText(bad.Err))

	tr := got[dao.TotalRevenueRID.String()]
	require.NoError(t, tr.Err)
	require.Len(t, tr.Objects, 1)
	_, ok := tr.Objects[0].GetRaw().(api.TotalRevenue)
	assert.True(t, ok)

	lv := got[dao.InventoryLevelsCategoryRID.String()]
	require.NoError(t, lv.Err)
	assert.Len(t, lv.Objects, 5)

	assert.True(t, isCached(f, dao.TotalRevenueRID))
	dao.InvalidateReports(f)
	assert.False(t, isCached(f, dao.TotalRevenueRID))
}
