package dao

import (
	"context"
	"fmt"
	"sync"

	"github.com/stockr/stockr/internal/api"
)

// ReportRIDs lists the analytics reports in dashboard order.
var ReportRIDs = []*ResourceID{
	&TotalRevenueRID,
	&TotalItemsSoldRID,
	&InventoryLevelsProductRID,
	&InventoryLevelsCategoryRID,
	&RevenueByProductRID,
	&RevenueByCategoryRID,
	&ItemsSoldProductRID,
	&ItemsSoldCategoryRID,
}

func init() {
	for _, rid := range ReportRIDs {
		RegisterAccessor(rid, &Report{})
	}
}

// Report is the DAO for one analytics endpoint. Each entry of the report is
// an Object whose raw value is the api type for that endpoint.
type Report struct {
	Resource
}

// List serves the report from cache or fetches it.
func (r *Report) List(ctx context.Context) ([]Object, error) {
	return r.cachedOr(ctx, r.fetch)
}

func (r *Report) fetch(ctx context.Context) ([]Object, error) {
	c, err := r.client()
	if err != nil {
		return nil, err
	}
	rid := r.ResourceID()

	var oo []Object
	switch rid.Resource {
	case api.TotalRevenueReport:
		t, err := c.TotalRevenue(ctx)
		if err != nil {
			return nil, err
		}
		oo = append(oo, &BaseObject{ID: rid.Resource, Name: rid.Resource, Raw: api.TotalRevenue{TotalRevenue: t}})
	case api.TotalItemsSoldReport:
		t, err := c.TotalItemsSold(ctx)
		if err != nil {
			return nil, err
		}
		oo = append(oo, &BaseObject{ID: rid.Resource, Name: rid.Resource, Raw: api.TotalItemsSold{TotalItemsSold: t}})
	case api.InventoryLevelsProduct, api.InventoryLevelsCategory:
		ll, err := c.InventoryLevels(ctx, rid.Resource)
		if err != nil {
			return nil, err
		}
		for _, l := range ll {
			oo = append(oo, &BaseObject{ID: l.Name, Name: l.Name, Raw: l})
		}
	case api.RevenueByProduct, api.RevenueByCategory:
		rr, err := c.Revenues(ctx, rid.Resource)
		if err != nil {
			return nil, err
		}
		for _, rv := range rr {
			oo = append(oo, &BaseObject{ID: rv.ItemName, Name: rv.ItemName, Raw: rv})
		}
	case api.ItemsSoldProduct, api.ItemsSoldCategory:
		ii, err := c.ItemsSold(ctx, rid.Resource)
		if err != nil {
			return nil, err
		}
		for _, it := range ii {
			oo = append(oo, &BaseObject{ID: it.ItemName, Name: it.ItemName, Raw: it})
		}
	default:
		return nil, fmt.Errorf("unknown analytics report: %s", rid.Resource)
	}
	if oo == nil {
		oo = []Object{}
	}

	return r.remember(oo), nil
}

// ReportResult carries the outcome of one report fetch.
type ReportResult struct {
	RID     *ResourceID
	Objects []Object
	Err     error
}

// FetchReports loads every report concurrently. Each result is handed to
// onResult as soon as it settles so panels render independently. It returns
// once all fetches are done.
func FetchReports(ctx context.Context, f Factory, onResult func(ReportResult)) {
	var wg sync.WaitGroup
	for _, rid := range ReportRIDs {
		wg.Add(1)
		go func(rid *ResourceID) {
			defer wg.Done()
			acc, err := AccessorFor(f, rid)
			if err != nil {
				onResult(ReportResult{RID: rid, Err: err})
				return
			}
			oo, err := acc.List(ctx)
			onResult(ReportResult{RID: rid, Objects: oo, Err: err})
		}(rid)
	}
	wg.Wait()
}

// InvalidateReports drops every cached analytics report.
func InvalidateReports(f Factory) {
	if c := f.Cache(); c != nil {
		c.ForgetGroup(analyticsGroup)
	}
}
