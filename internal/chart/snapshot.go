// Package chart assembles analytics reports into dashboard panels and
// renders them as a standalone HTML page.
package chart

import (
	"context"
	"sync"

	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/dao"
)

// Snapshot holds every analytics report. A report that has not arrived or
// failed is tracked in Errs or missing from Ready.
type Snapshot struct {
	TotalRevenue     float64
	TotalItemsSold   int
	LevelsByProduct  []api.InventoryLevel
	LevelsByCategory []api.InventoryLevel
	RevenueByProduct []api.Revenue
	RevenueByCat     []api.Revenue
	SoldByProduct    []api.ItemsSold
	SoldByCategory   []api.ItemsSold

	Ready map[string]bool
	Errs  map[string]error
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Ready: make(map[string]bool),
		Errs:  make(map[string]error),
	}
}

// IsReady reports whether the given report arrived.
func (s *Snapshot) IsReady(rid *dao.ResourceID) bool {
	return s.Ready[rid.String()]
}

// Err returns the fetch error of a report if any.
func (s *Snapshot) Err(rid *dao.ResourceID) error {
	return s.Errs[rid.String()]
}

// Apply folds one report result into the snapshot.
func (s *Snapshot) Apply(r dao.ReportResult) {
	key := r.RID.String()
	if r.Err != nil {
		s.Errs[key] = r.Err
		delete(s.Ready, key)
		return
	}
	delete(s.Errs, key)
	s.Ready[key] = true

	switch *r.RID {
	case dao.TotalRevenueRID:
		for _, o := range r.Objects {
			if t, ok := o.GetRaw().(api.TotalRevenue); ok {
				s.TotalRevenue = t.TotalRevenue
			}
		}
	case dao.TotalItemsSoldRID:
		for _, o := range r.Objects {
			if t, ok := o.GetRaw().(api.TotalItemsSold); ok {
				s.TotalItemsSold = t.TotalItemsSold
			}
		}
	case dao.InventoryLevelsProductRID:
		s.LevelsByProduct = levels(r.Objects)
	case dao.InventoryLevelsCategoryRID:
		s.LevelsByCategory = levels(r.Objects)
	case dao.RevenueByProductRID:
		s.RevenueByProduct = revenues(r.Objects)
	case dao.RevenueByCategoryRID:
		s.RevenueByCat = revenues(r.Objects)
	case dao.ItemsSoldProductRID:
		s.SoldByProduct = sold(r.Objects)
	case dao.ItemsSoldCategoryRID:
		s.SoldByCategory = sold(r.Objects)
	}
}

// Collect fetches every report and waits for all of them.
func Collect(ctx context.Context, f dao.Factory) *Snapshot {
	var mx sync.Mutex
	s := NewSnapshot()
	dao.FetchReports(ctx, f, func(r dao.ReportResult) {
		mx.Lock()
		defer mx.Unlock()
		s.Apply(r)
	})

	return s
}

func levels(oo []dao.Object) []api.InventoryLevel {
	ll := make([]api.InventoryLevel, 0, len(oo))
	for _, o := range oo {
		if l, ok := o.GetRaw().(api.InventoryLevel); ok {
			ll = append(ll, l)
		}
	}
	return ll
}

func revenues(oo []dao.Object) []api.Revenue {
	rr := make([]api.Revenue, 0, len(oo))
	for _, o := range oo {
		if r, ok := o.GetRaw().(api.Revenue); ok {
			rr = append(rr, r)
		}
	}
	return rr
}

func sold(oo []dao.Object) []api.ItemsSold {
	ii := make([]api.ItemsSold, 0, len(oo))
	for _, o := range oo {
		if i, ok := o.GetRaw().(api.ItemsSold); ok {
			ii = append(ii, i)
		}
	}
	return ii
}
