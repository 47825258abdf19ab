package chart

import (
	"github.com/stockr/stockr/internal/dao"
	"github.com/stockr/stockr/internal/render"
)

// Kind is how a panel is drawn.
type Kind int

const (
	KindBar Kind = iota
	KindPie
)

// Point is one labeled value of a series.
type Point struct {
	Label string
	Value float64
}

// Panel is one dashboard chart.
type Panel struct {
	RID    *dao.ResourceID
	Title  string
	Kind   Kind
	Points []Point
	Format func(float64) string
}

func currency(v float64) string { return render.Currency(v) }
func units(v float64) string    { return render.Number(int(v)) }

// Panels returns the chart panels in dashboard order.
func (s *Snapshot) Panels() []Panel {
	pp := []Panel{
		{RID: &dao.InventoryLevelsProductRID, Title: "Inventory Levels by Product", Kind: KindPie, Format: units},
		{RID: &dao.InventoryLevelsCategoryRID, Title: "Inventory Levels by Category", Kind: KindPie, Format: units},
		{RID: &dao.RevenueByProductRID, Title: "Revenue by Product", Kind: KindBar, Format: currency},
		{RID: &dao.RevenueByCategoryRID, Title: "Revenue by Category", Kind: KindBar, Format: currency},
		{RID: &dao.ItemsSoldProductRID, Title: "Products Sold by Product", Kind: KindBar, Format: units},
		{RID: &dao.ItemsSoldCategoryRID, Title: "Products Sold by Category", Kind: KindBar, Format: units},
	}
	for i := range pp {
		pp[i].Points = s.points(pp[i].RID)
	}

	return pp
}

func (s *Snapshot) points(rid *dao.ResourceID) []Point {
	var pp []Point
	switch *rid {
	case dao.InventoryLevelsProductRID, dao.InventoryLevelsCategoryRID:
		ll := s.LevelsByProduct
		if *rid == dao.InventoryLevelsCategoryRID {
			ll = s.LevelsByCategory
		}
		for _, l := range ll {
			pp = append(pp, Point{Label: l.Name, Value: float64(l.Quantity)})
		}
	case dao.RevenueByProductRID, dao.RevenueByCategoryRID:
		rr := s.RevenueByProduct
		if *rid == dao.RevenueByCategoryRID {
			rr = s.RevenueByCat
		}
		for _, r := range rr {
			pp = append(pp, Point{Label: r.ItemName, Value: r.Revenue})
		}
	case dao.ItemsSoldProductRID, dao.ItemsSoldCategoryRID:
		ii := s.SoldByProduct
		if *rid == dao.ItemsSoldCategoryRID {
			ii = s.SoldByCategory
		}
		for _, i := range ii {
			pp = append(pp, Point{Label: i.ItemName, Value: float64(i.QuantitySold)})
		}
	}

	return pp
}
