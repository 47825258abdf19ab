// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package view

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stockr/stockr/internal/dao"
	"github.com/stockr/stockr/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settled(d *Dashboard, ready, failed int) func() bool {
	return func() bool {
		s := d.Snapshot()
		return len(s.Ready) == ready && len(s.Errs) == failed
	}
}

func TestDashboardPanelsSettleIndependently(t *testing.T) {
	ta := newTestApp(t)
	ta.be.Fail("/api/Analytics/total-revenue", http.StatusInternalServerError)
	ta.be.Fail("/api/Analytics/revenue-by-product", http.StatusServiceUnavailable)

	ta.run(t, "dashboard")
	var d *Dashboard
	ta.do(func() { d = ta.stack.Top().(*Dashboard) })
	ta.eventually(t, settled(d, len(dao.ReportRIDs)-2, 2), "reports never settled")

	ta.do(func() {
		stats := d.StatsText()
		assert.Contains(t, stats, "Total revenue n/a")
		assert.Contains(t, stats, "Items sold 154")

		assert.Equal(t, ui.ChartFailed, d.View(&dao.RevenueByProductRID).Lines()[0])
		assert.NotEqual(t, ui.ChartFailed, d.View(&dao.RevenueByCategoryRID).Lines()[0])
		assert.NotEqual(t, ui.ChartLoading, d.View(&dao.InventoryLevelsProductRID).Lines()[0])
	})

	ta.be.Fail("/api/Analytics/total-revenue", 0)
	ta.be.Fail("/api/Analytics/revenue-by-product", 0)
	ta.do(func() { d.refreshCmd(nil) })
	ta.eventually(t, settled(d, len(dao.ReportRIDs), 0), "reports never recovered")
	ta.do(func() {
		assert.NotContains(t, d.StatsText(), failedStat)
	})
}

func TestDashboardToggle(t *testing.T) {
	ta := newTestApp(t)
	ta.run(t, "dashboard")

	ta.do(func() {
		d := ta.stack.Top().(*Dashboard)
		assert.Equal(t, SalesRevenue, d.Mode())
		d.toggleCmd(nil)
		assert.Equal(t, SalesUnits, d.Mode())
		d.toggleCmd(nil)
		assert.Equal(t, SalesRevenue, d.Mode())
	})
}

func TestDashboardExport(t *testing.T) {
	ta := newTestApp(t)
	ta.run(t, "dashboard")
	var d *Dashboard
	ta.do(func() { d = ta.stack.Top().(*Dashboard) })
	ta.eventually(t, settled(d, len(dao.ReportRIDs), 0), "reports never settled")

	dir := filepath.Join(t.TempDir(), "out")
	var (
		path string
		err  error
	)
	ta.do(func() { path, err = d.Export(dir) })
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "dashboard-"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<html")
	assert.Contains(t, string(raw), "echarts")
}

func TestDashboardRestartRefetches(t *testing.T) {
	ta := newTestApp(t)
	ta.run(t, "dashboard")
	ta.run(t, "products")

	var d *Dashboard
	ta.do(func() {
		ta.PrevCmd()
		d = ta.stack.Top().(*Dashboard)
	})
	ta.eventually(t, settled(d, len(dao.ReportRIDs), 0), "reports never settled")
	assert.Equal(t, dashboardName, ta.topName())
}
