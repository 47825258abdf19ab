// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package view

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/chart"
	"github.com/stockr/stockr/internal/config"
	"github.com/stockr/stockr/internal/dao"
	"github.com/stockr/stockr/internal/render"
	"github.com/stockr/stockr/internal/ui"
)

const (
	dashboardName  = "dashboard"
	statsHeight    = 3
	reportsTimeout = 30 * time.Second
	exportFmt      = "dashboard-%s.html"
	exportStamp    = "20060102-150405"
	pendingStat    = "…"
	failedStat     = "n/a"
)

// SalesMode picks which sales series the bottom row charts.
type SalesMode int

const (
	// SalesRevenue charts revenue.
	SalesRevenue SalesMode = iota
	// SalesUnits charts items sold.
	SalesUnits
)

// Dashboard shows the analytics reports. Each panel settles on its own.
type Dashboard struct {
	*tview.Flex

	app      *App
	actions  *ui.KeyActions
	stats    *tview.TextView
	bottom   *tview.Flex
	views    map[string]*ui.ChartView
	snapshot *chart.Snapshot
	mode     SalesMode
	gen      int
	running  bool
}

// NewDashboard returns a new dashboard view.
func NewDashboard(app *App) *Dashboard {
	return &Dashboard{
		Flex:     tview.NewFlex().SetDirection(tview.FlexRow),
		app:      app,
		actions:  ui.NewKeyActions(),
		stats:    tview.NewTextView(),
		bottom:   tview.NewFlex(),
		views:    make(map[string]*ui.ChartView),
		snapshot: chart.NewSnapshot(),
	}
}

// Init initializes the dashboard.
func (d *Dashboard) Init(context.Context) error {
	d.stats.SetBorder(true)
	d.stats.SetDynamicColors(true)
	d.stats.SetTitle(" Overview ")
	d.stats.SetTextAlign(tview.AlignCenter)

	top := tview.NewFlex()
	for _, p := range d.snapshot.Panels() {
		v := ui.NewChartView(d.app.Styles(), p)
		d.views[p.RID.String()] = v
		if p.Kind == chart.KindPie {
			top.AddItem(v, 0, 1, false)
		}
	}
	d.AddItem(d.stats, statsHeight, 0, true)
	d.AddItem(top, 0, 1, false)
	d.AddItem(d.bottom, 0, 1, false)
	d.layoutSales()

	d.actions.Bulk(ui.KeyMap{
		tcell.KeyCtrlR: ui.NewKeyAction("Refresh", d.refreshCmd, true),
		tcell.KeyCtrlS: ui.NewKeyAction("Export HTML", d.exportCmd, true),
		ui.KeyT:        ui.NewKeyAction("Revenue/Units", d.toggleCmd, true),
		tcell.KeyEsc:   ui.NewKeyAction("Back", d.backCmd, false),
	})
	d.SetInputCapture(d.actions.Handle)
	d.Refresh()

	return nil
}

// Name returns the component name for breadcrumbs.
func (*Dashboard) Name() string {
	return dashboardName
}

// Hints returns menu hints for the dashboard.
func (d *Dashboard) Hints() ui.MenuHints {
	return d.actions.Hints()
}

// Start fetches every report.
func (d *Dashboard) Start() {
	d.running = true
	d.fetch()
}

// Stop ignores reports still in flight.
func (d *Dashboard) Stop() {
	d.running = false
	d.gen++
}

// Snapshot returns the reports received so far.
func (d *Dashboard) Snapshot() *chart.Snapshot {
	return d.snapshot
}

// Mode returns the charted sales series.
func (d *Dashboard) Mode() SalesMode {
	return d.mode
}

// View returns the panel of a report.
func (d *Dashboard) View(rid *dao.ResourceID) *ui.ChartView {
	return d.views[rid.String()]
}

// StatsText returns the overview line.
func (d *Dashboard) StatsText() string {
	return d.stats.GetText(true)
}

func (d *Dashboard) fetch() {
	d.gen++
	gen := d.gen
	d.snapshot = chart.NewSnapshot()
	d.Refresh()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), reportsTimeout)
		defer cancel()
		dao.FetchReports(ctx, d.app.Factory(), func(r dao.ReportResult) {
			if r.Err != nil {
				slog.Warn("report failed", "rid", r.RID.String(), "error", r.Err)
			}
			d.app.QueueUpdateDraw(func() {
				if gen != d.gen || !d.running {
					return
				}
				d.snapshot.Apply(r)
				d.Refresh()
			})
		})
	}()
}

// Refresh redraws every panel from the snapshot.
func (d *Dashboard) Refresh() {
	s := d.app.Styles()
	d.SetBackgroundColor(s.Bg)
	d.bottom.SetBackgroundColor(s.Bg)
	d.stats.SetBackgroundColor(s.Bg)
	d.stats.SetBorderColor(s.Border)
	d.stats.SetTitleColor(s.Title)
	d.stats.SetText(fmt.Sprintf("[%s]Total revenue[-] %s    [%s]Items sold[-] %s",
		ui.Tag(s.Header), d.stat(&dao.TotalRevenueRID, func() string { return render.Currency(d.snapshot.TotalRevenue) }),
		ui.Tag(s.Header), d.stat(&dao.TotalItemsSoldRID, func() string { return render.Number(d.snapshot.TotalItemsSold) }),
	))

	for _, p := range d.snapshot.Panels() {
		if v, ok := d.views[p.RID.String()]; ok {
			v.Update(p, d.snapshot.IsReady(p.RID), d.snapshot.Err(p.RID), d.snapshot.Subtitle(p))
		}
	}
}

func (d *Dashboard) stat(rid *dao.ResourceID, value func() string) string {
	switch {
	case d.snapshot.Err(rid) != nil:
		return failedStat
	case !d.snapshot.IsReady(rid):
		return pendingStat
	default:
		return value()
	}
}

func (d *Dashboard) layoutSales() {
	d.bottom.Clear()
	rids := []*dao.ResourceID{&dao.RevenueByProductRID, &dao.RevenueByCategoryRID}
	if d.mode == SalesUnits {
		rids = []*dao.ResourceID{&dao.ItemsSoldProductRID, &dao.ItemsSoldCategoryRID}
	}
	for _, rid := range rids {
		d.bottom.AddItem(d.views[rid.String()], 0, 1, false)
	}
}

func (d *Dashboard) toggleCmd(*tcell.EventKey) *tcell.EventKey {
	if d.mode == SalesRevenue {
		d.mode = SalesUnits
	} else {
		d.mode = SalesRevenue
	}
	d.layoutSales()

	return nil
}

func (d *Dashboard) refreshCmd(*tcell.EventKey) *tcell.EventKey {
	dao.InvalidateReports(d.app.Factory())
	d.fetch()

	return nil
}

func (d *Dashboard) backCmd(*tcell.EventKey) *tcell.EventKey {
	d.app.PrevCmd()
	return nil
}

func (d *Dashboard) exportCmd(*tcell.EventKey) *tcell.EventKey {
	path, err := d.Export(d.app.exportsDir)
	if err != nil {
		d.app.Flash().Err(err)
		return nil
	}
	d.app.Flash().Infof("Dashboard exported to %s", path)

	return nil
}

// Export writes the current snapshot as an HTML page under dir.
func (d *Dashboard) Export(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create exports dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf(exportFmt, time.Now().Format(exportStamp)))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	opts := chart.HTMLOptions{Dark: d.app.Styles().Theme() == config.ThemeDark}
	if err := chart.WriteHTML(f, d.snapshot, opts); err != nil {
		return "", err
	}

	return path, nil
}
