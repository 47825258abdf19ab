package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/model1"
	"github.com/stockr/stockr/internal/render"
)

const defaultChartHeight = "360px"

// HTMLOptions tunes the exported page.
type HTMLOptions struct {
	Title      string
	Dark       bool
	AssetsHost string
}

// WriteHTML renders every panel of the snapshot as one echarts page.
func WriteHTML(w io.Writer, s *Snapshot, o HTMLOptions) error {
	if o.Title == "" {
		o.Title = "stockr dashboard"
	}

	page := components.NewPage()
	page.PageTitle = o.Title
	if o.AssetsHost != "" {
		page.AssetsHost = o.AssetsHost
	}
	page.SetLayout(components.PageFlexLayout)

	for i, p := range s.Panels() {
		sub := s.Subtitle(p)
		switch p.Kind {
		case KindPie:
			page.AddCharts(pieChart(i, p, sub, o))
		default:
			page.AddCharts(barChart(i, p, sub, o))
		}
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("chart: render page: %w", err)
	}

	return nil
}

// Subtitle returns the caption under a panel: its load error or the
// matching total.
func (s *Snapshot) Subtitle(p Panel) string {
	if err := s.Err(p.RID); err != nil {
		return "Failed to load: " + err.Error()
	}
	switch p.RID.Resource {
	case api.RevenueByProduct, api.RevenueByCategory:
		return "Total revenue earned " + render.Currency(s.TotalRevenue)
	case api.ItemsSoldProduct, api.ItemsSoldCategory:
		return "Total products sold " + render.Number(s.TotalItemsSold)
	}
	return ""
}

func globalOpts(id int, title, sub string, o HTMLOptions, legend bool) []charts.GlobalOpts {
	theme := types.ThemeWesteros
	if o.Dark {
		theme = types.ThemeChalk
	}
	initOpts := opts.Initialization{
		ChartID: fmt.Sprintf("stockr_panel_%d", id),
		Theme:   theme,
		Width:   "560px",
		Height:  defaultChartHeight,
	}
	if o.AssetsHost != "" {
		initOpts.AssetsHost = o.AssetsHost
	}

	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: sub}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(legend)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func barChart(id int, p Panel, sub string, o HTMLOptions) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(id, p.Title, sub, o, false)...)

	labels := make([]string, len(p.Points))
	data := make([]opts.BarData, len(p.Points))
	for i, pt := range p.Points {
		labels[i] = pt.Label
		data[i] = opts.BarData{
			Name:      pt.Label,
			Value:     pt.Value,
			ItemStyle: &opts.ItemStyle{Color: hexColor(i)},
		}
	}
	bar.SetXAxis(labels)
	bar.AddSeries(p.Title, data)

	return bar
}

func pieChart(id int, p Panel, sub string, o HTMLOptions) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOpts(id, p.Title, sub, o, true)...)

	data := make([]opts.PieData, len(p.Points))
	for i, pt := range p.Points {
		data[i] = opts.PieData{
			Name:      pt.Label,
			Value:     pt.Value,
			ItemStyle: &opts.ItemStyle{Color: hexColor(i)},
		}
	}
	pie.AddSeries(p.Title, data, charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}))

	return pie
}

// hexColor maps the terminal chart palette to css colors.
func hexColor(i int) string {
	return fmt.Sprintf("#%06x", model1.PaletteColor(i).Hex())
}
