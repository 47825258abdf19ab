// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/mattn/go-runewidth"
	"github.com/stockr/stockr/internal/chart"
	"github.com/stockr/stockr/internal/model1"
)

const (
	// ChartLoading shows until a panel's report arrives.
	ChartLoading = "Loading…"

	// ChartFailed prefixes a panel whose report failed.
	ChartFailed = "Failed to load"

	// ChartEmpty shows for a report without rows.
	ChartEmpty = "No data"

	barRune       = "█"
	pieRune       = "■"
	maxLabelWidth = 24
	defaultWidth  = 48
)

// BarLines lays points out as horizontal bars scaled to the largest value
// within width columns.
func BarLines(pp []chart.Point, width int, format func(float64) string) []string {
	if len(pp) == 0 {
		return nil
	}
	labelW, valueW, top := 0, 0, 0.0
	vals := make([]string, len(pp))
	for i, p := range pp {
		labelW = max(labelW, runewidth.StringWidth(p.Label))
		vals[i] = format(p.Value)
		valueW = max(valueW, runewidth.StringWidth(vals[i]))
		top = math.Max(top, p.Value)
	}
	labelW = min(labelW, maxLabelWidth)
	barW := max(width-labelW-valueW-2, 1)

	ll := make([]string, 0, len(pp))
	for i, p := range pp {
		n := 0
		if top > 0 && p.Value > 0 {
			n = max(int(math.Round(p.Value/top*float64(barW))), 1)
		}
		ll = append(ll, fmt.Sprintf("%s %s %s",
			pad(p.Label, labelW),
			runewidth.FillRight(strings.Repeat(barRune, n), barW),
			vals[i],
		))
	}

	return ll
}

// PieLines lists each point with its share of the total.
func PieLines(pp []chart.Point, format func(float64) string) []string {
	if len(pp) == 0 {
		return nil
	}
	var total float64
	labelW := 0
	for _, p := range pp {
		total += math.Max(p.Value, 0)
		labelW = max(labelW, runewidth.StringWidth(p.Label))
	}
	labelW = min(labelW, maxLabelWidth)

	ll := make([]string, 0, len(pp))
	for _, p := range pp {
		share := 0.0
		if total > 0 {
			share = math.Max(p.Value, 0) / total * 100
		}
		ll = append(ll, fmt.Sprintf("%s %s %5.1f%% %s", pieRune, pad(p.Label, labelW), share, format(p.Value)))
	}

	return ll
}

func pad(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

// ChartView draws one analytics panel.
type ChartView struct {
	*tview.TextView

	styles *Styles
	panel  chart.Panel
	ready  bool
	err    error
	sub    string
	width  int
}

// NewChartView returns a panel in its loading state.
func NewChartView(styles *Styles, p chart.Panel) *ChartView {
	c := &ChartView{
		TextView: tview.NewTextView(),
		styles:   styles,
		panel:    p,
	}
	c.SetBorder(true)
	c.SetBorderPadding(0, 0, 1, 1)
	c.SetDynamicColors(true)
	c.SetWrap(false)
	c.Refresh()

	return c
}

// Update swaps in the panel data and its state.
func (c *ChartView) Update(p chart.Panel, ready bool, err error, sub string) {
	c.panel, c.ready, c.err, c.sub = p, ready, err, sub
	c.Refresh()
}

// Draw relayouts the bars when the panel width changes.
func (c *ChartView) Draw(screen tcell.Screen) {
	if _, _, w, _ := c.GetInnerRect(); w != c.width {
		c.width = w
		c.Refresh()
	}
	c.TextView.Draw(screen)
}

// Lines returns the body as plain text.
func (c *ChartView) Lines() []string {
	return strings.Split(c.GetText(true), "\n")
}

// Refresh rebuilds the panel text.
func (c *ChartView) Refresh() {
	c.SetBackgroundColor(c.styles.Bg)
	c.SetBorderColor(c.styles.Border)
	c.SetTitleColor(c.styles.Title)
	c.SetTitle(fmt.Sprintf(" %s ", c.panel.Title))

	var b strings.Builder
	switch {
	case c.err != nil:
		fmt.Fprintf(&b, "[%s]%s[-]\n%s", Tag(c.styles.Err), ChartFailed, tview.Escape(c.err.Error()))
	case !c.ready:
		fmt.Fprintf(&b, "[%s]%s[-]", Tag(c.styles.Skeleton), ChartLoading)
	case len(c.panel.Points) == 0:
		fmt.Fprintf(&b, "[%s]%s[-]", Tag(c.styles.Muted), ChartEmpty)
	default:
		c.writeSeries(&b)
	}
	c.SetText(b.String())
}

func (c *ChartView) writeSeries(b *strings.Builder) {
	format := c.panel.Format
	if format == nil {
		format = func(v float64) string { return fmt.Sprintf("%g", v) }
	}
	w := c.width
	if w <= 0 {
		w = defaultWidth
	}
	ll := BarLines(c.panel.Points, w, format)
	if c.panel.Kind == chart.KindPie {
		ll = PieLines(c.panel.Points, format)
	}
	for i, l := range ll {
		fmt.Fprintf(b, "[%s]%s[-]\n", Tag(model1.PaletteColor(i)), tview.Escape(l))
	}
	if c.sub != "" {
		fmt.Fprintf(b, "\n[%s]%s[-]", Tag(c.styles.Muted), tview.Escape(c.sub))
	}
}
