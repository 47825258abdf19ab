// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stockr/stockr/internal/chart"
	"github.com/stockr/stockr/internal/config"
	"github.com/stockr/stockr/internal/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(v float64) string {
	return fmt.Sprintf("%g", v)
}

func TestBarLines(t *testing.T) {
	pp := []chart.Point{{Label: "A", Value: 10}, {Label: "Bee", Value: 5}, {Label: "C", Value: 0}}

	ll := BarLines(pp, 20, plain)
	require.Len(t, ll, 3)
	assert.Equal(t, 13, strings.Count(ll[0], barRune))
	assert.Equal(t, 7, strings.Count(ll[1], barRune))
	assert.Zero(t, strings.Count(ll[2], barRune))
	assert.True(t, strings.HasPrefix(ll[1], "Bee "))
	assert.True(t, strings.HasSuffix(ll[0], " 10"))

	assert.Nil(t, BarLines(nil, 20, plain))
}

func TestBarLinesTinyValuesShow(t *testing.T) {
	pp := []chart.Point{{Label: "big", Value: 1000}, {Label: "tiny", Value: 1}}

	ll := BarLines(pp, 30, plain)
	assert.Equal(t, 1, strings.Count(ll[1], barRune))
}

func TestBarLinesTruncatesLabels(t *testing.T) {
	long := strings.Repeat("x", 40)
	ll := BarLines([]chart.Point{{Label: long, Value: 1}}, 60, plain)

	require.Len(t, ll, 1)
	label, _, _ := strings.Cut(ll[0], " ")
	assert.Equal(t, maxLabelWidth, runewidth.StringWidth(label))
	assert.True(t, strings.HasSuffix(label, "…"))
}

func TestPieLines(t *testing.T) {
	pp := []chart.Point{{Label: "A", Value: 30}, {Label: "B", Value: 10}}

	assert.Equal(t, []string{
		"■ A  75.0% 30",
		"■ B  25.0% 10",
	}, PieLines(pp, plain))

	assert.Equal(t, []string{"■ A   0.0% 0"}, PieLines([]chart.Point{{Label: "A"}}, plain))
	assert.Nil(t, PieLines(nil, plain))
}

func TestChartViewStates(t *testing.T) {
	p := chart.Panel{RID: &dao.RevenueByProductRID, Title: "Revenue", Kind: chart.KindBar, Format: plain}
	c := NewChartView(NewStyles(config.ThemeDark), p)
	assert.Equal(t, []string{ChartLoading}, c.Lines())

	c.Update(p, false, errors.New("Bad Gateway"), "")
	assert.Equal(t, []string{ChartFailed, "Bad Gateway"}, c.Lines())

	c.Update(p, true, nil, "")
	assert.Equal(t, []string{ChartEmpty}, c.Lines())

	p.Points = []chart.Point{{Label: "A", Value: 2}, {Label: "B", Value: 1}}
	c.Update(p, true, nil, "Total 3")
	ll := c.Lines()
	require.GreaterOrEqual(t, len(ll), 4)
	assert.True(t, strings.HasPrefix(ll[0], "A "))
	assert.True(t, strings.HasPrefix(ll[1], "B "))
	assert.Equal(t, "Total 3", ll[len(ll)-1])
}

func TestSummaries(t *testing.T) {
	assert.Equal(t, "2 of 13 row(s) selected.", SelectionSummary(2, 13))
	assert.Equal(t, "Page 2 of 3", PageSummary(1, 3))
	assert.Equal(t, "Page 0 of 0", PageSummary(0, 0))
}
