// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"sync"
	"testing"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/stockr/stockr/internal/config"
	"github.com/stockr/stockr/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filterSink struct {
	mx   sync.Mutex
	seen []string
}

func (f *filterSink) queue(fn func()) {
	f.mx.Lock()
	defer f.mx.Unlock()
	fn()
}

func (f *filterSink) record(s string) {
	f.seen = append(f.seen, s)
}

func (f *filterSink) values() []string {
	f.mx.Lock()
	defer f.mx.Unlock()
	return append([]string(nil), f.seen...)
}

func newTestCmdBar() (*CmdBar, *filterSink) {
	sink := new(filterSink)
	c := NewCmdBar(NewStyles(config.ThemeDark), sink.queue, 10*time.Millisecond)
	c.SetFilterFn(sink.record)
	c.SetCommands([]string{"products", "categories", "sales", "prod"})

	return c, sink
}

func TestCmdBarSuggestions(t *testing.T) {
	c, _ := newTestCmdBar()
	var ran []string
	c.SetCommandFn(func(s string) { ran = append(ran, s) })

	c.Activate(ModeCommand)
	require.True(t, c.IsActive())
	c.Type("pr")
	assert.Equal(t, []string{"prod", "products"}, c.Suggestions())

	c.keyboard(key(tcell.KeyDown))
	c.keyboard(key(tcell.KeyTab))
	assert.Equal(t, "products", c.InputText())
	assert.Empty(t, c.Suggestions())

	c.keyboard(key(tcell.KeyEnter))
	assert.False(t, c.IsActive())
	assert.Equal(t, ModeNormal, c.Mode())
	assert.Equal(t, []string{"products"}, ran)
}

func TestCmdBarEditing(t *testing.T) {
	c, _ := newTestCmdBar()
	var ran []string
	c.SetCommandFn(func(s string) { ran = append(ran, s) })

	c.Activate(ModeCommand)
	c.Type("salez")
	assert.Empty(t, c.Suggestions())
	c.keyboard(key(tcell.KeyBackspace2))
	assert.Equal(t, "sale", c.InputText())
	assert.Equal(t, []string{"sales"}, c.Suggestions())

	c.keyboard(key(tcell.KeyCtrlU))
	assert.Empty(t, c.InputText())
	c.keyboard(key(tcell.KeyEnter))
	assert.Empty(t, ran)
}

func TestCmdBarInactivePassesKeys(t *testing.T) {
	c, _ := newTestCmdBar()

	evt := runeKey('x')
	assert.Equal(t, evt, c.keyboard(evt))
	assert.Empty(t, c.InputText())
}

func TestCmdBarFilterDebounced(t *testing.T) {
	c, sink := newTestCmdBar()
	var active []bool
	c.SetActiveFn(func(b bool) { active = append(active, b) })

	c.Activate(ModeFilter)
	sink.queue(func() { c.Type("chips") })
	require.Eventually(t, func() bool {
		vv := sink.values()
		return len(vv) == 1 && vv[0] == "chips"
	}, time.Second, 5*time.Millisecond)

	sink.queue(func() { c.keyboard(key(tcell.KeyEnter)) })
	assert.Equal(t, "chips", c.FilterText())
	assert.Equal(t, []bool{true, false}, active)

	c.Activate(ModeFilter)
	assert.Equal(t, "chips", c.InputText())
	sink.queue(func() { c.keyboard(key(tcell.KeyEsc)) })
	assert.Empty(t, c.FilterText())
	assert.Equal(t, []string{"chips", ""}, sink.values())
}

func TestCmdBarFilterEnterBeforeDebounce(t *testing.T) {
	sink := new(filterSink)
	c := NewCmdBar(NewStyles(config.ThemeDark), sink.queue, time.Hour)
	c.SetFilterFn(sink.record)

	c.Activate(ModeFilter)
	c.Type("soda")
	c.keyboard(key(tcell.KeyEnter))
	assert.Equal(t, "soda", c.FilterText())
	assert.Equal(t, []string{"soda"}, sink.values())
}

func TestCmdBarSyncFilter(t *testing.T) {
	c, sink := newTestCmdBar()

	c.SyncFilter("rice")
	assert.Equal(t, "rice", c.FilterText())
	assert.Empty(t, sink.values())
}

func TestFooterUpdate(t *testing.T) {
	m := model.NewTable(testHeader(), 10, model.NewModalState())
	m.SetData(testData(13))
	m.ToggleRow("2")
	f := NewFooter(NewStyles(config.ThemeDark))

	f.Update(m)
	assert.Equal(t, "1 of 13 row(s) selected.", f.SelectionText())
	assert.Equal(t, "Page 1 of 2", f.PageText())
}
