// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"errors"
	"testing"

	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/config"
	"github.com/stockr/stockr/internal/form"
	"github.com/stockr/stockr/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDialog(pageID string) (*Dialog, *Pages, *model.ModalState, *[]tview.Primitive) {
	pages, modal := NewPages(), model.NewModalState()
	var focused []tview.Primitive
	d := NewDialog(pages, modal, func(p tview.Primitive) {
		focused = append(focused, p)
	}, pageID)

	return d, pages, modal, &focused
}

func TestDialogLifecycle(t *testing.T) {
	d, pages, modal, focused := newTestDialog("test")
	var done int
	d.SetDoneFn(func() { done++ })

	box := tview.NewBox()
	d.Show(box, box, 10, 5)
	assert.True(t, d.IsOpen())
	assert.True(t, modal.IsOpen())
	assert.True(t, pages.HasPage("test"))
	assert.Equal(t, []tview.Primitive{box}, *focused)

	d.Show(box, box, 10, 5)
	assert.Len(t, *focused, 1)

	d.Dismiss()
	d.Dismiss()
	assert.False(t, d.IsOpen())
	assert.False(t, modal.IsOpen())
	assert.False(t, pages.HasPage("test"))
	assert.Equal(t, 1, done)
}

func TestConfirm(t *testing.T) {
	uu := map[string]struct {
		act                func(*Confirm)
		confirmed, cancels int
	}{
		"accept": {act: (*Confirm).Accept, confirmed: 1},
		"cancel": {act: (*Confirm).Cancel, cancels: 1},
		"esc":    {act: func(c *Confirm) { c.handleButton(-1, "") }, cancels: 1},
	}
	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			d, _, modal, _ := newTestDialog(ConfirmPageID())
			var confirmed, cancels int
			c := NewConfirm(d, NewStyles(config.ThemeLight), "Delete 2 products?").
				SetOnConfirm(func() { confirmed++ }).
				SetOnCancel(func() { cancels++ })
			assert.Equal(t, "Delete 2 products?", c.Text())

			c.Show()
			assert.True(t, modal.IsOpen())
			u.act(c)
			assert.False(t, modal.IsOpen())
			assert.Equal(t, u.confirmed, confirmed)
			assert.Equal(t, u.cancels, cancels)
		})
	}
}

func TestClampPage(t *testing.T) {
	uu := map[string]struct {
		entry string
		count int
		e     int
		ok    bool
	}{
		"first":   {entry: "1", count: 5, e: 0, ok: true},
		"middle":  {entry: "3", count: 5, e: 2, ok: true},
		"over":    {entry: "99", count: 5, e: 4, ok: true},
		"zero":    {entry: "0", count: 5, e: 0, ok: true},
		"blank":   {entry: "", count: 5},
		"garbage": {entry: "x", count: 5},
		"noPages": {entry: "1", count: 0},
	}
	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			idx, ok := ClampPage(u.entry, u.count)
			assert.Equal(t, u.ok, ok)
			assert.Equal(t, u.e, idx)
		})
	}
}

func TestPromptJumps(t *testing.T) {
	d, _, modal, _ := newTestDialog(PromptPageID())
	jumped := -1
	p := NewPrompt(d, NewStyles(config.ThemeDark), func() int { return 3 }, func(idx int) {
		jumped = idx
	})

	p.Show()
	assert.True(t, modal.IsOpen())
	p.SetText("7")
	p.Submit()
	assert.False(t, modal.IsOpen())
	assert.Equal(t, 2, jumped)
}

func testFields() []FieldSpec {
	return []FieldSpec{
		{Name: form.FieldName, Label: "Name", Value: "Snacks"},
		{Name: form.FieldCategory, Label: "Category", Kind: FieldChoice, Value: "Frozen", Options: []string{"Beverages", "Frozen"}},
	}
}

func TestFormDialogValues(t *testing.T) {
	d, _, _, _ := newTestDialog(FormPageID())
	f := NewFormDialog(d, NewStyles(config.ThemeDark), "Edit", "Save", testFields())

	assert.Equal(t, "Edit", f.Title())
	assert.Equal(t, "Snacks", f.Values()[form.FieldName])
	assert.Equal(t, "Frozen", f.Values()[form.FieldCategory])

	f.SetValue(form.FieldName, "Chips")
	f.SetValue(form.FieldCategory, "Beverages")
	f.SetValue("bogus", "x")
	assert.Equal(t, "Chips", f.Values()[form.FieldName])
	assert.Equal(t, "Beverages", f.Values()[form.FieldCategory])
}

func TestFormDialogSubmit(t *testing.T) {
	d, _, modal, _ := newTestDialog(FormPageID())
	f := NewFormDialog(d, NewStyles(config.ThemeDark), "New", "Create", testFields())
	var calls int
	f.SetSubmitFn(func(v form.Values) error {
		calls++
		switch v.Get(form.FieldName) {
		case "":
			return form.FieldErrors{form.FieldName: form.MsgRequired}
		case "boom":
			return errors.New("Conflict")
		}
		f.Close()
		return nil
	})
	f.Show()
	require.True(t, modal.IsOpen())

	f.SetValue(form.FieldName, "")
	f.Submit()
	assert.Equal(t, "Name: "+form.MsgRequired, f.ErrorText())
	assert.True(t, f.IsOpen())

	f.SetValue(form.FieldName, "boom")
	f.Submit()
	assert.Equal(t, "Conflict", f.ErrorText())

	f.SetBusy(true)
	f.Submit()
	assert.Equal(t, 2, calls)

	f.SetBusy(false)
	f.SetValue(form.FieldName, "ok")
	f.Submit()
	assert.Equal(t, 3, calls)
	assert.Empty(t, f.ErrorText())
	assert.False(t, f.IsOpen())
	assert.False(t, modal.IsOpen())
}
