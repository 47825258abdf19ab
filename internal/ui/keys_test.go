// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestParseKey(t *testing.T) {
	uu := map[string]struct {
		s  string
		k  tcell.Key
		ok bool
	}{
		"rune":       {s: "p", k: tcell.Key('p'), ok: true},
		"padded":     {s: " x ", k: KeyX, ok: true},
		"shift":      {s: "Shift-P", k: tcell.Key('P'), ok: true},
		"shiftLower": {s: "shift-p", k: tcell.Key('P'), ok: true},
		"ctrl":       {s: "Ctrl-E", k: tcell.KeyCtrlE, ok: true},
		"ctrlLower":  {s: "ctrl-e", k: tcell.KeyCtrlE, ok: true},
		"named":      {s: "F2", k: tcell.KeyF2, ok: true},
		"ctrlDigit":  {s: "Ctrl-1"},
		"unknownMod": {s: "Meta-x"},
		"blank":      {s: ""},
		"bogus":      {s: "Hyper"},
	}
	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			key, ok := ParseKey(u.s)
			assert.Equal(t, u.ok, ok)
			if u.ok {
				assert.Equal(t, u.k, key)
			}
		})
	}
}

func TestKeyName(t *testing.T) {
	uu := map[string]struct {
		k tcell.Key
		e string
	}{
		"space": {k: KeySpace, e: "space"},
		"enter": {k: tcell.KeyEnter, e: "enter"},
		"esc":   {k: tcell.KeyEsc, e: "esc"},
		"tab":   {k: tcell.KeyTab, e: "tab"},
		"ctrl":  {k: tcell.KeyCtrlD, e: "Ctrl-D"},
		"rune":  {k: KeyC, e: "c"},
		"shift": {k: KeyShiftA, e: "A"},
		"digit": {k: NumKey(3), e: "3"},
	}
	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, KeyName(u.k))
		})
	}
}

func TestKeyActionsHandle(t *testing.T) {
	var hits []string
	aa := NewKeyActions()
	aa.Bulk(KeyMap{
		KeyC: NewKeyAction("Create", func(*tcell.EventKey) *tcell.EventKey {
			hits = append(hits, "c")
			return nil
		}, true),
		tcell.KeyCtrlD: NewKeyAction("Delete", func(*tcell.EventKey) *tcell.EventKey {
			hits = append(hits, "ctrl-d")
			return nil
		}, true),
	})
	assert.Equal(t, 2, aa.Len())

	assert.Nil(t, aa.Handle(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)))
	assert.Nil(t, aa.Handle(tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl)))

	evt := tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)
	assert.Equal(t, evt, aa.Handle(evt))
	assert.Equal(t, []string{"c", "ctrl-d"}, hits)

	aa.Delete(KeyC)
	_, ok := aa.Get(KeyC)
	assert.False(t, ok)
}

func TestKeyActionsHints(t *testing.T) {
	aa := NewKeyActions()
	aa.Bulk(KeyMap{
		KeyE:           NewKeyAction("Edit", nil, true),
		KeyC:           NewKeyAction("Create", nil, true),
		tcell.KeyCtrlR: NewKeyAction("Refresh", nil, false),
	})

	hh := aa.Hints()
	assert.Equal(t, MenuHints{
		{Mnemonic: "Ctrl-R", Description: "Refresh", Visible: false},
		{Mnemonic: "c", Description: "Create", Visible: true},
		{Mnemonic: "e", Description: "Edit", Visible: true},
	}, hh)
}
