// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/model"
)

// Dialog overlays a primitive on top of the page host. While it shows, the
// shared modal state reports open so tables ignore row activation.
type Dialog struct {
	pages  *Pages
	modal  *model.ModalState
	focus  FocusFunc
	pageID string
	doneFn func()
	open   bool
}

// NewDialog returns a dialog hosted on pages. focus may be nil.
func NewDialog(pages *Pages, modal *model.ModalState, focus FocusFunc, pageID string) *Dialog {
	return &Dialog{
		pages:  pages,
		modal:  modal,
		focus:  focus,
		pageID: pageID,
	}
}

// SetDoneFn sets the callback fired once the dialog is dismissed.
func (d *Dialog) SetDoneFn(fn func()) {
	d.doneFn = fn
}

// IsOpen returns true while the dialog shows.
func (d *Dialog) IsOpen() bool {
	return d.open
}

// Show overlays p. A zero size shows p as is, for self centering primitives.
func (d *Dialog) Show(p, focus tview.Primitive, width, height int) {
	if d.open {
		return
	}
	d.open = true
	if d.modal != nil {
		d.modal.Open()
	}
	if width > 0 && height > 0 {
		p = Centered(p, width, height)
	}
	if d.pages != nil {
		d.pages.AddPage(d.pageID, p, true, true)
	}
	if d.focus != nil {
		d.focus(focus)
	}
}

// Dismiss removes the dialog.
func (d *Dialog) Dismiss() {
	if !d.open {
		return
	}
	d.open = false
	if d.pages != nil {
		d.pages.RemovePage(d.pageID)
	}
	if d.modal != nil {
		d.modal.Close()
	}
	if d.doneFn != nil {
		d.doneFn()
	}
}

// Centered lays p out in the middle of the screen.
func Centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}
