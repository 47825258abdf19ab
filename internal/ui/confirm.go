// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"github.com/derailed/tview"
)

const (
	confirmPage   = "confirm"
	confirmOK     = "Delete"
	confirmCancel = "Cancel"
)

// Confirm asks before a destructive action.
type Confirm struct {
	*Dialog

	modal     *tview.Modal
	styles    *Styles
	msg       string
	onConfirm func()
	onCancel  func()
}

// NewConfirm returns a delete confirmation.
func NewConfirm(d *Dialog, styles *Styles, msg string) *Confirm {
	c := Confirm{
		Dialog: d,
		modal:  tview.NewModal(),
		styles: styles,
		msg:    msg,
	}
	c.modal.SetText(msg)
	c.modal.AddButtons([]string{confirmOK, confirmCancel})
	c.modal.SetDoneFunc(c.handleButton)

	return &c
}

// ConfirmPageID is the page the confirmation shows on.
func ConfirmPageID() string {
	return confirmPage
}

// SetOnConfirm sets the callback for when user confirms.
func (c *Confirm) SetOnConfirm(fn func()) *Confirm {
	c.onConfirm = fn
	return c
}

// SetOnCancel sets the callback for when user cancels.
func (c *Confirm) SetOnCancel(fn func()) *Confirm {
	c.onCancel = fn
	return c
}

// Text returns the confirmation message.
func (c *Confirm) Text() string {
	return c.msg
}

// Show displays the confirmation.
func (c *Confirm) Show() {
	c.modal.SetBackgroundColor(c.styles.Bg)
	c.modal.SetTextColor(c.styles.Err)
	c.modal.SetButtonBackgroundColor(c.styles.Err)
	c.modal.SetButtonTextColor(c.styles.Bg)
	c.Dialog.Show(c.modal, c.modal, 0, 0)
}

// Accept confirms as if the delete button was pressed.
func (c *Confirm) Accept() {
	c.handleButton(0, confirmOK)
}

// Cancel dismisses as if the cancel button was pressed.
func (c *Confirm) Cancel() {
	c.handleButton(1, confirmCancel)
}

// handleButton processes button clicks. Esc reports index -1.
func (c *Confirm) handleButton(idx int, _ string) {
	c.Dismiss()
	if idx == 0 {
		if c.onConfirm != nil {
			c.onConfirm()
		}
		return
	}
	if c.onCancel != nil {
		c.onCancel()
	}
}
