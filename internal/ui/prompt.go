// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"strconv"
	"unicode"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const (
	promptPage  = "goto"
	promptLabel = "Go to page: "
	promptWidth = 32
)

// ClampPage turns a 1 based page entry into a zero based index within
// [0, count). Blank or invalid entries are rejected.
func ClampPage(entry string, count int) (int, bool) {
	n, err := strconv.Atoi(entry)
	if err != nil || count == 0 {
		return 0, false
	}
	switch {
	case n < 1:
		n = 1
	case n > count:
		n = count
	}

	return n - 1, true
}

// Prompt asks for a page number to jump to.
type Prompt struct {
	*Dialog

	input  *tview.InputField
	styles *Styles
	count  func() int
	jumpFn func(int)
}

// NewPrompt returns a go to page prompt. count reports the page count at
// submit time.
func NewPrompt(d *Dialog, styles *Styles, count func() int, jump func(int)) *Prompt {
	p := Prompt{
		Dialog: d,
		input:  tview.NewInputField(),
		styles: styles,
		count:  count,
		jumpFn: jump,
	}
	p.input.SetLabel(promptLabel)
	p.input.SetBorder(true)
	p.input.SetAcceptanceFunc(func(_ string, r rune) bool {
		return unicode.IsDigit(r)
	})
	p.input.SetDoneFunc(p.done)

	return &p
}

// PromptPageID is the page the prompt shows on.
func PromptPageID() string {
	return promptPage
}

// SetText sets the current entry.
func (p *Prompt) SetText(s string) {
	p.input.SetText(s)
}

// Show displays the prompt.
func (p *Prompt) Show() {
	p.input.SetText("")
	p.input.SetBackgroundColor(p.styles.Bg)
	p.input.SetBorderColor(p.styles.Focus)
	p.input.SetLabelColor(p.styles.Title)
	p.input.SetFieldBackgroundColor(p.styles.Bg)
	p.input.SetFieldTextColor(p.styles.Fg)
	p.Dialog.Show(p.input, p.input, promptWidth, 3)
}

// Submit jumps to the entered page and closes the prompt.
func (p *Prompt) Submit() {
	p.done(tcell.KeyEnter)
}

func (p *Prompt) done(k tcell.Key) {
	entry := p.input.GetText()
	p.Dismiss()
	if k != tcell.KeyEnter {
		return
	}
	if idx, ok := ClampPage(entry, p.count()); ok && p.jumpFn != nil {
		p.jumpFn(idx)
	}
}
