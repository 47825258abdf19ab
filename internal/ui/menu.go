// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"fmt"
	"sort"

	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/model"
)

const (
	menuFmt = " [%s::b]<%s>[%s::-] %s "

	// MenuHeight is the number of hint rows.
	MenuHeight = maxRows
	maxRows    = 3
)

// Menu presents the key hints of the active view.
type Menu struct {
	*tview.Table

	styles *Styles
	hints  MenuHints
}

// NewMenu returns a new menu.
func NewMenu(styles *Styles) *Menu {
	m := &Menu{
		Table:  tview.NewTable(),
		styles: styles,
	}
	m.SetBorderPadding(0, 0, 1, 1)

	return m
}

// HydrateMenu populates the menu from hints.
func (m *Menu) HydrateMenu(hh MenuHints) {
	m.hints = hh
	m.Clear()
	m.SetBackgroundColor(m.styles.Bg)

	visible := make(MenuHints, 0, len(hh))
	for _, h := range hh {
		if h.Visible && !h.IsBlank() {
			visible = append(visible, h)
		}
	}
	sort.Stable(visible)

	for i, h := range visible {
		c := tview.NewTableCell(m.formatMenu(h))
		c.SetBackgroundColor(m.styles.Bg)
		m.SetCell(i%maxRows, i/maxRows, c)
	}
}

// Hints returns the hints last rendered.
func (m *Menu) Hints() MenuHints {
	return m.hints
}

func (m *Menu) formatMenu(h MenuHint) string {
	return fmt.Sprintf(menuFmt, Tag(m.styles.Key), tview.Escape(h.Mnemonic), Tag(m.styles.Fg), h.Description)
}

// StackPushed notifies a component was added.
func (m *Menu) StackPushed(c model.Component) {
	m.StackTop(c)
}

// StackPopped notifies a component was removed.
func (m *Menu) StackPopped(_, top model.Component) {
	if top == nil {
		m.hints = nil
		m.Clear()
	}
}

// StackTop notifies the top component.
func (m *Menu) StackTop(t model.Component) {
	if h, ok := t.(Hinter); ok {
		m.HydrateMenu(h.Hints())
	}
}
