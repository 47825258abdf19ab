// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package view

import (
	"context"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/ui"
)

const helpName = "help"

// HelpBind represents a single keybinding.
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection is one column of the help screen.
type HelpSection struct {
	Title string
	Binds []HelpBind
}

// HelpSections lists the bindings shown on the help screen.
var HelpSections = []HelpSection{
	{Title: "VIEWS", Binds: []HelpBind{
		{":dashboard", "Dashboard"},
		{":products", "Products"},
		{":categories", "Categories"},
		{":sales", "Sales"},
		{":theme <mode>", "Theme"},
		{":quit", "Quit"},
	}},
	{Title: "GENERAL", Binds: []HelpBind{
		{"<:>", "Command"},
		{"</>", "Filter"},
		{"<?>", "Help"},
		{"<esc>", "Back"},
		{"<ctrl-r>", "Refresh"},
		{"<ctrl-c>", "Quit"},
	}},
	{Title: "TABLE", Binds: []HelpBind{
		{"<j/k>", "Down/Up"},
		{"<g/G>", "Top/Bottom"},
		{"<enter>", "Details"},
		{"<tab>", "Focus Details"},
		{"<1-9>", "Sort Column"},
		{"<[ ]>", "Prev/Next Page"},
		{"<{ }>", "First/Last Page"},
		{"<=>", "Goto Page"},
	}},
	{Title: "ACTIONS", Binds: []HelpBind{
		{"<space>", "Mark"},
		{"<a>", "Mark Page"},
		{"<A>", "Mark All"},
		{"<c>", "Create"},
		{"<e>", "Edit"},
		{"<ctrl-d>", "Delete"},
		{"<r>", "Retry"},
		{"<t>", "Revenue/Units"},
		{"<ctrl-s>", "Export"},
	}},
}

// Help displays the keybindings.
type Help struct {
	*tview.Table

	app     *App
	actions *ui.KeyActions
}

// NewHelp creates a new help view.
func NewHelp(app *App) *Help {
	return &Help{
		Table:   tview.NewTable(),
		app:     app,
		actions: ui.NewKeyActions(),
	}
}

// Init builds the help screen.
func (h *Help) Init(context.Context) error {
	h.SetBorder(true)
	h.SetTitle(" Help ")
	h.SetTitleAlign(tview.AlignCenter)
	h.SetSelectable(false, false)

	h.actions.Bulk(ui.KeyMap{
		tcell.KeyEsc:   ui.NewKeyAction("Back", h.closeCmd, true),
		tcell.KeyEnter: ui.NewKeyAction("Back", h.closeCmd, false),
		ui.KeyQ:        ui.NewKeyAction("Back", h.closeCmd, false),
		ui.KeyHelp:     ui.NewKeyAction("Back", h.closeCmd, false),
	})
	h.SetInputCapture(h.actions.Handle)
	h.Refresh()

	return nil
}

// Name returns the component name for breadcrumbs.
func (*Help) Name() string {
	return helpName
}

// Hints returns menu hints for the help screen.
func (h *Help) Hints() ui.MenuHints {
	return h.actions.Hints()
}

// Start is a no-op.
func (*Help) Start() {}

// Stop is a no-op.
func (*Help) Stop() {}

func (h *Help) closeCmd(*tcell.EventKey) *tcell.EventKey {
	h.app.PrevCmd()
	return nil
}

// Refresh lays the sections out side by side.
func (h *Help) Refresh() {
	s := h.app.Styles()
	h.Clear()
	h.SetBackgroundColor(s.Bg)
	h.SetBorderColor(s.Focus)
	h.SetTitleColor(s.Title)

	var maxRows int
	for _, sec := range HelpSections {
		maxRows = max(maxRows, len(sec.Binds))
	}

	// key, description, spacer
	const colWidth = 3
	for i, sec := range HelpSections {
		base := i * colWidth
		h.SetCell(0, base, tview.NewTableCell(sec.Title).
			SetTextColor(s.Title).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
		for j, b := range sec.Binds {
			h.SetCell(j+1, base, tview.NewTableCell(tview.Escape(b.Key)).
				SetTextColor(s.Key).
				SetSelectable(false))
			h.SetCell(j+1, base+1, tview.NewTableCell(b.Desc).
				SetTextColor(s.Fg).
				SetSelectable(false).
				SetExpansion(1))
		}
		if i < len(HelpSections)-1 {
			for r := 0; r <= maxRows; r++ {
				h.SetCell(r, base+2, tview.NewTableCell("").SetSelectable(false).SetExpansion(1))
			}
		}
	}
	h.SetCell(maxRows+2, 0, tview.NewTableCell("<esc> to close").
		SetTextColor(s.Muted).
		SetSelectable(false))
}
