// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"fmt"

	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/model"
)

// SelectionSummary renders "X of Y row(s) selected.".
func SelectionSummary(selected, total int) string {
	return fmt.Sprintf("%d of %d row(s) selected.", selected, total)
}

// PageSummary renders "Page N of M" from a zero based page index. N is 0
// when there are no pages.
func PageSummary(index, count int) string {
	n := 0
	if count > 0 {
		n = index + 1
	}
	return fmt.Sprintf("Page %d of %d", n, count)
}

// Footer shows the selection count and the pagination state of a table.
type Footer struct {
	*tview.Flex

	selection *tview.TextView
	pages     *tview.TextView
	styles    *Styles
}

// NewFooter returns a new footer.
func NewFooter(styles *Styles) *Footer {
	f := &Footer{
		Flex:      tview.NewFlex(),
		selection: tview.NewTextView(),
		pages:     tview.NewTextView(),
		styles:    styles,
	}
	f.selection.SetTextAlign(tview.AlignLeft)
	f.pages.SetTextAlign(tview.AlignRight)
	f.SetBorderPadding(0, 0, 1, 1)
	f.AddItem(f.selection, 0, 1, false)
	f.AddItem(f.pages, 0, 1, false)

	return f
}

// Update renders the footer from the table state.
func (f *Footer) Update(t *model.Table) {
	f.SetBackgroundColor(f.styles.Bg)
	for _, v := range []*tview.TextView{f.selection, f.pages} {
		v.SetBackgroundColor(f.styles.Bg)
		v.SetTextColor(f.styles.Muted)
	}
	f.selection.SetText(SelectionSummary(t.SelectedCount(), t.FilteredCount()))
	f.pages.SetText(PageSummary(t.PageIndex(), t.PageCount()))
}

// SelectionText returns the rendered selection summary.
func (f *Footer) SelectionText() string {
	return f.selection.GetText(true)
}

// PageText returns the rendered pagination summary.
func (f *Footer) PageText() string {
	return f.pages.GetText(true)
}
