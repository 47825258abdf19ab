// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"fmt"
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/model"
	"github.com/stockr/stockr/internal/model1"
)

const (
	// NoResults is the single row of an empty collection.
	NoResults = "No results"

	// RetryLabel is the retry control of the error state.
	RetryLabel = "[ Retry ]"

	// SkeletonCell fills the placeholder rows while loading.
	SkeletonCell = "░░░░░░░░"

	// CheckedBox and UncheckedBox fill the selection column.
	CheckedBox   = "[x]"
	UncheckedBox = "[ ]"

	retryRef  = "__retry__"
	sortAsc   = " ↑"
	sortDesc  = " ↓"
	titleFmt  = " [::b]%s[-::-][%d] "
	filterFmt = "</%s> "
)

// Table renders a model.Table. It owns no data and issues no requests:
// retry and row activation are reported to the caller.
type Table struct {
	*tview.Table

	name     string
	model    *model.Table
	styles   *Styles
	actions  *KeyActions
	colorer  model1.ColorerFunc
	retryFn  func()
	selectFn func(model1.Row)
	clicked  bool
}

// NewTable returns a table widget over m.
func NewTable(name string, m *model.Table, styles *Styles) *Table {
	t := &Table{
		Table:   tview.NewTable(),
		name:    name,
		model:   m,
		styles:  styles,
		actions: NewKeyActions(),
		colorer: model1.DefaultColorer,
	}
	t.SetFixed(1, 0)
	t.SetBorder(true)
	t.SetBorderAttributes(tcell.AttrBold)
	t.SetBorderPadding(0, 0, 1, 1)
	t.SetSelectable(true, false)
	t.SetInputCapture(t.keyboard)
	t.SetMouseCapture(t.mouse)
	t.SetSelectionChangedFunc(t.selectionChanged)
	t.bindKeys()

	return t
}

// Model returns the table view model.
func (t *Table) Model() *model.Table {
	return t.model
}

// Actions returns the key actions.
func (t *Table) Actions() *KeyActions {
	return t.actions
}

// Hints returns menu hints for key bindings.
func (t *Table) Hints() MenuHints {
	return t.actions.Hints()
}

// SetColorerFn sets the row colorer.
func (t *Table) SetColorerFn(f model1.ColorerFunc) {
	if f != nil {
		t.colorer = f
	}
}

// SetRetryFn sets the callback of the Retry control.
func (t *Table) SetRetryFn(f func()) {
	t.retryFn = f
}

// SetSelectFn sets the callback fired once a row is activated.
func (t *Table) SetSelectFn(f func(model1.Row)) {
	t.selectFn = f
}

func (t *Table) bindKeys() {
	t.actions.Bulk(KeyMap{
		KeySpace:  NewKeyAction("Mark", t.markCmd, true),
		KeyA:      NewKeyAction("Mark Page", t.markPageCmd, true),
		KeyShiftA: NewKeyAction("Mark All", t.markAllCmd, true),
		KeyLBrack: NewKeyAction("Prev Page", t.pageCmd(t.model.PrevPage), true),
		KeyRBrack: NewKeyAction("Next Page", t.pageCmd(t.model.NextPage), true),
		KeyLBrace: NewKeyAction("First Page", t.pageCmd(t.model.FirstPage), false),
		KeyRBrace: NewKeyAction("Last Page", t.pageCmd(t.model.LastPage), false),
		KeyR:      NewKeyAction("Retry", t.retryCmd, false),
	})
	for i := 1; i <= 9; i++ {
		col := i - 1
		t.actions.Add(NumKey(i), NewKeyAction("", func(*tcell.EventKey) *tcell.EventKey {
			t.sortCmd(col)
			return nil
		}, false))
	}
}

func (t *Table) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	row, _ := t.GetSelection()
	count := t.GetRowCount()

	switch AsKey(evt) {
	case KeyJ, tcell.KeyDown:
		t.move(row, +1, count)
		return nil
	case KeyK, tcell.KeyUp:
		t.move(row, -1, count)
		return nil
	case KeyG, tcell.KeyHome:
		t.selectFirst()
		return nil
	case KeyShiftG, tcell.KeyEnd:
		t.selectLast()
		return nil
	case tcell.KeyEnter:
		t.activate(row)
		return nil
	}

	return t.actions.Handle(evt)
}

func (t *Table) mouse(action tview.MouseAction, evt *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action == tview.MouseLeftClick {
		t.clicked = true
	}
	return action, evt
}

func (t *Table) selectionChanged(row, _ int) {
	if !t.clicked {
		return
	}
	t.clicked = false
	t.activate(row)
}

func (t *Table) move(row, delta, count int) {
	for r := row + delta; r > 0 && r < count; r += delta {
		if c := t.GetCell(r, 0); c != nil && c.NotSelectable {
			continue
		}
		t.Select(r, 0)
		return
	}
}

func (t *Table) selectFirst() {
	t.move(0, +1, t.GetRowCount())
}

func (t *Table) selectLast() {
	count := t.GetRowCount()
	t.move(count, -1, count)
}

// activate runs Retry or opens the detail panel for the row under cursor.
func (t *Table) activate(row int) {
	ref := t.refAt(row)
	if ref == retryRef {
		t.retry()
		return
	}
	if ref == "" || !t.model.SelectRow(ref) {
		return
	}
	if r, ok := t.model.SelectedRow(); ok && t.selectFn != nil {
		t.selectFn(r)
	}
}

func (t *Table) retry() {
	if t.retryFn != nil {
		t.retryFn()
	}
}

func (t *Table) refAt(row int) string {
	if row <= 0 {
		return ""
	}
	c := t.GetCell(row, 0)
	if c == nil {
		return ""
	}
	if s, ok := c.GetReference().(string); ok {
		return s
	}
	return ""
}

// CurrentID returns the id of the row under cursor.
func (t *Table) CurrentID() string {
	row, _ := t.GetSelection()
	if id := t.refAt(row); id != retryRef {
		return id
	}
	return ""
}

func (t *Table) markCmd(*tcell.EventKey) *tcell.EventKey {
	row, _ := t.GetSelection()
	id := t.CurrentID()
	if id == "" {
		return nil
	}
	t.model.ToggleRow(id)
	t.Refresh()
	t.move(row, +1, t.GetRowCount())
	return nil
}

func (t *Table) markPageCmd(*tcell.EventKey) *tcell.EventKey {
	t.model.TogglePage()
	t.Refresh()
	return nil
}

func (t *Table) markAllCmd(*tcell.EventKey) *tcell.EventKey {
	t.model.ToggleAll()
	t.Refresh()
	return nil
}

func (t *Table) pageCmd(f func()) ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		f()
		t.Refresh()
		t.selectFirst()
		return nil
	}
}

func (t *Table) retryCmd(*tcell.EventKey) *tcell.EventKey {
	if t.model.Status() == model.StatusError {
		t.retry()
	}
	return nil
}

// sortCmd toggles the sort of the nth visible column.
func (t *Table) sortCmd(n int) {
	cols := t.model.Header().Visible()
	if n >= len(cols) {
		return
	}
	if t.model.ToggleSort(cols[n]) {
		t.Refresh()
	}
}

// Refresh redraws the table from its model. Call it on the UI goroutine.
func (t *Table) Refresh() {
	current := t.CurrentID()
	t.clicked = false

	t.Clear()
	t.SetBorderColor(t.styles.Border)
	t.SetBackgroundColor(t.styles.Bg)
	t.SetSelectedStyle(tcell.StyleDefault.Foreground(t.styles.Fg).Background(t.styles.Cursor))
	t.buildHeader()

	switch t.model.Status() {
	case model.StatusPending:
		t.buildSkeleton()
	case model.StatusError:
		t.buildError(t.model.Err())
	default:
		if t.model.FilteredCount() == 0 {
			t.buildMessage(NoResults, t.styles.Muted)
		} else {
			t.buildRows(current)
		}
	}
	t.updateTitle()
}

func (t *Table) buildHeader() {
	h := t.model.Header()
	box := UncheckedBox
	if rr := t.model.PageRows(); len(rr) > 0 && t.allMarked(rr) {
		box = CheckedBox
	}
	t.SetCell(0, 0, t.headerCell(tview.Escape(box), tview.AlignLeft))

	spec, sorted := t.model.Sort()
	for i, c := range h.Visible() {
		name := h[c].Name
		if sorted && spec.Column == c {
			if spec.Desc {
				name += sortDesc
			} else {
				name += sortAsc
			}
		}
		t.SetCell(0, i+1, t.headerCell(name, h[c].Align))
	}
}

func (t *Table) allMarked(rr []model1.RankedRow) bool {
	for _, r := range rr {
		if !t.model.IsSelected(r.ID) {
			return false
		}
	}
	return true
}

func (t *Table) headerCell(s string, align int) *tview.TableCell {
	return tview.NewTableCell(s).
		SetTextColor(t.styles.Header).
		SetBackgroundColor(t.styles.Bg).
		SetAttributes(tcell.AttrBold).
		SetAlign(align).
		SetExpansion(1).
		SetSelectable(false)
}

func (t *Table) buildSkeleton() {
	cols := len(t.model.Header().Visible())
	for r := 1; r <= t.model.PageSize(); r++ {
		t.SetCell(r, 0, t.plainCell(tview.Escape(UncheckedBox), t.styles.Skeleton).SetSelectable(false))
		for c := 1; c <= cols; c++ {
			t.SetCell(r, c, t.plainCell(SkeletonCell, t.styles.Skeleton).SetSelectable(false))
		}
	}
}

func (t *Table) buildError(err error) {
	msg := tview.Escape("Error: " + api.StatusText(err))
	t.SetCell(1, 0, t.plainCell("", t.styles.Err).SetSelectable(false))
	t.SetCell(1, 1, t.plainCell(msg, t.styles.Err).SetAlign(tview.AlignCenter).SetSelectable(false))
	t.SetCell(2, 0, t.plainCell("", t.styles.Fg).SetReference(retryRef))
	t.SetCell(2, 1, t.plainCell(tview.Escape(RetryLabel), t.styles.Focus).SetAlign(tview.AlignCenter).SetAttributes(tcell.AttrBold))
	t.Select(2, 0)
}

func (t *Table) buildMessage(msg string, color tcell.Color) {
	t.SetCell(1, 0, t.plainCell("", color).SetSelectable(false))
	t.SetCell(1, 1, t.plainCell(msg, color).SetAlign(tview.AlignCenter).SetSelectable(false))
}

func (t *Table) buildRows(current string) {
	h := t.model.Header()
	cols := h.Visible()
	cursor := 1
	for i, rr := range t.model.PageRows() {
		row := i + 1
		color := t.styles.Fg
		if re, ok := t.model.RowEvent(rr.ID); ok && t.colorer != nil {
			if c := t.colorer(h, &re); c != model1.StdColor {
				color = c
			}
		}
		box := UncheckedBox
		if t.model.IsSelected(rr.ID) {
			box, color = CheckedBox, t.styles.Mark
		}
		t.SetCell(row, 0, t.plainCell(tview.Escape(box), color).SetReference(rr.ID))
		for j, c := range cols {
			var field string
			if c < len(rr.Fields) {
				field = rr.Fields[c]
			}
			if h[c].Decorator != nil {
				field = h[c].Decorator(field)
			}
			cell := t.plainCell(tview.Escape(field), color).SetAlign(h[c].Align)
			if h[c].Width > 0 {
				cell.SetMaxWidth(h[c].Width)
			}
			t.SetCell(row, j+1, cell)
		}
		if rr.ID == current {
			cursor = row
		}
	}
	t.Select(cursor, 0)
	t.ScrollToBeginning()
}

func (t *Table) plainCell(s string, color tcell.Color) *tview.TableCell {
	return tview.NewTableCell(s).
		SetTextColor(color).
		SetBackgroundColor(t.styles.Bg).
		SetExpansion(1)
}

func (t *Table) updateTitle() {
	title := fmt.Sprintf(titleFmt, t.name, t.model.FilteredCount())
	if q := t.model.Filter(); q != "" {
		title += fmt.Sprintf(filterFmt, tview.Escape(q))
	}
	t.SetTitle(strings.TrimRight(title, " ") + " ")
	t.SetTitleColor(t.styles.Title)
}
