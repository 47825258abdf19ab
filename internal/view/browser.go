// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package view

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/dao"
	"github.com/stockr/stockr/internal/model"
	"github.com/stockr/stockr/internal/model1"
	"github.com/stockr/stockr/internal/render"
	"github.com/stockr/stockr/internal/ui"
)

const (
	detailsWidth  = 48
	footerHeight  = 1
	mutateTimeout = 30 * time.Second
)

// ImageFunc returns the asset url of a record if its kind carries one.
type ImageFunc func(o any) (url string, ok bool)

// Browser lists one backend collection. It owns the fetch lifecycle and the
// mutations, while the table widget owns rendering.
type Browser struct {
	*tview.Flex

	app         *App
	rid         *dao.ResourceID
	title       string
	noun        string
	query       *model.Query
	model       *model.Table
	table       *ui.Table
	footer      *ui.Footer
	details     *ui.Details
	detailer    render.Detailer
	imageFn     ImageFunc
	confirm     *ui.Confirm
	prompt      *ui.Prompt
	form        *ui.FormDialog
	detailsOpen bool
	running     bool
}

// NewBrowser returns a browser over rid. noun names one record.
func NewBrowser(app *App, rid *dao.ResourceID, title, noun string) *Browser {
	return &Browser{
		Flex:  tview.NewFlex(),
		app:   app,
		rid:   rid,
		title: title,
		noun:  noun,
	}
}

// Init initializes the browser component.
func (b *Browser) Init(context.Context) error {
	b.query = model.NewQuery(b.rid, b.app.Factory(), b.app.Config().Stockr.GetRefreshRate())
	if err := b.query.Init(); err != nil {
		return err
	}
	r, err := model.RendererFor(b.rid)
	if err != nil {
		return err
	}
	if d, ok := r.(render.Detailer); ok {
		b.detailer = d
	}

	b.model = model.NewTable(r.Header(), b.app.Config().Stockr.GetPageSize(), b.app.Modal())
	b.model.SetStateChangedFn(func(model.TableState) {
		b.footer.Update(b.model)
	})
	b.table = ui.NewTable(b.title, b.model, b.app.Styles())
	b.table.SetColorerFn(r.ColorerFunc())
	b.table.SetRetryFn(b.retry)
	b.table.SetSelectFn(b.openDetails)
	b.footer = ui.NewFooter(b.app.Styles())

	var checker ui.AssetChecker
	if c := b.app.Factory().Client(); c != nil {
		checker = c
	}
	b.details = ui.NewDetails(b.app.Styles(), checker, b.app.QueueUpdateDraw)
	b.details.SetCloseFn(b.CloseDetails)
	b.details.Actions().Add(tcell.KeyTab, ui.NewKeyAction("Table", b.focusCmd, false))

	left := tview.NewFlex().SetDirection(tview.FlexRow)
	left.AddItem(b.table, 0, 1, true)
	left.AddItem(b.footer, footerHeight, 0, false)
	b.AddItem(left, 0, 1, true)

	b.bindKeys(b.table.Actions())
	b.refresh()

	return nil
}

// Name returns the component name for breadcrumbs.
func (b *Browser) Name() string {
	return b.rid.Resource
}

// Title returns the table title.
func (b *Browser) Title() string {
	return b.title
}

// Table returns the table widget.
func (b *Browser) Table() *ui.Table {
	return b.table
}

// Model returns the table view model.
func (b *Browser) Model() *model.Table {
	return b.model
}

// Footer returns the table footer.
func (b *Browser) Footer() *ui.Footer {
	return b.footer
}

// Details returns the detail panel.
func (b *Browser) Details() *ui.Details {
	return b.details
}

// Confirm returns the last delete confirmation.
func (b *Browser) Confirm() *ui.Confirm {
	return b.confirm
}

// Prompt returns the last page prompt.
func (b *Browser) Prompt() *ui.Prompt {
	return b.prompt
}

// SetImageFn sets how records expose their asset url.
func (b *Browser) SetImageFn(f ImageFunc) {
	b.imageFn = f
}

// Hints returns menu hints for this browser.
func (b *Browser) Hints() ui.MenuHints {
	return b.table.Hints()
}

// Refresh restyles the browser.
func (b *Browser) Refresh() {
	b.SetBackgroundColor(b.app.Styles().Bg)
	b.refresh()
	if b.detailsOpen {
		b.details.Refresh()
	}
}

// Start starts watching the collection.
func (b *Browser) Start() {
	b.running = true
	b.query.AddListener(b)
	go func() {
		if err := b.query.Watch(context.Background()); err != nil {
			slog.Warn("fetch failed", "rid", b.rid.String(), "error", err)
		}
	}()
}

// Stop stops watching the collection.
func (b *Browser) Stop() {
	b.running = false
	b.query.RemoveListener(b)
	b.query.Stop()
	b.CloseDetails()
}

func (b *Browser) bindKeys(aa *ui.KeyActions) {
	aa.Bulk(ui.KeyMap{
		tcell.KeyCtrlR: ui.NewKeyAction("Refresh", b.refreshCmd, true),
		tcell.KeyEsc:   ui.NewKeyAction("Back", b.escCmd, false),
		tcell.KeyTab:   ui.NewKeyAction("Details", b.focusCmd, false),
		ui.KeyEqual:    ui.NewKeyAction("Goto Page", b.gotoCmd, true),
	})
}

// BindDelete enables bulk deletes.
func (b *Browser) BindDelete() {
	b.table.Actions().Add(tcell.KeyCtrlD, ui.NewKeyAction("Delete", b.deleteCmd, true))
}

func (b *Browser) refresh() {
	b.table.Refresh()
	b.footer.Update(b.model)
}

func (b *Browser) retry() {
	go func() {
		if err := b.query.Refresh(context.Background()); err != nil {
			slog.Warn("retry failed", "rid", b.rid.String(), "error", err)
		}
	}()
}

func (b *Browser) refreshCmd(*tcell.EventKey) *tcell.EventKey {
	b.retry()
	return nil
}

// escCmd clears the filter first, then the detail panel, then goes back.
func (b *Browser) escCmd(*tcell.EventKey) *tcell.EventKey {
	switch {
	case b.model.Filter() != "":
		b.SetFilter("")
		b.app.CmdBar().SyncFilter("")
	case b.detailsOpen:
		b.CloseDetails()
	default:
		b.app.PrevCmd()
	}
	return nil
}

func (b *Browser) focusCmd(*tcell.EventKey) *tcell.EventKey {
	if !b.detailsOpen {
		return nil
	}
	if b.details.HasFocus() {
		b.app.SetFocus(b.table)
	} else {
		b.app.SetFocus(b.details)
	}
	return nil
}

func (b *Browser) gotoCmd(*tcell.EventKey) *tcell.EventKey {
	if b.model.PageCount() == 0 {
		return nil
	}
	b.prompt = ui.NewPrompt(b.app.NewDialog(ui.PromptPageID(), b.table), b.app.Styles(), b.model.PageCount, func(idx int) {
		b.model.SetPageIndex(idx)
		b.refresh()
	})
	b.prompt.Show()

	return nil
}

// SetFilter applies the global filter.
func (b *Browser) SetFilter(q string) {
	b.model.SetFilter(q)
	b.refresh()
}

// Filter returns the global filter.
func (b *Browser) Filter() string {
	return b.model.Filter()
}

// CurrentRow returns the loaded row under the cursor.
func (b *Browser) CurrentRow() (model1.Row, bool) {
	re, ok := b.model.RowEvent(b.table.CurrentID())
	if !ok {
		return model1.Row{}, false
	}
	return re.Row, true
}

func (b *Browser) openDetails(r model1.Row) {
	if b.detailer == nil {
		return
	}
	lines, err := b.detailer.Details(r.Object)
	if err != nil {
		b.app.Flash().Err(err)
		return
	}
	var (
		img    string
		hasImg bool
	)
	if b.imageFn != nil {
		img, hasImg = b.imageFn(r.Object)
	}
	b.details.Show(fmt.Sprintf("%s %s", b.noun, r.ID), lines, hasImg, img)
	if !b.detailsOpen {
		b.detailsOpen = true
		b.AddItem(b.details, detailsWidth, 0, false)
	}
}

// DetailsOpen returns true while the detail panel shows.
func (b *Browser) DetailsOpen() bool {
	return b.detailsOpen
}

// CloseDetails closes the detail panel.
func (b *Browser) CloseDetails() {
	if !b.detailsOpen {
		return
	}
	focused := b.details.HasFocus()
	b.detailsOpen = false
	b.RemoveItem(b.details)
	b.details.Reset()
	b.model.ClearSelectedRow()
	if focused {
		b.app.SetFocus(b.table)
	}
}

// syncDetails refreshes or closes the panel once the rows reload.
func (b *Browser) syncDetails() {
	if !b.detailsOpen {
		return
	}
	r, ok := b.model.SelectedRow()
	if !ok {
		return
	}
	if _, ok := b.model.RowEvent(r.ID); !ok {
		b.CloseDetails()
	}
}

func (b *Browser) deleteCmd(*tcell.EventKey) *tcell.EventKey {
	ids := b.model.SelectedIDs()
	if len(ids) == 0 {
		if id := b.table.CurrentID(); id != "" {
			ids = []string{id}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	msg := fmt.Sprintf("Delete %s?", b.count(len(ids)))
	b.confirm = ui.NewConfirm(b.app.NewDialog(ui.ConfirmPageID(), b.table), b.app.Styles(), msg)
	b.confirm.SetOnConfirm(func() {
		b.delete(ids)
	})
	b.confirm.Show()

	return nil
}

func (b *Browser) delete(ids []string) {
	nuker, ok := b.query.Accessor().(dao.Nuker)
	if !ok {
		b.app.Flash().Errf("%s cannot be deleted", b.title)
		return
	}
	b.app.Flash().Infof("Deleting %s...", b.count(len(ids)))
	b.mutate(func(ctx context.Context) error {
		return nuker.Delete(ctx, ids)
	}, true, func(err error) {
		if err != nil {
			b.app.Flash().Err(err)
			return
		}
		b.model.ClearSelection()
		if r, ok := b.model.SelectedRow(); ok && slices.Contains(ids, r.ID) {
			b.CloseDetails()
		}
		b.refresh()
		b.app.Flash().Infof("Deleted %s", b.count(len(ids)))
	})
}

// mutate runs op off the UI goroutine then refetches the collection. A
// failed op only refetches when refetchOnErr is set. done runs on the UI
// goroutine.
func (b *Browser) mutate(op func(context.Context) error, refetchOnErr bool, done func(error)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mutateTimeout)
		defer cancel()

		err := op(ctx)
		if err != nil {
			slog.Error("mutation failed", "rid", b.rid.String(), "error", err)
		}
		if err == nil || refetchOnErr {
			if rerr := b.query.Refresh(ctx); rerr != nil {
				slog.Warn("refetch failed", "rid", b.rid.String(), "error", rerr)
			}
		}
		b.app.QueueUpdateDraw(func() {
			done(err)
		})
	}()
}

func (b *Browser) count(n int) string {
	if n == 1 {
		return "1 " + b.noun
	}
	return fmt.Sprintf("%d %s", n, b.rid.Resource)
}

// Names returns the name of every loaded record.
func (b *Browser) Names(nameOf func(o any) string) []string {
	rr := b.model.Rows()
	nn := make([]string, 0, len(rr))
	for _, r := range rr {
		nn = append(nn, nameOf(r.Object))
	}
	return nn
}

// TableLoading notifies the browser a fetch started with nothing to show.
func (b *Browser) TableLoading() {
	b.app.QueueUpdateDraw(func() {
		if !b.running {
			return
		}
		b.model.SetPending()
		b.refresh()
	})
}

// TableNoData notifies the browser the collection is empty.
func (b *Browser) TableNoData(data *model1.TableData) {
	b.TableDataChanged(data)
}

// TableDataChanged notifies the browser new rows are in.
func (b *Browser) TableDataChanged(data *model1.TableData) {
	b.app.QueueUpdateDraw(func() {
		if !b.running {
			return
		}
		b.model.SetData(data)
		b.refresh()
		b.syncDetails()
	})
}

// TableLoadFailed notifies the browser the fetch failed.
func (b *Browser) TableLoadFailed(err error) {
	b.app.QueueUpdateDraw(func() {
		if !b.running {
			return
		}
		b.model.SetError(err)
		b.refresh()
	})
}
