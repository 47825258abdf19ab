// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package view

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/stockr/stockr/internal/dao"
	"github.com/stockr/stockr/internal/form"
	"github.com/stockr/stockr/internal/ui"
)

const choicesTimeout = 15 * time.Second

// Choices are the options of a reference field, by display name.
type Choices struct {
	Names []string
	IDs   map[string]int
}

// NameOf returns the display name of id.
func (c Choices) NameOf(id int) string {
	for n, i := range c.IDs {
		if i == id {
			return n
		}
	}
	return ""
}

type cachedLister interface {
	Cached(ctx context.Context) ([]dao.Object, error)
}

// FetchChoices loads the options of a reference field. Listings younger than
// the cache ttl are served without a request.
func FetchChoices(ctx context.Context, f dao.Factory, rid *dao.ResourceID) (Choices, error) {
	acc, err := dao.AccessorFor(f, rid)
	if err != nil {
		return Choices{}, err
	}
	list := acc.List
	if c, ok := acc.(cachedLister); ok {
		list = c.Cached
	}
	oo, err := list(ctx)
	if err != nil {
		return Choices{}, err
	}

	c := Choices{
		Names: make([]string, 0, len(oo)),
		IDs:   make(map[string]int, len(oo)),
	}
	for _, o := range oo {
		id, err := strconv.Atoi(o.GetID())
		if err != nil {
			continue
		}
		if _, ok := c.IDs[o.GetName()]; !ok {
			c.Names = append(c.Names, o.GetName())
		}
		c.IDs[o.GetName()] = id
	}
	sort.Strings(c.Names)

	return c, nil
}

// loadChoices fetches choices off the UI goroutine then hands them to done.
func (b *Browser) loadChoices(rid *dao.ResourceID, done func(Choices)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), choicesTimeout)
		defer cancel()

		c, err := FetchChoices(ctx, b.app.Factory(), rid)
		b.app.QueueUpdateDraw(func() {
			if !b.running {
				return
			}
			if err != nil {
				b.app.Flash().Errf("Failed to load %s: %s", rid.Resource, err)
				return
			}
			done(c)
		})
	}()
}

// openForm shows a record dialog over the table.
func (b *Browser) openForm(title, submit string, fields []ui.FieldSpec, fn ui.SubmitFunc) {
	b.form = ui.NewFormDialog(b.app.NewDialog(ui.FormPageID(), b.table), b.app.Styles(), title, submit, fields)
	b.form.SetSubmitFn(fn)
	b.form.Show()
}

// Form returns the last record dialog.
func (b *Browser) Form() *ui.FormDialog {
	return b.form
}

// save sends a validated payload. The dialog stays open when it fails.
func (b *Browser) save(op func(context.Context) error, okMsg string) {
	f := b.form
	f.SetBusy(true)
	b.mutate(op, false, func(err error) {
		if err != nil {
			f.SetBusy(false)
			f.ShowError(err)
			b.app.Flash().Err(err)
			return
		}
		f.Close()
		b.app.Flash().Info(okMsg)
	})
}

// checkName rejects a name another loaded record already uses.
func (b *Browser) checkName(name string, nameOf func(any) string) error {
	if err := form.CheckDuplicate(b.noun, name, b.Names(nameOf)); err != nil {
		b.app.Flash().Warn(err.Error())
		return err
	}
	return nil
}

// unchanged closes the dialog when an edit submits the original payload.
func (b *Browser) unchanged(original, updated any) (bool, error) {
	_, err := form.Diff(original, updated)
	if errors.Is(err, form.ErrNoChanges) {
		b.app.Flash().Info("No changes detected")
		b.form.Close()
		return true, nil
	}
	return false, err
}

func (b *Browser) creator() (dao.Creator, error) {
	c, ok := b.query.Accessor().(dao.Creator)
	if !ok {
		return nil, fmt.Errorf("%s cannot be created", b.rid.Resource)
	}
	return c, nil
}

func (b *Browser) updater() (dao.Updater, error) {
	u, ok := b.query.Accessor().(dao.Updater)
	if !ok {
		return nil, fmt.Errorf("%s cannot be updated", b.rid.Resource)
	}
	return u, nil
}
