// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package view

import (
	"context"
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/dao"
	"github.com/stockr/stockr/internal/form"
	"github.com/stockr/stockr/internal/ui"
)

// Category lists product categories.
type Category struct {
	*Browser
}

// NewCategory returns a new category view.
func NewCategory(app *App) *Category {
	return &Category{
		Browser: NewBrowser(app, &dao.CategoryRID, "Categories", "category"),
	}
}

// Init initializes the category view.
func (c *Category) Init(ctx context.Context) error {
	if err := c.Browser.Init(ctx); err != nil {
		return err
	}
	c.BindDelete()
	c.Table().Actions().Bulk(ui.KeyMap{
		ui.KeyC: ui.NewKeyAction("Create", c.createCmd, true),
		ui.KeyE: ui.NewKeyAction("Edit", c.editCmd, true),
	})

	return nil
}

func categoryName(o any) string {
	ca, _ := o.(api.Category)
	return ca.Name
}

func categoryFields(name string) []ui.FieldSpec {
	return []ui.FieldSpec{
		{Name: form.FieldName, Label: "Name", Value: name},
	}
}

func (c *Category) createCmd(*tcell.EventKey) *tcell.EventKey {
	c.openForm("New Category", "Create", categoryFields(""), func(v form.Values) error {
		in, err := form.Category(v)
		if err != nil {
			return err
		}
		if err := c.checkName(in.Name, categoryName); err != nil {
			return err
		}
		cr, err := c.creator()
		if err != nil {
			return err
		}
		c.save(func(ctx context.Context) error {
			return cr.Create(ctx, in)
		}, fmt.Sprintf("Category %q created", in.Name))

		return nil
	})

	return nil
}

func (c *Category) editCmd(*tcell.EventKey) *tcell.EventKey {
	r, ok := c.CurrentRow()
	if !ok {
		return nil
	}
	ca, ok := r.Object.(api.Category)
	if !ok {
		return nil
	}

	c.openForm(fmt.Sprintf("Edit Category %s", ca.Name), "Save", categoryFields(ca.Name), func(v form.Values) error {
		in, err := form.Category(v)
		if err != nil {
			return err
		}
		if same, err := c.unchanged(form.CategoryInputOf(ca), in); same || err != nil {
			return err
		}
		if err := c.checkName(in.Name, categoryName); err != nil {
			return err
		}
		u, err := c.updater()
		if err != nil {
			return err
		}
		c.save(func(ctx context.Context) error {
			return u.Update(ctx, r.ID, in)
		}, fmt.Sprintf("Category %q renamed", in.Name))

		return nil
	})

	return nil
}
