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

// Product lists inventory products.
type Product struct {
	*Browser
}

// NewProduct returns a new product view.
func NewProduct(app *App) *Product {
	return &Product{
		Browser: NewBrowser(app, &dao.ProductRID, "Products", "product"),
	}
}

// Init initializes the product view.
func (p *Product) Init(ctx context.Context) error {
	if err := p.Browser.Init(ctx); err != nil {
		return err
	}
	p.SetImageFn(productImage)
	p.BindDelete()
	p.bindProductKeys(p.Table().Actions())

	return nil
}

func (p *Product) bindProductKeys(aa *ui.KeyActions) {
	aa.Bulk(ui.KeyMap{
		ui.KeyC: ui.NewKeyAction("Create", p.createCmd, true),
		ui.KeyE: ui.NewKeyAction("Edit", p.editCmd, true),
	})
}

func productImage(o any) (string, bool) {
	pr, ok := o.(api.Product)
	return pr.Img, ok
}

func productName(o any) string {
	pr, _ := o.(api.Product)
	return pr.Name
}

func productFields(v form.Values, categories []string) []ui.FieldSpec {
	return []ui.FieldSpec{
		{Name: form.FieldName, Label: "Name", Value: v[form.FieldName]},
		{Name: form.FieldDescription, Label: "Description", Value: v[form.FieldDescription]},
		{Name: form.FieldImg, Label: "Image URL", Value: v[form.FieldImg]},
		{Name: form.FieldQuantity, Label: "Quantity", Value: v[form.FieldQuantity]},
		{Name: form.FieldUnitPrice, Label: "Unit price", Value: v[form.FieldUnitPrice]},
		{Name: form.FieldCategory, Label: "Category", Kind: ui.FieldChoice, Value: v[form.FieldCategory], Options: categories},
	}
}

func (p *Product) createCmd(*tcell.EventKey) *tcell.EventKey {
	p.loadChoices(&dao.CategoryRID, func(cats Choices) {
		p.openForm("New Product", "Create", productFields(nil, cats.Names), func(v form.Values) error {
			in, err := form.Product(v, cats.IDs)
			if err != nil {
				return err
			}
			if err := p.checkName(in.Name, productName); err != nil {
				return err
			}
			c, err := p.creator()
			if err != nil {
				return err
			}
			p.save(func(ctx context.Context) error {
				return c.Create(ctx, in)
			}, fmt.Sprintf("Product %q created", in.Name))

			return nil
		})
	})

	return nil
}

func (p *Product) editCmd(*tcell.EventKey) *tcell.EventKey {
	r, ok := p.CurrentRow()
	if !ok {
		return nil
	}
	pr, ok := r.Object.(api.Product)
	if !ok {
		return nil
	}

	p.loadChoices(&dao.CategoryRID, func(cats Choices) {
		vals := form.ProductValues(pr)
		if vals[form.FieldCategory] == "" {
			vals[form.FieldCategory] = cats.NameOf(pr.CategoryID)
		}
		title := fmt.Sprintf("Edit Product %s", pr.Name)
		p.openForm(title, "Save", productFields(vals, cats.Names), func(v form.Values) error {
			in, err := form.Product(v, cats.IDs)
			if err != nil {
				return err
			}
			orig := form.ProductInputOf(pr)
			if same, err := p.unchanged(orig, in); same || err != nil {
				return err
			}
			if in.Name != orig.Name {
				if err := p.checkName(in.Name, productName); err != nil {
					return err
				}
			}
			u, err := p.updater()
			if err != nil {
				return err
			}
			p.save(func(ctx context.Context) error {
				return u.Update(ctx, r.ID, in)
			}, fmt.Sprintf("Product %q updated", in.Name))

			return nil
		})
	})

	return nil
}
