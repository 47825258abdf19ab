// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package view

import (
	"context"

	"github.com/derailed/tcell/v2"
	"github.com/stockr/stockr/internal/dao"
	"github.com/stockr/stockr/internal/form"
	"github.com/stockr/stockr/internal/ui"
)

// Sale lists recorded sales. Sales are append only.
type Sale struct {
	*Browser
}

// NewSale returns a new sale view.
func NewSale(app *App) *Sale {
	return &Sale{
		Browser: NewBrowser(app, &dao.SaleRID, "Sales", "sale"),
	}
}

// Init initializes the sale view.
func (s *Sale) Init(ctx context.Context) error {
	if err := s.Browser.Init(ctx); err != nil {
		return err
	}
	s.Table().Actions().Add(ui.KeyC, ui.NewKeyAction("Record Sale", s.createCmd, true))

	return nil
}

func (s *Sale) createCmd(*tcell.EventKey) *tcell.EventKey {
	s.loadChoices(&dao.ProductRID, func(products Choices) {
		fields := []ui.FieldSpec{
			{Name: form.FieldProduct, Label: "Product", Kind: ui.FieldChoice, Options: products.Names},
			{Name: form.FieldQuantitySold, Label: "Quantity sold"},
		}
		s.openForm("Record Sale", "Create", fields, func(v form.Values) error {
			in, err := form.Sale(v, products.IDs)
			if err != nil {
				return err
			}
			c, err := s.creator()
			if err != nil {
				return err
			}
			s.save(func(ctx context.Context) error {
				return c.Create(ctx, in)
			}, "Sale recorded")

			return nil
		})
	})

	return nil
}
