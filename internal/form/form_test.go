package form_test

import (
	"errors"
	"testing"

	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cats = map[string]int{"Snacks": 1, "Drinks": 2}

func TestProduct(t *testing.T) {
	uu := map[string]struct {
		v    form.Values
		e    api.ProductInput
		ferr form.FieldErrors
	}{
		"ok": {
			v: form.Values{
				"name":       " Chips ",
				"quantity":   "12",
				"unitPrice":  "4.5",
				"categoryId": "Snacks",
			},
			e: api.ProductInput{Name: "Chips", Quantity: 12, UnitPrice: 4.5, CategoryID: 1},
		},
		"blank": {
			v: form.Values{"name": "  "},
			ferr: form.FieldErrors{
				"name":       form.MsgRequired,
				"quantity":   form.MsgRequired,
				"unitPrice":  form.MsgRequired,
				"categoryId": form.MsgRequired,
			},
		},
		"not-a-number": {
			v: form.Values{
				"name":       "Chips",
				"quantity":   "abc",
				"unitPrice":  "x",
				"categoryId": "Drinks",
			},
			ferr: form.FieldErrors{
				"quantity":  form.MsgNotANumber,
				"unitPrice": form.MsgNotANumber,
			},
		},
		"fractional-quantity": {
			v: form.Values{
				"name":       "Chips",
				"quantity":   "1.5",
				"unitPrice":  "1",
				"categoryId": "Drinks",
			},
			ferr: form.FieldErrors{"quantity": form.MsgWholeNumber},
		},
		"huge-quantity": {
			v: form.Values{
				"name":       "Chips",
				"quantity":   "1e30",
				"unitPrice":  "1",
				"categoryId": "Drinks",
			},
			ferr: form.FieldErrors{"quantity": "Quantity is too large"},
		},
		"overflowing-quantity": {
			v: form.Values{
				"name":       "Chips",
				"quantity":   "9223372036854775808",
				"unitPrice":  "1",
				"categoryId": "Drinks",
			},
			ferr: form.FieldErrors{"quantity": "Quantity is too large"},
		},
		"negative": {
			v: form.Values{
				"name":       "Chips",
				"quantity":   "-1",
				"unitPrice":  "-2",
				"categoryId": "Drinks",
			},
			ferr: form.FieldErrors{
				"quantity":  "Quantity must be a non-negative number",
				"unitPrice": "Unit price must be a non-negative number",
			},
		},
		"unknown-category": {
			v: form.Values{
				"name":       "Chips",
				"quantity":   "1",
				"unitPrice":  "1",
				"categoryId": "Toys",
			},
			ferr: form.FieldErrors{"categoryId": form.MsgRequired},
		},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			in, err := form.Product(u.v, cats)
			if u.ferr == nil {
				require.NoError(t, err)
				assert.Equal(t, u.e, in)
				return
			}
			var fe form.FieldErrors
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, u.ferr, fe)
			assert.ErrorIs(t, err, form.ErrInvalid)
		})
	}
}

func TestCategory(t *testing.T) {
	in, err := form.Category(form.Values{"name": "Frozen"})
	require.NoError(t, err)
	assert.Equal(t, api.CategoryInput{Name: "Frozen"}, in)

	_, err = form.Category(form.Values{"name": ""})
	var fe form.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, form.MsgRequired, fe["name"])
}

func TestSale(t *testing.T) {
	pp := map[string]int{"Chips": 7}

	in, err := form.Sale(form.Values{"productId": "Chips", "quantitySold": "3"}, pp)
	require.NoError(t, err)
	assert.Equal(t, api.SaleInput{ProductID: 7, QuantitySold: 3}, in)

	_, err = form.Sale(form.Values{"productId": "Nope", "quantitySold": ""}, pp)
	var fe form.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, form.FieldErrors{
		"productId":    form.MsgRequired,
		"quantitySold": form.MsgRequired,
	}, fe)

	_, err = form.Sale(form.Values{"productId": "Chips", "quantitySold": "1e30"}, pp)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, form.FieldErrors{"quantitySold": "Quantity sold is too large"}, fe)
}

func TestCheckDuplicate(t *testing.T) {
	names := []string{"Chips", "Soda"}

	assert.NoError(t, form.CheckDuplicate("Product", "chips", names))

	err := form.CheckDuplicate("Product", "Chips", names)
	require.Error(t, err)
	assert.True(t, errors.Is(err, form.ErrDuplicateName))
	assert.Equal(t, `Product "Chips" already exists`, err.Error())
}

func TestDiff(t *testing.T) {
	p := api.Product{
		ID:         1,
		Name:       "Chips",
		Quantity:   2,
		UnitPrice:  1.25,
		CategoryID: 1,
		Category:   &api.Category{ID: 1, Name: "Snacks"},
	}
	orig := form.ProductInputOf(p)

	in, err := form.Product(form.ProductValues(p), cats)
	require.NoError(t, err)
	_, err = form.Diff(orig, in)
	assert.ErrorIs(t, err, form.ErrNoChanges)

	in.Quantity = 3
	patch, err := form.Diff(orig, in)
	require.NoError(t, err)
	assert.Len(t, patch, 1)
}

func TestDiffPaddedOriginal(t *testing.T) {
	p := api.Product{
		ID:          1,
		Name:        "Chips ",
		Description: " salty ",
		Quantity:    2,
		UnitPrice:   1,
		CategoryID:  1,
		Category:    &api.Category{ID: 1, Name: "Snacks"},
	}

	in, err := form.Product(form.ProductValues(p), cats)
	require.NoError(t, err)
	_, err = form.Diff(form.ProductInputOf(p), in)
	assert.ErrorIs(t, err, form.ErrNoChanges)

	c := api.Category{ID: 1, Name: " Snacks"}
	cin, err := form.Category(form.Values{"name": c.Name})
	require.NoError(t, err)
	_, err = form.Diff(form.CategoryInputOf(c), cin)
	assert.ErrorIs(t, err, form.ErrNoChanges)
}
