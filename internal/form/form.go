// Package form turns raw dialog input into validated api payloads.
package form

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/stockr/stockr/internal/api"
	"github.com/wI2L/jsondiff"
)

// Mode tells whether a form creates or edits a record.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Field names shared by dialogs and validation.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldImg          = "img"
	FieldQuantity     = "quantity"
	FieldUnitPrice    = "unitPrice"
	FieldCategory     = "categoryId"
	FieldProduct      = "productId"
	FieldQuantitySold = "quantitySold"
)

// Values holds the raw text of every dialog field.
type Values map[string]string

// Get returns the trimmed value of a field.
func (v Values) Get(f string) string {
	return strings.TrimSpace(v[f])
}

// number coerces a numeric string. Non numeric input is kept as a string
// so the schema reports it.
func number(s string) any {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	return json.Number(s)
}

func required(v Values, fe FieldErrors, fields ...string) {
	for _, f := range fields {
		if v.Get(f) == "" {
			fe[f] = MsgRequired
		}
	}
}

func merge(fe FieldErrors, err error) error {
	if err == nil {
		if len(fe) == 0 {
			return nil
		}
		return fe
	}
	more, ok := err.(FieldErrors)
	if !ok {
		return err
	}
	for k, m := range more {
		if _, ok := fe[k]; !ok {
			fe[k] = m
		}
	}
	return fe
}

// CheckDuplicate rejects a name already present in the loaded collection.
// The comparison is case sensitive.
func CheckDuplicate(kind, name string, existing []string) error {
	for _, e := range existing {
		if e == name {
			return &DuplicateError{Kind: kind, Name: name}
		}
	}
	return nil
}

// ResolveID maps a display name to its id.
func ResolveID(name string, ids map[string]int) (int, bool) {
	id, ok := ids[strings.TrimSpace(name)]
	return id, ok
}

// Diff compares the original and submitted payloads. It returns ErrNoChanges
// when they are identical.
func Diff(original, updated any) (jsondiff.Patch, error) {
	patch, err := jsondiff.Compare(original, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to generate patch: %w", err)
	}
	if len(patch) == 0 {
		return nil, ErrNoChanges
	}
	return patch, nil
}

var productLabels = map[string]string{
	FieldName:      "Name",
	FieldQuantity:  "Quantity",
	FieldUnitPrice: "Unit price",
	FieldCategory:  "Category",
}

// Product validates product input. categories maps category names to ids.
func Product(v Values, categories map[string]int) (api.ProductInput, error) {
	fe := make(FieldErrors)
	required(v, fe, FieldName, FieldQuantity, FieldUnitPrice, FieldCategory)

	doc := map[string]any{
		FieldName:        v.Get(FieldName),
		FieldDescription: v.Get(FieldDescription),
		FieldImg:         v.Get(FieldImg),
		FieldQuantity:    number(v[FieldQuantity]),
		FieldUnitPrice:   number(v[FieldUnitPrice]),
	}
	catID, ok := ResolveID(v[FieldCategory], categories)
	if ok {
		doc[FieldCategory] = json.Number(strconv.Itoa(catID))
	} else {
		fe[FieldCategory] = MsgRequired
	}
	for f := range fe {
		delete(doc, f)
	}
	if err := merge(fe, check("product", doc, productLabels)); err != nil {
		return api.ProductInput{}, err
	}

	qty, _ := strconv.ParseFloat(v.Get(FieldQuantity), 64)
	price, _ := strconv.ParseFloat(v.Get(FieldUnitPrice), 64)

	return api.ProductInput{
		Img:         v.Get(FieldImg),
		Name:        v.Get(FieldName),
		Description: v.Get(FieldDescription),
		Quantity:    int(qty),
		UnitPrice:   price,
		CategoryID:  catID,
	}, nil
}

var categoryLabels = map[string]string{
	FieldName: "Name",
}

// Category validates category input.
func Category(v Values) (api.CategoryInput, error) {
	fe := make(FieldErrors)
	required(v, fe, FieldName)
	doc := map[string]any{FieldName: v.Get(FieldName)}
	for f := range fe {
		delete(doc, f)
	}
	if err := merge(fe, check("category", doc, categoryLabels)); err != nil {
		return api.CategoryInput{}, err
	}

	return api.CategoryInput{Name: v.Get(FieldName)}, nil
}

var saleLabels = map[string]string{
	FieldProduct:      "Product",
	FieldQuantitySold: "Quantity sold",
}

// Sale validates sale input. products maps product names to ids.
func Sale(v Values, products map[string]int) (api.SaleInput, error) {
	fe := make(FieldErrors)
	required(v, fe, FieldProduct, FieldQuantitySold)

	doc := map[string]any{
		FieldQuantitySold: number(v[FieldQuantitySold]),
	}
	pid, ok := ResolveID(v[FieldProduct], products)
	if ok {
		doc[FieldProduct] = json.Number(strconv.Itoa(pid))
	} else {
		fe[FieldProduct] = MsgRequired
	}
	for f := range fe {
		delete(doc, f)
	}
	if err := merge(fe, check("sale", doc, saleLabels)); err != nil {
		return api.SaleInput{}, err
	}

	qty, _ := strconv.ParseFloat(v.Get(FieldQuantitySold), 64)

	return api.SaleInput{ProductID: pid, QuantitySold: int(qty)}, nil
}

// ProductValues seeds a dialog from an existing product.
func ProductValues(p api.Product) Values {
	return Values{
		FieldName:        p.Name,
		FieldDescription: p.Description,
		FieldImg:         p.Img,
		FieldQuantity:    strconv.Itoa(p.Quantity),
		FieldUnitPrice:   strconv.FormatFloat(p.UnitPrice, 'f', -1, 64),
		FieldCategory:    p.CategoryName(),
	}
}

// ProductInputOf returns the write payload matching an existing product,
// normalized the way Product normalizes dialog input.
func ProductInputOf(p api.Product) api.ProductInput {
	return api.ProductInput{
		Img:         strings.TrimSpace(p.Img),
		Name:        strings.TrimSpace(p.Name),
		Description: strings.TrimSpace(p.Description),
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		CategoryID:  p.CategoryID,
	}
}

// CategoryInputOf returns the write payload matching an existing category.
func CategoryInputOf(c api.Category) api.CategoryInput {
	return api.CategoryInput{Name: strings.TrimSpace(c.Name)}
}
