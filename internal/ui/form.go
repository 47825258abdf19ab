// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/form"
)

const (
	formPage      = "form"
	formWidth     = 64
	formCancel    = "Cancel"
	fieldWidth    = 40
	errorsPadding = 1
)

// FieldKind tells how a field is edited.
type FieldKind int

const (
	// FieldInput is free text.
	FieldInput FieldKind = iota

	// FieldChoice picks one of Options.
	FieldChoice
)

// FieldSpec describes one form field.
type FieldSpec struct {
	Name    string
	Label   string
	Kind    FieldKind
	Value   string
	Options []string
}

// SubmitFunc validates and sends the form values. A non nil error keeps the
// dialog open.
type SubmitFunc func(v form.Values) error

// FormDialog edits a record.
type FormDialog struct {
	*Dialog

	inputs   *tview.Form
	errs     *tview.TextView
	layout   *tview.Flex
	styles   *Styles
	title    string
	fields   []FieldSpec
	values   form.Values
	submitFn SubmitFunc
	busy     bool
}

// FormPageID is the page the form shows on.
func FormPageID() string {
	return formPage
}

// NewFormDialog returns a form with the given fields.
func NewFormDialog(d *Dialog, styles *Styles, title, submit string, fields []FieldSpec) *FormDialog {
	f := FormDialog{
		Dialog: d,
		inputs: tview.NewForm(),
		errs:   tview.NewTextView(),
		layout: tview.NewFlex().SetDirection(tview.FlexRow),
		styles: styles,
		title:  title,
		fields: fields,
		values: make(form.Values, len(fields)),
	}
	for _, fs := range fields {
		f.values[fs.Name] = fs.Value
		f.addField(fs)
	}
	f.inputs.AddButton(submit, f.Submit)
	f.inputs.AddButton(formCancel, f.Close)
	f.inputs.SetCancelFunc(f.Close)
	f.inputs.SetButtonsAlign(tview.AlignRight)

	f.errs.SetDynamicColors(true)
	f.errs.SetBorderPadding(0, 0, errorsPadding, errorsPadding)
	f.layout.SetBorder(true)
	f.layout.SetTitle(fmt.Sprintf(" %s ", title))
	f.layout.AddItem(f.inputs, 0, 1, true)
	f.layout.AddItem(f.errs, len(fields)+1, 0, false)

	return &f
}

func (f *FormDialog) addField(fs FieldSpec) {
	name := fs.Name
	switch fs.Kind {
	case FieldChoice:
		f.inputs.AddDropDown(fs.Label, fs.Options, slices.Index(fs.Options, fs.Value), func(opt string, _ int) {
			f.values[name] = opt
		})
	default:
		f.inputs.AddInputField(fs.Label, fs.Value, fieldWidth, nil, func(text string) {
			f.values[name] = text
		})
	}
}

// SetSubmitFn sets the submit handler.
func (f *FormDialog) SetSubmitFn(fn SubmitFunc) {
	f.submitFn = fn
}

// Title returns the dialog title.
func (f *FormDialog) Title() string {
	return f.title
}

// Values returns the current field values.
func (f *FormDialog) Values() form.Values {
	return f.values
}

// SetValue updates a field value.
func (f *FormDialog) SetValue(name, v string) {
	f.values[name] = v
	idx := slices.IndexFunc(f.fields, func(fs FieldSpec) bool { return fs.Name == name })
	if idx < 0 {
		return
	}
	switch item := f.inputs.GetFormItem(idx).(type) {
	case *tview.InputField:
		item.SetText(v)
	case *tview.DropDown:
		item.SetCurrentOption(slices.Index(f.fields[idx].Options, v))
	}
}

// SetBusy blocks submits while a mutation is in flight.
func (f *FormDialog) SetBusy(b bool) {
	f.busy = b
}

// Show displays the form.
func (f *FormDialog) Show() {
	f.applyStyles()
	f.Dialog.Show(f.layout, f.inputs, formWidth, f.height())
}

// Close dismisses the form.
func (f *FormDialog) Close() {
	f.busy = false
	f.Dismiss()
}

// Submit hands the values to the submit handler and shows its errors.
func (f *FormDialog) Submit() {
	if f.busy || f.submitFn == nil {
		return
	}
	f.ShowError(f.submitFn(f.values))
}

// ShowError lists field messages or a general error under the form.
func (f *FormDialog) ShowError(err error) {
	if err == nil {
		f.errs.SetText("")
		return
	}
	var fe form.FieldErrors
	if !errors.As(err, &fe) {
		f.errs.SetText(fmt.Sprintf("[%s]%s", Tag(f.styles.Err), tview.Escape(err.Error())))
		return
	}
	ll := make([]string, 0, len(fe))
	for _, fs := range f.fields {
		if msg, ok := fe[fs.Name]; ok {
			ll = append(ll, fmt.Sprintf("[%s]%s: %s", Tag(f.styles.Err), tview.Escape(fs.Label), tview.Escape(msg)))
		}
	}
	f.errs.SetText(strings.Join(ll, "\n"))
}

// ErrorText returns the messages currently shown.
func (f *FormDialog) ErrorText() string {
	return f.errs.GetText(true)
}

func (f *FormDialog) height() int {
	return 2*len(f.fields) + 2 + len(f.fields) + 1 + 2
}

func (f *FormDialog) applyStyles() {
	f.layout.SetBackgroundColor(f.styles.Bg)
	f.layout.SetBorderColor(f.styles.Focus)
	f.layout.SetTitleColor(f.styles.Title)
	f.errs.SetBackgroundColor(f.styles.Bg)
	f.inputs.SetBackgroundColor(f.styles.Bg)
	f.inputs.SetLabelColor(f.styles.Fg)
	f.inputs.SetFieldBackgroundColor(f.styles.Border)
	f.inputs.SetFieldTextColor(f.styles.Fg)
	f.inputs.SetButtonBackgroundColor(f.styles.Focus)
	f.inputs.SetButtonTextColor(f.styles.Bg)
}
