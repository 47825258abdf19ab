package form

import (
	"fmt"
	"sort"
	"strings"
)

type Error string

const (
	ErrDuplicateName = Error("name already exists")
	ErrNoChanges     = Error("no changes detected")
	ErrInvalid       = Error("invalid input")
)

func (e Error) Error() string {
	return string(e)
}

const (
	MsgRequired    = "This field is required"
	MsgNotANumber  = "Must be a number"
	MsgWholeNumber = "Must be a whole number"
)

// FieldErrors maps a form field to its message.
type FieldErrors map[string]string

// Error lists every field message, sorted by field.
func (f FieldErrors) Error() string {
	kk := make([]string, 0, len(f))
	for k := range f {
		kk = append(kk, k)
	}
	sort.Strings(kk)
	ss := make([]string, 0, len(kk))
	for _, k := range kk {
		ss = append(ss, fmt.Sprintf("%s: %s", k, f[k]))
	}
	return strings.Join(ss, "; ")
}

// Unwrap lets callers match ErrInvalid.
func (f FieldErrors) Unwrap() error {
	return ErrInvalid
}

// DuplicateError reports a name clash on create.
type DuplicateError struct {
	Kind string
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.Name)
}

// Unwrap lets callers match ErrDuplicateName.
func (e *DuplicateError) Unwrap() error {
	return ErrDuplicateName
}
