package model

import "sync/atomic"

// ModalState tracks whether a dialog is showing. Tables consult it before
// reacting to row activation.
type ModalState struct {
	open atomic.Int32
}

// NewModalState returns a closed modal state.
func NewModalState() *ModalState {
	return &ModalState{}
}

// Open records a dialog opening.
func (m *ModalState) Open() {
	m.open.Add(1)
}

// Close records a dialog closing.
func (m *ModalState) Close() {
	if m.open.Add(-1) < 0 {
		m.open.Store(0)
	}
}

// IsOpen returns true while any dialog is showing.
func (m *ModalState) IsOpen() bool {
	return m != nil && m.open.Load() > 0
}
