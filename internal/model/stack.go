package model

import (
	"sync"
)

// Component represents a UI component
type Component interface {
	Name() string
	Start()
	Stop()
}

// StackListener listens to stack events
type StackListener interface {
	StackPushed(Component)
	StackPopped(old, new Component)
	StackTop(Component)
}

// Stack manages a component stack
type Stack struct {
	components []Component
	listeners  []StackListener
	mx         sync.RWMutex
}

// NewStack returns a new stack
func NewStack() *Stack {
	return &Stack{}
}

// AddListener adds a stack listener
func (s *Stack) AddListener(l StackListener) {
	s.listeners = append(s.listeners, l)
	if !s.Empty() {
		l.StackTop(s.Top())
	}
}

// RemoveListener removes a stack listener
func (s *Stack) RemoveListener(l StackListener) {
	victim := -1
	for i, lis := range s.listeners {
		if lis == l {
			victim = i
			break
		}
	}
	if victim == -1 {
		return
	}
	s.listeners = append(s.listeners[:victim], s.listeners[victim+1:]...)
}

// Push stops the current top and starts c on top of it.
func (s *Stack) Push(c Component) {
	if top := s.Top(); top != nil {
		top.Stop()
	}

	s.mx.Lock()
	s.components = append(s.components, c)
	s.mx.Unlock()

	for _, l := range s.listeners {
		l.StackPushed(c)
		l.StackTop(c)
	}
	c.Start()
}

// Pop stops the top component and restarts the one below it.
func (s *Stack) Pop() (Component, bool) {
	if s.Empty() {
		return nil, false
	}

	s.mx.Lock()
	c := s.components[len(s.components)-1]
	s.components = s.components[:len(s.components)-1]
	s.mx.Unlock()
	c.Stop()

	top := s.Top()
	for _, l := range s.listeners {
		l.StackPopped(c, top)
		if top != nil {
			l.StackTop(top)
		}
	}
	if top != nil {
		top.Start()
	}

	return c, true
}

// Top returns the top component
func (s *Stack) Top() Component {
	s.mx.RLock()
	defer s.mx.RUnlock()

	if len(s.components) == 0 {
		return nil
	}
	return s.components[len(s.components)-1]
}

// Empty checks if stack is empty
func (s *Stack) Empty() bool {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return len(s.components) == 0
}

// IsLast indicates if stack only has one item left
func (s *Stack) IsLast() bool {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return len(s.components) == 1
}

// Clear stops the top component and drops the whole stack.
func (s *Stack) Clear() {
	if top := s.Top(); top != nil {
		top.Stop()
	}

	s.mx.Lock()
	old := s.components
	s.components = nil
	s.mx.Unlock()

	for i := len(old) - 1; i >= 0; i-- {
		for _, l := range s.listeners {
			l.StackPopped(old[i], nil)
		}
	}
}

// Flatten returns all component names as a slice
func (s *Stack) Flatten() []string {
	s.mx.RLock()
	defer s.mx.RUnlock()

	ss := make([]string, len(s.components))
	for i, c := range s.components {
		ss[i] = c.Name()
	}
	return ss
}
