// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/model"
)

// Pages hosts the page stack and mirrors the component stack.
type Pages struct {
	*tview.Pages

	stack []string
}

// NewPages returns a new page host.
func NewPages() *Pages {
	return &Pages{Pages: tview.NewPages()}
}

// Push shows page on top of the stack.
func (p *Pages) Push(name string, page tview.Primitive) {
	p.stack = append(p.stack, name)
	p.AddPage(name, page, true, true)
	p.SwitchToPage(name)
}

// Pop removes the top page and returns the name of the new top.
func (p *Pages) Pop() (string, bool) {
	if len(p.stack) == 0 {
		return "", false
	}
	name := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.RemovePage(name)
	if top := p.Current(); top != "" {
		p.SwitchToPage(top)
		return top, true
	}

	return "", true
}

// Current returns the top page name.
func (p *Pages) Current() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

// StackPushed notifies a component was added.
func (p *Pages) StackPushed(c model.Component) {
	if prim, ok := c.(tview.Primitive); ok {
		p.Push(c.Name(), prim)
	}
}

// StackPopped notifies a component was removed.
func (p *Pages) StackPopped(old, _ model.Component) {
	if p.Current() == old.Name() {
		p.Pop()
	}
}

// StackTop notifies the top component.
func (*Pages) StackTop(model.Component) {}
