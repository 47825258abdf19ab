// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"fmt"
	"strings"

	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/model"
)

const crumbFmt = "[%s:%s:%s] <%s> [-:-:-] "

// Crumbs represents user breadcrumbs.
type Crumbs struct {
	*tview.TextView

	styles *Styles
	crumbs []string
}

// NewCrumbs returns a new breadcrumb view.
func NewCrumbs(styles *Styles) *Crumbs {
	c := &Crumbs{
		TextView: tview.NewTextView(),
		styles:   styles,
	}
	c.SetTextAlign(tview.AlignLeft)
	c.SetBorderPadding(0, 0, 1, 1)
	c.SetDynamicColors(true)

	return c
}

// StackPushed indicates a new item was added.
func (c *Crumbs) StackPushed(comp model.Component) {
	c.crumbs = append(c.crumbs, comp.Name())
	c.Refresh()
}

// StackPopped indicates an item was deleted.
func (c *Crumbs) StackPopped(_, _ model.Component) {
	if len(c.crumbs) > 0 {
		c.crumbs = c.crumbs[:len(c.crumbs)-1]
	}
	c.Refresh()
}

// StackTop indicates the top of the stack.
func (*Crumbs) StackTop(model.Component) {}

// Crumbs returns the current trail.
func (c *Crumbs) Crumbs() []string {
	return c.crumbs
}

// Refresh redraws the trail.
func (c *Crumbs) Refresh() {
	c.Clear()
	c.SetBackgroundColor(c.styles.Bg)
	last := len(c.crumbs) - 1
	for i, crumb := range c.crumbs {
		name := strings.ReplaceAll(strings.ToLower(crumb), " ", "")
		if i == last {
			_, _ = fmt.Fprintf(c, crumbFmt, Tag(c.styles.Bg), Tag(c.styles.Title), "b", name)
			continue
		}
		_, _ = fmt.Fprintf(c, crumbFmt, Tag(c.styles.Muted), "-", "-", name)
	}
}
