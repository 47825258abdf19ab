// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/stockr/stockr/internal/config"
	"github.com/stockr/stockr/internal/ui"
)

const (
	themeCmd = "theme"
	quitName = "quit"
)

// Command handles user command interpretation and execution.
type Command struct {
	app *App
}

// NewCommand creates a new command interpreter.
func NewCommand(app *App) *Command {
	return &Command{app: app}
}

// Run parses and executes a command.
func (c *Command) Run(cmd string) error {
	name, args := parseCommand(strings.TrimPrefix(strings.TrimSpace(cmd), ":"))
	if name == "" {
		return nil
	}
	name = c.app.aliases.Get(name)

	switch name {
	case "q", "q!", quitName:
		c.app.BailOut()
		return nil
	case themeCmd:
		return c.themeCmd(args)
	case helpName:
		return c.show(NewHelp(c.app))
	}

	view, err := c.viewFor(name)
	if err != nil {
		return err
	}
	return c.show(view)
}

func (c *Command) viewFor(name string) (ui.Component, error) {
	switch name {
	case "products":
		return NewProduct(c.app), nil
	case "categories":
		return NewCategory(c.app), nil
	case "sales":
		return NewSale(c.app), nil
	case dashboardName:
		return NewDashboard(c.app), nil
	default:
		return nil, fmt.Errorf("unknown command: %s", name)
	}
}

func (c *Command) themeCmd(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: theme light|dark|system")
	}
	t, ok := config.ParseTheme(args[0])
	if !ok {
		return fmt.Errorf("unknown theme: %s", args[0])
	}
	if err := c.app.SetTheme(t); err != nil {
		return err
	}
	c.app.Flash().Infof("Theme set to %s", t)

	return nil
}

// show pushes v. Running the current view again reloads it in place.
func (c *Command) show(v ui.Component) error {
	if err := v.Init(context.Background()); err != nil {
		return fmt.Errorf("failed to initialize %s: %w", v.Name(), err)
	}
	if top := c.app.stack.Top(); top != nil && top.Name() == v.Name() {
		c.app.stack.Pop()
	}
	c.app.stack.Push(v)

	return nil
}

func parseCommand(cmd string) (string, []string) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}
