// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/model"
)

// BarMode represents the current input mode.
type BarMode int

const (
	// ModeNormal is the default navigation mode.
	ModeNormal BarMode = iota

	// ModeCommand is for entering commands (: prefix).
	ModeCommand

	// ModeFilter is for filtering rows (/ prefix).
	ModeFilter
)

const (
	iconNormal  = "📦"
	iconCommand = "📦"
	iconFilter  = "🔍"
)

// CmdBar is the command and filter input at the top of the app. Typed
// commands show a ghost completion; filter input is debounced.
type CmdBar struct {
	*tview.TextView

	styles            *Styles
	queue             QueueFunc
	debounce          *model.Debouncer
	mode              BarMode
	cmdFn             func(string)
	filterFn          func(string)
	activeFn          func(bool)
	isActive          bool
	filterText        string
	text              []rune
	suggestions       []string
	suggestionIdx     int
	currentSuggestion string
	commands          []string
}

// NewCmdBar returns a command bar. Debounced filter values land through
// queue.
func NewCmdBar(styles *Styles, queue QueueFunc, delay time.Duration) *CmdBar {
	c := &CmdBar{
		TextView:      tview.NewTextView(),
		styles:        styles,
		queue:         queue,
		mode:          ModeNormal,
		suggestionIdx: -1,
	}
	c.debounce = model.NewDebouncer(delay, func(s string) {
		c.queue(func() { c.applyFilter(s) })
	})
	c.SetBorder(true)
	c.SetDynamicColors(true)
	c.SetWrap(false)
	c.SetInputCapture(c.keyboard)
	c.Refresh()

	return c
}

func (c *CmdBar) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if !c.isActive {
		return evt
	}

	switch evt.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		if len(c.text) > 0 {
			c.text = c.text[:len(c.text)-1]
		}
		c.changed()
	case tcell.KeyCtrlU, tcell.KeyCtrlW:
		c.text = c.text[:0]
		c.changed()
	case tcell.KeyEnter:
		c.execute()
	case tcell.KeyEsc:
		c.cancel()
	case tcell.KeyTab, tcell.KeyRight:
		if c.currentSuggestion != "" {
			c.text = []rune(c.currentSuggestion)
			c.clearSuggestions()
			c.Refresh()
		}
	case tcell.KeyUp:
		c.cycle(-1)
	case tcell.KeyDown:
		c.cycle(1)
	case tcell.KeyRune:
		c.text = append(c.text, evt.Rune())
		c.changed()
	default:
		return evt
	}

	return nil
}

func (c *CmdBar) changed() {
	c.updateSuggestions()
	c.Refresh()
	if c.mode == ModeFilter {
		c.debounce.Trigger(string(c.text))
	}
}

func (c *CmdBar) cycle(step int) {
	if len(c.suggestions) == 0 {
		return
	}
	c.suggestionIdx = (c.suggestionIdx + step + len(c.suggestions)) % len(c.suggestions)
	c.currentSuggestion = c.suggestions[c.suggestionIdx]
	c.Refresh()
}

// Refresh redraws the prompt with its ghost completion.
func (c *CmdBar) Refresh() {
	c.SetBackgroundColor(c.styles.Bg)
	c.SetTextColor(c.styles.Fg)
	c.SetBorderColor(c.styles.Border)
	if c.isActive {
		c.SetBorderColor(c.styles.Focus)
	}
	c.Clear()

	icon, prefix := iconNormal, ">"
	switch c.mode {
	case ModeCommand:
		icon, prefix = iconCommand, ":"
	case ModeFilter:
		icon, prefix = iconFilter, "/"
	}
	text := string(c.text)
	if !c.isActive && c.filterText != "" {
		icon, prefix, text = iconFilter, "/", c.filterText
	}

	s := c.currentSuggestion
	if s != "" && strings.HasPrefix(s, text) && len(s) > len(text) {
		fmt.Fprintf(c, "%s%s [::b]%s[%s::-]%s[-::]", icon, prefix, tview.Escape(text), Tag(c.styles.Muted), tview.Escape(s[len(text):]))
		return
	}
	fmt.Fprintf(c, "%s%s [::b]%s", icon, prefix, tview.Escape(text))
}

// Suggestions returns the completions matching the typed command.
func (c *CmdBar) Suggestions() []string {
	return c.suggestions
}

func (c *CmdBar) updateSuggestions() {
	text := strings.ToLower(string(c.text))
	c.suggestions, c.suggestionIdx, c.currentSuggestion = nil, -1, ""
	if c.mode != ModeCommand || text == "" {
		return
	}
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, text) {
			c.suggestions = append(c.suggestions, cmd)
		}
	}
	if len(c.suggestions) > 0 {
		c.suggestionIdx, c.currentSuggestion = 0, c.suggestions[0]
	}
}

func (c *CmdBar) clearSuggestions() {
	c.suggestions, c.suggestionIdx, c.currentSuggestion = nil, -1, ""
}

// SetCommands sets the commands offered as completions.
func (c *CmdBar) SetCommands(cmds []string) {
	c.commands = slices.Clone(cmds)
	sort.Strings(c.commands)
}

// InputText returns the text being typed.
func (c *CmdBar) InputText() string {
	return string(c.text)
}

// Type appends s as if typed.
func (c *CmdBar) Type(s string) {
	for _, r := range s {
		c.keyboard(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

// Activate enters command or filter mode. Filter mode resumes the active
// filter text.
func (c *CmdBar) Activate(mode BarMode) {
	c.mode, c.isActive = mode, true
	c.text = c.text[:0]
	if mode == ModeFilter {
		c.text = []rune(c.filterText)
	}
	c.clearSuggestions()
	c.Refresh()
	if c.activeFn != nil {
		c.activeFn(true)
	}
}

// Deactivate leaves input mode.
func (c *CmdBar) Deactivate() {
	c.isActive, c.mode = false, ModeNormal
	c.text = c.text[:0]
	c.clearSuggestions()
	c.Refresh()
	if c.activeFn != nil {
		c.activeFn(false)
	}
}

func (c *CmdBar) execute() {
	text := strings.TrimSpace(string(c.text))
	switch c.mode {
	case ModeCommand:
		c.Deactivate()
		if c.cmdFn != nil && text != "" {
			c.cmdFn(text)
		}
	case ModeFilter:
		c.debounce.Stop()
		if s := string(c.text); s != c.filterText {
			c.applyFilter(s)
		}
		c.Deactivate()
	default:
		c.Deactivate()
	}
}

func (c *CmdBar) cancel() {
	if c.mode == ModeFilter {
		c.debounce.Stop()
		c.applyFilter("")
	}
	c.Deactivate()
}

func (c *CmdBar) applyFilter(s string) {
	c.filterText = s
	if c.filterFn != nil {
		c.filterFn(s)
	}
	c.Refresh()
}

// IsActive returns whether the command bar is accepting input.
func (c *CmdBar) IsActive() bool {
	return c.isActive
}

// Mode returns the current mode.
func (c *CmdBar) Mode() BarMode {
	return c.mode
}

// SetCommandFn sets the callback for command execution.
func (c *CmdBar) SetCommandFn(fn func(string)) {
	c.cmdFn = fn
}

// SetFilterFn sets the callback receiving debounced filter values.
func (c *CmdBar) SetFilterFn(fn func(string)) {
	c.filterFn = fn
}

// SetActiveFn sets the callback for when active state changes.
func (c *CmdBar) SetActiveFn(fn func(bool)) {
	c.activeFn = fn
}

// FilterText returns the applied filter.
func (c *CmdBar) FilterText() string {
	return c.filterText
}

// SyncFilter shows the filter of the active view without notifying.
func (c *CmdBar) SyncFilter(s string) {
	c.debounce.Stop()
	c.filterText = s
	c.Refresh()
}

// Stop drops any pending filter value.
func (c *CmdBar) Stop() {
	c.debounce.Stop()
}
