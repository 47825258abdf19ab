// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package view

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/config"
	"github.com/stockr/stockr/internal/dao"
	"github.com/stockr/stockr/internal/model"
	"github.com/stockr/stockr/internal/ui"
)

const (
	// FlashDelay sets the flash auto-clear delay.
	FlashDelay = 5 * time.Second

	mainPage = "main"
)

// FlashLevel represents flash message severity.
type FlashLevel int

const (
	// FlashInfo represents an info message.
	FlashInfo FlashLevel = iota
	// FlashWarn represents a warning message.
	FlashWarn
	// FlashErr represents an error message.
	FlashErr
)

// Flash shows transient status messages. Call it on the UI goroutine.
type Flash struct {
	*tview.TextView

	app    *App
	level  FlashLevel
	cancel context.CancelFunc
	mx     sync.Mutex
}

// NewFlash creates a new Flash instance.
func NewFlash(app *App) *Flash {
	f := &Flash{
		TextView: tview.NewTextView(),
		app:      app,
	}
	f.SetDynamicColors(true)
	f.SetTextAlign(tview.AlignLeft)
	f.SetBorderPadding(0, 0, 1, 1)

	return f
}

// Info displays an informational message.
func (f *Flash) Info(msg string) {
	f.setMessage(FlashInfo, msg)
}

// Infof displays a formatted informational message.
func (f *Flash) Infof(format string, args ...any) {
	f.Info(fmt.Sprintf(format, args...))
}

// Warn displays a warning message.
func (f *Flash) Warn(msg string) {
	f.setMessage(FlashWarn, msg)
}

// Warnf displays a formatted warning message.
func (f *Flash) Warnf(format string, args ...any) {
	f.Warn(fmt.Sprintf(format, args...))
}

// Err displays an error message.
func (f *Flash) Err(err error) {
	if err != nil {
		slog.Error("flash", "error", err)
		f.setMessage(FlashErr, err.Error())
	}
}

// Errf displays a formatted error message.
func (f *Flash) Errf(format string, args ...any) {
	f.setMessage(FlashErr, fmt.Sprintf(format, args...))
}

// Text returns the message shown.
func (f *Flash) Text() string {
	return f.GetText(true)
}

// Level returns the severity of the message shown.
func (f *Flash) Level() FlashLevel {
	return f.level
}

// Clear clears the flash message.
func (f *Flash) Clear() {
	f.stopTimer()
	f.TextView.Clear()
}

// Refresh restyles the flash line.
func (f *Flash) Refresh() {
	f.SetBackgroundColor(f.app.styles.Bg)
	f.SetTextColor(f.color(f.level))
}

func (f *Flash) stopTimer() {
	f.mx.Lock()
	defer f.mx.Unlock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *Flash) setMessage(level FlashLevel, msg string) {
	f.stopTimer()
	if msg == "" {
		f.Clear()
		return
	}

	f.level = level
	f.TextView.Clear()
	f.Refresh()
	fmt.Fprintf(f.TextView, "%s %s", flashPrefix(level), tview.Escape(msg))

	ctx, cancel := context.WithCancel(context.Background())
	f.mx.Lock()
	f.cancel = cancel
	f.mx.Unlock()

	go f.autoClear(ctx)
}

func (f *Flash) autoClear(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(FlashDelay):
		f.app.QueueUpdateDraw(func() {
			if ctx.Err() == nil {
				f.Clear()
			}
		})
	}
}

func (f *Flash) color(level FlashLevel) tcell.Color {
	switch level {
	case FlashWarn:
		return f.app.styles.Warn
	case FlashErr:
		return f.app.styles.Err
	default:
		return f.app.styles.Info
	}
}

func flashPrefix(level FlashLevel) string {
	switch level {
	case FlashWarn:
		return "⚠"
	case FlashErr:
		return "✘"
	default:
		return "✔"
	}
}

// App represents the main application container.
type App struct {
	*tview.Application

	version    string
	Main       *ui.Pages
	Content    *ui.Pages
	config     *config.Config
	factory    dao.Factory
	styles     *ui.Styles
	prefs      *config.ThemePrefs
	aliases    *config.Aliases
	hotkeys    *config.HotKeys
	modal      *model.ModalState
	stack      *model.Stack
	command    *Command
	cmdBar     *ui.CmdBar
	menu       *ui.Menu
	crumbs     *ui.Crumbs
	flash      *Flash
	actions    *ui.KeyActions
	exportsDir string
	queueFn    ui.QueueFunc
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, factory dao.Factory, version string) *App {
	a := &App{
		Application: tview.NewApplication(),
		version:     version,
		Main:        ui.NewPages(),
		Content:     ui.NewPages(),
		config:      cfg,
		factory:     factory,
		prefs:       config.NewThemePrefs(config.AppPrefsFile, cfg.Stockr.GetTheme()),
		aliases:     config.NewAliases(),
		hotkeys:     config.NewHotKeys(),
		modal:       model.NewModalState(),
		stack:       model.NewStack(),
		actions:     ui.NewKeyActions(),
		exportsDir:  config.AppExportsDir,
	}
	a.styles = ui.NewStyles(a.prefs.Get())
	a.flash = NewFlash(a)
	a.menu = ui.NewMenu(a.styles)
	a.crumbs = ui.NewCrumbs(a.styles)

	return a
}

// Init loads the user aliases and hotkeys and builds the layout.
func (a *App) Init() error {
	if err := a.aliases.Load(); err != nil {
		slog.Warn("failed to load aliases", "error", err)
	}
	if err := a.hotkeys.Load(); err != nil {
		slog.Warn("failed to load hotkeys", "error", err)
	}

	debounce, err := a.config.Stockr.GetDebounce()
	if err != nil {
		return err
	}
	a.cmdBar = ui.NewCmdBar(a.styles, a.QueueUpdateDraw, debounce)
	a.cmdBar.SetCommands(a.aliases.Names())
	a.cmdBar.SetActiveFn(a.cmdActive)
	a.cmdBar.SetCommandFn(func(cmd string) {
		if err := a.command.Run(cmd); err != nil {
			a.flash.Err(err)
		}
	})
	a.cmdBar.SetFilterFn(a.applyFilter)

	a.command = NewCommand(a)
	a.bindKeys()
	a.stack.AddListener(a.Content)
	if !a.config.Stockr.UI.Crumbsless {
		a.stack.AddListener(a.crumbs)
	}
	a.stack.AddListener(a.menu)
	a.stack.AddListener(a)

	a.Main.AddPage(mainPage, a.layout(), true, true)
	a.SetRoot(a.Main, true)
	a.EnableMouse(a.config.Stockr.UI.EnableMouse)
	a.SetInputCapture(a.keyboard)
	a.refreshStyles()

	return nil
}

// Run shows the default view and starts the event loop.
func (a *App) Run() error {
	if err := a.command.Run(a.config.Stockr.DefaultView); err != nil {
		a.flash.Err(err)
	}

	return a.Application.Run()
}

// BailOut stops the app.
func (a *App) BailOut() {
	a.stack.Clear()
	a.cmdBar.Stop()
	a.Application.Stop()
}

// Flash returns the flash message handler.
func (a *App) Flash() *Flash {
	return a.flash
}

// Factory returns the backend factory.
func (a *App) Factory() dao.Factory {
	return a.factory
}

// Styles returns the shared styles.
func (a *App) Styles() *ui.Styles {
	return a.styles
}

// Modal returns the shared dialog state.
func (a *App) Modal() *model.ModalState {
	return a.modal
}

// Stack returns the view stack.
func (a *App) Stack() *model.Stack {
	return a.stack
}

// CmdBar returns the command bar.
func (a *App) CmdBar() *ui.CmdBar {
	return a.cmdBar
}

// Config returns the configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// QueueUpdateDraw runs fn on the UI goroutine and redraws. Call it from
// background goroutines only.
func (a *App) QueueUpdateDraw(fn func()) {
	if a.queueFn != nil {
		a.queueFn(fn)
		return
	}
	go a.Application.QueueUpdateDraw(fn)
}

// NewDialog returns a dialog overlaying the main page. Focus goes back to
// restore once it is dismissed.
func (a *App) NewDialog(pageID string, restore tview.Primitive) *ui.Dialog {
	d := ui.NewDialog(a.Main, a.modal, a.setFocus, pageID)
	d.SetDoneFn(func() {
		a.setFocus(restore)
	})

	return d
}

func (a *App) setFocus(p tview.Primitive) {
	if p != nil {
		a.SetFocus(p)
	}
}

// SetTheme switches and persists the theme.
func (a *App) SetTheme(t config.Theme) error {
	if err := a.prefs.Set(t); err != nil {
		return err
	}
	a.styles.Load(t)
	a.refreshStyles()

	return nil
}

// Theme returns the persisted theme preference.
func (a *App) Theme() config.Theme {
	return a.prefs.Get()
}

func (a *App) refreshStyles() {
	a.Main.SetBackgroundColor(a.styles.Bg)
	a.Content.SetBackgroundColor(a.styles.Bg)
	a.cmdBar.Refresh()
	a.crumbs.Refresh()
	a.flash.Refresh()
	a.menu.HydrateMenu(a.menu.Hints())
	if r, ok := a.stack.Top().(interface{ Refresh() }); ok {
		r.Refresh()
	}
}

func (a *App) layout() *tview.Flex {
	main := tview.NewFlex().SetDirection(tview.FlexRow)
	main.AddItem(a.cmdBar, 3, 0, false)
	main.AddItem(a.Content, 0, 1, true)
	if !a.config.Stockr.UI.Crumbsless {
		main.AddItem(a.crumbs, 1, 0, false)
	}
	main.AddItem(a.flash, 1, 0, false)
	main.AddItem(a.menu, ui.MenuHeight, 0, false)

	return main
}

func (a *App) bindKeys() {
	a.actions.Bulk(ui.KeyMap{
		ui.KeyColon:    ui.NewKeyAction("Command", a.activateCmd(ui.ModeCommand), false),
		ui.KeySlash:    ui.NewKeyAction("Filter", a.activateCmd(ui.ModeFilter), false),
		ui.KeyHelp:     ui.NewKeyAction("Help", a.helpCmd, false),
		tcell.KeyCtrlC: ui.NewKeyAction("Quit", a.quitCmd, false),
	})
	hh, err := a.hotkeys.Bindings()
	if err != nil {
		slog.Warn("skipped hotkeys", "error", err)
	}
	for _, hk := range hh {
		key, ok := ui.ParseKey(hk.ShortCut)
		if !ok {
			slog.Warn("invalid hotkey", "name", hk.Name, "shortCut", hk.ShortCut)
			continue
		}
		cmd := hk.Command
		a.actions.Add(key, ui.NewKeyAction(hk.Description, func(*tcell.EventKey) *tcell.EventKey {
			if err := a.command.Run(cmd); err != nil {
				a.flash.Err(err)
			}
			return nil
		}, false))
	}
}

// keyboard handles global keys unless a dialog or the command bar owns
// the keyboard.
func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if a.cmdBar.IsActive() || a.modal.IsOpen() {
		return evt
	}
	return a.actions.Handle(evt)
}

func (a *App) activateCmd(mode ui.BarMode) ui.ActionHandler {
	return func(evt *tcell.EventKey) *tcell.EventKey {
		if _, ok := a.stack.Top().(filterer); mode == ui.ModeFilter && !ok {
			return evt
		}
		a.cmdBar.Activate(mode)
		return nil
	}
}

func (a *App) helpCmd(*tcell.EventKey) *tcell.EventKey {
	if a.stack.Top() != nil && a.stack.Top().Name() == helpName {
		return nil
	}
	if err := a.command.Run(helpName); err != nil {
		a.flash.Err(err)
	}
	return nil
}

func (a *App) quitCmd(*tcell.EventKey) *tcell.EventKey {
	a.BailOut()
	return nil
}

// cmdActive moves focus between the command bar and the active view. The
// detail panel closes once focus leaves the table for the command bar.
func (a *App) cmdActive(active bool) {
	top := a.stack.Top()
	if active {
		if c, ok := top.(detailsCloser); ok {
			c.CloseDetails()
		}
		a.SetFocus(a.cmdBar)
		return
	}
	if p, ok := top.(tview.Primitive); ok {
		a.SetFocus(p)
	}
}

func (a *App) applyFilter(q string) {
	if f, ok := a.stack.Top().(filterer); ok {
		f.SetFilter(q)
	}
}

// PrevCmd pops the current view unless it is the last one.
func (a *App) PrevCmd() {
	if !a.stack.IsLast() {
		a.stack.Pop()
	}
}

// StackPushed notifies a view was pushed.
func (*App) StackPushed(model.Component) {}

// StackPopped notifies a view was popped.
func (*App) StackPopped(_, _ model.Component) {}

// StackTop focuses the active view and syncs its filter.
func (a *App) StackTop(c model.Component) {
	if p, ok := c.(tview.Primitive); ok {
		a.SetFocus(p)
	}
	q := ""
	if f, ok := c.(filterer); ok {
		q = f.Filter()
	}
	a.cmdBar.SyncFilter(q)
}

type filterer interface {
	SetFilter(string)
	Filter() string
}

type detailsCloser interface {
	CloseDetails()
}
