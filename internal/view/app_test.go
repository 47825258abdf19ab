// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package view

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/config"
	"github.com/stockr/stockr/internal/dao"
	"github.com/stockr/stockr/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend counts the requests reaching the mock server.
type backend struct {
	*mock.Server

	hits map[string]int
	mx   sync.Mutex
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mx.Lock()
	b.hits[r.Method+" "+r.URL.Path]++
	b.mx.Unlock()
	b.Server.ServeHTTP(w, r)
}

// count sums the requests of method whose path starts with prefix.
func (b *backend) count(method, prefix string) int {
	b.mx.Lock()
	defer b.mx.Unlock()

	var n int
	for k, v := range b.hits {
		m, p, _ := strings.Cut(k, " ")
		if m == method && strings.HasPrefix(p, prefix) {
			n += v
		}
	}
	return n
}

// testApp runs UI updates under mx in place of the event loop.
type testApp struct {
	*App

	be *backend
	mx sync.Mutex
}

// newTestApp wires an app to a seeded mock backend. Each file maps a name
// in the config dir to its content, written before the app loads.
func newTestApp(t *testing.T, files ...map[string]string) *testApp {
	t.Helper()

	dir := t.TempDir()
	config.AppPrefsFile = filepath.Join(dir, "prefs.ini")
	config.AppAliasesFile = filepath.Join(dir, "aliases.yaml")
	config.AppHotkeysFile = filepath.Join(dir, "hotkeys.yaml")
	config.AppExportsDir = filepath.Join(dir, "exports")
	for _, ff := range files {
		for name, body := range ff {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0600))
		}
	}

	st := mock.NewStore()
	require.NoError(t, mock.Seed(st))
	be := &backend{Server: mock.NewServer(st, mock.Options{}), hits: make(map[string]int)}
	ts := httptest.NewServer(be)
	t.Cleanup(ts.Close)

	cfg := config.NewConfig()
	cfg.Stockr.BaseURL = ts.URL
	cfg.Stockr.Debounce = "10ms"
	c, err := api.NewClient(api.ClientConfig{BaseURL: ts.URL})
	require.NoError(t, err)

	ta := &testApp{be: be}
	ta.App = NewApp(cfg, dao.NewFactory(c), "test")
	ta.queueFn = func(fn func()) {
		ta.mx.Lock()
		defer ta.mx.Unlock()
		fn()
	}
	require.NoError(t, ta.Init())
	t.Cleanup(func() {
		ta.do(ta.stack.Clear)
	})

	return ta
}

func (ta *testApp) do(fn func()) {
	ta.mx.Lock()
	defer ta.mx.Unlock()
	fn()
}

func (ta *testApp) run(t *testing.T, cmd string) {
	t.Helper()
	var err error
	ta.do(func() { err = ta.command.Run(cmd) })
	require.NoError(t, err)
}

func (ta *testApp) eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	require.Eventually(t, func() bool {
		var ok bool
		ta.do(func() { ok = cond() })
		return ok
	}, 5*time.Second, 10*time.Millisecond, msg)
}

func (ta *testApp) topName() string {
	var n string
	ta.do(func() {
		if top := ta.stack.Top(); top != nil {
			n = top.Name()
		}
	})
	return n
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestCommandAliases(t *testing.T) {
	ta := newTestApp(t)

	uu := map[string]string{
		"p":          "products",
		":cat":       "categories",
		"  SALES  ":  "sales",
		"analytics":  dashboardName,
		"dashboard":  dashboardName,
		"categories": "categories",
	}
	for cmd, name := range uu {
		ta.run(t, cmd)
		assert.Equal(t, name, ta.topName(), cmd)
	}
}

func TestCommandUnknown(t *testing.T) {
	ta := newTestApp(t)

	var err error
	ta.do(func() { err = ta.command.Run("nope") })
	require.Error(t, err)
	assert.Equal(t, "unknown command: nope", err.Error())
	assert.Empty(t, ta.topName())

	ta.do(func() { err = ta.command.Run("   ") })
	assert.NoError(t, err)
}

func TestCommandSameViewReplaces(t *testing.T) {
	ta := newTestApp(t)

	ta.run(t, "products")
	ta.run(t, "categories")
	ta.run(t, "cat")

	ta.do(func() {
		assert.Equal(t, []string{"products", "categories"}, ta.stack.Flatten())
		ta.PrevCmd()
	})
	assert.Equal(t, "products", ta.topName())

	ta.do(ta.PrevCmd)
	assert.Equal(t, "products", ta.topName())
}

func TestCommandTheme(t *testing.T) {
	ta := newTestApp(t)
	ta.run(t, "products")

	ta.run(t, "theme dark")
	assert.Equal(t, config.ThemeDark, ta.Theme())
	ta.do(func() {
		assert.Equal(t, config.ThemeDark, ta.Styles().Theme())
		assert.Contains(t, ta.Flash().Text(), "Theme set to dark")
		assert.Equal(t, FlashInfo, ta.Flash().Level())
	})

	var err error
	ta.do(func() { err = ta.command.Run("theme neon") })
	assert.Error(t, err)
	ta.do(func() { err = ta.command.Run("theme") })
	assert.Error(t, err)
	assert.Equal(t, config.ThemeDark, ta.Theme())
}

func TestHelpToggles(t *testing.T) {
	ta := newTestApp(t)
	ta.run(t, "sales")

	ta.do(func() { ta.keyboard(runeKey('?')) })
	assert.Equal(t, helpName, ta.topName())

	ta.do(func() { ta.keyboard(runeKey('?')) })
	assert.Equal(t, helpName, ta.topName())

	ta.do(func() {
		h, ok := ta.stack.Top().(*Help)
		require.True(t, ok)
		h.GetInputCapture()(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone))
	})
	assert.Equal(t, "sales", ta.topName())
}

func TestFilterNeedsFilterableView(t *testing.T) {
	ta := newTestApp(t)

	ta.run(t, "dashboard")
	ta.do(func() {
		ta.keyboard(runeKey('/'))
		assert.False(t, ta.CmdBar().IsActive())
	})

	ta.run(t, "products")
	ta.do(func() {
		ta.keyboard(runeKey('/'))
		assert.True(t, ta.CmdBar().IsActive())
	})
}

func TestFlashLevels(t *testing.T) {
	ta := newTestApp(t)

	ta.do(func() {
		f := ta.Flash()
		f.Warnf("low on %s", "stock")
		assert.Equal(t, FlashWarn, f.Level())
		assert.Equal(t, "⚠ low on stock", f.Text())

		f.Err(nil)
		assert.Equal(t, FlashWarn, f.Level())

		f.Errf("boom %d", 1)
		assert.Equal(t, FlashErr, f.Level())
		assert.Equal(t, "✘ boom 1", f.Text())

		f.Info("")
		assert.Empty(t, f.Text())
	})
}

func TestUserHotKeysAndAliases(t *testing.T) {
	ta := newTestApp(t, map[string]string{
		"aliases.yaml": "aliases:\n  stock: products\n",
		"hotkeys.yaml": "hotKeys:\n  board:\n    shortCut: Shift-D\n    command: dashboard\n",
	})

	ta.run(t, "stock")
	assert.Equal(t, "products", ta.topName())

	ta.do(func() {
		assert.Nil(t, ta.keyboard(runeKey('D')))
	})
	assert.Equal(t, dashboardName, ta.topName())
}
