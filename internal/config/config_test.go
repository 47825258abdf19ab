package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stockr/stockr/internal/config"
	"github.com/stockr/stockr/internal/config/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cfgYAML = `stockr:
  baseURL: http://file:5000
  pageSize: 25
  debounce: 250ms
  ui:
    theme: light
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0600))
	return p
}

func TestConfigLoadMissing(t *testing.T) {
	c := config.NewConfig()
	require.NoError(t, c.Load(filepath.Join(t.TempDir(), "nope.yaml"), false))
	assert.Equal(t, config.DefaultBaseURL, c.Stockr.BaseURL)
	assert.Equal(t, config.DefaultPageSize, c.Stockr.GetPageSize())

	assert.Error(t, c.Load(filepath.Join(t.TempDir(), "nope.yaml"), true))
}

func TestConfigRefinePrecedence(t *testing.T) {
	c := config.NewConfig()
	require.NoError(t, c.Load(writeFile(t, "stockr.yaml", cfgYAML), true))

	assert.Equal(t, "http://file:5000", c.Stockr.BaseURL)
	assert.Equal(t, 25, c.Stockr.GetPageSize())

	env := config.Env{
		config.EnvBaseURL:  "http://env:5000",
		config.EnvPageSize: "bogus",
	}
	size := 5
	flags := &data.Flags{PageSize: &size}
	require.NoError(t, c.Refine(flags, env))

	assert.Equal(t, "http://env:5000", c.Stockr.BaseURL)
	assert.Equal(t, 5, c.Stockr.GetPageSize())
	d, err := c.Stockr.GetDebounce()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)
	assert.Equal(t, config.ThemeLight, c.Stockr.GetTheme())

	u := "http://flag:5000"
	require.NoError(t, c.Refine(&data.Flags{BaseURL: &u}, env))
	assert.Equal(t, u, c.Stockr.BaseURL)
}

func TestConfigRefineInvalid(t *testing.T) {
	uu := map[string]*data.Flags{
		"base-url": {BaseURL: strPtr("not a url")},
		"debounce": {Debounce: strPtr("soon")},
	}

	for k := range uu {
		f := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Error(t, config.NewConfig().Refine(f, nil))
		})
	}
}

func TestStockrValidate(t *testing.T) {
	s := &config.Stockr{PageSize: -3, RefreshRate: -1}
	s.UI.Theme = "neon"
	s.Validate()

	assert.Equal(t, config.DefaultBaseURL, s.BaseURL)
	assert.Equal(t, config.DefaultPageSize, s.PageSize)
	assert.Equal(t, config.DefaultView, s.DefaultView)
	assert.Equal(t, config.ThemeSystem, s.GetTheme())
	assert.Equal(t, time.Duration(0), s.GetRefreshRate())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(config.EnvBaseURL, "")
	require.NoError(t, os.Unsetenv(config.EnvBaseURL))
	t.Setenv(config.EnvTheme, "dark")

	p := writeFile(t, ".env", "STOCKR_BASE_URL=http://dotenv:5000\nSTOCKR_THEME=light\n")
	env, err := config.LoadEnv(p, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "http://dotenv:5000", env[config.EnvBaseURL])
	assert.Equal(t, "dark", env[config.EnvTheme])
}

func TestAliases(t *testing.T) {
	a := config.NewAliases()
	assert.Equal(t, "products", a.Get("prod"))
	assert.Equal(t, "bogus", a.Get("bogus"))

	p := writeFile(t, "aliases.yaml", "aliases:\n  inv: products\n  s: dashboard\n")
	require.NoError(t, a.LoadFrom(p))
	assert.Equal(t, "products", a.Get("inv"))
	assert.Equal(t, "dashboard", a.Get("s"))
	assert.Contains(t, a.Names(), "inv")
}

func TestHotKeys(t *testing.T) {
	h := config.NewHotKeys()
	require.NoError(t, h.LoadFrom(filepath.Join(t.TempDir(), "none.yaml")))
	hh, err := h.Bindings()
	require.NoError(t, err)
	assert.Empty(t, hh)

	p := writeFile(t, "hotkeys.yaml", `hotKeys:
  sales:
    shortCut: Shift-S
    description: Sales
    command: sales
  board:
    shortCut: " F2 "
    command: dashboard
  broken:
    shortCut: Ctrl-B
`)
	require.NoError(t, h.LoadFrom(p))
	hh, err = h.Bindings()
	assert.ErrorContains(t, err, `hotkey "broken"`)
	assert.Equal(t, []config.HotKey{
		{Name: "board", ShortCut: "F2", Description: "dashboard", Command: "dashboard"},
		{Name: "sales", ShortCut: "Shift-S", Description: "Sales", Command: "sales"},
	}, hh)

	bad := writeFile(t, "bad.yaml", "hotKeys: [")
	assert.Error(t, h.LoadFrom(bad))
}

func strPtr(s string) *string {
	return &s
}
