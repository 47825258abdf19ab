package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stockr/stockr/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemePrefsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "prefs.ini")
	p := config.NewThemePrefs(path, config.ThemeDark)

	assert.Equal(t, config.ThemeDark, p.Get())

	require.NoError(t, p.Set(config.ThemeLight))
	assert.Equal(t, config.ThemeLight, p.Get())
	assert.Equal(t, config.ThemeLight, config.NewThemePrefs(path, config.ThemeDark).Get())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[ui]")
	assert.Contains(t, string(raw), "stockr-ui-theme")

	assert.Error(t, p.Set("neon"))
}

func TestThemePrefsBadValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.ini")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nstockr-ui-theme = neon\n"), 0600))

	assert.Equal(t, config.ThemeSystem, config.NewThemePrefs(path, "").Get())
}

func TestThemeResolve(t *testing.T) {
	uu := map[string]struct {
		fgbg string
		t, e config.Theme
	}{
		"explicit":     {t: config.ThemeLight, e: config.ThemeLight},
		"system-dark":  {fgbg: "15;0", t: config.ThemeSystem, e: config.ThemeDark},
		"system-light": {fgbg: "0;15", t: config.ThemeSystem, e: config.ThemeLight},
		"system-unset": {t: config.ThemeSystem, e: config.ThemeDark},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			t.Setenv("COLORFGBG", u.fgbg)
			assert.Equal(t, u.e, u.t.Resolve())
		})
	}
}

func TestParseTheme(t *testing.T) {
	th, ok := config.ParseTheme(" Dark ")
	assert.True(t, ok)
	assert.Equal(t, config.ThemeDark, th)

	_, ok = config.ParseTheme("sepia")
	assert.False(t, ok)
}
