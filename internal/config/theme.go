package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/stockr/stockr/internal/config/data"
	"gopkg.in/ini.v1"
)

// Theme is a UI color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

const (
	prefsSection = "ui"
	themeKey     = "stockr-ui-theme"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, bool) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return t, true
	default:
		return "", false
	}
}

// Resolve maps system to light or dark. COLORFGBG holds "fg;bg" and a
// background of 7 or 15 means a light terminal.
func (t Theme) Resolve() Theme {
	if t != ThemeSystem {
		return t
	}
	v := os.Getenv("COLORFGBG")
	if i := strings.LastIndex(v, ";"); i >= 0 {
		if bg, err := strconv.Atoi(v[i+1:]); err == nil && (bg == 7 || bg == 15) {
			return ThemeLight
		}
	}

	return ThemeDark
}

// ThemePrefs persists the theme choice in an ini file.
type ThemePrefs struct {
	path string
	def  Theme
	mx   sync.Mutex
}

// NewThemePrefs returns prefs stored at path, falling back to def.
func NewThemePrefs(path string, def Theme) *ThemePrefs {
	if _, ok := ParseTheme(string(def)); !ok {
		def = ThemeSystem
	}
	return &ThemePrefs{path: path, def: def}
}

// Get returns the stored theme or the default when none is stored.
func (p *ThemePrefs) Get() Theme {
	p.mx.Lock()
	defer p.mx.Unlock()

	f, err := ini.LooseLoad(p.path)
	if err != nil {
		return p.def
	}
	k, err := f.Section(prefsSection).GetKey(themeKey)
	if err != nil {
		return p.def
	}
	t, ok := ParseTheme(k.String())
	if !ok {
		return p.def
	}

	return t
}

// Set stores the theme.
func (p *ThemePrefs) Set(t Theme) error {
	if _, ok := ParseTheme(string(t)); !ok {
		return fmt.Errorf("invalid theme %q", t)
	}

	p.mx.Lock()
	defer p.mx.Unlock()

	f, err := ini.LooseLoad(p.path)
	if err != nil {
		return fmt.Errorf("failed to read prefs %s: %w", p.path, err)
	}
	f.Section(prefsSection).Key(themeKey).SetValue(string(t))
	if err := data.EnsureFullPath(p.path, 0700); err != nil {
		return err
	}
	if err := f.SaveTo(p.path); err != nil {
		return fmt.Errorf("failed to write prefs %s: %w", p.path, err)
	}

	return nil
}
