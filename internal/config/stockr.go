package config

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/stockr/stockr/internal/config/data"
)

// Default values
const (
	DefaultBaseURL    = "http://localhost:5000"
	DefaultAPITimeout = 30 * time.Second
	DefaultPageSize   = 10
	DefaultDebounce   = 500 * time.Millisecond
	DefaultView       = data.DefaultView
	DefaultTheme      = ThemeSystem
)

// Stockr represents the stockr global configuration.
type Stockr struct {
	BaseURL     string      `yaml:"baseURL"`
	APITimeout  string      `yaml:"apiTimeout"`
	PageSize    int         `yaml:"pageSize"`
	Debounce    string      `yaml:"debounce"`
	RefreshRate float32     `yaml:"refreshRate"`
	DefaultView string      `yaml:"defaultView"`
	UI          data.UI     `yaml:"ui"`
	Logger      data.Logger `yaml:"logger"`

	mx sync.RWMutex
}

// NewStockr creates a Stockr with default settings.
func NewStockr() *Stockr {
	return &Stockr{
		BaseURL:     DefaultBaseURL,
		APITimeout:  DefaultAPITimeout.String(),
		PageSize:    DefaultPageSize,
		Debounce:    DefaultDebounce.String(),
		RefreshRate: DefaultRefreshRate,
		DefaultView: DefaultView,
		UI: data.UI{
			EnableMouse: true,
			Theme:       string(DefaultTheme),
		},
		Logger: data.Logger{Level: DefaultLogLevel},
	}
}

// Validate ensures Stockr has valid settings.
func (s *Stockr) Validate() {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if s.APITimeout == "" {
		s.APITimeout = DefaultAPITimeout.String()
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	if s.Debounce == "" {
		s.Debounce = DefaultDebounce.String()
	}
	if s.RefreshRate < 0 {
		s.RefreshRate = DefaultRefreshRate
	}
	if s.DefaultView == "" {
		s.DefaultView = DefaultView
	}
	if _, ok := ParseTheme(s.UI.Theme); !ok {
		s.UI.Theme = string(DefaultTheme)
	}
	if s.Logger.Level == "" {
		s.Logger.Level = DefaultLogLevel
	}
}

// Override applies CLI flag overrides to the configuration.
func (s *Stockr) Override(flags *data.Flags) {
	if flags == nil {
		return
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	if IsStringSet(flags.BaseURL) {
		s.BaseURL = *flags.BaseURL
	}
	if flags.PageSize != nil && *flags.PageSize > 0 {
		s.PageSize = *flags.PageSize
	}
	if IsStringSet(flags.Debounce) {
		s.Debounce = *flags.Debounce
	}
	if flags.RefreshRate != nil && *flags.RefreshRate >= 0 {
		s.RefreshRate = *flags.RefreshRate
	}
	if IsStringSet(flags.Theme) {
		s.UI.Theme = *flags.Theme
	}
	if IsStringSet(flags.Command) {
		s.DefaultView = *flags.Command
	}
	if IsStringSet(flags.LogLevel) {
		s.Logger.Level = *flags.LogLevel
	}
}

// GetBaseURL returns the validated backend base URL.
func (s *Stockr) GetBaseURL() (string, error) {
	s.mx.RLock()
	raw := s.BaseURL
	s.mx.RUnlock()

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: scheme and host required", raw)
	}

	return raw, nil
}

// GetAPITimeout returns the parsed API timeout duration.
func (s *Stockr) GetAPITimeout() (time.Duration, error) {
	s.mx.RLock()
	timeoutStr := s.APITimeout
	s.mx.RUnlock()

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return 0, fmt.Errorf("invalid API timeout %q: %w", timeoutStr, err)
	}

	return timeout, nil
}

// GetDebounce returns the parsed search debounce window.
func (s *Stockr) GetDebounce() (time.Duration, error) {
	s.mx.RLock()
	d := s.Debounce
	s.mx.RUnlock()

	v, err := time.ParseDuration(d)
	if err != nil {
		return 0, fmt.Errorf("invalid debounce %q: %w", d, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid debounce %q: must not be negative", d)
	}

	return v, nil
}

// GetRefreshRate returns the watch interval. Zero disables watching.
func (s *Stockr) GetRefreshRate() time.Duration {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return time.Duration(float64(s.RefreshRate) * float64(time.Second))
}

// GetPageSize returns the table page size.
func (s *Stockr) GetPageSize() int {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return s.PageSize
}

// GetTheme returns the configured default theme.
func (s *Stockr) GetTheme() Theme {
	s.mx.RLock()
	defer s.mx.RUnlock()

	t, _ := ParseTheme(s.UI.Theme)
	return t
}
