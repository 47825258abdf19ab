package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables honored on start.
const (
	EnvBaseURL  = "STOCKR_BASE_URL"
	EnvPageSize = "STOCKR_PAGE_SIZE"
	EnvDebounce = "STOCKR_DEBOUNCE"
	EnvTheme    = "STOCKR_THEME"
	EnvLogLevel = "STOCKR_LOG_LEVEL"
)

// Env holds the stockr environment overrides.
type Env map[string]string

// LoadEnv reads .env files into the process environment without
// clobbering variables already set, then snapshots the stockr keys.
// Missing files are skipped.
func LoadEnv(files ...string) (Env, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	env := make(Env)
	for _, k := range []string{EnvBaseURL, EnvPageSize, EnvDebounce, EnvTheme, EnvLogLevel} {
		if v, ok := os.LookupEnv(k); ok && v != "" {
			env[k] = v
		}
	}

	return env, nil
}

// Apply writes the overrides into s. Malformed numbers are ignored.
func (e Env) Apply(s *Stockr) {
	if len(e) == 0 {
		return
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	if v, ok := e[EnvBaseURL]; ok {
		s.BaseURL = v
	}
	if v, ok := e[EnvPageSize]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.PageSize = n
		}
	}
	if v, ok := e[EnvDebounce]; ok {
		s.Debounce = v
	}
	if v, ok := e[EnvTheme]; ok {
		s.UI.Theme = v
	}
	if v, ok := e[EnvLogLevel]; ok {
		s.Logger.Level = v
	}
}
