package config

import (
	"github.com/stockr/stockr/internal/config/data"
)

// DefaultRefreshRate is the default watch interval in seconds. Zero
// disables watching.
const DefaultRefreshRate = 0.0

// DefaultLogLevel is the default logging level.
const DefaultLogLevel = "info"

// NewFlags creates a new Flags instance with default values set. Callers
// reset flags the user did not change to nil so they don't mask config.
func NewFlags() *data.Flags {
	refreshRate := float32(DefaultRefreshRate)
	pageSize := DefaultPageSize
	logLevel := DefaultLogLevel
	logFile := AppLogFile
	baseURL := DefaultBaseURL
	debounce := DefaultDebounce.String()
	theme := string(DefaultTheme)
	command := DefaultView

	return &data.Flags{
		BaseURL:     &baseURL,
		PageSize:    &pageSize,
		Debounce:    &debounce,
		RefreshRate: &refreshRate,
		Theme:       &theme,
		Command:     &command,
		LogLevel:    &logLevel,
		LogFile:     &logFile,
	}
}

// IsStringSet returns true if a string pointer is non-nil and non-empty.
func IsStringSet(s *string) bool {
	return s != nil && *s != ""
}
