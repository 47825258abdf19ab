// Package data provides configuration data types for the stockr application.
package data

// Flags represents CLI command-line flags for the stockr application.
// A nil field was not set on the command line.
type Flags struct {
	BaseURL     *string  // Backend base URL
	PageSize    *int     // Rows per table page
	Debounce    *string  // Search debounce window
	RefreshRate *float32 // Watch interval in seconds
	Theme       *string  // light, dark or system
	Command     *string  // Initial view
	LogLevel    *string  // Log level (e.g., debug, info, warn, error)
	LogFile     *string  // Path to log file
}

// UI represents user interface configuration settings.
type UI struct {
	EnableMouse bool   `yaml:"enableMouse"`
	Crumbsless  bool   `yaml:"crumbsless"`
	Theme       string `yaml:"theme"`
}

// Logger represents logging configuration settings.
type Logger struct {
	Level string `yaml:"level"`
}

// DefaultView is the view shown on start.
const DefaultView = "dashboard"
