package config

import (
	"os"
	"path/filepath"
)

const AppName = "stockr"

var (
	// AppConfigDir is ~/.config/stockr
	AppConfigDir string

	// AppStateDir is ~/.local/state/stockr
	AppStateDir string

	// AppConfigFile is ~/.config/stockr/stockr.yaml
	AppConfigFile string

	// AppHotkeysFile is ~/.config/stockr/hotkeys.yaml
	AppHotkeysFile string

	// AppAliasesFile is ~/.config/stockr/aliases.yaml
	AppAliasesFile string

	// AppEnvFile is ~/.config/stockr/.env
	AppEnvFile string

	// AppPrefsFile is ~/.local/state/stockr/prefs.ini
	AppPrefsFile string

	// AppLogFile is ~/.local/state/stockr/stockr.log
	AppLogFile string

	// AppExportsDir is ~/.local/state/stockr/exports
	AppExportsDir string
)

// InitLocs initializes all application directory paths.
// It respects XDG environment variables if set.
func InitLocs() error {
	home := userHomeDir()

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}

	AppConfigDir = filepath.Join(configHome, AppName)
	AppStateDir = filepath.Join(stateHome, AppName)

	AppConfigFile = filepath.Join(AppConfigDir, AppName+".yaml")
	AppHotkeysFile = filepath.Join(AppConfigDir, "hotkeys.yaml")
	AppAliasesFile = filepath.Join(AppConfigDir, "aliases.yaml")
	AppEnvFile = filepath.Join(AppConfigDir, ".env")

	AppPrefsFile = filepath.Join(AppStateDir, "prefs.ini")
	AppLogFile = filepath.Join(AppStateDir, AppName+".log")
	AppExportsDir = filepath.Join(AppStateDir, "exports")

	for _, dir := range []string{AppConfigDir, AppStateDir, AppExportsDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}

	return nil
}

// InitLogLoc ensures the log directory exists
func InitLogLoc() error {
	return os.MkdirAll(filepath.Dir(AppLogFile), 0700)
}

func userHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return home
}
