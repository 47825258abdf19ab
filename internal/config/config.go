package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/stockr/stockr/internal/config/data"
)

// Config is the root configuration for the application.
type Config struct {
	Stockr *Stockr `yaml:"stockr"`

	mx sync.RWMutex
}

// NewConfig creates a new Config with default settings.
func NewConfig() *Config {
	return &Config{
		Stockr: NewStockr(),
	}
}

// Load loads the configuration from the given path.
// If the file doesn't exist, the current config is kept.
func (c *Config) Load(path string, force bool) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !force {
			return nil
		}
		return fmt.Errorf("config file does not exist: %s", path)
	}

	if err := data.LoadYAML(path, c); err != nil {
		return fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if c.Stockr == nil {
		c.Stockr = NewStockr()
	}
	c.Stockr.Validate()

	return nil
}

// Save saves the configuration to the given path.
// If force is false, only saves if the file already exists.
func (c *Config) Save(path string, force bool) error {
	c.mx.RLock()
	defer c.mx.RUnlock()

	if path == "" {
		return fmt.Errorf("no config file path configured")
	}
	if _, err := os.Stat(path); err != nil && !force {
		return nil
	}
	if err := data.SaveYAML(path, c); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", path, err)
	}

	return nil
}

// Refine layers environment and CLI flags over the loaded file.
// Precedence is flag > env > file > default.
func (c *Config) Refine(flags *data.Flags, env Env) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.Stockr == nil {
		return fmt.Errorf("config.Stockr is nil")
	}
	env.Apply(c.Stockr)
	c.Stockr.Override(flags)
	c.Stockr.Validate()

	if _, err := c.Stockr.GetBaseURL(); err != nil {
		return err
	}
	if _, err := c.Stockr.GetAPITimeout(); err != nil {
		return err
	}
	if _, err := c.Stockr.GetDebounce(); err != nil {
		return err
	}

	return nil
}
