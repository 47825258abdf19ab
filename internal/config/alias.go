package config

import (
	"os"
	"sort"
	"sync"

	"github.com/stockr/stockr/internal/config/data"
)

// Aliases represents the alias configuration.
type Aliases struct {
	Alias map[string]string `yaml:"aliases"`
	mx    sync.RWMutex      `yaml:"-"`
}

// DefaultAliases are the built-in command aliases.
var DefaultAliases = map[string]string{
	"products": "products",
	"product":  "products",
	"prod":     "products",
	"p":        "products",

	"categories": "categories",
	"category":   "categories",
	"cat":        "categories",

	"sales": "sales",
	"sale":  "sales",
	"s":     "sales",

	"dashboard": "dashboard",
	"dash":      "dashboard",
	"analytics": "dashboard",
	"home":      "dashboard",
}

// NewAliases creates an Aliases with default aliases loaded.
func NewAliases() *Aliases {
	a := &Aliases{
		Alias: make(map[string]string, len(DefaultAliases)),
	}
	for k, v := range DefaultAliases {
		a.Alias[k] = v
	}
	return a
}

// Load loads aliases from the default config file.
// Merges with default aliases, with file aliases taking precedence.
func (a *Aliases) Load() error {
	return a.LoadFrom(AppAliasesFile)
}

// LoadFrom loads aliases from a specific file path.
func (a *Aliases) LoadFrom(path string) error {
	a.mx.Lock()
	defer a.mx.Unlock()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	loaded := &Aliases{
		Alias: make(map[string]string),
	}
	if err := data.LoadYAML(path, loaded); err != nil {
		return err
	}
	for k, v := range loaded.Alias {
		a.Alias[k] = v
	}

	return nil
}

// SaveTo saves aliases to a specific file path.
func (a *Aliases) SaveTo(path string) error {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return data.SaveYAML(path, a)
}

// Get returns the view for an alias, or the original if not found.
func (a *Aliases) Get(alias string) string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	if view, ok := a.Alias[alias]; ok {
		return view
	}
	return alias
}

// Set sets an alias.
func (a *Aliases) Set(alias, view string) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.Alias[alias] = view
}

// Names returns all alias names sorted.
func (a *Aliases) Names() []string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	nn := make([]string, 0, len(a.Alias))
	for k := range a.Alias {
		nn = append(nn, k)
	}
	sort.Strings(nn)

	return nn
}
