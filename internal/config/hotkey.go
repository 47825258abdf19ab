package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/stockr/stockr/internal/config/data"
)

// HotKey runs a command bar command from a single key, e.g. Shift-S for
// sales.
type HotKey struct {
	Name        string `yaml:"-"`
	ShortCut    string `yaml:"shortCut"`
	Description string `yaml:"description"`
	Command     string `yaml:"command"`
}

// HotKeys holds the user key bindings from hotkeys.yaml.
type HotKeys struct {
	HotKey map[string]HotKey `yaml:"hotKeys"`
}

// NewHotKeys returns an empty set.
func NewHotKeys() *HotKeys {
	return &HotKeys{HotKey: make(map[string]HotKey)}
}

// Load reads the user hotkeys file.
func (h *HotKeys) Load() error {
	return h.LoadFrom(AppHotkeysFile)
}

// LoadFrom replaces the set with the bindings in path. A missing file
// leaves the set empty.
func (h *HotKeys) LoadFrom(path string) error {
	var in HotKeys
	if err := data.LoadYAML(path, &in); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.HotKey = make(map[string]HotKey)
			return nil
		}
		return err
	}
	h.HotKey = make(map[string]HotKey, len(in.HotKey))
	for name, hk := range in.HotKey {
		hk.Name = name
		h.HotKey[name] = hk
	}

	return nil
}

// Bindings returns the usable bindings ordered by name. Entries without a
// shortcut or a command are skipped, and the description defaults to
// the command.
func (h *HotKeys) Bindings() ([]HotKey, error) {
	var (
		hh   = make([]HotKey, 0, len(h.HotKey))
		errs []error
	)
	for name, hk := range h.HotKey {
		hk.ShortCut, hk.Command = strings.TrimSpace(hk.ShortCut), strings.TrimSpace(hk.Command)
		if hk.ShortCut == "" || hk.Command == "" {
			errs = append(errs, fmt.Errorf("hotkey %q needs a shortCut and a command", name))
			continue
		}
		if hk.Description == "" {
			hk.Description = hk.Command
		}
		hk.Name = name
		hh = append(hh, hk)
	}
	sort.Slice(hh, func(i, j int) bool { return hh[i].Name < hh[j].Name })

	return hh, errors.Join(errs...)
}
