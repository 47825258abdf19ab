// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"sort"
	"strings"
	"sync"

	"github.com/derailed/tcell/v2"
)

// Rune keys are folded into tcell.Key so that one map serves both.
const (
	KeySpace   = tcell.Key(' ')
	KeySlash   = tcell.Key('/')
	KeyColon   = tcell.Key(':')
	KeyHelp    = tcell.Key('?')
	KeyEqual   = tcell.Key('=')
	KeyLBrack  = tcell.Key('[')
	KeyRBrack  = tcell.Key(']')
	KeyLBrace  = tcell.Key('{')
	KeyRBrace  = tcell.Key('}')
	KeyA       = tcell.Key('a')
	KeyC       = tcell.Key('c')
	KeyE       = tcell.Key('e')
	KeyG       = tcell.Key('g')
	KeyJ       = tcell.Key('j')
	KeyK       = tcell.Key('k')
	KeyQ       = tcell.Key('q')
	KeyR       = tcell.Key('r')
	KeyT       = tcell.Key('t')
	KeyX       = tcell.Key('x')
	KeyShiftA  = tcell.Key('A')
	KeyShiftG  = tcell.Key('G')
	Key1       = tcell.Key('1')
	Key9       = tcell.Key('9')
	keyNumBase = tcell.Key('0')
)

// NumKey returns the key of digit n.
func NumKey(n int) tcell.Key {
	return keyNumBase + tcell.Key(n)
}

// AsKey converts a rune event to its folded key.
func AsKey(evt *tcell.EventKey) tcell.Key {
	if evt.Key() != tcell.KeyRune {
		return evt.Key()
	}
	return tcell.Key(evt.Rune())
}

// ActionHandler handles a keyboard command.
type ActionHandler func(*tcell.EventKey) *tcell.EventKey

// KeyAction represents a keyboard action.
type KeyAction struct {
	Description string
	Action      ActionHandler
	Visible     bool
}

// NewKeyAction returns a new keyboard action.
func NewKeyAction(d string, a ActionHandler, display bool) KeyAction {
	return KeyAction{Description: d, Action: a, Visible: display}
}

// KeyMap tracks key to action mappings.
type KeyMap map[tcell.Key]KeyAction

// KeyActions tracks the actions of a component.
type KeyActions struct {
	actions KeyMap
	mx      sync.RWMutex
}

// NewKeyActions returns an empty action set.
func NewKeyActions() *KeyActions {
	return &KeyActions{actions: make(KeyMap)}
}

// Get returns the action bound to key.
func (a *KeyActions) Get(key tcell.Key) (KeyAction, bool) {
	a.mx.RLock()
	defer a.mx.RUnlock()
	v, ok := a.actions[key]
	return v, ok
}

// Add binds an action.
func (a *KeyActions) Add(k tcell.Key, action KeyAction) {
	a.mx.Lock()
	defer a.mx.Unlock()
	a.actions[k] = action
}

// Bulk binds several actions at once.
func (a *KeyActions) Bulk(km KeyMap) {
	a.mx.Lock()
	defer a.mx.Unlock()
	for k, v := range km {
		a.actions[k] = v
	}
}

// Delete unbinds keys.
func (a *KeyActions) Delete(kk ...tcell.Key) {
	a.mx.Lock()
	defer a.mx.Unlock()
	for _, k := range kk {
		delete(a.actions, k)
	}
}

// Len returns the number of bindings.
func (a *KeyActions) Len() int {
	a.mx.RLock()
	defer a.mx.RUnlock()
	return len(a.actions)
}

// Handle dispatches evt to its bound action. Unbound events pass through.
func (a *KeyActions) Handle(evt *tcell.EventKey) *tcell.EventKey {
	if action, ok := a.Get(AsKey(evt)); ok && action.Action != nil {
		return action.Action(evt)
	}
	return evt
}

// Hints returns the menu hints of the visible actions.
func (a *KeyActions) Hints() MenuHints {
	a.mx.RLock()
	defer a.mx.RUnlock()

	kk := make([]tcell.Key, 0, len(a.actions))
	for k := range a.actions {
		kk = append(kk, k)
	}
	sort.Slice(kk, func(i, j int) bool { return kk[i] < kk[j] })

	hh := make(MenuHints, 0, len(kk))
	for _, k := range kk {
		v := a.actions[k]
		hh = append(hh, MenuHint{
			Mnemonic:    KeyName(k),
			Description: v.Description,
			Visible:     v.Visible,
		})
	}
	return hh
}

// KeyName returns a short display name for a key.
func KeyName(k tcell.Key) string {
	switch k {
	case KeySpace:
		return "space"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEsc:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	}
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	if k >= 32 && k < 127 {
		return string(rune(k))
	}
	return "?"
}

// ParseKey maps a shortcut such as "p", "Shift-P", "Ctrl-E" or "F2" to its
// key.
func ParseKey(s string) (tcell.Key, bool) {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) == 1 {
		return tcell.Key(r[0]), true
	}
	mod, name, ok := strings.Cut(s, "-")
	if ok && len(name) == 1 {
		c := name[0]
		switch strings.ToLower(mod) {
		case "shift":
			return tcell.Key(strings.ToUpper(name)[0]), true
		case "ctrl":
			if c = strings.ToLower(name)[0]; c >= 'a' && c <= 'z' {
				return tcell.KeyCtrlA + tcell.Key(c-'a'), true
			}
		}
		return 0, false
	}
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, s) {
			return k, true
		}
	}

	return 0, false
}
