package hotkeys

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Action is a global window-manager command bound to a key
type Action int

const (
	ActionNone Action = iota
	ActionClose
	ActionCycleFocus
	ActionFullscreen
)

func (a Action) String() string {
	switch a {
	case ActionClose:
		return "close"
	case ActionCycleFocus:
		return "cycle-focus"
	case ActionFullscreen:
		return "fullscreen"
	default:
		return "none"
	}
}

// Spec binds one key sequence (e.g. "Mod4-Tab") to an action
type Spec struct {
	Sequence string
	Action   Action
}

type binding struct {
	mods   uint16
	code   xproto.Keycode
	action Action
}

// Table resolves key presses to actions. The zero value matches nothing.
type Table struct {
	bindings []binding
	// lock modifiers stripped from event state before matching
	ignore uint16

	xu    *xgbutil.XUtil
	root  xproto.Window
	specs []Spec
}

// Match returns the action bound to a key press, or ActionNone
func (t *Table) Match(state uint16, code uint8) Action {
	if t == nil {
		return ActionNone
	}
	mods := state &^ t.ignore
	// Pointer button bits ride along in the state field.
	mods &^= xproto.KeyButMaskButton1 | xproto.KeyButMaskButton2 | xproto.KeyButMaskButton3 |
		xproto.KeyButMaskButton4 | xproto.KeyButMaskButton5
	for _, b := range t.bindings {
		if b.code == xproto.Keycode(code) && b.mods == mods {
			return b.action
		}
	}
	return ActionNone
}

var ignoreModsOnce sync.Once

// Grab parses every spec, grabs the keys on root and returns the table
// used to match the resulting key presses.
func Grab(xu *xgbutil.XUtil, root xproto.Window, specs []Spec) (*Table, error) {
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	t := &Table{xu: xu, root: root, specs: specs}
	if err := t.grab(); err != nil {
		t.Release(xu, root)
		return nil, err
	}
	return t, nil
}

func (t *Table) grab() error {
	t.ignore = 0
	for _, m := range xevent.IgnoreMods {
		t.ignore |= m
	}

	t.bindings = t.bindings[:0]
	for _, s := range t.specs {
		mods, codes, err := keybind.ParseString(t.xu, s.Sequence)
		if err != nil {
			return fmt.Errorf("parse %q: %w", s.Sequence, err)
		}
		if len(codes) == 0 {
			return fmt.Errorf("no keycode for %q", s.Sequence)
		}
		for _, code := range codes {
			if err := keybind.GrabChecked(t.xu, t.root, mods, code); err != nil {
				return fmt.Errorf("grab %q: %w", s.Sequence, err)
			}
			t.bindings = append(t.bindings, binding{mods: mods, code: code, action: s.Action})
		}
	}
	return nil
}

// Rebind reloads the keyboard and modifier maps and grabs every binding
// again under its new keycodes. Call it after a MappingNotify.
func (t *Table) Rebind() error {
	if t == nil || t.xu == nil {
		return nil
	}
	t.Release(t.xu, t.root)

	keybind.KeyMapSet(t.xu, keybind.KeyMapGet(t.xu).GetKeyboardMappingReply)
	keybind.ModMapSet(t.xu, keybind.ModMapGet(t.xu).GetModifierMappingReply)
	configureIgnoreMods(t.xu)

	return t.grab()
}

// Release ungrabs every key held by the table
func (t *Table) Release(xu *xgbutil.XUtil, root xproto.Window) {
	if t == nil {
		return
	}
	for _, b := range t.bindings {
		keybind.Ungrab(xu, root, b.mods, b.code)
	}
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for _, mask := range lockSubsets(base) {
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

// lockSubsets returns the OR of every non-empty subset of base
func lockSubsets(base []uint16) []uint16 {
	var out []uint16
	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		out = append(out, mask)
	}
	return out
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
