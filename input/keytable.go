package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyEnter:  ActionStart,
			tcell.KeyF1:     ActionToggleDebug,
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyUp:     ActionMoveUp,
			tcell.KeyDown:   ActionMoveDown,
		},
		Runes: map[rune]Action{
			'q': ActionQuit,
			's': ActionToggleSession,
			'm': ActionToggleMute,
			'r': ActionCardRed,
			'g': ActionCardGreen,
			'b': ActionCardBlue,
			'w': ActionCardWhite,
			'x': ActionCardHide,
			'h': ActionMoveLeft,
			'l': ActionMoveRight,
			'k': ActionMoveUp,
			'j': ActionMoveDown,
			'+': ActionGrow,
			'=': ActionGrow,
			'-': ActionShrink,
		},
	}
}

// Lookup resolves a key event
func (t *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}

// Bind parses a "key=action" list such as "z=card_red,space=start" and applies it
// Single characters bind runes; other names resolve through tcell's key names
func (t *KeyTable) Bind(bindings string) error {
	for _, pair := range strings.Split(bindings, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		keyName, actionName, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("key binding %q: missing '='", pair)
		}
		action, ok := ParseAction(strings.TrimSpace(actionName))
		if !ok {
			return fmt.Errorf("key binding %q: unknown action %q", pair, actionName)
		}

		keyName = strings.TrimSpace(keyName)
		if strings.EqualFold(keyName, "space") {
			keyName = " "
		}
		if r := []rune(keyName); len(r) == 1 {
			t.Runes[r[0]] = action
			continue
		}
		key, ok := specialKey(keyName)
		if !ok {
			return fmt.Errorf("key binding %q: unknown key %q", pair, keyName)
		}
		t.SpecialKeys[key] = action
	}
	return nil
}

// specialKey resolves a key name case-insensitively against tcell.KeyNames
func specialKey(name string) (tcell.Key, bool) {
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}
