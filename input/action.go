package input

// Action is a semantic key binding result
type Action uint8

const (
	ActionNone Action = iota

	// System
	ActionQuit          // q, Esc, Ctrl+C
	ActionStart         // Enter: start a session, or restart the round
	ActionToggleSession // s
	ActionToggleMute    // m
	ActionToggleDebug   // F1

	// Virtual camera card
	ActionCardRed   // r
	ActionCardGreen // g
	ActionCardBlue  // b
	ActionCardWhite // w
	ActionCardHide  // x

	// Card movement
	ActionMoveLeft  // h, Left arrow
	ActionMoveRight // l, Right arrow
	ActionMoveUp    // k, Up arrow
	ActionMoveDown  // j, Down arrow
	ActionGrow      // +, =
	ActionShrink    // -

	actionCount
)

// actionNames maps canonical action names to actions
var actionNames = map[string]Action{
	"none":           ActionNone,
	"quit":           ActionQuit,
	"start":          ActionStart,
	"toggle_session": ActionToggleSession,
	"toggle_mute":    ActionToggleMute,
	"toggle_debug":   ActionToggleDebug,
	"card_red":       ActionCardRed,
	"card_green":     ActionCardGreen,
	"card_blue":      ActionCardBlue,
	"card_white":     ActionCardWhite,
	"card_hide":      ActionCardHide,
	"move_left":      ActionMoveLeft,
	"move_right":     ActionMoveRight,
	"move_up":        ActionMoveUp,
	"move_down":      ActionMoveDown,
	"grow":           ActionGrow,
	"shrink":         ActionShrink,
}

var actionStrings = func() [actionCount]string {
	var s [actionCount]string
	for name, a := range actionNames {
		s[a] = name
	}
	return s
}()

// String returns the canonical action name
func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionStrings[a]
}

// ParseAction resolves a canonical action name
func ParseAction(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

// IsCard reports whether the action controls the virtual camera card
func (a Action) IsCard() bool {
	return a >= ActionCardRed && a <= ActionShrink
}
