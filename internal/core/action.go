package core

// Action represents a semantic viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionMoveUp            // W, K, Up arrow
	ActionMoveDown          // S, J, Down arrow
	ActionMoveLeft          // A, H
	ActionMoveRight         // D, L
	ActionRotateCCW         // Right arrow, ]
	ActionRotateCW          // Left arrow, [
	ActionNextShape         // Tab
	ActionPrevShape         // Shift+Tab
	ActionToggleSpin        // Space
	ActionResetShape        // R
	ActionToggleHelp        // ?
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionRotateCW:
		return "RotateCW"
	case ActionNextShape:
		return "NextShape"
	case ActionPrevShape:
		return "PrevShape"
	case ActionToggleSpin:
		return "ToggleSpin"
	case ActionResetShape:
		return "ResetShape"
	case ActionToggleHelp:
		return "ToggleHelp"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
