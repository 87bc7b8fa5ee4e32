package core

// Action is a semantic front-end action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionSeedPrev         // Left, A - previous seed
	ActionSeedNext         // Right, D - next seed
	ActionLevelUp          // Up, W - harder run level
	ActionLevelDown        // Down, S - easier run level
	ActionRandom           // R - random seed
	ActionToggleFog        // F - show or hide fog
	ActionConfirm          // Enter - accept the current seed
	ActionHelp             // ? - toggle full help
	ActionQuit             // Q, Esc, Ctrl+C - leave
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSeedPrev:
		return "SeedPrev"
	case ActionSeedNext:
		return "SeedNext"
	case ActionLevelUp:
		return "LevelUp"
	case ActionLevelDown:
		return "LevelDown"
	case ActionRandom:
		return "Random"
	case ActionToggleFog:
		return "ToggleFog"
	case ActionConfirm:
		return "Confirm"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
