package render

// Action is a logical input the display collaborator can report.
type Action int

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	ZoomIn
	ZoomOut
	Reset
	Quit
)

var actionNames = [...]string{
	MoveUp:    "move-up",
	MoveDown:  "move-down",
	MoveLeft:  "move-left",
	MoveRight: "move-right",
	ZoomIn:    "zoom-in",
	ZoomOut:   "zoom-out",
	Reset:     "reset",
	Quit:      "quit",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Input reports which actions are held during the current frame.
type Input interface {
	Pressed(a Action) bool
}

// Surface displays a width x height row-major buffer of 0x00RRGGBB pixels.
// An error is a broken display and ends the loop.
type Surface interface {
	Present(buf []uint32, width, height int) error
}

// PressedSet is an Input backed by a set of actions.
type PressedSet map[Action]bool

func (s PressedSet) Pressed(a Action) bool { return s[a] }

// Clear empties the set for the next frame.
func (s PressedSet) Clear() {
	for a := range s {
		delete(s, a)
	}
}
