package render

// Script is an Input that replays one set of actions per frame and reports
// Quit once it runs out. Used for headless runs.
type Script struct {
	frames [][]Action
	pos    int
}

func NewScript(frames ...[]Action) *Script {
	return &Script{frames: frames}
}

// Repeat builds a script holding the same actions for n frames.
func Repeat(n int, actions ...Action) *Script {
	frames := make([][]Action, n)
	for i := range frames {
		frames[i] = actions
	}
	return NewScript(frames...)
}

// Pressed checks the current frame. A Quit query starts the next frame, which
// matches Renderer.Poll asking for Quit once before any other action.
func (s *Script) Pressed(a Action) bool {
	if a == Quit {
		if s.pos >= len(s.frames) {
			return true
		}
		s.pos++
		return false
	}
	if s.pos == 0 || s.pos > len(s.frames) {
		return false
	}
	for _, f := range s.frames[s.pos-1] {
		if f == a {
			return true
		}
	}
	return false
}
