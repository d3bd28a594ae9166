// Package input buffers keyboard and mouse state between the platform
// event pump and the frame update.
package input

// Key identifies a key the demo reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
	keyCount
)

// State is filled by the event pump and read once per frame.
// Deltas only accumulate while the pointer is captured.
type State struct {
	keys     [keyCount]bool
	dx, dy   float32
	captured bool
	quit     bool

	screenshot bool
}

// New creates an empty input state.
func New() *State {
	return &State{}
}

// SetKey records a key press or release.
func (s *State) SetKey(k Key, down bool) {
	if k <= KeyUnknown || k >= keyCount {
		return
	}
	s.keys[k] = down
}

// KeyDown reports whether k is currently held.
func (s *State) KeyDown(k Key) bool {
	if k <= KeyUnknown || k >= keyCount {
		return false
	}
	return s.keys[k]
}

// AddMouseMotion accumulates relative mouse motion in pixels.
func (s *State) AddMouseMotion(dx, dy float32) {
	if !s.captured {
		return
	}
	s.dx += dx
	s.dy += dy
}

// ConsumeMouseDelta returns the motion accumulated since the last call and
// resets it.
func (s *State) ConsumeMouseDelta() (dx, dy float32) {
	dx, dy = s.dx, s.dy
	s.dx, s.dy = 0, 0
	return dx, dy
}

// SetCaptured records whether the pointer is locked to the window.
// Releasing it drops any pending motion.
func (s *State) SetCaptured(captured bool) {
	s.captured = captured
	if !captured {
		s.dx, s.dy = 0, 0
	}
}

// Captured reports whether the pointer is locked to the window.
func (s *State) Captured() bool {
	return s.captured
}

// RequestQuit marks that the application should exit.
func (s *State) RequestQuit() {
	s.quit = true
}

// QuitRequested reports whether RequestQuit was called.
func (s *State) QuitRequested() bool {
	return s.quit
}

// RequestScreenshot asks for the next rendered frame to be saved.
func (s *State) RequestScreenshot() {
	s.screenshot = true
}

// ConsumeScreenshot reports whether a screenshot was requested since the
// last call.
func (s *State) ConsumeScreenshot() bool {
	requested := s.screenshot
	s.screenshot = false
	return requested
}

// KeyReader reports held keys.
type KeyReader interface {
	KeyDown(k Key) bool
}

// Axis returns +1, -1 or 0 from a pair of opposing keys.
func Axis(r KeyReader, positive, negative Key) float32 {
	var v float32
	if r.KeyDown(positive) {
		v++
	}
	if r.KeyDown(negative) {
		v--
	}
	return v
}
