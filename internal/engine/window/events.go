package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cubewalk/internal/engine/input"
)

// keymap translates SDL scancodes to demo keys.
var keymap = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_W:      input.KeyW,
	sdl.SCANCODE_A:      input.KeyA,
	sdl.SCANCODE_S:      input.KeyS,
	sdl.SCANCODE_D:      input.KeyD,
	sdl.SCANCODE_ESCAPE: input.KeyEscape,
}

// PollEvents drains the SDL event queue into st.
// Clicking the window captures the pointer; Escape releases it, and a second
// Escape with the pointer free requests quit. F12 requests a screenshot.
// It reports whether the window was resized.
func (w *Window) PollEvents(st *input.State) (resized bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			st.RequestQuit()

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				resized = true
			case sdl.WINDOWEVENT_FOCUS_LOST:
				w.setCaptured(st, false)
			}

		case *sdl.KeyboardEvent:
			if e.Keysym.Scancode == sdl.SCANCODE_F12 && e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				st.RequestScreenshot()
				continue
			}
			key, ok := keymap[e.Keysym.Scancode]
			if !ok {
				continue
			}
			down := e.Type == sdl.KEYDOWN
			st.SetKey(key, down)

			if key == input.KeyEscape && down && e.Repeat == 0 {
				if st.Captured() {
					w.setCaptured(st, false)
				} else {
					st.RequestQuit()
				}
			}

		case *sdl.MouseMotionEvent:
			st.AddMouseMotion(float32(e.XRel), float32(e.YRel))

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT && !st.Captured() {
				w.setCaptured(st, true)
			}
		}
	}
	return resized
}

func (w *Window) setCaptured(st *input.State, captured bool) {
	sdl.SetRelativeMouseMode(captured)
	st.SetCaptured(captured)
}
