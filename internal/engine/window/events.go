package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/meshview/internal/engine/input"
)

const defaultWheelStep = 100

var keymap = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_ESCAPE: input.KeyEscape,
	sdl.SCANCODE_O:      input.KeyO,
	sdl.SCANCODE_R:      input.KeyR,
	sdl.SCANCODE_S:      input.KeyS,
}

// PollEvents drains the SDL queue into in, replacing the previous frame's
// events. Returns true if the application should quit.
func (w *Window) PollEvents(in *input.Input) bool {
	in.Reset()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := w.translate(event); ok {
			in.Push(e)
		}
	}

	return in.QuitRequested()
}

func (w *Window) translate(event sdl.Event) (input.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return input.Event{Type: input.EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			// Report the drawable size, which is what glViewport needs
			w.updatePixelScale()
			width, height := w.DrawableSize()
			return input.Event{Type: input.EventWindowResize, Width: width, Height: height}, true
		case sdl.WINDOWEVENT_LEAVE:
			return input.Event{Type: input.EventMouseLeave}, true
		}

	case *sdl.KeyboardEvent:
		key, ok := keymap[e.Keysym.Scancode]
		if !ok {
			return input.Event{}, false
		}
		switch e.Type {
		case sdl.KEYDOWN:
			if e.Repeat != 0 {
				return input.Event{}, false
			}
			return input.Event{Type: input.EventKeyDown, Key: key}, true
		case sdl.KEYUP:
			return input.Event{Type: input.EventKeyUp, Key: key}, true
		}

	case *sdl.MouseMotionEvent:
		x, y := w.toPixels(float32(e.X), float32(e.Y))
		relX, relY := w.toPixels(float32(e.XRel), float32(e.YRel))
		return input.Event{
			Type:   input.EventMouseMove,
			MouseX: int(x),
			MouseY: int(y),
			RelX:   relX,
			RelY:   relY,
		}, true

	case *sdl.MouseButtonEvent:
		typ := input.EventMouseUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			typ = input.EventMouseDown
		}
		x, y := w.toPixels(float32(e.X), float32(e.Y))
		return input.Event{
			Type:   typ,
			MouseX: int(x),
			MouseY: int(y),
			Button: e.Button,
		}, true

	case *sdl.MouseWheelEvent:
		ticks := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			ticks = -ticks
		}
		return input.Event{Type: input.EventMouseWheel, WheelY: wheelDelta(ticks, w.config.WheelStep)}, true

	case *sdl.DropEvent:
		if e.Type == sdl.DROPFILE && e.File != "" {
			return input.Event{Type: input.EventDropFile, Path: e.File}, true
		}
	}

	return input.Event{}, false
}

// wheelDelta converts SDL wheel ticks (positive away from the user) into a
// browser-style pixel delta (positive towards the user).
func wheelDelta(ticks, step float32) float32 {
	if step <= 0 {
		step = defaultWheelStep
	}
	return -ticks * step
}
