// Package input defines backend-neutral input events and the per-frame queue
// the window fills and the viewer drains.
package input

// EventType identifies the kind of input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
	EventMouseLeave
	EventDropFile
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventWindowResize:
		return "resize"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	case EventMouseMove:
		return "mousemove"
	case EventMouseDown:
		return "mousedown"
	case EventMouseUp:
		return "mouseup"
	case EventMouseWheel:
		return "wheel"
	case EventMouseLeave:
		return "mouseleave"
	case EventDropFile:
		return "dropfile"
	default:
		return "none"
	}
}

// Key is a physical key. Only the keys the viewer binds are named.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyO
	KeyR
	KeyS
)

// Mouse buttons.
const (
	ButtonLeft   uint8 = 1
	ButtonMiddle uint8 = 2
	ButtonRight  uint8 = 3
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	MouseX int
	MouseY int
	RelX   float32 // Pointer movement since the previous motion event
	RelY   float32
	WheelY float32 // Browser-style wheel delta, positive towards the user
	Button uint8
	Path   string // Dropped file
}

// Input is the event queue for one frame.
type Input struct {
	events []Event
}

// New creates a new input queue.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Reset clears the previous frame's events.
func (i *Input) Reset() {
	i.events = i.events[:0]
}

// Push appends an event to the current frame.
func (i *Input) Push(e Event) {
	i.events = append(i.events, e)
}

// Events returns the events of the current frame.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(key Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}

// QuitRequested reports whether a quit event was queued this frame.
func (i *Input) QuitRequested() bool {
	for _, e := range i.events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}
