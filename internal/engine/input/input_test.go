package input

import "testing"

func TestQueue(t *testing.T) {
	in := New()

	if len(in.Events()) != 0 {
		t.Fatalf("expected empty queue, got %d events", len(in.Events()))
	}

	in.Push(Event{Type: EventMouseMove, RelX: 3, RelY: -2})
	in.Push(Event{Type: EventKeyDown, Key: KeyR})

	if len(in.Events()) != 2 {
		t.Fatalf("expected 2 events, got %d", len(in.Events()))
	}
	if !in.IsKeyPressed(KeyR) {
		t.Error("expected R pressed")
	}
	if in.IsKeyPressed(KeyO) {
		t.Error("O was not pressed")
	}
	if in.QuitRequested() {
		t.Error("no quit was queued")
	}

	in.Reset()
	if len(in.Events()) != 0 {
		t.Errorf("expected empty queue after Reset, got %d events", len(in.Events()))
	}
	if in.IsKeyPressed(KeyR) {
		t.Error("key state should not survive Reset")
	}
}

func TestKeyUpIsNotPress(t *testing.T) {
	in := New()
	in.Push(Event{Type: EventKeyUp, Key: KeyEscape})

	if in.IsKeyPressed(KeyEscape) {
		t.Error("key up should not count as a press")
	}
}

func TestQuitRequested(t *testing.T) {
	in := New()
	in.Push(Event{Type: EventWindowResize, Width: 10, Height: 10})
	in.Push(Event{Type: EventQuit})

	if !in.QuitRequested() {
		t.Error("expected quit")
	}
}

func TestEventTypeString(t *testing.T) {
	tests := map[EventType]string{
		EventNone:       "none",
		EventMouseWheel: "wheel",
		EventDropFile:   "dropfile",
		EventMouseLeave: "mouseleave",
		EventType(99):   "none",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("%d: got %q, want %q", int(typ), got, want)
		}
	}
}
