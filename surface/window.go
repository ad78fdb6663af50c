package surface

import (
	"fmt"
	"image"

	"pixwin/input"
)

// EventKind identifies a platform callback.
type EventKind uint8

const (
	EventKeyDown EventKind = iota + 1
	EventKeyUp
	EventButtonDown
	EventButtonUp
	EventFocusLost
	EventFocusGained
	EventClose
)

func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventButtonDown:
		return "button-down"
	case EventButtonUp:
		return "button-up"
	case EventFocusLost:
		return "focus-lost"
	case EventFocusGained:
		return "focus-gained"
	case EventClose:
		return "close"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is a platform callback translated to logical keys and buttons.
// Platform key codes outside the logical key set never become events.
type Event struct {
	Kind   EventKind
	Key    input.Key
	Button input.Button
}

// Window is the native window the surface presents into.
//
// All methods are called from the goroutine that owns the Surface.
type Window interface {
	// Open creates the window with a client area of width x height.
	Open(title string, width, height int) error
	// Show displays frame, width*height*4 bytes of r, g, b, a. The slice is
	// reused by the caller after Show returns.
	Show(frame []byte) error
	// Pump delivers queued events in order and returns once the queue is
	// empty. It must not block waiting for new events.
	Pump(deliver func(Event))
	// CursorPosition returns the cursor relative to the client area.
	CursorPosition() (x, y int)
	SetTitle(title string)
	SetIcon(img image.Image) error
	SetCursorVisible(visible bool)
	Close() error
}
