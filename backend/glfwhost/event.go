package glfwhost

import (
	"github.com/go-theft-auto/imbridge"
)

// EventKind identifies which host callback produced an Event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventChar
	EventMouseMove
	EventMouseWheel
	EventMouseLeft
	EventMouseRight
	EventMouseMiddle
)

func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventChar:
		return "char"
	case EventMouseMove:
		return "mouse-move"
	case EventMouseWheel:
		return "mouse-wheel"
	case EventMouseLeft:
		return "mouse-left"
	case EventMouseRight:
		return "mouse-right"
	case EventMouseMiddle:
		return "mouse-middle"
	}
	return "unknown"
}

// Event is a GLFW callback translated into the bridge's host vocabulary.
// It implements both imbridge.KeyEvent and imbridge.MouseEvent.
type Event struct {
	Kind EventKind

	Code     imbridge.KeyCode
	Scancode int
	Char     rune
	Mods     imbridge.Modifiers

	X, Y     int
	Axis     imbridge.WheelAxis
	Rotation int

	Left, Right, Middle bool

	skipped bool
}

var (
	_ imbridge.KeyEvent   = (*Event)(nil)
	_ imbridge.MouseEvent = (*Event)(nil)
)

func (e *Event) KeyCode() imbridge.KeyCode     { return e.Code }
func (e *Event) RawKeyCode() uint32            { return uint32(e.Scancode) }
func (e *Event) UnicodeKey() rune              { return e.Char }
func (e *Event) Modifiers() imbridge.Modifiers { return e.Mods }

// AllowNextEvent is a no-op: GLFW delivers every event exactly once.
func (e *Event) AllowNextEvent() {}

func (e *Event) Position() (int, int)          { return e.X, e.Y }
func (e *Event) WheelAxis() imbridge.WheelAxis { return e.Axis }
func (e *Event) WheelRotation() int            { return e.Rotation }
func (e *Event) LeftIsDown() bool              { return e.Left }
func (e *Event) RightIsDown() bool             { return e.Right }
func (e *Event) MiddleIsDown() bool            { return e.Middle }

// Skip marks the event as not consumed by the GUI.
func (e *Event) Skip() { e.skipped = true }

// Skipped reports whether the GUI passed the event on.
func (e *Event) Skipped() bool { return e.skipped }
