// Package imio holds the per-frame input/output state shared between an
// immediate-mode GUI and the platform backend that feeds it.
//
// The platform writes display metrics, timing and input events into an IO
// once per frame (and from its event callbacks); the GUI reads them while
// building the frame and answers back through the capture flags and the
// requested mouse cursor.
package imio

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// ConfigFlags are set by the application to tune backend behavior.
type ConfigFlags int

const (
	ConfigFlagsNone ConfigFlags = 0
	// ConfigFlagsNoMouseCursorChange tells the platform backend not to
	// touch the native cursor shape.
	ConfigFlagsNoMouseCursorChange ConfigFlags = 1 << 5
)

// BackendFlags are set by backends to declare their capabilities.
type BackendFlags int

const (
	BackendFlagsNone BackendFlags = 0
	// BackendFlagsHasMouseCursors is set when the platform honors
	// MouseCursor requests.
	BackendFlagsHasMouseCursors BackendFlags = 1 << 1
)

// MouseCursor is the cursor shape the GUI wants for the current frame.
type MouseCursor int

const (
	MouseCursorNone MouseCursor = iota - 1
	MouseCursorArrow
	MouseCursorTextInput
	MouseCursorResizeAll
	MouseCursorResizeNS
	MouseCursorResizeEW
	MouseCursorResizeNESW
	MouseCursorResizeNWSE
	MouseCursorHand
	MouseCursorNotAllowed
	MouseCursorCount
)

var mouseCursorNames = [MouseCursorCount]string{
	MouseCursorArrow:      "Arrow",
	MouseCursorTextInput:  "TextInput",
	MouseCursorResizeAll:  "ResizeAll",
	MouseCursorResizeNS:   "ResizeNS",
	MouseCursorResizeEW:   "ResizeEW",
	MouseCursorResizeNESW: "ResizeNESW",
	MouseCursorResizeNWSE: "ResizeNWSE",
	MouseCursorHand:       "Hand",
	MouseCursorNotAllowed: "NotAllowed",
}

func (c MouseCursor) String() string {
	switch {
	case c == MouseCursorNone:
		return "None"
	case c < 0 || c >= MouseCursorCount:
		return "?"
	}
	return mouseCursorNames[c]
}

// MouseButton indexes the tracked mouse buttons.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonX1
	MouseButtonX2
	MouseButtonCount
)

// EventType identifies the kind of a queued InputEvent.
type EventType int

const (
	EventKey EventType = iota
	EventMousePos
	EventMouseWheel
	EventMouseButton
	EventText
)

func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMousePos:
		return "mouse-pos"
	case EventMouseWheel:
		return "mouse-wheel"
	case EventMouseButton:
		return "mouse-button"
	case EventText:
		return "text"
	}
	return "?"
}

// InputEvent is a single queued input event, in submission order.
// Only the fields relevant to Type are populated.
type InputEvent struct {
	Type   EventType
	Key    Key
	Down   bool
	Pos    Vec2 // EventMousePos position, EventMouseWheel delta
	Button int
	Char   rune
}
