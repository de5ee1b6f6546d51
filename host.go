package imbridge

// Window is the host window the GUI renders into.
type Window interface {
	// ClientSize returns the drawable area in pixels.
	ClientSize() (width, height int)
	// ContentScaleFactor returns the ratio of physical to logical pixels.
	ContentScaleFactor() float64
}

// NativeWindow is implemented by windows that can expose the platform's raw
// window handle.
type NativeWindow interface {
	NativeHandle() uintptr
}

// Clipboard is the host toolkit's clipboard service. It must be opened
// before use and closed afterwards.
type Clipboard interface {
	Open() bool
	Close()
	// SupportsText reports whether text data is currently available.
	SupportsText() bool
	Text() string
	SetText(text string) bool
}

// CursorShape names a stock cursor provided by the host toolkit.
type CursorShape int

const (
	CursorBlank CursorShape = iota // invisible
	CursorArrow
	CursorIBeam
	CursorSizing // four-way move/resize
	CursorSizeNS
	CursorSizeWE
	CursorSizeNESW
	CursorSizeNWSE
	CursorHand
	CursorNoEntry
)

func (s CursorShape) String() string {
	switch s {
	case CursorBlank:
		return "blank"
	case CursorArrow:
		return "arrow"
	case CursorIBeam:
		return "ibeam"
	case CursorSizing:
		return "sizing"
	case CursorSizeNS:
		return "size-ns"
	case CursorSizeWE:
		return "size-we"
	case CursorSizeNESW:
		return "size-nesw"
	case CursorSizeNWSE:
		return "size-nwse"
	case CursorHand:
		return "hand"
	case CursorNoEntry:
		return "no-entry"
	}
	return "unknown"
}

// Cursor is a native cursor handle created by a CursorService.
type Cursor interface {
	Shape() CursorShape
}

// CursorService creates and installs native cursors.
type CursorService interface {
	NewCursor(shape CursorShape) Cursor
	SetCursor(c Cursor)
}

// Host bundles the toolkit services the bridge needs.
type Host interface {
	Clipboard() Clipboard
	Cursors() CursorService
}

// Refresher is notified after each handled input event so the host can
// schedule a redraw.
type Refresher interface {
	Refresh()
}

// RefreshFunc adapts a plain function to Refresher.
type RefreshFunc func()

// Refresh calls f.
func (f RefreshFunc) Refresh() { f() }
