package imbridge_test

import (
	"io"
	"log/slog"
	"time"

	"github.com/go-theft-auto/imbridge"
)

// discardLogger keeps expected warnings out of test output.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockWindow struct {
	width, height int
	scale         float64
}

func (w *mockWindow) ClientSize() (int, int)      { return w.width, w.height }
func (w *mockWindow) ContentScaleFactor() float64 { return w.scale }

type mockNativeWindow struct {
	mockWindow
	handle uintptr
}

func (w *mockNativeWindow) NativeHandle() uintptr { return w.handle }

type mockClipboard struct {
	text      string
	hasText   bool
	openFails bool
	opens     int
	closes    int
}

func (c *mockClipboard) Open() bool {
	if c.openFails {
		return false
	}
	c.opens++
	return true
}

func (c *mockClipboard) Close()             { c.closes++ }
func (c *mockClipboard) SupportsText() bool { return c.hasText }
func (c *mockClipboard) Text() string       { return c.text }

func (c *mockClipboard) SetText(text string) bool {
	c.text = text
	c.hasText = true
	return true
}

type mockCursor struct {
	shape imbridge.CursorShape
}

func (c *mockCursor) Shape() imbridge.CursorShape { return c.shape }

type mockCursors struct {
	created   []imbridge.CursorShape
	installed []imbridge.CursorShape
}

func (m *mockCursors) NewCursor(shape imbridge.CursorShape) imbridge.Cursor {
	m.created = append(m.created, shape)
	return &mockCursor{shape: shape}
}

func (m *mockCursors) SetCursor(c imbridge.Cursor) {
	m.installed = append(m.installed, c.Shape())
}

type mockHost struct {
	clipboard *mockClipboard
	cursors   *mockCursors
}

func newMockHost() *mockHost {
	return &mockHost{clipboard: &mockClipboard{}, cursors: &mockCursors{}}
}

func (h *mockHost) Clipboard() imbridge.Clipboard   { return h.clipboard }
func (h *mockHost) Cursors() imbridge.CursorService { return h.cursors }

// mockClock is a manually advanced monotonic clock.
type mockClock struct {
	t time.Time
}

func newMockClock() *mockClock {
	return &mockClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *mockClock) Now() time.Time          { return c.t }
func (c *mockClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type countingRefresher struct {
	calls int
}

func (r *countingRefresher) Refresh() { r.calls++ }

type mockKeyEvent struct {
	code    imbridge.KeyCode
	raw     uint32
	unicode rune
	mods    imbridge.Modifiers

	skipped bool
	allowed bool
}

func (e *mockKeyEvent) KeyCode() imbridge.KeyCode     { return e.code }
func (e *mockKeyEvent) RawKeyCode() uint32            { return e.raw }
func (e *mockKeyEvent) UnicodeKey() rune              { return e.unicode }
func (e *mockKeyEvent) Modifiers() imbridge.Modifiers { return e.mods }
func (e *mockKeyEvent) Skip()                         { e.skipped = true }
func (e *mockKeyEvent) AllowNextEvent()               { e.allowed = true }

type mockMouseEvent struct {
	x, y     int
	axis     imbridge.WheelAxis
	rotation int
	left     bool
	right    bool
	middle   bool

	skipped bool
}

func (e *mockMouseEvent) Position() (int, int)          { return e.x, e.y }
func (e *mockMouseEvent) WheelAxis() imbridge.WheelAxis { return e.axis }
func (e *mockMouseEvent) WheelRotation() int            { return e.rotation }
func (e *mockMouseEvent) LeftIsDown() bool              { return e.left }
func (e *mockMouseEvent) RightIsDown() bool             { return e.right }
func (e *mockMouseEvent) MiddleIsDown() bool            { return e.middle }
func (e *mockMouseEvent) Skip()                         { e.skipped = true }
