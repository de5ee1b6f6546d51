// Package glfwhost implements the imbridge host services on top of a GLFW
// window: window metrics, stock cursors, the clipboard and event dispatch.
package glfwhost

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imbridge"
)

// Host adapts a GLFW window to the bridge. It implements imbridge.Host,
// imbridge.Window and imbridge.Refresher.
type Host struct {
	window    *glfw.Window
	cursors   *cursorService
	clipboard *clipboard

	bridge    *imbridge.Bridge
	unhandled func(*Event)

	// Fractional scroll offsets carried over to the next scroll callback.
	wheelX, wheelY float64
}

var (
	_ imbridge.Host      = (*Host)(nil)
	_ imbridge.Window    = (*Host)(nil)
	_ imbridge.Refresher = (*Host)(nil)
)

// New creates a host for window. Call Install once the bridge exists.
func New(window *glfw.Window) *Host {
	return &Host{
		window:    window,
		cursors:   &cursorService{window: window},
		clipboard: &clipboard{window: window},
	}
}

// Window returns the wrapped GLFW window.
func (h *Host) Window() *glfw.Window {
	return h.window
}

func (h *Host) Clipboard() imbridge.Clipboard   { return h.clipboard }
func (h *Host) Cursors() imbridge.CursorService { return h.cursors }

// ClientSize returns the window size in screen coordinates.
func (h *Host) ClientSize() (int, int) {
	return h.window.GetSize()
}

// ContentScaleFactor returns the average of the window's content scales.
func (h *Host) ContentScaleFactor() float64 {
	sx, sy := h.window.GetContentScale()
	return float64(sx+sy) / 2
}

// Refresh wakes up a loop blocked in glfw.WaitEvents.
func (h *Host) Refresh() {
	glfw.PostEmptyEvent()
}

// OnUnhandled sets a listener for events the GUI passed back to the host.
func (h *Host) OnUnhandled(fn func(*Event)) {
	h.unhandled = fn
}

// Install routes the window's input callbacks to b.
func (h *Host) Install(b *imbridge.Bridge) {
	h.bridge = b

	h.window.SetKeyCallback(h.keyCallback)
	h.window.SetCharCallback(h.charCallback)
	h.window.SetCursorPosCallback(h.cursorPosCallback)
	h.window.SetScrollCallback(h.scrollCallback)
	h.window.SetMouseButtonCallback(h.mouseButtonCallback)
}

// Uninstall removes the callbacks set by Install.
func (h *Host) Uninstall() {
	h.window.SetKeyCallback(nil)
	h.window.SetCharCallback(nil)
	h.window.SetCursorPosCallback(nil)
	h.window.SetScrollCallback(nil)
	h.window.SetMouseButtonCallback(nil)
	h.bridge = nil
}

// Close releases the native cursors.
func (h *Host) Close() {
	h.cursors.destroy()
}

func (h *Host) dispatch(ev *Event, handle func(*Event)) {
	if h.bridge == nil {
		return
	}
	handle(ev)
	if ev.Skipped() && h.unhandled != nil {
		h.unhandled(ev)
	}
}

func (h *Host) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	ev := &Event{
		Code:     glfwKeyToKeyCode(key),
		Scancode: scancode,
		Mods:     glfwModsToModifiers(mods),
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		ev.Kind = EventKeyDown
		h.dispatch(ev, func(e *Event) { h.bridge.OnKeyDown(e) })
	case glfw.Release:
		ev.Kind = EventKeyUp
		h.dispatch(ev, func(e *Event) { h.bridge.OnKeyUp(e) })
	}
}

func (h *Host) charCallback(w *glfw.Window, char rune) {
	ev := &Event{Kind: EventChar, Char: char}
	h.dispatch(ev, func(e *Event) { h.bridge.OnChar(e) })
}

func (h *Host) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	ev := h.mouseEvent(EventMouseMove)
	ev.X, ev.Y = int(xpos), int(ypos)
	h.dispatch(ev, func(e *Event) { h.bridge.OnMouseMove(e) })
}

// scrollCallback reports whole wheel steps; trackpads deliver fractions,
// which accumulate until they add up to a step.
func (h *Host) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	var stepY, stepX float64
	stepY, h.wheelY = splitSteps(h.wheelY + yoff)
	stepX, h.wheelX = splitSteps(h.wheelX + xoff)

	if stepY != 0 {
		ev := h.mouseEvent(EventMouseWheel)
		ev.Axis = imbridge.WheelVertical
		ev.Rotation = int(stepY)
		h.dispatch(ev, func(e *Event) { h.bridge.OnMouseWheel(e) })
	}
	if stepX != 0 {
		ev := h.mouseEvent(EventMouseWheel)
		ev.Axis = imbridge.WheelHorizontal
		ev.Rotation = int(stepX)
		h.dispatch(ev, func(e *Event) { h.bridge.OnMouseWheel(e) })
	}
}

func splitSteps(v float64) (whole, frac float64) {
	whole = math.Trunc(v)
	return whole, v - whole
}

func (h *Host) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	var kind EventKind
	switch button {
	case glfw.MouseButtonLeft:
		kind = EventMouseLeft
	case glfw.MouseButtonRight:
		kind = EventMouseRight
	case glfw.MouseButtonMiddle:
		kind = EventMouseMiddle
	default:
		return
	}

	ev := h.mouseEvent(kind)
	ev.Mods = glfwModsToModifiers(mods)
	down := action == glfw.Press
	switch kind {
	case EventMouseLeft:
		ev.Left = down
		h.dispatch(ev, func(e *Event) { h.bridge.OnMouseLeft(e) })
	case EventMouseRight:
		ev.Right = down
		h.dispatch(ev, func(e *Event) { h.bridge.OnMouseRight(e) })
	case EventMouseMiddle:
		ev.Middle = down
		h.dispatch(ev, func(e *Event) { h.bridge.OnMouseMiddle(e) })
	}
}

// mouseEvent builds an event carrying the current pointer position and
// button states.
func (h *Host) mouseEvent(kind EventKind) *Event {
	x, y := h.window.GetCursorPos()
	return &Event{
		Kind:   kind,
		X:      int(x),
		Y:      int(y),
		Left:   h.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		Right:  h.window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press,
		Middle: h.window.GetMouseButton(glfw.MouseButtonMiddle) == glfw.Press,
	}
}
