package imbridge

import "github.com/go-theft-auto/imbridge/imio"

// Mouse button indices reported to the GUI. The middle button has always
// been reported as 20 rather than 2; applications depend on it.
const (
	buttonLeft   = 0
	buttonRight  = 1
	buttonMiddle = 20
)

// KeyEvent is a keyboard event delivered by the host dispatcher.
type KeyEvent interface {
	KeyCode() KeyCode
	// RawKeyCode is the platform scan/key code before translation.
	RawKeyCode() uint32
	// UnicodeKey is the character produced by the key, or 0 if none.
	UnicodeKey() rune
	Modifiers() Modifiers
	// Skip lets the host continue processing the event.
	Skip()
	// AllowNextEvent re-arms the host so the event may be delivered
	// again to other handlers.
	AllowNextEvent()
}

// WheelAxis is the axis a wheel event scrolls along.
type WheelAxis int

const (
	WheelVertical WheelAxis = iota
	WheelHorizontal
)

// MouseEvent is a mouse event delivered by the host dispatcher.
type MouseEvent interface {
	Position() (x, y int)
	WheelAxis() WheelAxis
	WheelRotation() int
	LeftIsDown() bool
	RightIsDown() bool
	MiddleIsDown() bool
	// Skip lets the host continue processing the event.
	Skip()
}

// OnKeyDown forwards a key press.
func (b *Bridge) OnKeyDown(ev KeyEvent) {
	b.onKey(ev, true)
}

// OnKeyUp forwards a key release.
func (b *Bridge) OnKeyUp(ev KeyEvent) {
	b.onKey(ev, false)
}

func (b *Bridge) onKey(ev KeyEvent, down bool) {
	io := b.io

	code := ev.KeyCode()
	key, ok := LookupKey(code)
	if !ok {
		b.logger.Debug("unknown key code", "code", int(code), "char", string(rune(code)))
	}
	io.AddKeyEvent(key, down)

	mods := ev.Modifiers()
	io.AddKeyEvent(imio.ModCtrl, mods&ModControl != 0)
	io.AddKeyEvent(imio.ModShift, mods&ModShift != 0)
	io.AddKeyEvent(imio.ModAlt, mods&ModAlt != 0)
	io.AddKeyEvent(imio.ModSuper, mods&ModMeta != 0)

	if !io.WantCaptureKeyboard || b.passThrough.Keyboard {
		ev.Skip()
	}
	b.refresh()
}

// OnChar forwards text input. Character events are always passed on to
// the host.
func (b *Bridge) OnChar(ev KeyEvent) {
	if uc := ev.UnicodeKey(); uc != 0 {
		b.io.AddInputCharacter(uc)
	} else if c := ev.RawKeyCode(); c > 0 && c < 1000 {
		b.io.AddInputCharacter(rune(c))
	}

	ev.AllowNextEvent()
	ev.Skip()
	b.refresh()
}

// OnMouseMove forwards the absolute mouse position.
func (b *Bridge) OnMouseMove(ev MouseEvent) {
	x, y := ev.Position()
	b.io.AddMousePosEvent(float32(x), float32(y))
	b.skipMouse(ev, b.passThrough.MouseMove)
}

// OnMouseWheel forwards a wheel rotation along the event's axis.
func (b *Bridge) OnMouseWheel(ev MouseEvent) {
	rot := float32(ev.WheelRotation())
	switch ev.WheelAxis() {
	case WheelVertical:
		b.io.AddMouseWheelEvent(0, rot)
	case WheelHorizontal:
		b.io.AddMouseWheelEvent(rot, 0)
	}
	b.skipMouse(ev, b.passThrough.MouseWheel)
}

// OnMouseLeft forwards the left button state.
func (b *Bridge) OnMouseLeft(ev MouseEvent) {
	b.io.AddMouseButtonEvent(buttonLeft, ev.LeftIsDown())
	b.skipMouse(ev, b.passThrough.MouseButton)
}

// OnMouseRight forwards the right button state.
func (b *Bridge) OnMouseRight(ev MouseEvent) {
	b.io.AddMouseButtonEvent(buttonRight, ev.RightIsDown())
	b.skipMouse(ev, b.passThrough.MouseButton)
}

// OnMouseMiddle forwards the middle button state.
func (b *Bridge) OnMouseMiddle(ev MouseEvent) {
	b.io.AddMouseButtonEvent(buttonMiddle, ev.MiddleIsDown())
	b.skipMouse(ev, b.passThrough.MouseButton)
}

func (b *Bridge) skipMouse(ev MouseEvent, always bool) {
	if !b.io.WantCaptureMouse || always {
		ev.Skip()
	}
	b.refresh()
}
