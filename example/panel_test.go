package main

import (
	"testing"

	"github.com/go-theft-auto/imbridge/imio"
)

func newPanelIO() *imio.IO {
	io := imio.New()
	io.DisplaySize = imio.Vec2{X: 300, Y: 100}
	return io
}

func TestPanelHoverCapturesMouse(t *testing.T) {
	io := newPanelIO()
	p := &panel{widthFrac: 1.0 / 3.0}

	io.AddMousePosEvent(50, 50)
	p.Update(io)
	if !io.WantCaptureMouse {
		t.Error("hovering the panel should capture the mouse")
	}
	if io.WantCaptureKeyboard {
		t.Error("keyboard should not be captured before a click")
	}
	if io.MouseCursor() != imio.MouseCursorHand {
		t.Errorf("expected hand cursor, got %v", io.MouseCursor())
	}

	io.NewFrame()
	io.AddMousePosEvent(250, 50)
	p.Update(io)
	if io.WantCaptureMouse {
		t.Error("mouse outside the panel should not be captured")
	}
	if io.MouseCursor() != imio.MouseCursorArrow {
		t.Errorf("expected arrow cursor, got %v", io.MouseCursor())
	}
}

func TestPanelShiftHoverCursor(t *testing.T) {
	io := newPanelIO()
	p := &panel{widthFrac: 1.0 / 3.0}

	io.AddMousePosEvent(10, 10)
	io.AddKeyEvent(imio.ModShift, true)
	p.Update(io)
	if io.MouseCursor() != imio.MouseCursorResizeEW {
		t.Errorf("expected resize cursor, got %v", io.MouseCursor())
	}
}

func TestPanelFocus(t *testing.T) {
	io := newPanelIO()
	p := &panel{widthFrac: 1.0 / 3.0}

	// Click inside focuses.
	io.AddMousePosEvent(20, 20)
	io.AddMouseButtonEvent(0, true)
	p.Update(io)
	if !p.focused || !io.WantCaptureKeyboard {
		t.Fatal("clicking the panel should capture the keyboard")
	}

	// Focus survives the mouse leaving.
	io.NewFrame()
	io.AddMouseButtonEvent(0, false)
	io.AddMousePosEvent(200, 20)
	p.Update(io)
	if !io.WantCaptureKeyboard {
		t.Error("focus should survive the mouse leaving the panel")
	}

	// Click outside drops focus.
	io.NewFrame()
	io.AddMouseButtonEvent(0, true)
	p.Update(io)
	if p.focused || io.WantCaptureKeyboard {
		t.Error("clicking outside should release the keyboard")
	}
}

func TestPanelEscapeReleasesFocus(t *testing.T) {
	io := newPanelIO()
	p := &panel{widthFrac: 1.0 / 3.0, focused: true}

	io.AddKeyEvent(imio.KeyEscape, true)
	p.Update(io)
	if p.focused || io.WantCaptureKeyboard {
		t.Error("escape should release the keyboard")
	}
}

func TestStatusLine(t *testing.T) {
	io := newPanelIO()
	p := &panel{widthFrac: 1.0 / 3.0}
	io.AddKeyEvent(imio.ModCtrl, true)
	io.AddKeyEvent(imio.ModAlt, true)

	if got := modString(io); got != "CA" {
		t.Errorf("modString() = %q, want CA", got)
	}
	if got := modString(imio.New()); got != "-" {
		t.Errorf("modString() with no modifiers = %q, want -", got)
	}
	if got := statusLine("demo", io, p); got == "" {
		t.Error("statusLine should not be empty")
	}
}
