package main

import "github.com/go-theft-auto/imbridge/imio"

// panel is a stand-in for a real GUI: a side panel covering the left part
// of the window. It claims the mouse while hovered and the keyboard once
// clicked, and asks for a hand cursor over itself.
type panel struct {
	widthFrac float32
	focused   bool
}

// width returns the panel's width in display coordinates.
func (p *panel) width(io *imio.IO) float32 {
	return io.DisplaySize.X * p.widthFrac
}

func (p *panel) hovered(io *imio.IO) bool {
	return io.MouseX >= 0 && io.MouseX < p.width(io) &&
		io.MouseY >= 0 && io.MouseY < io.DisplaySize.Y
}

// Update reads this frame's input and answers with capture flags and the
// desired cursor.
func (p *panel) Update(io *imio.IO) {
	hovered := p.hovered(io)

	if io.MouseClicked(imio.MouseButtonLeft) {
		p.focused = hovered
	}
	if p.focused && io.KeyPressed(imio.KeyEscape) {
		p.focused = false
	}

	io.WantCaptureMouse = hovered
	io.WantCaptureKeyboard = p.focused

	switch {
	case hovered && io.ModShift:
		io.SetMouseCursor(imio.MouseCursorResizeEW)
	case hovered:
		io.SetMouseCursor(imio.MouseCursorHand)
	default:
		io.SetMouseCursor(imio.MouseCursorArrow)
	}
}
