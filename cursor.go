package imbridge

import "github.com/go-theft-auto/imbridge/imio"

// cursorShapes maps each GUI cursor to the host stock cursor used for it.
var cursorShapes = [imio.MouseCursorCount]CursorShape{
	imio.MouseCursorArrow:      CursorArrow,
	imio.MouseCursorTextInput:  CursorIBeam,
	imio.MouseCursorResizeAll:  CursorSizing,
	imio.MouseCursorResizeNS:   CursorSizeNS,
	imio.MouseCursorResizeEW:   CursorSizeWE,
	imio.MouseCursorResizeNESW: CursorSizeNESW,
	imio.MouseCursorResizeNWSE: CursorSizeNWSE,
	imio.MouseCursorHand:       CursorHand,
	imio.MouseCursorNotAllowed: CursorNoEntry,
}

func (b *Bridge) createCursors() {
	for i, shape := range cursorShapes {
		b.cursorCache[i] = b.cursors.NewCursor(shape)
	}
	b.blankCursor = b.cursors.NewCursor(CursorBlank)
}

// updateCursor installs the cursor the GUI asked for, but only when it
// differs from the one installed last.
func (b *Bridge) updateCursor() {
	want := b.io.MouseCursor()
	if want == b.lastMouseCursor {
		return
	}

	switch {
	case b.io.MouseDrawCursor || want == imio.MouseCursorNone:
		b.cursors.SetCursor(b.blankCursor)
	case want < 0 || want >= imio.MouseCursorCount:
		b.logger.Debug("unknown mouse cursor, using arrow", "cursor", int(want))
		b.cursors.SetCursor(b.cursorCache[imio.MouseCursorArrow])
	default:
		b.cursors.SetCursor(b.cursorCache[want])
	}
	b.lastMouseCursor = want
}
