package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imbridge"
)

// glfwCursorShapes maps stock shapes to GLFW 3.3 standard cursors. GLFW 3.3
// has no four-way, diagonal or not-allowed cursors, so those fall back to
// the closest shape it has.
var glfwCursorShapes = map[imbridge.CursorShape]glfw.StandardCursor{
	imbridge.CursorArrow:    glfw.ArrowCursor,
	imbridge.CursorIBeam:    glfw.IBeamCursor,
	imbridge.CursorSizing:   glfw.CrosshairCursor,
	imbridge.CursorSizeNS:   glfw.VResizeCursor,
	imbridge.CursorSizeWE:   glfw.HResizeCursor,
	imbridge.CursorSizeNESW: glfw.ArrowCursor,
	imbridge.CursorSizeNWSE: glfw.ArrowCursor,
	imbridge.CursorHand:     glfw.HandCursor,
	imbridge.CursorNoEntry:  glfw.ArrowCursor,
}

type cursor struct {
	shape  imbridge.CursorShape
	native *glfw.Cursor // nil for CursorBlank
}

func (c *cursor) Shape() imbridge.CursorShape { return c.shape }

type cursorService struct {
	window  *glfw.Window
	created []*cursor
}

func (s *cursorService) NewCursor(shape imbridge.CursorShape) imbridge.Cursor {
	c := &cursor{shape: shape}
	if shape != imbridge.CursorBlank {
		std, ok := glfwCursorShapes[shape]
		if !ok {
			std = glfw.ArrowCursor
		}
		c.native = glfw.CreateStandardCursor(std)
	}
	s.created = append(s.created, c)
	return c
}

// SetCursor installs c. The blank cursor hides the pointer over the window
// instead of installing a native cursor.
func (s *cursorService) SetCursor(ic imbridge.Cursor) {
	c, ok := ic.(*cursor)
	if !ok || c.native == nil {
		s.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		return
	}
	s.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	s.window.SetCursor(c.native)
}

func (s *cursorService) destroy() {
	for _, c := range s.created {
		if c.native != nil {
			c.native.Destroy()
		}
	}
	s.created = nil
}
