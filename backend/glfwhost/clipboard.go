package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// clipboard exposes the GLFW clipboard through the open/close protocol the
// bridge expects. GLFW needs no locking, so Open always succeeds.
type clipboard struct {
	window *glfw.Window
	open   bool
}

func (c *clipboard) Open() bool {
	c.open = true
	return true
}

func (c *clipboard) Close() {
	c.open = false
}

// SupportsText reports whether the clipboard holds text. GLFW returns an
// empty string for non-text content.
func (c *clipboard) SupportsText() bool {
	return c.open && c.window.GetClipboardString() != ""
}

func (c *clipboard) Text() string {
	if !c.open {
		return ""
	}
	return c.window.GetClipboardString()
}

func (c *clipboard) SetText(text string) bool {
	if !c.open {
		return false
	}
	c.window.SetClipboardString(text)
	return true
}
