package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imbridge"
)

// glfwKeyToKeyCode maps GLFW keys to native key codes.
// GLFW's printable keys already use their ASCII value (letters upper case),
// so they pass through unchanged.
func glfwKeyToKeyCode(key glfw.Key) imbridge.KeyCode {
	switch {
	case key >= glfw.KeySpace && key <= glfw.KeyGraveAccent:
		return imbridge.KeyCode(key)
	case key >= glfw.KeyF1 && key <= glfw.KeyF24:
		return imbridge.KeyCodeF1 + imbridge.KeyCode(key-glfw.KeyF1)
	case key >= glfw.KeyKP0 && key <= glfw.KeyKP9:
		return imbridge.KeyCodeNumpad0 + imbridge.KeyCode(key-glfw.KeyKP0)
	}

	switch key {
	case glfw.KeyEscape:
		return imbridge.KeyCodeEscape
	case glfw.KeyEnter:
		return imbridge.KeyCodeReturn
	case glfw.KeyTab:
		return imbridge.KeyCodeTab
	case glfw.KeyBackspace:
		return imbridge.KeyCodeBack
	case glfw.KeyInsert:
		return imbridge.KeyCodeInsert
	case glfw.KeyDelete:
		return imbridge.KeyCodeDelete
	case glfw.KeyRight:
		return imbridge.KeyCodeRight
	case glfw.KeyLeft:
		return imbridge.KeyCodeLeft
	case glfw.KeyDown:
		return imbridge.KeyCodeDown
	case glfw.KeyUp:
		return imbridge.KeyCodeUp
	case glfw.KeyPageUp:
		return imbridge.KeyCodePageUp
	case glfw.KeyPageDown:
		return imbridge.KeyCodePageDown
	case glfw.KeyHome:
		return imbridge.KeyCodeHome
	case glfw.KeyEnd:
		return imbridge.KeyCodeEnd
	case glfw.KeyCapsLock:
		return imbridge.KeyCodeCapital
	case glfw.KeyScrollLock:
		return imbridge.KeyCodeScroll
	case glfw.KeyNumLock:
		return imbridge.KeyCodeNumLock
	case glfw.KeyPrintScreen:
		return imbridge.KeyCodePrint
	case glfw.KeyPause:
		return imbridge.KeyCodePause
	case glfw.KeyKPDecimal:
		return imbridge.KeyCodeNumpadDecimal
	case glfw.KeyKPDivide:
		return imbridge.KeyCodeNumpadDivide
	case glfw.KeyKPMultiply:
		return imbridge.KeyCodeNumpadMultiply
	case glfw.KeyKPSubtract:
		return imbridge.KeyCodeNumpadSubtract
	case glfw.KeyKPAdd:
		return imbridge.KeyCodeNumpadAdd
	case glfw.KeyKPEnter:
		return imbridge.KeyCodeNumpadEnter
	case glfw.KeyKPEqual:
		return imbridge.KeyCodeNumpadEqual
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return imbridge.KeyCodeShift
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return imbridge.KeyCodeControl
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return imbridge.KeyCodeAlt
	case glfw.KeyLeftSuper:
		return imbridge.KeyCodeWindowsLeft
	case glfw.KeyRightSuper:
		return imbridge.KeyCodeWindowsRight
	case glfw.KeyMenu:
		return imbridge.KeyCodeMenu
	default:
		return imbridge.KeyCodeNone
	}
}

// glfwModsToModifiers maps GLFW modifier bits to the native modifier mask.
func glfwModsToModifiers(mods glfw.ModifierKey) imbridge.Modifiers {
	var m imbridge.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= imbridge.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= imbridge.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= imbridge.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= imbridge.ModMeta
	}
	return m
}
