package imio

// Key identifies a logical keyboard key as seen by the GUI.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyLeftCtrl
	KeyLeftShift
	KeyLeftAlt
	KeyLeftSuper
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt
	KeyRightSuper
	KeyMenu
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyEqual
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGraveAccent
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypadDecimal
	KeyKeypadDivide
	KeyKeypadMultiply
	KeyKeypadSubtract
	KeyKeypadAdd
	KeyKeypadEnter
	KeyKeypadEqual

	// Modifier pseudo-keys. The platform reports these alongside regular
	// key events so the GUI never has to fold left/right variants itself.
	ModCtrl
	ModShift
	ModAlt
	ModSuper

	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:           "--",
	KeyTab:            "Tab",
	KeyLeftArrow:      "Left",
	KeyRightArrow:     "Right",
	KeyUpArrow:        "Up",
	KeyDownArrow:      "Down",
	KeyPageUp:         "PgUp",
	KeyPageDown:       "PgDn",
	KeyHome:           "Home",
	KeyEnd:            "End",
	KeyInsert:         "Ins",
	KeyDelete:         "Del",
	KeyBackspace:      "Backspace",
	KeySpace:          "Space",
	KeyEnter:          "Enter",
	KeyEscape:         "Esc",
	KeyLeftCtrl:       "LCtrl",
	KeyLeftShift:      "LShift",
	KeyLeftAlt:        "LAlt",
	KeyLeftSuper:      "LSuper",
	KeyRightCtrl:      "RCtrl",
	KeyRightShift:     "RShift",
	KeyRightAlt:       "RAlt",
	KeyRightSuper:     "RSuper",
	KeyMenu:           "Menu",
	Key0:              "0",
	Key1:              "1",
	Key2:              "2",
	Key3:              "3",
	Key4:              "4",
	Key5:              "5",
	Key6:              "6",
	Key7:              "7",
	Key8:              "8",
	Key9:              "9",
	KeyA:              "A",
	KeyB:              "B",
	KeyC:              "C",
	KeyD:              "D",
	KeyE:              "E",
	KeyF:              "F",
	KeyG:              "G",
	KeyH:              "H",
	KeyI:              "I",
	KeyJ:              "J",
	KeyK:              "K",
	KeyL:              "L",
	KeyM:              "M",
	KeyN:              "N",
	KeyO:              "O",
	KeyP:              "P",
	KeyQ:              "Q",
	KeyR:              "R",
	KeyS:              "S",
	KeyT:              "T",
	KeyU:              "U",
	KeyV:              "V",
	KeyW:              "W",
	KeyX:              "X",
	KeyY:              "Y",
	KeyZ:              "Z",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyApostrophe:     "'",
	KeyComma:          ",",
	KeyMinus:          "-",
	KeyPeriod:         ".",
	KeySlash:          "/",
	KeySemicolon:      ";",
	KeyEqual:          "=",
	KeyLeftBracket:    "[",
	KeyBackslash:      "\\",
	KeyRightBracket:   "]",
	KeyGraveAccent:    "`",
	KeyCapsLock:       "CapsLock",
	KeyScrollLock:     "ScrollLock",
	KeyNumLock:        "NumLock",
	KeyPrintScreen:    "PrtSc",
	KeyPause:          "Pause",
	KeyKeypad0:        "Keypad0",
	KeyKeypad1:        "Keypad1",
	KeyKeypad2:        "Keypad2",
	KeyKeypad3:        "Keypad3",
	KeyKeypad4:        "Keypad4",
	KeyKeypad5:        "Keypad5",
	KeyKeypad6:        "Keypad6",
	KeyKeypad7:        "Keypad7",
	KeyKeypad8:        "Keypad8",
	KeyKeypad9:        "Keypad9",
	KeyKeypadDecimal:  "Keypad.",
	KeyKeypadDivide:   "Keypad/",
	KeyKeypadMultiply: "Keypad*",
	KeyKeypadSubtract: "Keypad-",
	KeyKeypadAdd:      "Keypad+",
	KeyKeypadEnter:    "KeypadEnter",
	KeyKeypadEqual:    "Keypad=",
	ModCtrl:           "Ctrl",
	ModShift:          "Shift",
	ModAlt:            "Alt",
	ModSuper:          "Super",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "?"
	}
	return keyNames[k]
}

// IsModifier reports whether k is one of the Mod* pseudo-keys.
func (k Key) IsModifier() bool {
	return k >= ModCtrl && k <= ModSuper
}
