package imbridge

// KeyCode is a native virtual key code as reported by the host toolkit.
// Printable keys report their character (letters in either case, digits and
// punctuation); everything else uses the constants below.
type KeyCode int

// Special key codes. The values follow the host toolkit's virtual key
// numbering, so hosts can pass their codes through unchanged.
const (
	KeyCodeNone   KeyCode = 0
	KeyCodeBack   KeyCode = 8
	KeyCodeTab    KeyCode = 9
	KeyCodeReturn KeyCode = 13
	KeyCodeEscape KeyCode = 27
	KeyCodeSpace  KeyCode = 32
	KeyCodeDelete KeyCode = 127
)

// Non-character keys are numbered from KeyCodeStart.
const (
	KeyCodeStart KeyCode = 300 + iota
	KeyCodeLButton
	KeyCodeRButton
	KeyCodeCancel
	KeyCodeMButton
	KeyCodeClear
	KeyCodeShift
	KeyCodeAlt
	KeyCodeControl
	KeyCodeMenu
	KeyCodePause
	KeyCodeCapital
	KeyCodeEnd
	KeyCodeHome
	KeyCodeLeft
	KeyCodeUp
	KeyCodeRight
	KeyCodeDown
	KeyCodeSelect
	KeyCodePrint
	KeyCodeExecute
	KeyCodeSnapshot
	KeyCodeInsert
	KeyCodeHelp
	KeyCodeNumpad0
	KeyCodeNumpad1
	KeyCodeNumpad2
	KeyCodeNumpad3
	KeyCodeNumpad4
	KeyCodeNumpad5
	KeyCodeNumpad6
	KeyCodeNumpad7
	KeyCodeNumpad8
	KeyCodeNumpad9
	KeyCodeMultiply
	KeyCodeAdd
	KeyCodeSeparator
	KeyCodeSubtract
	KeyCodeDecimal
	KeyCodeDivide
	KeyCodeF1
	KeyCodeF2
	KeyCodeF3
	KeyCodeF4
	KeyCodeF5
	KeyCodeF6
	KeyCodeF7
	KeyCodeF8
	KeyCodeF9
	KeyCodeF10
	KeyCodeF11
	KeyCodeF12
	KeyCodeF13
	KeyCodeF14
	KeyCodeF15
	KeyCodeF16
	KeyCodeF17
	KeyCodeF18
	KeyCodeF19
	KeyCodeF20
	KeyCodeF21
	KeyCodeF22
	KeyCodeF23
	KeyCodeF24
	KeyCodeNumLock
	KeyCodeScroll
	KeyCodePageUp
	KeyCodePageDown
	KeyCodeNumpadSpace
	KeyCodeNumpadTab
	KeyCodeNumpadEnter
	KeyCodeNumpadF1
	KeyCodeNumpadF2
	KeyCodeNumpadF3
	KeyCodeNumpadF4
	KeyCodeNumpadHome
	KeyCodeNumpadLeft
	KeyCodeNumpadUp
	KeyCodeNumpadRight
	KeyCodeNumpadDown
	KeyCodeNumpadPageUp
	KeyCodeNumpadPageDown
	KeyCodeNumpadEnd
	KeyCodeNumpadBegin
	KeyCodeNumpadInsert
	KeyCodeNumpadDelete
	KeyCodeNumpadEqual
	KeyCodeNumpadMultiply
	KeyCodeNumpadAdd
	KeyCodeNumpadSeparator
	KeyCodeNumpadSubtract
	KeyCodeNumpadDecimal
	KeyCodeNumpadDivide
	KeyCodeWindowsLeft
	KeyCodeWindowsRight
	KeyCodeWindowsMenu
)

// Modifiers is the modifier-key mask carried by host key events.
type Modifiers int

const (
	ModNone       Modifiers = 0
	ModAlt        Modifiers = 0x0001
	ModControl    Modifiers = 0x0002
	ModAltGr      Modifiers = ModAlt | ModControl
	ModShift      Modifiers = 0x0004
	ModMeta       Modifiers = 0x0008
	ModRawControl Modifiers = 0x0010
)

// Has reports whether all bits of m are set.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}
