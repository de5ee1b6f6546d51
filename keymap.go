package imbridge

import "github.com/go-theft-auto/imbridge/imio"

// keyTable maps native key codes to GUI keys. It is built once at package
// init and never modified.
//
// Two host quirks are kept as-is:
//   - Control, Shift and Alt only exist as generic codes, so they always
//     map to the Left* keys; only the Windows keys keep a left/right split.
//   - '"', '(' and ')' stand in for the apostrophe and bracket keys.
var keyTable = buildKeyTable()

func buildKeyTable() map[KeyCode]imio.Key {
	t := map[KeyCode]imio.Key{
		KeyCodeTab:          imio.KeyTab,
		KeyCodeLeft:         imio.KeyLeftArrow,
		KeyCodeRight:        imio.KeyRightArrow,
		KeyCodeUp:           imio.KeyUpArrow,
		KeyCodeDown:         imio.KeyDownArrow,
		KeyCodePageUp:       imio.KeyPageUp,
		KeyCodePageDown:     imio.KeyPageDown,
		KeyCodeHome:         imio.KeyHome,
		KeyCodeEnd:          imio.KeyEnd,
		KeyCodeInsert:       imio.KeyInsert,
		KeyCodeDelete:       imio.KeyDelete,
		KeyCodeBack:         imio.KeyBackspace,
		KeyCodeSpace:        imio.KeySpace,
		KeyCodeReturn:       imio.KeyEnter,
		KeyCodeEscape:       imio.KeyEscape,
		KeyCodeControl:      imio.KeyLeftCtrl,
		KeyCodeShift:        imio.KeyLeftShift,
		KeyCodeAlt:          imio.KeyLeftAlt,
		KeyCodeWindowsLeft:  imio.KeyLeftSuper,
		KeyCodeWindowsRight: imio.KeyRightSuper,
		KeyCodeMenu:         imio.KeyMenu,

		KeyCodeNumpadTab:      imio.KeyTab,
		KeyCodeNumpadLeft:     imio.KeyLeftArrow,
		KeyCodeNumpadRight:    imio.KeyRightArrow,
		KeyCodeNumpadUp:       imio.KeyUpArrow,
		KeyCodeNumpadDown:     imio.KeyDownArrow,
		KeyCodeNumpadPageUp:   imio.KeyPageUp,
		KeyCodeNumpadPageDown: imio.KeyPageDown,
		KeyCodeNumpadHome:     imio.KeyHome,
		KeyCodeNumpadEnd:      imio.KeyEnd,
		KeyCodeNumpadInsert:   imio.KeyInsert,
		KeyCodeNumpadDelete:   imio.KeyDelete,
		KeyCodeNumpadSpace:    imio.KeySpace,
		KeyCodeNumpadF1:       imio.KeyF1,
		KeyCodeNumpadF2:       imio.KeyF2,
		KeyCodeNumpadF3:       imio.KeyF3,
		KeyCodeNumpadF4:       imio.KeyF4,

		'"':  imio.KeyApostrophe,
		',':  imio.KeyComma,
		'-':  imio.KeyMinus,
		'.':  imio.KeyPeriod,
		'/':  imio.KeySlash,
		';':  imio.KeySemicolon,
		'=':  imio.KeyEqual,
		'(':  imio.KeyLeftBracket,
		'\\': imio.KeyBackslash,
		')':  imio.KeyRightBracket,
		'`':  imio.KeyGraveAccent,

		KeyCodeCapital: imio.KeyCapsLock,
		KeyCodeScroll:  imio.KeyScrollLock,
		KeyCodeNumLock: imio.KeyNumLock,
		KeyCodePrint:   imio.KeyPrintScreen,
		KeyCodePause:   imio.KeyPause,

		KeyCodeNumpadDecimal:  imio.KeyKeypadDecimal,
		KeyCodeNumpadDivide:   imio.KeyKeypadDivide,
		KeyCodeNumpadMultiply: imio.KeyKeypadMultiply,
		KeyCodeNumpadSubtract: imio.KeyKeypadSubtract,
		KeyCodeNumpadAdd:      imio.KeyKeypadAdd,
		KeyCodeNumpadEnter:    imio.KeyKeypadEnter,
		KeyCodeNumpadEqual:    imio.KeyKeypadEqual,
	}

	for i := 0; i < 10; i++ {
		t[KeyCode('0'+i)] = imio.Key0 + imio.Key(i)
		t[KeyCodeNumpad0+KeyCode(i)] = imio.KeyKeypad0 + imio.Key(i)
	}
	for i := 0; i < 26; i++ {
		t[KeyCode('A'+i)] = imio.KeyA + imio.Key(i)
		t[KeyCode('a'+i)] = imio.KeyA + imio.Key(i)
	}
	for i := 0; i < 12; i++ {
		t[KeyCodeF1+KeyCode(i)] = imio.KeyF1 + imio.Key(i)
	}
	return t
}

// LookupKey translates a native key code into a GUI key. The second result
// is false for codes with no mapping.
func LookupKey(code KeyCode) (imio.Key, bool) {
	k, ok := keyTable[code]
	return k, ok
}

// TranslateKey translates a native key code into a GUI key, returning
// imio.KeyNone for unmapped codes.
func TranslateKey(code KeyCode) imio.Key {
	if k, ok := keyTable[code]; ok {
		return k
	}
	return imio.KeyNone
}
