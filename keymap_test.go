package imbridge_test

import (
	"testing"

	"github.com/go-theft-auto/imbridge"
	"github.com/go-theft-auto/imbridge/imio"
)

func TestTranslateKeyTable(t *testing.T) {
	tests := []struct {
		code imbridge.KeyCode
		want imio.Key
	}{
		{imbridge.KeyCodeTab, imio.KeyTab},
		{imbridge.KeyCodeLeft, imio.KeyLeftArrow},
		{imbridge.KeyCodeRight, imio.KeyRightArrow},
		{imbridge.KeyCodeUp, imio.KeyUpArrow},
		{imbridge.KeyCodeDown, imio.KeyDownArrow},
		{imbridge.KeyCodePageUp, imio.KeyPageUp},
		{imbridge.KeyCodePageDown, imio.KeyPageDown},
		{imbridge.KeyCodeHome, imio.KeyHome},
		{imbridge.KeyCodeEnd, imio.KeyEnd},
		{imbridge.KeyCodeInsert, imio.KeyInsert},
		{imbridge.KeyCodeDelete, imio.KeyDelete},
		{imbridge.KeyCodeBack, imio.KeyBackspace},
		{imbridge.KeyCodeSpace, imio.KeySpace},
		{imbridge.KeyCodeReturn, imio.KeyEnter},
		{imbridge.KeyCodeEscape, imio.KeyEscape},
		{imbridge.KeyCodeControl, imio.KeyLeftCtrl},
		{imbridge.KeyCodeShift, imio.KeyLeftShift},
		{imbridge.KeyCodeAlt, imio.KeyLeftAlt},
		{imbridge.KeyCodeWindowsLeft, imio.KeyLeftSuper},
		{imbridge.KeyCodeWindowsRight, imio.KeyRightSuper},
		{imbridge.KeyCodeMenu, imio.KeyMenu},

		{imbridge.KeyCodeNumpadTab, imio.KeyTab},
		{imbridge.KeyCodeNumpadLeft, imio.KeyLeftArrow},
		{imbridge.KeyCodeNumpadRight, imio.KeyRightArrow},
		{imbridge.KeyCodeNumpadUp, imio.KeyUpArrow},
		{imbridge.KeyCodeNumpadDown, imio.KeyDownArrow},
		{imbridge.KeyCodeNumpadPageUp, imio.KeyPageUp},
		{imbridge.KeyCodeNumpadPageDown, imio.KeyPageDown},
		{imbridge.KeyCodeNumpadHome, imio.KeyHome},
		{imbridge.KeyCodeNumpadEnd, imio.KeyEnd},
		{imbridge.KeyCodeNumpadInsert, imio.KeyInsert},
		{imbridge.KeyCodeNumpadDelete, imio.KeyDelete},
		{imbridge.KeyCodeNumpadSpace, imio.KeySpace},
		{imbridge.KeyCodeNumpadF1, imio.KeyF1},
		{imbridge.KeyCodeNumpadF4, imio.KeyF4},

		{'0', imio.Key0},
		{'5', imio.Key5},
		{'9', imio.Key9},

		{imbridge.KeyCodeF1, imio.KeyF1},
		{imbridge.KeyCodeF7, imio.KeyF7},
		{imbridge.KeyCodeF12, imio.KeyF12},

		{'"', imio.KeyApostrophe},
		{',', imio.KeyComma},
		{'-', imio.KeyMinus},
		{'.', imio.KeyPeriod},
		{'/', imio.KeySlash},
		{';', imio.KeySemicolon},
		{'=', imio.KeyEqual},
		{'(', imio.KeyLeftBracket},
		{'\\', imio.KeyBackslash},
		{')', imio.KeyRightBracket},
		{'`', imio.KeyGraveAccent},

		{imbridge.KeyCodeCapital, imio.KeyCapsLock},
		{imbridge.KeyCodeScroll, imio.KeyScrollLock},
		{imbridge.KeyCodeNumLock, imio.KeyNumLock},
		{imbridge.KeyCodePrint, imio.KeyPrintScreen},
		{imbridge.KeyCodePause, imio.KeyPause},

		{imbridge.KeyCodeNumpad0, imio.KeyKeypad0},
		{imbridge.KeyCodeNumpad9, imio.KeyKeypad9},
		{imbridge.KeyCodeNumpadDecimal, imio.KeyKeypadDecimal},
		{imbridge.KeyCodeNumpadDivide, imio.KeyKeypadDivide},
		{imbridge.KeyCodeNumpadMultiply, imio.KeyKeypadMultiply},
		{imbridge.KeyCodeNumpadSubtract, imio.KeyKeypadSubtract},
		{imbridge.KeyCodeNumpadAdd, imio.KeyKeypadAdd},
		{imbridge.KeyCodeNumpadEnter, imio.KeyKeypadEnter},
		{imbridge.KeyCodeNumpadEqual, imio.KeyKeypadEqual},
	}

	for _, tt := range tests {
		got, ok := imbridge.LookupKey(tt.code)
		if !ok {
			t.Errorf("code %d: expected a mapping", tt.code)
			continue
		}
		if got != tt.want {
			t.Errorf("code %d: expected %v, got %v", tt.code, tt.want, got)
		}
		if again := imbridge.TranslateKey(tt.code); again != got {
			t.Errorf("code %d: translation not deterministic (%v then %v)", tt.code, got, again)
		}
	}
}

func TestTranslateKeyLettersCaseInsensitive(t *testing.T) {
	for i := 0; i < 26; i++ {
		upper := imbridge.KeyCode('A' + i)
		lower := imbridge.KeyCode('a' + i)
		want := imio.KeyA + imio.Key(i)

		if got := imbridge.TranslateKey(upper); got != want {
			t.Errorf("%c: expected %v, got %v", rune(upper), want, got)
		}
		if got := imbridge.TranslateKey(lower); got != want {
			t.Errorf("%c: expected %v, got %v", rune(lower), want, got)
		}
	}
}

func TestTranslateKeyUnmapped(t *testing.T) {
	unmapped := []imbridge.KeyCode{
		imbridge.KeyCodeNone,
		imbridge.KeyCodeF13,
		imbridge.KeyCodeF24,
		imbridge.KeyCodeNumpadBegin,
		imbridge.KeyCodeNumpadSeparator,
		imbridge.KeyCodeMultiply,
		imbridge.KeyCodeWindowsMenu,
		imbridge.KeyCodeLButton,
		'[',
		']',
		'\'',
		'!',
		1000,
		-1,
	}

	for _, code := range unmapped {
		if _, ok := imbridge.LookupKey(code); ok {
			t.Errorf("code %d: expected no mapping", code)
		}
		if got := imbridge.TranslateKey(code); got != imio.KeyNone {
			t.Errorf("code %d: expected KeyNone, got %v", code, got)
		}
	}
}

func TestTranslateKeyNoRightSideModifiers(t *testing.T) {
	for code := imbridge.KeyCode(0); code < 1024; code++ {
		switch imbridge.TranslateKey(code) {
		case imio.KeyRightCtrl, imio.KeyRightShift, imio.KeyRightAlt:
			t.Errorf("code %d maps to a right-side Ctrl/Shift/Alt key", code)
		}
	}
}

func TestKeyCodeValues(t *testing.T) {
	tests := []struct {
		code imbridge.KeyCode
		want int
	}{
		{imbridge.KeyCodeStart, 300},
		{imbridge.KeyCodeShift, 306},
		{imbridge.KeyCodeControl, 308},
		{imbridge.KeyCodeNumpad0, 324},
		{imbridge.KeyCodeF1, 340},
		{imbridge.KeyCodeF24, 363},
		{imbridge.KeyCodePageUp, 366},
		{imbridge.KeyCodeNumpadEnter, 370},
		{imbridge.KeyCodeNumpadDivide, 392},
		{imbridge.KeyCodeWindowsMenu, 395},
	}
	for _, tt := range tests {
		if int(tt.code) != tt.want {
			t.Errorf("expected %d, got %d", tt.want, tt.code)
		}
	}
}
