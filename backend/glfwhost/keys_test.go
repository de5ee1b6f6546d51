package glfwhost

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imbridge"
	"github.com/go-theft-auto/imbridge/imio"
)

func TestGLFWKeyToKeyCode(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want imbridge.KeyCode
	}{
		{glfw.KeyA, 'A'},
		{glfw.KeyZ, 'Z'},
		{glfw.Key0, '0'},
		{glfw.KeySpace, imbridge.KeyCodeSpace},
		{glfw.KeyComma, ','},
		{glfw.KeyBackslash, '\\'},
		{glfw.KeyEscape, imbridge.KeyCodeEscape},
		{glfw.KeyEnter, imbridge.KeyCodeReturn},
		{glfw.KeyBackspace, imbridge.KeyCodeBack},
		{glfw.KeyDelete, imbridge.KeyCodeDelete},
		{glfw.KeyF1, imbridge.KeyCodeF1},
		{glfw.KeyF24, imbridge.KeyCodeF24},
		{glfw.KeyKP0, imbridge.KeyCodeNumpad0},
		{glfw.KeyKP9, imbridge.KeyCodeNumpad9},
		{glfw.KeyKPEnter, imbridge.KeyCodeNumpadEnter},
		{glfw.KeyLeftControl, imbridge.KeyCodeControl},
		{glfw.KeyRightControl, imbridge.KeyCodeControl},
		{glfw.KeyRightShift, imbridge.KeyCodeShift},
		{glfw.KeyRightAlt, imbridge.KeyCodeAlt},
		{glfw.KeyLeftSuper, imbridge.KeyCodeWindowsLeft},
		{glfw.KeyRightSuper, imbridge.KeyCodeWindowsRight},
		{glfw.KeyMenu, imbridge.KeyCodeMenu},
		{glfw.KeyF25, imbridge.KeyCodeNone},
		{glfw.KeyWorld1, imbridge.KeyCodeNone},
		{glfw.KeyUnknown, imbridge.KeyCodeNone},
	}

	for _, tt := range tests {
		if got := glfwKeyToKeyCode(tt.key); got != tt.want {
			t.Errorf("glfw key %d: expected %d, got %d", tt.key, tt.want, got)
		}
	}
}

func TestGLFWKeysThroughBridgeTable(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want imio.Key
	}{
		{glfw.KeyQ, imio.KeyQ},
		{glfw.KeyLeft, imio.KeyLeftArrow},
		{glfw.KeyRightControl, imio.KeyLeftCtrl},
		{glfw.KeyKPAdd, imio.KeyKeypadAdd},
		{glfw.KeyPrintScreen, imio.KeyPrintScreen},
		{glfw.KeyF13, imio.KeyNone},
	}

	for _, tt := range tests {
		if got := imbridge.TranslateKey(glfwKeyToKeyCode(tt.key)); got != tt.want {
			t.Errorf("glfw key %d: expected %v, got %v", tt.key, tt.want, got)
		}
	}
}

func TestGLFWModsToModifiers(t *testing.T) {
	got := glfwModsToModifiers(glfw.ModShift | glfw.ModSuper)
	if !got.Has(imbridge.ModShift) || !got.Has(imbridge.ModMeta) {
		t.Errorf("expected shift+meta, got %#x", got)
	}
	if got.Has(imbridge.ModControl) || got.Has(imbridge.ModAlt) {
		t.Errorf("unexpected ctrl/alt in %#x", got)
	}
	if glfwModsToModifiers(0) != imbridge.ModNone {
		t.Error("expected no modifiers")
	}
}

func TestSplitSteps(t *testing.T) {
	tests := []struct {
		in, whole, frac float64
	}{
		{1, 1, 0},
		{0.25, 0, 0.25},
		{-2.5, -2, -0.5},
		{0, 0, 0},
	}
	for _, tt := range tests {
		whole, frac := splitSteps(tt.in)
		if whole != tt.whole || frac != tt.frac {
			t.Errorf("splitSteps(%v) = (%v, %v), want (%v, %v)", tt.in, whole, frac, tt.whole, tt.frac)
		}
	}
}

func TestEventSkip(t *testing.T) {
	ev := &Event{Kind: EventMouseLeft, Left: true, X: 3, Y: 4}

	if ev.Skipped() {
		t.Fatal("new events must not be skipped")
	}
	ev.Skip()
	if !ev.Skipped() {
		t.Error("Skip should mark the event")
	}
	if x, y := ev.Position(); x != 3 || y != 4 {
		t.Errorf("unexpected position (%d,%d)", x, y)
	}
	if ev.Kind.String() != "mouse-left" {
		t.Errorf("unexpected kind name %q", ev.Kind)
	}
}
