package imio

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

// DefaultDeltaTime is the frame time reported before a backend pushes a
// measured one.
const DefaultDeltaTime float32 = 1.0 / 60.0

// IO holds the state exchanged between the GUI and its platform backend.
// It is not safe for concurrent use; the backend and the GUI are expected to
// run on the same thread.
type IO struct {
	// Display, written by the platform every frame.
	DisplaySize             Vec2
	DisplayFramebufferScale Vec2
	DeltaTime               float32

	// PlatformHandleRaw is the native window handle of the main viewport,
	// when the platform exposes one.
	PlatformHandleRaw uintptr

	ConfigFlags  ConfigFlags
	BackendFlags BackendFlags

	// MouseDrawCursor asks the GUI to render its own software cursor.
	MouseDrawCursor bool

	BackendPlatformName string

	// Capture flags (output from GUI to platform).
	// These tell the platform whether the GUI wants to consume input.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	platformBackend any
	clipboard       ClipboardProvider
	mouseCursor     MouseCursor

	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Mouse wheel, accumulated over the frame
	MouseWheelX float32
	MouseWheelY float32

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool
	keyUp      [KeyCount]bool

	// Key repeat tracking
	keyHoldTime [KeyCount]float32

	// Text input (Unicode characters typed this frame)
	InputChars []rune

	// Modifiers, mirrored from the Mod* pseudo-keys
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool

	events []InputEvent
}

// New creates an IO with default display metrics.
func New() *IO {
	return &IO{
		DisplayFramebufferScale: Vec2{X: 1, Y: 1},
		DeltaTime:               DefaultDeltaTime,
		InputChars:              make([]rune, 0, 16),
		events:                  make([]InputEvent, 0, 32),
	}
}

// NewFrame clears per-frame input state.
// Call this after the GUI has consumed the frame and before collecting
// input for the next one.
func (io *IO) NewFrame() {
	for i := range io.mouseClicked {
		io.mouseClicked[i] = false
	}
	for i := range io.mouseUp {
		io.mouseUp[i] = false
	}
	for i := range io.keyPressed {
		io.keyPressed[i] = false
	}
	for i := range io.keyUp {
		io.keyUp[i] = false
	}
	io.InputChars = io.InputChars[:0]
	io.events = io.events[:0]
	io.MouseWheelX = 0
	io.MouseWheelY = 0
}

// AttachPlatform registers backend as the platform backend of io.
// It returns false if a backend is already attached.
func (io *IO) AttachPlatform(backend any, name string) bool {
	if io.platformBackend != nil || backend == nil {
		return false
	}
	io.platformBackend = backend
	io.BackendPlatformName = name
	return true
}

// DetachPlatform removes backend from io. It returns false if backend is
// not the attached platform backend.
func (io *IO) DetachPlatform(backend any) bool {
	if io.platformBackend == nil || io.platformBackend != backend {
		return false
	}
	io.platformBackend = nil
	io.BackendPlatformName = ""
	return true
}

// PlatformBackend returns the attached platform backend, or nil.
func (io *IO) PlatformBackend() any {
	return io.platformBackend
}

// MouseCursor returns the cursor the GUI requested for this frame.
func (io *IO) MouseCursor() MouseCursor {
	return io.mouseCursor
}

// SetMouseCursor is called by the GUI to request a cursor shape.
func (io *IO) SetMouseCursor(c MouseCursor) {
	io.mouseCursor = c
}

// Events returns the input events queued since the last NewFrame.
// The returned slice is only valid until the next NewFrame.
func (io *IO) Events() []InputEvent {
	return io.events
}

// AddKeyEvent queues a key transition. Mod* pseudo-keys also update the
// modifier fields.
func (io *IO) AddKeyEvent(key Key, down bool) {
	io.events = append(io.events, InputEvent{Type: EventKey, Key: key, Down: down})
	if key <= KeyNone || key >= KeyCount {
		return
	}

	switch key {
	case ModCtrl:
		io.ModCtrl = down
	case ModShift:
		io.ModShift = down
	case ModAlt:
		io.ModAlt = down
	case ModSuper:
		io.ModSuper = down
	}

	wasDown := io.keyDown[key]
	io.keyDown[key] = down

	if down && !wasDown {
		io.keyPressed[key] = true
		io.keyHoldTime[key] = 0 // Reset hold time on fresh press
	}
	if !down && wasDown {
		io.keyUp[key] = true
		io.keyHoldTime[key] = 0
	}
}

// AddMousePosEvent queues an absolute mouse position.
func (io *IO) AddMousePosEvent(x, y float32) {
	io.events = append(io.events, InputEvent{Type: EventMousePos, Pos: Vec2{X: x, Y: y}})
	io.MouseX = x
	io.MouseY = y
}

// AddMouseWheelEvent queues a wheel delta. Deltas accumulate over the frame.
func (io *IO) AddMouseWheelEvent(x, y float32) {
	io.events = append(io.events, InputEvent{Type: EventMouseWheel, Pos: Vec2{X: x, Y: y}})
	io.MouseWheelX += x
	io.MouseWheelY += y
}

// AddMouseButtonEvent queues a button transition. The event is always
// queued; only buttons below MouseButtonCount are tracked in the state.
func (io *IO) AddMouseButtonEvent(button int, down bool) {
	io.events = append(io.events, InputEvent{Type: EventMouseButton, Button: button, Down: down})
	if button < 0 || button >= int(MouseButtonCount) {
		return
	}

	wasDown := io.mouseDown[button]
	io.mouseDown[button] = down

	if down && !wasDown {
		io.mouseClicked[button] = true
	}
	if !down && wasDown {
		io.mouseUp[button] = true
	}
}

// AddInputCharacter queues a typed character. Zero is ignored.
func (io *IO) AddInputCharacter(ch rune) {
	if ch == 0 {
		return
	}
	io.events = append(io.events, InputEvent{Type: EventText, Char: ch})
	io.InputChars = append(io.InputChars, ch)
}

// UpdateKeyRepeat updates key hold times for repeat detection.
// Call this once per frame with the frame's delta time.
func (io *IO) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		if io.keyDown[key] {
			io.keyHoldTime[key] += dt
		}
	}
}

// MouseDown returns true if a mouse button is currently held.
func (io *IO) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return io.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (io *IO) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return io.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was released this frame.
func (io *IO) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return io.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (io *IO) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return io.keyDown[key]
}

// KeyPressed returns true if a key was pressed this frame.
func (io *IO) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return io.keyPressed[key]
}

// KeyReleased returns true if a key was released this frame.
func (io *IO) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return io.keyUp[key]
}

// KeyRepeated returns true if a key should trigger this frame.
// Returns true on initial press, then after KeyRepeatDelay, then every KeyRepeatInterval.
func (io *IO) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}

	if io.keyPressed[key] {
		return true
	}
	if !io.keyDown[key] {
		return false
	}

	holdTime := io.keyHoldTime[key]
	if holdTime < KeyRepeatDelay {
		return false
	}

	// Trigger if we just crossed an interval boundary this frame.
	timeSinceDelay := holdTime - KeyRepeatDelay
	repeatCount := int(timeSinceDelay / KeyRepeatInterval)
	prevRepeatCount := int((timeSinceDelay - io.DeltaTime) / KeyRepeatInterval)
	return repeatCount > prevRepeatCount
}

// HasInputChars returns true if there are typed characters this frame.
func (io *IO) HasInputChars() bool {
	return len(io.InputChars) > 0
}
