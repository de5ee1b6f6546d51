package imbridge

import (
	"errors"
	"log/slog"
	"time"

	"github.com/go-theft-auto/imbridge/imio"
)

// PlatformName is reported through imio.IO.BackendPlatformName.
const PlatformName = "imbridge"

// minFrameDelta is the smallest frame time pushed to the GUI. Shorter
// deltas keep the previous value.
const minFrameDelta = time.Millisecond

var (
	// ErrAlreadyInitialized is returned by Init when the IO already has a
	// platform backend attached.
	ErrAlreadyInitialized = errors.New("imbridge: platform backend already initialized")
	// ErrNotInitialized is returned by Shutdown when the bridge is not
	// attached to an IO.
	ErrNotInitialized = errors.New("imbridge: no platform backend to shut down")
	ErrNilIO          = errors.New("imbridge: nil IO")
	ErrNilHost        = errors.New("imbridge: nil host")
)

// Bridge forwards host toolkit input into an imio.IO. All methods must be
// called from the host's UI thread.
type Bridge struct {
	io        *imio.IO
	clipboard Clipboard
	cursors   CursorService
	refresher Refresher
	logger    *slog.Logger
	now       func() time.Time

	clipboardText   string
	lastMouseCursor imio.MouseCursor
	cursorCache     [imio.MouseCursorCount]Cursor
	blankCursor     Cursor

	lastFrame   time.Time
	passThrough PassThrough
}

// Init attaches a new bridge to io as its platform backend.
//
// Only one platform backend may be attached to an IO at a time; calling
// Init again before Shutdown returns ErrAlreadyInitialized.
func Init(io *imio.IO, host Host, opts ...Option) (*Bridge, error) {
	if io == nil {
		return nil, ErrNilIO
	}
	if host == nil {
		return nil, ErrNilHost
	}

	b := &Bridge{
		io:              io,
		clipboard:       host.Clipboard(),
		cursors:         host.Cursors(),
		logger:          bridgeLogger,
		now:             time.Now,
		lastMouseCursor: imio.MouseCursorCount,
		passThrough:     DefaultPassThrough(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if !io.AttachPlatform(b, PlatformName) {
		return nil, ErrAlreadyInitialized
	}

	b.lastFrame = b.now()

	io.BackendFlags |= imio.BackendFlagsHasMouseCursors
	io.MouseDrawCursor = false

	b.createCursors()
	io.SetClipboardProvider(bridgeClipboard{b})

	b.logger.Debug("platform backend initialized", "passThrough", b.passThrough)
	return b, nil
}

// Current returns the bridge attached to io, or nil.
func Current(io *imio.IO) *Bridge {
	if io == nil {
		return nil
	}
	b, _ := io.PlatformBackend().(*Bridge)
	return b
}

// Shutdown detaches the bridge from its IO. Calling it on a bridge that was
// never initialized, or twice, returns ErrNotInitialized.
func (b *Bridge) Shutdown() error {
	if b == nil || b.io == nil || !b.io.DetachPlatform(b) {
		return ErrNotInitialized
	}

	b.io.BackendFlags &^= imio.BackendFlagsHasMouseCursors
	b.io.SetClipboardProvider(nil)
	b.logger.Debug("platform backend shut down")
	return nil
}

// IO returns the IO the bridge writes into.
func (b *Bridge) IO() *imio.IO {
	return b.io
}

// PassThrough returns the current pass-through flags.
func (b *Bridge) PassThrough() PassThrough {
	return b.passThrough
}

// SetPassThrough replaces the pass-through flags.
func (b *Bridge) SetPassThrough(p PassThrough) {
	b.passThrough = p
}

// NewFrame pushes display metrics, frame timing and the requested cursor
// shape for the coming frame. Call it once per frame before building the
// GUI.
func (b *Bridge) NewFrame(w Window) {
	io := b.io

	if nw, ok := w.(NativeWindow); ok {
		io.PlatformHandleRaw = nw.NativeHandle()
	}

	cw, ch := w.ClientSize()
	sf := float32(w.ContentScaleFactor())
	io.DisplaySize = imio.Vec2{X: float32(cw), Y: float32(ch)}
	io.DisplayFramebufferScale = imio.Vec2{X: sf, Y: sf}

	now := b.now()
	dt := now.Sub(b.lastFrame)
	if dt > minFrameDelta {
		io.DeltaTime = float32(dt.Seconds())
	} else {
		b.logger.Warn("frame delta too small, keeping previous delta time",
			"delta", dt, "deltaTime", io.DeltaTime)
	}
	b.lastFrame = now

	if io.ConfigFlags&imio.ConfigFlagsNoMouseCursorChange == 0 {
		b.updateCursor()
	}
}

func (b *Bridge) refresh() {
	if b.refresher != nil {
		b.refresher.Refresh()
	}
}
