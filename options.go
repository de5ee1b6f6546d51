package imbridge

import (
	"log/slog"
	"time"
)

// PassThrough selects, per input category, whether events are always handed
// back to the host even when the GUI wants to capture them.
type PassThrough struct {
	Keyboard    bool
	MouseMove   bool
	MouseWheel  bool
	MouseButton bool
}

// DefaultPassThrough gives the GUI priority over keyboard, motion and wheel
// input, while mouse buttons always reach the host as well.
func DefaultPassThrough() PassThrough {
	return PassThrough{MouseButton: true}
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithRefresher sets the redraw notification target.
func WithRefresher(r Refresher) Option {
	return func(b *Bridge) { b.refresher = r }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithPassThrough overrides the default pass-through flags.
func WithPassThrough(p PassThrough) Option {
	return func(b *Bridge) { b.passThrough = p }
}

// WithClipboard replaces the host's clipboard service.
func WithClipboard(c Clipboard) Option {
	return func(b *Bridge) { b.clipboard = c }
}

// WithClock sets the monotonic time source used for frame timing.
func WithClock(now func() time.Time) Option {
	return func(b *Bridge) {
		if now != nil {
			b.now = now
		}
	}
}
