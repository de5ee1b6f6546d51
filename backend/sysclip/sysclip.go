// Package sysclip provides an imbridge.Clipboard backed by the operating
// system clipboard via golang.design/x/clipboard.
//
// The platform clipboard is initialized lazily on the first Open. On
// machines without one (headless servers, containers without X11 or
// Wayland) every Open fails and the bridge treats the clipboard as
// unavailable.
package sysclip

import (
	"log/slog"

	"golang.design/x/clipboard"

	"github.com/go-theft-auto/imbridge"
)

// Seams for tests; the real package needs a display.
var (
	clipboardInit  = clipboard.Init
	clipboardRead  = func() []byte { return clipboard.Read(clipboard.FmtText) }
	clipboardWrite = func(b []byte) { clipboard.Write(clipboard.FmtText, b) }
)

// Clipboard is the system clipboard.
type Clipboard struct {
	logger *slog.Logger

	initDone bool
	initErr  error
	open     bool

	// text read on Open, so SupportsText and Text see the same content
	pending []byte
}

var _ imbridge.Clipboard = (*Clipboard)(nil)

// New returns a system clipboard. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Clipboard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Clipboard{logger: logger}
}

// Available initializes the platform clipboard if needed and reports
// whether it can be used.
func (c *Clipboard) Available() bool {
	if !c.initDone {
		c.initDone = true
		if c.initErr = clipboardInit(); c.initErr != nil {
			c.logger.Warn("system clipboard unavailable, running headless", "err", c.initErr)
		}
	}
	return c.initErr == nil
}

func (c *Clipboard) Open() bool {
	if c.open || !c.Available() {
		return false
	}
	c.open = true
	c.pending = clipboardRead()
	return true
}

func (c *Clipboard) Close() {
	c.open = false
	c.pending = nil
}

func (c *Clipboard) SupportsText() bool {
	return c.open && c.pending != nil
}

func (c *Clipboard) Text() string {
	if !c.open {
		return ""
	}
	return string(c.pending)
}

func (c *Clipboard) SetText(text string) bool {
	if !c.open {
		return false
	}
	clipboardWrite([]byte(text))
	c.pending = []byte(text)
	return true
}
