/*
Package imbridge is a platform backend that feeds a desktop toolkit's
window input into an immediate-mode GUI's per-frame IO state.

# Overview

The host toolkit owns the window and the event loop. The bridge sits
between the toolkit's event dispatcher and an imio.IO:

	host event -> Bridge.OnXxx -> imio.IO -> (maybe) event.Skip() -> Refresher.Refresh()

Events the GUI does not want (or whose category is configured to always
pass through) are skipped, so the toolkit keeps processing them.

# Quick Start

	io := imio.New()
	b, err := imbridge.Init(io, host, imbridge.WithRefresher(imbridge.RefreshFunc(window.Refresh)))
	if err != nil {
	    return err
	}
	defer b.Shutdown()

	// Wire the toolkit's dispatcher
	onKeyDown = b.OnKeyDown
	onChar = b.OnChar
	onMouseMove = b.OnMouseMove
	// ...

	// Render loop
	for running {
	    b.NewFrame(window)
	    buildUI(io)
	    io.NewFrame()
	}

# Key Codes

Hosts report keys as KeyCode values: printable keys as their character,
others as KeyCodeXxx constants. TranslateKey maps them to imio.Key using a
fixed table. Control, Shift and Alt have no left/right distinction on the
host side and always arrive as the Left* keys.

# Mouse Buttons

Left, right and middle buttons are reported as indices 0, 1 and 20.

# Threading

Everything runs on the host's UI thread. The bridge does no locking.

# Backends

  - backend/glfw: GLFW windows, cursors, clipboard and event dispatch
  - backend/sysclip: the operating system clipboard
*/
package imbridge
