// Example opens a GLFW window and drives an imio.IO through the imbridge
// platform bridge.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The left third of the window acts as a GUI panel: hovering it captures the
// mouse, clicking it captures the keyboard. Events the panel does not claim
// are logged as they fall through to the host. Escape closes the window
// unless the panel holds the keyboard; Ctrl+C and Ctrl+V exercise the
// clipboard.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-theft-auto/imbridge"
	"github.com/go-theft-auto/imbridge/backend/glfwhost"
	"github.com/go-theft-auto/imbridge/backend/sysclip"
	"github.com/go-theft-auto/imbridge/imio"
	"github.com/go-theft-auto/imbridge/internal/logging"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "imbridge-demo",
		Short:         "Drive an immediate-mode GUI input state from a GLFW window",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindViper(cmd, v)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	addFlags(cmd)
	return cmd
}

func run(cfg demoConfig) error {
	level := logging.ParseLevel(cfg.LogLevel)
	logger := logging.Setup(logging.ParseFormat(cfg.LogFormat), level)
	imbridge.SetVerbose(level <= slog.LevelDebug)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	host := glfwhost.New(window)
	defer host.Close()

	io := imio.New()
	opts := []imbridge.Option{
		imbridge.WithRefresher(host),
		imbridge.WithLogger(logger.With("component", "imbridge")),
		imbridge.WithPassThrough(cfg.PassThrough),
	}
	if cfg.Clipboard == "system" {
		opts = append(opts, imbridge.WithClipboard(sysclip.New(logger)))
	}

	bridge, err := imbridge.Init(io, host, opts...)
	if err != nil {
		return fmt.Errorf("bridge init: %w", err)
	}
	defer func() {
		if err := bridge.Shutdown(); err != nil {
			logger.Error("bridge shutdown", "error", err)
		}
	}()

	host.Install(bridge)
	defer host.Uninstall()
	host.OnUnhandled(func(ev *glfwhost.Event) {
		handleUnhandled(logger, window, io, ev)
	})

	ui := &panel{widthFrac: 1.0 / 3.0}
	start := time.Now()
	var frames int64

	logger.Info("demo started",
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"clipboard", cfg.Clipboard,
		"backend", io.BackendPlatformName,
	)

	for !window.ShouldClose() {
		glfw.WaitEventsTimeout(0.25)

		bridge.NewFrame(host)
		io.UpdateKeyRepeat(io.DeltaTime)
		ui.Update(io)

		render(window, ui, io)
		window.SetTitle(statusLine(cfg.Title, io, ui))

		io.NewFrame()
		window.SwapBuffers()
		frames++
	}

	logger.Info("demo finished",
		"frames", humanize.Comma(frames),
		"uptime", time.Since(start).Round(time.Millisecond).String(),
	)
	return nil
}

// handleUnhandled reacts to events the bridge let through to the host.
func handleUnhandled(logger *slog.Logger, window *glfw.Window, io *imio.IO, ev *glfwhost.Event) {
	switch ev.Kind {
	case glfwhost.EventKeyDown:
		switch {
		case ev.Code == imbridge.KeyCodeEscape:
			window.SetShouldClose(true)
		case ev.Mods.Has(imbridge.ModControl) && ev.Code == imbridge.KeyCode('C'):
			text := fmt.Sprintf("imbridge mouse=%.0f,%.0f", io.MouseX, io.MouseY)
			io.ClipboardSetText(text)
			logger.Info("copied", "text", text)
		case ev.Mods.Has(imbridge.ModControl) && ev.Code == imbridge.KeyCode('V'):
			logger.Info("pasted", "text", io.ClipboardGetText())
		}
	case glfwhost.EventMouseMove, glfwhost.EventChar:
		// Too noisy to log.
		return
	}
	logger.Debug("event passed to host", "kind", ev.Kind, "code", int(ev.Code))
}

// render clears the window and paints the panel region with a scissored clear.
func render(window *glfw.Window, ui *panel, io *imio.IO) {
	w, h := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	pw := int32(float32(w) * ui.widthFrac)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(0, 0, pw, int32(h))
	switch {
	case ui.focused:
		gl.ClearColor(0.30, 0.22, 0.10, 1.0)
	case io.WantCaptureMouse:
		gl.ClearColor(0.20, 0.20, 0.24, 1.0)
	default:
		gl.ClearColor(0.16, 0.16, 0.19, 1.0)
	}
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)
}

// statusLine summarizes the frame's input state for the window title.
func statusLine(prefix string, io *imio.IO, ui *panel) string {
	focus := "host"
	if ui.focused {
		focus = "panel"
	}
	return fmt.Sprintf("%s | mouse %.0f,%.0f wheel %.0f,%.0f | chars %d | mods %s | keys->%s | %s",
		prefix,
		io.MouseX, io.MouseY,
		io.MouseWheelX, io.MouseWheelY,
		len(io.InputChars),
		modString(io),
		focus,
		io.MouseCursor(),
	)
}

func modString(io *imio.IO) string {
	s := ""
	if io.ModCtrl {
		s += "C"
	}
	if io.ModShift {
		s += "S"
	}
	if io.ModAlt {
		s += "A"
	}
	if io.ModSuper {
		s += "M"
	}
	if s == "" {
		return "-"
	}
	return s
}
