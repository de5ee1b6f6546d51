package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-theft-auto/imbridge"
)

// demoConfig is the resolved demo configuration.
type demoConfig struct {
	Width, Height int
	Title         string
	Clipboard     string // "glfw" or "system"
	PassThrough   imbridge.PassThrough
	LogFormat     string
	LogLevel      string
}

// addFlags registers the demo flags on cmd.
func addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("config", "", "path to config file (overrides auto-discovery)")
	f.Int("width", 800, "window width")
	f.Int("height", 600, "window height")
	f.String("title", "imbridge demo", "window title prefix")
	f.String("clipboard", "glfw", "clipboard backend: glfw|system")
	f.Bool("pass-keyboard", false, "always pass keyboard events to the host")
	f.Bool("pass-mouse-move", false, "always pass mouse motion to the host")
	f.Bool("pass-mouse-wheel", false, "always pass wheel events to the host")
	f.Bool("pass-mouse-button", true, "always pass mouse button events to the host")
	f.String("log-format", "auto", "log format: auto|text|json")
	f.String("log-level", "info", "log level: debug|info|warn|error")
}

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and IMBRIDGE_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → IMBRIDGE_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("imbridge")
		v.SetConfigType("toml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/imbridge", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("IMBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// loadConfig reads and validates the demo configuration from v.
func loadConfig(v *viper.Viper) (demoConfig, error) {
	cfg := demoConfig{
		Width:     v.GetInt("width"),
		Height:    v.GetInt("height"),
		Title:     v.GetString("title"),
		Clipboard: strings.ToLower(v.GetString("clipboard")),
		PassThrough: imbridge.PassThrough{
			Keyboard:    v.GetBool("pass-keyboard"),
			MouseMove:   v.GetBool("pass-mouse-move"),
			MouseWheel:  v.GetBool("pass-mouse-wheel"),
			MouseButton: v.GetBool("pass-mouse-button"),
		},
		LogFormat: v.GetString("log-format"),
		LogLevel:  v.GetString("log-level"),
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	switch cfg.Clipboard {
	case "glfw", "system":
	default:
		return cfg, fmt.Errorf("unknown clipboard backend %q", cfg.Clipboard)
	}
	return cfg, nil
}
