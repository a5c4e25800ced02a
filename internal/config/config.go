// Package config loads the TOML settings shared by the example and the
// screenshot generator.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/go-theft-auto/imgui"
)

// Window describes the GLFW window.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

// Config holds every setting. Keys missing from a file keep their default.
type Config struct {
	Window      Window  `toml:"window"`
	Multisample bool    `toml:"multisample"`
	FontSize    float32 `toml:"font_size"`
	// Style is "default" or "gta".
	Style    string `toml:"style"`
	LogLevel string `toml:"log_level"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "imgui example",
			VSync:  true,
		},
		Multisample: true,
		FontSize:    15,
		Style:       "default",
		LogLevel:    "info",
	}
}

// Load reads path over the defaults. A missing file is not an error.
// Keys Load does not know are reported as an error so typos do not go
// unnoticed.
func Load(path string) (Config, error) {
	conf := Default()
	md, err := toml.DecodeFile(path, &conf)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if conf.Window.Width <= 0 || conf.Window.Height <= 0 {
		return Config{}, fmt.Errorf("config %s: window size %dx%d", path, conf.Window.Width, conf.Window.Height)
	}
	if conf.FontSize <= 0 {
		return Config{}, fmt.Errorf("config %s: font_size %v", path, conf.FontSize)
	}
	if conf.Style != "default" && conf.Style != "gta" {
		return Config{}, fmt.Errorf("config %s: unknown style %q", path, conf.Style)
	}
	return conf, nil
}

// GUIStyle returns the imgui style named by Style.
func (c Config) GUIStyle() imgui.Style {
	if c.Style == "gta" {
		return imgui.GTAStyle()
	}
	return imgui.DefaultStyle()
}

// Level parses LogLevel ("debug", "info", "warn" or "error").
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// Logger returns a text logger on standard error at the configured level.
func (c Config) Logger() (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

// Save writes the settings to path.
func (c Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return f.Close()
}
