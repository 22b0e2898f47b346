// Package config loads EZSketch settings from a TOML file layered over
// compiled-in defaults.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Title   string        `toml:"title"`
	Canvas  CanvasConfig  `toml:"canvas"`
	Marker  MarkerConfig  `toml:"marker"`
	Sticker StickerConfig `toml:"sticker"`
	History HistoryConfig `toml:"history"`
	Log     LogConfig     `toml:"log"`
}

type CanvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Background is an html hex color, "#fff" or "#ffffff".
	Background string `toml:"background"`
}

// MarkerConfig holds the two thickness presets.
type MarkerConfig struct {
	Thin  float64 `toml:"thin"`
	Thick float64 `toml:"thick"`
}

type StickerConfig struct {
	Glyphs   []string `toml:"glyphs"`
	FontSize float64  `toml:"font_size"`
	// FontPath names a TrueType file used for glyphs; empty means Go Regular.
	FontPath string `toml:"font_path"`
	// Drag lets a sticker follow the pointer until release.
	Drag bool `toml:"drag"`
}

type HistoryConfig struct {
	KeepRedoOnCommit bool `toml:"keep_redo_on_commit"`
}

type LogConfig struct {
	Level string `toml:"level"`
	// Trace logs the drawing ops of every redraw at debug level.
	Trace bool `toml:"trace"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:  "EZ SKETCH!!!",
		Canvas: CanvasConfig{Width: 256, Height: 256, Background: "#ffffff"},
		Marker: MarkerConfig{Thin: 2, Thick: 5},
		Sticker: StickerConfig{
			Glyphs:   []string{"🎃", "👻", "🕸️"},
			FontSize: 24,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks sizes, presets, glyphs and the log level.
func (c Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Marker.Thin <= 0 || c.Marker.Thick <= 0:
		return fmt.Errorf("%w: marker thickness must be positive", ErrInvalid)
	case len(c.Sticker.Glyphs) == 0:
		return fmt.Errorf("%w: at least one sticker glyph is required", ErrInvalid)
	case c.Sticker.FontSize <= 0:
		return fmt.Errorf("%w: sticker font_size must be positive", ErrInvalid)
	}
	for i, g := range c.Sticker.Glyphs {
		if strings.TrimSpace(g) == "" {
			return fmt.Errorf("%w: sticker glyph %d is blank", ErrInvalid, i)
		}
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses Canvas.Background.
func (c Config) BackgroundColor() (color.Color, error) {
	bg, err := colorful.Hex(c.Canvas.Background)
	if err != nil {
		return nil, fmt.Errorf("%w: canvas background %q: %v", ErrInvalid, c.Canvas.Background, err)
	}
	return bg, nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return lvl, nil
}

// FontData returns the bytes of the configured font, or Go Regular.
func (c Config) FontData() ([]byte, error) {
	if c.Sticker.FontPath == "" {
		return goregular.TTF, nil
	}
	data, err := os.ReadFile(c.Sticker.FontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return data, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
