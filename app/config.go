package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pixwin/input"
	"pixwin/pixel"
)

// Config selects a demo scene and the window it runs in.
type Config struct {
	Scene  string `yaml:"scene"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Format string `yaml:"format"`
	Title  string `yaml:"title"`

	// Speed is the square speed in pixels per second.
	Speed      float64 `yaml:"speed"`
	SquareSize int     `yaml:"square_size"`
	Sprite     string  `yaml:"sprite"`
	Icon       string  `yaml:"icon"`
	HUD        bool    `yaml:"hud"`
	Keys       KeyMap  `yaml:"keys"`

	Window   WindowConfig   `yaml:"window"`
	Headless HeadlessConfig `yaml:"headless"`
	LogLevel string         `yaml:"log_level"`
}

// KeyMap binds movement directions to key names.
type KeyMap struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

type WindowConfig struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

type HeadlessConfig struct {
	Enabled bool   `yaml:"enabled"`
	Hz      int    `yaml:"hz"`
	Frames  uint64 `yaml:"frames"`
}

// DefaultConfig matches the original example program: 800x600 RGB.
func DefaultConfig() Config {
	return Config{
		Scene:      "basic",
		Width:      800,
		Height:     600,
		Format:     "rgb",
		Speed:      200,
		SquareSize: 50,
		Sprite:     "assets/square.png",
		Icon:       "assets/icon.png",
		Keys:       KeyMap{Up: "w", Down: "s", Left: "a", Right: "d"},
		Window:     WindowConfig{Scale: 1, TPS: 60},
		Headless:   HeadlessConfig{Hz: 60},
		LogLevel:   "info",
	}
}

// LoadConfig overlays the YAML file at path on top of DefaultConfig. A
// missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("app: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("app: parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks everything that would otherwise fail at surface creation
// or on the first frame.
func (c Config) Validate() error {
	if _, ok := sceneByName(c.Scene); !ok {
		return fmt.Errorf("app: unknown scene %q (have %v)", c.Scene, SceneNames())
	}
	f, err := pixel.ParseFormat(c.Format)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if _, err := pixel.Size(c.Width, c.Height, f); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if _, err := c.Keys.resolve(); err != nil {
		return fmt.Errorf("app: keys: %w", err)
	}
	if c.SquareSize <= 0 {
		return fmt.Errorf("app: square_size must be positive, got %d", c.SquareSize)
	}
	return nil
}

func (c Config) pixelFormat() pixel.Format {
	f, _ := pixel.ParseFormat(c.Format)
	return f
}

type movement struct {
	up, down, left, right input.Key
}

func (m KeyMap) resolve() (movement, error) {
	var mv movement
	for _, b := range []struct {
		name string
		dst  *input.Key
	}{
		{m.Up, &mv.up},
		{m.Down, &mv.down},
		{m.Left, &mv.left},
		{m.Right, &mv.right},
	} {
		k, err := input.ParseKey(b.name)
		if err != nil {
			return mv, err
		}
		*b.dst = k
	}
	return mv, nil
}
