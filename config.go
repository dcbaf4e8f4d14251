package thicket

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for zero-valued Config fields.
const (
	DefaultFramesToKeep = 5
	DefaultMaxDepth     = 256
)

// Config configures a Manager. Only the tuning fields can be loaded from
// YAML; the rest are wired in code.
type Config struct {
	// FramesToKeep is how many passes an element's state survives without
	// the element being rendered. Values <= 0 use DefaultFramesToKeep.
	FramesToKeep int `yaml:"frames_to_keep"`
	// MaxDepth bounds element nesting. Deeper elements are skipped and
	// logged. Values <= 0 use DefaultMaxDepth.
	MaxDepth int `yaml:"max_depth"`
	// Debug enables per-pass debug logging and tree shape warnings.
	Debug bool `yaml:"debug"`
	// Theme is the initial manager-wide theme name, looked up in Themes.
	ThemeName string `yaml:"theme"`

	Theme    *Theme           `yaml:"-"`
	Themes   *ThemeRegistry   `yaml:"-"`
	Registry *Registry        `yaml:"-"`
	Logger   *slog.Logger     `yaml:"-"`
	Metrics  *Metrics         `yaml:"-"`
	Clock    func() time.Time `yaml:"-"`
	// Bounds, when set, supplies element bounds for hit-testing instead of
	// the bounds renderers report.
	Bounds BoundsProvider `yaml:"-"`
	// Sink receives every fired interaction event.
	Sink EventSink `yaml:"-"`
}

func (c Config) withDefaults() Config {
	if c.FramesToKeep <= 0 {
		c.FramesToKeep = DefaultFramesToKeep
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.Registry == nil {
		c.Registry = NewRegistry()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.Theme == nil && c.Themes != nil {
		if t, ok := c.Themes.Get(c.ThemeName); ok {
			c.Theme = t
		} else {
			c.Theme = c.Themes.Active()
		}
	}
	return c
}

// LoadConfig parses YAML configuration.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.FramesToKeep < 0 {
		return Config{}, fmt.Errorf("frames_to_keep must not be negative, got %d", cfg.FramesToKeep)
	}
	if cfg.MaxDepth < 0 {
		return Config{}, fmt.Errorf("max_depth must not be negative, got %d", cfg.MaxDepth)
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML configuration file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return LoadConfig(data)
}
