// Package config provides configuration loading and access for the
// demo.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/justmove/input"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all demo configuration parameters.
type Config struct {
	Screen    ScreenConfig        `yaml:"screen"`
	Physics   PhysicsConfig       `yaml:"physics"`
	Player    PlayerConfig        `yaml:"player"`
	Obstacles ObstaclesConfig     `yaml:"obstacles"`
	Bindings  map[string]string   `yaml:"bindings"`
	Script    []input.SegmentSpec `yaml:"script"`
	Telemetry TelemetryConfig     `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// PhysicsConfig holds simulation timing parameters.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // fixed step for headless runs, seconds
}

// PlayerConfig holds the controllable square's parameters.
type PlayerConfig struct {
	Size      float64 `yaml:"size"`       // full side length, world units
	Speed     float64 `yaml:"speed"`      // world units per second
	TurnSpeed float64 `yaml:"turn_speed"` // radians per second
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
}

// ObstaclesConfig holds the decorative obstacle row parameters.
type ObstaclesConfig struct {
	Count   int     `yaml:"count"`
	Size    float64 `yaml:"size"`    // full side length
	Spacing float64 `yaml:"spacing"` // distance between centers
	Y       float64 `yaml:"y"`       // row height above arena center
}

// TelemetryConfig holds trace and perf logging parameters.
type TelemetryConfig struct {
	PerfWindow   int `yaml:"perf_window"`    // ticks averaged per perf report
	PerfLogEvery int `yaml:"perf_log_every"` // ticks between perf log lines
}

// DerivedConfig holds values computed from the loaded configuration.
type DerivedConfig struct {
	DT32        float32 // Physics.DT as float32
	ScreenW32   float32
	ScreenH32   float32
	ArenaHalfW  float32 // half the screen width
	ArenaHalfH  float32 // half the screen height
	PlayerHalf  float32 // half the player side length
	PlayerSpeed float32
	TurnSpeed   float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the simulation cannot run with.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size %dx%d, want positive", c.Screen.Width, c.Screen.Height)
	}
	if c.Player.Size <= 0 {
		return fmt.Errorf("player size %f, want positive", c.Player.Size)
	}
	if c.Player.Speed < 0 || c.Player.TurnSpeed < 0 {
		return fmt.Errorf("player speeds %f/%f, want non-negative", c.Player.Speed, c.Player.TurnSpeed)
	}
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics dt %f, want positive", c.Physics.DT)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.ArenaHalfW = float32(c.Screen.Width) / 2
	c.Derived.ArenaHalfH = float32(c.Screen.Height) / 2
	c.Derived.PlayerHalf = float32(c.Player.Size) / 2
	c.Derived.PlayerSpeed = float32(c.Player.Speed)
	c.Derived.TurnSpeed = float32(c.Player.TurnSpeed)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
