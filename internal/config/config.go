package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDelayMs  = 100
	DefaultWindow   = 15
	DefaultTheme    = "classic"
	DefaultLogLevel = "info"
)

type Config struct {
	Multiplier   int           `yaml:"multiplier"`
	Multiplicand int           `yaml:"multiplicand"`
	Interactive  bool          `yaml:"interactive"`
	MaxSteps     int           `yaml:"max_steps"`
	Save         bool          `yaml:"save"`
	Display      DisplayConfig `yaml:"display"`
	Log          LogConfig     `yaml:"log"`
}

type DisplayConfig struct {
	Print   bool   `yaml:"print"`
	Clear   bool   `yaml:"clear"`
	Sleep   bool   `yaml:"sleep"`
	DelayMs int    `yaml:"delay_ms"`
	Window  int    `yaml:"window"`
	Theme   string `yaml:"theme"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
	Journal bool   `yaml:"journal"`
}

func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			DelayMs: DefaultDelayMs,
			Window:  DefaultWindow,
			Theme:   DefaultTheme,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver decodes path on top of base, so keys missing from the file keep
// base's values. base is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Multiplier < 0 || c.Multiplicand < 0 {
		return fmt.Errorf("operands must be non-negative, got %d and %d", c.Multiplier, c.Multiplicand)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps)
	}
	if c.Display.DelayMs < 0 {
		return fmt.Errorf("delay_ms must not be negative, got %d", c.Display.DelayMs)
	}
	if c.Display.Window < 1 {
		return fmt.Errorf("window must be positive, got %d", c.Display.Window)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// Delay is the pause between steps, zero unless sleeping is enabled.
func (c *Config) Delay() time.Duration {
	if !c.Display.Sleep {
		return 0
	}
	return time.Duration(c.Display.DelayMs) * time.Millisecond
}
