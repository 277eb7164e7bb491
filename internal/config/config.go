package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/bonsai/internal/base"
	"github.com/san-kum/bonsai/internal/bonsai"
)

const (
	DefaultLife       = 32
	DefaultMultiplier = 5
	DefaultBase       = 1
	DefaultTime       = 0.03
	DefaultWait       = 4.0
)

var (
	ErrInvalidLife       = errors.New("config: life must be positive")
	ErrInvalidMultiplier = errors.New("config: multiplier must be positive")
	ErrInvalidBase       = errors.New("config: unknown base type")
	ErrInvalidInterval   = errors.New("config: time and wait must not be negative")
)

type Config struct {
	Life       int     `yaml:"life" toml:"life"`
	Multiplier int     `yaml:"multiplier" toml:"multiplier"`
	Base       int     `yaml:"base" toml:"base"`
	Live       bool    `yaml:"live" toml:"live"`
	Time       float64 `yaml:"time" toml:"time"`
	Infinite   bool    `yaml:"infinite" toml:"infinite"`
	Wait       float64 `yaml:"wait" toml:"wait"`
	Message    string  `yaml:"message,omitempty" toml:"message,omitempty"`
	Seed       int64   `yaml:"seed,omitempty" toml:"seed,omitempty"`
	Verbose    bool    `yaml:"verbose" toml:"verbose"`
	Print      bool    `yaml:"print" toml:"print"`
}

func DefaultConfig() *Config {
	return &Config{
		Life:       DefaultLife,
		Multiplier: DefaultMultiplier,
		Base:       DefaultBase,
		Time:       DefaultTime,
		Wait:       DefaultWait,
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a config file over cfg. Keys missing from the file keep
// their current values. Files ending in .toml are parsed as TOML, anything
// else as yaml.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Save writes cfg in the format implied by the path's extension.
func Save(path string, cfg *Config) error {
	var data []byte
	var err error
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (c *Config) Validate() error {
	if c.Life <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidLife, c.Life)
	}
	if c.Multiplier <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidMultiplier, c.Multiplier)
	}
	if !base.Valid(c.Base) {
		return fmt.Errorf("%w %d (want 0, 1 or 2)", ErrInvalidBase, c.Base)
	}
	if c.Time < 0 || c.Wait < 0 {
		return fmt.Errorf("%w, got time=%g wait=%g", ErrInvalidInterval, c.Time, c.Wait)
	}
	return nil
}

// Growth derives the engine parameters for a screen of the given size.
func (c *Config) Growth(width, height int) bonsai.Config {
	return bonsai.Config{
		Life:       c.Life,
		Multiplier: c.Multiplier,
		Width:      width,
		Height:     height,
		BaseOffset: base.Offset(c.Base),
	}
}

// Interval is the pause between painted cells in live mode.
func (c *Config) Interval() time.Duration {
	return seconds(c.Time)
}

// WaitDuration is the pause between trees in infinite mode.
func (c *Config) WaitDuration() time.Duration {
	return seconds(c.Wait)
}

// ResolveSeed returns the configured seed, or a time based one when unset.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
