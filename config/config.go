// Package config loads the benchmark plan from YAML.
package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// DefaultVariants is the report order.
var DefaultVariants = []string{
	"lcg_static",
	"lcg_static_lazy",
	"lcg_struct",
	"xoshiro_static",
	"xoshiro_static_lazy",
	"xoshiro_struct",
}

type Config struct {
	Iterations int      `yaml:"iterations"` //每轮调用次数
	Rounds     int      `yaml:"rounds"`     //计时轮数
	Variants   []string `yaml:"variants"`
	// Seed 0 keeps the documented default seeds.
	Seed      uint64 `yaml:"seed"`
	Entropy   bool   `yaml:"entropy"`
	Output    string `yaml:"output"`
	LogLevel  string `yaml:"log_level"`
	LogJSON   bool   `yaml:"log_json"`
	Trace     bool   `yaml:"trace"`
	DebugAddr string `yaml:"debug_addr"`
}

func Default() *Config {
	variants := make([]string, len(DefaultVariants))
	copy(variants, DefaultVariants)
	return &Config{
		Iterations: 1000000,
		Rounds:     5,
		Variants:   variants,
		Output:     OutputText,
		LogLevel:   "info",
	}
}

// Parse overlays the YAML document on the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadDefault reads and parses fname.
func ReadDefault(fname string) (*Config, error) {
	data, err := ioutil.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", fname, err)
	}
	return Parse(data)
}

func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be > 0, got %d", ErrInvalid, c.Iterations)
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("%w: rounds must be > 0, got %d", ErrInvalid, c.Rounds)
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("%w: no variants", ErrInvalid)
	}
	switch strings.ToLower(c.Output) {
	case OutputText, OutputYAML:
		c.Output = strings.ToLower(c.Output)
	default:
		return fmt.Errorf("%w: unknown output %q", ErrInvalid, c.Output)
	}
	return nil
}

// Marshal renders the config back to YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
