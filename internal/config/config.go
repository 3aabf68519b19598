package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/diffuse1d/internal/grid"
	"github.com/san-kum/diffuse1d/internal/initial"
)

const (
	DefaultLength      = 100
	DefaultDt          = 0.1
	DefaultDuration    = 10.0
	DefaultDiffusivity = 1.0
	DefaultDx          = 1.0
	DefaultAmplitude   = 1.0
)

type Config struct {
	Length       int           `yaml:"length"`
	Dx           float64       `yaml:"dx"`
	Dt           float64       `yaml:"dt"`
	Duration     float64       `yaml:"duration"`
	Diffusivity  float64       `yaml:"diffusivity"`
	BoundaryLow  string        `yaml:"boundary_low"`
	BoundaryHigh string        `yaml:"boundary_high"`
	Initial      InitialConfig `yaml:"initial"`
}

type InitialConfig struct {
	Profile   string  `yaml:"profile"`
	Amplitude float64 `yaml:"amplitude"`
}

func DefaultConfig() *Config {
	return &Config{
		Length:       DefaultLength,
		Dx:           DefaultDx,
		Dt:           DefaultDt,
		Duration:     DefaultDuration,
		Diffusivity:  DefaultDiffusivity,
		BoundaryLow:  "clamp",
		BoundaryHigh: "clamp",
		Initial: InitialConfig{
			Profile:   "gaussian",
			Amplitude: DefaultAmplitude,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

// Boundaries parses the configured edge names into grid kinds.
func (c *Config) Boundaries() (lower, upper grid.Boundary, err error) {
	lower, err = grid.ParseBoundary(c.BoundaryLow)
	if err != nil {
		return 0, 0, err
	}
	upper, err = grid.ParseBoundary(c.BoundaryHigh)
	if err != nil {
		return 0, 0, err
	}
	return lower, upper, nil
}

// MakeInitial builds the configured starting field.
func (c *Config) MakeInitial() (grid.Field, error) {
	gen, err := initial.Get(c.Initial.Profile)
	if err != nil {
		return nil, err
	}
	return gen(c.Length, c.Initial.Amplitude), nil
}
