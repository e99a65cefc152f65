package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/heatsim/internal/material"
	"github.com/san-kum/heatsim/internal/solver"
)

const (
	DefaultLength      = 1.0
	DefaultTmax        = 16.0
	DefaultInitialTemp = 13.0
	DefaultAmplitude   = 80.0
	DefaultBarPoints   = 1001
	DefaultPlatePoints = 101
	DefaultSpeed       = 5
)

type Config struct {
	Kind            string  `yaml:"kind" json:"kind"`
	Material        string  `yaml:"material" json:"material"`
	GridMode        bool    `yaml:"grid_mode" json:"grid_mode"`
	Length          float64 `yaml:"length" json:"length"`
	Tmax            float64 `yaml:"tmax" json:"tmax"`
	InitialTemp     float64 `yaml:"initial_temp" json:"initial_temp"`
	SourceAmplitude float64 `yaml:"source_amplitude" json:"source_amplitude"`
	GridPoints      int     `yaml:"grid_points" json:"grid_points"`
	SourceScale     float64 `yaml:"source_scale" json:"source_scale"`
	Speed           int     `yaml:"speed" json:"speed"`
	StoreDir        string  `yaml:"store_dir" json:"store_dir"`
	ServerAddr      string  `yaml:"server_addr" json:"server_addr"`
}

func DefaultConfig() *Config {
	return &Config{
		Kind:            "bar",
		Material:        material.Iron.Name,
		Length:          DefaultLength,
		Tmax:            DefaultTmax,
		InitialTemp:     DefaultInitialTemp,
		SourceAmplitude: DefaultAmplitude,
		Speed:           DefaultSpeed,
		ServerAddr:      ":8080",
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

// Points resolves the grid resolution, falling back to the kind's
// default when unset.
func (c *Config) Points() int {
	if c.GridPoints > 0 {
		return c.GridPoints
	}
	if c.Kind == "plate" || c.Kind == "2d" {
		return DefaultPlatePoints
	}
	return DefaultBarPoints
}

// Params assembles solver parameters, resolving the material by name.
func (c *Config) Params() (solver.Params, error) {
	mat, err := material.ByName(c.Material)
	if err != nil {
		return solver.Params{}, fmt.Errorf("config: %w", err)
	}
	return solver.Params{
		Material:        mat,
		Length:          c.Length,
		Tmax:            c.Tmax,
		InitialTemp:     c.InitialTemp,
		SourceAmplitude: c.SourceAmplitude,
		GridPoints:      c.Points(),
		SourceScale:     c.SourceScale,
	}, nil
}
