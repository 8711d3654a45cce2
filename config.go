// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/bdrung/prometheus-psychro-exporter/psychro"
)

const defaultModel = "ashrae"

// Config is the content of the --config.file TOML file:
//
//	sensors = ["SHT31,bus=1", "BME280,psychro=giacomo"]
//
//	[psychro]
//	model = "ashrae"
//	pressure = 101325.0
type Config struct {
	Sensors []string `toml:"sensors"`
	Psychro Settings `toml:"psychro"`
}

// Settings are the psychrometric defaults applied to every sensor.
type Settings struct {
	Model    string  `toml:"model"`
	Pressure float64 `toml:"pressure"` // Pa
}

func loadConfig(path string) (Config, error) {
	var config Config
	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return config, fmt.Errorf("Failed to read config file '%s': %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config, fmt.Errorf("Unknown key '%s' in config file '%s'.", undecoded[0], path)
	}
	if config.Psychro.Pressure < 0 {
		return config, fmt.Errorf("Pressure %g in config file '%s' must be positive.",
			config.Psychro.Pressure, path)
	}
	return config, nil
}

// merge fills s with values from flags. A flag wins over the file when it was
// set explicitly or when the file leaves the value empty.
func (s Settings) merge(flags Settings, changed func(name string) bool) Settings {
	if s.Model == "" || changed("psychro.model") {
		s.Model = flags.Model
	}
	if s.Pressure == 0 || changed("psychro.pressure") {
		s.Pressure = flags.Pressure
	}
	return s
}

// Formulation resolves the configured model name.
func (s Settings) Formulation() (psychro.Formulation, error) {
	f, ok := psychro.ByName(s.Model)
	if !ok {
		return nil, unknownModelError(s.Model)
	}
	return f, nil
}
