// seehuhn.de/go/chroma - chromatic adaptation of CIE XYZ colours
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config implements the configuration file of the chromadapt
// command.
//
// A configuration file is a YAML (or JSON) document like the following:
//
//	version: v1
//	defaults:
//	  observer: "10"
//	  model: von_kries
//	  precision: 5
//	illuminants:
//	  studio: [0.9642, 1.0, 0.8252]
//
// The "illuminants" section defines additional named white points, which
// take precedence over the built-in illuminant table.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"sigs.k8s.io/yaml"

	"seehuhn.de/go/chroma"
)

// Version is the version of the configuration file format.
const Version = "v1"

// DefaultPrecision is the number of digits after the decimal point used
// when no precision is configured.
const DefaultPrecision = 6

// Config holds the contents of a configuration file.
type Config struct {
	Version     string                `json:"version"`
	Defaults    Defaults              `json:"defaults,omitempty"`
	Illuminants map[string]chroma.XYZ `json:"illuminants,omitempty"`
}

// Defaults holds the default settings for the command line flags.
type Defaults struct {
	Observer  string `json:"observer,omitempty"`
	Model     string `json:"model,omitempty"`
	Precision int    `json:"precision,omitempty"`
}

// Default returns the configuration used when no configuration file is
// given.
func Default() *Config {
	return &Config{
		Version: Version,
		Defaults: Defaults{
			Observer:  chroma.Observer2.String(),
			Model:     chroma.Bradford.String(),
			Precision: DefaultPrecision,
		},
	}
}

// Load reads a configuration file.
func Load(fname string) (*Config, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer fd.Close()

	cfg, err := Parse(fd)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file %q: %w", fname, err)
	}
	return cfg, nil
}

// Parse reads a configuration from r.  Settings missing from the input are
// taken from [Default].
func Parse(r io.Reader) (*Config, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	cfg := Default()
	cfg.Version = ""
	err = yaml.Unmarshal(body, cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if cfg.Version == "" {
		return nil, fmt.Errorf("missing version field")
	}
	if cfg.Version != Version {
		return nil, fmt.Errorf("unknown version: %v", cfg.Version)
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if _, err := chroma.ParseObserver(cfg.Defaults.Observer); err != nil {
		return err
	}
	if _, err := chroma.ParseModel(cfg.Defaults.Model); err != nil {
		return err
	}
	if cfg.Defaults.Precision < 0 || cfg.Defaults.Precision > 17 {
		return fmt.Errorf("invalid precision %d", cfg.Defaults.Precision)
	}

	normalized := make(map[string]chroma.XYZ, len(cfg.Illuminants))
	for name, wp := range cfg.Illuminants {
		key := string(chroma.Illuminant(name).Normalize())
		if key == "" {
			return fmt.Errorf("empty illuminant name")
		}
		if _, dup := normalized[key]; dup {
			return fmt.Errorf("duplicate illuminant %q", name)
		}
		if wp[0] <= 0 || wp[1] <= 0 || wp[2] <= 0 {
			return fmt.Errorf("illuminant %q: invalid white point %v", name, wp)
		}
		normalized[key] = wp
	}
	cfg.Illuminants = normalized
	return nil
}

// Observer returns the configured default observer.
func (cfg *Config) Observer() chroma.Observer {
	o, _ := chroma.ParseObserver(cfg.Defaults.Observer)
	return o
}

// Model returns the configured default adaptation model.
func (cfg *Config) Model() chroma.Model {
	m, _ := chroma.ParseModel(cfg.Defaults.Model)
	return m
}

// WhitePoint interprets a white point given on the command line.  This is
// either three comma-separated numbers, the name of an illuminant from the
// configuration file, or the name of a built-in illuminant.
func (cfg *Config) WhitePoint(ref string) (chroma.WhitePoint, error) {
	if strings.Contains(ref, ",") {
		return ParseXYZ(ref)
	}

	name := chroma.Illuminant(ref).Normalize()
	if wp, ok := cfg.Illuminants[string(name)]; ok {
		return wp, nil
	}
	return name, nil
}

// ParseXYZ parses three comma-separated numbers.
func ParseXYZ(s string) (chroma.XYZ, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return chroma.XYZ{}, fmt.Errorf("expected three components, got %q", s)
	}
	var res chroma.XYZ
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return chroma.XYZ{}, fmt.Errorf("invalid component %q: %w", part, err)
		}
		res[i] = x
	}
	return res, nil
}
