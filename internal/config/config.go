/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config holds the render defaults for the qrgen command line tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes how the CLI renders a symbol. Command line flags
// override any value read from a file.
type Config struct {
	Format string `yaml:"format"` // Output format: svg, png, or txt.
	Scale  int    `yaml:"scale"`  // Pixels per module for raster output.
	Border int    `yaml:"border"` // Quiet zone width in modules.
	ECL    string `yaml:"ecl"`    // Error correction level: L, M, Q, or H.
	Dark   string `yaml:"dark"`   // Dark module color, #RRGGBB.
	Light  string `yaml:"light"`  // Light module color, #RRGGBB.
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return &Config{
		Format: "svg",
		Scale:  8,
		Border: 4,
		ECL:    "M",
		Dark:   "#000000",
		Light:  "#FFFFFF",
	}
}

// Load reads a YAML config file on top of the defaults. Values missing from
// the file keep their default.
func Load(path string) (*Config, error) {
	c := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Validate checks the ranges a renderer requires.
func (c *Config) Validate() error {
	switch c.Format {
	case "svg", "png", "txt":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Border < 0 {
		return fmt.Errorf("border must be non-negative, got %d", c.Border)
	}

	return nil
}
