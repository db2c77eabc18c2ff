/*
 * config.go, part of gomatsci.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rmera/gomatsci/neighbours"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a build. It can be decoded from a YAML file
// with New, or filled from the command line. Either way, Check has to pass
// before it is used.
type Config struct {
	// Input is the extended XYZ file with the structure.
	Input string `yaml:"input"`

	// Cutoff is the radius used for all pairs of atoms. It is ignored if
	// Pairs is not empty.
	Cutoff float64 `yaml:"cutoff"`

	// Pairs gives a cutoff for each pair of species, with keys like "Si-O".
	Pairs map[string]float64 `yaml:"pairs"`

	// Self includes each atom as its own neighbour, at distance zero.
	Self bool `yaml:"self"`

	// MinimumImage keeps only the closest image of each pair of atoms.
	MinimumImage bool `yaml:"minimumImage"`

	// Full lists each pair in both directions.
	Full bool `yaml:"full"`

	// Vectors adds the distance vectors to the output.
	Vectors bool `yaml:"vectors"`

	// Cpus is the number of goroutines used. 0 means one per CPU.
	Cpus int `yaml:"cpus"`

	// MaxPairs makes the build fail if more pairs are found. 0 means no limit.
	MaxPairs int `yaml:"maxPairs"`

	// Output is the file for the results, standard output if empty or "-".
	Output string `yaml:"output"`

	// Zstd compresses the output with z-standard. It is implied by an output
	// file with the .zst extension.
	Zstd bool `yaml:"zstd"`
}

// New opens and decodes the specified configuration file, and checks it.
func New(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Config
	dec := yaml.NewDecoder(bufio.NewReader(f))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return &c, nil
}

// Check returns an error if a field of the Config has an invalid value.
func (c *Config) Check() error {
	if c.Cutoff < 0 {
		return fmt.Errorf("the cutoff can't be negative")
	}
	if c.Cutoff == 0 && len(c.Pairs) == 0 {
		return fmt.Errorf("either a cutoff or species-pair cutoffs are needed")
	}
	for k, v := range c.Pairs {
		if _, _, err := splitPair(k); err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("the cutoff for %s can't be negative", k)
		}
	}
	if c.Cpus < 0 {
		return fmt.Errorf("the number of cpus can't be negative")
	}
	if c.MaxPairs < 0 {
		return fmt.Errorf("the maximum number of pairs can't be negative")
	}
	return nil
}

// NeighbourCutoff returns the cutoff for the build.
func (c *Config) NeighbourCutoff() *neighbours.Cutoff {
	if len(c.Pairs) == 0 {
		return neighbours.Uniform(c.Cutoff)
	}
	m := make(map[[2]string]float64, len(c.Pairs))
	for k, v := range c.Pairs {
		a, b, _ := splitPair(k)
		m[[2]string{a, b}] = v
	}
	return neighbours.ByPair(m)
}

// Options returns the build options matching the Config.
func (c *Config) Options(logger *zap.Logger) *neighbours.Options {
	o := neighbours.DefaultOptions()
	o.SelfInteraction(c.Self)
	o.MultipleImages(!c.MinimumImage)
	o.Full(c.Full)
	o.Vectors(c.Vectors)
	o.MaxPairs(c.MaxPairs)
	if c.Cpus > 0 {
		o.Cpus(c.Cpus)
	}
	o.Logger(logger)
	return o
}

// Compressed returns true if the output has to be compressed.
func (c *Config) Compressed() bool {
	return c.Zstd || strings.HasSuffix(strings.ToLower(c.Output), ".zst")
}

// splitPair splits a key like "Si-O" in its two species.
func splitPair(key string) (string, string, error) {
	a, b, ok := strings.Cut(key, "-")
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if !ok || a == "" || b == "" {
		return "", "", fmt.Errorf("invalid species pair %q, expected something like Si-O", key)
	}
	return a, b, nil
}

// parsePairFlag reads a --pair value like "Si-O=1.8".
func parsePairFlag(value string) (string, float64, error) {
	key, r, ok := strings.Cut(value, "=")
	if !ok {
		return "", 0, fmt.Errorf("invalid pair cutoff %q, expected something like Si-O=1.8", value)
	}
	if _, _, err := splitPair(key); err != nil {
		return "", 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(r), 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid pair cutoff %q: %w", value, err)
	}
	return strings.TrimSpace(key), v, nil
}
