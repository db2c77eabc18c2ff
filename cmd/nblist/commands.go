/*
 * commands.go, part of gomatsci.
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
	"fmt"
	"math"

	matsci "github.com/rmera/gomatsci"
	"github.com/rmera/gomatsci/neighbours"
	"github.com/rmera/gomatsci/xyz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph/topo"
)

var pairsCmd = &cobra.Command{
	Use:   "pairs [file.xyz]",
	Short: "Write the neighbour list as a table",
	Long: `Writes one line per pair: i j s1 s2 s3 d, and the vector dx dy dz with --vectors.
s1 s2 s3 is the shift of j, in lattice vectors, such that the vector from i to j is
pos[j] - pos[i] + s1*a + s2*b + s3*c, with the positions as given in the file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildConfig(cmd, args)
		if err != nil {
			return err
		}
		_, L, err := build(c)
		if err != nil {
			return err
		}
		out, err := openOutput(c.Output, c.Compressed())
		if err != nil {
			return err
		}
		if err := writePairs(out, L); err != nil {
			out.Close()
			return fmt.Errorf("writing pairs: %w", err)
		}
		return out.Close()
	},
}

var coordinationCmd = &cobra.Command{
	Use:   "coordination [file.xyz]",
	Short: "Write the number of neighbours of each atom",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildConfig(cmd, args)
		if err != nil {
			return err
		}
		S, L, err := build(c)
		if err != nil {
			return err
		}
		out, err := openOutput(c.Output, c.Compressed())
		if err != nil {
			return err
		}
		if err := writeCoordination(out, S, L.Coordination(S.Len())); err != nil {
			out.Close()
			return fmt.Errorf("writing coordination numbers: %w", err)
		}
		return out.Close()
	},
}

// Bins of the distance histogram written by stats.
const histogramBins = 10

var statsCmd = &cobra.Command{
	Use:   "stats [file.xyz]",
	Short: "Summarize the pair distances and the clusters of bonded atoms",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildConfig(cmd, args)
		if err != nil {
			return err
		}
		S, L, err := build(c)
		if err != nil {
			return err
		}
		out, err := openOutput(c.Output, c.Compressed())
		if err != nil {
			return err
		}
		clusters := len(topo.ConnectedComponents(L.Graph(S.Len())))
		sum := L.Summary()
		div, counts := L.Histogram(histogramBins, math.Nextafter(sum.Max, math.Inf(1)))
		if err := writeStats(out, sum, clusters, div, counts); err != nil {
			out.Close()
			return fmt.Errorf("writing statistics: %w", err)
		}
		return out.Close()
	},
}

func addBuildFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("config", "", "YAML file with the settings")
	f.Float64("cutoff", 0, "cutoff radius for all pairs of atoms")
	f.StringArray("pair", nil, "cutoff for a pair of species, as A-B=R (repeatable)")
	f.Bool("self", false, "list each atom as its own neighbour")
	f.Bool("mic", false, "keep only the closest image of each pair")
	f.Bool("full", false, "list each pair in both directions")
	f.Bool("vectors", false, "write the distance vectors")
	f.Int("cpus", 0, "number of goroutines (0: one per CPU)")
	f.Int("max-pairs", 0, "fail if more pairs are found (0: no limit)")
	f.StringP("out", "o", "", "output file (default: standard output)")
	f.Bool("zstd", false, "compress the output with z-standard")
}

// buildConfig reads the configuration file, if any, and applies the flags
// given in the command line on top of it.
func buildConfig(cmd *cobra.Command, args []string) (*Config, error) {
	f := cmd.Flags()
	c := new(Config)
	if path, _ := f.GetString("config"); path != "" {
		var err error
		c, err = New(path)
		if err != nil {
			return nil, err
		}
	}
	if len(args) > 0 {
		c.Input = args[0]
	}
	if f.Changed("cutoff") {
		c.Cutoff, _ = f.GetFloat64("cutoff")
	}
	if f.Changed("pair") {
		pairs, _ := f.GetStringArray("pair")
		c.Pairs = make(map[string]float64, len(pairs))
		for _, p := range pairs {
			k, v, err := parsePairFlag(p)
			if err != nil {
				return nil, err
			}
			c.Pairs[k] = v
		}
	}
	for name, dst := range map[string]*bool{"self": &c.Self, "mic": &c.MinimumImage, "full": &c.Full, "vectors": &c.Vectors, "zstd": &c.Zstd} {
		if f.Changed(name) {
			*dst, _ = f.GetBool(name)
		}
	}
	if f.Changed("cpus") {
		c.Cpus, _ = f.GetInt("cpus")
	}
	if f.Changed("max-pairs") {
		c.MaxPairs, _ = f.GetInt("max-pairs")
	}
	if f.Changed("out") {
		c.Output, _ = f.GetString("out")
	}
	if c.Input == "" {
		return nil, fmt.Errorf("no input file given")
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return c, nil
}

// build reads the structure and builds its neighbour list.
func build(c *Config) (*matsci.Structure, *neighbours.List, error) {
	S, err := xyz.ReadFile(c.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", c.Input, err)
	}
	pbc := S.PBC()
	logger.Debug("structure read", zap.String("file", c.Input), zap.Int("atoms", S.Len()), zap.Bools("pbc", pbc[:]))
	L, err := neighbours.Build(S, c.NeighbourCutoff(), c.Options(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("building the neighbour list of %s: %w", c.Input, err)
	}
	logger.Info("neighbour list built", zap.String("file", c.Input), zap.Int("pairs", L.Len()))
	return S, L, nil
}
