/*
 * main.go, part of gomatsci.
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
// nblist builds neighbour lists for structures in extended XYZ files.
//
//	nblist pairs quartz.xyz --cutoff 2.0 --vectors
//	nblist pairs quartz.xyz --pair Si-O=1.8 --pair O-O=2.7 --pair Si-Si=3.2 --out pairs.txt.zst
//	nblist pairs --config nblist.yaml
//	nblist coordination quartz.xyz --cutoff 2.0
//	nblist stats quartz.xyz --cutoff 2.0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "nblist",
	Short: "Neighbour lists for periodic and non-periodic atomic structures",
	Long: `nblist finds every pair of atoms closer than a cutoff, including pairs between an
atom and the periodic images of any atom, for structures read from extended XYZ files.

The cutoff can be the same for all atoms (--cutoff) or given for each pair of species
(--pair A-B=R, repeated). Settings can also be read from a YAML file (--config); flags
given in the command line take precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log build statistics")
	for _, c := range []*cobra.Command{pairsCmd, coordinationCmd, statsCmd} {
		addBuildFlags(c)
		rootCmd.AddCommand(c)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
