/*
 * config_test.go, part of gomatsci.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTemp(Te *testing.T, name, content string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), name)
	require.NoError(Te, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigNew(Te *testing.T) {
	path := writeTemp(Te, "nblist.yaml", `input: quartz.xyz
pairs:
  Si-O: 1.8
  O-O: 2.7
minimumImage: true
vectors: true
cpus: 2
output: pairs.txt.zst
`)
	c, err := New(path)
	require.NoError(Te, err)
	require.Equal(Te, "quartz.xyz", c.Input)
	require.True(Te, c.Compressed())
	cut := c.NeighbourCutoff()
	require.False(Te, cut.IsUniform())
	r, ok := cut.Pair("O", "Si")
	require.True(Te, ok)
	require.Equal(Te, 1.8, r)
	_, ok = cut.Pair("Si", "Si")
	require.False(Te, ok)
	o := c.Options(zap.NewNop())
	require.False(Te, o.MultipleImages())
	require.True(Te, o.Vectors())
	require.Equal(Te, 2, o.Cpus())
}

func TestConfigCheck(Te *testing.T) {
	bad := map[string]string{
		"no cutoff":       "input: a.xyz\n",
		"negative cutoff": "input: a.xyz\ncutoff: -1\n",
		"bad pair":        "input: a.xyz\npairs:\n  SiO: 1.0\n",
		"negative pair":   "input: a.xyz\npairs:\n  Si-O: -1.0\n",
		"negative cpus":   "input: a.xyz\ncutoff: 1\ncpus: -2\n",
		"unknown field":   "input: a.xyz\ncutof: 1\n",
	}
	for name, content := range bad {
		_, err := New(writeTemp(Te, "bad.yaml", content))
		require.Error(Te, err, name)
	}
	_, err := New(filepath.Join(Te.TempDir(), "missing.yaml"))
	require.Error(Te, err)
	c := &Config{Input: "a.xyz", Cutoff: 2}
	require.NoError(Te, c.Check())
	require.True(Te, c.NeighbourCutoff().IsUniform())
	require.False(Te, c.Compressed())
}

func TestParsePairFlag(Te *testing.T) {
	k, v, err := parsePairFlag("Si-O=1.75")
	require.NoError(Te, err)
	require.Equal(Te, "Si-O", k)
	require.Equal(Te, 1.75, v)
	for _, bad := range []string{"Si-O", "SiO=1", "Si-O=x", "-O=1"} {
		_, _, err := parsePairFlag(bad)
		require.Error(Te, err, bad)
	}
}
