/*
 * xyz_test.go, part of gomatsci.
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

package xyz

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const quartzish = `3
Lattice="4.9 0.0 0.0 -2.45 4.24352 0.0 0.0 0.0 5.4" pbc="T T F" energy=-12.5 some words
Si   0.0 0.0 0.0
O    1.2 0.5 0.7  extra columns
O   -0.4 3.1 5.0
`

func TestRead(Te *testing.T) {
	S, err := Read(strings.NewReader(quartzish))
	require.NoError(Te, err)
	require.Equal(Te, 3, S.Len())
	require.Equal(Te, []string{"Si", "O", "O"}, S.Species())
	require.Equal(Te, [3]bool{true, true, false}, S.PBC())
	require.Equal(Te, [3]float64{-2.45, 4.24352, 0}, S.Cell().Vec(1))
	require.Equal(Te, [3]float64{-0.4, 3.1, 5.0}, S.Coords().Vec(2))
}

func TestReadPlain(Te *testing.T) {
	S, err := Read(strings.NewReader("2\nwater-ish\nO 0 0 0\nH 0.96 0 0"))
	require.NoError(Te, err)
	require.Equal(Te, 2, S.Len())
	require.Equal(Te, [3]bool{}, S.PBC())
	require.Equal(Te, [3]float64{}, S.Cell().Vec(0))
	//lattice without pbc means periodic.
	S, err = Read(strings.NewReader("1\nLattice=\"1 0 0 0 1 0 0 0 1\"\nAr 0 0 0\n"))
	require.NoError(Te, err)
	require.Equal(Te, [3]bool{true, true, true}, S.PBC())
}

func TestReadErrors(Te *testing.T) {
	bad := map[string]string{
		"count":        "two\n\nH 0 0 0\n",
		"missing atom": "2\n\nH 0 0 0\n",
		"short line":   "1\n\nH 0 0\n",
		"bad number":   "1\n\nH 0 zero 0\n",
		"lattice":      "1\nLattice=\"1 0 0 0 1 0\"\nH 0 0 0\n",
		"quotes":       "1\nLattice=\"1 0 0 0 1 0 0 0 1\nH 0 0 0\n",
		"pbc":          "1\nLattice=\"1 0 0 0 1 0 0 0 1\" pbc=\"T X T\"\nH 0 0 0\n",
	}
	for name, text := range bad {
		_, err := Read(strings.NewReader(text))
		var xerr *Error
		require.Truef(Te, errors.As(err, &xerr), "%s: expected an *Error, got %v", name, err)
		require.NotEmpty(Te, xerr.Decorate(""), name)
	}
}

func TestRoundTrip(Te *testing.T) {
	S, err := Read(strings.NewReader(quartzish))
	require.NoError(Te, err)
	name := filepath.Join(Te.TempDir(), "quartz.xyz")
	require.NoError(Te, WriteFile(name, S, "written by a test"))
	S2, err := ReadFile(name)
	require.NoError(Te, err)
	require.Equal(Te, S.Species(), S2.Species())
	require.Equal(Te, S.PBC(), S2.PBC())
	for i := 0; i < S.Len(); i++ {
		want, got := S.Coords().Vec(i), S2.Coords().Vec(i)
		require.InDeltaSlice(Te, want[:], got[:], 1e-8)
	}
	for a := 0; a < 3; a++ {
		want, got := S.Cell().Vec(a), S2.Cell().Vec(a)
		require.InDeltaSlice(Te, want[:], got[:], 1e-8)
	}
	zname := filepath.Join(Te.TempDir(), "quartz.xyz.zst")
	require.NoError(Te, WriteFile(zname, S, ""))
	S3, err := ReadFile(zname)
	require.NoError(Te, err)
	require.Equal(Te, S.Species(), S3.Species())
	require.Equal(Te, S.PBC(), S3.PBC())
	var buf bytes.Buffer
	require.Error(Te, Write(&buf, S, "two\nlines"))
	_, err = ReadFile(filepath.Join(Te.TempDir(), "nothere.xyz"))
	require.Error(Te, err)
}
