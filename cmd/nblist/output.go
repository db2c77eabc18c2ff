/*
 * output.go, part of gomatsci.
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
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	matsci "github.com/rmera/gomatsci"
	"github.com/rmera/gomatsci/neighbours"
)

// output is a buffered, possibly compressed, destination. Close flushes
// everything and closes the file, if there is one.
type output struct {
	*bufio.Writer
	z *zstd.Encoder
	f *os.File
}

func (o *output) Close() error {
	err := o.Flush()
	if o.z != nil {
		if err2 := o.z.Close(); err == nil {
			err = err2
		}
	}
	if o.f != nil {
		if err2 := o.f.Close(); err == nil {
			err = err2
		}
	}
	return err
}

// openOutput opens the named file for writing, or standard output if name is
// empty or "-".
func openOutput(name string, compress bool) (*output, error) {
	o := new(output)
	var w io.Writer = os.Stdout
	if name != "" && name != "-" {
		f, err := os.Create(name)
		if err != nil {
			return nil, fmt.Errorf("opening the output: %w", err)
		}
		o.f, w = f, f
	}
	return wrapOutput(o, w, compress)
}

func wrapOutput(o *output, w io.Writer, compress bool) (*output, error) {
	if compress {
		z, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			if o.f != nil {
				o.f.Close()
			}
			return nil, fmt.Errorf("starting the compression: %w", err)
		}
		o.z, w = z, z
	}
	o.Writer = bufio.NewWriter(w)
	return o, nil
}

func writePairs(w io.Writer, L *neighbours.List) error {
	header := "# i j s1 s2 s3 d"
	if L.Vecs != nil {
		header += " dx dy dz"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for k := 0; k < L.Len(); k++ {
		i, j, s, d := L.Pair(k)
		if _, err := fmt.Fprintf(w, "%d %d %d %d %d %.8f", i, j, s[0], s[1], s[2], d); err != nil {
			return err
		}
		if L.Vecs != nil {
			v := L.Vecs.Vec(k)
			if _, err := fmt.Fprintf(w, " %.8f %.8f %.8f", v[0], v[1], v[2]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writeCoordination(w io.Writer, S matsci.AtomSet, coord []int) error {
	species := S.Species()
	if _, err := fmt.Fprintln(w, "# i species neighbours"); err != nil {
		return err
	}
	for i, n := range coord {
		sp := "X"
		if species != nil {
			sp = species[i]
		}
		if _, err := fmt.Fprintf(w, "%d %s %d\n", i, sp, n); err != nil {
			return err
		}
	}
	return nil
}

// writeStats writes the summary, then the histogram, one bin per line as
// "lower upper count".
func writeStats(w io.Writer, s neighbours.Stats, clusters int, dividers, counts []float64) error {
	_, err := fmt.Fprintf(w, "pairs %d\nmin %.8f\nmax %.8f\nmean %.8f\nstddev %.8f\nclusters %d\n", s.N, s.Min, s.Max, s.Mean, s.StdDev, clusters)
	if err != nil || counts == nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "# histogram: lower upper count"); err != nil {
		return err
	}
	for b, c := range counts {
		if _, err := fmt.Fprintf(w, "%.8f %.8f %d\n", dividers[b], dividers[b+1], int(c)); err != nil {
			return err
		}
	}
	return nil
}
