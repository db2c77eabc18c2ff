/*
 * enumerate.go, part of gomatsci.
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

package neighbours

import (
	"golang.org/x/sync/errgroup"
)

// pair is a neighbour j of a home atom, seen through the reported shift.
type pair struct {
	j     int
	shift [3]int
	d2    float64
	vec   [3]float64
}

// Home atoms are split in about this many chunks per worker, so a worker that
// gets a dense region doesn't hold up the others.
const chunksPerCPU = 4

// enumerate fills w.buckets[i] with the canonical neighbours of each atom i, sorted
// by (j, shift). Home atoms are taken in bin order and split into chunks of
// consecutive bins, each processed by one goroutine. Goroutines only read the
// grid and only write the buckets of their own atoms.
func (w *Workspace) enumerate(f *frame, im *images, g *grid, t *cutoffTable, o *Options) error {
	w.buckets = grow(w.buckets, f.n)
	w.order = w.order[:0]
	for _, e := range g.entries {
		if e.shift == im.zero {
			w.order = append(w.order, e.atom)
		}
	}
	cpus := o.Cpus()
	size := (f.n + cpus*chunksPerCPU - 1) / (cpus * chunksPerCPU)
	if size < 1 {
		size = 1
	}
	var eg errgroup.Group
	eg.SetLimit(cpus)
	for start := 0; start < f.n; start += size {
		part := w.order[start:min(start+size, f.n)]
		eg.Go(func() error {
			w.scan(part, f, im, g, t, o)
			return nil
		})
	}
	return eg.Wait()
}

// scan finds the neighbours of the home atoms in part.
func (w *Workspace) scan(part []int, f *frame, im *images, g *grid, t *cutoffTable, o *Options) {
	nb := make([]int, 0, 27)
	for _, i := range part {
		bucket := w.buckets[i][:0]
		p := f.pos[i]
		wi := f.wrap[i]
		if o.SelfInteraction() && t.sqCutoff(i, i) > 0 {
			bucket = append(bucket, pair{j: i})
		}
		nb = g.neighbourBins(g.home[i], nb[:0])
		for _, b := range nb {
			for _, e := range g.contents(b) {
				j := e.atom
				if j < i {
					continue
				}
				s := im.shifts[e.shift]
				wj := f.wrap[j]
				S := [3]int{s[0] + wj[0] - wi[0], s[1] + wj[1] - wi[1], s[2] + wj[2] - wi[2]}
				//an atom and its own image: only one of S and -S is listed.
				//S=0 is the atom itself.
				if j == i && !lexPositive(S) {
					continue
				}
				rc2 := t.sqCutoff(i, j)
				if rc2 == 0 {
					continue
				}
				d := [3]float64{e.pos[0] - p[0], e.pos[1] - p[1], e.pos[2] - p[2]}
				d2 := d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
				if d2 > rc2 {
					continue
				}
				bucket = append(bucket, pair{j: j, shift: S, d2: d2, vec: d})
			}
		}
		if !o.MultipleImages() {
			bucket = minimumImage(bucket, i)
		}
		sortPairs(bucket)
		w.buckets[i] = bucket
	}
}
