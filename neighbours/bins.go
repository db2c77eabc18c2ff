/*
 * bins.go, part of gomatsci.
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
	"math"
)

// Bins are at most this many times the number of binned entries.
const binsPerEntry = 2

// entry is an atom, or one of its periodic replicas, placed in the grid.
type entry struct {
	atom  int
	shift int //index in images.shifts
	pos   [3]float64
}

// grid is a regular grid of bins over the bounding box of the wrapped atoms,
// extended by the cutoff. The contents of all bins are stored contiguously in
// entries, bin b owning entries[start[b]:start[b+1]]. Bins are indexed by
// flattening (i0, i1, i2) as (i0*n[1]+i1)*n[2]+i2.
type grid struct {
	lo      [3]float64
	edge    [3]float64
	n       [3]int
	start   []int
	entries []entry
	home    []int //bin of the unshifted copy of each atom
}

// gridKey identifies the inputs of the bin-size heuristic, so a Workspace can
// reuse its result.
type gridKey struct {
	cutoff  float64
	extent  [3]float64
	entries int
}

// buildGrid bins every atom, plus every replica that lies within the cutoff of
// the bounding box of the atoms. The bin edge is at least the cutoff along each
// axis, so two points within the cutoff are at most one bin apart.
func (w *Workspace) buildGrid(f *frame, im *images, cutoff float64) *grid {
	g := new(grid)
	margin := cutoff * (1 + 1e-8)
	var hi, extent [3]float64
	for a := 0; a < 3; a++ {
		g.lo[a] = f.lo[a] - margin
		hi[a] = f.hi[a] + margin
		extent[a] = hi[a] - g.lo[a]
	}
	inside := func(p [3]float64) bool {
		for a := 0; a < 3; a++ {
			if p[a] < g.lo[a] || p[a] > hi[a] {
				return false
			}
		}
		return true
	}
	raw := w.raw[:0]
	for si, v := range im.vecs {
		for j := 0; j < f.n; j++ {
			p := f.pos[j]
			p[0] += v[0]
			p[1] += v[1]
			p[2] += v[2]
			if si != im.zero && !inside(p) {
				continue
			}
			raw = append(raw, entry{atom: j, shift: si, pos: p})
		}
	}
	w.raw = raw

	key := gridKey{cutoff: cutoff, extent: extent, entries: len(raw)}
	if w.binsCached && w.binsKey == key {
		g.n = w.bins
		w.binsHits++
	} else {
		g.n = binCounts(extent, margin, len(raw))
		w.bins, w.binsKey, w.binsCached = g.n, key, true
	}
	for a := 0; a < 3; a++ {
		g.edge[a] = extent[a] / float64(g.n[a])
	}

	//counting sort of the entries by bin.
	nb := g.n[0] * g.n[1] * g.n[2]
	w.binOf = grow(w.binOf, len(raw))
	w.start = grow(w.start, nb+1)
	w.home = grow(w.home, f.n)
	for b := range w.start {
		w.start[b] = 0
	}
	for e := range raw {
		b := g.bin(raw[e].pos)
		w.binOf[e] = b
		w.start[b+1]++
		if raw[e].shift == im.zero {
			w.home[raw[e].atom] = b
		}
	}
	for b := 0; b < nb; b++ {
		w.start[b+1] += w.start[b]
	}
	w.cursor = grow(w.cursor, nb)
	copy(w.cursor, w.start[:nb])
	w.entries = grow(w.entries, len(raw))
	for e := range raw {
		b := w.binOf[e]
		w.entries[w.cursor[b]] = raw[e]
		w.cursor[b]++
	}
	g.start, g.entries, g.home = w.start, w.entries, w.home
	return g
}

// binCounts returns the number of bins along each axis: as many as fit with an
// edge no shorter than minEdge, but no more than binsPerEntry times the number
// of entries in total. Fewer, larger, bins are always correct, only slower.
func binCounts(extent [3]float64, minEdge float64, entries int) [3]int {
	limit := float64(binsPerEntry * entries)
	if limit < 1 {
		limit = 1
	}
	var n [3]int
	for a := 0; a < 3; a++ {
		c := math.Floor(extent[a] / minEdge)
		if c > limit || math.IsNaN(c) {
			c = limit
		}
		n[a] = int(math.Max(1, c))
	}
	total := func() float64 { return float64(n[0]) * float64(n[1]) * float64(n[2]) }
	for total() > limit {
		scale := math.Cbrt(total() / limit)
		changed := false
		for a := 0; a < 3; a++ {
			c := int(math.Max(1, math.Floor(float64(n[a])/scale)))
			if c != n[a] {
				n[a] = c
				changed = true
			}
		}
		if !changed {
			//the scaling rounded back to the same numbers, shrink the largest axis.
			largest := 0
			for a := 1; a < 3; a++ {
				if n[a] > n[largest] {
					largest = a
				}
			}
			n[largest]--
		}
	}
	return n
}

// bin returns the flat index of the bin containing p. Points outside the grid
// go to the closest bin on the border.
func (g *grid) bin(p [3]float64) int {
	var c [3]int
	for a := 0; a < 3; a++ {
		c[a] = clamp(int(math.Floor((p[a]-g.lo[a])/g.edge[a])), g.n[a])
	}
	return (c[0]*g.n[1]+c[1])*g.n[2] + c[2]
}

// unflat is the inverse of the bin flattening.
func (g *grid) unflat(b int) [3]int {
	i2 := b % g.n[2]
	b /= g.n[2]
	return [3]int{b / g.n[1], b % g.n[1], i2}
}

// neighbourBins appends to dst the bins in the 3x3x3 block centered on b,
// including b, without going past the grid border. Each bin appears once.
func (g *grid) neighbourBins(b int, dst []int) []int {
	c := g.unflat(b)
	var lo, hi [3]int
	for a := 0; a < 3; a++ {
		lo[a] = max(c[a]-1, 0)
		hi[a] = min(c[a]+1, g.n[a]-1)
	}
	for i0 := lo[0]; i0 <= hi[0]; i0++ {
		for i1 := lo[1]; i1 <= hi[1]; i1++ {
			for i2 := lo[2]; i2 <= hi[2]; i2++ {
				dst = append(dst, (i0*g.n[1]+i1)*g.n[2]+i2)
			}
		}
	}
	return dst
}

// contents returns the entries in bin b.
func (g *grid) contents(b int) []entry {
	return g.entries[g.start[b]:g.start[b+1]]
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
