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

package neighbours

import (
	"math"

	v3 "github.com/rmera/gomatsci/v3"
)

// List is a neighbour list. Pair k is (I[k], J[k], S[k]), with distance D[k]
// and distance vector (from I[k] to J[k]) in the kth row of Vecs, if they were
// requested. Pairs are sorted by I, then J, then S (lexicographically), so the
// same input always gives the same list.
type List struct {
	I, J []int
	S    [][3]int
	D    []float64  //nil unless distances were requested
	Vecs *v3.Matrix //nil unless vectors were requested

	atoms int
	full  bool
	cell  [3][3]float64
	pbc   [3]bool
}

// Len returns the number of pairs in the list.
func (L *List) Len() int {
	return len(L.I)
}

// Atoms returns the number of atoms in the structure the list was built for.
func (L *List) Atoms() int {
	return L.atoms
}

// IsFull returns true if every pair is listed in both directions.
func (L *List) IsFull() bool {
	return L.full
}

// Pair returns the kth pair and its distance. The distance is computed if
// it was not stored but vectors were. Otherwise it is NaN.
func (L *List) Pair(k int) (i, j int, s [3]int, d float64) {
	d = math.NaN()
	switch {
	case L.D != nil:
		d = L.D[k]
	case L.Vecs != nil:
		d = v3.Norm(L.Vecs.Vec(k))
	}
	return L.I[k], L.J[k], L.S[k], d
}

// Cell returns a copy of the lattice vectors of the structure the list was built for.
func (L *List) Cell() *v3.Matrix {
	c := v3.Zeros(3)
	for a := 0; a < 3; a++ {
		c.SetVec(a, L.cell[a])
	}
	return c
}

// PBC returns the periodicity flags of the structure the list was built for.
func (L *List) PBC() [3]bool {
	return L.pbc
}

func emptyList(f *frame, o *Options) *List {
	L := &List{atoms: f.n, full: o.Full(), cell: f.cell, pbc: f.pbc}
	L.I, L.J, L.S = []int{}, []int{}, [][3]int{}
	if o.Distances() {
		L.D = []float64{}
	}
	if o.Vectors() {
		L.Vecs = v3.Zeros(0)
	}
	return L
}

// assemble merges the buckets of all atoms, in atom order, into a new List. For
// full lists, each pair (i, j, S) is also listed as (j, i, -S), except the
// zero-shift self pairs.
func (w *Workspace) assemble(f *frame, o *Options) (*List, error) {
	buckets := w.buckets[:f.n]
	if o.Full() {
		w.mirror = grow(w.mirror, f.n)
		for i := range w.mirror {
			w.mirror[i] = w.mirror[i][:0]
		}
		for i, b := range buckets {
			for _, p := range b {
				if p.j == i && p.shift == ([3]int{}) {
					continue
				}
				m := pair{j: i, shift: [3]int{-p.shift[0], -p.shift[1], -p.shift[2]}, d2: p.d2, vec: [3]float64{-p.vec[0], -p.vec[1], -p.vec[2]}}
				w.mirror[p.j] = append(w.mirror[p.j], m)
			}
		}
		for i := range buckets {
			if len(w.mirror[i]) == 0 {
				continue
			}
			buckets[i] = append(buckets[i], w.mirror[i]...)
			sortPairs(buckets[i])
		}
	}
	total := 0
	for _, b := range buckets {
		total += len(b)
	}
	if limit := o.MaxPairs(); limit > 0 && total > limit {
		return nil, &CapacityError{Needed: total, Capacity: limit, deco: []string{"assemble"}}
	}
	L := emptyList(f, o)
	L.I = make([]int, 0, total)
	L.J = make([]int, 0, total)
	L.S = make([][3]int, 0, total)
	if L.D != nil {
		L.D = make([]float64, 0, total)
	}
	if L.Vecs != nil {
		L.Vecs = v3.Zeros(total)
	}
	k := 0
	for i, b := range buckets {
		for _, p := range b {
			L.I = append(L.I, i)
			L.J = append(L.J, p.j)
			L.S = append(L.S, p.shift)
			if L.D != nil {
				L.D = append(L.D, math.Sqrt(p.d2))
			}
			if L.Vecs != nil {
				L.Vecs.SetVec(k, p.vec)
			}
			k++
		}
	}
	return L, nil
}
