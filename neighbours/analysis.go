/*
 * analysis.go, part of gomatsci.
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
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/stat"
)

//Functions that read a List. None of them modifies it.

// Coordination returns the number of neighbours of each atom. The returned slice
// has the length of the larger of n and the number of atoms in the list.
// Each image counts as a different neighbour. The result is the same for the
// half and the full list of a structure.
func (L *List) Coordination(n int) []int {
	ret := make([]int, max(n, L.atoms))
	for k, i := range L.I {
		ret[i]++
		if L.full {
			continue
		}
		//in a half list every pair but the atom with itself counts for both atoms.
		if j := L.J[k]; j != i || L.S[k] != ([3]int{}) {
			ret[j]++
		}
	}
	return ret
}

// FirstNeighbours returns a slice seed of length n+1 such that the pairs of atom i
// are L.I[seed[i]:seed[i+1]]. n is raised to the number of atoms in the list if
// smaller. This works because the list is sorted by I.
func (L *List) FirstNeighbours(n int) []int {
	n = max(n, L.atoms)
	seed := make([]int, n+1)
	for _, i := range L.I {
		seed[i+1]++
	}
	for i := 0; i < n; i++ {
		seed[i+1] += seed[i]
	}
	return seed
}

// Graph returns an undirected graph with one node per atom (node IDs are the
// atom indexes) and one edge for each pair of different atoms with at least one
// image in the list. The weight of an edge is the shortest distance among those
// images, or 1 if the list has neither distances nor vectors. Self-images are
// not included. The graph has the larger of n and the number of atoms in the
// list as nodes.
func (L *List) Graph(n int) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	n = max(n, L.atoms)
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for k := range L.I {
		i, j, _, d := L.Pair(k)
		if i == j {
			continue
		}
		if math.IsNaN(d) {
			d = 1
		}
		if w, ok := g.Weight(int64(i), int64(j)); ok && w <= d {
			continue
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(i), simple.Node(j), d))
	}
	return g
}

// Stats summarizes the distances in a list.
type Stats struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summary returns the statistics of the pair distances in the list. For an empty
// list, or one with neither distances nor vectors, all but N are NaN.
func (L *List) Summary() Stats {
	s := Stats{N: L.Len(), Min: math.NaN(), Max: math.NaN(), Mean: math.NaN(), StdDev: math.NaN()}
	d := L.D
	if d == nil && L.Vecs != nil {
		d = make([]float64, L.Len())
		for k := range d {
			_, _, _, d[k] = L.Pair(k)
		}
	}
	if len(d) == 0 {
		return s
	}
	s.Min = floats.Min(d)
	s.Max = floats.Max(d)
	if len(d) == 1 {
		s.Mean, s.StdDev = d[0], 0
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(d, nil)
	return s
}

// Histogram counts the pair distances in bins of equal width between 0 and upper.
// It returns the bins+1 bin edges and the count in each bin. Distances equal to or
// larger than upper are not counted. It returns nil slices if the list has
// neither distances nor vectors, or if bins < 1 or upper <= 0.
func (L *List) Histogram(bins int, upper float64) (dividers, counts []float64) {
	if bins < 1 || !(upper > 0) || (L.D == nil && L.Vecs == nil) {
		return nil, nil
	}
	d := make([]float64, 0, L.Len())
	for k := 0; k < L.Len(); k++ {
		if _, _, _, r := L.Pair(k); r < upper {
			d = append(d, r)
		}
	}
	sort.Float64s(d)
	dividers = floats.Span(make([]float64, bins+1), 0, upper)
	if len(d) == 0 {
		return dividers, make([]float64, bins)
	}
	counts = stat.Histogram(nil, dividers, d, nil)
	return dividers, counts
}
