/*
 * cutoff.go, part of gomatsci.
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

	"gonum.org/v1/gonum/mat"
)

// Cutoff is the interaction radius for a build. It is either the same for
// all pairs of atoms, or given for each pair of species.
type Cutoff struct {
	uniform float64
	pairs   map[[2]string]float64
}

// Uniform returns a cutoff r applied to every pair of atoms.
func Uniform(r float64) *Cutoff {
	return &Cutoff{uniform: r}
}

// ByPair returns a cutoff given for each pair of species. The order of the species
// in a key doesn't matter, but if both orders are given with different values,
// the largest one is used. The map is copied.
func ByPair(pairs map[[2]string]float64) *Cutoff {
	c := &Cutoff{pairs: make(map[[2]string]float64, len(pairs))}
	for k, v := range pairs {
		k = sortedKey(k[0], k[1])
		if old, ok := c.pairs[k]; ok && old >= v {
			continue
		}
		c.pairs[k] = v
	}
	return c
}

// IsUniform returns true if the cutoff doesn't depend on the species.
func (c *Cutoff) IsUniform() bool {
	return c.pairs == nil
}

// Pair returns the cutoff for the species a and b and whether it was defined.
// For uniform cutoffs it is always defined.
func (c *Cutoff) Pair(a, b string) (float64, bool) {
	if c.IsUniform() {
		return c.uniform, true
	}
	r, ok := c.pairs[sortedKey(a, b)]
	return r, ok
}

// Max returns the largest cutoff defined.
func (c *Cutoff) Max() float64 {
	if c.IsUniform() {
		return c.uniform
	}
	m := 0.0
	for _, v := range c.pairs {
		m = math.Max(m, v)
	}
	return m
}

func (c *Cutoff) validate() error {
	check := func(r float64) bool {
		return !(r < 0 || math.IsNaN(r) || math.IsInf(r, 0))
	}
	if c.IsUniform() {
		if !check(c.uniform) {
			return cutoffErr("validate", "cutoff %g must be finite and non-negative", c.uniform)
		}
		return nil
	}
	for k, v := range c.pairs {
		if !check(v) {
			return cutoffErr("validate", "cutoff %g for pair %s-%s must be finite and non-negative", v, k[0], k[1])
		}
	}
	return nil
}

func sortedKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// cutoffTable is a Cutoff resolved for a given structure: the species present
// get consecutive ids (in order of first appearance) and the squared cutoffs
// for every pair of ids are stored in a dense symmetric matrix, so no map
// lookups happen while comparing atoms.
type cutoffTable struct {
	ids     []int
	sq      *mat.SymDense
	uniform float64 //squared, only if ids is nil
	max     float64 //not squared
}

// resolve builds the table for n atoms with the given species labels.
// species can be nil only if the cutoff is uniform.
func (c *Cutoff) resolve(species []string, n int) (*cutoffTable, error) {
	if c == nil {
		return nil, cutoffErr("resolve", "no cutoff given")
	}
	if err := c.validate(); err != nil {
		return nil, errDecorate(err, "resolve")
	}
	if c.IsUniform() {
		return &cutoffTable{uniform: c.uniform * c.uniform, max: c.uniform}, nil
	}
	if len(species) != n {
		return nil, cutoffErr("resolve", "species-pair cutoffs need one species label per atom, got %d labels for %d atoms", len(species), n)
	}
	t := &cutoffTable{ids: make([]int, n)}
	idof := make(map[string]int)
	var labels []string
	for i, s := range species {
		id, ok := idof[s]
		if !ok {
			id = len(labels)
			idof[s] = id
			labels = append(labels, s)
		}
		t.ids[i] = id
	}
	if len(labels) == 0 {
		return t, nil //no atoms, nothing to compare.
	}
	t.sq = mat.NewSymDense(len(labels), nil)
	var missing [][2]string
	for a := range labels {
		for b := a; b < len(labels); b++ {
			r, ok := c.Pair(labels[a], labels[b])
			if !ok {
				missing = append(missing, sortedKey(labels[a], labels[b]))
				continue
			}
			t.sq.SetSym(a, b, r*r)
			t.max = math.Max(t.max, r)
		}
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool {
			if missing[i][0] != missing[j][0] {
				return missing[i][0] < missing[j][0]
			}
			return missing[i][1] < missing[j][1]
		})
		return nil, cutoffErr("resolve", "no cutoff given for the species pair(s) %v", missing)
	}
	return t, nil
}

// sqCutoff returns the squared cutoff for atoms i and j.
func (t *cutoffTable) sqCutoff(i, j int) float64 {
	if t.ids == nil {
		return t.uniform
	}
	return t.sq.At(t.ids[i], t.ids[j])
}
