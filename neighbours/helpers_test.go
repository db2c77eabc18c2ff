/*
 * helpers_test.go, part of gomatsci.
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
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	matsci "github.com/rmera/gomatsci"
	v3 "github.com/rmera/gomatsci/v3"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// triple is one pair of a list in a form go-cmp can compare.
type triple struct {
	I, J int
	S    [3]int
	D    float64
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func triples(L *List) []triple {
	ret := make([]triple, L.Len())
	for k := range ret {
		i, j, s, d := L.Pair(k)
		ret[k] = triple{I: i, J: j, S: s, D: d}
	}
	return ret
}

func vectors(L *List) [][3]float64 {
	if L.Vecs == nil {
		return nil
	}
	ret := make([][3]float64, L.Vecs.NVecs())
	for k := range ret {
		ret[k] = L.Vecs.Vec(k)
	}
	return ret
}

func newStructure(Te *testing.T, pos [][3]float64, cell [3][3]float64, pbc [3]bool, species []string) *matsci.Structure {
	Te.Helper()
	coords := v3.Zeros(len(pos))
	for i, p := range pos {
		coords.SetVec(i, p)
	}
	c := v3.Zeros(3)
	for a := 0; a < 3; a++ {
		c.SetVec(a, cell[a])
	}
	s, err := matsci.NewStructure(coords, c, pbc, species)
	if err != nil {
		Te.Fatal(err)
	}
	return s
}

// randomStructure places n atoms at fractional coordinates in [-0.2, 1.2) of the cell,
// so some of them need wrapping. Along non-periodic axes with a zero lattice vector,
// atoms get a cartesian coordinate in [0, 3) instead.
func randomStructure(Te *testing.T, rng *rand.Rand, n int, cell [3][3]float64, pbc [3]bool, species []string) *matsci.Structure {
	Te.Helper()
	pos := make([][3]float64, n)
	for i := range pos {
		for a := 0; a < 3; a++ {
			if !pbc[a] && cell[a] == ([3]float64{}) {
				pos[i][a] += 3 * rng.Float64()
				continue
			}
			f := rng.Float64()*1.4 - 0.2
			for x := 0; x < 3; x++ {
				pos[i][x] += f * cell[a][x]
			}
		}
	}
	var labels []string
	if species != nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = species[rng.Intn(len(species))]
		}
	}
	return newStructure(Te, pos, cell, pbc, labels)
}

// bruteForce compares every atom against every image of every atom, with no
// wrapping and no binning. rc returns the cutoff for a pair of atoms.
// Shifts go far enough for structures made by randomStructure.
func bruteForce(Te *testing.T, s matsci.AtomSet, rc func(i, j int) float64, self, full bool) []triple {
	Te.Helper()
	var cell [3][3]float64
	for a := 0; a < 3; a++ {
		cell[a] = s.Cell().Vec(a)
	}
	pbc := s.PBC()
	_, recip, err := effectiveBasis(cell, pbc)
	if err != nil {
		Te.Fatal(err)
	}
	maxrc := 0.0
	for i := 0; i < s.Len(); i++ {
		for j := 0; j < s.Len(); j++ {
			maxrc = math.Max(maxrc, rc(i, j))
		}
	}
	var K [3]int
	for a := 0; a < 3; a++ {
		if pbc[a] {
			K[a] = int(maxrc*v3.Norm(recip[a])) + 3
		}
	}
	var ret []triple
	for i := 0; i < s.Len(); i++ {
		pi := s.Coords().Vec(i)
		for j := 0; j < s.Len(); j++ {
			if j < i && !full {
				continue
			}
			pj := s.Coords().Vec(j)
			r := rc(i, j)
			for s0 := -K[0]; s0 <= K[0]; s0++ {
				for s1 := -K[1]; s1 <= K[1]; s1++ {
					for s2 := -K[2]; s2 <= K[2]; s2++ {
						S := [3]int{s0, s1, s2}
						if i == j {
							if S == ([3]int{}) && !self {
								continue
							}
							if S != ([3]int{}) && !full && !lexPositive(S) {
								continue
							}
						}
						v := translate([3]float64{pj[0] - pi[0], pj[1] - pi[1], pj[2] - pi[2]}, S, &cell)
						d := v3.Norm(v)
						if r > 0 && d <= r {
							ret = append(ret, triple{I: i, J: j, S: S, D: d})
						}
					}
				}
			}
		}
	}
	return ret
}

// minimumImages reduces a sorted half-list reference to one image per pair of atoms.
// The first image wins ties, which is the lexicographically smallest shift.
func minimumImages(t []triple) []triple {
	zero := func(c triple) bool { return c.I == c.J && c.S == ([3]int{}) }
	var ret []triple
	for _, c := range t {
		last := len(ret) - 1
		if zero(c) || last < 0 || zero(ret[last]) || ret[last].I != c.I || ret[last].J != c.J {
			ret = append(ret, c)
			continue
		}
		if c.D*c.D < ret[last].D*ret[last].D*(1-imageTieTolerance) {
			ret[last] = c
		}
	}
	return ret
}

func uniform(r float64) func(i, j int) float64 {
	return func(i, j int) float64 { return r }
}

// sameList fails the test if got differs from the reference.
func sameList(Te *testing.T, name string, got *List, want []triple) {
	Te.Helper()
	if diff := cmp.Diff(want, triples(got), approx, cmpopts.EquateEmpty()); diff != "" {
		Te.Errorf("%s: list differs from the brute-force reference (-want +got):\n%s", name, diff)
	}
}
