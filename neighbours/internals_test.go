/*
 * internals_test.go, part of gomatsci.
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
	"testing"

	"github.com/google/go-cmp/cmp"
	v3 "github.com/rmera/gomatsci/v3"
)

func TestReplicationCounts(Te *testing.T) {
	f := &frame{pbc: [3]bool{true, true, false}, spacing: [3]float64{1, 0.5, 1}}
	cases := []struct {
		cutoff float64
		want   [3]int
	}{
		{0.3, [3]int{1, 1, 0}},
		{1, [3]int{2, 3, 0}},
		{2.5, [3]int{3, 6, 0}},
	}
	for _, c := range cases {
		if got := replicationCounts(f, c.cutoff); got != c.want {
			Te.Errorf("Cutoff %g: replication counts %v, expected %v", c.cutoff, got, c.want)
		}
	}
}

func TestReplicate(Te *testing.T) {
	f := &frame{n: 1, pbc: [3]bool{true, true, true}, cell: cubic, spacing: [3]float64{1, 1, 1}}
	im := replicate(f, 1.2)
	//k is 2 along each axis, but only the zero shift and the 6 faces are close enough.
	if im.k != [3]int{2, 2, 2} || len(im.shifts) != 7 {
		Te.Fatalf("Expected k=2 and 7 shifts, got k=%v and %v", im.k, im.shifts)
	}
	if im.shifts[im.zero] != ([3]int{}) {
		Te.Errorf("The zero shift is at %d, but that is %v", im.zero, im.shifts[im.zero])
	}
	for i := 1; i < len(im.shifts); i++ {
		if !lexLess(im.shifts[i-1], im.shifts[i]) {
			Te.Errorf("Shifts not in lexicographic order: %v", im.shifts)
		}
	}
	if v := im.vecs[len(im.vecs)-1]; v != [3]float64{1, 0, 0} {
		Te.Errorf("The last shift vector should be the +x face, got %v", v)
	}
}

func TestBinCounts(Te *testing.T) {
	cases := []struct {
		extent  [3]float64
		minEdge float64
		entries int
	}{
		{[3]float64{10, 10, 10}, 1, 1000},
		{[3]float64{10, 10, 10}, 1, 10},
		{[3]float64{100, 0.5, 3}, 0.9, 500},
		{[3]float64{2, 2, 2}, 5, 3},
		{[3]float64{1e6, 1e6, 1e6}, 1e-3, 1},
	}
	for _, c := range cases {
		n := binCounts(c.extent, c.minEdge, c.entries)
		total := 1
		for a := 0; a < 3; a++ {
			if n[a] < 1 {
				Te.Fatalf("%v: %d bins along axis %d", c, n[a], a)
			}
			if edge := c.extent[a] / float64(n[a]); edge < c.minEdge && n[a] > 1 {
				Te.Errorf("%v: bin edge %g is shorter than %g", c, edge, c.minEdge)
			}
			total *= n[a]
		}
		if total > max(binsPerEntry*c.entries, 1) {
			Te.Errorf("%v: %v gives %d bins for %d entries", c, n, total, c.entries)
		}
	}
	if n := binCounts([3]float64{10, 10, 10}, 1, 1000); n != [3]int{10, 10, 10} {
		Te.Errorf("Expected 10 bins per axis, got %v", n)
	}
}

func TestGridNeighbourBins(Te *testing.T) {
	g := &grid{n: [3]int{3, 1, 4}}
	nb := g.neighbourBins(0, nil)
	if len(nb) != 4 {
		Te.Errorf("A corner bin of a 3x1x4 grid has 4 bins around it (itself included), got %v", nb)
	}
	nb = g.neighbourBins((1*1+0)*4+1, nil)
	if len(nb) != 9 {
		Te.Errorf("A central bin of a 3x1x4 grid has 9 bins around it, got %v", nb)
	}
	seen := make(map[int]bool)
	for _, b := range nb {
		if seen[b] {
			Te.Errorf("Bin %d listed twice", b)
		}
		seen[b] = true
		if u := g.unflat(b); (u[0]*g.n[1]+u[1])*g.n[2]+u[2] != b {
			Te.Errorf("unflat(%d) = %v doesn't flatten back", b, u)
		}
	}
	g.lo = [3]float64{0, 0, 0}
	g.edge = [3]float64{1, 1, 1}
	if b := g.bin([3]float64{-5, 0.5, 100}); b != 3 {
		Te.Errorf("Points outside the grid should be clamped to border bins, got bin %d", b)
	}
}

func TestEffectiveBasis(Te *testing.T) {
	cases := [][3][3]float64{
		{{2, 0, 0}, {0, 0, 0}, {0, 0, 0}},
		{{0, 0, 0}, {0, 0, 0}, {0.3, 0.2, 1.8}},
		{{1, 1, 0}, {-1, 1, 0}, {0, 0, 0}},
	}
	pbcs := [][3]bool{{true, false, false}, {false, false, true}, {true, true, false}}
	for c, cell := range cases {
		basis, recip, err := effectiveBasis(cell, pbcs[c])
		if err != nil {
			Te.Fatal(err)
		}
		if !spans(basis) {
			Te.Errorf("Case %d: basis %v doesn't span the space", c, basis)
		}
		for a := 0; a < 3; a++ {
			if pbcs[c][a] && basis[a] != cell[a] {
				Te.Errorf("Case %d: periodic vector %d changed from %v to %v", c, a, cell[a], basis[a])
			}
			for b := 0; b < 3; b++ {
				want := 0.0
				if a == b {
					want = 1
				}
				if got := v3.Dot(recip[a], basis[b]); math.Abs(got-want) > 1e-12 {
					Te.Errorf("Case %d: recip[%d].basis[%d] = %g, expected %g", c, a, b, got, want)
				}
			}
		}
	}
}

func TestMinimumImageFilter(Te *testing.T) {
	p := []pair{
		{j: 2, shift: [3]int{1, 0, 0}, d2: 4},
		{j: 0, shift: [3]int{0, 0, 0}},
		{j: 2, shift: [3]int{-1, 0, 0}, d2: 1},
		{j: 2, shift: [3]int{0, 0, 0}, d2: 1},
		{j: 0, shift: [3]int{0, 1, 0}, d2: 9},
		{j: 0, shift: [3]int{0, 0, 1}, d2: 2},
	}
	got := minimumImage(p, 0)
	want := []pair{
		{j: 0, shift: [3]int{0, 0, 0}},
		{j: 0, shift: [3]int{0, 0, 1}, d2: 2},
		{j: 2, shift: [3]int{-1, 0, 0}, d2: 1},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(pair{})); diff != "" {
		Te.Errorf("Unexpected minimum images (-want +got):\n%s", diff)
	}
}
