/*
 * images.go, part of gomatsci.
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

// images holds the periodic shifts a build has to consider.
type images struct {
	k      [3]int       //shifts go from -k[a] to k[a] along each axis
	shifts [][3]int     //lexicographic order
	vecs   [][3]float64 //vecs[i] = shifts[i] times the cell
	zero   int          //index of the zero shift
}

// replicationCounts returns, for each periodic axis, the smallest k such that
// k times the spacing between lattice planes exceeds the cutoff. Since wrapped
// positions differ by less than one cell along a periodic axis, no image
// beyond k cells can be within the cutoff. Non-periodic axes get 0.
func replicationCounts(f *frame, cutoff float64) [3]int {
	var k [3]int
	for a := 0; a < 3; a++ {
		if !f.pbc[a] {
			continue
		}
		//the small addend covers cutoffs that are a multiple of the spacing
		//up to rounding.
		k[a] = int(math.Floor(cutoff/f.spacing[a]+1e-6)) + 1
	}
	return k
}

// replicate returns the shifts to consider for the given cutoff. Shifts that move
// the whole set of atoms further than the cutoff from its original place
// (i.e. |s*cell| minus the size of the set exceeds the cutoff) are dropped.
// That is only a coarse test, the exact one is done pair by pair.
func replicate(f *frame, cutoff float64) *images {
	im := &images{k: replicationCounts(f, cutoff)}
	reach := cutoff + f.diameter()
	reach += 1e-9 * reach
	k := im.k
	for s0 := -k[0]; s0 <= k[0]; s0++ {
		for s1 := -k[1]; s1 <= k[1]; s1++ {
			for s2 := -k[2]; s2 <= k[2]; s2++ {
				s := [3]int{s0, s1, s2}
				v := translate([3]float64{}, s, &f.cell)
				if s == ([3]int{}) {
					im.zero = len(im.shifts)
				} else if v3.Norm(v) > reach {
					continue
				}
				im.shifts = append(im.shifts, s)
				im.vecs = append(im.vecs, v)
			}
		}
	}
	return im
}
