/*
 * filter.go, part of gomatsci.
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

import "sort"

// Squared distances closer than this (relative) are considered equal when
// looking for the minimum image.
const imageTieTolerance = 1e-10

// lexPositive returns true if the first non-zero component of s is positive.
func lexPositive(s [3]int) bool {
	for _, v := range s {
		if v != 0 {
			return v > 0
		}
	}
	return false
}

// lexLess compares shifts lexicographically.
func lexLess(a, b [3]int) bool {
	for x := 0; x < 3; x++ {
		if a[x] != b[x] {
			return a[x] < b[x]
		}
	}
	return false
}

// sortPairs sorts by neighbour, then by shift.
func sortPairs(p []pair) {
	sort.Slice(p, func(a, b int) bool {
		if p[a].j != p[b].j {
			return p[a].j < p[b].j
		}
		return lexLess(p[a].shift, p[b].shift)
	})
}

// minimumImage keeps, for each neighbour of atom i, only the image closest to i.
// Ties (within imageTieTolerance) go to the lexicographically smallest shift.
// The zero-shift self pair, if present, is not an image and is always kept.
// The result reuses the memory of p.
func minimumImage(p []pair, i int) []pair {
	sortPairs(p)
	ret := p[:0]
	var best pair
	have := false
	for _, c := range p {
		if c.j == i && c.shift == ([3]int{}) {
			if have {
				ret = append(ret, best)
				have = false
			}
			ret = append(ret, c)
			continue
		}
		if have && c.j != best.j {
			ret = append(ret, best)
			have = false
		}
		if !have {
			best, have = c, true
			continue
		}
		//shifts come in increasing order, so a tie keeps the current best.
		if c.d2 < best.d2-imageTieTolerance*best.d2 {
			best = c
		}
	}
	if have {
		ret = append(ret, best)
	}
	return ret
}
