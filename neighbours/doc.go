/*
 * doc.go, part of gomatsci.
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

/*
Package neighbours builds neighbour lists for atomic structures: given the positions,
the (possibly periodic) cell and one or more cutoff radii, it finds every pair of atoms,
including pairs between an atom and its own periodic images, whose separation is
within the cutoff.

A build is a single pass:

	positions are wrapped into the periodic cell along periodic axes (geometry.go),
	the periodic shifts that can produce neighbours are enumerated (images.go),
	home atoms and the replicas they need are sorted into a grid of bins whose
	edge is at least the cutoff (bins.go),
	each home atom is compared against the 27 bins around its own (enumerate.go),
	candidates are filtered by exact distance and, optionally, reduced to the
	minimum image (filter.go),
	the result is merged in a fixed order (output.go).

Cells smaller than the cutoff are fine: every image within the cutoff is enumerated,
so an atom may appear several times as a neighbour of the same atom, each time with
a different shift.

The list is, by default, a half list: each interaction appears once, with i < j, or,
for an atom and its own image, i == j and a shift vector whose first non-zero component
is positive. Shifts are given with respect to the positions as supplied by the caller,
so that

	vector = pos[j] - pos[i] + shift[0]*cell[0] + shift[1]*cell[1] + shift[2]*cell[2]

Example:

	s, _ := matsci.NewStructure(coords, cell, [3]bool{true, true, true}, nil)
	o := neighbours.DefaultOptions()
	o.Vectors(true)
	list, err := neighbours.Build(s, neighbours.Uniform(2.5), o)

Repeated builds can share a Workspace, which keeps the scratch memory between calls.
*/
package neighbours
