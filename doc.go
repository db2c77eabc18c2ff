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
Package matsci is the main package of the goMatSci library. It provides the interface
through which the computational primitives of the library see an atomic structure
(positions, species, lattice cell and periodicity flags), a minimal structure container
implementing it, and the error interface that all packages in the library implement.


	**goMatSci Capabilities**

	Builds neighbour lists (package neighbours) for periodic, partially periodic
	and non-periodic systems, with uniform or species-pair cutoffs. Cells smaller
	than the cutoff are handled by enumerating as many periodic images as needed.

	Applies the minimum image convention to arbitrary sets of distance vectors.

	Derives coordination numbers, neighbour graphs (gonum graphs) and distance
	statistics from a neighbour list.

	Reads/writes extended XYZ files (package xyz).

	The nblist command (cmd/nblist) runs all of the above from the command line.


goMatSci uses gonum (gonum.org/v1/gonum) for its numeric types. Cartesian coordinates
and lattice vectors are stored in v3.Matrix objects (Nx3 matrices, one vector per row).
*/
package matsci
