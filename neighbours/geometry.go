/*
 * geometry.go, part of gomatsci.
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

	matsci "github.com/rmera/gomatsci"
	v3 "github.com/rmera/gomatsci/v3"
	"gonum.org/v1/gonum/mat"
)

//Relative tolerance under which lattice vectors are considered
//collinear or coplanar.
const degenerate = 1e-10

// frame is the canonical form of a structure used during one build.
// pos[i] = coords[i] + wrap[i][0]*cell[0] + wrap[i][1]*cell[1] + wrap[i][2]*cell[2]
type frame struct {
	n    int
	pos  [][3]float64
	wrap [][3]int
	pbc  [3]bool
	cell [3][3]float64
	//basis is the cell with non-periodic lattice vectors replaced, if needed,
	//so that it spans the space. recip[a] is the reciprocal vector such that
	//Dot(recip[a], r) is the fractional coordinate of r along basis[a].
	basis   [3][3]float64
	recip   [3][3]float64
	spacing [3]float64 //distance between lattice planes, for each axis.
	lo, hi  [3]float64 //bounding box of pos
}

// normalize validates the structure and returns it in canonical form: positions
// wrapped into the cell along periodic axes, untouched along the other ones.
// The slices in the frame belong to the workspace.
func (w *Workspace) normalize(atoms matsci.AtomSet) (*frame, error) {
	f := &frame{n: atoms.Len(), pbc: atoms.PBC()}
	if f.n < 0 {
		return nil, geometryErr("normalize", "negative number of atoms")
	}
	coords := atoms.Coords()
	if f.n > 0 {
		if coords == nil {
			return nil, geometryErr("normalize", "no coordinates for %d atoms", f.n)
		}
		if r, c := coords.Dims(); r != f.n || c != 3 {
			return nil, geometryErr("normalize", "coordinates are %dx%d, expected %dx3", r, c, f.n)
		}
	}
	if cell := atoms.Cell(); cell != nil && !cell.IsEmpty() {
		if r, c := cell.Dims(); r != 3 || c != 3 {
			return nil, geometryErr("normalize", "the cell is %dx%d, expected 3x3", r, c)
		}
		for a := 0; a < 3; a++ {
			f.cell[a] = cell.Vec(a)
			if !finite(f.cell[a]) {
				return nil, geometryErr("normalize", "lattice vector %d is not finite: %v", a, f.cell[a])
			}
		}
	}
	var err error
	f.basis, f.recip, err = effectiveBasis(f.cell, f.pbc)
	if err != nil {
		return nil, errDecorate(err, "normalize")
	}
	for a := 0; a < 3; a++ {
		f.spacing[a] = 1 / v3.Norm(f.recip[a])
	}
	w.pos = grow(w.pos, f.n)
	w.wrap = grow(w.wrap, f.n)
	f.pos, f.wrap = w.pos, w.wrap
	for a := 0; a < 3; a++ {
		f.lo[a] = math.Inf(1)
		f.hi[a] = math.Inf(-1)
	}
	for i := 0; i < f.n; i++ {
		r := coords.Vec(i)
		if !finite(r) {
			return nil, geometryErr("normalize", "position of atom %d is not finite: %v", i, r)
		}
		var s [3]int
		for a := 0; a < 3; a++ {
			if f.pbc[a] {
				s[a] = -int(math.Floor(v3.Dot(f.recip[a], r)))
			}
		}
		f.wrap[i] = s
		f.pos[i] = translate(r, s, &f.cell)
		for a := 0; a < 3; a++ {
			f.lo[a] = math.Min(f.lo[a], f.pos[i][a])
			f.hi[a] = math.Max(f.hi[a], f.pos[i][a])
		}
	}
	return f, nil
}

// diameter returns the length of the diagonal of the bounding box of the
// wrapped positions.
func (f *frame) diameter() float64 {
	if f.n == 0 {
		return 0
	}
	return v3.Norm([3]float64{f.hi[0] - f.lo[0], f.hi[1] - f.lo[1], f.hi[2] - f.lo[2]})
}

// effectiveBasis checks the lattice vectors along periodic axes and returns a basis
// spanning the space that contains them, together with its reciprocal vectors.
// If the given cell doesn't span the space (which is common for non-periodic axes,
// often given as zero vectors) the non-periodic vectors are replaced by unit vectors
// orthogonal to the periodic ones.
func effectiveBasis(cell [3][3]float64, pbc [3]bool) (basis, recip [3][3]float64, err error) {
	var periodic, other []int
	for a := 0; a < 3; a++ {
		if !pbc[a] {
			other = append(other, a)
			continue
		}
		if v3.Norm(cell[a]) == 0 {
			return basis, recip, geometryErr("effectiveBasis", "lattice vector %d has zero length but the cell is periodic along it", a)
		}
		periodic = append(periodic, a)
	}
	switch len(periodic) {
	case 2:
		a, b := cell[periodic[0]], cell[periodic[1]]
		if v3.Norm(v3.Cross(a, b)) <= degenerate*v3.Norm(a)*v3.Norm(b) {
			return basis, recip, geometryErr("effectiveBasis", "periodic lattice vectors %v and %v are collinear", a, b)
		}
	case 3:
		if !spans(cell) {
			return basis, recip, geometryErr("effectiveBasis", "periodic lattice vectors %v are coplanar", cell)
		}
	}
	basis = cell
	if !spans(cell) {
		switch len(periodic) {
		case 0:
			basis = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
		case 1:
			u := unit(cell[periodic[0]])
			//the cartesian axis least aligned with u gives a well-conditioned cross product.
			e := [3]float64{}
			best := 0
			for x := 1; x < 3; x++ {
				if math.Abs(u[x]) < math.Abs(u[best]) {
					best = x
				}
			}
			e[best] = 1
			v1 := unit(v3.Cross(u, e))
			basis[other[0]] = v1
			basis[other[1]] = unit(v3.Cross(u, v1))
		case 2:
			basis[other[0]] = unit(v3.Cross(cell[periodic[0]], cell[periodic[1]]))
		}
	}
	B := mat.NewDense(3, 3, nil)
	for a := 0; a < 3; a++ {
		B.SetRow(a, basis[a][:])
	}
	var inv mat.Dense
	if err := inv.Inverse(B); err != nil {
		return basis, recip, geometryErr("effectiveBasis", "can't invert the cell %v: %s", basis, err)
	}
	//r = f*B, so f = r*inv(B) and the reciprocal vectors are the columns of inv(B).
	for a := 0; a < 3; a++ {
		for x := 0; x < 3; x++ {
			recip[a][x] = inv.At(x, a)
		}
	}
	return basis, recip, nil
}

// spans returns true if the three vectors are linearly independent.
func spans(cell [3][3]float64) bool {
	scale := v3.Norm(cell[0]) * v3.Norm(cell[1]) * v3.Norm(cell[2])
	if scale == 0 {
		return false
	}
	return math.Abs(v3.Dot(cell[0], v3.Cross(cell[1], cell[2]))) > degenerate*scale
}

// translate returns r + s[0]*cell[0] + s[1]*cell[1] + s[2]*cell[2]
func translate(r [3]float64, s [3]int, cell *[3][3]float64) [3]float64 {
	for a := 0; a < 3; a++ {
		if s[a] == 0 {
			continue
		}
		fs := float64(s[a])
		r[0] += fs * cell[a][0]
		r[1] += fs * cell[a][1]
		r[2] += fs * cell[a][2]
	}
	return r
}

func unit(v [3]float64) [3]float64 {
	n := v3.Norm(v)
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}

func finite(v [3]float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
