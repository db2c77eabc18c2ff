/*
 * mic.go, part of gomatsci.
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
	"gonum.org/v1/gonum/mat"
)

// MIC returns the displacement vectors in dr (one per row) replaced by their
// minimum-image equivalents: along each periodic axis, the nearest whole
// number of lattice vectors is subtracted, so the fractional coordinate of the
// result is within [-0.5, 0.5]. Non-periodic components are returned unchanged.
// dr is not modified. For strongly skewed cells the result is not always the
// shortest image; use a List built with MultipleImages(false) when that matters.
func MIC(dr, cell *v3.Matrix, pbc [3]bool) (*v3.Matrix, error) {
	if dr == nil {
		return nil, geometryErr("MIC", "no vectors given")
	}
	if !dr.IsEmpty() {
		if _, c := dr.Dims(); c != 3 {
			return nil, geometryErr("MIC", "the vectors have %d components, expected 3", c)
		}
	}
	n := dr.NVecs()
	if cell == nil || cell.IsEmpty() {
		return nil, geometryErr("MIC", "no cell given")
	}
	if r, c := cell.Dims(); r != 3 || c != 3 {
		return nil, geometryErr("MIC", "the cell is %dx%d, expected 3x3", r, c)
	}
	var lattice [3][3]float64
	for a := 0; a < 3; a++ {
		lattice[a] = cell.Vec(a)
		if !finite(lattice[a]) {
			return nil, geometryErr("MIC", "lattice vector %d is not finite: %v", a, lattice[a])
		}
	}
	_, recip, err := effectiveBasis(lattice, pbc)
	if err != nil {
		return nil, errDecorate(err, "MIC")
	}
	ret := v3.Zeros(n)
	if n == 0 {
		return ret, nil
	}
	ret.Copy(dr)
	R := mat.NewDense(3, 3, nil)
	for a := 0; a < 3; a++ {
		for x := 0; x < 3; x++ {
			R.Set(x, a, recip[a][x])
		}
	}
	frac := v3.Zeros(n)
	frac.Mul(dr, R)
	for i := 0; i < n; i++ {
		f := frac.Vec(i)
		for a := 0; a < 3; a++ {
			if pbc[a] {
				f[a] = math.Round(f[a])
			} else {
				f[a] = 0
			}
		}
		frac.SetVec(i, f)
	}
	shift := v3.Zeros(n)
	shift.Mul(frac, cell)
	ret.Sub(ret.Dense, shift.Dense)
	return ret, nil
}
