/*
 * structure.go, part of gomatsci.
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

package matsci

import (
	"fmt"

	v3 "github.com/rmera/gomatsci/v3"
)

// Structure is a minimal atomic structure: positions, lattice cell,
// periodicity flags and (optionally) species labels. It implements AtomSet.
type Structure struct {
	coords  *v3.Matrix
	cell    *v3.Matrix
	pbc     [3]bool
	species []string
}

// NewStructure returns a Structure with the given data. The data is not copied.
// cell can be nil for non-periodic systems, in which case a zero cell is used.
// species can be nil, otherwise it must have one label per atom.
func NewStructure(coords, cell *v3.Matrix, pbc [3]bool, species []string) (*Structure, error) {
	if coords == nil {
		coords = v3.Zeros(0)
	}
	if cell == nil {
		cell = v3.Zeros(3)
	}
	if r, c := cell.Dims(); r != 3 || c != 3 {
		return nil, &CError{fmt.Sprintf("The cell must be a 3x3 matrix, got %dx%d", r, c), []string{"NewStructure"}}
	}
	n := coords.NVecs()
	if species != nil && len(species) != n {
		return nil, &CError{fmt.Sprintf("%d species labels for %d atoms", len(species), n), []string{"NewStructure"}}
	}
	return &Structure{coords: coords, cell: cell, pbc: pbc, species: species}, nil
}

// Len returns the number of atoms in the structure.
func (S *Structure) Len() int { return S.coords.NVecs() }

func (S *Structure) Coords() *v3.Matrix { return S.coords }

func (S *Structure) Cell() *v3.Matrix { return S.cell }

func (S *Structure) PBC() [3]bool { return S.pbc }

func (S *Structure) Species() []string { return S.species }

// SetPBC sets the periodicity flags.
func (S *Structure) SetPBC(pbc [3]bool) { S.pbc = pbc }

// Copy returns a deep copy of the structure.
func (S *Structure) Copy() *Structure {
	ret := &Structure{pbc: S.pbc}
	ret.coords = v3.Zeros(S.coords.NVecs())
	if ret.coords.NVecs() > 0 {
		ret.coords.Copy(S.coords)
	}
	ret.cell = v3.Zeros(3)
	ret.cell.Copy(S.cell)
	if S.species != nil {
		ret.species = append([]string(nil), S.species...)
	}
	return ret
}

// Supercell returns a new structure with the cell repeated n[i] times along
// each lattice vector. Atoms are ordered image by image, the original
// structure first. Periodicity flags are kept.
func (S *Structure) Supercell(n [3]int) (*Structure, error) {
	for _, v := range n {
		if v < 1 {
			return nil, &CError{fmt.Sprintf("Invalid supercell repetitions %v", n), []string{"Supercell"}}
		}
	}
	atoms := S.Len()
	total := atoms * n[0] * n[1] * n[2]
	coords := v3.Zeros(total)
	var species []string
	if S.species != nil {
		species = make([]string, 0, total)
	}
	a, b, c := S.cell.Vec(0), S.cell.Vec(1), S.cell.Vec(2)
	k := 0
	for i0 := 0; i0 < n[0]; i0++ {
		for i1 := 0; i1 < n[1]; i1++ {
			for i2 := 0; i2 < n[2]; i2++ {
				f := [3]float64{float64(i0), float64(i1), float64(i2)}
				for at := 0; at < atoms; at++ {
					p := S.coords.Vec(at)
					for x := 0; x < 3; x++ {
						p[x] += f[0]*a[x] + f[1]*b[x] + f[2]*c[x]
					}
					coords.SetVec(k, p)
					k++
				}
				if species != nil {
					species = append(species, S.species...)
				}
			}
		}
	}
	cell := v3.Zeros(3)
	for i, v := range [3][3]float64{a, b, c} {
		m := float64(n[i])
		cell.SetVec(i, [3]float64{v[0] * m, v[1] * m, v[2] * m})
	}
	return NewStructure(coords, cell, S.pbc, species)
}
