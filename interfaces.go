/*
 * interfaces.go, part of gomatsci.
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

import v3 "github.com/rmera/gomatsci/v3"

// AtomSet is the read-only view of an atomic structure that the
// computational primitives of the library consume. Implementations
// must not change the returned objects while a computation that received
// them is running. None of the consumers in this library modifies them.
type AtomSet interface {
	//Len returns the number of atoms.
	Len() int

	//Coords returns the cartesian positions, one atom per row (Len()x3).
	Coords() *v3.Matrix

	//Cell returns the lattice vectors, one per row (3x3). Along non-periodic
	//axes the corresponding vector may be zero.
	Cell() *v3.Matrix

	//PBC returns whether the system is periodic along each lattice vector.
	PBC() [3]bool

	//Species returns one label per atom, or nil if the structure has no species
	//information.
	Species() []string
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call adds the given string to the "decoration" slice and returns the resulting slice. If passed an empty string, it just returns the current value.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// CError is the error type for the matsci package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}
