/*
 * errors.go, part of gomatsci.
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
	"fmt"

	matsci "github.com/rmera/gomatsci"
)

//All errors returned by this package implement matsci.Error, so the functions
//they pass through are recorded with Decorate. They are pointers, use errors.As
//to check for a given kind.

// InvalidGeometryError signals a degenerate or inconsistent cell, periodicity or
// set of positions.
type InvalidGeometryError struct {
	msg  string
	deco []string
}

func (err *InvalidGeometryError) Error() string {
	return "neighbours: invalid geometry: " + err.msg
}

func (err *InvalidGeometryError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// InvalidCutoffError signals a negative cutoff, or a species-pair cutoff map that
// lacks a pair of species present in the structure.
type InvalidCutoffError struct {
	msg  string
	deco []string
}

func (err *InvalidCutoffError) Error() string {
	return "neighbours: invalid cutoff: " + err.msg
}

func (err *InvalidCutoffError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// CapacityError is returned when a build finds more pairs than the maximum set with
// Options.MaxPairs. Needed is the number of pairs the build would have returned, so
// the caller can retry with a large enough limit.
type CapacityError struct {
	Needed   int
	Capacity int
	deco     []string
}

func (err *CapacityError) Error() string {
	return fmt.Sprintf("neighbours: %d pairs found, capacity is %d", err.Needed, err.Capacity)
}

func (err *CapacityError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

func geometryErr(caller, format string, a ...interface{}) error {
	return &InvalidGeometryError{msg: fmt.Sprintf(format, a...), deco: []string{caller}}
}

func cutoffErr(caller, format string, a ...interface{}) error {
	return &InvalidCutoffError{msg: fmt.Sprintf(format, a...), deco: []string{caller}}
}

//errDecorate adds the caller's name to the decoration of err, if err is a
//matsci.Error, and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(matsci.Error); ok {
		err2.Decorate(caller)
	}
	return err
}
