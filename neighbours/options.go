/*
 * options.go, part of gomatsci.
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
	"runtime"

	"go.uber.org/zap"
)

// Options for a neighbour list build. Each method returns the current value
// of the option and, if a valid value is given, sets it.
type Options struct {
	self      bool
	multiple  bool
	full      bool
	distances bool
	vectors   bool
	cpus      int
	maxPairs  int
	logger    *zap.Logger
}

//Returns an Options with the default options.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.self = false
	ret.multiple = true
	ret.full = false
	ret.distances = true
	ret.vectors = false
	ret.cpus = runtime.NumCPU()
	ret.maxPairs = 0
	ret.logger = zap.NewNop()
	return ret
}

//Returns whether an atom is listed as its own neighbour with a zero shift
//(distance 0), and sets the value to the one given, if any. Off by default.
func (o *Options) SelfInteraction(self ...bool) bool {
	ret := o.self
	if len(self) > 0 {
		o.self = self[0]
	}
	return ret
}

//Returns whether all the periodic images of a neighbour within the cutoff
//are listed (true, the default, needed to sum pair potentials), or only the
//closest one (minimum image convention). Sets the value, if given.
func (o *Options) MultipleImages(multiple ...bool) bool {
	ret := o.multiple
	if len(multiple) > 0 {
		o.multiple = multiple[0]
	}
	return ret
}

//Returns whether each pair is listed twice, as (i, j, S) and (j, i, -S), and
//sets the value, if given. Off by default (half list).
func (o *Options) Full(full ...bool) bool {
	ret := o.full
	if len(full) > 0 {
		o.full = full[0]
	}
	return ret
}

//Returns whether the distances are stored in the list, and sets it, if given.
func (o *Options) Distances(distances ...bool) bool {
	ret := o.distances
	if len(distances) > 0 {
		o.distances = distances[0]
	}
	return ret
}

//Returns whether the distance vectors are stored in the list, and sets it, if given.
func (o *Options) Vectors(vectors ...bool) bool {
	ret := o.vectors
	if len(vectors) > 0 {
		o.vectors = vectors[0]
	}
	return ret
}

//Returns the current value of the Cpus options (the number of gorutines to
//use on the concurrent search) and sets it, if
//a valid value is given
func (o *Options) Cpus(cpus ...int) int {
	ret := o.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		o.cpus = cpus[0]
	}
	return ret
}

//Returns the maximum number of pairs a build may return (0 means no limit),
//and sets it, if a non-negative value is given. Builds that find more pairs
//fail with a CapacityError.
func (o *Options) MaxPairs(max ...int) int {
	ret := o.maxPairs
	if len(max) > 0 && max[0] >= 0 {
		o.maxPairs = max[0]
	}
	return ret
}

//Returns the logger used for build diagnostics and sets it, if a non-nil
//one is given. The default discards everything.
func (o *Options) Logger(logger ...*zap.Logger) *zap.Logger {
	ret := o.logger
	if len(logger) > 0 && logger[0] != nil {
		o.logger = logger[0]
	}
	return ret
}

//getOptions returns the first element of options, or the defaults.
func getOptions(o []*Options) *Options {
	if len(o) > 0 && o[0] != nil {
		if o[0].logger == nil {
			o[0].logger = zap.NewNop()
		}
		if o[0].cpus < 1 {
			o[0].cpus = 1
		}
		return o[0]
	}
	return DefaultOptions()
}
