/*
 * workspace.go, part of gomatsci.
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
	matsci "github.com/rmera/gomatsci"
	"go.uber.org/zap"
)

// Workspace keeps the scratch memory of neighbour list builds, so repeated builds
// (for instance, along a trajectory) don't allocate it again. It also remembers the
// last bin grid dimensions and reuses them while the cutoff, the extent of the
// system and the number of binned atoms stay the same.
// The lists returned never share memory with the Workspace.
// A Workspace can't be used by two builds at the same time.
// The zero value is ready to use.
type Workspace struct {
	pos  [][3]float64
	wrap [][3]int

	raw     []entry
	entries []entry
	binOf   []int
	start   []int
	cursor  []int
	home    []int

	order   []int
	buckets [][]pair
	mirror  [][]pair

	bins       [3]int
	binsKey    gridKey
	binsCached bool
	binsHits   int
}

// NewWorkspace returns an empty Workspace.
func NewWorkspace() *Workspace {
	return new(Workspace)
}

// Build returns the neighbour list of atoms for the given cutoff. Only the first
// element of options is used. If none is given, DefaultOptions() is used.
// It creates a new Workspace for the build; use Workspace.Build to reuse one.
func Build(atoms matsci.AtomSet, cutoff *Cutoff, options ...*Options) (*List, error) {
	return NewWorkspace().Build(atoms, cutoff, options...)
}

// Build returns the neighbour list of atoms for the given cutoff, using the memory
// of the workspace. See the package documentation for the format of the list.
// On error, no list is returned.
func (w *Workspace) Build(atoms matsci.AtomSet, cutoff *Cutoff, options ...*Options) (*List, error) {
	o := getOptions(options)
	log := o.Logger()
	if atoms == nil {
		return nil, geometryErr("Build", "no structure given")
	}
	f, err := w.normalize(atoms)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	t, err := cutoff.resolve(atoms.Species(), f.n)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	if f.n == 0 || t.max == 0 {
		log.Debug("empty neighbour list", zap.Int("atoms", f.n), zap.Float64("cutoff", t.max))
		return emptyList(f, o), nil
	}
	im := replicate(f, t.max)
	g := w.buildGrid(f, im, t.max)
	log.Debug("neighbour grid built",
		zap.Int("atoms", f.n),
		zap.Float64("cutoff", t.max),
		zap.Ints("replication", im.k[:]),
		zap.Int("shifts", len(im.shifts)),
		zap.Int("entries", len(g.entries)),
		zap.Ints("bins", g.n[:]),
		zap.Int("cachedBinHits", w.binsHits))
	if err := w.enumerate(f, im, g, t, o); err != nil {
		return nil, errDecorate(err, "Build")
	}
	L, err := w.assemble(f, o)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	log.Debug("neighbour list built",
		zap.Int("pairs", L.Len()),
		zap.Bool("full", o.Full()),
		zap.Bool("multipleImages", o.MultipleImages()))
	return L, nil
}

// grow returns s with length n, reusing its memory if possible. The contents
// are not cleared.
func grow[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}
