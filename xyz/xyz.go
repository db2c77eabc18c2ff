/*
 * xyz.go, part of gomatsci.
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

//Package xyz reads and writes structures in the extended XYZ format: the
//plain XYZ format where the comment line can carry the lattice vectors and
//the periodicity flags, as in
//
//	Lattice="5.43 0 0 0 5.43 0 0 0 5.43" pbc="T T T"
//
//The lattice vectors are given one after the other. If there is a Lattice but no pbc
//key, the structure is taken to be periodic along the three vectors. If there
//is no Lattice, it is not periodic. Only the symbol and the 3 coordinates of each
//atom are read, extra columns are ignored.
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	matsci "github.com/rmera/gomatsci"
	v3 "github.com/rmera/gomatsci/v3"
)

// Read reads one structure in extended XYZ format from r.
func Read(r io.Reader) (*matsci.Structure, error) {
	xyz := bufio.NewReader(r)
	line, err := xyz.ReadString('\n')
	if err != nil && line == "" {
		return nil, errorf("Read", "Can't read the number of atoms: %s", err)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms < 0 {
		return nil, errorf("Read", "Ill formatted number of atoms %q", strings.TrimSpace(line))
	}
	comment, err := xyz.ReadString('\n')
	if err != nil && (natoms > 0 || err != io.EOF) {
		return nil, errorf("Read", "Can't read the comment line: %s", err)
	}
	cell, pbc, err := parseComment(comment)
	if err != nil {
		return nil, decorate(err, "Read")
	}
	species := make([]string, natoms)
	coords := v3.Zeros(natoms)
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			return nil, errorf("Read", "Expected %d atoms, found only %d", natoms, i)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, errorf("Read", "Line for atom %d ill formed: %q", i, strings.TrimSpace(line))
		}
		species[i] = fields[0]
		var c [3]float64
		for x := range c {
			c[x], err = strconv.ParseFloat(fields[x+1], 64)
			if err != nil {
				return nil, errorf("Read", "Can't read coordinate %d of atom %d: %s", x, i, err)
			}
		}
		coords.SetVec(i, c)
	}
	S, err := matsci.NewStructure(coords, cell, pbc, species)
	if err != nil {
		return nil, decorate(err, "Read")
	}
	return S, nil
}

// ReadFile reads a structure from the extended XYZ file with the given name.
// Files with the .zst extension are decompressed with z-standard.
func ReadFile(name string) (*matsci.Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errorf("ReadFile", "Can't open %s: %s", name, err)
	}
	defer f.Close()
	var in io.Reader = f
	if strings.HasSuffix(strings.ToLower(name), ".zst") {
		z, err := zstd.NewReader(f)
		if err != nil {
			return nil, errorf("ReadFile", "Can't decompress %s: %s", name, err)
		}
		defer z.Close()
		in = z
	}
	S, err := Read(in)
	if err != nil {
		return nil, decorate(err, "ReadFile")
	}
	return S, nil
}

// parseComment gets the lattice and the periodicity from the comment line.
func parseComment(comment string) (*v3.Matrix, [3]bool, error) {
	var pbc [3]bool
	keys, err := keyValues(comment)
	if err != nil {
		return nil, pbc, decorate(err, "parseComment")
	}
	lat, ok := keys["lattice"]
	if !ok {
		return nil, pbc, nil
	}
	fields := strings.Fields(lat)
	if len(fields) != 9 {
		return nil, pbc, errorf("parseComment", "Lattice needs 9 numbers, got %d", len(fields))
	}
	data := make([]float64, 9)
	for i, f := range fields {
		data[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, pbc, errorf("parseComment", "Can't read lattice component %d: %s", i, err)
		}
	}
	cell, err := v3.NewMatrix(data)
	if err != nil {
		return nil, pbc, decorate(err, "parseComment")
	}
	p, ok := keys["pbc"]
	if !ok {
		return cell, [3]bool{true, true, true}, nil
	}
	flags := strings.Fields(p)
	if len(flags) != 3 {
		return nil, pbc, errorf("parseComment", "pbc needs 3 flags, got %q", p)
	}
	for i, f := range flags {
		switch strings.ToUpper(f) {
		case "T", "TRUE", "1":
			pbc[i] = true
		case "F", "FALSE", "0":
		default:
			return nil, pbc, errorf("parseComment", "Invalid pbc flag %q", f)
		}
	}
	return cell, pbc, nil
}

// keyValues splits a line of key=value or key="several values" entries.
// Keys are lowercased. Words without a '=' are ignored.
func keyValues(line string) (map[string]string, error) {
	ret := make(map[string]string)
	line = strings.TrimSpace(line)
	for line != "" {
		eq := strings.IndexAny(line, "= \t")
		if eq < 0 || line[eq] != '=' {
			//a lone word
			if eq < 0 {
				break
			}
			line = strings.TrimSpace(line[eq:])
			continue
		}
		key := strings.ToLower(line[:eq])
		line = line[eq+1:]
		var value string
		if strings.HasPrefix(line, "\"") {
			end := strings.IndexByte(line[1:], '"')
			if end < 0 {
				return nil, errorf("keyValues", "Unterminated quotes for key %s", key)
			}
			value = line[1 : end+1]
			line = line[end+2:]
		} else {
			end := strings.IndexAny(line, " \t")
			if end < 0 {
				end = len(line)
			}
			value = line[:end]
			line = line[end:]
		}
		ret[key] = value
		line = strings.TrimSpace(line)
	}
	return ret, nil
}

// Write writes atoms to w in extended XYZ format. The lattice and pbc keys are
// written before comment, which should not contain newlines. Atoms without
// species are written as "X".
func Write(w io.Writer, atoms matsci.AtomSet, comment string) error {
	if strings.ContainsAny(comment, "\n\r") {
		return errorf("Write", "The comment can't have line breaks")
	}
	out := bufio.NewWriter(w)
	n := atoms.Len()
	fmt.Fprintf(out, "%d\n", n)
	if cell, pbc := atoms.Cell(), atoms.PBC(); hasLattice(cell, pbc) {
		fmt.Fprint(out, "Lattice=\"")
		for a := 0; a < 3; a++ {
			v := cell.Vec(a)
			if a > 0 {
				fmt.Fprint(out, " ")
			}
			fmt.Fprintf(out, "%.8f %.8f %.8f", v[0], v[1], v[2])
		}
		fmt.Fprintf(out, "\" pbc=\"%s %s %s\"", flag(pbc[0]), flag(pbc[1]), flag(pbc[2]))
		if comment != "" {
			fmt.Fprint(out, " ")
		}
	}
	fmt.Fprintf(out, "%s\n", comment)
	species := atoms.Species()
	coords := atoms.Coords()
	for i := 0; i < n; i++ {
		symbol := "X"
		if species != nil {
			symbol = species[i]
		}
		c := coords.Vec(i)
		if _, err := fmt.Fprintf(out, "%-2s  %14.8f %14.8f %14.8f\n", symbol, c[0], c[1], c[2]); err != nil {
			return errorf("Write", "Can't write atom %d: %s", i, err)
		}
	}
	if err := out.Flush(); err != nil {
		return errorf("Write", "%s", err)
	}
	return nil
}

// WriteFile writes atoms to a new file with the given name. If the file
// exists it will be overwritten. Files with the .zst extension are
// compressed with z-standard.
func WriteFile(name string, atoms matsci.AtomSet, comment string) error {
	f, err := os.Create(name)
	if err != nil {
		return errorf("WriteFile", "%s", err)
	}
	defer f.Close()
	var out io.WriteCloser = nopCloser{f}
	if strings.HasSuffix(strings.ToLower(name), ".zst") {
		out, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return errorf("WriteFile", "Can't compress %s: %s", name, err)
		}
	}
	if err = Write(out, atoms, comment); err != nil {
		out.Close()
		return decorate(err, "WriteFile")
	}
	if err = out.Close(); err != nil {
		return errorf("WriteFile", "%s", err)
	}
	if err = f.Close(); err != nil {
		return errorf("WriteFile", "%s", err)
	}
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// hasLattice returns false for non-periodic structures with no cell, which are
// written as plain XYZ.
func hasLattice(cell *v3.Matrix, pbc [3]bool) bool {
	if cell == nil || cell.IsEmpty() {
		return false
	}
	if pbc[0] || pbc[1] || pbc[2] {
		return true
	}
	for a := 0; a < 3; a++ {
		if cell.Vec(a) != ([3]float64{}) {
			return true
		}
	}
	return false
}

func flag(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

// Error is the error type of the package. It implements matsci.Error.
type Error struct {
	msg  string
	deco []string
}

func (err *Error) Error() string { return "xyz: " + err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

func errorf(caller, format string, a ...interface{}) error {
	return &Error{msg: fmt.Sprintf(format, a...), deco: []string{caller}}
}

func decorate(err error, caller string) error {
	if e, ok := err.(matsci.Error); ok {
		e.Decorate(caller)
	}
	return err
}
