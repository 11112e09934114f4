/*
 * xyz.go, part of chemutil.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	v3 "github.com/rmera/chemutil/v3"
)

//XYZFileRead reads an xyz file, returns a slice with the element symbols of the atoms,
//in file order, and a v3.Matrix with their coordinates, one row per atom.
//Files ending in .gz or .zst are decompressed on the fly.
//The error wraps ErrFormatMismatch if the number of atom records in the file
//differs from the number declared in its first line.
func XYZFileRead(xyzname string) ([]string, *v3.Matrix, error) {
	xyzfile, err := prepSource(xyzname)
	if err != nil {
		return nil, nil, err
	}
	defer xyzfile.Close()
	atoms, coords, err := XYZRead(xyzfile)
	if err != nil {
		return nil, nil, errDecorate(err, "XYZFileRead "+xyzname)
	}
	return atoms, coords, nil
}

//XYZRead reads an XYZ-formatted geometry from r. The first line must contain the
//number of atoms, the second one is a comment and is ignored. Every non-blank line
//after that must be an atom record: symbol, x, y and z, separated by whitespace.
//Symbols are not checked against any table.
func XYZRead(r io.Reader) ([]string, *v3.Matrix, error) {
	xyz := bufio.NewReader(r)
	line, err := xyz.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return nil, nil, newCError(ErrFormatMismatch, "XYZRead", "can't read the number of atoms: %v", err)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, nil, newCError(ErrFormatMismatch, "XYZRead", "ill formatted number of atoms %q", strings.TrimSpace(line))
	}
	if natoms <= 0 {
		return nil, nil, newCError(ErrFormatMismatch, "XYZRead", "the number of atoms must be positive, got %d", natoms)
	}
	//the comment line. We don't care about its contents, and if the file ends here
	//the count check below will catch it.
	if _, err = xyz.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, newCError(ErrFormatMismatch, "XYZRead", "error reading the comment line: %v", err)
	}
	//The count comes from the file, so it is not trusted for allocations.
	capacity := min(natoms, 1024)
	atoms := make([]string, 0, capacity)
	coords := make([]float64, 0, capacity*3)
	lineno := 2
	for {
		line, err = xyz.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, nil, newCError(ErrFormatMismatch, "XYZRead", "error reading line %d: %v", lineno+1, err)
		}
		lineno++
		fields := strings.Fields(line)
		if len(fields) != 0 {
			if len(fields) != 4 {
				return nil, nil, newCError(ErrFormatMismatch, "XYZRead", "line %d has %d fields, expected 4", lineno, len(fields))
			}
			var c [3]float64
			for i, f := range fields[1:] {
				var perr error
				c[i], perr = strconv.ParseFloat(f, 64)
				if perr != nil {
					return nil, nil, newCError(ErrFormatMismatch, "XYZRead", "line %d: %v", lineno, perr)
				}
			}
			atoms = append(atoms, fields[0])
			coords = append(coords, c[:]...)
			if len(atoms) > natoms {
				return nil, nil, newCError(ErrFormatMismatch, "XYZRead", "%d atoms declared, more found", natoms)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}
	if len(atoms) != natoms {
		return nil, nil, newCError(ErrFormatMismatch, "XYZRead", "%d atoms declared, %d found", natoms, len(atoms))
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, nil, errDecorate(err, "XYZRead")
	}
	return atoms, mcoords, nil
}

//XYZFileWrite writes the atoms with symbols atoms and coordinates coords in an XYZ file
//with name xyzname which will be created for that. If the file exists it will be overwritten.
//Files ending in .gz or .zst are compressed.
func XYZFileWrite(xyzname string, atoms []string, coords *v3.Matrix, comment string) (err error) {
	out, err := prepTarget(xyzname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return errDecorate(XYZWrite(out, atoms, coords, comment), "XYZFileWrite "+xyzname)
}

//XYZWrite writes the atoms with symbols atoms and coordinates coords in XYZ format to out.
//Line breaks in comment are replaced by spaces.
func XYZWrite(out io.Writer, atoms []string, coords *v3.Matrix, comment string) error {
	if coords == nil || len(atoms) != coords.NVecs() {
		n := 0
		if coords != nil {
			n = coords.NVecs()
		}
		return newCError(ErrFormatMismatch, "XYZWrite", "%d atoms but %d coordinates", len(atoms), n)
	}
	comment = strings.NewReplacer("\r", " ", "\n", " ").Replace(comment)
	if _, err := fmt.Fprintf(out, "%-4d\n%s\n", len(atoms), comment); err != nil {
		return err
	}
	for i, s := range atoms {
		c := coords.RawRowView(i)
		if _, err := fmt.Fprintf(out, "%-2s  %14.8f %14.8f %14.8f\n", s, c[0], c[1], c[2]); err != nil {
			return err
		}
	}
	return nil
}
