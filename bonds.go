/*
 * bonds.go, part of chemutil.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package chem

import (
	"fmt"
	"strings"

	v3 "github.com/rmera/chemutil/v3"
)

//Pair is a pair of 0-based atom indexes, with I < J.
type Pair struct {
	I, J int
}

//Bond is a bond between the atoms At1 and At2 (0-based indexes, At1 < At2)
//found at the distance Dist.
type Bond struct {
	Index int //order in which the bond was found
	At1   int
	At2   int
	Dist  float64
}

//Pair returns the pair of atoms joined by the bond.
func (B *Bond) Pair() Pair {
	return Pair{B.At1, B.At2}
}

//BondMap maps pairs of atoms to the distance between them.
//It keeps the insertion order.
type BondMap struct {
	bonds []*Bond
	index map[Pair]*Bond
}

func newBondMap() *BondMap {
	return &BondMap{bonds: make([]*Bond, 0, 10), index: make(map[Pair]*Bond)}
}

//add panics on i>=j or on a repeated pair, both would be programming errors.
func (B *BondMap) add(i, j int, d float64) {
	p := Pair{i, j}
	if i >= j {
		panic(fmt.Sprintf("BondMap: invalid pair %d-%d", i, j))
	}
	if _, ok := B.index[p]; ok {
		panic(fmt.Sprintf("BondMap: pair %d-%d already present", i, j))
	}
	b := &Bond{Index: len(B.bonds), At1: i, At2: j, Dist: d}
	B.bonds = append(B.bonds, b)
	B.index[p] = b
}

//Len returns the number of bonds in the map.
func (B *BondMap) Len() int {
	return len(B.bonds)
}

//Pairs returns the bonded pairs, in insertion order.
func (B *BondMap) Pairs() []Pair {
	ret := make([]Pair, len(B.bonds))
	for i, b := range B.bonds {
		ret[i] = b.Pair()
	}
	return ret
}

//Bonds returns the bonds in insertion order. The slice is a copy,
//the bonds themselves are not.
func (B *BondMap) Bonds() []*Bond {
	ret := make([]*Bond, len(B.bonds))
	copy(ret, B.bonds)
	return ret
}

//Dist returns the distance between the atoms i and j, and whether they are bonded.
//The order of i and j doesn't matter.
func (B *BondMap) Dist(i, j int) (float64, bool) {
	if i > j {
		i, j = j, i
	}
	b, ok := B.index[Pair{i, j}]
	if !ok {
		return 0, false
	}
	return b.Dist, true
}

func (B *BondMap) String() string {
	var s strings.Builder
	s.WriteString("{")
	for i, b := range B.bonds {
		if i > 0 {
			s.WriteString(", ")
		}
		fmt.Fprintf(&s, "(%d, %d): %.4f", b.At1, b.At2, b.Dist)
	}
	s.WriteString("}")
	return s.String()
}

//CountBonds returns the pairs of atoms that are closer than the sum of their covalent
//radii plus a tolerance. The tolerance is delta[0], if given, or DefaultBondTolerance
//otherwise, in A. atoms contains the element symbols of the atoms, and coords their coordinates,
//in A.
//Every pair i<j is tested, i ascending, then j ascending, and the bonds are stored in that order.
//It returns an error wrapping ErrUnknownElement if an atom has no covalent radius.
func CountBonds(atoms []string, coords *v3.Matrix, delta ...float64) (*BondMap, error) {
	// O(N^2), it's really not thought
	//for proteins or macromolecules.
	tol := DefaultBondTolerance
	if len(delta) > 0 {
		tol = delta[0]
	}
	tot := len(atoms)
	if coords == nil || coords.NVecs() != tot {
		return nil, newCError(ErrFormatMismatch, "CountBonds", "%d atoms but coordinates don't match", tot)
	}
	radii := make([]float64, tot)
	for i, s := range atoms {
		r, err := CovalentRadius(s)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("CountBonds: atom %d", i))
		}
		radii[i] = r
	}
	bonds := newBondMap()
	for i := 0; i < tot-1; i++ {
		for j := i + 1; j < tot; j++ {
			d := coords.Dist(i, j)
			if d < radii[i]+radii[j]+tol {
				bonds.add(i, j, d)
			}
		}
	}
	return bonds, nil
}
