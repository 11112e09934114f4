/*
 * atomicdata.go, part of chemutil.
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

import "sort"

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//Only the first two periods are present.
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"He": 0.28,
	"Li": 1.28,
	"Be": 0.96,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Ne": 0.58,
}

//CovalentRadius returns the covalent radius, in A, for the element with the given symbol.
//It returns an error wrapping ErrUnknownElement if the element is not in the table.
func CovalentRadius(symbol string) (float64, error) {
	r, ok := symbolCovrad[symbol]
	if !ok {
		return 0, newCError(ErrUnknownElement, "CovalentRadius", "no covalent radius for %q", symbol)
	}
	return r, nil
}

//KnownElements returns the symbols of the elements in the covalent radii table, sorted.
func KnownElements() []string {
	ret := make([]string, 0, len(symbolCovrad))
	for k := range symbolCovrad {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
