/*
 * cnt.go, part of chemutil.
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
	"io"
	"math"
	"os"
)

//CNTDiameter returns the diameter, in A, of the (n,m) carbon nanotube, and prints it,
//rounded to 2 decimals, to the standard output.
//n and m must satisfy n>=m>=0 and n>=1, otherwise an error wrapping ErrDomain is returned.
func CNTDiameter(n, m int) (float64, error) {
	d, err := FCNTDiameter(os.Stdout, n, m)
	return d, errDecorate(err, "CNTDiameter")
}

//FCNTDiameter is like CNTDiameter but prints the result to w.
func FCNTDiameter(w io.Writer, n, m int) (float64, error) {
	if n < m || n < 1 || m < 0 {
		return 0, newCError(ErrDomain, "FCNTDiameter", "invalid chirality (%d,%d), need n>=m>=0 and n>=1", n, m)
	}
	fn, fm := float64(n), float64(m)
	d := (CNTLattice / math.Pi) * math.Sqrt(fn*fn+fn*fm+fm*fm)
	if _, err := fmt.Fprintf(w, "%.2f Å\n", d); err != nil {
		return d, err
	}
	return d, nil
}
