/*
 * doc.go, part of chemutil.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package chem is the main package of the chemutil library. It provides a few small
utilities used in computational chemistry work.



	**Capabilities**


    Reads/writes XYZ files, plain or compressed with gzip or zstd.

    Finds bonds in a molecule from the covalent radii of its atoms. Only the
	elements of the first two periods are supported.

    Calculates the diameter of a (n,m) carbon nanotube.

    Provides unit conversion factors.

    Complete basis set extrapolations are in the cbs subpackage, plots of them
	in chemplot, and spreadsheet output of bonds in chemxl.


chemutil uses the Matrix type from the v3 subpackage for coordinates, based on gonum's
mat.Dense. Each row of a Matrix represents one point in space.

Errors returned by the package wrap one of ErrFormatMismatch, ErrUnknownElement,
ErrPrecondition and ErrDomain, and can be checked with errors.Is.*/
package chem
