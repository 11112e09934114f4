/*
 * conversion.go, part of chemutil.
 *
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
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chem

//This provides useful conversion factors and other constants

//Conversions
const (
	Deg2Rad = 0.0174533
	Rad2Deg = 1 / 0.0174533
	H2Kcal  = 627.509474 //Hartree 2 Kcal/mol
	Kcal2H  = 1 / 627.509474
	H2KJ    = 2625.499639 //Hartree 2 KJ/mol
	KJ2H    = 1 / 2625.499639
	H2EV    = 27.211386246 //Hartree 2 eV
	EV2H    = 1 / 27.211386246
	H2Cm    = 219474.6313632 //Hartree 2 cm^-1
	Cm2H    = 1 / 219474.6313632
	KJ2Kcal = 1 / 4.184
	Kcal2KJ = 4.184
	A2Bohr  = 1.889726125
	Bohr2A  = 1 / 1.889726125
)

//Others
const (
	CHDist               = 1.098 //C(sp3)--H distance in A
	CNTLattice           = 2.46  //graphene lattice constant, in A. sqrt(3) times the C-C distance.
	DefaultBondTolerance = 0.25  //in A, added to the sum of covalent radii when looking for bonds.
)
