/*
 * cbs.go, part of chemutil.
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
 */

//Package cbs implements some formulas to extrapolate properties calculated with
//finite basis sets to the complete basis set (CBS) limit.
//
//In all functions, x and y are basis set cardinal numbers (2 for DZ, 3 for TZ and so on),
//and the oep arguments are the values of the property obtained with the corresponding basis.
package cbs

import (
	"math"

	chem "github.com/rmera/chemutil"
	"gonum.org/v1/gonum/mat"
)

//Halkier returns the two-point extrapolation of Halkier et al. (Chem. Phys. Lett., 1998)
//from oepX, obtained with the basis of cardinal number x, and oepY, obtained with
//the basis of cardinal number x-1:
//	(oepX*x^3 - oepY*(x-1)^3) / (x^3 - (x-1)^3)
func Halkier(oepX, oepY, x float64) float64 {
	x3 := x * x * x
	y := x - 1
	y3 := y * y * y
	return (oepX*x3 - oepY*y3) / (x3 - y3)
}

//Jensen returns the two-point exponential extrapolation of Jensen (Theor. Chem. Acc. 113, 267, 2005)
//from oepX and oepY, obtained with bases of cardinal numbers x and y. b is the empirical
//decay constant:
//	(e^(b√x)*oepX - e^(b√y)*oepY) / (e^(b√x) - e^(b√y))
//The cardinal numbers must be adjacent, with y = x+1, otherwise an error wrapping
//chem.ErrPrecondition is returned.
func Jensen(oepX, oepY, x, y, b float64) (float64, error) {
	if y-x != 1 {
		return 0, chem.NewError(chem.ErrPrecondition, "Jensen", "cardinal numbers %v and %v are not adjacent", x, y)
	}
	ex := math.Exp(b * math.Sqrt(x))
	ey := math.Exp(b * math.Sqrt(y))
	return (ex*oepX - ey*oepY) / (ex - ey), nil
}

//Feller returns the value of the three-parameter exponential form of Feller
//(J. Chem. Phys. 96, 6104, 1992) at the cardinal number x:
//	p[0] + p[1]*e^(-√x*p[2])
//p[0] is the CBS limit of the property.
func Feller(x float64, p [3]float64) float64 {
	return p[0] + p[1]*math.Exp(-math.Sqrt(x)*p[2])
}

//FellerSlice evaluates Feller element-wise on xs. The returned slice has the same length as xs.
func FellerSlice(xs []float64, p [3]float64) []float64 {
	ret := make([]float64, len(xs))
	for i, x := range xs {
		ret[i] = Feller(x, p)
	}
	return ret
}

//FellerDense evaluates Feller element-wise on xs and puts the result in dst,
//which must be either empty or of the same shape as xs.
func FellerDense(dst *mat.Dense, xs mat.Matrix, p [3]float64) {
	dst.Apply(func(_, _ int, v float64) float64 { return Feller(v, p) }, xs)
}
