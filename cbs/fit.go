/*
 * fit.go, part of chemutil.
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

package cbs

import (
	"math"

	chem "github.com/rmera/chemutil"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

//FellerFit fits the parameters of the Feller form (see Feller) to the values ys obtained
//with the bases of cardinal numbers xs, by least squares. At least 3 points are needed.
//The CBS estimate is the first element of the returned array. The decay constant, p[2],
//is kept positive.
func FellerFit(xs, ys []float64) ([3]float64, error) {
	var p [3]float64
	if len(xs) != len(ys) {
		return p, chem.NewError(chem.ErrPrecondition, "FellerFit", "%d cardinal numbers but %d values", len(xs), len(ys))
	}
	if len(xs) < 3 {
		return p, chem.NewError(chem.ErrPrecondition, "FellerFit", "at least 3 points are needed, got %d", len(xs))
	}
	sq := make([]float64, len(xs))
	for i, x := range xs {
		if x <= 0 {
			return p, chem.NewError(chem.ErrPrecondition, "FellerFit", "cardinal numbers must be positive, got %v", x)
		}
		sq[i] = math.Sqrt(x)
	}
	e := make([]float64, len(xs))
	//For a given decay constant, the other two parameters are the intercept
	//and slope of the linear regression of ys on exp(-sqrt(x)*p[2]).
	//Only the decay constant is optimized, as exp(u) so it stays positive.
	linear := func(u float64) (p0, p1, ssr float64) {
		c := math.Exp(u)
		for i := range sq {
			e[i] = math.Exp(-sq[i] * c)
		}
		p0, p1 = stat.LinearRegression(e, ys, nil, false)
		if math.IsNaN(p0) || math.IsNaN(p1) {
			p0, p1 = stat.Mean(ys, nil), 0
		}
		for i := range e {
			r := p0 + p1*e[i] - ys[i]
			ssr += r * r
		}
		return p0, p1, ssr
	}
	problem := optimize.Problem{
		Func: func(u []float64) float64 {
			_, _, ssr := linear(u[0])
			return ssr
		},
	}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{Absolute: 1e-14, Iterations: 50},
	}
	result, err := optimize.Minimize(problem, []float64{0}, settings, &optimize.NelderMead{})
	if result == nil || math.IsNaN(result.X[0]) || math.IsInf(result.X[0], 0) {
		return p, chem.NewError(nil, "FellerFit", "optimization failed: %v", err)
	}
	//Even if the minimizer complains (i.e. the simplex can't shrink any further)
	//the best point it found is still the answer.
	p[0], p[1], _ = linear(result.X[0])
	p[2] = math.Exp(result.X[0])
	return p, nil
}
