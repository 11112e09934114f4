/*
 * cbs_test.go, part of chemutil.
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
	"testing"

	chem "github.com/rmera/chemutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestHalkier(t *testing.T) {
	assert.InDelta(t, -19.8/19, Halkier(-1.0, -0.9, 3), 1e-14)
	//identical values are already converged.
	for _, x := range []float64{2, 3, 4, 5} {
		assert.InDelta(t, -76.4, Halkier(-76.4, -76.4, x), 1e-10)
	}
	//exact for a property that goes as A + B/x^3
	a, b := -76.37, 0.8
	prop := func(x float64) float64 { return a + b/(x*x*x) }
	assert.InDelta(t, a, Halkier(prop(4), prop(3), 4), 1e-10)
}

func TestJensen(t *testing.T) {
	_, err := Jensen(1.0, 2.0, 2, 4, 1.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, chem.ErrPrecondition)
	var cerr *chem.CError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Jensen", cerr.Trace())
	_, err = Jensen(1.0, 2.0, 3, 2, 1.0)
	assert.ErrorIs(t, err, chem.ErrPrecondition)

	v, err := Jensen(-76.05, -76.06, 3, 4, 5.5)
	require.NoError(t, err)
	ex, ey := math.Exp(5.5*math.Sqrt(3)), math.Exp(5.5*2)
	assert.InDelta(t, (ex*-76.05-ey*-76.06)/(ex-ey), v, 1e-12)

	//exact for a property that goes as A + B*exp(-b*sqrt(x))
	a, bb, decay := -1.5, 0.3, 2.0
	prop := func(x float64) float64 { return a + bb*math.Exp(-decay*math.Sqrt(x)) }
	v, err = Jensen(prop(3), prop(4), 3, 4, decay)
	require.NoError(t, err)
	assert.InDelta(t, a, v, 1e-12)
}

func TestFeller(t *testing.T) {
	p := [3]float64{-1.0, 0.5, 1.2}
	assert.InDelta(t, -1.0+0.5*math.Exp(-math.Sqrt(2)*1.2), Feller(2, p), 1e-15)
	//large cardinal numbers approach the limit.
	assert.InDelta(t, p[0], Feller(1e6, p), 1e-12)

	xs := []float64{2, 3, 4, 5, 6}
	ys := FellerSlice(xs, p)
	require.Len(t, ys, len(xs))
	for i, x := range xs {
		assert.Equal(t, Feller(x, p), ys[i])
	}
	assert.Empty(t, FellerSlice(nil, p))

	X := mat.NewDense(2, 3, []float64{2, 3, 4, 5, 6, 7})
	var D mat.Dense
	FellerDense(&D, X, p)
	r, c := D.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.Equal(t, Feller(X.At(i, j), p), D.At(i, j))
		}
	}
}

func TestFellerFit(t *testing.T) {
	p := [3]float64{-1.0, 0.5, 1.2}
	xs := []float64{2, 3, 4, 5}
	q, err := FellerFit(xs, FellerSlice(xs, p))
	require.NoError(t, err)
	assert.InDelta(t, p[0], q[0], 1e-4)
	assert.InDelta(t, p[1], q[1], 1e-3)
	assert.InDelta(t, p[2], q[2], 1e-3)

	//energy-like values.
	p = [3]float64{-76.0678, 0.95, 1.65}
	q, err = FellerFit(xs, FellerSlice(xs, p))
	require.NoError(t, err)
	assert.InDelta(t, p[0], q[0], 1e-4)

	q, err = FellerFit([]float64{2, 3, 4}, []float64{-5, -5, -5})
	require.NoError(t, err)
	assert.Equal(t, -5.0, q[0])
}

func TestFellerFitPreconditions(t *testing.T) {
	_, err := FellerFit([]float64{2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, chem.ErrPrecondition)
	_, err = FellerFit([]float64{2, 3, 4}, []float64{1, 2})
	assert.ErrorIs(t, err, chem.ErrPrecondition)
	_, err = FellerFit([]float64{0, 3, 4}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, chem.ErrPrecondition)
	var cerr *chem.CError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "FellerFit", cerr.Trace())
}
