/*
 * v3_test.go, part of chemutil.
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

package v3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	assert.Equal(Te, 3, A.NVecs())
	assert.Equal(Te, 3, A.Len())
	assert.Equal(Te, [3]float64{4, 5, 6}, A.Vec(1))

	_, err = NewMatrix([]float64{1, 2, 3, 4})
	require.Error(Te, err)
	var verr Error
	require.ErrorAs(Te, err, &verr)
	assert.True(Te, verr.Critical())

	_, err = NewMatrix(nil)
	require.Error(Te, err)
}

func TestVecView(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	View := A.VecView(1)
	View.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0), "a view should share data with its matrix")
	assert.Equal(Te, 1, View.NVecs())
	assert.Panics(Te, func() { A.VecView(2) })
}

func TestDist(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 3, 4, 0, 1, 1, 1})
	require.NoError(Te, err)
	assert.InDelta(Te, 5.0, A.Dist(0, 1), 1e-12)
	assert.InDelta(Te, math.Sqrt(3), A.Dist(0, 2), 1e-12)
	assert.Equal(Te, A.Dist(1, 2), A.Dist(2, 1))
	assert.Panics(Te, func() { A.Dist(0, 3) })
}

func TestDense2Matrix(Te *testing.T) {
	Z := Zeros(4)
	assert.Equal(Te, 4, Z.NVecs())
	D := Matrix2Dense(Z)
	r, c := D.Dims()
	assert.Equal(Te, 4, r)
	assert.Equal(Te, 3, c)
	assert.Panics(Te, func() { Dense2Matrix(mat.NewDense(2, 2, nil)) })
	assert.Contains(Te, Z.String(), "0.000")
}
