/*
 * cnt_test.go, part of chemutil.
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

package chem

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCNTDiameter(t *testing.T) {
	var buf bytes.Buffer
	d, err := FCNTDiameter(&buf, 10, 10)
	require.NoError(t, err)
	assert.InDelta(t, 2.46/math.Pi*math.Sqrt(300), d, 1e-12)
	assert.Equal(t, "13.56 Å\n", buf.String())

	buf.Reset()
	d, err = FCNTDiameter(&buf, 10, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.46/math.Pi*10, d, 1e-12)
	assert.Equal(t, "7.83 Å\n", buf.String())

	//the printing version returns the same value.
	d2, err := CNTDiameter(10, 0)
	require.NoError(t, err)
	assert.Equal(t, d, d2)
}

func TestCNTDiameterDomain(t *testing.T) {
	for _, c := range [][2]int{{5, 7}, {0, 0}, {3, -1}, {-1, -2}} {
		var buf bytes.Buffer
		_, err := FCNTDiameter(&buf, c[0], c[1])
		assert.ErrorIs(t, err, ErrDomain, "%v", c)
		assert.Empty(t, buf.String(), "nothing should be printed for %v", c)
	}
	_, err := CNTDiameter(5, 7)
	assert.ErrorIs(t, err, ErrDomain)
}
