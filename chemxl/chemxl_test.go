/*
 * chemxl_test.go, part of chemutil.
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

package chemxl

import (
	"path/filepath"
	"strconv"
	"testing"

	chem "github.com/rmera/chemutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteBonds(t *testing.T) {
	atoms, coords, err := chem.XYZFileRead("../test/methane.xyz")
	require.NoError(t, err)
	bonds, err := chem.CountBonds(atoms, coords)
	require.NoError(t, err)

	fname := filepath.Join(t.TempDir(), "bonds.xlsx")
	require.NoError(t, WriteBonds(fname, atoms, bonds))

	f, err := excelize.OpenFile(fname)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{BondSheet}, f.GetSheetList())
	rows, err := f.GetRows(BondSheet)
	require.NoError(t, err)
	require.Len(t, rows, bonds.Len()+1)
	assert.Equal(t, "Atom 1", rows[0][0])
	for i, b := range bonds.Bonds() {
		row := rows[i+1]
		assert.Equal(t, strconv.Itoa(b.At1), row[0])
		assert.Equal(t, strconv.Itoa(b.At2), row[1])
		assert.Equal(t, "C", row[2])
		assert.Equal(t, "H", row[3])
		d, err := strconv.ParseFloat(row[4], 64)
		require.NoError(t, err)
		assert.InDelta(t, b.Dist, d, 1e-9)
	}
}

func TestWriteBondsMismatch(t *testing.T) {
	atoms, coords, err := chem.XYZFileRead("../test/h2.xyz")
	require.NoError(t, err)
	bonds, err := chem.CountBonds(atoms, coords)
	require.NoError(t, err)
	err = WriteBonds(filepath.Join(t.TempDir(), "bad.xlsx"), atoms[:1], bonds)
	assert.ErrorIs(t, err, chem.ErrFormatMismatch)
}
