/*
 * chemxl.go, part of chemutil.
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

//Package chemxl writes chemutil results to spreadsheet (xlsx) files.
package chemxl

import (
	"fmt"

	chem "github.com/rmera/chemutil"
	"github.com/xuri/excelize/v2"
)

//BondSheet is the name of the sheet written by WriteBonds.
const BondSheet = "Bonds"

var bondHeaders = []interface{}{"Atom 1", "Atom 2", "Symbol 1", "Symbol 2", "Distance (A)"}

//WriteBonds writes the bonds in b to an xlsx file, one bond per row, in the order of b.
//atoms contains the element symbols of the atoms the indexes in b refer to.
func WriteBonds(path string, atoms []string, b *chem.BondMap) error {
	f := excelize.NewFile()
	defer f.Close()
	index, err := f.NewSheet(BondSheet)
	if err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(BondSheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", bondHeaders); err != nil {
		return err
	}
	for i, bond := range b.Bonds() {
		if bond.At1 >= len(atoms) || bond.At2 >= len(atoms) {
			return fmt.Errorf("WriteBonds: bond %d-%d but only %d atoms: %w", bond.At1, bond.At2, len(atoms), chem.ErrFormatMismatch)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{bond.At1, bond.At2, atoms[bond.At1], atoms[bond.At2], bond.Dist}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}
