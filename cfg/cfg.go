/*
 * cfg.go, part of chemutil.
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

package cfg

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	chem "github.com/rmera/chemutil"
	"github.com/rmera/chemutil/cbs"
	"github.com/rmera/chemutil/chemplot"
	"github.com/rmera/chemutil/chemxl"

	"gopkg.in/yaml.v3"
)

// Method is the complete basis set extrapolation method.
type Method string

// Here are the accepted methods.
var (
	MHalkier Method = "halkier"
	MJensen  Method = "jensen"
	MFeller  Method = "feller"
)

// CBS contains the parameters of a complete basis set extrapolation.
type CBS struct {
	// Method is the extrapolation method
	Method Method `yaml:"method"`

	// Cardinals are the cardinal numbers of the basis sets, in ascending order
	Cardinals []float64 `yaml:"cardinals"`

	// Values are the values of the property for each basis set in Cardinals
	Values []float64 `yaml:"values"`

	// B is the decay constant, only used by the Jensen method
	B float64 `yaml:"b"`

	// Plot is the file where a plot of the Feller fit is written, if not empty
	Plot string `yaml:"plot"`
}

// Cfg is a structure containing the parameters specified in the configuration
// file. It can be instanced through the New function or by "hand". If it is
// instanced by hand, please use the Check method to check if the Cfg meets the
// requirements. Relative paths are taken from the directory of the
// configuration file, or from the working directory if instanced by hand.
type Cfg struct {
	// XYZ is the geometry file whose bonds will be counted
	XYZ string `yaml:"xyz"`

	// Delta is the bond tolerance, in A. If nil, chem.DefaultBondTolerance is used
	Delta *float64 `yaml:"delta"`

	// BondsXLSX is the spreadsheet file where the bonds are written, if not empty
	BondsXLSX string `yaml:"bondsXLSX"`

	// CBS is the extrapolation to perform, if any
	CBS *CBS `yaml:"cbs"`

	// CNT are the n and m indexes of a carbon nanotube whose diameter will be
	// calculated, if not empty
	CNT []int `yaml:"cnt"`

	dir string
}

// New opens and decodes the specified configuration file. The file must be
// a YAML file. This method automatically calls the Check method to check the
// integrity of Cfg.
func New(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Cfg
	r := bufio.NewReader(f)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err = dec.Decode(&c)
	if err != nil {
		return nil, err
	}
	c.dir = filepath.Dir(path)

	err = c.Check()
	if err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}

	return &c, nil
}

// Check checks if Cfg is correct. It returns an error if a field doesn't meet
// the requirements.
func (c *Cfg) Check() error {
	if c.XYZ == "" && c.CBS == nil && len(c.CNT) == 0 {
		return fmt.Errorf("nothing to do: xyz, cbs and cnt are all empty")
	}

	if c.XYZ == "" && c.BondsXLSX != "" {
		return fmt.Errorf("bondsXLSX requires an xyz file")
	}

	if c.Delta != nil && *c.Delta < 0 {
		return fmt.Errorf("delta cannot be lower than 0")
	}

	if len(c.CNT) != 0 && len(c.CNT) != 2 {
		return fmt.Errorf("cnt must contain exactly 2 indexes, got %d", len(c.CNT))
	}

	if c.CBS != nil {
		return c.CBS.Check()
	}

	return nil
}

// Check checks if the extrapolation parameters are correct.
func (e *CBS) Check() error {
	if len(e.Cardinals) != len(e.Values) {
		return fmt.Errorf("the length of cardinals (%d) is not equal to the length of values (%d)", len(e.Cardinals), len(e.Values))
	}

	for i := 1; i < len(e.Cardinals); i++ {
		if e.Cardinals[i] <= e.Cardinals[i-1] {
			return fmt.Errorf("cardinals must be in ascending order")
		}
	}

	switch e.Method {
	case MHalkier, MJensen:
		if len(e.Values) != 2 {
			return fmt.Errorf("%s needs exactly 2 values, got %d", e.Method, len(e.Values))
		}
		if e.Cardinals[1]-e.Cardinals[0] != 1 {
			return fmt.Errorf("%s needs adjacent cardinal numbers", e.Method)
		}
		if e.Method == MJensen && e.B == 0 {
			return fmt.Errorf("jensen needs a non-zero b")
		}
	case MFeller:
		if len(e.Values) < 3 {
			return fmt.Errorf("feller needs at least 3 values, got %d", len(e.Values))
		}
	default:
		return fmt.Errorf("unsupported method %q", e.Method)
	}

	if e.Plot != "" && e.Method != MFeller {
		return fmt.Errorf("plots are only available for the feller method")
	}

	return nil
}

func (c *Cfg) path(p string) string {
	if filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// Bonds reads the XYZ file and counts its bonds. If BondsXLSX is set, the
// bonds are also written there.
func (c *Cfg) Bonds() ([]string, *chem.BondMap, error) {
	if c.XYZ == "" {
		return nil, nil, fmt.Errorf("no xyz file given")
	}

	atoms, coords, err := chem.XYZFileRead(c.path(c.XYZ))
	if err != nil {
		return nil, nil, err
	}

	delta := chem.DefaultBondTolerance
	if c.Delta != nil {
		delta = *c.Delta
	}
	bonds, err := chem.CountBonds(atoms, coords, delta)
	if err != nil {
		return nil, nil, err
	}

	if c.BondsXLSX != "" {
		log.Printf("Writing %d bonds to `%s`\n", bonds.Len(), c.BondsXLSX)
		err = chemxl.WriteBonds(c.path(c.BondsXLSX), atoms, bonds)
		if err != nil {
			return nil, nil, fmt.Errorf("WriteBonds: %w", err)
		}
	}

	return atoms, bonds, nil
}

// ExtrapolateCBS performs the extrapolation and returns the estimated CBS limit. For
// the Feller method, the fitted curve is plotted if Plot is set.
func (c *Cfg) ExtrapolateCBS() (float64, error) {
	e := c.CBS
	if e == nil {
		return 0, fmt.Errorf("no extrapolation given")
	}

	switch e.Method {
	case MHalkier:
		return cbs.Halkier(e.Values[1], e.Values[0], e.Cardinals[1]), nil
	case MJensen:
		return cbs.Jensen(e.Values[0], e.Values[1], e.Cardinals[0], e.Cardinals[1], e.B)
	case MFeller:
		p, err := cbs.FellerFit(e.Cardinals, e.Values)
		if err != nil {
			return 0, err
		}
		log.Printf("Feller parameters: %v\n", p)
		if e.Plot != "" {
			log.Printf("Plotting the Feller fit to `%s`\n", e.Plot)
			err = chemplot.FellerPlot(e.Cardinals, e.Values, p, "Feller extrapolation", c.path(e.Plot))
			if err != nil {
				return 0, fmt.Errorf("FellerPlot: %w", err)
			}
		}
		return p[0], nil
	}

	return 0, fmt.Errorf("unsupported method %q", e.Method)
}

// CNTDiameter calculates the diameter of the nanotube given in CNT, and
// prints it to w.
func (c *Cfg) CNTDiameter(w io.Writer) (float64, error) {
	if len(c.CNT) != 2 {
		return 0, fmt.Errorf("cnt must contain exactly 2 indexes, got %d", len(c.CNT))
	}
	return chem.FCNTDiameter(w, c.CNT[0], c.CNT[1])
}

// Run performs every task set in Cfg and writes the results to w.
func (c *Cfg) Run(w io.Writer) error {
	if c.XYZ != "" {
		log.Printf("Counting bonds in `%s`\n", c.XYZ)
		atoms, bonds, err := c.Bonds()
		if err != nil {
			return fmt.Errorf("Bonds: %w", err)
		}
		fmt.Fprintf(w, "%d atoms, %d bonds\n", len(atoms), bonds.Len())
		for _, b := range bonds.Bonds() {
			fmt.Fprintf(w, "%4d %-2s %4d %-2s %8.4f\n", b.At1, atoms[b.At1], b.At2, atoms[b.At2], b.Dist)
		}
	}

	if c.CBS != nil {
		log.Printf("Extrapolating to the CBS limit with the %s method\n", c.CBS.Method)
		v, err := c.ExtrapolateCBS()
		if err != nil {
			return fmt.Errorf("ExtrapolateCBS: %w", err)
		}
		fmt.Fprintf(w, "CBS limit (%s): %.8f\n", c.CBS.Method, v)
	}

	if len(c.CNT) != 0 {
		log.Printf("Calculating the diameter of the (%d,%d) nanotube\n", c.CNT[0], c.CNT[1])
		var line bytes.Buffer
		if _, err := c.CNTDiameter(&line); err != nil {
			return fmt.Errorf("CNTDiameter: %w", err)
		}
		fmt.Fprintf(w, "CNT(%d,%d) diameter: %s", c.CNT[0], c.CNT[1], line.String())
	}

	return nil
}
