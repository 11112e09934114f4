/*
 * cbsplot.go, part of chemutil.
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

//Package chemplot produces plots of complete basis set extrapolations, using gonum/plot.
package chemplot

import (
	"fmt"

	chem "github.com/rmera/chemutil"
	"github.com/rmera/chemutil/cbs"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func basicCBSPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Cardinal number"
	p.Y.Label.Text = "Property"
	p.Add(plotter.NewGrid())
	return p
}

//FellerPlot plots the values ys, obtained with the bases of cardinal numbers xs, together with
//the Feller curve of parameters p (see cbs.Feller) and its CBS limit, p[0]. The plot is saved
//to filename, in a format given by its extension (png, svg, pdf, etc).
func FellerPlot(xs, ys []float64, p [3]float64, title, filename string) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return chem.NewError(chem.ErrPrecondition, "FellerPlot", "%d cardinal numbers and %d values given", len(xs), len(ys))
	}
	pl := basicCBSPlot(title)
	pts := make(plotter.XYs, len(xs))
	xmin, xmax := xs[0], xs[0]
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
		xmin = min(xmin, xs[i])
		xmax = max(xmax, xs[i])
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = colors(0, 2)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(3)

	f := plotter.NewFunction(func(x float64) float64 { return cbs.Feller(x, p) })
	f.XMin = xmin
	f.XMax = xmax + 1
	f.Samples = 100
	f.Color = colors(1, 2)

	limit, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: p[0]}, {X: xmax + 1, Y: p[0]}})
	if err != nil {
		return err
	}
	limit.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	pl.Add(s, f, limit)
	pl.Legend.Add("computed", s)
	pl.Legend.Add("Feller fit", f)
	pl.Legend.Add(fmt.Sprintf("CBS %.6f", p[0]), limit)
	pl.Legend.Top = true
	return pl.Save(5*vg.Inch, 5*vg.Inch, filename)
}
