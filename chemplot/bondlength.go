/*
 * bondlength.go, part of molcheck.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chemplot

import (
	"fmt"
	"io"

	"github.com/rmera/molcheck"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//LengthStats summarizes the lengths of a set of bonds.
type LengthStats struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
}

func lengths(bonds []molcheck.Bond) []float64 {
	d := make([]float64, len(bonds))
	for i, b := range bonds {
		d[i] = b.Distance
	}
	return d
}

//BondLengthStats returns the statistics of the bond distances. All fields
//are zero if there are no bonds, and StdDev is zero for a single bond.
func BondLengthStats(bonds []molcheck.Bond) LengthStats {
	if len(bonds) == 0 {
		return LengthStats{}
	}
	d := lengths(bonds)
	s := LengthStats{
		N:    len(d),
		Min:  floats.Min(d),
		Max:  floats.Max(d),
		Mean: stat.Mean(d, nil),
	}
	if len(d) > 1 {
		s.StdDev = stat.StdDev(d, nil)
	}
	return s
}

//BondLengthHistogram draws a histogram of the bond distances with the
//given number of bins and writes it to out in format ("png", "svg",
//"pdf"...). The figure is width x height centimeters.
func BondLengthHistogram(bonds []molcheck.Bond, bins int, out io.Writer, format string, width, height float64) error {
	if len(bonds) == 0 {
		return fmt.Errorf("chemplot: no bonds to plot")
	}
	if bins <= 0 {
		bins = 20
	}
	p := plot.New()
	s := BondLengthStats(bonds)
	p.Title.Text = fmt.Sprintf("Bond lengths (n=%d, mean=%.3f)", s.N, s.Mean)
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Distance (A)"
	p.Y.Label.Text = "Bonds"
	h, err := plotter.NewHist(plotter.Values(lengths(bonds)), bins)
	if err != nil {
		return fmt.Errorf("chemplot: %w", err)
	}
	p.Add(h, plotter.NewGrid())
	wt, err := p.WriterTo(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, format)
	if err != nil {
		return fmt.Errorf("chemplot: %w", err)
	}
	_, err = wt.WriteTo(out)
	return err
}
