/*
 * bonds.go, part of molcheck.
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

package molcheck

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

//Defaults for bond inference. They are empirical, not part of any file
//format, so they can be changed through BondOptions.
const (
	DefaultMaxBondDistance = 2.0
	DefaultResidueWindow   = 1
)

//rows of the pair matrix handled by one parallel task.
const bondBlockRows = 64

//BondOptions controls InferBonds.
type BondOptions struct {
	//Pairs closer than MaxDistance (strictly) are bonded.
	MaxDistance float64
	//Pairs whose residue numbers differ by more than ResidueWindow are
	//never bonded. 0 means bonds only within a residue.
	ResidueWindow int
	//Workers is the number of goroutines used. 0 or 1 means sequential.
	Workers int
}

//DefaultBondOptions returns the options used when none are given.
func DefaultBondOptions() BondOptions {
	return BondOptions{
		MaxDistance:   DefaultMaxBondDistance,
		ResidueWindow: DefaultResidueWindow,
		Workers:       1,
	}
}

//Check returns an error if the options can't be used.
func (O BondOptions) Check() error {
	if !(O.MaxDistance > 0) {
		return fmt.Errorf("molcheck: maximum bond distance must be positive, got %v", O.MaxDistance)
	}
	if O.ResidueWindow < 0 {
		return fmt.Errorf("molcheck: residue window can't be negative, got %d", O.ResidueWindow)
	}
	if O.Workers < 0 {
		return fmt.Errorf("molcheck: workers can't be negative, got %d", O.Workers)
	}
	return nil
}

//BondOption modifies BondOptions.
type BondOption func(*BondOptions)

//WithMaxDistance sets the distance threshold.
func WithMaxDistance(d float64) BondOption {
	return func(o *BondOptions) { o.MaxDistance = d }
}

//WithResidueWindow sets the residue-adjacency window.
func WithResidueWindow(w int) BondOption {
	return func(o *BondOptions) { o.ResidueWindow = w }
}

//WithWorkers sets the number of goroutines.
func WithWorkers(n int) BondOption {
	return func(o *BondOptions) { o.Workers = n }
}

//WithBondOptions replaces all the options at once.
func WithBondOptions(opts BondOptions) BondOption {
	return func(o *BondOptions) { *o = opts }
}

func residueExcluded(r1, r2, window int) bool {
	d := r1 - r2
	if d < 0 {
		d = -d
	}
	return d > window
}

//bondRows appends to dst the bonds (i,j) for i in [from,to) and every j>i.
func bondRows(dst []Bond, atoms []Atom, from, to int, opts BondOptions) []Bond {
	for i := from; i < to; i++ {
		at1 := &atoms[i]
		for j := i + 1; j < len(atoms); j++ {
			at2 := &atoms[j]
			if residueExcluded(at1.ResidueNumber, at2.ResidueNumber, opts.ResidueWindow) {
				continue
			}
			d := r3.Norm(r3.Sub(at1.Position, at2.Position))
			if d < opts.MaxDistance {
				dst = append(dst, Bond{Atom1: i, Atom2: j, Distance: d})
			}
		}
	}
	return dst
}

//InferBonds bonds every pair of atoms closer than opts.MaxDistance, as long
//as their residue numbers are within opts.ResidueWindow of each other.
//This is a geometric heuristic, not chemistry. Bonds come sorted by the
//first index and then by the second, whatever the number of workers.
//All pairs are evaluated, so the cost grows with the square of the number
//of atoms; it is fine for a few thousand atoms.
func InferBonds(atoms []Atom, opts BondOptions) ([]Bond, error) {
	if err := opts.Check(); err != nil {
		return nil, errDecorate(err, "InferBonds")
	}
	n := len(atoms)
	if opts.Workers <= 1 || n <= bondBlockRows {
		return bondRows(make([]Bond, 0, n), atoms, 0, n, opts), nil
	}
	nblocks := (n + bondBlockRows - 1) / bondBlockRows
	blocks := make([][]Bond, nblocks)
	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for b := 0; b < nblocks; b++ {
		b := b
		from := b * bondBlockRows
		to := min(from+bondBlockRows, n)
		g.Go(func() error {
			blocks[b] = bondRows(nil, atoms, from, to, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errDecorate(err, "InferBonds")
	}
	total := 0
	for _, v := range blocks {
		total += len(v)
	}
	bonds := make([]Bond, 0, total)
	for _, v := range blocks {
		bonds = append(bonds, v...)
	}
	return bonds, nil
}

//ExtractStructure reads the atoms of a PDB file and infers their bonds.
//Skipped lines are logged and left out. Without options, the defaults
//from DefaultBondOptions are used.
func ExtractStructure(content []byte, opts ...BondOption) (*StructureData, error) {
	o := DefaultBondOptions()
	for _, f := range opts {
		f(&o)
	}
	atoms, _, err := ReadPDBAtoms(string(content))
	if err != nil {
		return nil, errDecorate(err, "ExtractStructure")
	}
	bonds, err := InferBonds(atoms, o)
	if err != nil {
		return nil, errDecorate(err, "ExtractStructure")
	}
	return &StructureData{Atoms: atoms, Bonds: bonds}, nil
}
