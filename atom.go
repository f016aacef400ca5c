/*
 * atom.go, part of molcheck.
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
	"encoding/json"

	"gonum.org/v1/gonum/spatial/r3"
)

//Atom is one atomic site as read from a coordinate file.
//Serial is whatever the file assigned, and it is not guaranteed to be
//unique across chains.
type Atom struct {
	Serial        int
	Name          string
	Element       string //may be empty if the file omits it
	ResidueName   string
	ChainID       string
	ResidueNumber int
	Position      r3.Vec //angstroms, always finite
}

type position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type jsonAtom struct {
	Serial        int      `json:"serial"`
	Name          string   `json:"name"`
	Element       string   `json:"element"`
	ResidueName   string   `json:"residueName"`
	ChainID       string   `json:"chainId"`
	ResidueNumber int      `json:"residueNumber"`
	Position      position `json:"position"`
}

//MarshalJSON encodes the atom with the field names the visualization
//clients expect.
func (A Atom) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonAtom{
		Serial:        A.Serial,
		Name:          A.Name,
		Element:       A.Element,
		ResidueName:   A.ResidueName,
		ChainID:       A.ChainID,
		ResidueNumber: A.ResidueNumber,
		Position:      position{A.Position.X, A.Position.Y, A.Position.Z},
	})
}

//UnmarshalJSON is the inverse of MarshalJSON.
func (A *Atom) UnmarshalJSON(data []byte) error {
	var j jsonAtom
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*A = Atom{
		Serial:        j.Serial,
		Name:          j.Name,
		Element:       j.Element,
		ResidueName:   j.ResidueName,
		ChainID:       j.ChainID,
		ResidueNumber: j.ResidueNumber,
		Position:      r3.Vec{X: j.Position.X, Y: j.Position.Y, Z: j.Position.Z},
	}
	return nil
}

//Bond is an inferred covalent edge between two atoms of the same
//sequence. Atom1 < Atom2 always holds for bonds produced by InferBonds.
type Bond struct {
	Atom1    int     `json:"atomIndex1"`
	Atom2    int     `json:"atomIndex2"`
	Distance float64 `json:"distance"`
}

//Cross returns the index at the other end of the bond, or -1 if
//origin is not part of it.
func (B Bond) Cross(origin int) int {
	switch origin {
	case B.Atom1:
		return B.Atom2
	case B.Atom2:
		return B.Atom1
	}
	return -1
}

//StructureData is the atom/bond model extracted from a coordinate file.
//The counts are derived from the slices and can't be set on their own.
type StructureData struct {
	Atoms []Atom
	Bonds []Bond
}

//AtomCount returns the number of atoms.
func (S *StructureData) AtomCount() int {
	return len(S.Atoms)
}

//BondCount returns the number of bonds.
func (S *StructureData) BondCount() int {
	return len(S.Bonds)
}

type jsonStructure struct {
	Atoms     []Atom `json:"atoms"`
	Bonds     []Bond `json:"bonds"`
	AtomCount int    `json:"atomCount"`
	BondCount int    `json:"bondCount"`
}

//MarshalJSON emits the atoms, bonds and both counts.
func (S *StructureData) MarshalJSON() ([]byte, error) {
	j := jsonStructure{
		Atoms:     S.Atoms,
		Bonds:     S.Bonds,
		AtomCount: S.AtomCount(),
		BondCount: S.BondCount(),
	}
	if j.Atoms == nil {
		j.Atoms = []Atom{}
	}
	if j.Bonds == nil {
		j.Bonds = []Bond{}
	}
	return json.Marshal(j)
}

//UnmarshalJSON reads atoms and bonds. The counts in the input are ignored,
//as they are always recomputed from the slices.
func (S *StructureData) UnmarshalJSON(data []byte) error {
	var j jsonStructure
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	S.Atoms = j.Atoms
	S.Bonds = j.Bonds
	return nil
}
