/*
 * mol2_test.go, part of molcheck.
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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMOL2Fixture(Te *testing.T) {
	res := ValidateMOL2(readTestFile(Te, "ethanol.mol2"))
	assert.True(Te, res.Valid)
	assert.Equal(Te, map[string]any{
		"atomCount": 3,
		"bondCount": 2,
		"message":   "MOL2 file is valid",
	}, res.Diagnostics.Map())
}

//Removing any one marker flips exactly its flag.
func TestValidateMOL2MissingMarkers(Te *testing.T) {
	full := readTestFile(Te, "ethanol.mol2")
	tests := []struct {
		marker string
		flag   string
	}{
		{"@<TRIPOS>MOLECULE", "missingMolecule"},
		{"@<TRIPOS>ATOM", "missingAtoms"},
		{"@<TRIPOS>BOND", "missingBonds"},
	}
	flags := []string{"missingMolecule", "missingAtoms", "missingBonds"}
	for _, tt := range tests {
		Te.Run(tt.flag, func(t *testing.T) {
			content := strings.ReplaceAll(full, tt.marker, "@<TRIPOS>SUBSTRUCTURE")
			res := ValidateMOL2(content)
			assert.False(t, res.Valid)
			d := res.Diagnostics.Map()
			for _, f := range flags {
				assert.Equal(t, f == tt.flag, d[f], f)
			}
			assert.Equal(t, "Invalid MOL2 file: Missing required sections", d["error"])
			assert.Contains(t, d["suggestions"], "@<TRIPOS>BOND")
		})
	}
}

func TestValidateMOL2NoBondSection(Te *testing.T) {
	content := "@<TRIPOS>MOLECULE\nm\n 1 0\n@<TRIPOS>ATOM\n 1 C 0 0 0 C.3\n"
	d, ok := ValidateMOL2(content).Diagnostics.(MOL2Diagnostics)
	assert.True(Te, ok)
	assert.True(Te, d.MissingBonds)
	assert.False(Te, d.MissingMolecule)
	assert.False(Te, d.MissingAtoms)
}

//Counts don't affect validity.
func TestValidateMOL2Counts(Te *testing.T) {
	markers := "@<TRIPOS>ATOM\n@<TRIPOS>BOND\n"
	tests := []struct {
		name         string
		content      string
		atoms, bonds int
	}{
		{"header at the end", markers + "@<TRIPOS>MOLECULE\n", 0, 0},
		{"one line short", markers + "@<TRIPOS>MOLECULE\nname\n", 0, 0},
		{"not numbers", "@<TRIPOS>MOLECULE\nname\n many atoms\n" + markers, 0, 0},
		{"one number", "@<TRIPOS>MOLECULE\nname\n 12\n" + markers, 0, 0},
		{"tabs and spaces", "@<TRIPOS>MOLECULE\nname\n\t24 \t 25   1\n" + markers, 24, 25},
		{"second header", "@<TRIPOS>MOLECULE\nname\n\n@<TRIPOS>MOLECULE\nother\n 5 4\n" + markers, 5, 4},
	}
	for _, tt := range tests {
		Te.Run(tt.name, func(t *testing.T) {
			res := ValidateMOL2(tt.content)
			assert.True(t, res.Valid)
			assert.Equal(t, tt.atoms, res.Diagnostics.Map()["atomCount"])
			assert.Equal(t, tt.bonds, res.Diagnostics.Map()["bondCount"])
		})
	}
}
