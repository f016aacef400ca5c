/*
 * pdb_test.go, part of molcheck.
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
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//pdbLine writes an ATOM/HETATM record with the standard columns.
func pdbLine(rec string, serial int, name, res, chain string, resnum int, x, y, z float64, element string) string {
	return fmt.Sprintf("%-6s%5d  %-3s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		rec, serial, name, res, chain, resnum, x, y, z, 1.0, 0.0, element)
}

func readTestFile(Te *testing.T, name string) string {
	Te.Helper()
	b, err := os.ReadFile("test/" + name)
	require.NoError(Te, err)
	return string(b)
}

func TestValidatePDBCountsRecords(Te *testing.T) {
	for _, n := range []int{1, 2, 7, 50} {
		var sb strings.Builder
		sb.WriteString("HEADER    SOMETHING\n")
		for i := 0; i < n; i++ {
			rec := "ATOM"
			if i%3 == 2 {
				rec = "HETATM"
			}
			sb.WriteString(pdbLine(rec, i+1, "CA", "ALA", "A", i+1, float64(i), 0, 0, "C") + "\n")
		}
		sb.WriteString("END\n")
		res := ValidatePDB(sb.String())
		assert.True(Te, res.Valid, "n=%d", n)
		assert.Equal(Te, n, res.Diagnostics.Map()["atomCount"], "n=%d", n)
		assert.Equal(Te, "PDB file is valid", res.Diagnostics.Map()["message"])
		assert.Equal(Te, []string{}, res.Diagnostics.Map()["warnings"])
	}
}

func TestValidatePDBNoRecords(Te *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"header only", "HEADER    NOTHING\nEND\n"},
		{"leading whitespace", " ATOM      1  N   GLY A   1       0.000   0.000   0.000\n"},
		{"lower case", "atom      1  N   GLY A   1       0.000   0.000   0.000\n"},
		{"keyword inside line", "REMARK ATOM HETATM\n"},
		{"fixture", readTestFile(Te, "empty.pdb")},
	}
	for _, tt := range tests {
		Te.Run(tt.name, func(t *testing.T) {
			res := ValidatePDB(tt.content)
			assert.False(t, res.Valid)
			assert.Equal(t, FormatPDB, res.Format)
			assert.Equal(t, "Invalid PDB file: No ATOM or HETATM records found", res.Error())
			assert.Contains(t, res.Diagnostics.Map()["suggestions"], "PDB standards")
		})
	}
}

func TestReadPDBAtoms(Te *testing.T) {
	atoms, skipped, err := ReadPDBAtoms(readTestFile(Te, "peptide.pdb"))
	require.NoError(Te, err)
	assert.Empty(Te, skipped)
	require.Len(Te, atoms, 8)

	ca := atoms[1]
	assert.Equal(Te, 2, ca.Serial)
	assert.Equal(Te, "CA", ca.Name)
	assert.Equal(Te, "C", ca.Element)
	assert.Equal(Te, "GLY", ca.ResidueName)
	assert.Equal(Te, "A", ca.ChainID)
	assert.Equal(Te, 1, ca.ResidueNumber)
	assert.InDelta(Te, 1.458, ca.Position.X, 1e-9)
	assert.InDelta(Te, 0, ca.Position.Y, 1e-9)
	assert.InDelta(Te, 0, ca.Position.Z, 1e-9)

	water := atoms[7]
	assert.Equal(Te, "HOH", water.ResidueName)
	assert.Equal(Te, 101, water.ResidueNumber)
	assert.InDelta(Te, 20, water.Position.Z, 1e-9)
}

func TestReadPDBAtomsSkipsBrokenLines(Te *testing.T) {
	atoms, skipped, err := ReadPDBAtoms(readTestFile(Te, "broken.pdb"))
	require.NoError(Te, err)
	require.Len(Te, atoms, 2)
	assert.Equal(Te, 1, atoms[0].Serial)
	assert.Equal(Te, 3, atoms[1].Serial)
	require.Len(Te, skipped, 1)
	assert.Equal(Te, 4, skipped[0].Line)
	assert.Contains(Te, skipped[0].Error(), "x coordinate")

	//validation only looks at the keywords, so all 3 lines count.
	res := ValidatePDB(readTestFile(Te, "broken.pdb"))
	assert.True(Te, res.Valid)
	assert.Equal(Te, 3, res.Diagnostics.Map()["atomCount"])
}

func TestReadPDBAtomsRejectsNonFinite(Te *testing.T) {
	good := pdbLine("ATOM", 1, "N", "GLY", "A", 1, 0, 0, 0, "N")
	nan := good[:38] + "     NaN" + good[46:]
	inf := good[:46] + "    +Inf" + good[54:]
	short := good[:40]
	badres := good[:22] + "   x" + good[26:]
	atoms, skipped, err := ReadPDBAtoms(strings.Join([]string{good, nan, inf, short, badres}, "\n"))
	require.NoError(Te, err)
	assert.Len(Te, atoms, 1)
	assert.Len(Te, skipped, 4)
}

func TestReadPDBAtomsShortElement(Te *testing.T) {
	//no element columns at all, and windows line endings
	line := pdbLine("ATOM", 1, "N", "GLY", "A", 1, 1, 2, 3, "N")[:54]
	atoms, _, err := ReadPDBAtoms(line + "\r\n" + line + "\r\n")
	require.NoError(Te, err)
	require.Len(Te, atoms, 2)
	assert.Equal(Te, "", atoms[0].Element)
	assert.InDelta(Te, 3, atoms[1].Position.Z, 1e-9)
}

func TestReadPDBAtomsNoRecords(Te *testing.T) {
	_, _, err := ReadPDBAtoms("HEADER\nEND\n")
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrNoRecords))
	var e *Error
	require.True(Te, errors.As(err, &e))
	assert.Equal(Te, []string{"ReadPDBAtoms"}, e.Decorate(""))
}
