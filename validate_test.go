/*
 * validate_test.go, part of molcheck.
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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestValidateDispatch(Te *testing.T) {
	tests := []struct {
		file   string
		format Format
		valid  bool
	}{
		{"peptide.pdb", FormatPDB, true},
		{"ethanol.mol2", FormatMOL2, true},
		{"ethanol.sdf", FormatSDF, true},
		{"empty.pdb", FormatPDB, false},
		//declared format wins over the content
		{"ethanol.sdf", FormatMOL2, false},
		{"ethanol.mol2", FormatPDB, false},
	}
	for _, tt := range tests {
		Te.Run(tt.file+"/"+tt.format.String(), func(t *testing.T) {
			content := []byte(readTestFile(t, tt.file))
			res := Validate(content, tt.format)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.format, res.Format)

			var direct ValidationResult
			switch tt.format {
			case FormatPDB:
				direct = ValidatePDB(string(content))
			case FormatMOL2:
				direct = ValidateMOL2(string(content))
			case FormatSDF:
				direct = ValidateSDF(string(content))
			}
			assert.Equal(t, direct, res)
		})
	}
}

func TestValidateUnsupported(Te *testing.T) {
	for _, f := range []Format{FormatUnknown, Format(42)} {
		res := Validate([]byte("ATOM"), f)
		assert.False(Te, res.Valid)
		assert.Equal(Te, map[string]any{"error": "unsupported format"}, res.Diagnostics.Map())
	}
}

func TestValidateIdempotent(Te *testing.T) {
	for _, name := range []string{"peptide.pdb", "broken.pdb", "ethanol.mol2", "ethanol.sdf"} {
		content := []byte(readTestFile(Te, name))
		f, err := FormatFromFilename(name)
		require.NoError(Te, err)
		assert.Equal(Te, Validate(content, f), Validate(content, f), name)
	}
}

func TestValidateFile(Te *testing.T) {
	res := ValidateFile("test/peptide.pdb", FormatPDB)
	assert.True(Te, res.Valid)
	assert.Equal(Te, 8, res.Diagnostics.Map()["atomCount"])

	res = ValidateFile(filepath.Join(Te.TempDir(), "missing.pdb"), FormatPDB)
	assert.False(Te, res.Valid)
	assert.Contains(Te, res.Error(), "File validation failed:")
	assert.Contains(Te, res.Error(), "missing.pdb")
}

func TestValidationResultJSON(Te *testing.T) {
	content := "@<TRIPOS>MOLECULE\nm\n 1 0\n@<TRIPOS>ATOM\n"
	b, err := json.Marshal(Validate([]byte(content), FormatMOL2))
	require.NoError(Te, err)
	assert.JSONEq(Te, `{
		"isValid": false,
		"format": "mol2",
		"diagnostics": {
			"error": "Invalid MOL2 file: Missing required sections",
			"missingMolecule": false,
			"missingAtoms": false,
			"missingBonds": true,
			"suggestions": "Ensure the file has @<TRIPOS>MOLECULE, @<TRIPOS>ATOM, and @<TRIPOS>BOND sections"
		}
	}`, string(b))
}

func TestSkippedLinesAreLogged(Te *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	_, err := ExtractStructure([]byte(readTestFile(Te, "broken.pdb")))
	require.NoError(Te, err)
	entries := logs.FilterMessage("skipping PDB record").All()
	require.Len(Te, entries, 1)
	assert.Equal(Te, int64(4), entries[0].ContextMap()["line"])
}

func TestFailureResult(Te *testing.T) {
	res := FailureResult(FormatSDF, "disk on fire")
	assert.False(Te, res.Valid)
	assert.Equal(Te, FormatSDF, res.Format)
	assert.Equal(Te, map[string]any{"error": "File validation failed: disk on fire"}, res.Diagnostics.Map())

	path := filepath.Join(Te.TempDir(), "missing.mol2")
	_, err := ReadFile(path)
	require.Error(Te, err)
	assert.Equal(Te, FailureResult(FormatMOL2, err), ValidateFile(path, FormatMOL2))
}
