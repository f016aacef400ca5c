/*
 * mol2.go, part of molcheck.
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
	"strconv"
	"strings"
)

//Tripos section markers. All three are required.
const (
	mol2Molecule = "@<TRIPOS>MOLECULE"
	mol2Atom     = "@<TRIPOS>ATOM"
	mol2Bond     = "@<TRIPOS>BOND"
)

//ValidateMOL2 accepts content as a MOL2 file if the molecule, atom and bond
//section markers are all present. The declared counts are read from the
//second line after the molecule marker. If that line doesn't exist or
//can't be read, the counts are reported as zero but the file is still
//valid: validity depends only on the sections.
func ValidateMOL2(content string) ValidationResult {
	d := MOL2Diagnostics{
		MissingMolecule: !strings.Contains(content, mol2Molecule),
		MissingAtoms:    !strings.Contains(content, mol2Atom),
		MissingBonds:    !strings.Contains(content, mol2Bond),
	}
	if d.MissingMolecule || d.MissingAtoms || d.MissingBonds {
		d.Err = "Invalid MOL2 file: Missing required sections"
		d.Suggestions = "Ensure the file has @<TRIPOS>MOLECULE, @<TRIPOS>ATOM, and @<TRIPOS>BOND sections"
		return ValidationResult{Format: FormatMOL2, Diagnostics: d}
	}
	d.AtomCount, d.BondCount = mol2Counts(splitLines(content))
	d.Message = "MOL2 file is valid"
	return ValidationResult{Valid: true, Format: FormatMOL2, Diagnostics: d}
}

//mol2Counts returns the atom and bond counts from the first molecule
//header that has a line with at least two fields two lines below it.
//A field that is not an integer counts as zero.
func mol2Counts(lines []string) (atoms, bonds int) {
	for i, line := range lines {
		if !strings.Contains(line, mol2Molecule) || i+2 >= len(lines) {
			continue
		}
		fields := strings.Fields(lines[i+2])
		if len(fields) < 2 {
			continue
		}
		atoms, _ = strconv.Atoi(fields[0])
		bonds, _ = strconv.Atoi(fields[1])
		return atoms, bonds
	}
	return 0, 0
}
