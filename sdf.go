/*
 * sdf.go, part of molcheck.
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

//The header block of an MDL file is three free text lines followed by the
//counts line.
const sdfHeaderLines = 4

//ValidateSDF checks the counts line of an SDF/MOL file (the fourth line)
//and that the file has at least one line per declared atom and bond after
//the header block. The atom and bond blocks themselves are not parsed.
func ValidateSDF(content string) ValidationResult {
	lines := splitLines(content)
	if len(lines) < sdfHeaderLines {
		return failure(FormatSDF,
			"Invalid SDF file: File too short",
			"Ensure the file follows SDF format standards")
	}
	counts := strings.TrimSpace(lines[3])
	if len(counts) < 6 {
		return failure(FormatSDF,
			"Invalid SDF file: Invalid counts line",
			"The fourth line should contain atom and bond counts")
	}
	natoms, err1 := strconv.Atoi(strings.TrimSpace(counts[0:3]))
	nbonds, err2 := strconv.Atoi(strings.TrimSpace(counts[3:6]))
	if err1 != nil || err2 != nil {
		return failure(FormatSDF,
			"Invalid SDF file: Cannot parse atom or bond counts",
			"Check if the counts line is correctly formatted")
	}
	if len(lines) < sdfHeaderLines+natoms+nbonds {
		return failure(FormatSDF,
			"Invalid SDF file: Not enough data for declared atoms and bonds",
			"Ensure the file contains all atom and bond entries")
	}
	return ValidationResult{
		Valid:  true,
		Format: FormatSDF,
		Diagnostics: SDFDiagnostics{
			AtomCount: natoms,
			BondCount: nbonds,
			Message:   "SDF file is valid",
		},
	}
}
