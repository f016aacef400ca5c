/*
 * pdb.go, part of molcheck.
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
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

//Record keywords, which must start at the first column.
const (
	pdbAtom   = "ATOM"
	pdbHetatm = "HETATM"
)

func isPDBRecord(line string) bool {
	return strings.HasPrefix(line, pdbAtom) || strings.HasPrefix(line, pdbHetatm)
}

//column returns line[a:b], clipped to the length of the line.
func column(line string, a, b int) string {
	if a >= len(line) {
		return ""
	}
	if b > len(line) {
		b = len(line)
	}
	return line[a:b]
}

//ValidatePDB accepts content as a PDB file if it has at least one ATOM or
//HETATM record line. Only the keywords are checked; the columns are not
//parsed.
func ValidatePDB(content string) ValidationResult {
	n := 0
	for _, line := range splitLines(content) {
		if isPDBRecord(line) {
			n++
		}
	}
	if n == 0 {
		return failure(FormatPDB,
			"Invalid PDB file: No ATOM or HETATM records found",
			"Check if the file is correctly formatted according to PDB standards")
	}
	return ValidationResult{
		Valid:  true,
		Format: FormatPDB,
		Diagnostics: PDBDiagnostics{
			AtomCount: n,
			Message:   "PDB file is valid",
		},
	}
}

//parsePDBLine reads the fixed columns of a record line. Any numeric field
//that doesn't parse to a finite number makes the whole line an error.
func parsePDBLine(line string) (Atom, error) {
	var at Atom
	var err error
	at.Serial, err = strconv.Atoi(strings.TrimSpace(column(line, 6, 11)))
	if err != nil {
		return at, fmt.Errorf("serial: %w", err)
	}
	at.Name = strings.TrimSpace(column(line, 12, 16))
	at.ResidueName = strings.TrimSpace(column(line, 17, 20))
	at.ChainID = column(line, 21, 22)
	at.ResidueNumber, err = strconv.Atoi(strings.TrimSpace(column(line, 22, 26)))
	if err != nil {
		return at, fmt.Errorf("residue number: %w", err)
	}
	var c [3]float64
	for i, name := range [3]string{"x", "y", "z"} {
		start := 30 + 8*i
		c[i], err = strconv.ParseFloat(strings.TrimSpace(column(line, start, start+8)), 64)
		if err != nil {
			return at, fmt.Errorf("%s coordinate: %w", name, err)
		}
		if math.IsNaN(c[i]) || math.IsInf(c[i], 0) {
			return at, fmt.Errorf("%s coordinate: non-finite value %v", name, c[i])
		}
	}
	at.Position = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	at.Element = strings.TrimSpace(column(line, 76, 78))
	return at, nil
}

//ReadPDBAtoms parses every ATOM/HETATM line of content. Lines with broken
//numeric fields are logged, returned in skipped, and otherwise ignored.
//It returns ErrNoRecords if there are no record lines at all. If there are
//record lines but all were skipped, atoms is empty and err is nil.
func ReadPDBAtoms(content string) (atoms []Atom, skipped []LineError, err error) {
	records := 0
	atoms = make([]Atom, 0, 64)
	for i, line := range splitLines(content) {
		if !isPDBRecord(line) {
			continue
		}
		records++
		at, err := parsePDBLine(strings.TrimRight(line, "\r"))
		if err != nil {
			le := LineError{Line: i + 1, Text: line, Err: err}
			log().Warn("skipping PDB record", zap.Int("line", le.Line), zap.Error(err))
			skipped = append(skipped, le)
			continue
		}
		atoms = append(atoms, at)
	}
	if records == 0 {
		return nil, nil, newError(ErrNoRecords, "ReadPDBAtoms")
	}
	return atoms, skipped, nil
}
