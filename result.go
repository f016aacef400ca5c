/*
 * result.go, part of molcheck.
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
	"strings"
)

//Diagnostics is the format-specific information attached to a
//ValidationResult. Map returns it with the keys callers have always seen
//("error", "suggestions", "atomCount", ...).
type Diagnostics interface {
	Map() map[string]any
}

//ValidationResult is the verdict of a validator plus its diagnostics.
type ValidationResult struct {
	Valid       bool
	Format      Format
	Diagnostics Diagnostics
}

//Error returns the error diagnostic of an invalid result, or "".
func (V ValidationResult) Error() string {
	if V.Diagnostics == nil {
		return ""
	}
	s, _ := V.Diagnostics.Map()["error"].(string)
	return s
}

//MarshalJSON encodes the result as {"isValid":..., "format":..., "diagnostics":{...}}.
func (V ValidationResult) MarshalJSON() ([]byte, error) {
	d := map[string]any{}
	if V.Diagnostics != nil {
		d = V.Diagnostics.Map()
	}
	return json.Marshal(struct {
		Valid       bool           `json:"isValid"`
		Format      Format         `json:"format"`
		Diagnostics map[string]any `json:"diagnostics"`
	}{V.Valid, V.Format, d})
}

//failure builds an invalid result from an error message.
func failure(f Format, msg, suggestions string) ValidationResult {
	return ValidationResult{Format: f, Diagnostics: FailureDiagnostics{Err: msg, Suggestions: suggestions}}
}

//FailureDiagnostics is used by every validator, and by the dispatcher, to
//report that a file was rejected for a reason with no extra data.
type FailureDiagnostics struct {
	Err         string
	Suggestions string
}

func (F FailureDiagnostics) Map() map[string]any {
	m := map[string]any{"error": F.Err}
	if F.Suggestions != "" {
		m["suggestions"] = F.Suggestions
	}
	return m
}

//PDBDiagnostics is returned by ValidatePDB on success.
type PDBDiagnostics struct {
	AtomCount int
	Message   string
	Warnings  []string
}

func (P PDBDiagnostics) Map() map[string]any {
	w := P.Warnings
	if w == nil {
		w = []string{}
	}
	return map[string]any{
		"atomCount": P.AtomCount,
		"message":   P.Message,
		"warnings":  w,
	}
}

//MOL2Diagnostics is returned by ValidateMOL2. On failure only the
//missing flags, Err and Suggestions are meaningful; on success only the
//counts and Message.
type MOL2Diagnostics struct {
	Err             string
	Suggestions     string
	MissingMolecule bool
	MissingAtoms    bool
	MissingBonds    bool
	AtomCount       int
	BondCount       int
	Message         string
}

func (M MOL2Diagnostics) Map() map[string]any {
	if M.Err != "" {
		return map[string]any{
			"error":           M.Err,
			"missingMolecule": M.MissingMolecule,
			"missingAtoms":    M.MissingAtoms,
			"missingBonds":    M.MissingBonds,
			"suggestions":     M.Suggestions,
		}
	}
	return map[string]any{
		"atomCount": M.AtomCount,
		"bondCount": M.BondCount,
		"message":   M.Message,
	}
}

//SDFDiagnostics is returned by ValidateSDF on success. Failures use
//FailureDiagnostics.
type SDFDiagnostics struct {
	AtomCount int
	BondCount int
	Message   string
}

func (S SDFDiagnostics) Map() map[string]any {
	return map[string]any{
		"atomCount": S.AtomCount,
		"bondCount": S.BondCount,
		"message":   S.Message,
	}
}

//splitLines splits content on newlines. A final newline doesn't start an
//extra, empty, line. Carriage returns are left in place.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
