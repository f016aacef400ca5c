/*
 * format.go, part of molcheck.
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
	"path/filepath"
	"strings"
)

//Format is the declared format of a molecular file.
type Format int

const (
	//FormatUnknown is the zero value, and it is never accepted by Validate.
	FormatUnknown Format = iota
	//FormatPDB is the column-record Protein Data Bank format.
	FormatPDB
	//FormatMOL2 is the Tripos section-tagged format.
	FormatMOL2
	//FormatSDF is the MDL counts-line format (SDF/MOL, V2000 style).
	FormatSDF
)

var formatNames = map[Format]string{
	FormatPDB:  "pdb",
	FormatMOL2: "mol2",
	FormatSDF:  "sdf",
}

//String returns the lower-case name of the format.
func (F Format) String() string {
	if s, ok := formatNames[F]; ok {
		return s
	}
	return "unknown"
}

//MarshalText allows formats to be used as JSON/YAML values and keys.
func (F Format) MarshalText() ([]byte, error) {
	return []byte(F.String()), nil
}

//UnmarshalText parses the output of MarshalText.
func (F *Format) UnmarshalText(text []byte) error {
	f, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*F = f
	return nil
}

//ParseFormat returns the Format for a name like "pdb", "MOL2" or "sdf".
//"mol" and "ent" are accepted as aliases of sdf and pdb respectively.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pdb", "ent":
		return FormatPDB, nil
	case "mol2":
		return FormatMOL2, nil
	case "sdf", "sd", "mol":
		return FormatSDF, nil
	}
	return FormatUnknown, fmt.Errorf("molcheck: unknown format %q", name)
}

//FormatFromFilename guesses the format from the file extension, ignoring
//a trailing compression extension (.gz or .zst).
func FormatFromFilename(name string) (Format, error) {
	base := filepath.Base(name)
	ext := strings.ToLower(filepath.Ext(base))
	if _, ok := compressedExt[ext]; ok {
		base = strings.TrimSuffix(base, filepath.Ext(base))
		ext = filepath.Ext(base)
	}
	if ext == "" {
		return FormatUnknown, fmt.Errorf("molcheck: can't guess format of %s without an extension", name)
	}
	return ParseFormat(ext[1:])
}
