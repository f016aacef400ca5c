/*
 * validate.go, part of molcheck.
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

	"go.uber.org/zap"
)

//Validate runs the validator for format on content and returns its result.
//It never panics and has no error return: an unknown format, or anything
//going wrong inside a validator, gives an invalid result whose "error"
//diagnostic says what happened.
func Validate(content []byte, format Format) (res ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			log().Error("validator failed", zap.Stringer("format", format), zap.Any("panic", r))
			res = FailureResult(format, r)
		}
	}()
	s := string(content)
	switch format {
	case FormatPDB:
		return ValidatePDB(s)
	case FormatMOL2:
		return ValidateMOL2(s)
	case FormatSDF:
		return ValidateSDF(s)
	}
	return failure(format, "unsupported format", "")
}

//ValidateFile reads the file at path, decompressing it if needed (see
//ReadFile), and validates it as format. Read errors are reported in the
//result, the same way Validate reports its failures.
func ValidateFile(path string, format Format) ValidationResult {
	content, err := ReadFile(path)
	if err != nil {
		log().Error("reading molecular file", zap.String("path", path), zap.Error(err))
		return FailureResult(format, err)
	}
	return Validate(content, format)
}

//FailureResult is the invalid result reported when a file could not be
//validated at all, because it could not be read or a validator failed.
//Its error diagnostic reads "File validation failed: " followed by cause.
func FailureResult(format Format, cause any) ValidationResult {
	return failure(format, fmt.Sprintf("File validation failed: %v", cause), "")
}
