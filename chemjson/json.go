/*
 * json.go, part of molcheck.
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

package chemjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rmera/molcheck"
	"gopkg.in/yaml.v3"
)

//Model is the visualization payload for one molecular model: the metadata
//owned by the caller plus the extracted structure.
type Model struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description,omitempty"`
	StructureData *molcheck.StructureData `json:"structureData"`
}

//An easily JSON-serializable error, for programs reading our output.
type Error struct {
	IsError  bool   `json:"isError"` //If false, all other fields are zero.
	Function string `json:"function,omitempty"`
	Message  string `json:"message,omitempty"`
	deco     []string
}

//NewError builds an Error from err, noting the function that gave it.
func NewError(function string, err error) *Error {
	return &Error{IsError: true, Function: function, Message: err.Error()}
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Output formats understood by Encode.
const (
	JSON = "json"
	YAML = "yaml"
)

//Encode writes v to out as indented JSON, or as YAML. For YAML, v is first
//encoded to JSON and back, so both outputs use the same keys.
func Encode(out io.Writer, v any, format string) error {
	switch strings.ToLower(format) {
	case JSON, "":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return NewError("chemjson.Encode", err)
		}
		return nil
	case YAML, "yml":
		b, err := json.Marshal(v)
		if err != nil {
			return NewError("chemjson.Encode", err)
		}
		var generic any
		if err := json.Unmarshal(b, &generic); err != nil {
			return NewError("chemjson.Encode", err)
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return NewError("chemjson.Encode", err)
		}
		return enc.Close()
	}
	return NewError("chemjson.Encode", fmt.Errorf("unknown output format %q", format))
}
