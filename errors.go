/*
 * errors.go, part of molcheck.
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
	"strings"
)

//ErrNoRecords is returned when a PDB file contains no ATOM or HETATM lines
//at all.
var ErrNoRecords = errors.New("no ATOM or HETATM records found")

//Error is the error type returned by the package functions that can fail.
//Besides the message, it keeps a list of the functions it went through
//on its way up, which can be extended with Decorate.
type Error struct {
	msg  string
	deco []string
	err  error
}

func newError(err error, caller string) *Error {
	return &Error{msg: err.Error(), deco: []string{caller}, err: err}
}

func (E *Error) Error() string {
	if len(E.deco) == 0 {
		return E.msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(E.deco, ": "), E.msg)
}

//Decorate adds dec to the trail of callers and returns the trail. An empty
//string just returns the current trail.
func (E *Error) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append([]string{dec}, E.deco...)
	}
	return E.deco
}

//Unwrap gives access to the underlying error, if any.
func (E *Error) Unwrap() error {
	return E.err
}

//errDecorate decorates err if it is an *Error, or wraps it into one.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return e
	}
	return newError(err, caller)
}

//LineError describes a record line that was skipped because one of its
//fields couldn't be parsed.
type LineError struct {
	Line int //1-based line number in the file
	Text string
	Err  error
}

func (L LineError) Error() string {
	return fmt.Sprintf("line %d: %v", L.Line, L.Err)
}

func (L LineError) Unwrap() error {
	return L.Err
}
