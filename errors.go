/*
 * errors.go, part of chemutil.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package chem

import (
	"errors"
	"fmt"
	"strings"
)

//Errors

// The kinds of failure in this library. Errors returned by the package wrap
// one of these, so they can be checked with errors.Is.
var (
	// ErrFormatMismatch is returned when an XYZ file declares a number of atoms
	// different from the number of atom records it contains, or when the
	// records can't be read at all.
	ErrFormatMismatch = errors.New("format mismatch")

	// ErrUnknownElement is returned when an element symbol is not in the
	// covalent radii table.
	ErrUnknownElement = errors.New("unknown element")

	// ErrPrecondition is returned when the arguments of a function violate
	// its preconditions (e.g. non-adjacent cardinal numbers in a Jensen extrapolation).
	ErrPrecondition = errors.New("precondition violation")

	// ErrDomain is returned when arguments are outside the domain of a function.
	ErrDomain = errors.New("domain error")
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the resulting decoration slice. If passed an empty string, it just returns the current value.
}

// CError is the error type for the chem package. It carries a message,
// the list of functions it went through, and the kind of error.
type CError struct {
	msg  string
	deco []string
	kind error
}

//NewError returns a CError of the given kind, decorated with caller. It is meant
//for the subpackages of this library.
func NewError(kind error, caller string, format string, a ...interface{}) *CError {
	return newCError(kind, caller, format, a...)
}

func newCError(kind error, caller string, format string, a ...interface{}) *CError {
	err := &CError{msg: fmt.Sprintf(format, a...), kind: kind}
	err.Decorate(caller)
	return err
}

// Error returns a string with the error message.
func (err *CError) Error() string {
	if err.kind == nil {
		return err.msg
	}
	return err.kind.Error() + ": " + err.msg
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Unwrap returns the kind of the error.
func (err *CError) Unwrap() error { return err.kind }

// Trace returns the functions the error went through, innermost first.
func (err *CError) Trace() string {
	return strings.Join(err.deco, " <- ")
}

//errDecorate decorates the error with the caller's name before returning it, if the error
//implements Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var err2 Error
	if errors.As(err, &err2) {
		err2.Decorate(caller)
	}
	return err
}
