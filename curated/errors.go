// This file is part of GopherGBA.
//
// GopherGBA is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherGBA is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherGBA.  If not, see <https://www.gnu.org/licenses/>.

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// the separator between the parts of an error chain
const chainSeparator = ": "

// curated implements the error interface. formatting is deferred until
// Error() is called so that the pattern is preserved for Is() and Has()
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The first argument is the pattern used
// to identify the error with Is() and Has(). It is formatted with the values
// in the same way as fmt.Errorf() formats its arguments.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface. Adjacent parts of the error chain
// that are identical are printed only once.
func (er curated) Error() string {
	parts := strings.Split(fmt.Errorf(er.pattern, er.values...).Error(), chainSeparator)

	chain := parts[:1]
	for _, p := range parts[1:] {
		if p != chain[len(chain)-1] {
			chain = append(chain, p)
		}
	}

	return strings.Join(chain, chainSeparator)
}

// Unwrap returns the first value used to create the error that is itself an
// error. This allows errors.Is() and errors.As() to see through curated
// errors.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny returns true if the error was created with Errorf().
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is returns true if the error was created with Errorf() using the pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has returns true if the error, or any curated error among the values used
// to create it, was created with the pattern.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}

	if er.pattern == pattern {
		return true
	}

	for _, v := range er.values {
		var e curated
		if ve, ok := v.(error); ok && errors.As(ve, &e) && Has(e, pattern) {
			return true
		}
	}

	return false
}
