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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	const HaltForever = "scheduler: waiting for an interrupt that will never come (%s)"
//
//	e := curated.Errorf(HaltForever, "no timers")
//
//	if curated.Is(e, HaltForever) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("gba: %v", e)
//
//	if curated.Has(f, HaltForever) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Errors that are not curated can be thought of as
// unexpected.
//
// The Error() function normalises the error chain so that it does not contain
// duplicate adjacent parts. For example, the following:
//
//	e := curated.Errorf("memory: %v", curated.Errorf("memory: bad header"))
//
// prints as "memory: bad header" and not "memory: memory: bad header".
//
// Chains are composed of parts separated by the sub-string ': ' as suggested on
// p239 of "The Go Programming Language" (Donovan, Kernighan).
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented, in the package that returns the error.
package curated
