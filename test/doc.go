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

// Package test removes the boilerplate from the tests of the emulator.
//
// ExpectSuccess() and ExpectFailure() understand bool and error values. A
// true bool or a nil error is a success. ExpectEquality(),
// ExpectInequality() and ExpectApproximate() compare values.
//
// Each Expect function has a Demand equivalent which stops the test when the
// expectation is not met.
//
// CompareWriter and CappedWriter capture the output of the debugger and
// other text producing parts of the emulator for comparison.
package test
