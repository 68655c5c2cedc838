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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the concept of modes, which are selected by the first
// non-flag argument on the command line.
//
// For example:
//
//	md := modalflag.NewModes(os.Stdout, os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "SCRIPT")
//	_, err := md.Parse()
//
// The first sub-mode is the default and is selected if the first argument is
// not one of the sub-modes. Sub-modes are case insensitive and can be
// abbreviated so long as the abbreviation is unambiguous.
//
// Once a mode has been selected, NewMode() prepares for the flags specific to
// that mode, which are added with the AddBool(), AddInt() and AddString()
// functions. A second call to Parse() then parses those flags. Any arguments
// left over after the flags are available with RemainingArgs() and GetArg().
//
// Each Parse() adds the selected sub-mode to the mode path. The path is
// used in help messages.
package modalflag
