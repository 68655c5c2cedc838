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

// Package commandline tokenises and validates the input to the debugger.
//
// Commands are defined with a Command value that lists the keyword and the
// arguments the command accepts. User input is tokenised with
// TokeniseInput() and checked against the list of commands with
// ValidateTokens(). Keywords are case insensitive and can be abbreviated as
// long as the abbreviation is unambiguous.
//
// Numbers can be specified in decimal or in hexadecimal. Hexadecimal numbers
// are prefixed with either 0x or $.
package commandline
