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

// Package terminal is the interface between the debugger and the user.
//
// The debugger reads commands with TermRead() and prints output with
// TermPrintLine(). Each line of output has a Style which a terminal may use
// to colour it or may ignore.
//
// The plainterm package works with any io.Reader and io.Writer and is used
// for tests and for piped input. The colorterm package reads the terminal in
// raw mode, which allows single key presses to step the emulation.
package terminal
