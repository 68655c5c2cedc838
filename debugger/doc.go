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

// Package debugger implements a command line monitor for the emulation. It
// allows the user to step through the program, inspect and change memory and
// registers, and take and restore snapshots of the machine.
//
// The debugger reads commands from a terminal.Terminal. When the terminal is
// a real terminal the ColorTerminal implementation can be used, which allows
// single-key stepping. The PlainTerminal can be used in all other cases,
// including when the debugger input is from a file or a pipe.
//
// An empty line of input repeats the most recent STEP or FRAME command.
package debugger
