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

// Package scripting runs Lua scripts against an emulation. The scripts are
// run with gopher-lua and have access to the machine through the functions
// in the global gba table:
//
//	gba.step([n])         execute n instructions (default 1)
//	gba.frame([n])        run n frames (default 1)
//	gba.frameno()         the number of frames since reset
//	gba.cycles()          the number of cycles since reset
//	gba.reg(i)            value of register i
//	gba.setreg(i, v)      set register i
//	gba.peek8(a)          read a byte from the bus. also peek16 and peek32
//	gba.poke8(a, v)       write a byte to the bus. also poke16 and poke32
//	gba.press(b)          press a keypad button. eg. "A" or "START"
//	gba.release(b)        release a keypad button
//	gba.freeze()          take a snapshot of the machine
//	gba.defrost()         restore the snapshot taken with freeze()
//	gba.cart()            the title and code of the cartridge
//	gba.log(s)            add an entry to the central log
//
// The Lua print() function writes to the output given to NewScript().
package scripting
