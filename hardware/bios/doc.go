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

// Package bios is a high-level emulation of the Game Boy Advance BIOS. The
// software interrupt functions used by most games are implemented directly in
// Go and operate on the CPU's registers and the memory bus.
//
// A small ARM image is installed in the BIOS region in place of a real BIOS
// dump. The image contains the exception vectors, an IRQ dispatcher that
// calls the handler address stored at 0x03007ffc, and the wait loop used by
// IntrWait and VBlankIntrWait. The loop halts the CPU by writing to HALTCNT
// and so the interrupt wait functions cost no more than a real BIOS.
//
// When a real BIOS is installed the HLE is bypassed and the SWI instruction
// takes the exception to vector 0x08 in the normal way.
package bios
