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

// Package registers implements the IO region of the Game Boy Advance address
// space. The region is decoded at halfword granularity. Byte and word accesses
// are built from halfword accesses except where the hardware treats a
// register differently.
//
// Registers belonging to the timers, the DMA channels and the interrupt
// controller are forwarded to the scheduler. Display status and direct sound
// registers are forwarded to the video and audio packages. Registers for
// features that are not emulated are stored as written, with their read masks
// applied, so that software that reads them back sees sensible values.
//
// Reads of write-only registers return the value of the data bus.
package registers
