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

// Package memorymap describes the sixteen regions of the address space. Each
// region occupies a 16MB slot identified by the top byte of the address.
//
//	0x00000000	BIOS
//	0x02000000	working RAM (256KB)
//	0x03000000	internal working RAM (32KB)
//	0x04000000	IO registers
//	0x05000000	palette RAM
//	0x06000000	VRAM
//	0x07000000	OAM
//	0x08000000	cartridge ROM (wait state 0)
//	0x0a000000	cartridge ROM (wait state 1)
//	0x0c000000	cartridge ROM (wait state 2)
//	0x0e000000	cartridge backup memory
//
// All other addresses are open bus. A summary of the map can be printed with
// the Summary() function.
package memorymap
