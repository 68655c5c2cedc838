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

// Package memory implements the memory subsystem of the machine. Addresses are
// dispatched on their top byte to one of the sixteen regions described by the
// memorymap package.
//
// Accesses that depend on the state of other parts of the machine (the IO
// registers and the open bus, which reflects the instruction pipeline) are
// resolved through the Context interface. The Context is supplied by the
// caller for the duration of the access only. The memory never keeps a
// reference to it.
//
// The package also owns the waitstate tables, used by the CPU and by DMA to
// count the cycles charged by each access, and the instruction cache pages that
// hold decoded instructions. Every store invalidates the page (or pages) it
// touches, so self-modifying code is always decoded afresh.
//
// Cartridge ingestion is done with LoadROM(). The cartridge header is checked
// and the backup memory is sized according to the save-type marker embedded in
// the ROM data.
package memory
