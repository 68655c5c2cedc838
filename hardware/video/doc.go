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

// Package video implements the display timing of the Game Boy Advance. Each
// scanline is 1232 cycles long, made up of 1006 cycles of HDraw and 226 cycles
// of HBlank. There are 228 scanlines in a frame, of which the first 160 are
// visible.
//
// Timing events drive the HBlank and VBlank DMA transfers and the three video
// interrupts. Drawing itself is delegated to an implementation of the
// Renderer interface.
package video
