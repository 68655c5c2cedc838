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

// Package audio implements the direct sound channels of the Game Boy
// Advance. Each of the two channels is a 32 byte FIFO of signed 8 bit samples,
// advanced by the overflow of one of the first two timers and refilled by a
// DMA channel with special timing.
//
// Output is mixed at 32768Hz and delivered to a Sink in batches.
package audio
