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

// Package hardware is the base package for the Game Boy Advance emulation. It
// and its sub-packages contain everything required for a headless emulation.
//
// The GBA type is the root of the emulation. It owns every component and is
// lent to each of them, for the duration of a call, as the component's view
// of the rest of the machine. From here the emulation can be stepped one
// instruction at a time, run a frame at a time, or run continuously until a
// context is cancelled.
//
// The state of the machine can be frozen and later defrosted with the Freeze()
// and Defrost() functions.
package hardware
