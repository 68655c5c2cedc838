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

// Package scheduler implements the interrupt controller, the four timers and
// the four DMA channels of the Game Boy Advance.
//
// The scheduler also decides when the rest of the machine needs to be brought
// up to date with the CPU. UpdateTimers() is called after every instruction
// but does nothing until the cycle count reaches the next scheduled event.
//
// Interrupts raised during an update are taken by the CPU at the end of the
// update, never in the middle of an instruction.
//
// Halt() skips forward in time, from event to event, until an interrupt flag
// is set.
package scheduler
