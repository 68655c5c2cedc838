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

// Package cpu emulates the ARM7TDMI processor found in the Game Boy Advance.
// Both the 32 bit ARM and 16 bit Thumb instruction sets are supported.
//
// Instructions are decoded once by the instructions package and the decoded
// form is kept in a cache page owned by the memory package. The CPU holds on
// to the prefetched instruction between calls to Step() and, for branches
// with a fixed target, remembers which instruction followed. This means that
// tight loops are executed without consulting the cache at all. Writes to
// memory invalidate the cache page and the chain is broken the next time it
// is followed.
//
// The CPU type requires an implementation of the Bus interface for every
// call to Step(). The Bus gives access to memory, the waitstate tables and
// the scheduler.
//
//	for {
//		err := mc.Step(bus)
//		if err != nil {
//			return err
//		}
//	}
//
// Cycle counting is approximate. Every instruction is charged for the
// prefetch of the instruction that follows, plus the waitstates of any
// memory access and the internal cycles of multiplies and register specified
// shifts.
package cpu
