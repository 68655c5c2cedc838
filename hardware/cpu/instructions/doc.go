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

// Package instructions decodes ARM and Thumb opcodes into Instruction
// records. An Instruction is a tagged record: the Op field selects the
// operation and the remaining fields hold the operands bound at decode time.
// The record is executed by the cpu package with a single switch on Op.
//
// Decoded instructions are stored in cache pages (the Page type). Pages are
// owned by the memory package and are replaced, rather than cleared, when the
// memory they cover is written to.
//
// The package also provides disassembly of decoded instructions for the
// debugger.
package instructions
