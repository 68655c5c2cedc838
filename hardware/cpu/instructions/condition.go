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

package instructions

// Condition is the four bit condition field of an instruction.
type Condition uint8

// List of valid Condition values.
const (
	EQ Condition = iota
	NE
	CS
	CC
	MI
	PL
	VS
	VC
	HI
	LS
	GE
	LT
	GT
	LE
	AL

	// the never condition is reserved on this architecture. it is treated
	// as AL
	NV
)

func (c Condition) String() string {
	switch c {
	case EQ:
		return "EQ"
	case NE:
		return "NE"
	case CS:
		return "CS"
	case CC:
		return "CC"
	case MI:
		return "MI"
	case PL:
		return "PL"
	case VS:
		return "VS"
	case VC:
		return "VC"
	case HI:
		return "HI"
	case LS:
		return "LS"
	case GE:
		return "GE"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case LE:
		return "LE"
	}
	return ""
}

// Passed returns true if the condition holds for the supplied status flags.
func (c Condition) Passed(negative, zero, carry, overflow bool) bool {
	switch c {
	case EQ:
		return zero
	case NE:
		return !zero
	case CS:
		return carry
	case CC:
		return !carry
	case MI:
		return negative
	case PL:
		return !negative
	case VS:
		return overflow
	case VC:
		return !overflow
	case HI:
		return carry && !zero
	case LS:
		return !carry || zero
	case GE:
		return negative == overflow
	case LT:
		return negative != overflow
	case GT:
		return !zero && negative == overflow
	case LE:
		return zero || negative != overflow
	}
	return true
}
