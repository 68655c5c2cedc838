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

package bios

import (
	"math"

	"github.com/jetsetilly/gophergba/hardware/cpu"
	"github.com/jetsetilly/gophergba/logger"
)

// signed division. the quotient is placed in R0, the remainder in R1 and the
// absolute value of the quotient in R3
func (h *HLE) div(mc *cpu.CPU, numerator int32, denominator int32) {
	if denominator == 0 {
		// a real BIOS never returns
		logger.Logf(h.env, "bios", "division by zero: %d / 0", numerator)
		mc.R[0] = 0
		mc.R[1] = 0
		mc.R[3] = 0
		return
	}

	q := numerator / denominator
	r := numerator % denominator
	mc.R[0] = uint32(q)
	mc.R[1] = uint32(r)
	if q < 0 {
		mc.R[3] = uint32(-q)
	} else {
		mc.R[3] = uint32(q)
	}
}

func sqrt(v uint32) uint32 {
	return uint32(math.Sqrt(float64(v)))
}

// the arguments are 1.14 fixed point. the result is the angle in the range
// 0x0000 to 0xffff
func arcTan2(x int32, y int32) uint32 {
	fx := float64(x) / 16384
	fy := float64(y) / 16384
	a := math.Atan2(fy, fx) / (2 * math.Pi) * 0x10000
	return uint32(int32(a)) & 0xffff
}
