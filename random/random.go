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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Clock is the source of emulated time used to seed random numbers. The
// machine implements this with its cycle counter.
type Clock interface {
	Cycles() int64
}

// Random is a random number generator that is sensitive to time within the
// emulation. The same cycle count produces the same sequence of numbers
// within a single run of the program, which keeps snapshots and parallel
// emulations in step.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clock can be nil and attached later with AttachClock().
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// AttachClock changes the source of emulated time.
func (rnd *Random) AttachClock(clock Clock) {
	rnd.clock = clock
}

func (rnd *Random) rand() *rand.Rand {
	var t uint64
	if rnd.clock != nil {
		t = uint64(rnd.clock.Cycles())
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewPCG(t, 0))
	}
	return rand.New(rand.NewPCG(t, baseSeed))
}

// IntN returns a random number in the range [0,n).
func (rnd *Random) IntN(n int) int {
	return rnd.rand().IntN(n)
}

// Fill the slice with random bytes.
func (rnd *Random) Fill(data []byte) {
	r := rnd.rand()
	for i := 0; i < len(data); i += 8 {
		v := r.Uint64()
		for j := 0; j < 8 && i+j < len(data); j++ {
			data[i+j] = byte(v >> (j * 8))
		}
	}
}
