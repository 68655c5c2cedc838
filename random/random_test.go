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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gophergba/random"
	"github.com/jetsetilly/gophergba/test"
)

type clock struct {
	cycles int64
}

func (c *clock) Cycles() int64 {
	return c.cycles
}

func TestRandomIsTimeSensitive(t *testing.T) {
	c := &clock{}
	rnd := random.NewRandom(c)

	a := make([]byte, 32)
	b := make([]byte, 32)
	rnd.Fill(a)
	rnd.Fill(b)
	test.ExpectEquality(t, string(a), string(b))

	c.cycles = 1000
	rnd.Fill(b)
	test.ExpectInequality(t, string(a), string(b))
}

func TestZeroSeed(t *testing.T) {
	c := &clock{cycles: 100}
	x := random.NewRandom(c)
	y := random.NewRandom(nil)
	y.AttachClock(c)
	x.ZeroSeed = true
	y.ZeroSeed = true

	for range 10 {
		test.ExpectEquality(t, x.IntN(1000), y.IntN(1000))
	}
}
