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

package audio

// the capacity of a FIFO in samples
const fifoSize = 32

// a refill is requested when this many samples or fewer remain
const refillThreshold = 16

// FIFO is one of the two direct sound channels.
type FIFO struct {
	Data   []int8
	Sample int8

	// output at full volume rather than half volume
	FullVolume bool

	// channel is output on the left or right speaker
	Left  bool
	Right bool

	// the timer that drives the FIFO
	Timer int

	// the DMA channel that refills the FIFO. -1 if no channel has been bound
	DMA int
}

func (f *FIFO) enabled() bool {
	return f.Left || f.Right
}

// four samples are appended at once. the oldest samples are dropped if there
// is no room
func (f *FIFO) append(value uint32) {
	if len(f.Data) > fifoSize-4 {
		f.Data = f.Data[len(f.Data)-(fifoSize-4):]
	}
	for range 4 {
		f.Data = append(f.Data, int8(value))
		value >>= 8
	}
}

// an empty FIFO repeats the previous sample
func (f *FIFO) pop() {
	if len(f.Data) == 0 {
		return
	}
	f.Sample = f.Data[0]
	f.Data = f.Data[1:]
}

// the contribution of the FIFO to the mixed output
func (f *FIFO) output() int {
	if !f.enabled() {
		return 0
	}
	v := int(f.Sample) << 8
	if !f.FullVolume {
		v >>= 1
	}
	return v
}
