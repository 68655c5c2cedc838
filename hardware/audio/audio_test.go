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

package audio_test

import (
	"testing"

	"github.com/jetsetilly/gophergba/hardware/audio"
	"github.com/jetsetilly/gophergba/test"
)

type sink struct {
	samples []int16
	ended   bool
}

func (s *sink) SetAudio(samples []int16) error {
	s.samples = append(s.samples, samples...)
	return nil
}

func (s *sink) EndMixing() error {
	s.ended = true
	return nil
}

type context struct {
	au      *audio.Audio
	refills []int
}

// the refill appends four words, as a DMA to the FIFO would
func (ctx *context) RefillFIFO(channel int) {
	ctx.refills = append(ctx.refills, channel)
	for range 4 {
		ctx.au.AppendFIFO(0, 0x40404040)
	}
}

func TestFIFO(t *testing.T) {
	au := audio.NewAudio(nil)
	ctx := &context{au: au}

	// FIFO A at full volume on both speakers driven by timer 0
	au.WriteSoundControlHi(0x0304)
	au.WriteSoundControlX(0, 0x0080)
	test.ExpectSuccess(t, au.ScheduleFIFO(1, audio.AddressFIFOA))
	test.ExpectFailure(t, au.ScheduleFIFO(2, 0x04000000))

	au.AppendFIFO(0, 0x04030201)
	test.ExpectEquality(t, len(au.FIFO[0].Data), 4)

	// samples are taken from the low byte first. the FIFO is running low so
	// a refill is requested before the sample is taken
	au.SampleFIFO(0, ctx)
	test.ExpectEquality(t, au.FIFO[0].Sample, int8(1))
	test.ExpectEquality(t, len(ctx.refills), 1)
	test.ExpectEquality(t, ctx.refills[0], 1)
	test.ExpectEquality(t, len(au.FIFO[0].Data), 19)

	// timer 1 does not drive FIFO A
	au.SampleFIFO(1, ctx)
	test.ExpectEquality(t, au.FIFO[0].Sample, int8(1))

	au.SampleFIFO(0, ctx)
	test.ExpectEquality(t, au.FIFO[0].Sample, int8(2))
	test.ExpectEquality(t, len(ctx.refills), 1)
}

func TestFIFOOverflow(t *testing.T) {
	au := audio.NewAudio(nil)
	for i := range 10 {
		au.AppendFIFO(1, uint32(i))
	}
	test.ExpectEquality(t, len(au.FIFO[1].Data), 32)

	// reset bit in SOUNDCNT_H empties the FIFO
	au.WriteSoundControlHi(0x8000)
	test.ExpectEquality(t, len(au.FIFO[1].Data), 0)
}

func TestOutput(t *testing.T) {
	s := &sink{}
	au := audio.NewAudio(s)
	ctx := &context{au: au}

	test.ExpectEquality(t, au.NextEvent(), int64(0))

	au.WriteSoundControlHi(0x0304)
	au.WriteSoundControlX(1000, 0x0080)
	test.ExpectEquality(t, au.NextEvent(), int64(1000+audio.SampleInterval))
	au.ScheduleFIFO(1, audio.AddressFIFOA)
	au.AppendFIFO(0, 0x10101010)
	au.SampleFIFO(0, ctx)

	test.DemandSuccess(t, au.UpdateTimers(1000+audio.SampleInterval*10))
	test.DemandSuccess(t, au.EndMixing())

	test.ExpectSuccess(t, s.ended)
	test.ExpectEquality(t, len(s.samples), 10)
	test.ExpectEquality(t, s.samples[0], int16(0x1000))
}

func TestSnapshot(t *testing.T) {
	au := audio.NewAudio(nil)
	au.AppendFIFO(0, 0x01020304)

	s := au.Snapshot()
	au.AppendFIFO(0, 0x05060708)
	au.FIFO[0].Data[0] = 0x7f

	au.Plumb(s)
	test.ExpectEquality(t, len(au.FIFO[0].Data), 4)
	test.ExpectEquality(t, au.FIFO[0].Data[0], int8(0x04))
}
