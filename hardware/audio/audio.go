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

import (
	"github.com/jetsetilly/gophergba/hardware/memory/memorymap"
)

// the frequency of the mixed output and the number of CPU cycles between
// output samples
const (
	SampleFreq     = 32768
	SampleInterval = 512
)

// FIFO addresses. A DMA channel with special timing and one of these
// destinations refills the FIFO
const (
	AddressFIFOA = memorymap.BaseIO + 0x00a0
	AddressFIFOB = memorymap.BaseIO + 0x00a4
)

// the number of samples sent to the Sink at once
const batchSize = 256

// Sink receives the mixed audio output as signed 16 bit mono samples at
// SampleFreq.
type Sink interface {
	SetAudio(samples []int16) error
	EndMixing() error
}

// Context is the view the audio has of the rest of the machine. It is borrowed
// for the duration of a single call to SampleFIFO().
type Context interface {
	// service the DMA channel. the channel will transfer four words into the
	// FIFO
	RefillFIFO(channel int)
}

// Audio implements the direct sound channels of the Game Boy Advance. The
// legacy PSG channels are not emulated.
type Audio struct {
	sink   Sink
	buffer []int16

	// SOUNDCNT_X bit 7
	MasterEnable bool

	FIFO [2]FIFO

	NextSample int64
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// sink can be nil.
func NewAudio(sink Sink) *Audio {
	au := &Audio{
		sink:   sink,
		buffer: make([]int16, 0, batchSize),
	}
	au.Reset()
	return au
}

// Reset direct sound to the power-on state.
func (au *Audio) Reset() {
	au.MasterEnable = false
	au.NextSample = 0
	au.buffer = au.buffer[:0]
	for i := range au.FIFO {
		au.FIFO[i] = FIFO{DMA: -1}
	}
}

// SetSink changes where mixed audio is sent. A nil sink discards the audio.
func (au *Audio) SetSink(sink Sink) {
	au.sink = sink
}

// Snapshot creates a copy of direct sound in its current state. Buffered
// output is not part of the snapshot.
func (au *Audio) Snapshot() *Audio {
	n := *au
	n.sink = nil
	n.buffer = nil
	for i := range n.FIFO {
		n.FIFO[i].Data = append([]int8{}, au.FIFO[i].Data...)
	}
	return &n
}

// Plumb a previously snapshotted direct sound state.
func (au *Audio) Plumb(s *Audio) {
	sink := au.sink
	buffer := au.buffer
	*au = *s
	au.sink = sink
	au.buffer = buffer
	for i := range au.FIFO {
		au.FIFO[i].Data = append([]int8{}, s.FIFO[i].Data...)
	}
}

// Enabled returns true if direct sound is producing output.
func (au *Audio) Enabled() bool {
	return au.MasterEnable
}

// NextEvent returns the cycle count at which the next output sample is due.
// Returns zero if the audio is disabled.
func (au *Audio) NextEvent() int64 {
	if !au.MasterEnable {
		return 0
	}
	return au.NextSample
}

// WriteSoundControlHi decodes a write to the SOUNDCNT_H register.
func (au *Audio) WriteSoundControlHi(value uint16) {
	for i := range au.FIFO {
		f := &au.FIFO[i]
		v := value >> (i * 4)
		f.FullVolume = (value>>(2+i))&0x01 == 0x01
		f.Right = v&0x0100 == 0x0100
		f.Left = v&0x0200 == 0x0200
		f.Timer = int((v >> 10) & 0x01)
		if v&0x0800 == 0x0800 {
			f.Data = f.Data[:0]
		}
	}
}

// WriteSoundControlX decodes a write to the SOUNDCNT_X register.
func (au *Audio) WriteSoundControlX(cycles int64, value uint16) {
	enable := value&0x0080 == 0x0080
	if enable && !au.MasterEnable {
		au.NextSample = cycles + SampleInterval
	}
	au.MasterEnable = enable
}

// ReadSoundControlX returns the value of the SOUNDCNT_X register.
func (au *Audio) ReadSoundControlX() uint16 {
	if au.MasterEnable {
		return 0x0080
	}
	return 0x0000
}

// AppendFIFO adds four samples to the FIFO. The FIFO index is 0 for FIFO A and
// 1 for FIFO B.
func (au *Audio) AppendFIFO(fifo int, value uint32) {
	au.FIFO[fifo].append(value)
}

// ScheduleFIFO binds a DMA channel with special timing to the FIFO at the
// destination address. Returns false if the destination is not a FIFO.
func (au *Audio) ScheduleFIFO(channel int, dest uint32) bool {
	switch dest {
	case AddressFIFOA:
		au.FIFO[0].DMA = channel
	case AddressFIFOB:
		au.FIFO[1].DMA = channel
	default:
		return false
	}
	return true
}

// SampleFIFO is called when a timer overflows. Each FIFO driven by the timer
// moves on to its next sample, requesting a refill if it is running low.
func (au *Audio) SampleFIFO(timer int, ctx Context) {
	if !au.MasterEnable {
		return
	}
	for i := range au.FIFO {
		f := &au.FIFO[i]
		if !f.enabled() || f.Timer != timer || f.DMA < 0 {
			continue
		}
		if len(f.Data) <= refillThreshold {
			ctx.RefillFIFO(f.DMA)
		}
		f.pop()
	}
}

// UpdateTimers produces output samples up to the cycle count.
func (au *Audio) UpdateTimers(cycles int64) error {
	if !au.MasterEnable {
		return nil
	}
	for cycles >= au.NextSample {
		au.NextSample += SampleInterval
		err := au.sample()
		if err != nil {
			return err
		}
	}
	return nil
}

func (au *Audio) sample() error {
	var v int
	for i := range au.FIFO {
		v += au.FIFO[i].output()
	}
	v = min(max(v, -0x8000), 0x7fff)

	au.buffer = append(au.buffer, int16(v))
	if len(au.buffer) >= batchSize {
		return au.flush()
	}
	return nil
}

func (au *Audio) flush() error {
	defer func() {
		au.buffer = au.buffer[:0]
	}()
	if au.sink == nil || len(au.buffer) == 0 {
		return nil
	}
	return au.sink.SetAudio(au.buffer)
}

// EndMixing sends any buffered output to the sink and tells the sink that
// there will be no more audio.
func (au *Audio) EndMixing() error {
	err := au.flush()
	if err != nil {
		return err
	}
	if au.sink == nil {
		return nil
	}
	return au.sink.EndMixing()
}
