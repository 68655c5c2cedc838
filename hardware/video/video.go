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

package video

// display timing in CPU cycles and scanlines
const (
	CyclesPerPixel   = 4
	HDraw            = 1006
	HBlank           = 226
	HorizontalLength = 1232
	VisibleLines     = 160
	TotalLines       = 228
	FrameLength      = HorizontalLength * TotalLines
)

// the interrupt sources raised by the video timing. the values are the bit
// numbers in the interrupt registers
const (
	IRQVBlank   = 0
	IRQHBlank   = 1
	IRQVCounter = 2
)

// Context is the view the video timing has of the rest of the machine. It is
// borrowed for the duration of a single call to UpdateTimers().
type Context interface {
	RaiseIRQ(irq int)
	RunHBlankDMAs()
	RunVBlankDMAs()
}

// Video implements the display timing of the LCD controller. Drawing is left
// to the Renderer, which is told when each scanline should be drawn.
type Video struct {
	renderer Renderer

	InHBlank bool
	InVBlank bool

	// the current scanline matches the VCount setting in DISPSTAT
	VCounter bool

	// interrupts enabled in DISPSTAT
	VBlankIRQ   bool
	HBlankIRQ   bool
	VCounterIRQ bool

	// the scanline that triggers the VCounter interrupt
	VCountSetting int

	// the current scanline
	VCount int

	LastHBlank int64
	NextHBlank int64

	nextEvent int64

	// number of VBlanks since reset
	Frame int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(renderer Renderer) *Video {
	if renderer == nil {
		renderer = NullRenderer{}
	}
	v := &Video{
		renderer: renderer,
	}
	v.Reset()
	return v
}

// Reset display timing. Timing starts on the last scanline so that the first
// scanline to be drawn is the first scanline of a new frame.
func (v *Video) Reset() {
	v.InHBlank = false
	v.InVBlank = false
	v.VCounter = false
	v.VBlankIRQ = false
	v.HBlankIRQ = false
	v.VCounterIRQ = false
	v.VCountSetting = 0
	v.VCount = TotalLines - 1
	v.LastHBlank = 0
	v.NextHBlank = HDraw
	v.nextEvent = v.NextHBlank
	v.Frame = 0
}

// SetRenderer changes the renderer. A nil renderer discards all drawing.
func (v *Video) SetRenderer(renderer Renderer) {
	if renderer == nil {
		renderer = NullRenderer{}
	}
	v.renderer = renderer
}

// Snapshot creates a copy of the display timing in its current state.
func (v *Video) Snapshot() *Video {
	n := *v
	return &n
}

// Plumb a previously snapshotted display timing. The current renderer is
// kept.
func (v *Video) Plumb(s *Video) {
	r := v.renderer
	*v = *s
	v.renderer = r
}

// NextEvent returns the cycle count of the next HBlank boundary.
func (v *Video) NextEvent() int64 {
	return v.nextEvent
}

// IRQArmed returns true if any of the video interrupts are enabled in
// DISPSTAT.
func (v *Video) IRQArmed() bool {
	return v.VBlankIRQ || v.HBlankIRQ || v.VCounterIRQ
}

// UpdateTimers advances the display to the cycle count. Each call moves at
// most one boundary forward.
func (v *Video) UpdateTimers(cycles int64, ctx Context) {
	if v.nextEvent > cycles {
		return
	}

	if !v.InHBlank {
		v.InHBlank = true
		v.LastHBlank = v.NextHBlank
		v.nextEvent = v.LastHBlank + HBlank
		v.NextHBlank = v.nextEvent + HDraw

		if v.VCount < VisibleLines {
			ctx.RunHBlankDMAs()
		}
		if v.HBlankIRQ {
			ctx.RaiseIRQ(IRQHBlank)
		}
		return
	}

	v.InHBlank = false
	v.nextEvent = v.NextHBlank

	v.VCount++

	switch v.VCount {
	case VisibleLines:
		v.InVBlank = true
		v.Frame++
		v.renderer.FinishDraw()
		ctx.RunVBlankDMAs()
		if v.VBlankIRQ {
			ctx.RaiseIRQ(IRQVBlank)
		}
	case TotalLines - 1:
		v.InVBlank = false
	case TotalLines:
		v.VCount = 0
		v.renderer.StartDraw()
	}

	v.VCounter = v.VCount == v.VCountSetting
	if v.VCounter && v.VCounterIRQ {
		ctx.RaiseIRQ(IRQVCounter)
	}

	if v.VCount < VisibleLines {
		v.renderer.DrawScanline(v.VCount)
	}
}

// WriteDisplayStat sets the writable bits of the DISPSTAT register.
func (v *Video) WriteDisplayStat(value uint16) {
	v.VBlankIRQ = value&0x0008 == 0x0008
	v.HBlankIRQ = value&0x0010 == 0x0010
	v.VCounterIRQ = value&0x0020 == 0x0020
	v.VCountSetting = int(value >> 8)
}

// ReadDisplayStat returns the read-only status bits of the DISPSTAT register.
func (v *Video) ReadDisplayStat() uint16 {
	var s uint16
	if v.InVBlank {
		s |= 0x0001
	}
	if v.InHBlank {
		s |= 0x0002
	}
	if v.VCounter {
		s |= 0x0004
	}
	return s
}
