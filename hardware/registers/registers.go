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

package registers

import (
	"github.com/jetsetilly/gophergba/environment"
	"github.com/jetsetilly/gophergba/hardware/audio"
	"github.com/jetsetilly/gophergba/hardware/memory"
	"github.com/jetsetilly/gophergba/hardware/memory/memorymap"
	"github.com/jetsetilly/gophergba/hardware/scheduler"
	"github.com/jetsetilly/gophergba/hardware/video"
	"github.com/jetsetilly/gophergba/logger"
)

// Context is the view the registers have of the rest of the machine. It is
// borrowed for the duration of a single access.
type Context interface {
	scheduler.Context

	// the value of the data bus for reads of registers that can not be read
	OpenBus16() uint16
}

// Keypad is the source of the KEYINPUT register. A bit is clear when the
// button is pressed.
type Keypad interface {
	KeyInput() uint16
}

// the keypad used when no keypad has been attached
type released struct{}

func (released) KeyInput() uint16 {
	return defaultKEYINPUT
}

// Registers is the IO region of the address space. Most registers are
// decoded and forwarded to the component they belong to. Registers that
// are not interesting to the emulation are stored as written.
type Registers struct {
	env *environment.Environment

	sch    *scheduler.Scheduler
	vid    *video.Video
	aud    *audio.Audio
	ws     *memory.Waitstates
	keypad Keypad

	// the stored value of every halfword in the region
	Data [memorymap.SizeIO / 2]uint16
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters(env *environment.Environment, sch *scheduler.Scheduler, vid *video.Video,
	aud *audio.Audio, ws *memory.Waitstates) *Registers {
	r := &Registers{
		env:    env,
		sch:    sch,
		vid:    vid,
		aud:    aud,
		ws:     ws,
		keypad: released{},
	}
	r.Reset()
	return r
}

// SetKeypad attaches the source of the KEYINPUT register. A nil keypad reads
// as though no buttons are pressed.
func (r *Registers) SetKeypad(keypad Keypad) {
	if keypad == nil {
		keypad = released{}
	}
	r.keypad = keypad
}

// Reset registers to their power-on values. The WAITCNT register is
// initialised according to the Prefetch preference.
func (r *Registers) Reset() {
	clear(r.Data[:])
	r.Data[DISPCNT>>1] = defaultDISPCNT
	r.Data[SOUNDBIAS>>1] = defaultSOUNDBIAS
	r.Data[BG2PA>>1] = defaultBGPA
	r.Data[BG2PD>>1] = defaultBGPD
	r.Data[BG3PA>>1] = defaultBGPA
	r.Data[BG3PD>>1] = defaultBGPD
	r.Data[RCNT>>1] = defaultRCNT

	if r.env.Prefs.Prefetch.Get().(bool) {
		r.Data[WAITCNT>>1] = 0x4000
	}
	r.ws.Adjust(r.Data[WAITCNT>>1])
}

// Snapshot creates a copy of the registers in its current state.
func (r *Registers) Snapshot() *Registers {
	n := *r
	return &n
}

// Plumb a previously snapshotted register file. The components the registers
// forward to are kept. The waitstates are recalculated from WAITCNT.
func (r *Registers) Plumb(s *Registers) {
	r.Data = s.Data
	r.ws.Adjust(r.Data[WAITCNT>>1])
}

// Peek returns the stored value of the halfword register without side
// effects. Intended for debuggers.
func (r *Registers) Peek(offset uint32) uint16 {
	if offset >= memorymap.SizeIO {
		return 0
	}
	return r.Data[offset>>1]
}

func (r *Registers) stub(offset uint32, write bool) {
	name, ok := Names[offset]
	if !ok {
		name = "register"
	}
	if write {
		logger.Logf(r.env, "io", "unimplemented %s write: %03x", name, offset)
	} else {
		logger.Logf(r.env, "io", "unimplemented %s read: %03x", name, offset)
	}
}
