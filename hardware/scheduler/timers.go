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

package scheduler

// NumTimers is the number of timers.
const NumTimers = 4

// the prescaler selected by the bottom two bits of the timer control register
var prescaleBits = [4]uint{0, 6, 8, 10}

// Timer is one of the four 16 bit timers. The count of a running timer is not
// stored but is calculated from the cycle count when it is read.
type Timer struct {
	Reload uint16

	// the reload value in effect when the timer last overflowed or was enabled
	OldReload uint16

	// the count of the timer when it is stopped or is a count-up timer
	Count uint16

	// the control register as written
	Control uint16

	Prescale uint
	CountUp  bool
	DoIRQ    bool
	Enable   bool

	// the cycle count of the most recent overflow and of the next overflow.
	// count-up timers are never scheduled
	LastEvent int64
	NextEvent int64

	// the number of cycles between overflows
	Interval int64
}

// TimerRead returns the current count of the timer.
func (sch *Scheduler) TimerRead(ctx Context, n int) uint16 {
	t := &sch.Timers[n]
	if t.Enable && !t.CountUp {
		return t.OldReload + uint16((ctx.Cycles()-t.LastEvent)>>t.Prescale)
	}
	return t.Count
}

// TimerSetReload sets the value loaded into the timer on overflow. It takes
// effect when the timer next overflows or is enabled.
func (sch *Scheduler) TimerSetReload(n int, reload uint16) {
	sch.Timers[n].Reload = reload
}

// TimerWriteControl sets the value of the timer's control register.
func (sch *Scheduler) TimerWriteControl(ctx Context, n int, control uint16) {
	t := &sch.Timers[n]

	oldPrescale := t.Prescale
	wasEnabled := t.Enable
	wasCountUp := t.CountUp

	t.Control = control & 0x00c7
	t.Prescale = prescaleBits[control&0x0003]
	t.CountUp = control&0x0004 == 0x0004 && n > 0
	t.DoIRQ = control&0x0040 == 0x0040
	t.Enable = control&0x0080 == 0x0080
	t.Interval = int64(0x10000-int64(t.Reload)) << t.Prescale

	cycles := ctx.Cycles()

	switch {
	case !wasEnabled && t.Enable:
		if t.CountUp {
			t.NextEvent = 0
		} else {
			t.LastEvent = cycles
			t.NextEvent = cycles + t.Interval
		}
		t.Count = t.Reload
		t.OldReload = t.Reload

	case wasEnabled && !t.Enable:
		if !t.CountUp {
			t.Count = t.OldReload + uint16((cycles-t.LastEvent)>>oldPrescale)
		}

	case t.Enable && wasCountUp && !t.CountUp:
		// the timer counts on from the value reached while counting up
		t.OldReload = t.Count
		t.LastEvent = cycles
		t.NextEvent = cycles + int64(0x10000-int64(t.Count))<<t.Prescale

	case t.Enable && !wasCountUp && t.CountUp:
		t.Count = t.OldReload + uint16((cycles-t.LastEvent)>>oldPrescale)
		t.NextEvent = 0

	case t.Enable && !t.CountUp && t.Prescale != oldPrescale:
		t.NextEvent = t.LastEvent + t.Interval
		if t.NextEvent <= cycles {
			t.LastEvent = cycles
			t.NextEvent = cycles + t.Interval
		}
	}

	sch.pollNextEvent()
}

// overflow of timer n. a count-up timer following it is incremented, which
// might cause it to overflow in turn
func (sch *Scheduler) overflow(ev events, n int) {
	t := &sch.Timers[n]
	t.Count = t.Reload
	t.OldReload = t.Reload

	if t.DoIRQ {
		sch.RaiseIRQ(IRQTimer0 + n)
	}

	// only the first two timers can drive the sound FIFOs
	if n < 2 {
		sch.audio.SampleFIFO(n, ev)
	}

	if n+1 >= NumTimers {
		return
	}

	next := &sch.Timers[n+1]
	if next.Enable && next.CountUp {
		next.Count++
		if next.Count == 0 {
			sch.overflow(ev, n+1)
		}
	}
}
