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

import (
	"github.com/jetsetilly/gophergba/curated"
)

// Sentinel error patterns returned by Halt().
const (
	HaltWithoutInterrupts = "halt: interrupts are disabled"
	HaltForever           = "halt: waiting for an interrupt that will never happen"
)

// RequestHalt asks for the CPU to be halted before the next instruction.
func (sch *Scheduler) RequestHalt() {
	sch.haltRequested = true
}

// HaltRequested returns true if a halt has been requested and not yet
// performed.
func (sch *Scheduler) HaltRequested() bool {
	return sch.haltRequested
}

// Halt skips the CPU forward in time until an interrupt flag is set. Returns
// an error if no interrupt can ever happen.
func (sch *Scheduler) Halt(ctx Context) error {
	sch.haltRequested = false

	if !sch.IME {
		return curated.Errorf(HaltWithoutInterrupts)
	}

	if !sch.irqArmed() {
		return curated.Errorf(HaltForever)
	}

	for {
		sch.pollNextEvent()
		if sch.nextEvent == 0 {
			return curated.Errorf(HaltForever)
		}

		ctx.SetCycles(max(ctx.Cycles(), sch.nextEvent))

		err := sch.UpdateTimers(ctx)
		if err != nil {
			return err
		}

		if sch.IF != 0 {
			return nil
		}
	}
}

// irqArmed returns true if something could eventually raise an interrupt
func (sch *Scheduler) irqArmed() bool {
	if sch.TestIRQ() || sch.video.IRQArmed() {
		return true
	}
	for i := range sch.Timers {
		t := &sch.Timers[i]
		if t.Enable && t.DoIRQ {
			return true
		}
	}
	for i := range sch.DMA {
		d := &sch.DMA[i]
		if d.DoIRQ && d.NextIRQ != 0 {
			return true
		}
	}
	return false
}
