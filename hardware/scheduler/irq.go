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
	"github.com/jetsetilly/gophergba/logger"
)

// RaiseIRQ sets the interrupt flag for the source. The CPU takes the
// interrupt at the end of the current update if the source is enabled.
func (sch *Scheduler) RaiseIRQ(irq int) {
	bit := uint16(1) << irq
	sch.IF |= bit
	if sch.IME && sch.IE&bit != 0 {
		sch.spring = true
	}
}

// DismissIRQs clears the interrupt flags in the mask. Writing to the IF
// register acknowledges interrupts in this way.
func (sch *Scheduler) DismissIRQs(mask uint16) {
	sch.IF &^= mask
}

// SetInterruptsEnabled sets the value of the IE register.
func (sch *Scheduler) SetInterruptsEnabled(value uint16) {
	sch.IE = value
	if value&(1<<IRQSerial) != 0 {
		logger.Log(sch.env, "io", "serial interrupts are not supported")
	}
	if value&(1<<IRQKeypad) != 0 {
		logger.Log(sch.env, "io", "keypad interrupts are not supported")
	}
	sch.TestIRQ()
}

// MasterEnable sets the value of the IME register.
func (sch *Scheduler) MasterEnable(enable bool) {
	sch.IME = enable
	sch.TestIRQ()
}

// TestIRQ checks for a pending interrupt that is enabled. If there is one the
// CPU takes it at the end of the current update. Returns true if an interrupt
// is pending.
func (sch *Scheduler) TestIRQ() bool {
	if sch.IME && sch.IE&sch.IF != 0 {
		sch.spring = true
		return true
	}
	return false
}
