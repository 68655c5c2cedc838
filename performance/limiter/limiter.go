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

// Package limiter restricts the speed of the emulation to the refresh rate of
// the display.
package limiter

import (
	"time"
)

// FPSLimiter blocks until the next frame is due.
type FPSLimiter struct {
	ticker *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for the FPSLimiter
// type.
func NewFPSLimiter(framesPerSecond float64) *FPSLimiter {
	return &FPSLimiter{
		ticker: time.NewTicker(time.Duration(float64(time.Second) / framesPerSecond)),
	}
}

// Wait until the next frame is due. Returns immediately if the frame is
// already late.
func (lim *FPSLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited returns true if the next frame is due. It does not block.
func (lim *FPSLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Calls to Wait() after Stop() will block forever.
func (lim *FPSLimiter) Stop() {
	lim.ticker.Stop()
}
