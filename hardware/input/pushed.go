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

package input

import (
	"github.com/jetsetilly/gophergba/curated"
)

// PushEvent pushes an Event onto the queue. The event is handled on the next
// call to Process(). Will drop the event and return an error if queue is full.
//
// Safe to call from a goroutine other than the emulation goroutine.
func (kp *Keypad) PushEvent(ev Event) error {
	select {
	case kp.pushed <- ev:
	default:
		return curated.Errorf("input: pushed event queue is full: input dropped")
	}
	return nil
}

func (kp *Keypad) handlePushed(frame int) error {
	for {
		select {
		case ev := <-kp.pushed:
			_, err := kp.HandleEvent(frame, ev)
			if err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
