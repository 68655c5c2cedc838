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

// EventPlayback implementations feed events to the keypad on request.
//
// Intended for playback of events previously recorded to a file on disk but
// usable for many purposes. For example, scripted control.
type EventPlayback interface {
	// GetPlayback should return the next event for the frame. The boolean
	// return value should be false if there are no more events for the frame.
	GetPlayback(frame int) (Event, bool, error)
}

// EventRecorder implementations mirror an incoming event.
type EventRecorder interface {
	RecordEvent(TimedEvent) error
}

// AttachRecorder attaches an EventRecorder implementation. The recorder can
// be nil in order to remove the recorder.
func (kp *Keypad) AttachRecorder(r EventRecorder) error {
	if r != nil && kp.playback != nil {
		return curated.Errorf("input: attach recorder: keypad already has a playback attached")
	}
	kp.recorder = r
	return nil
}

// AttachPlayback attaches an EventPlayback implementation. The playback can
// be nil in order to remove the playback.
func (kp *Keypad) AttachPlayback(pb EventPlayback) error {
	if pb != nil && kp.recorder != nil {
		return curated.Errorf("input: attach playback: keypad already has a recorder attached")
	}
	kp.playback = pb
	return nil
}

// handlePlaybackEvents requests playback events until there are no more
// events for the frame
func (kp *Keypad) handlePlaybackEvents(frame int) error {
	if kp.playback == nil {
		return nil
	}

	for {
		ev, more, err := kp.playback.GetPlayback(frame)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		kp.apply(ev)
	}
}
