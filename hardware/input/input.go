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
	"fmt"
	"strings"

	"github.com/jetsetilly/gophergba/curated"
)

// Button is one of the ten buttons on the keypad. The value of each button is
// its bit number in the KEYINPUT register.
type Button int

// List of valid Button values.
const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonR
	ButtonL

	NumButtons
)

var buttonNames = [NumButtons]string{"A", "B", "SELECT", "START", "RIGHT", "LEFT", "UP", "DOWN", "R", "L"}

func (b Button) String() string {
	if b < 0 || b >= NumButtons {
		return fmt.Sprintf("button %d", int(b))
	}
	return buttonNames[b]
}

// Sentinel error returned by ParseButton().
const UnknownButton = "input: unknown button: %v"

// ParseButton returns the Button with the name. The name is not case
// sensitive.
func ParseButton(name string) (Button, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range buttonNames {
		if n == name {
			return Button(i), nil
		}
	}
	return 0, curated.Errorf(UnknownButton, name)
}

// Event is a change in the state of a button.
type Event struct {
	Button  Button
	Pressed bool
}

func (ev Event) String() string {
	if ev.Pressed {
		return fmt.Sprintf("%s pressed", ev.Button)
	}
	return fmt.Sprintf("%s released", ev.Button)
}

// TimedEvent is an Event and the frame it happened on.
type TimedEvent struct {
	Frame int
	Event
}

// the KEYINPUT value with no buttons pressed
const released = 0x03ff

// Keypad handles all forms of input into the Game Boy Advance.
type Keypad struct {
	// the KEYINPUT register. a clear bit is a pressed button
	state uint16

	playback EventPlayback
	recorder EventRecorder

	// events pushed onto the input queue
	pushed chan Event
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{
		state:  released,
		pushed: make(chan Event, 64),
	}
}

// KeyInput returns the value of the KEYINPUT register.
func (kp *Keypad) KeyInput() uint16 {
	return kp.state
}

// Pressed returns true if the button is currently pressed.
func (kp *Keypad) Pressed(b Button) bool {
	return kp.state&(1<<b) == 0
}

// Reset releases all buttons.
func (kp *Keypad) Reset() {
	kp.state = released
}

// HandleEvent changes the state of the keypad. The frame is the frame number
// of the emulation, used when recording the event.
//
// If a playback is currently active the event will not be handled and false
// will be returned.
func (kp *Keypad) HandleEvent(frame int, ev Event) (bool, error) {
	if kp.playback != nil {
		return false, nil
	}

	if kp.recorder != nil {
		err := kp.recorder.RecordEvent(TimedEvent{Frame: frame, Event: ev})
		if err != nil {
			return false, err
		}
	}

	kp.apply(ev)

	return true, nil
}

func (kp *Keypad) apply(ev Event) {
	if ev.Button < 0 || ev.Button >= NumButtons {
		return
	}
	if ev.Pressed {
		kp.state &^= 1 << ev.Button
	} else {
		kp.state |= 1 << ev.Button
	}
}

// Process handles pushed events and events from an attached playback. It
// should be called once per frame.
func (kp *Keypad) Process(frame int) error {
	err := kp.handlePushed(frame)
	if err != nil {
		return err
	}
	return kp.handlePlaybackEvents(frame)
}
