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

// Package input coordinates input into the Game Boy Advance keypad. The types
// of input handled by the package include:
//
// 1) Immediate input from the user or a script, with HandleEvent()
// 2) Playback of previously recorded events
// 3) Pushed events, from a different goroutine
//
// Events that are handled immediately or pushed can also be forwarded to an
// EventRecorder. It is not possible for a keypad to have a playback and a
// recorder attached at the same time.
//
// The state of the keypad is read by the KEYINPUT register through the
// KeyInput() function.
package input
