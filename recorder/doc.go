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

// Package recorder handles the recording and playback of keypad input. A
// recording is a text file with a short header identifying the cartridge,
// followed by one line per input event.
//
// Each event line records the frame on which the event happened, the button,
// whether it was pressed or released, and the video digest at the moment of
// the event. During playback the digest is compared with the digest of the
// running emulation and playback fails if they differ. This makes recordings
// useful as regression tests.
//
// The Recorder type implements the input.EventRecorder interface and the
// Playback type implements the input.EventPlayback interface. Both are
// attached to the keypad with the appropriate function.
package recorder
