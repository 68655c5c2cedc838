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

package easyterm

// Control characters read from the terminal in raw mode.
const (
	KeyLineStart      = 0x01 // ctrl-a
	KeyInterrupt      = 0x03 // ctrl-c
	KeyEndOfTransmit  = 0x04 // ctrl-d
	KeyLineEnd        = 0x05 // ctrl-e
	KeyBackspace      = 0x08
	KeyTab            = 0x09
	KeyLineFeed       = 0x0a
	KeyCarriageReturn = 0x0d
	KeyKillLine       = 0x15 // ctrl-u
	KeyEsc            = 0x1b
	KeyDelete         = 0x7f
)

// EscCursor follows KeyEsc at the start of a cursor key sequence.
const EscCursor = '['

// The final character of a cursor key sequence.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)
