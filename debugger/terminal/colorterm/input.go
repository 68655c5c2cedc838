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

//go:build !windows

package colorterm

import (
	"unicode"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/debugger/terminal"
	"github.com/jetsetilly/gophergba/debugger/terminal/colorterm/easyterm"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	input := make([]rune, 0, 64)
	cursor := 0
	history := len(ct.commandHistory)

	// the latest input is kept when we scroll through history so that the
	// user can resume where they left off
	var buffInput []rune

	redraw := func() {
		ct.Printf("\r%s%s%s%s%s", ansiClearLine, pen(green, true), prompt.String(), ansiOff, string(input))
		if back := len(input) - cursor; back > 0 {
			ct.Printf("\033[%dD", back)
		}
	}

	redraw()

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			ct.Print("\r\n")
			return "", curated.Errorf(terminal.UserAbort)
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.Print("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfTransmit:
			if len(input) == 0 {
				ct.Print("\r\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			s := string(input)
			if len(s) > 0 {
				if len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1] != s {
					ct.commandHistory = append(ct.commandHistory, s)
				}
			}
			ct.Print("\r\n")
			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
			}

		case easyterm.KeyTab:

		case easyterm.KeyLineStart:
			cursor = 0

		case easyterm.KeyLineEnd:
			cursor = len(input)

		case easyterm.KeyKillLine:
			input = input[:0]
			cursor = 0

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil || r != easyterm.EscCursor {
				break
			}
			r, _, err = ct.reader.ReadRune()
			if err != nil {
				break
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						buffInput = append(buffInput[:0], input...)
					}
					history--
					input = []rune(ct.commandHistory[history])
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					input = []rune(ct.commandHistory[history])
					cursor = len(input)
				} else if history == len(ct.commandHistory)-1 {
					history++
					input = append(input[:0], buffInput...)
					cursor = len(input)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			}

		default:
			// single key commands only apply to an empty line
			if len(input) == 0 {
				if cmd, ok := ct.singleKeys[r]; ok {
					ct.Printf("%s\r\n", cmd)
					return cmd, nil
				}
			}

			if unicode.IsPrint(r) {
				input = append(input[:cursor], append([]rune{r}, input[cursor:]...)...)
				cursor++
			}
		}

		redraw()
	}
}
