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

package plainterm_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/debugger/terminal"
	"github.com/jetsetilly/gophergba/debugger/terminal/plainterm"
	"github.com/jetsetilly/gophergba/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\r\nregs\nquit"), out)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	var _ terminal.Terminal = pt
	test.ExpectEquality(t, pt.IsInteractive(), false)

	s, err := pt.TermRead(terminal.Prompt{Instruction: "test"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "step")

	s, err = pt.TermRead(terminal.Prompt{Instruction: "test"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "regs")

	// final line has no line terminator
	s, err = pt.TermRead(terminal.Prompt{Instruction: "test"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.TermRead(terminal.Prompt{Instruction: "test"})
	test.ExpectEquality(t, curated.Is(err, terminal.UserAbort), true)

	// prompt is not written because the input is not a real terminal
	test.ExpectEquality(t, out.Compare(""), true)
}

func TestPlainTerminalOutput(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), out)

	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectEquality(t, out.Compare("feedback\n* error\n"), true)

	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectEquality(t, out.Compare("* error\n"), true)
}
